package mapper

import (
	"context"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect/ngql"
	"github.com/syssam/graphocean/graph"
	"github.com/syssam/graphocean/schema"
)

// SaveEdges upserts es, in order.
func SaveEdges[E any](ctx context.Context, m *Mapper, es ...*E) error {
	typ, err := schema.Lookup[E](m.registry)
	if err != nil {
		return err
	}
	edges, err := graph.NewEdges(typ, es)
	if err != nil {
		return err
	}
	return m.ExecuteBatch(ctx, ngql.UpsertEdges(edges))
}

// SaveEdgesWithVertices upserts the source and destination vertices of es,
// then es. src and dst return the endpoint vertex of an edge, or nil to
// leave it out. A vertex shared by several edges is written once.
func SaveEdgesWithVertices[E, S, D any](ctx context.Context, m *Mapper, es []*E, src func(*E) *S, dst func(*E) *D) error {
	const op = "save edges with vertices"
	if len(es) == 0 {
		return graphocean.NewPreconditionError(op, graphocean.ErrEmptyEntities, "")
	}
	etyp, err := schema.Lookup[E](m.registry)
	if err != nil {
		return err
	}
	styp, err := schema.Lookup[S](m.registry)
	if err != nil {
		return err
	}
	dtyp, err := schema.Lookup[D](m.registry)
	if err != nil {
		return err
	}
	edges, err := graph.NewEdges(etyp, es)
	if err != nil {
		return err
	}
	var (
		stmts []string
		seen  = make(map[[2]string]bool)
	)
	add := func(v *graph.Vertex) {
		k := [2]string{v.Name, v.ID}
		if v.ID != "" && seen[k] {
			return
		}
		seen[k] = true
		stmts = append(stmts, ngql.UpsertVertex(v))
	}
	for _, e := range es {
		if s := src(e); s != nil {
			v, err := graph.NewVertex(styp, s)
			if err != nil {
				return err
			}
			add(v)
		}
		if d := dst(e); d != nil {
			v, err := graph.NewVertex(dtyp, d)
			if err != nil {
				return err
			}
			add(v)
		}
	}
	return m.ExecuteBatch(ctx, append(stmts, ngql.UpsertEdges(edges)...))
}

// GoOutEdges returns the edges of type E leaving the vertices with the
// given raw ids.
func GoOutEdges[E any](ctx context.Context, m *Mapper, ids ...string) ([]*E, error) {
	return goEdges[E](ctx, m, ngql.Forward, ids)
}

// GoReverseEdges returns the edges of type E entering the vertices with
// the given raw ids.
func GoReverseEdges[E any](ctx context.Context, m *Mapper, ids ...string) ([]*E, error) {
	return goEdges[E](ctx, m, ngql.Reverse, ids)
}

func goEdges[E any](ctx context.Context, m *Mapper, d ngql.Direction, ids []string) ([]*E, error) {
	typ, err := schema.Lookup[E](m.registry)
	if err != nil {
		return nil, err
	}
	l := typ.Edge()
	if l == nil {
		return nil, graphocean.NewPreconditionError("go over edges", graphocean.ErrUnsupportedLabel, "%T is not an edge type", (*E)(nil))
	}
	stmt, err := ngql.Go(l, d, ids...)
	if err != nil {
		return nil, err
	}
	rs, err := m.ExecuteQuery(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return graph.Scan(rs, typ, m.scanOptions()...)
}
