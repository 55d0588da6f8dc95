package mapper

import (
	"context"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/contrib/dataloader"
	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/dialect/ngql"
	"github.com/syssam/graphocean/graph"
	"github.com/syssam/graphocean/schema"
)

// SaveVertices upserts vs, in order.
func SaveVertices[T any](ctx context.Context, m *Mapper, vs ...*T) error {
	typ, err := schema.Lookup[T](m.registry)
	if err != nil {
		return err
	}
	vertices, err := graph.NewVertices(typ, vs)
	if err != nil {
		return err
	}
	return m.ExecuteBatch(ctx, ngql.UpsertVertices(vertices))
}

// Query runs a read statement and scans its rows into T values.
func Query[T any](ctx context.Context, m *Mapper, stmt string) ([]*T, error) {
	typ, err := schema.Lookup[T](m.registry)
	if err != nil {
		return nil, err
	}
	rs, err := m.ExecuteQuery(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return graph.Scan(rs, typ, m.scanOptions()...)
}

// FetchVertices returns the vertices with the given raw ids, in the order
// of ids. Ids without a vertex are left out.
func FetchVertices[T any](ctx context.Context, m *Mapper, ids ...string) ([]*T, error) {
	byID, err := fetchByID[T](ctx, m, ids)
	if err != nil {
		return nil, err
	}
	vs, errs := dataloader.OrderMap(ids, byID)
	return dataloader.Found(vs, errs), nil
}

// fetchByID fetches the vertices with the given raw ids, keyed by raw id.
// When the stored id does not read back as the raw id, ids are fetched one
// statement each.
func fetchByID[T any](ctx context.Context, m *Mapper, ids []string) (map[string]*T, error) {
	typ, l, err := vertexType[T](m, "fetch vertices")
	if err != nil {
		return nil, err
	}
	if !l.IDAsField() && !l.KeyPolicy().Reversible() {
		return fetchEach(ctx, m, typ, l, ids)
	}
	stmt, err := ngql.Fetch(l, ids...)
	if err != nil {
		return nil, err
	}
	rs, err := m.ExecuteQuery(ctx, stmt)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*T, rs.Len())
	for _, r := range rs.Records() {
		cell, ok := r.Get(l.IDProperty())
		if !ok || cell.IsNull() {
			continue
		}
		v, err := graph.ScanRecord(r, typ, m.scanOptions()...)
		if err != nil {
			return nil, err
		}
		byID[rawID(cell)] = v
	}
	return byID, nil
}

func fetchEach[T any](ctx context.Context, m *Mapper, typ *schema.Type[T], l *schema.VertexLabel, ids []string) (map[string]*T, error) {
	byID := make(map[string]*T, len(ids))
	for _, id := range ids {
		if _, ok := byID[id]; ok {
			continue
		}
		stmt, err := ngql.Fetch(l, id)
		if err != nil {
			return nil, err
		}
		rs, err := m.ExecuteQuery(ctx, stmt)
		if err != nil {
			return nil, err
		}
		if rs.Len() == 0 {
			continue
		}
		v, err := graph.ScanRecord(rs.Records()[0], typ, m.scanOptions()...)
		if err != nil {
			return nil, err
		}
		byID[id] = v
	}
	return byID, nil
}

// FetchVertex returns the stored vertex with the id of example.
// It fails with a *graphocean.NotFoundError when there is none.
func FetchVertex[T any](ctx context.Context, m *Mapper, example *T) (*T, error) {
	typ, _, err := vertexType[T](m, "fetch vertex")
	if err != nil {
		return nil, err
	}
	e, err := graph.NewVertex(typ, example)
	if err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, graphocean.NewPreconditionError("fetch vertex", graphocean.ErrInvalidID, "tag %q: empty id", e.Name)
	}
	vs, err := FetchVertices[T](ctx, m, e.ID)
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return nil, graphocean.NewNotFoundErrorWithID(e.Name, e.ID)
	}
	return vs[0], nil
}

func vertexType[T any](m *Mapper, op string) (*schema.Type[T], *schema.VertexLabel, error) {
	typ, err := schema.Lookup[T](m.registry)
	if err != nil {
		return nil, nil, err
	}
	l := typ.Vertex()
	if l == nil {
		return nil, nil, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "%T is not a vertex type", (*T)(nil))
	}
	return typ, l, nil
}

// rawID returns the id a cell holds as it is written in statements
// before keying.
func rawID(v dialect.Value) string {
	if s, err := v.AsString(); err == nil {
		return s
	}
	return v.String()
}
