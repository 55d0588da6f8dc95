package mapper

import (
	"context"

	"github.com/syssam/graphocean/contrib/dataloader"
	"github.com/syssam/graphocean/graph"
	"github.com/syssam/graphocean/schema"
)

// VertexLoader returns a batch function fetching vertices of T by raw id
// with one FETCH per batch.
func VertexLoader[T any](m *Mapper) dataloader.BatchFunc[string, *T] {
	return func(ctx context.Context, ids []string) ([]*T, []error) {
		byID, err := fetchByID[T](ctx, m, ids)
		if err != nil {
			return dataloader.Fail[*T](len(ids), err)
		}
		return dataloader.OrderMap(ids, byID)
	}
}

// OutEdgeLoader returns a batch function loading the edges of type E
// leaving each of the given vertices with one GO per batch, or one GO per
// vertex when source ids do not read back. Vertices without edges get a
// nil slice.
func OutEdgeLoader[E any](m *Mapper) dataloader.BatchFunc[string, []*E] {
	return func(ctx context.Context, ids []string) ([][]*E, []error) {
		typ, err := schema.Lookup[E](m.registry)
		if err != nil {
			return dataloader.Fail[[]*E](len(ids), err)
		}
		groups := make(map[string][]*E, len(ids))
		if l := typ.Edge(); l != nil && !l.SrcIDAsField() && !l.SrcKeyPolicy().Reversible() {
			for _, id := range ids {
				if _, ok := groups[id]; ok {
					continue
				}
				edges, err := GoOutEdges[E](ctx, m, id)
				if err != nil {
					return dataloader.Fail[[]*E](len(ids), err)
				}
				groups[id] = edges
			}
			return dataloader.OrderGroupsByKeys(ids, groups), make([]error, len(ids))
		}
		edges, err := GoOutEdges[E](ctx, m, ids...)
		if err != nil {
			return dataloader.Fail[[]*E](len(ids), err)
		}
		for _, e := range edges {
			entity, err := graph.NewEdge(typ, e)
			if err != nil {
				return dataloader.Fail[[]*E](len(ids), err)
			}
			groups[entity.SrcID] = append(groups[entity.SrcID], e)
		}
		return dataloader.OrderGroupsByKeys(ids, groups), make([]error, len(ids))
	}
}
