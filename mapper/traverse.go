package mapper

import (
	"context"

	"github.com/syssam/graphocean/dialect/ngql"
	"github.com/syssam/graphocean/graph"
)

// SubGraph runs q and returns its distinct nodes and relationships.
func (m *Mapper) SubGraph(ctx context.Context, q *ngql.SubgraphQuery) (*graph.SubGraph, error) {
	stmt, err := q.Query()
	if err != nil {
		return nil, err
	}
	rs, err := m.ExecuteQuery(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return graph.ScanSubGraph(rs)
}

// FindPath runs q and returns the paths found with their distinct nodes
// and relationships.
func (m *Mapper) FindPath(ctx context.Context, q *ngql.PathQuery) (*graph.Paths, error) {
	stmt, err := q.Query()
	if err != nil {
		return nil, err
	}
	rs, err := m.ExecuteQuery(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return graph.ScanPaths(rs)
}
