package graph

import (
	"slices"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/schema"
)

// Sub-graph and path column names.
const (
	NodesColumn         = "nodes"
	RelationshipsColumn = "relationships"
	PathColumn          = "p"
)

// SubGraph is a de-duplicated set of nodes and relationships.
type SubGraph struct {
	Nodes         []dialect.Node
	Relationships []dialect.Relationship
}

// RelationshipKey returns the identity of a relationship.
func RelationshipKey(r dialect.Relationship) EdgeKey {
	return EdgeKey{Src: r.Src.String(), Name: r.Name, Dst: r.Dst.String()}
}

// collector accumulates nodes and relationships without duplicates.
type collector struct {
	nodes map[string]struct{}
	rels  map[EdgeKey]struct{}
	SubGraph
}

func newCollector() *collector {
	return &collector{nodes: make(map[string]struct{}), rels: make(map[EdgeKey]struct{})}
}

func (c *collector) node(n dialect.Node) {
	id := n.ID.String()
	if _, ok := c.nodes[id]; ok {
		return
	}
	c.nodes[id] = struct{}{}
	c.Nodes = append(c.Nodes, n)
}

func (c *collector) relationship(r dialect.Relationship) {
	k := RelationshipKey(r)
	if _, ok := c.rels[k]; ok {
		return
	}
	c.rels[k] = struct{}{}
	c.Relationships = append(c.Relationships, r)
}

// ScanSubGraph collects the nodes and relationships of a GET SUBGRAPH
// result. Nodes without tags are left out.
func ScanSubGraph(rs *dialect.ResultSet) (*SubGraph, error) {
	c := newCollector()
	for _, r := range rs.Records() {
		if cell, ok := r.Get(NodesColumn); ok && !cell.IsNull() {
			list, err := cell.AsList()
			if err != nil {
				return nil, err
			}
			for _, v := range list {
				n, err := v.AsNode()
				if err != nil {
					return nil, err
				}
				if len(n.Tags) == 0 {
					continue
				}
				c.node(n)
			}
		}
		if cell, ok := r.Get(RelationshipsColumn); ok && !cell.IsNull() {
			list, err := cell.AsList()
			if err != nil {
				return nil, err
			}
			for _, v := range list {
				rel, err := v.AsRelationship()
				if err != nil {
					return nil, err
				}
				c.relationship(rel)
			}
		}
	}
	return &c.SubGraph, nil
}

// Paths holds the paths of a FIND PATH result along with their
// de-duplicated nodes and relationships.
type Paths struct {
	Paths []dialect.Path
	SubGraph
}

// ScanPaths collects the paths of a FIND PATH result, read from the "p"
// column or else the first one. Paths are kept as returned.
func ScanPaths(rs *dialect.ResultSet) (*Paths, error) {
	at := 0
	for i, c := range rs.Columns {
		if c == PathColumn {
			at = i
			break
		}
	}
	var (
		c   = newCollector()
		out = &Paths{}
	)
	for _, r := range rs.Records() {
		cell := r.At(at)
		if cell.IsNull() {
			continue
		}
		p, err := cell.AsPath()
		if err != nil {
			return nil, err
		}
		out.Paths = append(out.Paths, p)
		for _, n := range p.Nodes {
			c.node(n)
		}
		for _, rel := range p.Relationships {
			c.relationship(rel)
		}
	}
	out.SubGraph = c.SubGraph
	return out, nil
}

// ScanNode returns the value of T held by the properties of n under the
// tag of T. Dynamically named tags read the first tag of n.
func ScanNode[T any](n dialect.Node, typ *schema.Type[T], opts ...ScanOption) (*T, error) {
	l := typ.Vertex()
	if l == nil {
		return nil, graphocean.NewPreconditionError("scan node", graphocean.ErrUnsupportedLabel, "%T is not a vertex type", (*T)(nil))
	}
	tag := l.Name()
	if tag == "" && len(n.Tags) > 0 {
		tag = n.Tags[0]
	}
	columns, values := cells(n.Props(tag))
	if l.NameField() != "" {
		columns, values = append(columns, l.NameField()), append(values, dialect.ValueOf(tag))
	}
	if !slices.Contains(columns, l.IDProperty()) {
		columns, values = append(columns, l.IDProperty()), append(values, n.ID)
	}
	return ScanRecord(dialect.RecordOf(columns, values), typ, opts...)
}

// ScanNodes returns the values of T held by the nodes carrying its tag.
func ScanNodes[T any](nodes []dialect.Node, typ *schema.Type[T], opts ...ScanOption) ([]*T, error) {
	var out []*T
	for _, n := range nodes {
		if l := typ.Vertex(); l != nil && l.Name() != "" && !n.HasTag(l.Name()) {
			continue
		}
		v, err := ScanNode(n, typ, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ScanRelationship returns the value of T held by r.
func ScanRelationship[T any](r dialect.Relationship, typ *schema.Type[T], opts ...ScanOption) (*T, error) {
	l := typ.Edge()
	if l == nil {
		return nil, graphocean.NewPreconditionError("scan relationship", graphocean.ErrUnsupportedLabel, "%T is not an edge type", (*T)(nil))
	}
	columns, values := cells(r.Properties)
	if l.NameField() != "" {
		columns, values = append(columns, l.NameField()), append(values, dialect.ValueOf(r.Name))
	}
	if !slices.Contains(columns, l.SrcIDProperty()) {
		columns, values = append(columns, l.SrcIDProperty()), append(values, r.Src)
	}
	if !slices.Contains(columns, l.DstIDProperty()) {
		columns, values = append(columns, l.DstIDProperty()), append(values, r.Dst)
	}
	return ScanRecord(dialect.RecordOf(columns, values), typ, opts...)
}

// ScanRelationships returns the values of T held by the relationships of
// its edge type.
func ScanRelationships[T any](rels []dialect.Relationship, typ *schema.Type[T], opts ...ScanOption) ([]*T, error) {
	var out []*T
	for _, r := range rels {
		if l := typ.Edge(); l != nil && l.Name() != "" && r.Name != l.Name() {
			continue
		}
		v, err := ScanRelationship(r, typ, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func cells(props map[string]dialect.Value) ([]string, []dialect.Value) {
	columns := make([]string, 0, len(props)+3)
	values := make([]dialect.Value, 0, len(props)+3)
	for k, v := range props {
		columns = append(columns, k)
		values = append(values, v)
	}
	return columns, values
}
