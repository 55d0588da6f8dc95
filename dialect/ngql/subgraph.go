package ngql

import (
	"strconv"
	"strings"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/schema/key"
)

// SubgraphQuery builds a GET SUBGRAPH statement. By default it walks one
// step over every edge type and yields properties, vertices and edges.
type SubgraphQuery struct {
	from      []string
	steps     int
	in        []string
	out       []string
	both      []string
	where     Predicate
	noProp    bool
	edgesOnly bool
	policy    key.Policy
}

// GetSubgraph returns a sub-graph query from the vertices with the given
// raw ids, keyed with the string_key policy.
func GetSubgraph(from ...string) *SubgraphQuery {
	return &SubgraphQuery{from: from, steps: 1}
}

// Steps sets the number of hops.
func (q *SubgraphQuery) Steps(n int) *SubgraphQuery {
	q.steps = n
	return q
}

// In restricts incoming edges to the given types.
func (q *SubgraphQuery) In(edges ...string) *SubgraphQuery {
	q.in = append(q.in, edges...)
	return q
}

// Out restricts outgoing edges to the given types.
func (q *SubgraphQuery) Out(edges ...string) *SubgraphQuery {
	q.out = append(q.out, edges...)
	return q
}

// Both restricts edges in either direction to the given types.
func (q *SubgraphQuery) Both(edges ...string) *SubgraphQuery {
	q.both = append(q.both, edges...)
	return q
}

// Where filters the vertices and edges of the sub-graph.
func (q *SubgraphQuery) Where(p Predicate) *SubgraphQuery {
	q.where = p
	return q
}

// WithProp sets whether vertices and edges carry their properties.
func (q *SubgraphQuery) WithProp(b bool) *SubgraphQuery {
	q.noProp = !b
	return q
}

// EdgesOnly leaves vertices out of the result.
func (q *SubgraphQuery) EdgesOnly() *SubgraphQuery {
	q.edgesOnly = true
	return q
}

// KeyPolicy sets the policy the ids are keyed with.
func (q *SubgraphQuery) KeyPolicy(p key.Policy) *SubgraphQuery {
	q.policy = p
	return q
}

// Query compiles the statement. Direction clauses are written in the
// order IN, OUT, BOTH:
//
//	GET SUBGRAPH WITH PROP 2 STEPS FROM "p1" IN serve OUT follow YIELD VERTICES AS nodes, EDGES AS relationships
func (q *SubgraphQuery) Query() (string, error) {
	if len(q.from) == 0 {
		return "", graphocean.NewPreconditionError("get subgraph", graphocean.ErrInvalidID, "start ids are required")
	}
	steps := q.steps
	if steps <= 0 {
		steps = 1
	}
	var b strings.Builder
	b.WriteString("GET SUBGRAPH ")
	if !q.noProp {
		b.WriteString("WITH PROP ")
	}
	b.WriteString(strconv.Itoa(steps))
	b.WriteString(" STEPS FROM ")
	b.WriteString(keys(q.policy, q.from))
	for _, c := range []struct {
		word  string
		edges []string
	}{
		{"IN", q.in},
		{"OUT", q.out},
		{"BOTH", q.both},
	} {
		if len(c.edges) > 0 {
			b.WriteString(" ")
			b.WriteString(c.word)
			b.WriteString(" ")
			b.WriteString(strings.Join(c.edges, ", "))
		}
	}
	if !q.where.IsZero() {
		b.WriteString(" WHERE ")
		b.WriteString(q.where.String())
	}
	if q.edgesOnly {
		b.WriteString(" YIELD EDGES AS relationships")
	} else {
		b.WriteString(" YIELD VERTICES AS nodes, EDGES AS relationships")
	}
	return b.String(), nil
}
