package ngql

import (
	"strconv"
	"strings"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/schema/key"
)

// PathMode selects the paths FIND PATH returns.
type PathMode uint8

// Path modes.
const (
	// NoLoop returns all paths without cycles.
	NoLoop PathMode = iota
	// Shortest returns the shortest paths.
	Shortest
	// All returns all paths, cycles included.
	All
)

// String returns the mode keyword.
func (m PathMode) String() string {
	switch m {
	case Shortest:
		return "SHORTEST"
	case All:
		return "ALL"
	default:
		return "NOLOOP"
	}
}

// PathQuery builds a FIND PATH statement. By default paths are loop free,
// carry properties and follow edges of any type in both directions.
type PathQuery struct {
	from, to  []string
	over      []string
	direction Direction
	mode      PathMode
	noProp    bool
	where     Predicate
	policy    key.Policy
	steps     int
}

// FindPath returns a path query between the vertices with the given raw
// ids, keyed with the string_key policy.
func FindPath(from, to []string) *PathQuery {
	return &PathQuery{from: from, to: to, direction: Bidirect}
}

// Over restricts the edge types followed. No types means any type.
func (q *PathQuery) Over(edges ...string) *PathQuery {
	q.over = append(q.over, edges...)
	return q
}

// Direction sets the direction edges are followed in.
func (q *PathQuery) Direction(d Direction) *PathQuery {
	q.direction = d
	return q
}

// Mode sets the path mode.
func (q *PathQuery) Mode(m PathMode) *PathQuery {
	q.mode = m
	return q
}

// WithProp sets whether paths carry vertex and edge properties.
func (q *PathQuery) WithProp(b bool) *PathQuery {
	q.noProp = !b
	return q
}

// Where filters the edges of the paths. Only edge properties may be used.
func (q *PathQuery) Where(p Predicate) *PathQuery {
	q.where = p
	return q
}

// KeyPolicy sets the policy the ids are keyed with.
func (q *PathQuery) KeyPolicy(p key.Policy) *PathQuery {
	q.policy = p
	return q
}

// UpTo bounds the path length. Zero leaves it unbounded.
func (q *PathQuery) UpTo(steps int) *PathQuery {
	q.steps = steps
	return q
}

// Query compiles the statement:
//
//	FIND SHORTEST PATH WITH PROP FROM "p1" TO "p3" OVER follow BIDIRECT WHERE follow.degree > 90 YIELD path AS p
func (q *PathQuery) Query() (string, error) {
	if len(q.from) == 0 || len(q.to) == 0 {
		return "", graphocean.NewPreconditionError("find path", graphocean.ErrInvalidID, "start and end ids are required")
	}
	var b strings.Builder
	b.WriteString("FIND ")
	b.WriteString(q.mode.String())
	b.WriteString(" PATH ")
	if !q.noProp {
		b.WriteString("WITH PROP ")
	}
	b.WriteString("FROM ")
	b.WriteString(keys(q.policy, q.from))
	b.WriteString(" TO ")
	b.WriteString(keys(q.policy, q.to))
	b.WriteString(" OVER ")
	if len(q.over) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(q.over, ", "))
	}
	if d := q.direction.String(); d != "" {
		b.WriteString(" ")
		b.WriteString(d)
	}
	if !q.where.IsZero() {
		b.WriteString(" WHERE ")
		b.WriteString(q.where.String())
	}
	if q.steps > 0 {
		b.WriteString(" UPTO ")
		b.WriteString(strconv.Itoa(q.steps))
		b.WriteString(" STEPS")
	}
	b.WriteString(" YIELD path AS p")
	return b.String(), nil
}
