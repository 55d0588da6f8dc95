package ngql

import (
	"fmt"
	"strings"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/schema"
	"github.com/syssam/graphocean/schema/key"
)

// Direction is the direction edges are followed in.
type Direction uint8

// Edge directions.
const (
	// Forward follows outgoing edges.
	Forward Direction = iota
	// Reverse follows incoming edges.
	Reverse
	// Bidirect follows edges both ways.
	Bidirect
)

// String returns the direction keyword, "" for Forward.
func (d Direction) String() string {
	switch d {
	case Reverse:
		return "REVERSELY"
	case Bidirect:
		return "BIDIRECT"
	default:
		return ""
	}
}

// Fetch compiles the fetch of the vertices with the given raw ids:
//
//	FETCH PROP ON player "p1", "p2" YIELD player.no AS no, player.name AS name
//
// The vertex id is yielded as id(vertex) when it is not stored as a property
// and the key policy keeps the raw id. Hash and UUID keys are not yielded.
func Fetch(l *schema.VertexLabel, ids ...string) (string, error) {
	const op = "fetch vertices"
	if l.Name() == "" {
		return "", graphocean.NewPreconditionError(op, graphocean.ErrMissingRole, "tag has no name")
	}
	if len(ids) == 0 {
		return "", graphocean.NewPreconditionError(op, graphocean.ErrInvalidID, "no vertex ids")
	}
	yield := yields(l)
	if !l.IDAsField() && l.KeyPolicy().Reversible() {
		yield = append(yield, "id(vertex) AS "+l.IDProperty())
	}
	return fmt.Sprintf("FETCH PROP ON %s %s YIELD %s", l.Name(), keys(l.KeyPolicy(), ids), strings.Join(yield, ", ")), nil
}

// Go compiles the one step traversal of the edges of l from the vertices
// with the given raw ids:
//
//	GO FROM "p1" OVER follow YIELD src(edge) AS follower, dst(edge) AS followed, follow.degree AS degree
//
// The ids are keyed with the source policy of l, or the destination
// policy for reverse traversals.
func Go(l *schema.EdgeLabel, d Direction, ids ...string) (string, error) {
	const op = "go over edges"
	if l.Name() == "" {
		return "", graphocean.NewPreconditionError(op, graphocean.ErrMissingRole, "edge type has no name")
	}
	if len(ids) == 0 {
		return "", graphocean.NewPreconditionError(op, graphocean.ErrInvalidID, "no vertex ids")
	}
	policy := l.SrcKeyPolicy()
	if d == Reverse {
		policy = l.DstKeyPolicy()
	}
	yield := yields(l)
	if !l.SrcIDAsField() && l.SrcKeyPolicy().Reversible() {
		yield = append(yield, "src(edge) AS "+l.SrcIDProperty())
	}
	if !l.DstIDAsField() && l.DstKeyPolicy().Reversible() {
		yield = append(yield, "dst(edge) AS "+l.DstIDProperty())
	}
	over := l.Name()
	if s := d.String(); s != "" {
		over += " " + s
	}
	return fmt.Sprintf("GO FROM %s OVER %s YIELD %s", keys(policy, ids), over, strings.Join(yield, ", ")), nil
}

// yields returns label.property AS property for every typed property of l.
// Untyped properties are not part of the label DDL.
func yields(l schema.Label) []string {
	out := make([]string, 0, len(l.Properties())+2)
	for _, p := range l.Properties() {
		if !p.Type.Valid() {
			continue
		}
		out = append(out, fmt.Sprintf("%s.%s AS %s", l.Name(), p.Name, p.Name))
	}
	return out
}

func keys(p key.Policy, ids []string) string {
	return strings.Join(key.Literals(p, ids), ", ")
}
