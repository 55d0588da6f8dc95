package ngql

import (
	"strings"
	"time"

	"github.com/syssam/graphocean/schema/field"
)

// Predicate is a condition over label properties, rendered as an nGQL
// expression. The zero Predicate is no condition.
type Predicate struct {
	expr string
}

// String returns the expression.
func (p Predicate) String() string { return p.expr }

// IsZero reports whether p holds no condition.
func (p Predicate) IsZero() bool { return p.expr == "" }

// Raw returns a predicate of a hand-written expression.
func Raw(expr string) Predicate { return Predicate{expr: expr} }

// And returns the conjunction of ps. Zero predicates are ignored.
func And(ps ...Predicate) Predicate { return join(" AND ", ps) }

// Or returns the disjunction of ps. Zero predicates are ignored.
func Or(ps ...Predicate) Predicate { return join(" OR ", ps) }

// Not returns the negation of p.
func Not(p Predicate) Predicate {
	if p.IsZero() {
		return p
	}
	return Predicate{expr: "NOT (" + p.expr + ")"}
}

func join(op string, ps []Predicate) Predicate {
	exprs := make([]string, 0, len(ps))
	for _, p := range ps {
		if !p.IsZero() {
			exprs = append(exprs, p.expr)
		}
	}
	switch len(exprs) {
	case 0:
		return Predicate{}
	case 1:
		return Predicate{expr: exprs[0]}
	default:
		return Predicate{expr: "(" + strings.Join(exprs, op) + ")"}
	}
}

// Prop is a typed property of a tag or edge type, used to build
// predicates whose values are written by Literal.
//
// Usage:
//
//	degree := ngql.IntProp("follow", "degree")
//	ngql.And(degree.GTE(90), ngql.StringProp("follow", "since").NotNull())
type Prop[V any] struct {
	owner string
	name  string
	typ   field.Type
}

// StringProp returns a string property of owner.
func StringProp(owner, name string) Prop[string] {
	return Prop[string]{owner: owner, name: name, typ: field.TypeString}
}

// IntProp returns an integer property of owner.
func IntProp(owner, name string) Prop[int64] {
	return Prop[int64]{owner: owner, name: name, typ: field.TypeInt64}
}

// FloatProp returns a double property of owner.
func FloatProp(owner, name string) Prop[float64] {
	return Prop[float64]{owner: owner, name: name, typ: field.TypeDouble}
}

// BoolProp returns a boolean property of owner.
func BoolProp(owner, name string) Prop[bool] {
	return Prop[bool]{owner: owner, name: name, typ: field.TypeBool}
}

// TimeProp returns a property of owner of the temporal type t.
func TimeProp(owner, name string, t field.Type) Prop[time.Time] {
	return Prop[time.Time]{owner: owner, name: name, typ: t}
}

// Name returns the qualified property reference, owner.name.
func (p Prop[V]) Name() string { return p.owner + "." + p.name }

func (p Prop[V]) cmp(op string, v V) Predicate {
	return Predicate{expr: p.Name() + " " + op + " " + Literal(p.typ, v)}
}

// EQ returns a predicate that checks if the property equals v.
func (p Prop[V]) EQ(v V) Predicate { return p.cmp("==", v) }

// NEQ returns a predicate that checks if the property does not equal v.
func (p Prop[V]) NEQ(v V) Predicate { return p.cmp("!=", v) }

// GT returns a predicate that checks if the property is greater than v.
func (p Prop[V]) GT(v V) Predicate { return p.cmp(">", v) }

// GTE returns a predicate that checks if the property is greater than or equal to v.
func (p Prop[V]) GTE(v V) Predicate { return p.cmp(">=", v) }

// LT returns a predicate that checks if the property is less than v.
func (p Prop[V]) LT(v V) Predicate { return p.cmp("<", v) }

// LTE returns a predicate that checks if the property is less than or equal to v.
func (p Prop[V]) LTE(v V) Predicate { return p.cmp("<=", v) }

// In returns a predicate that checks if the property is one of vs.
func (p Prop[V]) In(vs ...V) Predicate {
	return Predicate{expr: p.Name() + " IN [" + Literals(p.typ, vs...) + "]"}
}

// NotIn returns a predicate that checks if the property is none of vs.
func (p Prop[V]) NotIn(vs ...V) Predicate {
	return Predicate{expr: p.Name() + " NOT IN [" + Literals(p.typ, vs...) + "]"}
}

// IsNull returns a predicate that checks if the property is NULL.
func (p Prop[V]) IsNull() Predicate { return Predicate{expr: p.Name() + " IS NULL"} }

// NotNull returns a predicate that checks if the property is not NULL.
func (p Prop[V]) NotNull() Predicate { return Predicate{expr: p.Name() + " IS NOT NULL"} }

// Contains returns a predicate that checks if the property contains s.
func (p Prop[V]) Contains(s string) Predicate {
	return Predicate{expr: p.Name() + " CONTAINS " + Literal(field.TypeString, s)}
}

// HasPrefix returns a predicate that checks if the property starts with s.
func (p Prop[V]) HasPrefix(s string) Predicate {
	return Predicate{expr: p.Name() + " STARTS WITH " + Literal(field.TypeString, s)}
}

// HasSuffix returns a predicate that checks if the property ends with s.
func (p Prop[V]) HasSuffix(s string) Predicate {
	return Predicate{expr: p.Name() + " ENDS WITH " + Literal(field.TypeString, s)}
}
