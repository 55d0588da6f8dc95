// Package key resolves raw vertex identifiers into statement literals.
package key

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/syssam/graphocean/dialect"
)

// Policy is the rule that turns a raw identifier into a vertex key literal.
type Policy uint8

// Key policies.
const (
	// StringKey quotes the id: "id".
	StringKey Policy = iota
	// Hash wraps the quoted id in the store hash function: hash("id").
	Hash
	// UUID ignores the id and generates a fresh quoted UUID on every call.
	UUID
	// Int64 passes the id through unchanged.
	Int64
)

var names = [...]string{
	StringKey: "string_key",
	Hash:      "hash",
	UUID:      "uuid",
	Int64:     "int_64",
}

// String returns the policy name.
func (p Policy) String() string {
	if int(p) < len(names) {
		return names[p]
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// Reversible reports whether the stored vertex id equals the raw id, so
// that id(vertex), src(edge) and dst(edge) read back the raw id.
func (p Policy) Reversible() bool {
	return p == StringKey || p == Int64
}

// Parse returns the policy with the given name.
func Parse(s string) (Policy, error) {
	for i, n := range names {
		if n == s {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("key: unknown policy %q", s)
}

// Literal returns the statement literal of id under policy p.
func Literal(p Policy, id string) string {
	switch p {
	case Hash:
		return "hash(" + dialect.Quote(id) + ")"
	case UUID:
		return dialect.Quote(uuid.NewString())
	case Int64:
		return id
	default:
		return dialect.Quote(id)
	}
}

// Literals applies Literal to every id.
func Literals(p Policy, ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = Literal(p, id)
	}
	return out
}
