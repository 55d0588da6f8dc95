// Package format provides value formatters that convert application values
// to statement literals and wire values back to application values.
//
// Formatters are resolved by Kind through a registry of constructors. The
// built-in kinds cover the temporal data types; custom kinds are added with
// Register before any schema naming them is built:
//
//	format.Register("cents", func() format.Formatter { return Cents{} })
//
//	field.Value("price", func(p *Product) *int64 { return &p.Price }).
//	    Formatter("cents")
package format

import (
	"sync"

	"github.com/syssam/graphocean"
)

// Formatter is a bidirectional converter between an application value and
// its statement literal or wire representation.
type Formatter interface {
	// Format converts an application value into the value written to a
	// statement. Returned strings are emitted as-is for non-string types.
	Format(v any) (any, error)
	// Reformat converts a wire value (or a value produced by Format) back
	// into the application value.
	Reformat(v any) (any, error)
}

// Kind names a formatter constructor.
type Kind string

// Built-in formatter kinds.
const (
	KindTimestamp Kind = "timestamp"
	KindDate      Kind = "date"
	KindDateTime  Kind = "datetime"
)

var (
	mu    sync.RWMutex
	ctors = map[Kind]func() Formatter{
		KindTimestamp: func() Formatter { return Timestamp{} },
		KindDate:      func() Formatter { return Date{} },
		KindDateTime:  func() Formatter { return DateTime{} },
	}
)

// Register adds or replaces the constructor of a formatter kind.
func Register(kind Kind, ctor func() Formatter) {
	mu.Lock()
	defer mu.Unlock()
	if ctor == nil {
		delete(ctors, kind)
		return
	}
	ctors[kind] = ctor
}

// Registered reports whether kind has a constructor.
func Registered(kind Kind) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := ctors[kind]
	return ok
}

// New instantiates the formatter of the given kind.
func New(kind Kind) (Formatter, error) {
	mu.RLock()
	ctor, ok := ctors[kind]
	mu.RUnlock()
	if !ok {
		return nil, graphocean.NewPreconditionError("new formatter", graphocean.ErrFormatterNoConstructor, "kind %q", string(kind))
	}
	return ctor(), nil
}

// Func adapts a pair of functions to a Formatter.
type Func struct {
	To   func(any) (any, error)
	From func(any) (any, error)
}

// Format calls f.To, or returns v when it is nil.
func (f Func) Format(v any) (any, error) {
	if f.To == nil {
		return v, nil
	}
	return f.To(v)
}

// Reformat calls f.From, or returns v when it is nil.
func (f Func) Reformat(v any) (any, error) {
	if f.From == nil {
		return v, nil
	}
	return f.From(v)
}
