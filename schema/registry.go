package schema

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Registry memoizes the metadata of Go types. It is safe for concurrent use.
// Concurrent first lookups of a type are coalesced; should two builds of
// the same type still race, the first one stored is returned to everyone.
type Registry struct {
	types sync.Map // map[*T]*Type[T]
	group singleflight.Group
	size  atomic.Int64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default is the process-wide registry used by For.
var Default = NewRegistry()

// Len returns the number of types in the registry.
func (r *Registry) Len() int {
	return int(r.size.Load())
}

// For returns the metadata of T from the default registry.
func For[T any]() (*Type[T], error) {
	return Lookup[T](Default)
}

// Lookup returns the metadata of T from r, building it on first use.
func Lookup[T any](r *Registry) (*Type[T], error) {
	k := (*T)(nil)
	if v, ok := r.types.Load(k); ok {
		return v.(*Type[T]), nil
	}
	v, err, _ := r.group.Do(fmt.Sprintf("%T", k), func() (any, error) {
		return store[T](r, k)
	})
	if err != nil {
		return nil, err
	}
	if t, ok := v.(*Type[T]); ok {
		return t, nil
	}
	// A distinct type with the same printed name shared the flight.
	v, err = store[T](r, k)
	if err != nil {
		return nil, err
	}
	return v.(*Type[T]), nil
}

// store builds T unless it is present, and publishes the complete result.
func store[T any](r *Registry, k *T) (any, error) {
	if v, ok := r.types.Load(k); ok {
		return v, nil
	}
	t, err := Build[T]()
	if err != nil {
		return nil, err
	}
	v, loaded := r.types.LoadOrStore(k, t)
	if !loaded {
		r.size.Add(1)
	}
	return v, nil
}
