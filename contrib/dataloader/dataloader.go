// Package dataloader provides helpers for batch loading graph entities by
// vertex id.
//
// The batch functions built here fit DataLoader implementations such as
// github.com/graph-gophers/dataloader/v7 or github.com/vikstrous/dataloadgen:
//
//	players := mapper.VertexLoader[Player](m)
//	loader := dataloadgen.NewLoader(players)
//	p, err := loader.Load(ctx, "p1")
//
// Results are aligned with the requested keys. A key without a value gets
// the zero value and an error wrapping graphocean.ErrNotFound.
package dataloader

import (
	"context"
	"fmt"

	"github.com/syssam/graphocean"
)

// KeyFunc extracts the key of a value.
type KeyFunc[K comparable, V any] func(V) K

// BatchFunc loads the values of keys. Both results have the length of keys.
type BatchFunc[K comparable, V any] func(ctx context.Context, keys []K) ([]V, []error)

// OrderByKeys aligns values with keys using keyFn.
func OrderByKeys[K comparable, V any](keys []K, values []V, keyFn KeyFunc[K, V]) ([]V, []error) {
	lookup := make(map[K]V, len(values))
	for _, v := range values {
		lookup[keyFn(v)] = v
	}
	return OrderMap(keys, lookup)
}

// OrderMap aligns the values of lookup with keys.
func OrderMap[K comparable, V any](keys []K, lookup map[K]V) ([]V, []error) {
	result := make([]V, len(keys))
	errs := make([]error, len(keys))
	for i, k := range keys {
		v, ok := lookup[k]
		if !ok {
			errs[i] = fmt.Errorf("dataloader: key %v: %w", k, graphocean.ErrNotFound)
			continue
		}
		result[i] = v
	}
	return result, errs
}

// Found returns the values of OrderMap or OrderByKeys that have no error,
// keeping their order.
func Found[V any](values []V, errs []error) []V {
	out := make([]V, 0, len(values))
	for i, v := range values {
		if errs[i] == nil {
			out = append(out, v)
		}
	}
	return out
}

// GroupByKey groups values by key, e.g. edges by their source vertex.
func GroupByKey[K comparable, V any](values []V, keyFn KeyFunc[K, V]) map[K][]V {
	result := make(map[K][]V)
	for _, v := range values {
		k := keyFn(v)
		result[k] = append(result[k], v)
	}
	return result
}

// OrderGroupsByKeys returns the group of every key, nil for keys without
// values. Missing groups are not errors.
func OrderGroupsByKeys[K comparable, V any](keys []K, groups map[K][]V) [][]V {
	result := make([][]V, len(keys))
	for i, k := range keys {
		result[i] = groups[k]
	}
	return result
}

// Fail returns the result of a batch that failed as a whole.
func Fail[V any](n int, err error) ([]V, []error) {
	errs := make([]error, n)
	for i := range errs {
		errs[i] = err
	}
	return make([]V, n), errs
}

type ctxKey struct{}

// WithLoaders returns a copy of ctx carrying loaders, typically a struct of
// the loaders of one request.
func WithLoaders[T any](ctx context.Context, loaders T) context.Context {
	return context.WithValue(ctx, ctxKey{}, loaders)
}

// For returns the loaders carried by ctx, or the zero T.
func For[T any](ctx context.Context) T {
	v, _ := ctx.Value(ctxKey{}).(T)
	return v
}
