package graph

import (
	"github.com/syssam/graphocean/schema"
)

// Properties is an insertion-ordered property map.
// The zero value is an empty map ready to use.
type Properties struct {
	keys   []string
	values map[string]any
}

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]any)}
}

// Set sets the value of k, keeping the position of an existing key.
func (p *Properties) Set(k string, v any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[k]; !ok {
		p.keys = append(p.keys, k)
	}
	p.values[k] = v
}

// Get returns the value of k. A key set to nil reports true.
func (p *Properties) Get(k string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[k]
	return v, ok
}

// Has reports whether k is present.
func (p *Properties) Has(k string) bool {
	_, ok := p.Get(k)
	return ok
}

// Delete removes k and reports whether it was present.
func (p *Properties) Delete(k string) bool {
	if p == nil {
		return false
	}
	if _, ok := p.values[k]; !ok {
		return false
	}
	delete(p.values, k)
	for i, key := range p.keys {
		if key == k {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Range calls fn for every key in insertion order until fn returns false.
func (p *Properties) Range(fn func(k string, v any) bool) {
	for _, k := range p.Keys() {
		if !fn(k, p.values[k]) {
			return
		}
	}
}

// Vertex is a vertex bound to its tag.
type Vertex struct {
	ID         string
	Name       string
	Properties *Properties
	Label      *schema.VertexLabel
}

// Key returns the statement literal of the vertex id.
func (v *Vertex) Key() string {
	return v.Label.Key(v.ID)
}

// EdgeKey identifies an edge.
type EdgeKey struct {
	Src  string
	Name string
	Dst  string
}

// Edge is an edge bound to its edge type.
type Edge struct {
	Name         string
	SrcID        string
	DstID        string
	Properties   *Properties
	Level        int64 // rank, 0 by default
	IgnoreDirect bool  // identity ignores the edge direction
	Label        *schema.EdgeLabel
}

// Key returns the identity of the edge. Edges that ignore their direction
// have their endpoints ordered.
func (e *Edge) Key() EdgeKey {
	src, dst := e.SrcID, e.DstID
	if e.IgnoreDirect && dst < src {
		src, dst = dst, src
	}
	return EdgeKey{Src: src, Name: e.Name, Dst: dst}
}

// Equal reports whether e and o identify the same edge.
func (e *Edge) Equal(o *Edge) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Name != o.Name {
		return false
	}
	if e.SrcID == o.SrcID && e.DstID == o.DstID {
		return true
	}
	return (e.IgnoreDirect || o.IgnoreDirect) && e.SrcID == o.DstID && e.DstID == o.SrcID
}

// SrcKey returns the statement literal of the source id.
func (e *Edge) SrcKey() string {
	return e.Label.SrcKey(e.SrcID)
}

// DstKey returns the statement literal of the destination id.
func (e *Edge) DstKey() string {
	return e.Label.DstKey(e.DstID)
}
