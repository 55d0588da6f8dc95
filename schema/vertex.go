package schema

import (
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
	"github.com/syssam/graphocean/schema/key"
)

// VertexConfig declares the tag of a vertex type.
type VertexConfig struct {
	Name      string     // tag name, "" for dynamically named tags
	KeyPolicy key.Policy // vertex id policy
	IDAsField bool       // store the id as a property too
	Comment   string     // tag comment
}

// Tag returns the configuration of the named tag with string keys and the
// id stored as a property.
func Tag(name string) VertexConfig {
	return VertexConfig{Name: name, KeyPolicy: key.StringKey, IDAsField: true}
}

// WithKeyPolicy sets the vertex id policy.
func (c VertexConfig) WithKeyPolicy(p key.Policy) VertexConfig {
	c.KeyPolicy = p
	return c
}

// WithIDAsField sets whether the id is stored as a property.
func (c VertexConfig) WithIDAsField(b bool) VertexConfig {
	c.IDAsField = b
	return c
}

// WithComment sets the tag comment.
func (c VertexConfig) WithComment(s string) VertexConfig {
	c.Comment = s
	return c
}

// VertexSchema is implemented by vertex types.
//
//	type Player struct {
//	    No   string
//	    Name string
//	}
//
//	func (Player) Vertex() schema.VertexConfig { return schema.Tag("player") }
//
//	func (Player) Fields() []field.Field[Player] {
//	    return []field.Field[Player]{
//	        field.Value("no", func(p *Player) *string { return &p.No }).VertexID(),
//	        field.Value("name", func(p *Player) *string { return &p.Name }),
//	    }
//	}
type VertexSchema[T any] interface {
	Vertex() VertexConfig
	Fields() []field.Field[T]
}

// VertexLabel is the label of a vertex type.
type VertexLabel struct {
	label
	policy      key.Policy
	idAsField   bool
	idProperty  string
	idType      field.Type
	idFormatter format.Formatter
}

// KeyPolicy returns the vertex id policy.
func (l *VertexLabel) KeyPolicy() key.Policy { return l.policy }

// IDAsField reports whether the id is stored as a property.
func (l *VertexLabel) IDAsField() bool { return l.idAsField }

// IDProperty returns the property name of the id member.
func (l *VertexLabel) IDProperty() string { return l.idProperty }

// IDFormatter returns the formatter of the id member, or nil.
func (l *VertexLabel) IDFormatter() format.Formatter { return l.idFormatter }

// Key returns the statement literal of the raw vertex id.
func (l *VertexLabel) Key(id string) string {
	return key.Literal(l.policy, id)
}

// IDType returns the data type of the id member.
func (l *VertexLabel) IDType() field.Type {
	return l.idType
}
