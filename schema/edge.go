package schema

import (
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
	"github.com/syssam/graphocean/schema/key"
)

// EdgeConfig declares the edge type of an edge schema.
type EdgeConfig struct {
	Name         string     // edge type name, "" for dynamically named edges
	SrcKeyPolicy key.Policy // source id policy
	DstKeyPolicy key.Policy // destination id policy
	SrcIDAsField bool       // store the source id as a property too
	DstIDAsField bool       // store the destination id as a property too
	Comment      string     // edge type comment
}

// EdgeType returns the configuration of the named edge type with string
// keys on both ends and both ids stored as properties.
func EdgeType(name string) EdgeConfig {
	return EdgeConfig{
		Name:         name,
		SrcKeyPolicy: key.StringKey,
		DstKeyPolicy: key.StringKey,
		SrcIDAsField: true,
		DstIDAsField: true,
	}
}

// WithKeyPolicies sets the source and destination id policies.
func (c EdgeConfig) WithKeyPolicies(src, dst key.Policy) EdgeConfig {
	c.SrcKeyPolicy, c.DstKeyPolicy = src, dst
	return c
}

// WithIDsAsFields sets whether the source and destination ids are stored
// as properties.
func (c EdgeConfig) WithIDsAsFields(src, dst bool) EdgeConfig {
	c.SrcIDAsField, c.DstIDAsField = src, dst
	return c
}

// WithComment sets the edge type comment.
func (c EdgeConfig) WithComment(s string) EdgeConfig {
	c.Comment = s
	return c
}

// EdgeSchema is implemented by edge types.
type EdgeSchema[T any] interface {
	Edge() EdgeConfig
	Fields() []field.Field[T]
}

// EdgeLabel is the label of an edge type.
type EdgeLabel struct {
	label
	srcPolicy, dstPolicy       key.Policy
	srcAsField, dstAsField     bool
	srcProperty, dstProperty   string
	srcType, dstType           field.Type
	srcFormatter, dstFormatter format.Formatter
}

// SrcKeyPolicy returns the source id policy.
func (l *EdgeLabel) SrcKeyPolicy() key.Policy { return l.srcPolicy }

// DstKeyPolicy returns the destination id policy.
func (l *EdgeLabel) DstKeyPolicy() key.Policy { return l.dstPolicy }

// SrcIDAsField reports whether the source id is stored as a property.
func (l *EdgeLabel) SrcIDAsField() bool { return l.srcAsField }

// DstIDAsField reports whether the destination id is stored as a property.
func (l *EdgeLabel) DstIDAsField() bool { return l.dstAsField }

// SrcIDProperty returns the property name of the source id member.
func (l *EdgeLabel) SrcIDProperty() string { return l.srcProperty }

// DstIDProperty returns the property name of the destination id member.
func (l *EdgeLabel) DstIDProperty() string { return l.dstProperty }

// SrcIDFormatter returns the formatter of the source id member, or nil.
func (l *EdgeLabel) SrcIDFormatter() format.Formatter { return l.srcFormatter }

// DstIDFormatter returns the formatter of the destination id member, or nil.
func (l *EdgeLabel) DstIDFormatter() format.Formatter { return l.dstFormatter }

// SrcKey returns the statement literal of a raw source id.
func (l *EdgeLabel) SrcKey(id string) string {
	return key.Literal(l.srcPolicy, id)
}

// DstKey returns the statement literal of a raw destination id.
func (l *EdgeLabel) DstKey(id string) string {
	return key.Literal(l.dstPolicy, id)
}

// SrcIDType returns the data type of the source id member.
func (l *EdgeLabel) SrcIDType() field.Type {
	return l.srcType
}

// DstIDType returns the data type of the destination id member.
func (l *EdgeLabel) DstIDType() field.Type {
	return l.dstType
}
