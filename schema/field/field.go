package field

import (
	"github.com/go-openapi/inflect"

	"github.com/syssam/graphocean/schema/format"
)

// Role classifies a member of a vertex or edge type.
type Role uint8

// Member roles.
const (
	// RoleProperty is an ordinary property.
	RoleProperty Role = iota
	// RoleVertexID holds the vertex id.
	RoleVertexID
	// RoleSrcID holds the edge source vertex id.
	RoleSrcID
	// RoleDstID holds the edge destination vertex id.
	RoleDstID
	// RoleLabelName holds the tag or edge type name of a dynamically named label.
	RoleLabelName
	// RoleNone marks a member that is read back from results but is not a property.
	RoleNone
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleProperty:
		return "property"
	case RoleVertexID:
		return "vertex_id"
	case RoleSrcID:
		return "src_id"
	case RoleDstID:
		return "dst_id"
	case RoleLabelName:
		return "label_name"
	case RoleNone:
		return "none"
	default:
		return "unknown"
	}
}

// IsID reports whether the role holds a vertex id.
func (r Role) IsID() bool {
	return r == RoleVertexID || r == RoleSrcID || r == RoleDstID
}

// Descriptor describes a member of the Go type T and how it maps to a
// property of the graph store.
type Descriptor[T any] struct {
	Property string      // property name in the store
	Member   string      // Go member name, used for result cell lookup
	Type     Type        // declared or inferred data type
	Size     int         // FIXED_STRING size
	Role     Role        // member role
	Required bool        // NOT NULL property
	Default  string      // DDL default value
	Comment  string      // DDL comment
	Format   format.Kind // optional custom formatter kind

	get func(*T) (any, bool)
	set func(*T, any) error
}

// Get returns the member value of t. The boolean is false when the member
// holds no value (a nil pointer or nil interface).
func (d *Descriptor[T]) Get(t *T) (any, bool) {
	return d.get(t)
}

// Set assigns v to the member of t, converting it to the member type.
func (d *Descriptor[T]) Set(t *T, v any) error {
	return d.set(t, v)
}

// Field is implemented by member builders.
type Field[T any] interface {
	Descriptor() *Descriptor[T]
}

// Builder is the fluent builder of a member descriptor.
type Builder[T any] struct {
	desc *Descriptor[T]
}

// Value returns a builder for a property stored in a member of type V.
//
//	field.Value("name", func(p *Player) *string { return &p.Name })
func Value[T any, V Scalar](property string, ref func(*T) *V) *Builder[T] {
	return &Builder[T]{desc: &Descriptor[T]{
		Property: property,
		Member:   memberName(property),
		Type:     Infer[V](),
		get: func(t *T) (any, bool) {
			return *ref(t), true
		},
		set: func(t *T, v any) error {
			c, err := Convert[V](v)
			if err != nil {
				return err
			}
			*ref(t) = c
			return nil
		},
	}}
}

// Nillable returns a builder for a property stored in a pointer member.
// A nil pointer leaves the property out of the entity.
//
//	field.Nillable("age", func(p *Player) **int64 { return &p.Age })
func Nillable[T any, V Scalar](property string, ref func(*T) **V) *Builder[T] {
	return &Builder[T]{desc: &Descriptor[T]{
		Property: property,
		Member:   memberName(property),
		Type:     Infer[V](),
		get: func(t *T) (any, bool) {
			p := *ref(t)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		set: func(t *T, v any) error {
			c, err := Convert[V](v)
			if err != nil {
				return err
			}
			*ref(t) = &c
			return nil
		},
	}}
}

// Any returns a builder for an untyped member. Unless a type is declared,
// the property is skipped on write.
func Any[T any](property string, ref func(*T) *any) *Builder[T] {
	return &Builder[T]{desc: &Descriptor[T]{
		Property: property,
		Member:   memberName(property),
		Type:     TypeNull,
		get: func(t *T) (any, bool) {
			v := *ref(t)
			return v, v != nil
		},
		set: func(t *T, v any) error {
			*ref(t) = v
			return nil
		},
	}}
}

// Extra returns a builder for a member that is filled from result cells
// named member, but carries no property role.
func Extra[T any, V Scalar](member string, ref func(*T) *V) *Builder[T] {
	b := Value(member, ref)
	b.desc.Property = ""
	b.desc.Member = member
	b.desc.Type = TypeNull
	b.desc.Role = RoleNone
	return b
}

// VertexID marks the member as the vertex id.
func (b *Builder[T]) VertexID() *Builder[T] {
	b.desc.Role = RoleVertexID
	return b
}

// SrcID marks the member as the edge source id.
func (b *Builder[T]) SrcID() *Builder[T] {
	b.desc.Role = RoleSrcID
	return b
}

// DstID marks the member as the edge destination id.
func (b *Builder[T]) DstID() *Builder[T] {
	b.desc.Role = RoleDstID
	return b
}

// LabelName marks the member as the carrier of a dynamic label name.
func (b *Builder[T]) LabelName() *Builder[T] {
	b.desc.Role = RoleLabelName
	return b
}

// Required marks the property as NOT NULL.
func (b *Builder[T]) Required() *Builder[T] {
	b.desc.Required = true
	return b
}

// Default sets the DDL default value of the property.
func (b *Builder[T]) Default(v string) *Builder[T] {
	b.desc.Default = v
	return b
}

// Comment sets the DDL comment of the property.
func (b *Builder[T]) Comment(c string) *Builder[T] {
	b.desc.Comment = c
	return b
}

// Type overrides the inferred data type.
func (b *Builder[T]) Type(t Type) *Builder[T] {
	b.desc.Type = t
	return b
}

// FixedString declares the property as FIXED_STRING(n).
func (b *Builder[T]) FixedString(n int) *Builder[T] {
	b.desc.Type = TypeFixedString
	b.desc.Size = n
	return b
}

// Formatter sets a custom formatter kind registered in the format package.
func (b *Builder[T]) Formatter(kind format.Kind) *Builder[T] {
	b.desc.Format = kind
	return b
}

// StructField overrides the member name used for result cell lookup.
func (b *Builder[T]) StructField(name string) *Builder[T] {
	b.desc.Member = name
	return b
}

// Descriptor implements the Field interface by returning its descriptor.
func (b *Builder[T]) Descriptor() *Descriptor[T] {
	return b.desc
}

// Lift returns a copy of the descriptor of f that reads and writes the
// member through the embedded value returned by ref.
func Lift[T, B any](f Field[B], ref func(*T) *B) *Descriptor[T] {
	d := f.Descriptor()
	return &Descriptor[T]{
		Property: d.Property,
		Member:   d.Member,
		Type:     d.Type,
		Size:     d.Size,
		Role:     d.Role,
		Required: d.Required,
		Default:  d.Default,
		Comment:  d.Comment,
		Format:   d.Format,
		get:      func(t *T) (any, bool) { return d.get(ref(t)) },
		set:      func(t *T, v any) error { return d.set(ref(t), v) },
	}
}

func memberName(property string) string {
	if property == "" {
		return ""
	}
	return inflect.Camelize(property)
}

var _ Field[struct{}] = (*Builder[struct{}])(nil)

// Descriptor implements the Field interface.
func (d *Descriptor[T]) Descriptor() *Descriptor[T] {
	return d
}
