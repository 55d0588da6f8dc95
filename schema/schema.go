package schema

import (
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
)

// Kind tells vertex labels (tags) from edge labels (edge types).
type Kind uint8

// Label kinds.
const (
	KindVertex Kind = iota + 1
	KindEdge
)

// String returns the kind keyword used in statements.
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "TAG"
	case KindEdge:
		return "EDGE"
	default:
		return "UNKNOWN"
	}
}

// ValidName reports whether name can be written unquoted as a tag or edge
// type name: a letter or underscore followed by letters, digits or
// underscores.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Property describes one property of a label.
type Property struct {
	Name      string           // property name
	Field     string           // member name
	Type      field.Type       // data type, TypeNull when untyped
	Size      int              // FIXED_STRING size
	Must      bool             // NOT NULL
	Default   string           // DDL default, "" when unset
	Comment   string           // DDL comment, "" when unset
	Formatter format.Formatter // nil when the value is written as-is
}

// Label is the metadata shared by vertex and edge labels. Labels are
// immutable once built and safe for concurrent use.
type Label interface {
	// Kind returns KindVertex or KindEdge.
	Kind() Kind
	// Name returns the static tag or edge type name, "" when the name is
	// resolved from the NameField member of each entity.
	Name() string
	// Comment returns the declared label comment.
	Comment() string
	// Properties returns the properties in declaration order.
	Properties() []*Property
	// Property returns the property with the given name.
	Property(name string) (*Property, bool)
	// MustProperties returns the names of the required properties.
	MustProperties() []string
	// IsMust reports whether the property is required.
	IsMust(property string) bool
	// FieldName returns the member of the property, or property itself
	// when unknown.
	FieldName(property string) string
	// PropertyName returns the property of the member, or member itself
	// when unknown.
	PropertyName(member string) string
	// DataType returns the data type of the property, TypeNull when unknown.
	DataType(property string) field.Type
	// NebulaType returns the DDL type of the property.
	NebulaType(property string) string
	// Formatter returns the formatter of the property, or nil.
	Formatter(property string) format.Formatter
	// Format converts v with the formatter of the property, if any.
	Format(property string, v any) (any, error)
	// Reformat converts v back with the formatter of the property, if any.
	Reformat(property string, v any) (any, error)
	// DefaultValue returns the DDL default of the property.
	DefaultValue(property string) string
	// PropertyComment returns the DDL comment of the property.
	PropertyComment(property string) string
	// NameField returns the member carrying a dynamic label name, or "".
	NameField() string
}

type label struct {
	kind      Kind
	name      string
	comment   string
	props     []*Property
	byName    map[string]*Property
	byField   map[string]*Property
	must      []string
	nameField string
}

func newLabel(kind Kind, name, comment string) label {
	return label{
		kind:    kind,
		name:    name,
		comment: comment,
		byName:  make(map[string]*Property),
		byField: make(map[string]*Property),
	}
}

func (l *label) add(p *Property) bool {
	if _, ok := l.byName[p.Name]; ok {
		return false
	}
	l.props = append(l.props, p)
	l.byName[p.Name] = p
	if p.Field != "" {
		l.byField[p.Field] = p
	}
	if p.Must {
		l.must = append(l.must, p.Name)
	}
	return true
}

func (l *label) Kind() Kind              { return l.kind }
func (l *label) Name() string            { return l.name }
func (l *label) Comment() string         { return l.comment }
func (l *label) Properties() []*Property { return l.props }
func (l *label) MustProperties() []string {
	return l.must
}
func (l *label) NameField() string { return l.nameField }

func (l *label) Property(name string) (*Property, bool) {
	p, ok := l.byName[name]
	return p, ok
}

func (l *label) IsMust(property string) bool {
	p, ok := l.byName[property]
	return ok && p.Must
}

func (l *label) FieldName(property string) string {
	if p, ok := l.byName[property]; ok && p.Field != "" {
		return p.Field
	}
	return property
}

func (l *label) PropertyName(member string) string {
	if p, ok := l.byField[member]; ok {
		return p.Name
	}
	return member
}

func (l *label) DataType(property string) field.Type {
	if p, ok := l.byName[property]; ok {
		return p.Type
	}
	return field.TypeNull
}

func (l *label) NebulaType(property string) string {
	if p, ok := l.byName[property]; ok {
		return p.Type.Nebula(p.Size)
	}
	return field.TypeNull.Nebula(0)
}

func (l *label) Formatter(property string) format.Formatter {
	if p, ok := l.byName[property]; ok {
		return p.Formatter
	}
	return nil
}

func (l *label) Format(property string, v any) (any, error) {
	if f := l.Formatter(property); f != nil && v != nil {
		return f.Format(v)
	}
	return v, nil
}

func (l *label) Reformat(property string, v any) (any, error) {
	if f := l.Formatter(property); f != nil && v != nil {
		return f.Reformat(v)
	}
	return v, nil
}

func (l *label) DefaultValue(property string) string {
	if p, ok := l.byName[property]; ok {
		return p.Default
	}
	return ""
}

func (l *label) PropertyComment(property string) string {
	if p, ok := l.byName[property]; ok {
		return p.Comment
	}
	return ""
}

// Type is the metadata of a Go type T bound to its label: the label itself
// plus the member descriptors used to read and write values of T.
type Type[T any] struct {
	label   Label
	vertex  *VertexLabel
	edge    *EdgeLabel
	members []*field.Descriptor[T]
	roles   map[field.Role]*field.Descriptor[T]
}

// Label returns the label of T.
func (t *Type[T]) Label() Label { return t.label }

// Vertex returns the vertex label of T, or nil for edge types.
func (t *Type[T]) Vertex() *VertexLabel { return t.vertex }

// Edge returns the edge label of T, or nil for vertex types.
func (t *Type[T]) Edge() *EdgeLabel { return t.edge }

// Members returns every member descriptor of T, properties or not.
func (t *Type[T]) Members() []*field.Descriptor[T] { return t.members }

// Member returns the member holding the given id or label name role.
func (t *Type[T]) Member(role field.Role) (*field.Descriptor[T], bool) {
	d, ok := t.roles[role]
	return d, ok
}

var (
	_ Label = (*VertexLabel)(nil)
	_ Label = (*EdgeLabel)(nil)
)
