package graph

import (
	"fmt"
	"strconv"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/schema"
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
	"github.com/syssam/graphocean/schema/key"
)

// NewVertex returns the vertex entity of v.
func NewVertex[T any](typ *schema.Type[T], v *T) (*Vertex, error) {
	const op = "new vertex"
	l := typ.Vertex()
	if l == nil {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "%T is not a vertex type", v)
	}
	if v == nil {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrInvalidID, "nil %T", v)
	}
	d, _ := typ.Member(field.RoleVertexID)
	id, err := idOf(d, v, l.IDFormatter(), l.KeyPolicy())
	if err != nil {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrInvalidID, "tag %q: %v", l.Name(), err)
	}
	props, err := properties(typ, v, func(d *field.Descriptor[T]) bool {
		return d.Role == field.RoleVertexID && l.IDAsField()
	})
	if err != nil {
		return nil, err
	}
	name, err := resolveName(op, l, props)
	if err != nil {
		return nil, err
	}
	return &Vertex{ID: id, Name: name, Properties: props, Label: l}, nil
}

// NewVertices returns the vertex entities of vs, in order.
func NewVertices[T any](typ *schema.Type[T], vs []*T) ([]*Vertex, error) {
	if len(vs) == 0 {
		return nil, graphocean.NewPreconditionError("new vertices", graphocean.ErrEmptyEntities, "")
	}
	out := make([]*Vertex, 0, len(vs))
	for _, v := range vs {
		e, err := NewVertex(typ, v)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// NewEdge returns the edge entity of v. The rank of the edge is 0; callers
// may set Level and IgnoreDirect on the result.
func NewEdge[T any](typ *schema.Type[T], v *T) (*Edge, error) {
	const op = "new edge"
	l := typ.Edge()
	if l == nil {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "%T is not an edge type", v)
	}
	if v == nil {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrInvalidID, "nil %T", v)
	}
	sd, _ := typ.Member(field.RoleSrcID)
	src, err := idOf(sd, v, l.SrcIDFormatter(), l.SrcKeyPolicy())
	if err != nil {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrInvalidID, "edge %q source: %v", l.Name(), err)
	}
	dd, _ := typ.Member(field.RoleDstID)
	dst, err := idOf(dd, v, l.DstIDFormatter(), l.DstKeyPolicy())
	if err != nil {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrInvalidID, "edge %q destination: %v", l.Name(), err)
	}
	props, err := properties(typ, v, func(d *field.Descriptor[T]) bool {
		return (d.Role == field.RoleSrcID && l.SrcIDAsField()) || (d.Role == field.RoleDstID && l.DstIDAsField())
	})
	if err != nil {
		return nil, err
	}
	name, err := resolveName(op, l, props)
	if err != nil {
		return nil, err
	}
	return &Edge{Name: name, SrcID: src, DstID: dst, Properties: props, Label: l}, nil
}

// NewEdges returns the edge entities of vs, in order.
func NewEdges[T any](typ *schema.Type[T], vs []*T) ([]*Edge, error) {
	if len(vs) == 0 {
		return nil, graphocean.NewPreconditionError("new edges", graphocean.ErrEmptyEntities, "")
	}
	out := make([]*Edge, 0, len(vs))
	for _, v := range vs {
		e, err := NewEdge(typ, v)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// properties collects the property values of v in declaration order.
// Id members are included when stored reports so. The label name carrier
// is included under its member name so that resolveName can pop it.
func properties[T any](typ *schema.Type[T], v *T, stored func(*field.Descriptor[T]) bool) (*Properties, error) {
	l := typ.Label()
	props := NewProperties()
	for _, d := range typ.Members() {
		switch {
		case d.Role == field.RoleProperty:
		case d.Role == field.RoleLabelName:
			if val, ok := d.Get(v); ok {
				props.Set(d.Member, val)
			}
			continue
		case d.Role.IsID() && stored(d):
		default:
			continue
		}
		val, ok := d.Get(v)
		if !ok {
			continue
		}
		formatted, err := l.Format(d.Property, val)
		if err != nil {
			return nil, graphocean.NewConversionError(d.Property, fmt.Sprintf("%T", val), l.DataType(d.Property).String(), err)
		}
		props.Set(d.Property, formatted)
	}
	return props, nil
}

// resolveName returns the static label name, else pops the label name
// carrier from props.
func resolveName(op string, l schema.Label, props *Properties) (string, error) {
	if l.Name() != "" {
		return l.Name(), nil
	}
	k := l.NameField()
	v, ok := props.Get(k)
	props.Delete(k)
	var name string
	if ok && v != nil {
		name = stringify(v)
	}
	if name == "" {
		return "", graphocean.NewPreconditionError(op, graphocean.ErrMissingRole, "%s member %q is empty", l.Kind(), k)
	}
	if !schema.ValidName(name) {
		return "", graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "invalid %s name %q", l.Kind(), name)
	}
	return name, nil
}

// idOf returns the raw id held by d. Ids are optional under the UUID
// policy, which ignores them.
func idOf[T any](d *field.Descriptor[T], v *T, f format.Formatter, p key.Policy) (string, error) {
	raw, ok := d.Get(v)
	if ok && f != nil {
		var err error
		if raw, err = f.Format(raw); err != nil {
			return "", err
		}
	}
	id := ""
	if ok && raw != nil {
		id = stringify(raw)
	}
	if id == "" && p != key.UUID {
		return "", fmt.Errorf("member %q holds no id", d.Member)
	}
	return id, nil
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
