package schema

import (
	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
	"github.com/syssam/graphocean/schema/mixin"
)

// Build builds the metadata of T. T, or *T, must implement VertexSchema[T]
// or EdgeSchema[T]. Members of T come first, then the members of its mixins
// in order; when a property recurs the first declaration wins.
//
// Most callers should use For or Lookup, which memoize the result.
func Build[T any]() (*Type[T], error) {
	switch s := schemaOf[T]().(type) {
	case VertexSchema[T]:
		return buildVertex(s.Vertex(), collect(s.Fields(), s))
	case EdgeSchema[T]:
		return buildEdge(s.Edge(), collect(s.Fields(), s))
	default:
		var zero T
		return nil, graphocean.NewPreconditionError("build label", graphocean.ErrUnsupportedLabel, "%T", zero)
	}
}

// schemaOf returns the zero T, or a pointer to it when only *T declares the
// schema methods.
func schemaOf[T any]() any {
	var zero T
	switch any(zero).(type) {
	case VertexSchema[T], EdgeSchema[T]:
		return zero
	}
	return &zero
}

// collect merges own fields with the fields of mixins declared by s.
func collect[T any](own []field.Field[T], s any) []*field.Descriptor[T] {
	var (
		descs []*field.Descriptor[T]
		props = make(map[string]bool)
		extra = make(map[string]bool)
	)
	add := func(fs []field.Field[T]) {
		for _, f := range fs {
			d := f.Descriptor()
			switch {
			case d.Property != "":
				if props[d.Property] {
					continue
				}
				props[d.Property] = true
			default:
				if extra[d.Member] {
					continue
				}
				extra[d.Member] = true
			}
			descs = append(descs, d)
		}
	}
	add(own)
	if m, ok := s.(interface{ Mixin() []mixin.Mixin[T] }); ok {
		for _, mx := range m.Mixin() {
			add(mx.Fields())
		}
	}
	return descs
}

func buildVertex[T any](cfg VertexConfig, descs []*field.Descriptor[T]) (*Type[T], error) {
	const op = "build vertex label"
	l := &VertexLabel{
		label:     newLabel(KindVertex, cfg.Name, cfg.Comment),
		policy:    cfg.KeyPolicy,
		idAsField: cfg.IDAsField,
	}
	if cfg.Name != "" && !ValidName(cfg.Name) {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "invalid tag name %q", cfg.Name)
	}
	t := &Type[T]{label: l, vertex: l, members: descs, roles: make(map[field.Role]*field.Descriptor[T])}
	for _, d := range descs {
		if err := checkRequired(op, d); err != nil {
			return nil, err
		}
		f, err := formatterOf(d)
		if err != nil {
			return nil, err
		}
		switch d.Role {
		case field.RoleVertexID:
			t.roles[d.Role] = d
			l.idProperty, l.idType, l.idFormatter = d.Property, d.Type, f
			if cfg.IDAsField {
				l.add(property(d, f, true))
			}
		case field.RoleSrcID, field.RoleDstID:
			return nil, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "member %q has edge role %s", d.Member, d.Role)
		case field.RoleLabelName:
			t.roles[d.Role] = d
			l.nameField = d.Member
		case field.RoleNone:
		default:
			l.add(property(d, f, d.Required))
		}
	}
	if _, ok := t.roles[field.RoleVertexID]; !ok {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrMissingRole, "tag %q has no vertex id member", cfg.Name)
	}
	if cfg.Name == "" && l.nameField == "" {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrMissingRole, "unnamed tag has no label name member")
	}
	return t, nil
}

func buildEdge[T any](cfg EdgeConfig, descs []*field.Descriptor[T]) (*Type[T], error) {
	const op = "build edge label"
	l := &EdgeLabel{
		label:      newLabel(KindEdge, cfg.Name, cfg.Comment),
		srcPolicy:  cfg.SrcKeyPolicy,
		dstPolicy:  cfg.DstKeyPolicy,
		srcAsField: cfg.SrcIDAsField,
		dstAsField: cfg.DstIDAsField,
	}
	if cfg.Name != "" && !ValidName(cfg.Name) {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "invalid edge name %q", cfg.Name)
	}
	t := &Type[T]{label: l, edge: l, members: descs, roles: make(map[field.Role]*field.Descriptor[T])}
	for _, d := range descs {
		if err := checkRequired(op, d); err != nil {
			return nil, err
		}
		f, err := formatterOf(d)
		if err != nil {
			return nil, err
		}
		switch d.Role {
		case field.RoleSrcID:
			t.roles[d.Role] = d
			l.srcProperty, l.srcType, l.srcFormatter = d.Property, d.Type, f
			if cfg.SrcIDAsField {
				l.add(property(d, f, true))
			}
		case field.RoleDstID:
			t.roles[d.Role] = d
			l.dstProperty, l.dstType, l.dstFormatter = d.Property, d.Type, f
			if cfg.DstIDAsField {
				l.add(property(d, f, true))
			}
		case field.RoleVertexID:
			return nil, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "member %q has vertex id role", d.Member)
		case field.RoleLabelName:
			t.roles[d.Role] = d
			l.nameField = d.Member
		case field.RoleNone:
		default:
			l.add(property(d, f, d.Required))
		}
	}
	for _, r := range []field.Role{field.RoleSrcID, field.RoleDstID} {
		if _, ok := t.roles[r]; !ok {
			return nil, graphocean.NewPreconditionError(op, graphocean.ErrMissingRole, "edge %q has no %s member", cfg.Name, r)
		}
	}
	if cfg.Name == "" && l.nameField == "" {
		return nil, graphocean.NewPreconditionError(op, graphocean.ErrMissingRole, "unnamed edge has no label name member")
	}
	return t, nil
}

// checkRequired rejects required members without a data type, which
// label DDL cannot declare NOT NULL.
func checkRequired[T any](op string, d *field.Descriptor[T]) error {
	if d.Required && d.Role == field.RoleProperty && d.Type == field.TypeNull {
		return graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "required member %q has no data type", d.Member)
	}
	return nil
}

func property[T any](d *field.Descriptor[T], f format.Formatter, must bool) *Property {
	return &Property{
		Name:      d.Property,
		Field:     d.Member,
		Type:      d.Type,
		Size:      d.Size,
		Must:      must,
		Default:   d.Default,
		Comment:   d.Comment,
		Formatter: f,
	}
}

// formatterOf resolves the declared formatter kind, else the built-in one
// of a temporal type.
func formatterOf[T any](d *field.Descriptor[T]) (format.Formatter, error) {
	if d.Format != "" {
		return format.New(d.Format)
	}
	switch d.Type {
	case field.TypeTimestamp:
		return format.New(format.KindTimestamp)
	case field.TypeDate:
		return format.New(format.KindDate)
	case field.TypeDateTime:
		return format.New(format.KindDateTime)
	}
	return nil, nil
}
