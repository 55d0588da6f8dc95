package mapper

import (
	"context"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/dialect/ngql"
	"github.com/syssam/graphocean/schema"
)

type labelOptions struct {
	name    string
	comment string
}

// LabelOption configures the creation of a tag or edge type.
type LabelOption func(*labelOptions)

// Named names a dynamically named label. It is ignored for labels with a
// declared name.
func Named(name string) LabelOption {
	return func(o *labelOptions) {
		o.name = name
	}
}

// Commented sets the label comment used when none is declared.
func Commented(comment string) LabelOption {
	return func(o *labelOptions) {
		o.comment = comment
	}
}

// CreateTag creates the tag of the vertex type T in the configured space.
func CreateTag[T any](ctx context.Context, m *Mapper, opts ...LabelOption) error {
	return createLabel[T](ctx, m, schema.KindVertex, opts)
}

// CreateEdge creates the edge type E in the configured space.
func CreateEdge[E any](ctx context.Context, m *Mapper, opts ...LabelOption) error {
	return createLabel[E](ctx, m, schema.KindEdge, opts)
}

// CreateTagIndex creates the index idx_<tag> of the vertex type T.
func CreateTagIndex[T any](ctx context.Context, m *Mapper, opts ...LabelOption) error {
	return createIndex[T](ctx, m, schema.KindVertex, opts)
}

// CreateEdgeIndex creates the index idx_<edge> of the edge type E.
func CreateEdgeIndex[E any](ctx context.Context, m *Mapper, opts ...LabelOption) error {
	return createIndex[E](ctx, m, schema.KindEdge, opts)
}

func createLabel[T any](ctx context.Context, m *Mapper, kind schema.Kind, opts []LabelOption) error {
	l, o, err := labelOf[T](m, kind, "create label", opts)
	if err != nil {
		return err
	}
	stmt, err := ngql.CreateLabel(l, o.name, o.comment)
	if err != nil {
		return err
	}
	return m.schemaChange(ctx, m.cfg.Space, dialect.Use(m.cfg.Space, stmt))
}

func createIndex[T any](ctx context.Context, m *Mapper, kind schema.Kind, opts []LabelOption) error {
	l, o, err := labelOf[T](m, kind, "create index", opts)
	if err != nil {
		return err
	}
	stmt, err := ngql.CreateLabelIndex(l, o.name)
	if err != nil {
		return err
	}
	return m.schemaChange(ctx, m.cfg.Space, dialect.Use(m.cfg.Space, stmt))
}

func labelOf[T any](m *Mapper, kind schema.Kind, op string, opts []LabelOption) (schema.Label, labelOptions, error) {
	var o labelOptions
	for _, opt := range opts {
		opt(&o)
	}
	typ, err := schema.Lookup[T](m.registry)
	if err != nil {
		return nil, o, err
	}
	l := typ.Label()
	if l.Kind() != kind {
		return nil, o, graphocean.NewPreconditionError(op, graphocean.ErrUnsupportedLabel, "%T is not a %s type", (*T)(nil), kind)
	}
	return l, o, nil
}

// CreateSpace creates the space name.
func (m *Mapper) CreateSpace(ctx context.Context, name string, opts ngql.SpaceOptions) error {
	return m.schemaChange(ctx, name, ngql.CreateSpace(name, opts))
}

// CloneSpace creates the space name with the schema of the space from.
func (m *Mapper) CloneSpace(ctx context.Context, from, name string) error {
	return m.schemaChange(ctx, name, ngql.CloneSpace(from, name))
}

// ClearSpace removes the data of the space name and compacts it.
func (m *Mapper) ClearSpace(ctx context.Context, name string) error {
	return m.schemaChange(ctx, name, ngql.ClearSpace(name))
}

// DropSpace removes the space name.
func (m *Mapper) DropSpace(ctx context.Context, name string) error {
	return m.schemaChange(ctx, name, ngql.DropSpace(name))
}
