package schema_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/schema"
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
	"github.com/syssam/graphocean/schema/key"
	"github.com/syssam/graphocean/schema/mixin"
)

type Player struct {
	mixin.Time
	No       string
	Name     string
	Age      *int64
	Birthday time.Time
	Nick     any
	Distance int
}

func (Player) Vertex() schema.VertexConfig {
	return schema.Tag("player").WithComment("basketball player")
}

func (Player) Fields() []field.Field[Player] {
	return []field.Field[Player]{
		field.Value("no", func(p *Player) *string { return &p.No }).VertexID(),
		field.Value("name", func(p *Player) *string { return &p.Name }).Required().Comment("full name"),
		field.Nillable("age", func(p *Player) **int64 { return &p.Age }).Default("18"),
		field.Value("birthday", func(p *Player) *time.Time { return &p.Birthday }).Type(field.TypeDate),
		field.Any("nick", func(p *Player) *any { return &p.Nick }),
		field.Extra("Distance", func(p *Player) *int { return &p.Distance }),
		// Overrides the mixin comment.
		field.Value("created_at", func(p *Player) *time.Time { return &p.CreatedAt }).Comment("first seen"),
	}
}

func (Player) Mixin() []mixin.Mixin[Player] {
	return []mixin.Mixin[Player]{
		mixin.Embed(func(p *Player) *mixin.Time { return &p.Time }),
	}
}

type Follow struct {
	Follower string
	Followed string
	Degree   int64
}

func (Follow) Edge() schema.EdgeConfig {
	return schema.EdgeType("follow").WithIDsAsFields(false, false)
}

func (Follow) Fields() []field.Field[Follow] {
	return []field.Field[Follow]{
		field.Value("follower", func(f *Follow) *string { return &f.Follower }).SrcID(),
		field.Value("followed", func(f *Follow) *string { return &f.Followed }).DstID(),
		field.Value("degree", func(f *Follow) *int64 { return &f.Degree }),
	}
}

type Node struct {
	mixin.Labeled
	ID   int64
	Seen time.Time
}

func (*Node) Vertex() schema.VertexConfig {
	return schema.Tag("").WithKeyPolicy(key.Int64).WithIDAsField(false)
}

func (*Node) Fields() []field.Field[Node] {
	return []field.Field[Node]{
		field.Value("id", func(n *Node) *int64 { return &n.ID }).VertexID(),
		field.Value("seen", func(n *Node) *time.Time { return &n.Seen }),
	}
}

func (*Node) Mixin() []mixin.Mixin[Node] {
	return []mixin.Mixin[Node]{
		mixin.Embed(func(n *Node) *mixin.Labeled { return &n.Labeled }),
	}
}

func TestBuildVertex(t *testing.T) {
	typ, err := schema.Build[Player]()
	require.NoError(t, err)
	l := typ.Vertex()
	require.NotNil(t, l)
	assert.Nil(t, typ.Edge())

	assert.Equal(t, schema.KindVertex, l.Kind())
	assert.Equal(t, "player", l.Name())
	assert.Equal(t, "basketball player", l.Comment())
	assert.Equal(t, key.StringKey, l.KeyPolicy())
	assert.True(t, l.IDAsField())
	assert.Equal(t, "no", l.IDProperty())
	assert.Equal(t, field.TypeString, l.IDType())

	var names []string
	for _, p := range l.Properties() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"no", "name", "age", "birthday", "nick", "created_at", "updated_at"}, names)
	assert.Equal(t, []string{"no", "name"}, l.MustProperties())
	assert.True(t, l.IsMust("name"))
	assert.False(t, l.IsMust("age"))

	t.Run("Types", func(t *testing.T) {
		assert.Equal(t, field.TypeInt64, l.DataType("age"))
		assert.Equal(t, field.TypeDate, l.DataType("birthday"))
		assert.Equal(t, field.TypeNull, l.DataType("nick"))
		assert.Equal(t, field.TypeNull, l.DataType("unknown"))
		assert.Equal(t, "timestamp", l.NebulaType("created_at"))
	})

	t.Run("Formatters", func(t *testing.T) {
		assert.IsType(t, format.Date{}, l.Formatter("birthday"))
		assert.IsType(t, format.Timestamp{}, l.Formatter("updated_at"))
		assert.Nil(t, l.Formatter("name"))

		v, err := l.Format("birthday", time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, `date("2000-01-02")`, v)
		v, err = l.Format("name", "Tim")
		require.NoError(t, err)
		assert.Equal(t, "Tim", v)
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, "CreatedAt", l.FieldName("created_at"))
		assert.Equal(t, "created_at", l.PropertyName("CreatedAt"))
		assert.Equal(t, "missing", l.FieldName("missing"))
		assert.Equal(t, "Missing", l.PropertyName("Missing"))
	})

	t.Run("DefaultsAndComments", func(t *testing.T) {
		assert.Equal(t, "18", l.DefaultValue("age"))
		assert.Equal(t, "", l.DefaultValue("name"))
		assert.Equal(t, "full name", l.PropertyComment("name"))
		assert.Equal(t, "first seen", l.PropertyComment("created_at"))
	})

	t.Run("Members", func(t *testing.T) {
		assert.Len(t, typ.Members(), 8)
		id, ok := typ.Member(field.RoleVertexID)
		require.True(t, ok)
		assert.Equal(t, "No", id.Member)
		_, ok = typ.Member(field.RoleLabelName)
		assert.False(t, ok)
	})
}

func TestBuildEdge(t *testing.T) {
	typ, err := schema.Build[Follow]()
	require.NoError(t, err)
	l := typ.Edge()
	require.NotNil(t, l)

	assert.Equal(t, schema.KindEdge, l.Kind())
	assert.Equal(t, "follow", l.Name())
	assert.False(t, l.SrcIDAsField())
	assert.False(t, l.DstIDAsField())
	assert.Equal(t, "follower", l.SrcIDProperty())
	assert.Equal(t, "followed", l.DstIDProperty())
	assert.Equal(t, field.TypeString, l.SrcIDType())
	require.Len(t, l.Properties(), 1)
	assert.Equal(t, "degree", l.Properties()[0].Name)
	assert.Empty(t, l.MustProperties())
	assert.Equal(t, `"p1"`, l.SrcKey("p1"))
	assert.Equal(t, `"p2"`, l.DstKey("p2"))
}

func TestBuildDynamicLabel(t *testing.T) {
	typ, err := schema.Build[Node]()
	require.NoError(t, err)
	l := typ.Vertex()
	assert.Equal(t, "", l.Name())
	assert.Equal(t, "Label", l.NameField())
	assert.Equal(t, "7", l.Key("7"))
	assert.Equal(t, field.TypeInt64, l.IDType())

	_, ok := l.Property("label")
	assert.False(t, ok, "label name carrier is not a property")
	_, ok = l.Property("id")
	assert.False(t, ok, "id is not stored as a property")
}

type Unsupported struct{ Name string }

type NoID struct{ Name string }

func (NoID) Vertex() schema.VertexConfig { return schema.Tag("noid") }

func (NoID) Fields() []field.Field[NoID] {
	return []field.Field[NoID]{
		field.Value("name", func(n *NoID) *string { return &n.Name }),
	}
}

type HalfEdge struct{ Src string }

func (HalfEdge) Edge() schema.EdgeConfig { return schema.EdgeType("half") }

func (HalfEdge) Fields() []field.Field[HalfEdge] {
	return []field.Field[HalfEdge]{
		field.Value("src", func(e *HalfEdge) *string { return &e.Src }).SrcID(),
	}
}

type BadFormat struct{ No, Price string }

func (BadFormat) Vertex() schema.VertexConfig { return schema.Tag("bad") }

func (BadFormat) Fields() []field.Field[BadFormat] {
	return []field.Field[BadFormat]{
		field.Value("no", func(b *BadFormat) *string { return &b.No }).VertexID(),
		field.Value("price", func(b *BadFormat) *string { return &b.Price }).Formatter("no-such-kind"),
	}
}

type RequiredAny struct {
	No   string
	Tags any
}

func (RequiredAny) Vertex() schema.VertexConfig { return schema.Tag("pm") }

func (RequiredAny) Fields() []field.Field[RequiredAny] {
	return []field.Field[RequiredAny]{
		field.Value("no", func(r *RequiredAny) *string { return &r.No }).VertexID(),
		field.Any("tags", func(r *RequiredAny) *any { return &r.Tags }).Required(),
	}
}

type BadName struct{ No string }

func (BadName) Vertex() schema.VertexConfig { return schema.Tag("player; DROP SPACE nba") }

func (BadName) Fields() []field.Field[BadName] {
	return []field.Field[BadName]{
		field.Value("no", func(b *BadName) *string { return &b.No }).VertexID(),
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"player", true},
		{"_serve2", true},
		{"Team_A", true},
		{"", false},
		{"2player", false},
		{"play er", false},
		{"player`", false},
		{"server SET x=1; DROP SPACE nba", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.ValidName(tt.name), tt.name)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := schema.Build[Unsupported]()
	assert.True(t, errors.Is(err, graphocean.ErrUnsupportedLabel))

	_, err = schema.Build[NoID]()
	assert.True(t, errors.Is(err, graphocean.ErrMissingRole))

	_, err = schema.Build[HalfEdge]()
	assert.True(t, errors.Is(err, graphocean.ErrMissingRole))

	_, err = schema.Build[BadFormat]()
	assert.True(t, errors.Is(err, graphocean.ErrFormatterNoConstructor))
	assert.True(t, graphocean.IsPreconditionError(err))

	_, err = schema.Build[RequiredAny]()
	assert.True(t, errors.Is(err, graphocean.ErrUnsupportedLabel), "untyped property cannot be NOT NULL")
	assert.True(t, graphocean.IsPreconditionError(err))

	_, err = schema.Build[BadName]()
	assert.True(t, errors.Is(err, graphocean.ErrUnsupportedLabel))
}

func TestRegistry(t *testing.T) {
	r := schema.NewRegistry()

	var (
		wg    sync.WaitGroup
		types = make([]*schema.Type[Player], 16)
	)
	for i := range types {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			typ, err := schema.Lookup[Player](r)
			assert.NoError(t, err)
			types[i] = typ
		}(i)
	}
	wg.Wait()
	for _, typ := range types {
		assert.Same(t, types[0], typ)
	}

	edge, err := schema.Lookup[Follow](r)
	require.NoError(t, err)
	assert.Equal(t, "follow", edge.Label().Name())
	assert.Equal(t, 2, r.Len())

	_, err = schema.Lookup[Unsupported](r)
	require.Error(t, err)
	assert.Equal(t, 2, r.Len())

	typ, err := schema.For[Follow]()
	require.NoError(t, err)
	assert.NotSame(t, edge, typ, "registries are independent")
}
