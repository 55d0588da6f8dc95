package mixin

import (
	"time"

	"github.com/syssam/graphocean/schema/field"
)

// Mixin is a set of members a type inherits from an embedded value.
type Mixin[T any] interface {
	Fields() []field.Field[T]
}

// Schema is implemented by embeddable types that declare their members.
type Schema[B any] interface {
	Fields() []field.Field[B]
}

// Ancestors is optionally implemented by embeddable types that embed other
// mixins themselves.
type Ancestors[B any] interface {
	Mixin() []Mixin[B]
}

// Embed lifts the members declared by the embedded type B into T. ref must
// return a non-nil pointer into t.
//
// Example:
//
//	func (Player) Mixin() []mixin.Mixin[Player] {
//	    return []mixin.Mixin[Player]{
//	        mixin.Embed(func(p *Player) *mixin.Time { return &p.Time }),
//	    }
//	}
func Embed[T any, B Schema[B]](ref func(*T) *B) Mixin[T] {
	return embedded[T, B]{ref: ref}
}

type embedded[T any, B Schema[B]] struct {
	ref func(*T) *B
}

// Fields returns the members of B followed by the members of B's own
// ancestors, nearest first.
func (e embedded[T, B]) Fields() []field.Field[T] {
	var zero B
	own := zero.Fields()
	fields := make([]field.Field[T], 0, len(own))
	for _, f := range own {
		fields = append(fields, field.Lift(f, e.ref))
	}
	if a, ok := any(zero).(Ancestors[B]); ok {
		for _, m := range a.Mixin() {
			for _, f := range m.Fields() {
				fields = append(fields, field.Lift(f, e.ref))
			}
		}
	}
	return fields
}

// Time adds created_at and updated_at timestamp properties to a type.
//
// Example:
//
//	type Player struct {
//	    mixin.Time
//	    Name string
//	}
type Time struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fields returns the time tracking fields.
func (Time) Fields() []field.Field[Time] {
	return []field.Field[Time]{
		field.Value("created_at", func(t *Time) *time.Time { return &t.CreatedAt }).
			Comment("Timestamp when the entity was created"),
		field.Value("updated_at", func(t *Time) *time.Time { return &t.UpdatedAt }).
			Comment("Timestamp when the entity was last updated"),
	}
}

// Touch sets UpdatedAt, and CreatedAt when unset, to now.
func (t *Time) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// Labeled adds a dynamic label name carrier to a type, so one Go type can
// be written under several tags or edge types.
type Labeled struct {
	Label string
}

// Fields returns the label name carrier.
func (Labeled) Fields() []field.Field[Labeled] {
	return []field.Field[Labeled]{
		field.Value("label", func(l *Labeled) *string { return &l.Label }).LabelName(),
	}
}

var (
	_ Schema[Time]    = Time{}
	_ Schema[Labeled] = Labeled{}
)
