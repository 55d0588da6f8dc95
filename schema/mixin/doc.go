// Package mixin provides reusable member sets for vertex and edge types.
//
// Go types inherit members by embedding. A mixin lifts the members declared
// by an embedded type into the outer type:
//
//	type Person struct {
//	    Name string
//	}
//
//	func (Person) Fields() []field.Field[Person] {
//	    return []field.Field[Person]{
//	        field.Value("name", func(p *Person) *string { return &p.Name }),
//	    }
//	}
//
//	type Player struct {
//	    Person
//	    No string
//	}
//
//	func (Player) Mixin() []mixin.Mixin[Player] {
//	    return []mixin.Mixin[Player]{
//	        mixin.Embed(func(p *Player) *Person { return &p.Person }),
//	    }
//	}
//
// # Precedence
//
// Members of the type itself come first, then mixins in the order they are
// listed, each followed by its own ancestors. When a property name recurs,
// the first declaration wins, so the outer type overrides what it embeds.
//
// # Built-in Mixins
//
//	mixin.Time{}     // created_at, updated_at
//	mixin.Labeled{}  // dynamic label name carrier
package mixin
