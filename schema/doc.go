// Package schema builds the label metadata of vertex and edge types.
//
// A Go type becomes a vertex type by implementing VertexSchema, or an edge
// type by implementing EdgeSchema. Members are declared with the field
// package and inherited through the mixin package:
//
//	type Player struct {
//	    No   string
//	    Name string
//	    Age  *int64
//	}
//
//	func (Player) Vertex() schema.VertexConfig {
//	    return schema.Tag("player").WithComment("basketball player")
//	}
//
//	func (Player) Fields() []field.Field[Player] {
//	    return []field.Field[Player]{
//	        field.Value("no", func(p *Player) *string { return &p.No }).VertexID(),
//	        field.Value("name", func(p *Player) *string { return &p.Name }).Required(),
//	        field.Nillable("age", func(p *Player) **int64 { return &p.Age }).Default("18"),
//	    }
//	}
//
//	type Follow struct {
//	    Follower string
//	    Followed string
//	    Degree   int64
//	}
//
//	func (Follow) Edge() schema.EdgeConfig { return schema.EdgeType("follow").WithIDsAsFields(false, false) }
//
//	func (Follow) Fields() []field.Field[Follow] {
//	    return []field.Field[Follow]{
//	        field.Value("follower", func(f *Follow) *string { return &f.Follower }).SrcID(),
//	        field.Value("followed", func(f *Follow) *string { return &f.Followed }).DstID(),
//	        field.Value("degree", func(f *Follow) *int64 { return &f.Degree }),
//	    }
//	}
//
// The metadata is built once per type and memoized by a Registry:
//
//	typ, err := schema.For[Player]()
//	typ.Label().MustProperties() // [no name]
//
// Id members are stored as required properties when the id-as-field flag of
// the tag or edge type is set. The label name member of a dynamically named
// label is never a property.
package schema
