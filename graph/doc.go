// Package graph turns typed values into vertex and edge entities and turns
// query results back into typed values.
//
// # Entities
//
// Entity factories read the members of a value through its schema.Type:
//
//	typ, _ := schema.For[Player]()
//	v, err := graph.NewVertex(typ, &Player{No: "p1", Name: "Tim"})
//	// v.ID == "p1", v.Name == "player", v.Properties: no, name
//
// A property is absent from the entity when its member holds no value
// (a nil pointer); it is present with a nil value when set explicitly:
//
//	v.Properties.Set("age", nil) // written as age=NULL
//
// Edge identity is the (source, name, destination) triple; properties do
// not take part in it.
//
// # Materialization
//
// Scan fills values of T from a result set. Each member is looked up by its
// member name, then by its property name; absent and null cells are
// skipped. Property members are extracted by the data type of their
// property and passed through its formatter; other members by the kind of
// the cell.
//
// ScanSubGraph and ScanPaths collect nodes and relationships without
// duplicates: nodes by id, relationships by (src, name, dst).
package graph
