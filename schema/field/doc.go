// Package field provides typed member descriptors for vertex and edge types.
//
// A descriptor binds a property name to a member of a Go type through an
// accessor function, so labels are built without runtime type inspection.
// Member names follow Go conventions and default to the camelized property
// name:
//
//	field.Value("user_id", ...)  // property: user_id, member: UserId
//
// # Data types
//
// The data type is inferred from the member type unless declared:
//
//	string          STRING
//	int16, int32    INT16
//	int, int64      INT64
//	float32/64      DOUBLE
//	bool            BOOLEAN
//	time.Time       TIMESTAMP
//	any             NULL (never written)
//
// # Roles
//
//	field.Value("no", ...).VertexID()       // vertex id
//	field.Value("follower", ...).SrcID()    // edge source id
//	field.Value("followed", ...).DstID()    // edge destination id
//	field.Value("kind", ...).LabelName()    // dynamic tag or edge type name
//	field.Extra("Distance", ...)            // result-only member
package field
