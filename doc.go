// Package graphocean maps typed Go values to and from a NebulaGraph style
// property graph.
//
// Entity types declare their schema in code (see package schema). The
// statement compiler in dialect/ngql turns entities built by package
// graph into nGQL, and package mapper runs the statements on sessions of
// a dialect.Pool and scans the results back into typed values.
//
// This package holds what every layer shares: the error taxonomy and the
// query result cache.
package graphocean
