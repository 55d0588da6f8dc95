// Package dialect defines the boundary to the graph store transport.
//
// The package does not talk to the network itself. A transport adapts its
// client to either the Session interface, or to the single-primitive
// Executor interface which Wrap lifts to a Session:
//
//	type Session interface {
//	    ExecuteMutation(ctx context.Context, stmt string) error
//	    ExecuteQuery(ctx context.Context, stmt string) (*ResultSet, error)
//	    ExecuteSchemaChange(ctx context.Context, stmt string) error
//	    Release()
//	}
//
// Sessions are obtained from a Pool and must be released exactly once.
//
// # Results
//
// Query results are returned as a ResultSet of rows of typed Values. A Value
// holds one of the store value kinds (int, bool, double, string, date,
// datetime, time, list, node, relationship, path) or null, and exposes typed
// accessors that fail with a conversion error on a kind mismatch.
//
// # Statements
//
// Every statement runs against an explicit graph space:
//
//	dialect.Use("basketball", stmt) // USE basketball ; <stmt> ;
//
// # Wrappers
//
// StatsSession collects execution statistics and reports slow statements.
// DebugSession logs every statement before running it.
package dialect
