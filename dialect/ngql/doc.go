// Package ngql compiles entities, labels and query descriptors into
// statements of the nGQL graph query language.
//
// Statements are plain strings; they are never parsed back. Every
// decision on quoting and escaping values is made by Literal, keyed by
// the data type of the property the value belongs to:
//
//	ngql.Literal(field.TypeString, `Tim "the" Duncan`) // "Tim \"the\" Duncan"
//	ngql.Literal(field.TypeInt64, int64(42))          // 42
//	ngql.Literal(field.TypeDate, `date("2000-01-02")`) // date("2000-01-02")
//	ngql.Literal(field.TypeInt64, nil)                // NULL
//
// Mutations are compiled one statement per entity:
//
//	ngql.UpsertEdge(e) // UPSERT EDGE ON follow "p1" -> "p2" SET degree=3
//
// Traversals are built with small fluent builders:
//
//	ngql.FindPath([]string{"p1"}, []string{"p3"}).
//	    Over("follow").
//	    Mode(ngql.Shortest).
//	    Where(ngql.IntProp("follow", "degree").GT(90)).
//	    Query()
package ngql
