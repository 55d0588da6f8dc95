package ngql

import (
	"fmt"
	"strings"

	"github.com/syssam/graphocean/graph"
	"github.com/syssam/graphocean/schema"
	"github.com/syssam/graphocean/schema/field"
)

// UpsertVertex compiles the upsert of v:
//
//	UPSERT VERTEX ON player "p1" SET name="Tim", age=42
//
// Properties of unknown type are left out. A vertex without properties
// to write compiles to an insert that leaves an existing vertex as is.
func UpsertVertex(v *graph.Vertex) string {
	set := assignments(v.Label, v.Properties)
	if set == "" {
		return fmt.Sprintf("INSERT VERTEX IF NOT EXISTS %s() VALUES %s:()", v.Name, v.Key())
	}
	return fmt.Sprintf("UPSERT VERTEX ON %s %s SET %s", v.Name, v.Key(), set)
}

// UpsertEdge compiles the upsert of e:
//
//	UPSERT EDGE ON follow "p1" -> "p2" SET degree=3
//
// A non-zero rank is written after the destination key: "p1" -> "p2"@1.
func UpsertEdge(e *graph.Edge) string {
	set := assignments(e.Label, e.Properties)
	if set == "" {
		return fmt.Sprintf("INSERT EDGE IF NOT EXISTS %s() VALUES %s->%s@%d:()", e.Name, e.SrcKey(), e.DstKey(), e.Level)
	}
	return fmt.Sprintf("UPSERT EDGE ON %s %s -> %s%s SET %s", e.Name, e.SrcKey(), e.DstKey(), rank(e.Level), set)
}

// UpsertVertices compiles one statement per vertex, in order.
func UpsertVertices(vs []*graph.Vertex) []string {
	stmts := make([]string, len(vs))
	for i, v := range vs {
		stmts[i] = UpsertVertex(v)
	}
	return stmts
}

// UpsertEdges compiles one statement per edge, in order.
func UpsertEdges(es []*graph.Edge) []string {
	stmts := make([]string, len(es))
	for i, e := range es {
		stmts[i] = UpsertEdge(e)
	}
	return stmts
}

func assignments(l schema.Label, props *graph.Properties) string {
	var b strings.Builder
	props.Range(func(k string, v any) bool {
		t := l.DataType(k)
		if t == field.TypeNull {
			return true
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(Literal(t, v))
		return true
	})
	return b.String()
}

func rank(level int64) string {
	if level == 0 {
		return ""
	}
	return fmt.Sprintf("@%d", level)
}
