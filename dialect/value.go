package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/syssam/graphocean"
)

// Kind is the kind of a result value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindInt
	KindBool
	KindFloat
	KindString
	KindDate
	KindDateTime
	KindTime
	KindList
	KindNode
	KindRelationship
	KindPath
)

var kindNames = [...]string{
	KindNull:         "null",
	KindInt:          "int",
	KindBool:         "bool",
	KindFloat:        "float",
	KindString:       "string",
	KindDate:         "date",
	KindDateTime:     "datetime",
	KindTime:         "time",
	KindList:         "list",
	KindNode:         "node",
	KindRelationship: "relationship",
	KindPath:         "path",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Date is a calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateTime is a UTC date and time of day with microsecond precision.
type DateTime struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// Time returns the date-time as a UTC time.Time.
func (d DateTime) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, d.Microsecond*1000, time.UTC)
}

// String returns the date-time in ISO 8601 form.
func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, d.Microsecond)
}

// DateTimeOf returns the UTC date-time of t.
func DateTimeOf(t time.Time) DateTime {
	t = t.UTC()
	return DateTime{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		Microsecond: t.Nanosecond() / 1000,
	}
}

// Time is a UTC time of day.
type Time struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// String returns the time as hh:mm:ss.ffffff.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour, t.Minute, t.Second, t.Microsecond)
}

// Node is a vertex with the properties of each of its tags.
type Node struct {
	ID         Value
	Tags       []string
	Properties map[string]map[string]Value
}

// HasTag reports whether the node carries tag.
func (n Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Props returns the properties of tag.
func (n Node) Props(tag string) map[string]Value {
	return n.Properties[tag]
}

// Relationship is an edge with its properties.
type Relationship struct {
	Src        Value
	Dst        Value
	Name       string
	Ranking    int64
	Properties map[string]Value
}

// Path is an alternating sequence of nodes and relationships.
type Path struct {
	Nodes         []Node
	Relationships []Relationship
}

// Value is a single result cell. The zero Value is null.
type Value struct {
	kind Kind
	v    any
}

// Null returns the null value.
func Null() Value { return Value{} }

// List returns a list value.
func List(vs ...Value) Value { return Value{kind: KindList, v: vs} }

// ValueOf returns the Value holding v. It panics on unsupported types.
func ValueOf(v any) Value {
	switch v := v.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case int:
		return Value{kind: KindInt, v: int64(v)}
	case int16:
		return Value{kind: KindInt, v: int64(v)}
	case int32:
		return Value{kind: KindInt, v: int64(v)}
	case int64:
		return Value{kind: KindInt, v: v}
	case bool:
		return Value{kind: KindBool, v: v}
	case float32:
		return Value{kind: KindFloat, v: float64(v)}
	case float64:
		return Value{kind: KindFloat, v: v}
	case string:
		return Value{kind: KindString, v: []byte(v)}
	case []byte:
		return Value{kind: KindString, v: v}
	case Date:
		return Value{kind: KindDate, v: v}
	case DateTime:
		return Value{kind: KindDateTime, v: v}
	case Time:
		return Value{kind: KindTime, v: v}
	case []Value:
		return Value{kind: KindList, v: v}
	case Node:
		return Value{kind: KindNode, v: v}
	case Relationship:
		return Value{kind: KindRelationship, v: v}
	case Path:
		return Value{kind: KindPath, v: v}
	default:
		panic(fmt.Sprintf("dialect: unsupported value type %T", v))
	}
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) mismatch(to Kind) error {
	return graphocean.NewConversionError("", v.kind.String(), to.String(), nil)
}

// AsInt returns the integer value.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}
	return v.v.(int64), nil
}

// AsBool returns the boolean value.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.v.(bool), nil
}

// AsFloat returns the double value.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}
	return v.v.(float64), nil
}

// AsBytes returns the raw bytes of a string value.
func (v Value) AsBytes() ([]byte, error) {
	if v.kind != KindString {
		return nil, v.mismatch(KindString)
	}
	return v.v.([]byte), nil
}

// AsString returns a string value decoded as UTF-8.
func (v Value) AsString() (string, error) {
	b, err := v.AsBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", graphocean.NewConversionError("", "bytes", "string", ErrInvalidEncoding)
	}
	return string(b), nil
}

// AsDate returns the date value.
func (v Value) AsDate() (Date, error) {
	if v.kind != KindDate {
		return Date{}, v.mismatch(KindDate)
	}
	return v.v.(Date), nil
}

// AsDateTime returns the date-time value.
func (v Value) AsDateTime() (DateTime, error) {
	if v.kind != KindDateTime {
		return DateTime{}, v.mismatch(KindDateTime)
	}
	return v.v.(DateTime), nil
}

// AsTime returns the time value.
func (v Value) AsTime() (Time, error) {
	if v.kind != KindTime {
		return Time{}, v.mismatch(KindTime)
	}
	return v.v.(Time), nil
}

// AsList returns the list value.
func (v Value) AsList() ([]Value, error) {
	if v.kind != KindList {
		return nil, v.mismatch(KindList)
	}
	return v.v.([]Value), nil
}

// AsNode returns the node value.
func (v Value) AsNode() (Node, error) {
	if v.kind != KindNode {
		return Node{}, v.mismatch(KindNode)
	}
	return v.v.(Node), nil
}

// AsRelationship returns the relationship value.
func (v Value) AsRelationship() (Relationship, error) {
	if v.kind != KindRelationship {
		return Relationship{}, v.mismatch(KindRelationship)
	}
	return v.v.(Relationship), nil
}

// AsPath returns the path value.
func (v Value) AsPath() (Path, error) {
	if v.kind != KindPath {
		return Path{}, v.mismatch(KindPath)
	}
	return v.v.(Path), nil
}

// String returns the value as text. Strings are returned unquoted, which
// makes String suitable for identity keys of vertex ids.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(v.v.(int64), 10)
	case KindBool:
		return strconv.FormatBool(v.v.(bool))
	case KindFloat:
		return strconv.FormatFloat(v.v.(float64), 'g', -1, 64)
	case KindString:
		return string(v.v.([]byte))
	case KindList:
		vs := v.v.([]Value)
		parts := make([]string, len(vs))
		for i, e := range vs {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindNode:
		n := v.v.(Node)
		return fmt.Sprintf("(%s :%s)", n.ID, strings.Join(n.Tags, ":"))
	case KindRelationship:
		r := v.v.(Relationship)
		return fmt.Sprintf("(%s)-[:%s@%d]->(%s)", r.Src, r.Name, r.Ranking, r.Dst)
	default:
		return fmt.Sprint(v.v)
	}
}
