package field

import (
	"fmt"
	"time"
)

// A Type represents a property data type of the graph store.
type Type uint8

// List of data types.
const (
	// TypeNull is the untyped sentinel. Properties of this type are never
	// written to the store.
	TypeNull Type = iota
	TypeString
	TypeFixedString
	TypeInt64
	TypeInt16
	TypeDouble
	TypeTimestamp
	TypeDate
	TypeDateTime
	TypeBool
	endTypes
)

var typeNames = [...]string{
	TypeNull:        "NULL",
	TypeString:      "STRING",
	TypeFixedString: "FIXED_STRING",
	TypeInt64:       "INT64",
	TypeInt16:       "INT16",
	TypeDouble:      "DOUBLE",
	TypeTimestamp:   "TIMESTAMP",
	TypeDate:        "DATE",
	TypeDateTime:    "DATETIME",
	TypeBool:        "BOOLEAN",
}

var nebulaNames = [...]string{
	TypeNull:        "null",
	TypeString:      "string",
	TypeFixedString: "fixed_string(%d)",
	TypeInt64:       "int64",
	TypeInt16:       "int16",
	TypeDouble:      "double",
	TypeTimestamp:   "timestamp",
	TypeDate:        "date",
	TypeDateTime:    "datetime",
	TypeBool:        "bool",
}

// String returns the type name.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Valid reports if the given type is known.
func (t Type) Valid() bool {
	return t > TypeNull && t < endTypes
}

// Nebula returns the type as written in DDL. size is used by FIXED_STRING only.
func (t Type) Nebula(size int) string {
	if t >= endTypes {
		return nebulaNames[TypeNull]
	}
	if t == TypeFixedString {
		return fmt.Sprintf(nebulaNames[t], size)
	}
	return nebulaNames[t]
}

// IsString reports whether values of this type are written as quoted strings.
func (t Type) IsString() bool {
	return t == TypeString || t == TypeFixedString
}

// IsTemporal reports whether the type has a built-in formatter.
func (t Type) IsTemporal() bool {
	return t == TypeTimestamp || t == TypeDate || t == TypeDateTime
}

// Scalar is the set of native member types with an inferred data type.
type Scalar interface {
	string | int | int16 | int32 | int64 | float32 | float64 | bool | time.Time
}

// Infer returns the data type inferred from the native member type V.
func Infer[V Scalar]() Type {
	var zero V
	switch any(zero).(type) {
	case string:
		return TypeString
	case int16, int32:
		return TypeInt16
	case int, int64:
		return TypeInt64
	case float32, float64:
		return TypeDouble
	case bool:
		return TypeBool
	case time.Time:
		return TypeTimestamp
	default:
		return TypeNull
	}
}
