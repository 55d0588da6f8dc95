package ngql

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
)

// Literal returns v as a statement literal of data type t.
//
// nil is NULL. Values of string types are quoted and escaped; so are
// strings of untyped values. Strings of other types are emitted as they
// are, which is how formatted temporal values such as date("2000-01-02")
// and raw int_64 ids reach the statement.
func Literal(t field.Type, v any) string {
	if v == nil {
		return "NULL"
	}
	if t.IsString() {
		return dialect.Quote(text(v))
	}
	switch v := v.(type) {
	case string:
		if t == field.TypeNull {
			return dialect.Quote(v)
		}
		return v
	case []byte:
		return Literal(t, string(v))
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return float(float64(v), 32)
	case float64:
		return float(v, 64)
	case time.Time:
		return temporal(t, v)
	case *time.Time:
		if v == nil {
			return "NULL"
		}
		return temporal(t, *v)
	case fmt.Stringer:
		return Literal(t, v.String())
	default:
		return fmt.Sprint(v)
	}
}

// Literals returns the literals of vs joined by ", ".
func Literals[V any](t field.Type, vs ...V) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Literal(t, v)
	}
	return strings.Join(parts, ", ")
}

func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// float keeps a decimal point on integral values so they are read back
// as doubles.
func float(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "NULL"
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// temporal formats a time value that reached the compiler unformatted.
func temporal(t field.Type, v time.Time) string {
	var f format.Formatter = format.Timestamp{}
	switch t {
	case field.TypeDate:
		f = format.Date{}
	case field.TypeDateTime:
		f = format.DateTime{}
	}
	out, err := f.Format(v)
	if err != nil {
		return "NULL"
	}
	return text(out)
}
