package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05.000000"
)

// Timestamp formats time values as timestamp(<unix seconds>) and reads
// them back from integer seconds.
type Timestamp struct{}

// Format implements Formatter.
func (Timestamp) Format(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return fmt.Sprintf("timestamp(%d)", v.Unix()), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return fmt.Sprintf("timestamp(%d)", v.Unix()), nil
	case int64:
		return fmt.Sprintf("timestamp(%d)", v), nil
	case int:
		return fmt.Sprintf("timestamp(%d)", v), nil
	default:
		return nil, fmt.Errorf("format: timestamp: unsupported value %T", v)
	}
}

// Reformat implements Formatter.
func (Timestamp) Reformat(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case int64:
		return time.Unix(v, 0), nil
	case int:
		return time.Unix(int64(v), 0), nil
	case string:
		s, ok := unwrapCall(v, "timestamp")
		if !ok {
			s = v
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("format: timestamp: %w", err)
		}
		return time.Unix(n, 0), nil
	default:
		return nil, fmt.Errorf("format: timestamp: unsupported value %T", v)
	}
}

// Date formats time values as date("YYYY-MM-DD"). Wire values are read back
// as midnight UTC.
type Date struct{}

// Format implements Formatter.
func (Date) Format(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return fmt.Sprintf("date(%q)", v.Format(dateLayout)), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return fmt.Sprintf("date(%q)", v.Format(dateLayout)), nil
	default:
		return nil, fmt.Errorf("format: date: unsupported value %T", v)
	}
}

// Reformat implements Formatter.
func (Date) Reformat(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case interface{ Time() time.Time }:
		return v.Time(), nil
	case string:
		s, ok := unwrapCall(v, "date")
		if ok {
			s = strings.Trim(s, `"`)
		}
		t, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("format: date: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("format: date: unsupported value %T", v)
	}
}

// DateTime formats time values as datetime("YYYY-MM-DDThh:mm:ss.ffffff")
// in UTC. Wire values are read back in UTC.
type DateTime struct{}

// Format implements Formatter.
func (DateTime) Format(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return fmt.Sprintf("datetime(%q)", v.UTC().Format(dateTimeLayout)), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return fmt.Sprintf("datetime(%q)", v.UTC().Format(dateTimeLayout)), nil
	default:
		return nil, fmt.Errorf("format: datetime: unsupported value %T", v)
	}
}

// Reformat implements Formatter.
func (DateTime) Reformat(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case interface{ Time() time.Time }:
		return v.Time(), nil
	case string:
		s, ok := unwrapCall(v, "datetime")
		if ok {
			s = strings.Trim(s, `"`)
		}
		t, err := time.ParseInLocation(dateTimeLayout, s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("format: datetime: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("format: datetime: unsupported value %T", v)
	}
}

// unwrapCall returns the argument of fn(arg).
func unwrapCall(s, fn string) (string, bool) {
	if !strings.HasPrefix(s, fn+"(") || !strings.HasSuffix(s, ")") {
		return s, false
	}
	return s[len(fn)+1 : len(s)-1], true
}

var (
	_ Formatter = Timestamp{}
	_ Formatter = Date{}
	_ Formatter = DateTime{}
	_ Formatter = Func{}
)
