package field

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/syssam/graphocean"
)

// Convert converts an extracted or reformatted value to the member type V.
func Convert[V Scalar](v any) (V, error) {
	var out V
	switch p := any(&out).(type) {
	case *string:
		switch v := v.(type) {
		case string:
			*p = v
		case []byte:
			*p = string(v)
		case int64:
			*p = strconv.FormatInt(v, 10)
		case fmt.Stringer:
			*p = v.String()
		default:
			return out, convertError[V](v, nil)
		}
	case *int:
		n, err := toInt(v, math.MinInt, math.MaxInt)
		if err != nil {
			return out, convertError[V](v, err)
		}
		*p = int(n)
	case *int16:
		n, err := toInt(v, math.MinInt16, math.MaxInt16)
		if err != nil {
			return out, convertError[V](v, err)
		}
		*p = int16(n)
	case *int32:
		n, err := toInt(v, math.MinInt32, math.MaxInt32)
		if err != nil {
			return out, convertError[V](v, err)
		}
		*p = int32(n)
	case *int64:
		n, err := toInt(v, math.MinInt64, math.MaxInt64)
		if err != nil {
			return out, convertError[V](v, err)
		}
		*p = n
	case *float32:
		f, err := toFloat(v)
		if err != nil {
			return out, convertError[V](v, err)
		}
		*p = float32(f)
	case *float64:
		f, err := toFloat(v)
		if err != nil {
			return out, convertError[V](v, err)
		}
		*p = f
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return out, convertError[V](v, nil)
		}
		*p = b
	case *time.Time:
		switch v := v.(type) {
		case time.Time:
			*p = v
		case interface{ Time() time.Time }:
			*p = v.Time()
		case int64:
			*p = time.Unix(v, 0)
		default:
			return out, convertError[V](v, nil)
		}
	}
	return out, nil
}

func toInt(v any, lo, hi int64) (int64, error) {
	var n int64
	switch v := v.(type) {
	case int64:
		n = v
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int16:
		n = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not integral", v)
		}
		n = int64(v)
	case string:
		var err error
		if n, err = strconv.ParseInt(v, 10, 64); err != nil {
			return 0, err
		}
	case time.Time:
		n = v.Unix()
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d overflows [%d, %d]", n, lo, hi)
	}
	return n, nil
}

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func convertError[V Scalar](v any, err error) error {
	var zero V
	return graphocean.NewConversionError("", fmt.Sprintf("%T", v), fmt.Sprintf("%T", zero), err)
}
