package graph

import (
	"errors"
	"math"

	"github.com/syssam/graphocean"
	"github.com/syssam/graphocean/dialect"
	"github.com/syssam/graphocean/schema"
	"github.com/syssam/graphocean/schema/field"
	"github.com/syssam/graphocean/schema/format"
)

type scanConfig struct {
	charset dialect.Charset
}

// ScanOption configures Scan.
type ScanOption func(*scanConfig)

// WithCharset sets the charset string cells are decoded with. UTF-8 is
// the default.
func WithCharset(c dialect.Charset) ScanOption {
	return func(cfg *scanConfig) {
		cfg.charset = c
	}
}

// Scan returns one value of T per row of rs.
func Scan[T any](rs *dialect.ResultSet, typ *schema.Type[T], opts ...ScanOption) ([]*T, error) {
	cfg := scanConfig{charset: dialect.UTF8}
	for _, opt := range opts {
		opt(&cfg)
	}
	records := rs.Records()
	out := make([]*T, 0, len(records))
	for _, r := range records {
		v, err := scanRecord(r, typ, &cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ScanRecord returns the value of T held by r.
func ScanRecord[T any](r dialect.Record, typ *schema.Type[T], opts ...ScanOption) (*T, error) {
	cfg := scanConfig{charset: dialect.UTF8}
	for _, opt := range opts {
		opt(&cfg)
	}
	return scanRecord(r, typ, &cfg)
}

func scanRecord[T any](r dialect.Record, typ *schema.Type[T], cfg *scanConfig) (*T, error) {
	v := new(T)
	for _, d := range typ.Members() {
		cell, ok := r.Get(d.Member)
		if !ok && d.Property != "" {
			cell, ok = r.Get(d.Property)
		}
		if !ok || cell.IsNull() {
			continue
		}
		val, err := extract(cell, typ, d, cfg)
		if err == nil {
			err = d.Set(v, val)
		}
		if err != nil {
			return nil, named(err, d)
		}
	}
	return v, nil
}

// extract reads the cell of member d: by data type for members with a
// property role, by cell kind for the others.
func extract[T any](cell dialect.Value, typ *schema.Type[T], d *field.Descriptor[T], cfg *scanConfig) (any, error) {
	switch {
	case d.Role == field.RoleProperty:
		l := typ.Label()
		raw, err := extractAs(cell, l.DataType(d.Property), cfg)
		if err != nil {
			return nil, err
		}
		return l.Reformat(d.Property, raw)
	case d.Role.IsID():
		raw, err := extractAs(cell, d.Type, cfg)
		if err != nil {
			return nil, err
		}
		if f := idFormatter(typ, d.Role); f != nil {
			return f.Reformat(raw)
		}
		return raw, nil
	default:
		return extractKind(cell, cfg)
	}
}

func idFormatter[T any](typ *schema.Type[T], r field.Role) format.Formatter {
	switch r {
	case field.RoleVertexID:
		if l := typ.Vertex(); l != nil {
			return l.IDFormatter()
		}
	case field.RoleSrcID:
		if l := typ.Edge(); l != nil {
			return l.SrcIDFormatter()
		}
	case field.RoleDstID:
		if l := typ.Edge(); l != nil {
			return l.DstIDFormatter()
		}
	}
	return nil
}

// extractAs reads the cell as data type t. Untyped properties fall back
// to the cell kind.
func extractAs(cell dialect.Value, t field.Type, cfg *scanConfig) (any, error) {
	switch t {
	case field.TypeInt64, field.TypeTimestamp:
		return cell.AsInt()
	case field.TypeInt16:
		n, err := cell.AsInt()
		if err != nil {
			return nil, err
		}
		if n < math.MinInt16 || n > math.MaxInt16 {
			return nil, graphocean.NewConversionError("", "int", "int16", errors.New("value out of range"))
		}
		return int16(n), nil
	case field.TypeString, field.TypeFixedString:
		return cfg.charset.String(cell)
	case field.TypeDate:
		return cell.AsDate()
	case field.TypeDateTime:
		return cell.AsDateTime()
	case field.TypeBool:
		return cell.AsBool()
	case field.TypeDouble:
		return cell.AsFloat()
	default:
		return extractKind(cell, cfg)
	}
}

// extractKind reads the cell by its runtime kind.
func extractKind(cell dialect.Value, cfg *scanConfig) (any, error) {
	switch cell.Kind() {
	case dialect.KindInt:
		return cell.AsInt()
	case dialect.KindBool:
		return cell.AsBool()
	case dialect.KindFloat:
		return cell.AsFloat()
	case dialect.KindDate:
		return cell.AsDate()
	case dialect.KindDateTime:
		return cell.AsDateTime()
	case dialect.KindTime:
		return cell.AsTime()
	case dialect.KindString:
		return cfg.charset.String(cell)
	case dialect.KindList:
		return cell.AsList()
	case dialect.KindNode:
		return cell.AsNode()
	case dialect.KindRelationship:
		return cell.AsRelationship()
	case dialect.KindPath:
		return cell.AsPath()
	default:
		return nil, nil
	}
}

// named fills the property of a conversion error raised below the member.
func named[T any](err error, d *field.Descriptor[T]) error {
	var ce *graphocean.ConversionError
	if errors.As(err, &ce) {
		if ce.Property == "" {
			ce.Property = d.Property
			if ce.Property == "" {
				ce.Property = d.Member
			}
		}
		return err
	}
	return graphocean.NewConversionError(d.Member, "cell", d.Type.String(), err)
}
