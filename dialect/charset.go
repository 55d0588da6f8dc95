package dialect

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/syssam/graphocean"
)

// ErrInvalidEncoding is wrapped by conversion errors of string cells whose
// bytes are not valid in the expected charset.
var ErrInvalidEncoding = errors.New("dialect: invalid string encoding")

// Charset decodes string cells stored in a given character set.
// The zero Charset decodes UTF-8.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default charset.
var UTF8 = Charset{name: "utf-8"}

// LookupCharset returns the charset with the given WHATWG name or label,
// e.g. "utf-8", "gbk" or "iso-8859-1".
func LookupCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return Charset{}, graphocean.NewConversionError("", "charset "+name, "string", err)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return Charset{name: canonical, enc: enc}, nil
}

// Name returns the canonical charset name.
func (c Charset) Name() string {
	if c.name == "" {
		return UTF8.name
	}
	return c.name
}

// String decodes a string cell.
func (c Charset) String(v Value) (string, error) {
	if c.enc == nil {
		return v.AsString()
	}
	b, err := v.AsBytes()
	if err != nil {
		return "", err
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", graphocean.NewConversionError("", c.name, "string", errors.Join(ErrInvalidEncoding, err))
	}
	return string(out), nil
}
