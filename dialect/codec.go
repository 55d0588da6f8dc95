package dialect

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeResultSet serializes a result set for caching.
func EncodeResultSet(rs *ResultSet) ([]byte, error) {
	return msgpack.Marshal(rs)
}

// DecodeResultSet deserializes a result set encoded by EncodeResultSet.
func DecodeResultSet(b []byte) (*ResultSet, error) {
	rs := &ResultSet{}
	if err := msgpack.Unmarshal(b, rs); err != nil {
		return nil, fmt.Errorf("dialect: decode result set: %w", err)
	}
	return rs, nil
}

// EncodeMsgpack implements msgpack.CustomEncoder as a [kind, payload] pair.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(v.kind)); err != nil {
		return err
	}
	return enc.Encode(v.v)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("dialect: value: unexpected array length %d", n)
	}
	k, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	var payload any
	switch Kind(k) {
	case KindNull:
		err = dec.DecodeNil()
	case KindInt:
		payload, err = dec.DecodeInt64()
	case KindBool:
		payload, err = dec.DecodeBool()
	case KindFloat:
		payload, err = dec.DecodeFloat64()
	case KindString:
		payload, err = dec.DecodeBytes()
	case KindDate:
		payload, err = decodeAs[Date](dec)
	case KindDateTime:
		payload, err = decodeAs[DateTime](dec)
	case KindTime:
		payload, err = decodeAs[Time](dec)
	case KindList:
		payload, err = decodeAs[[]Value](dec)
	case KindNode:
		payload, err = decodeAs[Node](dec)
	case KindRelationship:
		payload, err = decodeAs[Relationship](dec)
	case KindPath:
		payload, err = decodeAs[Path](dec)
	default:
		return fmt.Errorf("dialect: value: unknown kind %d", k)
	}
	if err != nil {
		return err
	}
	*v = Value{kind: Kind(k), v: payload}
	return nil
}

func decodeAs[T any](dec *msgpack.Decoder) (T, error) {
	var out T
	err := dec.Decode(&out)
	return out, err
}

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)
