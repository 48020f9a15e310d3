package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/endian"
	"github.com/arloliu/gridcodec/errs"
)

const stringLengthPrefixSize = 2

// StringCodec encodes varchar and char values as a 2-byte big-endian length
// prefix followed by the UTF-8 bytes. The declared length bounds the byte
// count; oversized values fail rather than truncate.
type StringCodec struct {
	kind   datatype.Kind
	bound  int
	engine endian.EndianEngine
}

var _ ColumnCodec = (*StringCodec)(nil)

func newStringCodec(dt datatype.DataType) ColumnCodec {
	bound := dt.Precision
	// The length prefix is uint16, so the wire format caps declared bounds.
	if bound > math.MaxUint16 {
		bound = math.MaxUint16
	}

	return &StringCodec{
		kind:   dt.Kind,
		bound:  bound,
		engine: endian.GetBigEndianEngine(),
	}
}

// NewStringCodec creates the string codec for the given declared type.
func NewStringCodec(dt datatype.DataType) *StringCodec {
	c, _ := newStringCodec(dt).(*StringCodec)
	return c
}

func (c *StringCodec) Encode(value any, dst []byte) ([]byte, error) {
	s, ok := asString(value)
	if !ok {
		return dst, fmt.Errorf("%w: %s column cannot encode %T", errs.ErrTypeMismatch, c.kind, value)
	}
	if len(s) > c.bound {
		return dst, fmt.Errorf("%w: expect at most %d bytes, but got %d, value string: %q",
			errs.ErrValueTooLong, c.bound, len(s), s)
	}

	dst = c.engine.AppendUint16(dst, uint16(len(s)))

	return append(dst, s...), nil
}

func (c *StringCodec) Decode(src []byte) (any, error) {
	length, err := c.contentLength(src)
	if err != nil {
		return nil, err
	}

	return string(src[stringLengthPrefixSize : stringLengthPrefixSize+length]), nil
}

func (c *StringCodec) PeekLength(src []byte) (int, error) {
	length, err := c.contentLength(src)
	if err != nil {
		return 0, err
	}

	return stringLengthPrefixSize + length, nil
}

func (c *StringCodec) MaxLength() int {
	return stringLengthPrefixSize + c.bound
}

func (c *StringCodec) ValueOf(s string) (any, error) {
	return s, nil
}

func (c *StringCodec) contentLength(src []byte) (int, error) {
	if len(src) < stringLengthPrefixSize {
		return 0, fmt.Errorf("%w: truncated string length prefix", errs.ErrCodeTooShort)
	}

	length := int(c.engine.Uint16(src[:stringLengthPrefixSize]))
	if len(src)-stringLengthPrefixSize < length {
		return 0, fmt.Errorf("%w: string content needs %d bytes, got %d",
			errs.ErrCodeTooShort, length, len(src)-stringLengthPrefixSize)
	}

	return length, nil
}

func asString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}
