package gridtable

import (
	"fmt"

	"github.com/arloliu/gridcodec/codec"
	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/format"
)

// fixLenCodec encodes a value's textual bytes right-padded with the
// placeholder byte to exactly width bytes. Any value type is accepted
// through its text form; only overflow fails, values are never truncated.
//
// Padding on the right keeps byte-wise comparison consistent with text
// order, since the placeholder sorts below every printable byte.
type fixLenCodec struct {
	width int
}

func newFixLenCodec(width int) *fixLenCodec {
	return &fixLenCodec{width: width}
}

var _ codec.ColumnCodec = (*fixLenCodec)(nil)

func (c *fixLenCodec) Encode(value any, dst []byte) ([]byte, error) {
	if value == nil {
		return appendNullCode(dst, c.width), nil
	}

	text := valueText(value)
	if len(text) > c.width {
		return dst, fmt.Errorf("%w: expect at most %d bytes, but got %d, value string: %q", errs.ErrValueTooLong, c.width, len(text), text)
	}

	dst = append(dst, text...)
	for i := len(text); i < c.width; i++ {
		dst = append(dst, format.PlaceholderByte)
	}

	return dst, nil
}

// Decode reads exactly width bytes and trims trailing placeholder and null
// sentinel bytes. A fully trimmed window decodes to nil when it was the null
// code, otherwise to the empty string. Values whose own text ends in either
// reserved byte are therefore not round-trippable; writers must not produce
// them.
func (c *fixLenCodec) Decode(src []byte) (any, error) {
	if len(src) < c.width {
		return nil, fmt.Errorf("%w: fixed-length code needs %d bytes, have %d", errs.ErrCodeTooShort, c.width, len(src))
	}

	buf := src[:c.width]
	end := c.width
	for end > 0 && (buf[end-1] == format.PlaceholderByte || buf[end-1] == format.NullByte) {
		end--
	}

	if end == 0 {
		if buf[0] == format.NullByte {
			return nil, nil
		}

		return "", nil
	}

	return string(buf[:end]), nil
}

func (c *fixLenCodec) PeekLength(src []byte) (int, error) {
	if len(src) < c.width {
		return 0, fmt.Errorf("%w: fixed-length code needs %d bytes, have %d", errs.ErrCodeTooShort, c.width, len(src))
	}

	return c.width, nil
}

func (c *fixLenCodec) MaxLength() int {
	return c.width
}

// ValueOf returns s unchanged: the fixed-length strategy is already textual.
func (c *fixLenCodec) ValueOf(s string) (any, error) {
	return s, nil
}

// valueText renders a value as the bytes to pad.
func valueText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
