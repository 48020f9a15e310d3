package gridtable

import (
	"fmt"

	"github.com/arloliu/gridcodec/codec"
	"github.com/arloliu/gridcodec/dict"
	"github.com/arloliu/gridcodec/endian"
	"github.com/arloliu/gridcodec/errs"
)

// dictCodec encodes a column through its dictionary: the code is the value's
// surrogate id as a big-endian unsigned integer of exactly IDWidth bytes.
// Big-endian keeps byte-wise code comparison equal to id comparison, and the
// dictionary's monotonic id assignment extends that to value order.
type dictCodec struct {
	dict  dict.Dictionary
	width int
}

func newDictCodec(d dict.Dictionary) *dictCodec {
	return &dictCodec{dict: d, width: d.IDWidth()}
}

var _ codec.ColumnCodec = (*dictCodec)(nil)

// Encode appends the exact-match code for value. Nil encodes as the null code.
func (c *dictCodec) Encode(value any, dst []byte) ([]byte, error) {
	return c.encodeRounded(value, dict.RoundExact, dst)
}

// encodeRounded resolves values absent from the dictionary to the nearest
// smaller or larger member per rounding, so range predicate boundaries land
// on valid, order-consistent codes.
func (c *dictCodec) encodeRounded(value any, rounding dict.Rounding, dst []byte) ([]byte, error) {
	if value == nil {
		return appendNullCode(dst, c.width), nil
	}

	id, err := c.dict.IDOfRounded(value, rounding)
	if err != nil {
		return dst, err
	}

	return endian.AppendUintN(dst, id, c.width), nil
}

// Decode reads the id at the head of src and returns the dictionary value.
// The null code decodes to nil.
func (c *dictCodec) Decode(src []byte) (any, error) {
	if len(src) < c.width {
		return nil, fmt.Errorf("%w: dictionary code needs %d bytes, have %d", errs.ErrCodeTooShort, c.width, len(src))
	}

	code := src[:c.width]
	if isNullCode(code) {
		return nil, nil
	}

	return c.dict.ValueOf(endian.UintN(code, c.width))
}

func (c *dictCodec) PeekLength(src []byte) (int, error) {
	if len(src) < c.width {
		return 0, fmt.Errorf("%w: dictionary code needs %d bytes, have %d", errs.ErrCodeTooShort, c.width, len(src))
	}

	return c.width, nil
}

func (c *dictCodec) MaxLength() int {
	return c.width
}

// ValueOf is unsupported. Dictionary members are already strings, so there
// is no re-parse that could resolve a type mismatch; the coercion path
// treats this as a failed conversion and surfaces the original error.
func (c *dictCodec) ValueOf(string) (any, error) {
	return nil, fmt.Errorf("%w: dictionary columns do not re-parse values", errs.ErrUnsupportedOperation)
}
