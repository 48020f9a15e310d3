package codec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/endian"
	"github.com/arloliu/gridcodec/errs"
)

const doubleCodeLength = 8

// DoubleCodec encodes float and double values as fixed 8-byte IEEE 754 bits,
// big-endian. Integer values are accepted and converted, since upstream row
// sources often carry whole numbers for double columns.
type DoubleCodec struct {
	kind   datatype.Kind
	engine endian.EndianEngine
}

var _ ColumnCodec = (*DoubleCodec)(nil)

func newDoubleCodec(dt datatype.DataType) ColumnCodec {
	return &DoubleCodec{
		kind:   dt.Kind,
		engine: endian.GetBigEndianEngine(),
	}
}

// NewDoubleCodec creates the floating point codec for the given declared type.
func NewDoubleCodec(dt datatype.DataType) *DoubleCodec {
	c, _ := newDoubleCodec(dt).(*DoubleCodec)
	return c
}

func (c *DoubleCodec) Encode(value any, dst []byte) ([]byte, error) {
	v, ok := asFloat64(value)
	if !ok {
		return dst, fmt.Errorf("%w: %s column cannot encode %T", errs.ErrTypeMismatch, c.kind, value)
	}

	return c.engine.AppendUint64(dst, math.Float64bits(v)), nil
}

func (c *DoubleCodec) Decode(src []byte) (any, error) {
	if len(src) < doubleCodeLength {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrCodeTooShort, doubleCodeLength, len(src))
	}

	return math.Float64frombits(c.engine.Uint64(src[:doubleCodeLength])), nil
}

func (c *DoubleCodec) PeekLength(src []byte) (int, error) {
	if len(src) < doubleCodeLength {
		return 0, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrCodeTooShort, doubleCodeLength, len(src))
	}

	return doubleCodeLength, nil
}

func (c *DoubleCodec) MaxLength() int {
	return doubleCodeLength
}

func (c *DoubleCodec) ValueOf(s string) (any, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", errs.ErrTypeMismatch, s)
	}

	return v, nil
}

func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}
