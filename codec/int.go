package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

// IntCodec encodes integer family values as zigzag varints.
//
// The code is self-describing: PeekLength scans continuation bits without
// decoding. Values are range-checked against the declared kind, so a tinyint
// column rejects values outside [-128, 127] even though the wire format
// could carry them.
type IntCodec struct {
	kind datatype.Kind
	min  int64
	max  int64
}

var _ ColumnCodec = (*IntCodec)(nil)

func newIntCodec(dt datatype.DataType) ColumnCodec {
	c := &IntCodec{kind: dt.Kind}
	switch dt.Kind {
	case datatype.KindTinyInt:
		c.min, c.max = math.MinInt8, math.MaxInt8
	case datatype.KindSmallInt:
		c.min, c.max = math.MinInt16, math.MaxInt16
	case datatype.KindInt:
		c.min, c.max = math.MinInt32, math.MaxInt32
	default:
		c.min, c.max = math.MinInt64, math.MaxInt64
	}

	return c
}

// NewIntCodec creates the integer codec for the given declared type.
func NewIntCodec(dt datatype.DataType) *IntCodec {
	c, _ := newIntCodec(dt).(*IntCodec)
	return c
}

func (c *IntCodec) Encode(value any, dst []byte) ([]byte, error) {
	v, ok := asInt64(value)
	if !ok {
		return dst, fmt.Errorf("%w: %s column cannot encode %T", errs.ErrTypeMismatch, c.kind, value)
	}
	if v < c.min || v > c.max {
		return dst, fmt.Errorf("%w: %d outside %s range [%d, %d]", errs.ErrValueOutOfRange, v, c.kind, c.min, c.max)
	}

	return binary.AppendVarint(dst, v), nil
}

func (c *IntCodec) Decode(src []byte) (any, error) {
	v, n := binary.Varint(src)
	if n <= 0 {
		return nil, fmt.Errorf("%w: truncated varint", errs.ErrCodeTooShort)
	}

	return v, nil
}

func (c *IntCodec) PeekLength(src []byte) (int, error) {
	for i, b := range src {
		if i >= binary.MaxVarintLen64 {
			break
		}
		if b < 0x80 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: truncated varint", errs.ErrCodeTooShort)
}

func (c *IntCodec) MaxLength() int {
	return binary.MaxVarintLen64
}

func (c *IntCodec) ValueOf(s string) (any, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", errs.ErrTypeMismatch, s)
	}

	return v, nil
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	default:
		return 0, false
	}
}
