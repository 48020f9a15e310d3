package codec

import (
	"fmt"
	"strconv"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

// BoolCodec encodes boolean values as a single 0 or 1 byte.
type BoolCodec struct{}

var _ ColumnCodec = (*BoolCodec)(nil)

func newBoolCodec(datatype.DataType) ColumnCodec {
	return &BoolCodec{}
}

// NewBoolCodec creates the boolean codec.
func NewBoolCodec() *BoolCodec {
	return &BoolCodec{}
}

func (c *BoolCodec) Encode(value any, dst []byte) ([]byte, error) {
	v, ok := value.(bool)
	if !ok {
		return dst, fmt.Errorf("%w: boolean column cannot encode %T", errs.ErrTypeMismatch, value)
	}

	b := byte(0)
	if v {
		b = 1
	}

	return append(dst, b), nil
}

func (c *BoolCodec) Decode(src []byte) (any, error) {
	if len(src) < 1 {
		return nil, fmt.Errorf("%w: empty boolean code", errs.ErrCodeTooShort)
	}

	return src[0] != 0, nil
}

func (c *BoolCodec) PeekLength(src []byte) (int, error) {
	if len(src) < 1 {
		return 0, fmt.Errorf("%w: empty boolean code", errs.ErrCodeTooShort)
	}

	return 1, nil
}

func (c *BoolCodec) MaxLength() int {
	return 1
}

func (c *BoolCodec) ValueOf(s string) (any, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a boolean", errs.ErrTypeMismatch, s)
	}

	return v, nil
}
