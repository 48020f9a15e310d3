package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

// DecimalCodec encodes decimal(p,s) values as
//
//	varint scale | sign byte | uvarint coefficient length | coefficient bytes
//
// The value is rescaled to the declared scale before encoding (rounding half
// away from zero), then rejected if the resulting coefficient carries more
// than the declared precision's digits. The coefficient is the big-endian
// absolute unscaled value.
type DecimalCodec struct {
	precision int
	scale     int
}

var _ ColumnCodec = (*DecimalCodec)(nil)

func newDecimalCodec(dt datatype.DataType) ColumnCodec {
	return &DecimalCodec{precision: dt.Precision, scale: dt.Scale}
}

// NewDecimalCodec creates the decimal codec for the given declared type.
func NewDecimalCodec(dt datatype.DataType) *DecimalCodec {
	c, _ := newDecimalCodec(dt).(*DecimalCodec)
	return c
}

func (c *DecimalCodec) Encode(value any, dst []byte) ([]byte, error) {
	d, ok := asDecimal(value)
	if !ok {
		return dst, fmt.Errorf("%w: decimal column cannot encode %T", errs.ErrTypeMismatch, value)
	}

	d = d.Round(int32(c.scale))

	coef := d.Coefficient()
	if digits(coef) > c.precision {
		return dst, fmt.Errorf("%w: %s needs more than %d digits", errs.ErrPrecisionExceeded, d, c.precision)
	}

	sign := byte(0)
	if coef.Sign() < 0 {
		sign = 1
	}
	coefBytes := new(big.Int).Abs(coef).Bytes()

	dst = binary.AppendVarint(dst, int64(-d.Exponent()))
	dst = append(dst, sign)
	dst = binary.AppendUvarint(dst, uint64(len(coefBytes)))
	dst = append(dst, coefBytes...)

	return dst, nil
}

func (c *DecimalCodec) Decode(src []byte) (any, error) {
	scale, sign, coefStart, coefLen, err := c.split(src)
	if err != nil {
		return nil, err
	}

	coef := new(big.Int).SetBytes(src[coefStart : coefStart+coefLen])
	if sign == 1 {
		coef.Neg(coef)
	}

	return decimal.NewFromBigInt(coef, int32(-scale)), nil
}

func (c *DecimalCodec) PeekLength(src []byte) (int, error) {
	_, _, coefStart, coefLen, err := c.split(src)
	if err != nil {
		return 0, err
	}

	return coefStart + coefLen, nil
}

func (c *DecimalCodec) MaxLength() int {
	// Half a digit per byte overestimates the coefficient comfortably.
	return binary.MaxVarintLen32 + 1 + binary.MaxVarintLen16 + c.precision/2 + 1
}

func (c *DecimalCodec) ValueOf(s string) (any, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a decimal", errs.ErrTypeMismatch, s)
	}

	return d, nil
}

// split parses the header fields and bounds-checks the coefficient region.
func (c *DecimalCodec) split(src []byte) (scale int64, sign byte, coefStart, coefLen int, err error) {
	scale, n := binary.Varint(src)
	if n <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: truncated decimal scale", errs.ErrCodeTooShort)
	}
	pos := n

	if pos >= len(src) {
		return 0, 0, 0, 0, fmt.Errorf("%w: missing decimal sign", errs.ErrCodeTooShort)
	}
	sign = src[pos]
	pos++

	length, n := binary.Uvarint(src[pos:])
	if n <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: truncated decimal length", errs.ErrCodeTooShort)
	}
	pos += n

	if uint64(len(src)-pos) < length {
		return 0, 0, 0, 0, fmt.Errorf("%w: decimal coefficient needs %d bytes, got %d",
			errs.ErrCodeTooShort, length, len(src)-pos)
	}

	return scale, sign, pos, int(length), nil
}

func asDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case int64:
		return decimal.NewFromInt(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Decimal{}, false
	}
}

// digits counts the decimal digits of the coefficient's absolute value.
func digits(coef *big.Int) int {
	if coef.Sign() == 0 {
		return 1
	}

	return len(new(big.Int).Abs(coef).String())
}
