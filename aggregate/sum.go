package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

func newSum(dt datatype.DataType) (Aggregator, error) {
	switch {
	case dt.IsIntegerFamily():
		return &SumInt64{}, nil
	case dt.IsFloatFamily():
		return &SumFloat64{}, nil
	case dt.Kind == datatype.KindDecimal:
		return &SumDecimal{}, nil
	default:
		return nil, fmt.Errorf("%w: SUM over %s", errs.ErrUnknownAggregation, dt)
	}
}

// SumInt64 sums integer family measures. The empty sum is 0.
type SumInt64 struct {
	total int64
}

var _ Aggregator = (*SumInt64)(nil)

func (a *SumInt64) Aggregate(value any) error {
	if value == nil {
		return nil
	}

	v, ok := asInt64(value)
	if !ok {
		return fmt.Errorf("%w: integer sum cannot aggregate %T", errs.ErrTypeMismatch, value)
	}
	a.total += v

	return nil
}

func (a *SumInt64) Result() any {
	return a.total
}

func (a *SumInt64) Reset() {
	a.total = 0
}

// SumFloat64 sums float family measures. The empty sum is 0.
type SumFloat64 struct {
	total float64
}

var _ Aggregator = (*SumFloat64)(nil)

func (a *SumFloat64) Aggregate(value any) error {
	if value == nil {
		return nil
	}

	v, ok := asFloat64(value)
	if !ok {
		return fmt.Errorf("%w: float sum cannot aggregate %T", errs.ErrTypeMismatch, value)
	}
	a.total += v

	return nil
}

func (a *SumFloat64) Result() any {
	return a.total
}

func (a *SumFloat64) Reset() {
	a.total = 0
}

// SumDecimal sums decimal measures exactly. The empty sum is 0.
type SumDecimal struct {
	total decimal.Decimal
}

var _ Aggregator = (*SumDecimal)(nil)

func (a *SumDecimal) Aggregate(value any) error {
	if value == nil {
		return nil
	}

	v, ok := asDecimal(value)
	if !ok {
		return fmt.Errorf("%w: decimal sum cannot aggregate %T", errs.ErrTypeMismatch, value)
	}
	a.total = a.total.Add(v)

	return nil
}

func (a *SumDecimal) Result() any {
	return a.total
}

func (a *SumDecimal) Reset() {
	a.total = decimal.Decimal{}
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
	default:
		return 0, false
	}
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
