package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

func newMin(dt datatype.DataType) (Aggregator, error) {
	return newMinMax(dt, false)
}

func newMax(dt datatype.DataType) (Aggregator, error) {
	return newMinMax(dt, true)
}

func newMinMax(dt datatype.DataType, isMax bool) (Aggregator, error) {
	name := "MIN"
	if isMax {
		name = "MAX"
	}

	var normalize normalizeFunc
	switch {
	case dt.IsIntegerFamily():
		normalize = normalizeInt64
	case dt.IsFloatFamily():
		normalize = normalizeFloat64
	case dt.Kind == datatype.KindDecimal:
		normalize = normalizeDecimal
	case dt.IsStringFamily():
		normalize = normalizeString
	case dt.IsDateTimeFamily():
		normalize = normalizeTime
	default:
		return nil, fmt.Errorf("%w: %s over %s", errs.ErrUnknownAggregation, name, dt)
	}

	return &MinMax{isMax: isMax, normalize: normalize}, nil
}

// normalizeFunc converts an accepted dynamic type to the canonical comparable
// form and reports the ordering against another canonical value.
type normalizeFunc func(value any) (canonical any, ok bool)

// MinMax tracks the smallest or largest value seen. Result is nil until a
// non-null value arrives.
type MinMax struct {
	best      any
	isMax     bool
	normalize normalizeFunc
}

var _ Aggregator = (*MinMax)(nil)

func (a *MinMax) Aggregate(value any) error {
	if value == nil {
		return nil
	}

	v, ok := a.normalize(value)
	if !ok {
		return fmt.Errorf("%w: min/max cannot aggregate %T", errs.ErrTypeMismatch, value)
	}

	if a.best == nil {
		a.best = v
		return nil
	}

	c := compareCanonical(v, a.best)
	if (a.isMax && c > 0) || (!a.isMax && c < 0) {
		a.best = v
	}

	return nil
}

func (a *MinMax) Result() any {
	return a.best
}

func (a *MinMax) Reset() {
	a.best = nil
}

// compareCanonical compares two values produced by the same normalizeFunc.
func compareCanonical(a, b any) int {
	switch av := a.(type) {
	case int64:
		bv, _ := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Compare(bv)
	case decimal.Decimal:
		bv, _ := b.(decimal.Decimal)
		return av.Cmp(bv)
	default:
		return 0
	}
}

func normalizeInt64(value any) (any, bool) {
	v, ok := asInt64(value)
	return v, ok
}

func normalizeFloat64(value any) (any, bool) {
	v, ok := asFloat64(value)
	return v, ok
}

func normalizeDecimal(value any) (any, bool) {
	v, ok := asDecimal(value)
	return v, ok
}

func normalizeString(value any) (any, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return nil, false
	}
}

func normalizeTime(value any) (any, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case int64:
		return time.UnixMilli(v).UTC(), true
	default:
		return nil, false
	}
}
