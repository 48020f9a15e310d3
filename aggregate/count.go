package aggregate

import (
	"fmt"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

func newCount(_ datatype.DataType) (Aggregator, error) {
	return &Count{}, nil
}

// Count sums per-row partial counts. Rows carry the number of base records
// they stand for, so merging two pre-aggregated rows adds their counts
// rather than counting the rows themselves.
type Count struct {
	total int64
}

var _ Aggregator = (*Count)(nil)

func (a *Count) Aggregate(value any) error {
	if value == nil {
		return nil
	}

	v, ok := asInt64(value)
	if !ok {
		return fmt.Errorf("%w: count expects an integer partial, got %T", errs.ErrTypeMismatch, value)
	}

	a.total += v

	return nil
}

func (a *Count) Result() any {
	return a.total
}

func (a *Count) Reset() {
	a.total = 0
}
