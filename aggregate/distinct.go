package aggregate

import (
	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/internal/hash"
	"github.com/arloliu/gridcodec/internal/sketch"
)

func newApproxDistinct(_ datatype.DataType) (Aggregator, error) {
	return &ApproxDistinct{sketch: sketch.New()}, nil
}

// ApproxDistinct estimates the number of distinct values with a HyperLogLog
// sketch. Values are hashed through their canonical textual form, so 42
// observed as int and as int64 count once.
//
// When bound to a row-count parent the estimate is capped by the parent's
// total, since a distinct count can never exceed the number of rows it was
// drawn from.
type ApproxDistinct struct {
	sketch *sketch.HyperLogLog
	parent Aggregator
}

var (
	_ Aggregator          = (*ApproxDistinct)(nil)
	_ DependentAggregator = (*ApproxDistinct)(nil)
)

func (a *ApproxDistinct) Aggregate(value any) error {
	if value == nil {
		return nil
	}

	a.sketch.Add(hash.Value(value))

	return nil
}

// Result returns the estimated cardinality as int64.
func (a *ApproxDistinct) Result() any {
	estimate := int64(a.sketch.Estimate())

	if a.parent != nil {
		if total, ok := a.parent.Result().(int64); ok && estimate > total {
			estimate = total
		}
	}

	return estimate
}

func (a *ApproxDistinct) Reset() {
	a.sketch.Reset()
}

// BindDependent attaches the row-count aggregator that caps the estimate.
func (a *ApproxDistinct) BindDependent(parent Aggregator) error {
	a.parent = parent
	return nil
}
