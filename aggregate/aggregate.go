package aggregate

import (
	"fmt"
	"strings"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

// Aggregator accumulates one measure column across rows.
//
// Aggregators are created per query and hold mutable state; they are not
// safe for concurrent use. Null values are skipped.
type Aggregator interface {
	// Aggregate folds one cell value into the running state.
	Aggregate(value any) error

	// Result returns the current aggregate. Aggregators with no accumulated
	// values return their identity: nil for min/max, zero for sums and counts.
	Result() any

	// Reset clears the state for reuse.
	Reset()
}

// DependentAggregator is an Aggregator whose result is derived from another
// selected metric's aggregator, such as an approximate distinct count capped
// by a raw row count.
type DependentAggregator interface {
	Aggregator

	// BindDependent attaches the parent metric's aggregator.
	BindDependent(parent Aggregator) error
}

// Factory builds an aggregator for a declared measure type.
type Factory func(dt datatype.DataType) (Aggregator, error)

var registry = map[string]Factory{
	"SUM":            newSum,
	"MIN":            newMin,
	"MAX":            newMax,
	"COUNT":          newCount,
	"COUNT_DISTINCT": newApproxDistinct,
}

// Register binds a factory to a function name, replacing any existing
// binding. Names are case-insensitive. It must be called during package
// initialization, before any New call.
func Register(name string, factory Factory) {
	registry[strings.ToUpper(strings.TrimSpace(name))] = factory
}

// New builds the aggregator for a function name and measure type.
func New(name string, dt datatype.DataType) (Aggregator, error) {
	factory, ok := registry[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownAggregation, name)
	}

	agg, err := factory(dt)
	if err != nil {
		return nil, err
	}

	return agg, nil
}
