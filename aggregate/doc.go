// Package aggregate provides the measure aggregators built by the grid table
// code system.
//
// Aggregators are looked up by function name and declared measure type:
//
//	agg, err := aggregate.New("SUM", datatype.MustParse("decimal(19,4)"))
//
// # Built-in Functions
//
//   - SUM: integer, float and decimal variants
//   - MIN, MAX: integer, float, decimal, string and date/timestamp variants
//   - COUNT: sums int64 partial counts; the measure column carries 1 per raw
//     row, or merged partials when rows are pre-aggregated
//   - COUNT_DISTINCT: approximate, HyperLogLog over xxHash64 of the value's
//     canonical form; implements DependentAggregator so the estimate can be
//     capped by the raw row count of a parent COUNT metric
//
// # Dependent Metrics
//
// Some aggregators derive their result from another metric. The grid table
// layer wires them through the DependentAggregator interface: when a metric
// is declared dependent on a parent column, both must be selected together,
// and the child receives the parent's aggregator before aggregation begins.
//
// # Lifecycle
//
// Aggregators are cheap, single-query objects. Create them per query scope,
// feed them decoded column values, read Result, then discard or Reset. They
// are intentionally unsynchronized.
package aggregate
