package gridtable

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/gridcodec/aggregate"
	"github.com/arloliu/gridcodec/codec"
	"github.com/arloliu/gridcodec/dict"
	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/internal/options"
)

// encodeFunc is the encode strategy bound to a column at Init time. Strategy
// selection happens once; the encode path dispatches through this function
// without inspecting the column again.
type encodeFunc func(value any, rounding dict.Rounding, dst []byte) ([]byte, error)

// columnEntry pairs a column's codec with its bound encode strategy.
type columnEntry struct {
	codec  codec.ColumnCodec
	encode encodeFunc
}

// CodeSystem converts typed cell values into comparable byte codes and back,
// one serializer strategy per schema column.
//
// A CodeSystem is configured through functional options, bound to a schema
// with Init exactly once, and immutable afterwards. See the package
// documentation for strategy selection and the concurrency contract.
type CodeSystem struct {
	config      *codeSystemConfig
	schema      *Schema
	entries     []columnEntry
	logger      *zap.Logger
	initialized bool
}

// NewCodeSystem creates a CodeSystem from the given options. The returned
// system accepts no operations until Init binds it to a schema.
//
// Parameters:
//   - opts: WithDictionary, WithFixedLength, WithDependentMetric, WithLogger
//
// Returns:
//   - *CodeSystem: the configured, not yet initialized system
//   - error: errs.ErrInvalidConfig when an option carries an invalid value
func NewCodeSystem(opts ...CodeSystemOption) (*CodeSystem, error) {
	config := newCodeSystemConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &CodeSystem{config: config, logger: config.logger}, nil
}

// Init binds one serializer strategy to every column of schema, in priority
// order dictionary > fixed length > generic codec by declared type, and
// validates that every configured column index addresses a real schema
// position.
//
// Init must be called exactly once: a second call returns
// errs.ErrAlreadyInitialized, and every other operation before the first
// call returns errs.ErrNotInitialized.
func (cs *CodeSystem) Init(schema *Schema) error {
	if cs.initialized {
		return errs.ErrAlreadyInitialized
	}
	if schema == nil || schema.ColumnCount() == 0 {
		return fmt.Errorf("%w: nil or empty schema", errs.ErrInvalidConfig)
	}

	columnCount := schema.ColumnCount()
	for col := range cs.config.dicts {
		if col >= columnCount {
			return fmt.Errorf("%w: dictionary column %d, schema has %d columns", errs.ErrColumnIndexOutOfRange, col, columnCount)
		}
	}
	for col := range cs.config.fixedLens {
		if col >= columnCount {
			return fmt.Errorf("%w: fixed-length column %d, schema has %d columns", errs.ErrColumnIndexOutOfRange, col, columnCount)
		}
	}
	for child, parent := range cs.config.dependents {
		if child >= columnCount || parent >= columnCount {
			return fmt.Errorf("%w: dependent metric %d -> %d, schema has %d columns", errs.ErrColumnIndexOutOfRange, child, parent, columnCount)
		}
	}

	entries := make([]columnEntry, columnCount)
	for i := 0; i < columnCount; i++ {
		var cc codec.ColumnCodec
		switch {
		case cs.config.dicts[i] != nil:
			cc = newDictCodec(cs.config.dicts[i])
		case cs.config.fixedLens[i] > 0:
			cc = newFixLenCodec(cs.config.fixedLens[i])
		default:
			var err error
			cc, err = codec.For(schema.Column(i).Type)
			if err != nil {
				return fmt.Errorf("column %d (%s): %w", i, schema.Column(i).Name, err)
			}
		}

		entries[i] = columnEntry{codec: cc, encode: bindEncoder(cc)}
	}

	cs.schema = schema
	cs.entries = entries
	cs.initialized = true

	return nil
}

// bindEncoder selects the column's encode function. Dictionary codecs honor
// the rounding flag; every other codec ignores it.
func bindEncoder(cc codec.ColumnCodec) encodeFunc {
	if dc, ok := cc.(*dictCodec); ok {
		return dc.encodeRounded
	}

	return func(value any, _ dict.Rounding, dst []byte) ([]byte, error) {
		return cc.Encode(value, dst)
	}
}

// Schema returns the schema bound at Init, or nil before Init.
func (cs *CodeSystem) Schema() *Schema {
	return cs.schema
}

// ColumnCount returns the number of schema columns, or 0 before Init.
func (cs *CodeSystem) ColumnCount() int {
	return len(cs.entries)
}

func (cs *CodeSystem) entry(col int) (*columnEntry, error) {
	if !cs.initialized {
		return nil, errs.ErrNotInitialized
	}
	if col < 0 || col >= len(cs.entries) {
		return nil, fmt.Errorf("%w: column %d, schema has %d columns", errs.ErrColumnIndexOutOfRange, col, len(cs.entries))
	}

	return &cs.entries[col], nil
}

// CodeLength returns the number of bytes the code at the head of src
// occupies, without decoding it.
func (cs *CodeSystem) CodeLength(col int, src []byte) (int, error) {
	e, err := cs.entry(col)
	if err != nil {
		return 0, err
	}

	return e.codec.PeekLength(src)
}

// MaxCodeLength returns an upper bound on the column's code length, for
// buffer sizing.
func (cs *CodeSystem) MaxCodeLength(col int) (int, error) {
	e, err := cs.entry(col)
	if err != nil {
		return 0, err
	}

	return e.codec.MaxLength(), nil
}

// MaxRowCodeLength returns an upper bound on a full row code's length, the
// sum of all column upper bounds. It returns 0 before Init.
func (cs *CodeSystem) MaxRowCodeLength() int {
	total := 0
	for i := range cs.entries {
		total += cs.entries[i].codec.MaxLength()
	}

	return total
}

// EncodeColumnValue appends the byte code of value for the given column to
// dst and returns the extended slice. Absent dictionary values fail rather
// than round; use EncodeColumnValueRounded for range predicate boundaries.
//
// On error the returned slice is dst unchanged.
func (cs *CodeSystem) EncodeColumnValue(col int, value any, dst []byte) ([]byte, error) {
	return cs.EncodeColumnValueRounded(col, value, dict.RoundExact, dst)
}

// EncodeColumnValueRounded is EncodeColumnValue with explicit rounding.
// Rounding applies only to dictionary-coded columns, where it resolves
// values absent from the dictionary to the nearest smaller or larger member.
//
// When the value's dynamic type does not match the column and the value is a
// string, the string is re-parsed once through the column codec and the
// encode retried with the parsed value. A failed re-parse or retry is logged
// through the configured logger and the original mismatch error returned.
func (cs *CodeSystem) EncodeColumnValueRounded(col int, value any, rounding dict.Rounding, dst []byte) ([]byte, error) {
	e, err := cs.entry(col)
	if err != nil {
		return dst, err
	}

	return cs.encodeValue(e, col, value, rounding, dst)
}

func (cs *CodeSystem) encodeValue(e *columnEntry, col int, value any, rounding dict.Rounding, dst []byte) ([]byte, error) {
	out, encErr := e.encode(value, rounding, dst)
	if encErr == nil {
		return out, nil
	}
	if !errors.Is(encErr, errs.ErrTypeMismatch) {
		return dst, encErr
	}

	// A mismatched string may still parse as the column's native type, for
	// example "123" arriving at a bigint column. Retry exactly once with the
	// parsed value; everything else surfaces the original mismatch.
	s, ok := value.(string)
	if !ok {
		return dst, encErr
	}

	converted, convErr := e.codec.ValueOf(s)
	if convErr != nil {
		cs.logger.Warn("failed to encode value",
			zap.Int("column", col),
			zap.String("value", s),
			zap.Error(convErr))

		return dst, encErr
	}
	if _, still := converted.(string); still {
		return dst, encErr
	}

	out, retryErr := e.encode(converted, rounding, dst)
	if retryErr != nil {
		cs.logger.Warn("failed to encode value",
			zap.Int("column", col),
			zap.String("value", s),
			zap.Error(retryErr))

		return dst, encErr
	}

	return out, nil
}

// DecodeColumnValue decodes the code at the head of src back into a value.
// Dictionary columns return the canonical dictionary value; a null code
// decodes to nil.
func (cs *CodeSystem) DecodeColumnValue(col int, src []byte) (any, error) {
	e, err := cs.entry(col)
	if err != nil {
		return nil, err
	}

	return e.codec.Decode(src)
}

// Comparator returns the byte-code comparator shared by every column.
func (cs *CodeSystem) Comparator() Comparator {
	return Comparator{}
}

// NewMetricsAggregators builds one aggregator per selected metric, in
// selection order. cols holds schema column indexes of the selected metrics
// and funcs the aggregation function name for each, so both must have the
// same length.
//
// Dependent metrics declared with WithDependentMetric are wired here: for
// every selected child its parent must be selected too, and the child's
// aggregator is bound to the parent's aggregator instance.
//
// Returns:
//   - []aggregate.Aggregator: fresh per-query aggregators, never shared
//   - error: errs.ErrColumnFunctionMismatch, errs.ErrColumnIndexOutOfRange,
//     errs.ErrUnknownAggregation, errs.ErrDependentNotSelected, or
//     errs.ErrDependentUnsupported
func (cs *CodeSystem) NewMetricsAggregators(cols []int, funcs []string) ([]aggregate.Aggregator, error) {
	if !cs.initialized {
		return nil, errs.ErrNotInitialized
	}
	if len(cols) != len(funcs) {
		return nil, fmt.Errorf("%w: %d columns but %d functions", errs.ErrColumnFunctionMismatch, len(cols), len(funcs))
	}

	aggs := make([]aggregate.Aggregator, len(cols))
	for i, col := range cols {
		if col < 0 || col >= cs.schema.ColumnCount() {
			return nil, fmt.Errorf("%w: metric column %d, schema has %d columns", errs.ErrColumnIndexOutOfRange, col, cs.schema.ColumnCount())
		}

		agg, err := aggregate.New(funcs[i], cs.schema.Column(col).Type)
		if err != nil {
			return nil, fmt.Errorf("metric column %d: %w", col, err)
		}
		aggs[i] = agg
	}

	for i, col := range cols {
		parent, ok := cs.config.dependents[col]
		if !ok {
			continue
		}

		parentPos := -1
		for j, c := range cols {
			if c == parent {
				parentPos = j
				break
			}
		}
		if parentPos < 0 {
			return nil, fmt.Errorf("%w: metric column %d depends on column %d", errs.ErrDependentNotSelected, col, parent)
		}

		dep, ok := aggs[i].(aggregate.DependentAggregator)
		if !ok {
			return nil, fmt.Errorf("%w: %s on metric column %d", errs.ErrDependentUnsupported, funcs[i], col)
		}
		if err := dep.BindDependent(aggs[parentPos]); err != nil {
			return nil, err
		}
	}

	return aggs, nil
}
