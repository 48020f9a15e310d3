package gridtable

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/gridcodec/dict"
	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/internal/options"
)

// codeSystemConfig collects the per-column strategy overrides and the
// dependent metric map supplied before Init.
type codeSystemConfig struct {
	dicts      map[int]dict.Dictionary
	fixedLens  map[int]int
	dependents map[int]int
	logger     *zap.Logger
}

func newCodeSystemConfig() *codeSystemConfig {
	return &codeSystemConfig{
		dicts:      make(map[int]dict.Dictionary),
		fixedLens:  make(map[int]int),
		dependents: make(map[int]int),
		logger:     zap.NewNop(),
	}
}

// CodeSystemOption represents a functional option for configuring a CodeSystem.
// This is a type alias for the generic Option interface specialized for the
// code system configuration.
type CodeSystemOption = options.Option[*codeSystemConfig]

// WithDictionary assigns a dictionary to the column at index col.
// Dictionary coding takes priority over every other strategy for that column.
//
// Column indexes are validated against the schema at Init.
func WithDictionary(col int, d dict.Dictionary) CodeSystemOption {
	return options.New(func(c *codeSystemConfig) error {
		if col < 0 {
			return fmt.Errorf("%w: negative dictionary column index %d", errs.ErrInvalidConfig, col)
		}
		if d == nil {
			return fmt.Errorf("%w: nil dictionary for column %d", errs.ErrInvalidConfig, col)
		}
		c.dicts[col] = d

		return nil
	})
}

// WithFixedLength encodes the column at index col as its textual bytes
// right-padded to exactly width bytes. It applies when the column has no
// dictionary.
func WithFixedLength(col int, width int) CodeSystemOption {
	return options.New(func(c *codeSystemConfig) error {
		if col < 0 {
			return fmt.Errorf("%w: negative fixed-length column index %d", errs.ErrInvalidConfig, col)
		}
		if width < 1 {
			return fmt.Errorf("%w: fixed length %d for column %d, must be at least 1", errs.ErrInvalidConfig, width, col)
		}
		c.fixedLens[col] = width

		return nil
	})
}

// WithDependentMetric declares that the metric at column child derives its
// result from the metric at column parent, such as an approximate distinct
// count capped by a row count. NewMetricsAggregators enforces that whenever
// child is selected, parent is selected too.
func WithDependentMetric(child, parent int) CodeSystemOption {
	return options.New(func(c *codeSystemConfig) error {
		if child < 0 || parent < 0 {
			return fmt.Errorf("%w: negative dependent metric index (child %d, parent %d)", errs.ErrInvalidConfig, child, parent)
		}
		if child == parent {
			return fmt.Errorf("%w: metric column %d cannot depend on itself", errs.ErrInvalidConfig, child)
		}
		c.dependents[child] = parent

		return nil
	})
}

// WithLogger routes encode coercion failures to logger. The default is a
// no-op logger.
func WithLogger(logger *zap.Logger) CodeSystemOption {
	return options.New(func(c *codeSystemConfig) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidConfig)
		}
		c.logger = logger

		return nil
	})
}
