package gridtable

import (
	"fmt"
	"slices"

	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
)

// Column describes one schema position.
type Column struct {
	Name string
	Type datatype.DataType
}

// Schema is an ordered, immutable sequence of column descriptors. A column's
// index in the schema is its identity everywhere in this package.
type Schema struct {
	columns []Column
}

// NewSchema builds a schema from column descriptors. Every column needs a
// non-empty name and a known type kind.
func NewSchema(columns ...Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: schema needs at least one column", errs.ErrInvalidConfig)
	}

	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column %d has an empty name", errs.ErrInvalidConfig, i)
		}
		if col.Type.Kind == datatype.KindUnknown {
			return nil, fmt.Errorf("%w: column %d (%s) has an unknown type", errs.ErrInvalidConfig, i, col.Name)
		}
	}

	return &Schema{columns: slices.Clone(columns)}, nil
}

// MustNewSchema is NewSchema that panics on error, for statically known schemas.
func MustNewSchema(columns ...Column) *Schema {
	s, err := NewSchema(columns...)
	if err != nil {
		panic(err)
	}

	return s
}

// ColumnCount returns the number of columns.
func (s *Schema) ColumnCount() int {
	return len(s.columns)
}

// Column returns the descriptor at index i. It panics when i is out of
// range, like a slice access.
func (s *Schema) Column(i int) Column {
	return s.columns[i]
}
