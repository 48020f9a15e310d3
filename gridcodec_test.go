package gridcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gridcodec/block"
	"github.com/arloliu/gridcodec/datatype"
	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/format"
	"github.com/arloliu/gridcodec/gridtable"
)

func salesSchema(t *testing.T) *gridtable.Schema {
	t.Helper()

	schema, err := gridtable.NewSchema(
		gridtable.Column{Name: "city", Type: datatype.MustParse("varchar(16)")},
		gridtable.Column{Name: "sku", Type: datatype.MustParse("varchar(8)")},
		gridtable.Column{Name: "sales", Type: datatype.MustParse("bigint")},
		gridtable.Column{Name: "buyer", Type: datatype.MustParse("varchar(32)")},
	)
	require.NoError(t, err)

	return schema
}

// TestNewCodeSystem verifies the one-step constructor yields a ready system.
func TestNewCodeSystem(t *testing.T) {
	cs, err := NewCodeSystem(salesSchema(t),
		gridtable.WithDictionary(0, NewDictionary("berlin", "oslo", "tokyo")),
		gridtable.WithFixedLength(1, 8),
	)
	require.NoError(t, err)
	require.Equal(t, 4, cs.ColumnCount())

	// Already initialized, no second Init needed or allowed.
	require.ErrorIs(t, cs.Init(salesSchema(t)), errs.ErrAlreadyInitialized)
}

// TestNewCodeSystem_Errors verifies option and schema failures surface.
func TestNewCodeSystem_Errors(t *testing.T) {
	_, err := NewCodeSystem(salesSchema(t), gridtable.WithFixedLength(0, 0))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = NewCodeSystem(nil)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = NewCodeSystem(salesSchema(t), gridtable.WithDictionary(9, NewDictionary("x")))
	require.ErrorIs(t, err, errs.ErrColumnIndexOutOfRange)
}

// TestNewDictionary verifies values are deduplicated and id order follows
// value order.
func TestNewDictionary(t *testing.T) {
	d := NewDictionary("oslo", "berlin", "tokyo", "berlin")
	require.Equal(t, 3, d.Len())

	berlin, err := d.IDOf("berlin")
	require.NoError(t, err)
	oslo, err := d.IDOf("oslo")
	require.NoError(t, err)
	require.Less(t, berlin, oslo)
}

// TestNewDefaultBlockWriter verifies the default writer compresses with Zstd.
func TestNewDefaultBlockWriter(t *testing.T) {
	cs, err := NewCodeSystem(salesSchema(t))
	require.NoError(t, err)

	writer, err := NewDefaultBlockWriter(cs)
	require.NoError(t, err)
	require.NoError(t, writer.AppendRow([]any{"oslo", "a1", int64(1), "u1"}))

	blk, err := writer.Finish()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, blk.Compression())
}

// TestNewBlockWriter verifies custom writer creation.
func TestNewBlockWriter(t *testing.T) {
	cs, err := NewCodeSystem(salesSchema(t))
	require.NoError(t, err)

	writer, err := NewBlockWriter(cs, block.WithCompression(format.CompressionS2))
	require.NoError(t, err)
	require.NotNil(t, writer)

	_, err = NewBlockWriter(nil)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

// TestBlockWorkflow verifies the full encode/store/open/decode round trip
// through the top-level wrappers.
func TestBlockWorkflow(t *testing.T) {
	cs, err := NewCodeSystem(salesSchema(t),
		gridtable.WithDictionary(0, NewDictionary("berlin", "oslo", "tokyo")),
		gridtable.WithFixedLength(1, 8),
	)
	require.NoError(t, err)

	rows := [][]any{
		{"oslo", "a1", int64(120), "alice"},
		{"oslo", "a1", int64(80), "bob"},
		{"berlin", "b7", int64(40), "alice"},
		{"tokyo", nil, int64(9), "carol"},
	}

	writer, err := NewDefaultBlockWriter(cs)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, writer.AppendRow(row))
	}

	blk, err := writer.Finish()
	require.NoError(t, err)

	opened, err := OpenBlock(blk.Bytes())
	require.NoError(t, err)
	require.Equal(t, len(rows), opened.RowCount())

	decoded, err := opened.DecodeRows(cs)
	require.NoError(t, err)
	require.Equal(t, rows, decoded)
}

// TestRollupWorkflow verifies aggregating metric columns out of decoded rows,
// including a COUNT_DISTINCT clamped by its dependent COUNT.
func TestRollupWorkflow(t *testing.T) {
	cs, err := NewCodeSystem(salesSchema(t),
		gridtable.WithDictionary(0, NewDictionary("berlin", "oslo", "tokyo")),
		gridtable.WithDependentMetric(3, 2),
	)
	require.NoError(t, err)

	rows := [][]any{
		{"oslo", "a1", int64(1), "alice"},
		{"oslo", "a1", int64(1), "bob"},
		{"oslo", "a1", int64(1), "alice"},
	}

	writer, err := NewBlockWriter(cs)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, writer.AppendRow(row))
	}
	blk, err := writer.Finish()
	require.NoError(t, err)

	aggs, err := cs.NewMetricsAggregators([]int{2, 3}, []string{"COUNT", "COUNT_DISTINCT"})
	require.NoError(t, err)

	decoded, err := blk.DecodeRows(cs)
	require.NoError(t, err)
	for _, row := range decoded {
		require.NoError(t, aggs[0].Aggregate(row[2]))
		require.NoError(t, aggs[1].Aggregate(row[3]))
	}

	require.Equal(t, int64(3), aggs[0].Result())
	require.Equal(t, int64(2), aggs[1].Result())
}
