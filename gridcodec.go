// Package gridcodec provides an order-preserving binary row codec for
// dimension and metric columns, plus a checksummed block container for
// batches of encoded rows.
//
// Gridcodec targets cube-style storage engines: each row is the concatenation
// of fixed-layout column codes whose unsigned byte order matches value order,
// so range scans and merges can compare rows without decoding them. Rows are
// batched into immutable, optionally compressed blocks.
//
// # Core Features
//
//   - Per-column encoding strategies: dictionary, fixed-length, and generic
//     type codecs, chosen per column with strict priority
//   - Order-preserving codes with a dedicated null sentinel that sorts after
//     every value
//   - SQL-style declared column types ("bigint", "decimal(19,4)", "varchar(64)")
//   - Rollup aggregators (SUM, MIN, MAX, COUNT, COUNT_DISTINCT) with
//     dependent-metric wiring
//   - Block container with CRC32 checksums and optional compression
//     (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Encoding rows into a block:
//
//	import "github.com/arloliu/gridcodec"
//
//	schema, _ := gridtable.NewSchema(
//	    gridtable.Column{Name: "city", Type: datatype.MustParse("varchar(16)")},
//	    gridtable.Column{Name: "sales", Type: datatype.MustParse("bigint")},
//	)
//	cs, _ := gridcodec.NewCodeSystem(schema,
//	    gridtable.WithDictionary(0, gridcodec.NewDictionary("berlin", "oslo", "tokyo")),
//	)
//
//	writer, _ := gridcodec.NewDefaultBlockWriter(cs)
//	writer.AppendRow([]any{"oslo", int64(42)})
//	writer.AppendRow([]any{"tokyo", int64(7)})
//	blk, _ := writer.Finish()
//
// Reading a block back:
//
//	opened, _ := gridcodec.OpenBlock(blk.Bytes())
//	rows, _ := opened.DecodeRows(cs)
//	for _, row := range rows {
//	    fmt.Println(row[0], row[1])
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the gridtable,
// block and dict packages, simplifying the most common use cases. For
// fine-grained control (rounded dictionary encodes, per-column operations,
// rollup aggregators), use those packages directly.
package gridcodec

import (
	"github.com/arloliu/gridcodec/block"
	"github.com/arloliu/gridcodec/dict"
	"github.com/arloliu/gridcodec/format"
	"github.com/arloliu/gridcodec/gridtable"
)

// NewCodeSystem creates a code system and initializes it against schema in
// one step.
//
// This is the recommended entry point for most use cases. Use
// gridtable.NewCodeSystem directly when construction and initialization need
// to happen at different times.
//
// Parameters:
//   - schema: The column set to encode (see gridtable.NewSchema)
//   - opts: Optional configuration functions (see gridtable.CodeSystemOption)
//
// Available options:
//   - gridtable.WithDictionary(col, dict)
//   - gridtable.WithFixedLength(col, width)
//   - gridtable.WithDependentMetric(child, parent)
//   - gridtable.WithLogger(logger)
//
// Returns:
//   - *gridtable.CodeSystem: The initialized code system.
//   - error: An error if the configuration or schema is invalid.
//
// Example:
//
//	cs, err := gridcodec.NewCodeSystem(schema,
//	    gridtable.WithDictionary(0, cityDict),
//	    gridtable.WithFixedLength(1, 16),
//	)
func NewCodeSystem(schema *gridtable.Schema, opts ...gridtable.CodeSystemOption) (*gridtable.CodeSystem, error) {
	cs, err := gridtable.NewCodeSystem(opts...)
	if err != nil {
		return nil, err
	}

	if err := cs.Init(schema); err != nil {
		return nil, err
	}

	return cs, nil
}

// NewBlockWriter creates a block writer with custom options.
//
// Parameters:
//   - cs: The initialized code system rows are encoded through
//   - opts: Optional configuration functions (see block.WriterOption)
//
// Returns:
//   - *block.Writer: The created block writer.
//   - error: An error if the configuration is invalid.
//
// Example:
//
//	writer, err := gridcodec.NewBlockWriter(cs,
//	    block.WithCompression(format.CompressionS2),
//	)
func NewBlockWriter(cs *gridtable.CodeSystem, opts ...block.WriterOption) (*block.Writer, error) {
	return block.NewWriter(cs, opts...)
}

// NewDefaultBlockWriter creates a block writer with recommended default
// settings.
//
// It uses Zstd compression: row payloads mix dictionary ids, padded text and
// varints, and Zstd consistently earns back its header on such payloads.
// Use NewBlockWriter with block.WithCompression to choose differently, e.g.
// format.CompressionNone for tiny blocks or format.CompressionLZ4 for
// read-heavy scans.
//
// Parameters:
//   - cs: The initialized code system rows are encoded through
//
// Returns:
//   - *block.Writer: The created block writer.
//   - error: An error if cs is nil.
func NewDefaultBlockWriter(cs *gridtable.CodeSystem) (*block.Writer, error) {
	return block.NewWriter(cs, block.WithCompression(format.CompressionZstd))
}

// OpenBlock validates and opens a serialized block for reading.
//
// The block's header describes its own compression, so no configuration is
// needed; size, magic and checksum are verified up front.
//
// Parameters:
//   - data: The raw block bytes (from writer.Finish().Bytes() or storage)
//
// Returns:
//   - *block.Block: The opened block.
//   - error: An error if data is not a valid block.
//
// Example:
//
//	opened, err := gridcodec.OpenBlock(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := opened.DecodeRows(cs)
func OpenBlock(data []byte) (*block.Block, error) {
	return block.OpenBlock(data)
}

// NewDictionary builds a sorted dictionary over the given values for use with
// gridtable.WithDictionary.
//
// Values may arrive in any order and may repeat; the dictionary sorts and
// deduplicates them. Ids are assigned in value order, so encoded ids compare
// the same way the values do.
//
// Example:
//
//	cities := gridcodec.NewDictionary("oslo", "berlin", "tokyo", "berlin")
//	cs, err := gridcodec.NewCodeSystem(schema, gridtable.WithDictionary(0, cities))
func NewDictionary(values ...string) dict.Dictionary {
	return dict.BuildSorted(values)
}
