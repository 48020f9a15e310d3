package block

import (
	"fmt"
	"hash/crc32"
	"iter"

	"github.com/arloliu/gridcodec/compress"
	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/format"
	"github.com/arloliu/gridcodec/gridtable"
)

// Block is an immutable, checksummed batch of encoded rows.
//
// A Block is created by a Writer or opened from serialized bytes with
// OpenBlock. It holds the serialized form and decompresses the payload on
// demand; it never mutates the underlying bytes.
type Block struct {
	data   []byte
	header Header
}

// OpenBlock validates the header and payload checksum of a serialized block
// and wraps it for reading. It keeps data as a view without copying, so the
// caller must not modify it afterwards.
//
// Parameters:
//   - data: a complete serialized block, header included
//
// Returns:
//   - *Block: the opened block
//   - error: errs.ErrInvalidBlockSize, errs.ErrInvalidBlockMagic,
//     errs.ErrUnknownCompression or errs.ErrChecksumMismatch when data is
//     not a valid block
func OpenBlock(data []byte) (*Block, error) {
	header, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	if sum := crc32.Checksum(data[HeaderSize:], castagnoliTable); sum != header.Checksum {
		return nil, fmt.Errorf("%w: header records 0x%08X, payload hashes to 0x%08X", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	return &Block{data: data, header: header}, nil
}

// RowCount returns the number of rows recorded in the header.
func (b *Block) RowCount() int {
	return int(b.header.RowCount)
}

// Compression returns the payload compression type.
func (b *Block) Compression() format.CompressionType {
	return b.header.Compression
}

// RawSize returns the uncompressed payload size in bytes.
func (b *Block) RawSize() int {
	return int(b.header.RawSize)
}

// Bytes returns the serialized block, header included. The returned slice is
// the block's backing storage and must not be modified.
func (b *Block) Bytes() []byte {
	return b.data
}

// Stats reports how well the payload compressed.
func (b *Block) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      b.header.Compression,
		OriginalSize:   int64(b.header.RawSize),
		CompressedSize: int64(len(b.data) - HeaderSize),
	}
}

// payload decompresses the stored payload and checks it against the raw size
// recorded in the header.
func (b *Block) payload() ([]byte, error) {
	codec, err := compress.GetCodec(b.header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(b.data[HeaderSize:])
	if err != nil {
		return nil, err
	}

	if len(payload) != int(b.header.RawSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header records %d", errs.ErrInvalidBlockSize, len(payload), b.header.RawSize)
	}

	return payload, nil
}

// Rows returns a sequence over the row codes in the block, in append order.
// The payload is decompressed once, up front; decompression and header
// problems surface as the returned error. Each yielded slice is an exact
// view of one row code and must not be modified.
//
// The sequence stops early if a row fails to parse against cs, which can
// only happen when the block was written with a different schema.
func (b *Block) Rows(cs *gridtable.CodeSystem) (iter.Seq[[]byte], error) {
	if cs == nil {
		return nil, fmt.Errorf("%w: nil code system", errs.ErrInvalidConfig)
	}

	payload, err := b.payload()
	if err != nil {
		return nil, err
	}

	return func(yield func([]byte) bool) {
		rest := payload
		for len(rest) > 0 {
			n, err := cs.RowLength(rest)
			if err != nil {
				return
			}
			if !yield(rest[:n:n]) {
				return
			}
			rest = rest[n:]
		}
	}, nil
}

// DecodeRows decodes every row in the block back into column values. Unlike
// Rows it is strict: a row that fails to parse, or a payload whose row count
// disagrees with the header, returns an error.
func (b *Block) DecodeRows(cs *gridtable.CodeSystem) ([][]any, error) {
	if cs == nil {
		return nil, fmt.Errorf("%w: nil code system", errs.ErrInvalidConfig)
	}

	payload, err := b.payload()
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, b.header.RowCount)
	rest := payload
	for len(rest) > 0 {
		n, err := cs.RowLength(rest)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows), err)
		}

		values, err := cs.DecodeRow(rest[:n:n])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows), err)
		}

		rows = append(rows, values)
		rest = rest[n:]
	}

	if len(rows) != int(b.header.RowCount) {
		return nil, fmt.Errorf("%w: payload holds %d rows, header records %d", errs.ErrInvalidBlockSize, len(rows), b.header.RowCount)
	}

	return rows, nil
}
