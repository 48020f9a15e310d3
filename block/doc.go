// Package block implements the row block container: a self-describing byte
// blob holding a run of encoded rows.
//
// A block is a fixed 16-byte header followed by the payload, the
// concatenation of row codes produced by a gridtable.CodeSystem. The payload
// is optionally compressed; the header records the compression type, the row
// count, the raw payload size and a CRC-32C checksum of the stored bytes.
//
// # Layout
//
//	offset 0-1   magic number 0xEC10 (little-endian)
//	offset 2     compression type (format.CompressionType)
//	offset 3     reserved, zero
//	offset 4-7   row count (little-endian uint32)
//	offset 8-11  raw payload size before compression (little-endian uint32)
//	offset 12-15 CRC-32C of the stored payload (little-endian uint32)
//
// # Usage
//
// Writer accumulates rows and seals them into an immutable Block:
//
//	w, _ := block.NewWriter(cs, block.WithCompression(format.CompressionS2))
//	_ = w.AppendRow([]any{"oslo", "ab", int64(3)})
//	blk, _ := w.Finish()
//
// OpenBlock validates a stored blob and gives row-level access back:
//
//	blk, _ := block.OpenBlock(data)
//	rows, _ := blk.Rows(cs)
//	for code := range rows {
//	    values, _ := cs.DecodeRow(code)
//	    ...
//	}
//
// A Writer serves one goroutine and one block. Blocks are immutable and safe
// to share.
package block
