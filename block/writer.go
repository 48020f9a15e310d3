package block

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/gridcodec/compress"
	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/format"
	"github.com/arloliu/gridcodec/gridtable"
	"github.com/arloliu/gridcodec/internal/options"
	"github.com/arloliu/gridcodec/internal/pool"
)

// castagnoliTable backs the CRC-32C payload checksums.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

type writerConfig struct {
	compression format.CompressionType
}

// WriterOption represents a functional option for configuring a block Writer.
type WriterOption = options.Option[*writerConfig]

// WithCompression sets the payload compression type. The default is
// format.CompressionNone.
func WithCompression(compression format.CompressionType) WriterOption {
	return options.New(func(c *writerConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compression
			return nil
		default:
			return fmt.Errorf("%w: 0x%02X", errs.ErrUnknownCompression, byte(compression))
		}
	})
}

// Writer accumulates encoded rows and seals them into an immutable Block.
//
// A Writer serves a single goroutine and a single block: after Finish it
// accepts no further rows. The row buffer is pooled and returned on Finish.
type Writer struct {
	cs          *gridtable.CodeSystem
	codec       compress.Codec
	buf         *pool.ByteBuffer
	compression format.CompressionType
	rowCount    uint32
	finished    bool
}

// NewWriter creates a block Writer encoding rows through cs, which must
// already be initialized.
func NewWriter(cs *gridtable.CodeSystem, opts ...WriterOption) (*Writer, error) {
	if cs == nil {
		return nil, fmt.Errorf("%w: nil code system", errs.ErrInvalidConfig)
	}

	config := &writerConfig{compression: format.CompressionNone}
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(config.compression, "block payload")
	if err != nil {
		return nil, err
	}

	return &Writer{
		cs:          cs,
		codec:       codec,
		buf:         pool.GetBlockBuffer(),
		compression: config.compression,
	}, nil
}

// AppendRow encodes one row of column values into the pending payload.
// The values slice must hold exactly one value per schema column.
func (w *Writer) AppendRow(values []any) error {
	if w.finished {
		return errs.ErrWriterFinished
	}

	out, err := w.cs.EncodeRow(values, w.buf.B)
	if err != nil {
		return err
	}

	w.buf.B = out
	w.rowCount++

	return nil
}

// RowCount returns the number of rows appended so far.
func (w *Writer) RowCount() int {
	return int(w.rowCount)
}

// Finish compresses the pending payload, stamps the header and returns the
// sealed Block. The Writer cannot be reused afterwards.
func (w *Writer) Finish() (*Block, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}

	payload := w.buf.Bytes()
	if len(payload) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds the format limit", errs.ErrInvalidBlockSize, len(payload))
	}

	stored, err := w.codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	header := Header{
		Compression: w.compression,
		RowCount:    w.rowCount,
		RawSize:     uint32(len(payload)),
		Checksum:    crc32.Checksum(stored, castagnoliTable),
	}

	data := make([]byte, 0, HeaderSize+len(stored))
	data = append(data, header.Bytes()...)
	data = append(data, stored...)

	pool.PutBlockBuffer(w.buf)
	w.buf = nil
	w.finished = true

	return &Block{data: data, header: header}, nil
}
