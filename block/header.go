package block

import (
	"fmt"

	"github.com/arloliu/gridcodec/endian"
	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/format"
)

const (
	// MagicNumber marks the start of a row block.
	MagicNumber uint16 = 0xEC10

	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 16
)

// Header field byte offsets.
const (
	magicOffset       = 0
	compressionOffset = 2
	reservedOffset    = 3
	rowCountOffset    = 4
	rawSizeOffset     = 8
	checksumOffset    = 12
)

// Block headers are always little-endian, independent of the host.
var headerEngine = endian.GetLittleEndianEngine()

// Header is the fixed-size section at the start of a row block.
type Header struct {
	// Compression identifies the codec applied to the payload.
	Compression format.CompressionType

	// RowCount is the number of encoded rows in the payload.
	RowCount uint32

	// RawSize is the payload size in bytes before compression.
	RawSize uint32

	// Checksum is the CRC-32C of the stored (possibly compressed) payload.
	Checksum uint32
}

// Bytes serializes the header into a fresh HeaderSize byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	headerEngine.PutUint16(b[magicOffset:], MagicNumber)
	b[compressionOffset] = byte(h.Compression)
	b[reservedOffset] = 0
	headerEngine.PutUint32(b[rowCountOffset:], h.RowCount)
	headerEngine.PutUint32(b[rawSizeOffset:], h.RawSize)
	headerEngine.PutUint32(b[checksumOffset:], h.Checksum)

	return b
}

// parseHeader reads and validates the header at the start of data.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidBlockSize, len(data), HeaderSize)
	}

	if magic := headerEngine.Uint16(data[magicOffset:]); magic != MagicNumber {
		return Header{}, fmt.Errorf("%w: 0x%04X", errs.ErrInvalidBlockMagic, magic)
	}

	h := Header{
		Compression: format.CompressionType(data[compressionOffset]),
		RowCount:    headerEngine.Uint32(data[rowCountOffset:]),
		RawSize:     headerEngine.Uint32(data[rawSizeOffset:]),
		Checksum:    headerEngine.Uint32(data[checksumOffset:]),
	}

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return Header{}, fmt.Errorf("%w: 0x%02X", errs.ErrUnknownCompression, byte(h.Compression))
	}

	return h, nil
}
