// Package format defines the byte-level constants shared by all gridcodec
// packages: the reserved bytes of the column code layout and the compression
// type identifiers stored in block headers.
package format

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	// NullByte is the null sentinel. A column code whose bytes all equal
	// NullByte represents a null value. It sorts after every non-null code
	// under unsigned byte comparison.
	NullByte byte = 0xFF

	// PlaceholderByte right-pads fixed-length codes up to the column width.
	// It is distinct from NullByte so an empty value and a null value encode
	// differently.
	PlaceholderByte byte = 0x09
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
