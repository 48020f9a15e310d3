package compress

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gridcodec/errs"
	"github.com/arloliu/gridcodec/format"
)

// rowLikePayload builds a payload shaped like a run of encoded rows: short
// varints, dictionary id bytes and padded text, repeated with small drift.
func rowLikePayload(rows int) []byte {
	var payload []byte
	cities := []string{"berlin", "oslo", "tokyo", "zagreb"}
	for i := 0; i < rows; i++ {
		payload = append(payload, byte(i%4))
		city := cities[i%len(cities)]
		payload = append(payload, city...)
		for j := len(city); j < 8; j++ {
			payload = append(payload, 0x09)
		}
		payload = binary.AppendVarint(payload, int64(i*i%1000))
	}

	return payload
}

func TestCodecs_Roundtrip(t *testing.T) {
	payload := rowLikePayload(500)

	tests := []struct {
		name  string
		codec Codec
	}{
		{"noop", NewNoOpCompressor()},
		{"zstd", NewZstdCompressor()},
		{"s2", NewS2Compressor()},
		{"lz4", NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecs_CompressReducesRepetitivePayload(t *testing.T) {
	payload := rowLikePayload(2000)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink a repetitive payload", ct)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
	}{
		{"noop", NewNoOpCompressor()},
		{"zstd", NewZstdCompressor()},
		{"s2", NewS2Compressor()},
		{"lz4", NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestZstdCompressor_Decompress_Corrupted(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, &data[0], &out[0])
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "block payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xEE), "block payload")
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
	require.Contains(t, err.Error(), "block payload")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0xEE))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{
		Algorithm:      format.CompressionZstd,
		OriginalSize:   1000,
		CompressedSize: 250,
	}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	empty := CompressionStats{}
	require.Zero(t, empty.CompressionRatio())
}
