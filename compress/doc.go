// Package compress provides the compression codecs applied to row block
// payloads.
//
// A block payload is the concatenation of encoded rows. Encoded rows are
// already dense (varints, dictionary ids, padded text), so compression is a
// second stage on top of the per-column encoding, selected per block through
// format.CompressionType.
//
// # Interfaces
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// All built-in codecs are stateless values, safe for concurrent use; internal
// encoder state is pooled where the underlying library benefits from reuse.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): bypass, for payloads that are small or
//     already incompressible.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. The pure-Go
//     klauspost implementation is the default; building with the zstdcgo tag
//     switches to the cgo valyala/gozstd bindings.
//   - S2 (format.CompressionS2): balanced speed and ratio, good default for
//     write-heavy paths.
//   - LZ4 (format.CompressionLZ4): fastest decompression, for read-heavy
//     blocks.
//
// # Selection
//
// Block writers obtain a codec through CreateCodec or GetCodec with the
// compression type recorded in the block header, so readers always
// decompress with the algorithm the writer used.
package compress
