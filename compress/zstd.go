package compress

// ZstdCompressor provides Zstandard compression for block payloads.
//
// Zstd gives the best compression ratio of the supported algorithms at
// moderate speed, which suits blocks bound for cold storage or network
// transfer. Two implementations exist behind build tags: the default pure-Go
// klauspost encoder, and the cgo valyala/gozstd bindings selected with
// `-tags zstdcgo` where the C library's throughput is worth the cgo
// dependency.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
