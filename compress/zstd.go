package compress

// ZstdCompressor provides Zstandard compression for frozen column blocks.
//
// This compressor suits scenarios where compression ratio matters more than
// compression speed: long-lived frozen columns that are thawed infrequently.
//
// Two implementations back this type, selected at build time: the default
// pure-Go codec (klauspost/compress/zstd) and a cgo codec (valyala/gozstd)
// enabled with the zstdcgo build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
