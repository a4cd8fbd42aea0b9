// Package compress provides compression and decompression codecs for frozen
// column blocks.
//
// Compression is applied at the block level after a column has been
// serialized, providing an additional layer of space savings beyond the
// column encodings themselves. Supported algorithms:
//
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
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
// Codecs are stateless values and safe for concurrent use. GetCodec maps a
// format.CompressionType tag to its built-in codec.
//
// Two Zstd implementations exist: a pure-Go codec (klauspost/compress) used
// by default, and a cgo codec (valyala/gozstd) selected with the zstdcgo
// build tag for workloads that favor raw throughput over build simplicity.
package compress
