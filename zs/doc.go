// Package zs implements zero-suppression vectors: compact, read-only storage
// for sequences of unsigned 32-bit integers, used by the column codecs for
// attribute vectors and run offsets.
//
// Two layout families are provided:
//
//   - Fixed-size byte-aligned: each value occupies 1, 2 or 4 whole bytes,
//     the narrowest width that fits the vector's maximum value.
//   - Bit-packed: each value occupies a fixed number of bits, packed into
//     64-bit words.
//
// Each layout is an independent encoder/decoder pair; adding a layout means
// adding one encoder and one vector type, never touching call sites. Call
// sites that need per-row throughput should recover the concrete vector type
// once (the encoding package's dispatch layer does this) and iterate through
// the Decodable constraint so the inner loop is monomorphized.
//
// Encoding is lossless and order-preserving. All vectors are immutable after
// construction and safe for unsynchronized concurrent reads.
package zs
