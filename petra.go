// Package petra is the column-encoding core of an in-memory columnar
// engine: pluggable lossless codecs that turn dense typed value columns
// (with per-row nullability) into compact encoded representations, plus the
// decode machinery that lets scan code iterate or randomly access the
// compressed data at close to raw-column speed.
//
// # Core Features
//
//   - Dictionary encoding (sorted dictionary, binary-search index
//     assignment, sentinel index for nulls) and a legacy dictionary layout
//     kept for backward-compatible decode
//   - Run-length encoding over maximal (value, null) runs
//   - Zero-suppression vectors for internal integer arrays: fixed-size
//     byte-aligned (1/2/4 bytes) and bit-packed layouts
//   - Decode dispatch that resolves a column's runtime encoding tag once
//     per scan, not once per row
//   - Explicit allocation accounting through memory.Resource
//   - Frozen column blocks: compressed (Zstd, S2, LZ4), checksummed
//     in-memory compaction of cold columns
//
// # Basic Usage
//
// Encoding a chunk of value columns:
//
//	res := memory.NewTracking()
//	chunk := storage.NewChunk(
//	    column.NewValueColumnFrom([]int64{0, 1, 0, 1, 2}, nil),
//	    column.NewValueColumnFrom([]string{"a", "a", "b", "b", "b"}, nil),
//	)
//	storage.EncodeChunk(res, chunk,
//	    []format.DataType{format.TypeInt64, format.TypeString},
//	    storage.ChunkEncodingSpec{
//	        {Encoding: format.EncodingDictionary},
//	        {Encoding: format.EncodingRunLength},
//	    })
//
// Scanning an encoded column:
//
//	for v, null := range encoding.Values[int64](chunk.Column(0)) {
//	    ...
//	}
//
// Encoded columns are immutable; any number of goroutines may scan them
// concurrently. Encoding itself mutates the chunk and requires exclusive
// access to it.
package petra
