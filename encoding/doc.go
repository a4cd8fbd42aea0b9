// Package encoding implements the column codecs of the engine: dictionary
// encoding (modern and legacy layouts), run-length encoding, the
// decode-dispatch layer that scan code consumes, and frozen column blocks
// for cold-column compaction.
//
// # Codecs
//
// Every codec is lossless and consumes a value column exactly once:
//
//	col := column.NewValueColumnFrom([]int64{0, 1, 0, 1, 2}, nil)
//	enc := encoding.DictionaryEncoder[int64]{}.Encode(res, col, format.ZsUnspecified)
//
// Encoded columns are immutable after construction and may be read
// concurrently by any number of goroutines without synchronization.
//
// # Decode dispatch
//
// A column inside a chunk is type-erased; its concrete codec is known only
// through runtime tags. Resolve, With and Values map the tag to the concrete
// column type once per call, so the per-row loop underneath runs against the
// concrete decoder:
//
//	for v, null := range encoding.Values[int64](col) {
//	    ...
//	}
//
// An unsupported (data type, encoding) combination is a programming error
// and panics; it is never silently skipped.
//
// # Null handling
//
// All codecs share one convention: a dictionary column stores nulls as the
// sentinel index equal to the dictionary size, and a run-length column
// treats null-ness as part of run identity. Decode paths always surface
// (value, is-null) pairs.
//
// # Memory
//
// Encoders reserve all codec-internal buffers on the memory.Resource they
// receive; releasing an encoded column returns its accounting.
package encoding
