package storage

import (
	"fmt"

	"github.com/petradb/petra/encoding"
	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
)

// ColumnEncodingSpec selects the encoding for one column: the encoding type
// and an optional zero-suppression layout for the codec's internal integer
// arrays. A zero ZsType leaves the layout choice to the encoder.
type ColumnEncodingSpec struct {
	Encoding format.EncodingType
	ZsType   format.ZsType
}

// ChunkEncodingSpec holds one ColumnEncodingSpec per column, positionally
// aligned with the chunk's column order.
type ChunkEncodingSpec []ColumnEncodingSpec

// EncodeChunk encodes each column of the chunk according to the spec.
//
// The spec length must equal the chunk's column count and dataTypes must
// match the columns' actual types; a mismatch is a contract violation and
// panics, as is encoding a column that is already encoded. The data-type
// check covers every column, including those whose spec says
// EncodingUnencoded; such columns are otherwise left untouched.
//
// EncodeChunk mutates the chunk and must not run concurrently with other
// operations on the same chunk. Readers of already-encoded, untouched
// chunks are unaffected; the replaced column slots hold immutable columns.
func EncodeChunk(res memory.Resource, chunk *Chunk, dataTypes []format.DataType, spec ChunkEncodingSpec) {
	if len(spec) != chunk.ColumnCount() {
		panic(fmt.Sprintf("storage: encoding spec has %d entries, chunk has %d columns", len(spec), chunk.ColumnCount()))
	}
	if len(dataTypes) != chunk.ColumnCount() {
		panic(fmt.Sprintf("storage: %d data types for %d columns", len(dataTypes), chunk.ColumnCount()))
	}

	for i, colSpec := range spec {
		col := chunk.Column(i)
		if col.DataType() != dataTypes[i] {
			panic(fmt.Sprintf("storage: column %d is %s, caller says %s", i, col.DataType(), dataTypes[i]))
		}

		if colSpec.Encoding == format.EncodingUnencoded {
			continue
		}

		chunk.replaceColumn(i, encoding.EncodeAny(res, col, colSpec.Encoding, colSpec.ZsType))
	}
}

// EncodeChunks encodes the selected chunks of the table, each with its own
// spec. Chunk ids without a spec entry are a contract violation and panic.
func EncodeChunks(res memory.Resource, table *Table, chunkIDs []ChunkID, specs map[ChunkID]ChunkEncodingSpec) {
	for _, id := range chunkIDs {
		spec, ok := specs[id]
		if !ok {
			panic(fmt.Sprintf("storage: no encoding spec for chunk %d", id))
		}

		EncodeChunk(res, table.Chunk(id), table.ColumnTypes(), spec)
	}
}

// EncodeAllChunks encodes every chunk of the table. specs holds one
// ChunkEncodingSpec per chunk in chunk order; its length must equal the
// table's chunk count.
func EncodeAllChunks(res memory.Resource, table *Table, specs []ChunkEncodingSpec) {
	if len(specs) != table.ChunkCount() {
		panic(fmt.Sprintf("storage: %d chunk specs for %d chunks", len(specs), table.ChunkCount()))
	}

	for id := range table.ChunkCount() {
		EncodeChunk(res, table.Chunk(ChunkID(id)), table.ColumnTypes(), specs[id])
	}
}
