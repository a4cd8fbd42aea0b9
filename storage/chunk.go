// Package storage provides the chunk and table containers and the chunk
// encoder that applies per-column encoding specifications across them.
package storage

import (
	"fmt"

	"github.com/petradb/petra/column"
)

// ChunkID identifies a chunk inside its table by position.
type ChunkID uint32

// Chunk is an ordered collection of columns sharing one row count. Columns
// are encoded independently and may carry different encoding types.
//
// A chunk is not safe for concurrent mutation; encoding a chunk requires
// exclusive access for the duration of the call. Encoded columns themselves
// are immutable and may be read concurrently.
type Chunk struct {
	columns []column.Column
}

// NewChunk creates a chunk from the given columns. All columns must share
// the same row count; a mismatch is a programming error and panics.
func NewChunk(columns ...column.Column) *Chunk {
	for i, col := range columns {
		if col.Size() != columns[0].Size() {
			panic(fmt.Sprintf("storage: column %d has %d rows, column 0 has %d", i, col.Size(), columns[0].Size()))
		}
	}

	return &Chunk{columns: columns}
}

// Size returns the chunk's row count. An empty chunk has zero rows.
func (c *Chunk) Size() int {
	if len(c.columns) == 0 {
		return 0
	}

	return c.columns[0].Size()
}

// ColumnCount returns the number of columns in the chunk.
func (c *Chunk) ColumnCount() int {
	return len(c.columns)
}

// Column returns the column at position i. Panics if i is out of range.
func (c *Chunk) Column(i int) column.Column {
	return c.columns[i]
}

// replaceColumn swaps the column slot at position i. Slots are independently
// replaceable, so sibling columns and readers holding references to the old
// column are unaffected.
func (c *Chunk) replaceColumn(i int, col column.Column) {
	c.columns[i] = col
}
