package storage

import (
	"fmt"

	"github.com/petradb/petra/format"
)

// Table is an ordered collection of chunks sharing a schema.
type Table struct {
	columnNames []string
	columnTypes []format.DataType
	chunks      []*Chunk
}

// NewTable creates an empty table with the given schema. Names and types
// must be parallel; a mismatch is a programming error and panics.
func NewTable(columnNames []string, columnTypes []format.DataType) *Table {
	if len(columnNames) != len(columnTypes) {
		panic(fmt.Sprintf("storage: %d column names but %d column types", len(columnNames), len(columnTypes)))
	}

	return &Table{columnNames: columnNames, columnTypes: columnTypes}
}

// AppendChunk adds a chunk to the table. The chunk's column count must match
// the schema; a mismatch is a programming error and panics.
func (t *Table) AppendChunk(chunk *Chunk) {
	if chunk.ColumnCount() != len(t.columnTypes) {
		panic(fmt.Sprintf("storage: chunk has %d columns, schema has %d", chunk.ColumnCount(), len(t.columnTypes)))
	}

	t.chunks = append(t.chunks, chunk)
}

// ChunkCount returns the number of chunks in the table.
func (t *Table) ChunkCount() int {
	return len(t.chunks)
}

// Chunk returns the chunk with the given id. Panics if id is out of range.
func (t *Table) Chunk(id ChunkID) *Chunk {
	return t.chunks[id]
}

// ColumnCount returns the number of columns in the table's schema.
func (t *Table) ColumnCount() int {
	return len(t.columnTypes)
}

// ColumnName returns the name of column i.
func (t *Table) ColumnName(i int) string {
	return t.columnNames[i]
}

// ColumnTypes returns the table's column data types in schema order.
// Read-only.
func (t *Table) ColumnTypes() []format.DataType {
	return t.columnTypes
}
