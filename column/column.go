// Package column defines the typed value columns that encoders consume and
// the interfaces every column representation shares.
//
// A ValueColumn is the raw, mutable form: a dense slice of values plus a
// parallel null indicator per row. Encoders consume a ValueColumn exactly
// once and produce an immutable encoded column in its place; the encoded
// variants live in the encoding package and satisfy the same Column and
// TypedColumn interfaces defined here.
package column

import (
	"iter"

	"github.com/petradb/petra/format"
)

// Value is the closed set of data types a column may hold.
type Value interface {
	~int32 | ~int64 | ~float64 | ~string
}

// Column is the type-erased view of a column held inside a chunk.
//
// The concrete type is recovered once per scan by the decode-dispatch layer;
// per-row access never goes through this interface.
type Column interface {
	// Size returns the number of rows in the column.
	Size() int

	// DataType returns the column's value type tag.
	DataType() format.DataType

	// Encoding returns the column's encoding tag. Plain value columns report
	// EncodingUnencoded.
	Encoding() format.EncodingType
}

// TypedColumn is the typed access surface shared by value columns and every
// encoded column variant of the same data type.
type TypedColumn[T Value] interface {
	Column

	// At returns the value at row i and whether that row is null.
	// The value is the zero value of T when null is true.
	// Panics if i is out of range.
	At(i int) (T, bool)

	// Values returns a lazy sequence of (value, is-null) pairs in row order.
	// The sequence is finite and restartable; re-invoking Values starts a
	// fresh iteration with no state retained by the column.
	Values() iter.Seq2[T, bool]
}

// DataTypeOf returns the format tag for the Go type T.
func DataTypeOf[T Value]() format.DataType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return format.TypeInt32
	case int64:
		return format.TypeInt64
	case float64:
		return format.TypeFloat64
	case string:
		return format.TypeString
	default:
		panic("column: unsupported value type")
	}
}
