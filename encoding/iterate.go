package encoding

import (
	"fmt"
	"iter"

	"github.com/petradb/petra/column"
)

// Resolve maps a type-erased column to its typed access surface. The
// column's runtime encoding tag is matched against the closed set of
// supported representations exactly once; the returned TypedColumn drives
// the concrete decoder underneath.
//
// A column whose concrete type is not a registered (data type, encoding)
// combination is a programming error and panics.
func Resolve[T column.Value](col column.Column) column.TypedColumn[T] {
	switch c := col.(type) {
	case *column.ValueColumn[T]:
		return c
	case *DictionaryColumn[T]:
		return c
	case *DeprecatedDictionaryColumn[T]:
		return c
	case *RunLengthColumn[T]:
		return c
	default:
		panic(fmt.Sprintf("encoding: no decoder for %s column encoded as %s accessed as %s",
			col.DataType(), col.Encoding(), column.DataTypeOf[T]()))
	}
}

// With resolves col's runtime encoding tag once and invokes fn with the
// typed column, so fn's inner loop runs against the concrete decoder rather
// than a per-row polymorphic interface. Panics like Resolve on an
// unsupported combination.
func With[T column.Value](col column.Column, fn func(column.TypedColumn[T])) {
	fn(Resolve[T](col))
}

// Values returns a lazy sequence of (value, is-null) pairs for a column of
// any supported encoding. The sequence is bounded by the column's row
// count, forward-only, and restartable: re-invoking Values (or ranging
// again) starts over, with no cursor state retained by the column.
func Values[T column.Value](col column.Column) iter.Seq2[T, bool] {
	return Resolve[T](col).Values()
}

// Materialize decodes a column of any supported encoding back into a plain
// value column. Intended for tests and for operators that need dense
// output.
func Materialize[T column.Value](col column.Column) *column.ValueColumn[T] {
	typed := Resolve[T](col)

	n := typed.Size()
	values := make([]T, 0, n)
	nulls := make([]bool, 0, n)
	for v, null := range typed.Values() {
		values = append(values, v)
		nulls = append(nulls, null)
	}

	return column.NewValueColumnFrom(values, nulls)
}
