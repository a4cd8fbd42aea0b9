package column

import (
	"fmt"
	"iter"

	"github.com/petradb/petra/format"
)

// ValueColumn is the dense, unencoded form of a column: one value and one
// null indicator per row. It is mutable until handed to an encoder.
type ValueColumn[T Value] struct {
	values []T
	nulls  []bool
}

var _ TypedColumn[int64] = (*ValueColumn[int64])(nil)

// NewValueColumn creates an empty value column.
func NewValueColumn[T Value]() *ValueColumn[T] {
	return &ValueColumn[T]{}
}

// NewValueColumnFrom creates a value column from parallel value and null
// slices. nulls may be nil for a column without nulls; otherwise it must have
// the same length as values.
//
// The slices are used directly, not copied. The caller must not mutate them
// after the column has been handed to an encoder.
func NewValueColumnFrom[T Value](values []T, nulls []bool) *ValueColumn[T] {
	if nulls != nil && len(nulls) != len(values) {
		panic(fmt.Sprintf("column: %d values but %d null indicators", len(values), len(nulls)))
	}
	if nulls == nil {
		nulls = make([]bool, len(values))
	}

	return &ValueColumn[T]{values: values, nulls: nulls}
}

// Append adds one non-null value to the column.
func (c *ValueColumn[T]) Append(val T) {
	c.values = append(c.values, val)
	c.nulls = append(c.nulls, false)
}

// AppendNull adds one null row to the column.
func (c *ValueColumn[T]) AppendNull() {
	var zero T
	c.values = append(c.values, zero)
	c.nulls = append(c.nulls, true)
}

// Size returns the number of rows in the column.
func (c *ValueColumn[T]) Size() int {
	return len(c.values)
}

// DataType returns the column's value type tag.
func (c *ValueColumn[T]) DataType() format.DataType {
	return DataTypeOf[T]()
}

// Encoding returns EncodingUnencoded.
func (c *ValueColumn[T]) Encoding() format.EncodingType {
	return format.EncodingUnencoded
}

// At returns the value at row i and whether that row is null.
// Panics if i is out of range.
func (c *ValueColumn[T]) At(i int) (T, bool) {
	return c.values[i], c.nulls[i]
}

// IsNull reports whether row i is null. Panics if i is out of range.
func (c *ValueColumn[T]) IsNull(i int) bool {
	return c.nulls[i]
}

// Values returns a lazy sequence of (value, is-null) pairs in row order.
func (c *ValueColumn[T]) Values() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for i, v := range c.values {
			if !yield(v, c.nulls[i]) {
				return
			}
		}
	}
}

// Raw exposes the underlying value and null slices for encoder consumption.
// Callers other than encoders must treat both slices as read-only.
func (c *ValueColumn[T]) Raw() (values []T, nulls []bool) {
	return c.values, c.nulls
}
