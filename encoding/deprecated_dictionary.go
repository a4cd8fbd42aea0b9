package encoding

import (
	"iter"
	"math"

	"github.com/petradb/petra/column"
	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
	"github.com/petradb/petra/zs"
)

// DeprecatedDictionaryColumn is the legacy dictionary layout, retained so
// that columns produced by older encoders keep decoding.
//
// It differs from DictionaryColumn in two internal details: the dictionary
// keeps values in first-occurrence order rather than sorted, and the
// attribute vector always uses the fixed 4-byte layout regardless of
// dictionary size. The null sentinel convention and the decode contract are
// identical to the modern codec.
type DeprecatedDictionaryColumn[T column.Value] struct {
	dict      []T
	attrs     *zs.FixedVector[uint32]
	res       memory.Resource
	footprint int64
}

var _ column.TypedColumn[int64] = (*DeprecatedDictionaryColumn[int64])(nil)
var _ EncodedColumn = (*DeprecatedDictionaryColumn[int64])(nil)

func newDeprecatedDictionaryColumn[T column.Value](res memory.Resource, dict []T, attrs *zs.FixedVector[uint32]) *DeprecatedDictionaryColumn[T] {
	footprint := memory.SliceBytes(dict) + charDataBytes(dict)
	res.Reserve(footprint)

	return &DeprecatedDictionaryColumn[T]{dict: dict, attrs: attrs, res: res, footprint: footprint}
}

// Size returns the number of rows in the column.
func (c *DeprecatedDictionaryColumn[T]) Size() int {
	return c.attrs.Size()
}

// DataType returns the column's value type tag.
func (c *DeprecatedDictionaryColumn[T]) DataType() format.DataType {
	return column.DataTypeOf[T]()
}

// Encoding returns format.EncodingDeprecatedDictionary.
func (c *DeprecatedDictionaryColumn[T]) Encoding() format.EncodingType {
	return format.EncodingDeprecatedDictionary
}

// Dictionary returns the distinct non-null values in first-occurrence order.
// Read-only.
func (c *DeprecatedDictionaryColumn[T]) Dictionary() []T {
	return c.dict
}

// AttributeVector returns the fixed 4-byte dictionary index per row.
func (c *DeprecatedDictionaryColumn[T]) AttributeVector() zs.Vector {
	return c.attrs
}

// NullValueID returns the sentinel attribute value marking a null row.
func (c *DeprecatedDictionaryColumn[T]) NullValueID() uint32 {
	return uint32(len(c.dict))
}

// At returns the value at row i and whether that row is null.
// Panics if i is out of range.
func (c *DeprecatedDictionaryColumn[T]) At(i int) (T, bool) {
	id := c.attrs.Get(i)
	if id == c.NullValueID() {
		var zero T
		return zero, true
	}

	return c.dict[id], false
}

// Values returns a lazy sequence of (value, is-null) pairs in row order.
// The attribute layout is fixed, so no dispatch is needed here.
func (c *DeprecatedDictionaryColumn[T]) Values() iter.Seq2[T, bool] {
	return dictValues(c.dict, c.attrs)
}

// MemoryUsage reports the bytes reserved for the dictionary and the
// attribute vector.
func (c *DeprecatedDictionaryColumn[T]) MemoryUsage() int64 {
	return c.footprint + c.attrs.MemoryUsage()
}

// Release returns the column's accounting to its memory resource.
func (c *DeprecatedDictionaryColumn[T]) Release() {
	c.attrs.Release()
	c.res.Release(c.footprint)
	c.dict = nil
	c.footprint = 0
}

// DeprecatedDictionaryEncoder builds legacy dictionary columns.
//
// Deprecated: new encodes should use DictionaryEncoder. This encoder exists
// to produce backward-compatible columns and to exercise the legacy decode
// path.
type DeprecatedDictionaryEncoder[T column.Value] struct{}

var _ ColumnEncoder[int64] = DeprecatedDictionaryEncoder[int64]{}

// Encode consumes col and produces a legacy dictionary column. The zsType
// parameter is ignored: the legacy layout always stores attributes in fixed
// 4-byte form.
func (DeprecatedDictionaryEncoder[T]) Encode(res memory.Resource, col *column.ValueColumn[T], _ format.ZsType) column.TypedColumn[T] {
	values, nulls := col.Raw()

	dict := make([]T, 0)
	indexOf := make(map[T]uint32, len(values))
	ids := make([]uint32, len(values))

	// Map lookups always miss on NaN keys, so NaN gets its own tracked slot.
	nanIdx := -1
	for i, v := range values {
		if nulls[i] {
			continue
		}
		if isNaN(v) {
			if nanIdx < 0 {
				nanIdx = len(dict)
				dict = append(dict, v)
			}

			continue
		}
		if _, ok := indexOf[v]; !ok {
			indexOf[v] = uint32(len(dict))
			dict = append(dict, v)
		}
	}

	nullID := uint32(len(dict))
	for i, v := range values {
		switch {
		case nulls[i]:
			ids[i] = nullID
		case isNaN(v):
			ids[i] = uint32(nanIdx)
		default:
			ids[i] = indexOf[v]
		}
	}

	return newDeprecatedDictionaryColumn(res, dict, zs.NewFixedVector(res, ids))
}

// isNaN reports whether v is a floating-point NaN. Always false for the
// non-float value types.
func isNaN[T column.Value](v T) bool {
	f, ok := any(v).(float64)

	return ok && math.IsNaN(f)
}
