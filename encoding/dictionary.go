package encoding

import (
	"cmp"
	"iter"
	"slices"

	"github.com/petradb/petra/column"
	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
	"github.com/petradb/petra/zs"
)

// DictionaryColumn replaces each value with an index into a sorted table of
// the column's distinct non-null values. Nulls are stored as a reserved
// sentinel index equal to the dictionary size.
//
// Invariants: the dictionary is strictly ascending with no duplicates, and
// every non-sentinel attribute-vector entry is a valid dictionary index.
// The column is immutable after construction and safe for unsynchronized
// concurrent reads.
type DictionaryColumn[T column.Value] struct {
	dict      []T
	attrs     zs.Vector
	res       memory.Resource
	footprint int64
}

var _ column.TypedColumn[int64] = (*DictionaryColumn[int64])(nil)
var _ EncodedColumn = (*DictionaryColumn[int64])(nil)

func newDictionaryColumn[T column.Value](res memory.Resource, dict []T, attrs zs.Vector) *DictionaryColumn[T] {
	footprint := memory.SliceBytes(dict) + charDataBytes(dict)
	res.Reserve(footprint)

	return &DictionaryColumn[T]{dict: dict, attrs: attrs, res: res, footprint: footprint}
}

// Size returns the number of rows in the column.
func (c *DictionaryColumn[T]) Size() int {
	return c.attrs.Size()
}

// DataType returns the column's value type tag.
func (c *DictionaryColumn[T]) DataType() format.DataType {
	return column.DataTypeOf[T]()
}

// Encoding returns format.EncodingDictionary.
func (c *DictionaryColumn[T]) Encoding() format.EncodingType {
	return format.EncodingDictionary
}

// Dictionary returns the sorted, duplicate-free distinct non-null values.
// Read-only.
func (c *DictionaryColumn[T]) Dictionary() []T {
	return c.dict
}

// AttributeVector returns the zero-suppressed dictionary index per row.
func (c *DictionaryColumn[T]) AttributeVector() zs.Vector {
	return c.attrs
}

// NullValueID returns the sentinel attribute value marking a null row.
// It equals the dictionary size and is never a valid dictionary index.
func (c *DictionaryColumn[T]) NullValueID() uint32 {
	return uint32(len(c.dict))
}

// At returns the value at row i and whether that row is null.
// Panics if i is out of range.
func (c *DictionaryColumn[T]) At(i int) (T, bool) {
	id := c.attrs.Get(i)
	if id == c.NullValueID() {
		var zero T
		return zero, true
	}

	return c.dict[id], false
}

// Values returns a lazy sequence of (value, is-null) pairs in row order.
//
// The attribute vector's concrete layout is resolved once here, so the
// per-row loop runs against the monomorphized decoder rather than the
// zs.Vector interface.
func (c *DictionaryColumn[T]) Values() iter.Seq2[T, bool] {
	switch av := c.attrs.(type) {
	case *zs.FixedVector[uint8]:
		return dictValues(c.dict, av)
	case *zs.FixedVector[uint16]:
		return dictValues(c.dict, av)
	case *zs.FixedVector[uint32]:
		return dictValues(c.dict, av)
	case *zs.BitPackedVector:
		return dictValues(c.dict, av)
	default:
		return dictValues[T, zs.Vector](c.dict, c.attrs)
	}
}

// MemoryUsage reports the bytes reserved for the dictionary and the
// attribute vector.
func (c *DictionaryColumn[T]) MemoryUsage() int64 {
	return c.footprint + c.attrs.MemoryUsage()
}

// Release returns the column's accounting to its memory resource.
func (c *DictionaryColumn[T]) Release() {
	c.attrs.Release()
	c.res.Release(c.footprint)
	c.dict = nil
	c.footprint = 0
}

// dictValues maps attribute values to dictionary entries through the static
// decoder interface V, keeping the scan loop free of interface dispatch for
// concrete layouts.
func dictValues[T column.Value, V zs.Decodable](dict []T, attrs V) iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		nullID := uint32(len(dict))
		var zero T
		for id := range attrs.All() {
			if id == nullID {
				if !yield(zero, true) {
					return
				}
			} else if !yield(dict[id], false) {
				return
			}
		}
	}
}

// charDataBytes returns the character-data footprint of a string dictionary;
// zero for every other value type.
func charDataBytes[T column.Value](dict []T) int64 {
	strs, ok := any(dict).([]string)
	if !ok {
		return 0
	}

	var n int64
	for _, s := range strs {
		n += int64(len(s))
	}

	return n
}

// DictionaryEncoder builds DictionaryColumns.
//
// The dictionary is the sorted, deduplicated set of non-null values; each
// row's value is located by binary search, producing an attribute vector
// whose width is the narrowest that can also represent the null sentinel.
type DictionaryEncoder[T column.Value] struct{}

var _ ColumnEncoder[int64] = DictionaryEncoder[int64]{}

// Encode consumes col and produces a dictionary-encoded column.
//
// Cost is O(N log N) for the sort plus O(N log D) for index assignment,
// where D is the dictionary size. An all-null column yields an empty
// dictionary with every attribute set to the sentinel; an all-distinct
// column yields a dictionary of size N.
func (DictionaryEncoder[T]) Encode(res memory.Resource, col *column.ValueColumn[T], zsType format.ZsType) column.TypedColumn[T] {
	values, nulls := col.Raw()

	dict := make([]T, 0, len(values))
	for i, v := range values {
		if !nulls[i] {
			dict = append(dict, v)
		}
	}
	slices.Sort(dict)
	// Deduplicate with cmp equality: == never equates NaNs, which would leave
	// duplicate NaN entries in a float dictionary.
	dict = slices.CompactFunc(dict, func(a, b T) bool { return cmp.Compare(a, b) == 0 })

	nullID := uint32(len(dict))
	ids := make([]uint32, len(values))
	for i, v := range values {
		if nulls[i] {
			ids[i] = nullID
			continue
		}
		idx, _ := slices.BinarySearch(dict, v)
		ids[i] = uint32(idx)
	}

	// The sentinel itself must be representable, so the width hint is the
	// dictionary size, not the largest index.
	attrs := zs.Encode(res, zsType, ids, zs.MetaInfo{MaxValue: nullID, MaxValueKnown: true})

	return newDictionaryColumn(res, dict, attrs)
}
