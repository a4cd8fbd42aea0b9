package encoding

import (
	"fmt"
	"iter"
	"sort"

	"github.com/petradb/petra/column"
	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
	"github.com/petradb/petra/zs"
)

// RunLengthColumn stores one entry per maximal run of identical
// value-or-null rows: the run's value, its null flag, and its cumulative end
// offset. End offsets are strictly increasing and the last one equals the
// row count.
//
// The column is immutable after construction and safe for unsynchronized
// concurrent reads.
type RunLengthColumn[T column.Value] struct {
	runValues []T
	runNulls  []bool
	ends      zs.Vector
	size      int
	res       memory.Resource
	footprint int64
}

var _ column.TypedColumn[int64] = (*RunLengthColumn[int64])(nil)
var _ EncodedColumn = (*RunLengthColumn[int64])(nil)

func newRunLengthColumn[T column.Value](res memory.Resource, runValues []T, runNulls []bool, ends zs.Vector, size int) *RunLengthColumn[T] {
	validateRuns(runValues, runNulls, ends, size)

	footprint := memory.SliceBytes(runValues) + charDataBytes(runValues) + memory.SliceBytes(runNulls)
	res.Reserve(footprint)

	return &RunLengthColumn[T]{
		runValues: runValues,
		runNulls:  runNulls,
		ends:      ends,
		size:      size,
		res:       res,
		footprint: footprint,
	}
}

// validateRuns checks the run-length invariants and panics on violation:
// parallel run arrays, strictly increasing end offsets ending at the row
// count, and no two adjacent runs sharing the same (value, null) pair.
func validateRuns[T column.Value](runValues []T, runNulls []bool, ends zs.Vector, size int) {
	if len(runValues) != len(runNulls) || len(runValues) != ends.Size() {
		panic("encoding: run-length arrays are not parallel")
	}
	if len(runValues) == 0 {
		if size != 0 {
			panic("encoding: empty run list for non-empty column")
		}

		return
	}

	prev := uint32(0)
	for i := range runValues {
		end := ends.Get(i)
		if end <= prev {
			panic(fmt.Sprintf("encoding: run end offsets not strictly increasing at run %d", i))
		}
		prev = end

		if i > 0 && runNulls[i] == runNulls[i-1] && (runNulls[i] || runValues[i] == runValues[i-1]) {
			panic(fmt.Sprintf("encoding: adjacent runs %d and %d are not maximal", i-1, i))
		}
	}
	if int(prev) != size {
		panic(fmt.Sprintf("encoding: run lengths sum to %d, want row count %d", prev, size))
	}
}

// Size returns the number of rows in the column.
func (c *RunLengthColumn[T]) Size() int {
	return c.size
}

// DataType returns the column's value type tag.
func (c *RunLengthColumn[T]) DataType() format.DataType {
	return column.DataTypeOf[T]()
}

// Encoding returns format.EncodingRunLength.
func (c *RunLengthColumn[T]) Encoding() format.EncodingType {
	return format.EncodingRunLength
}

// RunCount returns the number of maximal runs.
func (c *RunLengthColumn[T]) RunCount() int {
	return len(c.runValues)
}

// Run returns the value, null flag and end offset of run r.
func (c *RunLengthColumn[T]) Run(r int) (value T, null bool, end int) {
	return c.runValues[r], c.runNulls[r], int(c.ends.Get(r))
}

// EndOffsets returns the cumulative run end offsets.
func (c *RunLengthColumn[T]) EndOffsets() zs.Vector {
	return c.ends
}

// At returns the value at row i and whether that row is null. The containing
// run is found by binary search over the end offsets.
// Panics if i is out of range.
func (c *RunLengthColumn[T]) At(i int) (T, bool) {
	if i < 0 || i >= c.size {
		panic("encoding: run-length row index out of range")
	}

	r := sort.Search(len(c.runValues), func(r int) bool {
		return c.ends.Get(r) > uint32(i)
	})

	return c.runValues[r], c.runNulls[r]
}

// Values returns a lazy sequence of (value, is-null) pairs in row order.
// Each run's value is yielded once per row it covers; the end-offset vector
// is read once per run, not once per row.
func (c *RunLengthColumn[T]) Values() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		start := 0
		for r, v := range c.runValues {
			end := int(c.ends.Get(r))
			null := c.runNulls[r]
			for i := start; i < end; i++ {
				if !yield(v, null) {
					return
				}
			}
			start = end
		}
	}
}

// MemoryUsage reports the bytes reserved for the run arrays and the
// end-offset vector.
func (c *RunLengthColumn[T]) MemoryUsage() int64 {
	return c.footprint + c.ends.MemoryUsage()
}

// Release returns the column's accounting to its memory resource.
func (c *RunLengthColumn[T]) Release() {
	c.ends.Release()
	c.res.Release(c.footprint)
	c.runValues = nil
	c.runNulls = nil
	c.footprint = 0
}

// RunLengthEncoder builds RunLengthColumns in a single left-to-right scan,
// starting a new run whenever the value or the null flag changes.
type RunLengthEncoder[T column.Value] struct{}

var _ ColumnEncoder[int64] = RunLengthEncoder[int64]{}

// Encode consumes col and produces a run-length encoded column.
//
// Cost is O(N). A constant column yields one run; an alternating column
// yields N runs, which compresses nothing but stays correct.
func (RunLengthEncoder[T]) Encode(res memory.Resource, col *column.ValueColumn[T], zsType format.ZsType) column.TypedColumn[T] {
	values, nulls := col.Raw()

	var (
		runValues []T
		runNulls  []bool
		runEnds   []uint32
	)

	for i, v := range values {
		null := nulls[i]
		last := len(runValues) - 1
		if last >= 0 && runNulls[last] == null && (null || runValues[last] == v) {
			runEnds[last] = uint32(i + 1)
			continue
		}

		if null {
			var zero T
			v = zero
		}
		runValues = append(runValues, v)
		runNulls = append(runNulls, null)
		runEnds = append(runEnds, uint32(i+1))
	}

	ends := zs.Encode(res, zsType, runEnds, zs.MetaInfo{MaxValue: uint32(len(values)), MaxValueKnown: true})

	return newRunLengthColumn(res, runValues, runNulls, ends, len(values))
}
