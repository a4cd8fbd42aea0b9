package encoding

import (
	"testing"

	"github.com/petradb/petra/column"
	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
	"github.com/petradb/petra/zs"
	"github.com/stretchr/testify/require"
)

func TestRunLengthEncoder_Basic(t *testing.T) {
	col := column.NewValueColumnFrom([]int32{7, 7, 7, 3, 3, 9}, nil)

	enc := RunLengthEncoder[int32]{}.Encode(memory.Nop(), col, format.ZsUnspecified)

	rl := enc.(*RunLengthColumn[int32])
	require.Equal(t, 3, rl.RunCount())
	require.Equal(t, 6, rl.Size())

	wantValues := []int32{7, 3, 9}
	wantEnds := []int{3, 5, 6}
	for r := range 3 {
		v, null, end := rl.Run(r)
		require.Equal(t, wantValues[r], v)
		require.False(t, null)
		require.Equal(t, wantEnds[r], end)
	}

	values, nulls := collectPairs[int32](rl)
	require.Equal(t, []int32{7, 7, 7, 3, 3, 9}, values)
	require.Equal(t, []bool{false, false, false, false, false, false}, nulls)
}

func TestRunLengthEncoder_Empty(t *testing.T) {
	col := column.NewValueColumn[int64]()

	enc := RunLengthEncoder[int64]{}.Encode(memory.Nop(), col, format.ZsUnspecified)

	rl := enc.(*RunLengthColumn[int64])
	require.Equal(t, 0, rl.RunCount())
	require.Equal(t, 0, rl.Size())

	values, _ := collectPairs[int64](rl)
	require.Empty(t, values)
}

func TestRunLengthEncoder_Alternating(t *testing.T) {
	// Worst case: every row starts a new run.
	col := column.NewValueColumnFrom([]int32{1, 2, 1, 2, 1}, nil)

	enc := RunLengthEncoder[int32]{}.Encode(memory.Nop(), col, format.ZsUnspecified)

	rl := enc.(*RunLengthColumn[int32])
	require.Equal(t, 5, rl.RunCount())

	values, _ := collectPairs[int32](rl)
	require.Equal(t, []int32{1, 2, 1, 2, 1}, values)
}

func TestRunLengthEncoder_NullRuns(t *testing.T) {
	// Consecutive nulls form a single run even when the backing values differ.
	col := column.NewValueColumnFrom(
		[]int64{4, 10, 20, 4, 4},
		[]bool{false, true, true, false, false},
	)

	enc := RunLengthEncoder[int64]{}.Encode(memory.Nop(), col, format.ZsUnspecified)

	rl := enc.(*RunLengthColumn[int64])
	require.Equal(t, 3, rl.RunCount())

	v, null, end := rl.Run(1)
	require.True(t, null)
	require.Equal(t, int64(0), v, "null runs store the zero value")
	require.Equal(t, 3, end)

	values, nulls := collectPairs[int64](rl)
	require.Equal(t, []int64{4, 0, 0, 4, 4}, values)
	require.Equal(t, []bool{false, true, true, false, false}, nulls)
}

func TestRunLengthEncoder_NullSplitsValueRun(t *testing.T) {
	// A null between equal values breaks the run in two.
	col := column.NewValueColumnFrom(
		[]string{"a", "", "a"},
		[]bool{false, true, false},
	)

	enc := RunLengthEncoder[string]{}.Encode(memory.Nop(), col, format.ZsUnspecified)

	rl := enc.(*RunLengthColumn[string])
	require.Equal(t, 3, rl.RunCount())
}

func TestRunLengthColumn_At(t *testing.T) {
	col := column.NewValueColumnFrom([]float64{1.5, 1.5, 2.5, 2.5, 2.5, 3.5}, nil)

	enc := RunLengthEncoder[float64]{}.Encode(memory.Nop(), col, format.ZsUnspecified)

	rl := enc.(*RunLengthColumn[float64])
	for i, want := range []float64{1.5, 1.5, 2.5, 2.5, 2.5, 3.5} {
		v, null := rl.At(i)
		require.False(t, null)
		require.Equal(t, want, v, "row %d", i)
	}

	require.Panics(t, func() { rl.At(-1) })
	require.Panics(t, func() { rl.At(6) })
}

func TestRunLengthColumn_EndOffsets(t *testing.T) {
	col := column.NewValueColumnFrom([]int32{8, 8, 8, 8}, nil)

	enc := RunLengthEncoder[int32]{}.Encode(memory.Nop(), col, format.ZsBitPacked)

	rl := enc.(*RunLengthColumn[int32])
	ends, ok := rl.EndOffsets().(*zs.BitPackedVector)
	require.True(t, ok)
	require.Equal(t, []uint32{4}, attrIDs(ends))
}

func TestNewRunLengthColumn_InvariantViolations(t *testing.T) {
	mkEnds := func(ends []uint32) zs.Vector {
		return zs.NewFixedVector(memory.Nop(), ends)
	}

	t.Run("non-parallel arrays", func(t *testing.T) {
		require.Panics(t, func() {
			newRunLengthColumn(memory.Nop(), []int32{1, 2}, []bool{false}, mkEnds([]uint32{1, 2}), 2)
		})
	})

	t.Run("non-increasing ends", func(t *testing.T) {
		require.Panics(t, func() {
			newRunLengthColumn(memory.Nop(), []int32{1, 2}, []bool{false, false}, mkEnds([]uint32{2, 2}), 2)
		})
	})

	t.Run("last end below row count", func(t *testing.T) {
		require.Panics(t, func() {
			newRunLengthColumn(memory.Nop(), []int32{1}, []bool{false}, mkEnds([]uint32{2}), 3)
		})
	})

	t.Run("adjacent runs not maximal", func(t *testing.T) {
		require.Panics(t, func() {
			newRunLengthColumn(memory.Nop(), []int32{5, 5}, []bool{false, false}, mkEnds([]uint32{1, 2}), 2)
		})
	})

	t.Run("adjacent null runs not maximal", func(t *testing.T) {
		require.Panics(t, func() {
			newRunLengthColumn(memory.Nop(), []int32{0, 0}, []bool{true, true}, mkEnds([]uint32{1, 2}), 2)
		})
	})

	t.Run("empty runs for non-empty column", func(t *testing.T) {
		require.Panics(t, func() {
			newRunLengthColumn[int32](memory.Nop(), nil, nil, mkEnds(nil), 2)
		})
	})
}

func TestRunLengthColumn_MemoryAccounting(t *testing.T) {
	res := memory.NewTracking()
	col := column.NewValueColumnFrom([]int64{9, 9, 9, 1}, nil)

	enc := RunLengthEncoder[int64]{}.Encode(res, col, format.ZsUnspecified)

	rl := enc.(*RunLengthColumn[int64])
	require.Equal(t, rl.MemoryUsage(), res.Allocated())

	rl.Release()
	require.Equal(t, int64(0), res.Allocated())
}
