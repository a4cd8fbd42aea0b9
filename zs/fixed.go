package zs

import (
	"iter"
	"math"

	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
)

// Unsigned is the set of storage widths the fixed-size byte-aligned layout
// supports: 1, 2 or 4 whole bytes per value.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// FixedVector stores each value in a fixed number of whole bytes. The width
// is the narrowest unsigned integer type that can represent the vector's
// maximum value.
type FixedVector[U Unsigned] struct {
	data []U
	res  memory.Resource
}

var (
	_ Vector    = (*FixedVector[uint8])(nil)
	_ Decodable = (*FixedVector[uint8])(nil)
)

// NewFixedVector wraps an already-built data slice in a FixedVector and
// reserves its footprint on res. The slice is used directly, not copied.
func NewFixedVector[U Unsigned](res memory.Resource, data []U) *FixedVector[U] {
	res.Reserve(memory.SliceBytes(data))

	return &FixedVector[U]{data: data, res: res}
}

// Type returns format.ZsFixedByteAligned.
func (v *FixedVector[U]) Type() format.ZsType {
	return format.ZsFixedByteAligned
}

// Size returns the number of values in the vector.
func (v *FixedVector[U]) Size() int {
	return len(v.data)
}

// Get returns the value at index i. Panics if i is out of range.
func (v *FixedVector[U]) Get(i int) uint32 {
	return uint32(v.data[i])
}

// All returns a lazy sequence of all values in order.
func (v *FixedVector[U]) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, u := range v.data {
			if !yield(uint32(u)) {
				return
			}
		}
	}
}

// Width returns the storage width in bytes per value.
func (v *FixedVector[U]) Width() int {
	var zero U
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}

// Data exposes the underlying slice for serialization. Read-only.
func (v *FixedVector[U]) Data() []U {
	return v.data
}

// MemoryUsage reports the bytes reserved for the vector's payload.
func (v *FixedVector[U]) MemoryUsage() int64 {
	return memory.SliceBytes(v.data)
}

// Release returns the vector's accounting to its memory resource.
func (v *FixedVector[U]) Release() {
	v.res.Release(memory.SliceBytes(v.data))
	v.data = nil
}

// FixedSizeByteAlignedEncoder builds FixedVectors, choosing the narrowest
// byte width that can represent the input's maximum value. Inputs never get
// rejected for magnitude: a larger maximum simply widens the storage type,
// up to the full 4 bytes of the uint32 domain.
type FixedSizeByteAlignedEncoder struct{}

var _ Encoder = FixedSizeByteAlignedEncoder{}

// Encode builds a fixed-size byte-aligned vector from values.
//
// When meta carries a known maximum the width is chosen without scanning the
// input; a value above the hint panics instead of truncating.
func (FixedSizeByteAlignedEncoder) Encode(res memory.Resource, values []uint32, meta MetaInfo) Vector {
	switch max := maxValue(values, meta); {
	case max <= math.MaxUint8:
		return encodeFixed[uint8](res, values, meta)
	case max <= math.MaxUint16:
		return encodeFixed[uint16](res, values, meta)
	default:
		return encodeFixed[uint32](res, values, meta)
	}
}

func encodeFixed[U Unsigned](res memory.Resource, values []uint32, meta MetaInfo) *FixedVector[U] {
	data := memory.MakeSlice[U](res, len(values), len(values))
	for i, v := range values {
		checkHint(v, meta)
		data[i] = U(v)
	}

	return &FixedVector[U]{data: data, res: res}
}
