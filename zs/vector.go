package zs

import (
	"fmt"
	"iter"

	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
)

// Vector is the type-erased view of a zero-suppression vector: an ordered,
// read-only sequence of unsigned 32-bit values stored in a layout-specific
// compact form.
//
// Scan loops should not call Get through this interface per row. The
// decode-dispatch layer recovers the concrete layout type once per scan and
// iterates through it, so the hot loop is resolved at compile time.
type Vector interface {
	// Type returns the layout tag of the vector.
	Type() format.ZsType

	// Size returns the number of values in the vector.
	Size() int

	// Get returns the value at index i. Panics if i is out of range.
	Get(i int) uint32

	// All returns a lazy sequence of all values in order.
	All() iter.Seq[uint32]

	// MemoryUsage reports the bytes reserved for the vector's payload.
	MemoryUsage() int64

	// Release returns the vector's accounting to its memory resource.
	// The vector must not be used afterwards.
	Release()
}

// Decodable is the static decoder interface implemented by every concrete
// vector layout. Generic call sites instantiated with a concrete layout type
// resolve Get, Size and All at compile time, avoiding per-element interface
// dispatch in scan loops.
type Decodable interface {
	Get(i int) uint32
	Size() int
	All() iter.Seq[uint32]
}

// MetaInfo carries optional layout hints for the encoder.
type MetaInfo struct {
	// MaxValue is the largest value the input contains, valid only when
	// MaxValueKnown is set. A hint below the true maximum is a contract
	// violation; encoders panic rather than truncate.
	MaxValue      uint32
	MaxValueKnown bool
}

// Encoder builds a Vector from a raw integer sequence. One implementation
// exists per layout tag.
type Encoder interface {
	Encode(res memory.Resource, values []uint32, meta MetaInfo) Vector
}

// Encode builds a vector in the layout selected by zsType. ZsUnspecified
// picks the default fixed-size byte-aligned layout. An unknown layout tag is
// a programming error and panics.
//
// Encoding is lossless: the result has the same length and exact values as
// the input, in the same order.
func Encode(res memory.Resource, zsType format.ZsType, values []uint32, meta MetaInfo) Vector {
	switch zsType {
	case format.ZsUnspecified, format.ZsFixedByteAligned:
		return FixedSizeByteAlignedEncoder{}.Encode(res, values, meta)
	case format.ZsBitPacked:
		return BitPackedEncoder{}.Encode(res, values, meta)
	default:
		panic(fmt.Sprintf("zs: no encoder for layout %s", zsType))
	}
}

// maxValue returns the largest value in values, honoring the meta hint when
// present. With a hint the scan is skipped; the per-value hint check happens
// in the encoder's write loop.
func maxValue(values []uint32, meta MetaInfo) uint32 {
	if meta.MaxValueKnown {
		return meta.MaxValue
	}

	var max uint32
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	return max
}

// checkHint panics when a value exceeds the caller-supplied maximum.
func checkHint(v uint32, meta MetaInfo) {
	if meta.MaxValueKnown && v > meta.MaxValue {
		panic(fmt.Sprintf("zs: value %d exceeds meta info max value %d", v, meta.MaxValue))
	}
}
