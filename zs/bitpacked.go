package zs

import (
	"iter"
	"math/bits"

	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
)

// BitPackedVector stores each value in a fixed number of bits, packed
// contiguously into 64-bit words. Values may straddle word boundaries.
type BitPackedVector struct {
	words []uint64
	n     int
	bits  uint8
	res   memory.Resource
}

var (
	_ Vector    = (*BitPackedVector)(nil)
	_ Decodable = (*BitPackedVector)(nil)
)

// NewBitPackedVector wraps already-packed words in a BitPackedVector and
// reserves their footprint on res. The slice is used directly, not copied.
func NewBitPackedVector(res memory.Resource, words []uint64, n int, bitWidth uint8) *BitPackedVector {
	res.Reserve(memory.SliceBytes(words))

	return &BitPackedVector{words: words, n: n, bits: bitWidth, res: res}
}

// Type returns format.ZsBitPacked.
func (v *BitPackedVector) Type() format.ZsType {
	return format.ZsBitPacked
}

// Size returns the number of values in the vector.
func (v *BitPackedVector) Size() int {
	return v.n
}

// Get returns the value at index i. Panics if i is out of range.
func (v *BitPackedVector) Get(i int) uint32 {
	if i < 0 || i >= v.n {
		panic("zs: bit-packed index out of range")
	}

	width := uint(v.bits)
	pos := uint(i) * width
	word := pos >> 6
	off := pos & 63

	val := v.words[word] >> off
	if off+width > 64 {
		val |= v.words[word+1] << (64 - off)
	}

	return uint32(val & mask(width))
}

// All returns a lazy sequence of all values in order.
func (v *BitPackedVector) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		width := uint(v.bits)
		m := mask(width)
		pos := uint(0)

		for i := 0; i < v.n; i++ {
			word := pos >> 6
			off := pos & 63

			val := v.words[word] >> off
			if off+width > 64 {
				val |= v.words[word+1] << (64 - off)
			}
			if !yield(uint32(val & m)) {
				return
			}
			pos += width
		}
	}
}

// BitWidth returns the number of bits stored per value.
func (v *BitPackedVector) BitWidth() uint8 {
	return v.bits
}

// Words exposes the underlying packed words for serialization. Read-only.
func (v *BitPackedVector) Words() []uint64 {
	return v.words
}

// MemoryUsage reports the bytes reserved for the vector's payload.
func (v *BitPackedVector) MemoryUsage() int64 {
	return memory.SliceBytes(v.words)
}

// Release returns the vector's accounting to its memory resource.
func (v *BitPackedVector) Release() {
	v.res.Release(memory.SliceBytes(v.words))
	v.words = nil
	v.n = 0
}

func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}

// BitPackedEncoder builds BitPackedVectors using the smallest bit width that
// can represent the input's maximum value (at least one bit, so an all-zero
// vector still occupies one bit per value).
type BitPackedEncoder struct{}

var _ Encoder = BitPackedEncoder{}

// Encode builds a bit-packed vector from values.
//
// When meta carries a known maximum the bit width is chosen without scanning
// the input; a value above the hint panics instead of truncating.
func (BitPackedEncoder) Encode(res memory.Resource, values []uint32, meta MetaInfo) Vector {
	width := uint(bits.Len32(maxValue(values, meta)))
	if width == 0 {
		width = 1
	}

	wordCount := (len(values)*int(width) + 63) / 64
	words := memory.MakeSlice[uint64](res, wordCount, wordCount)

	pos := uint(0)
	for _, v := range values {
		checkHint(v, meta)

		word := pos >> 6
		off := pos & 63

		words[word] |= uint64(v) << off
		if off+width > 64 {
			words[word+1] = uint64(v) >> (64 - off)
		}
		pos += width
	}

	return &BitPackedVector{words: words, n: len(values), bits: uint8(width), res: res}
}
