package memory

import "unsafe"

// SliceBytes returns the accounting size of a slice's backing array:
// capacity times element size. String header bytes are included for string
// slices; the character data they point at is tracked separately by the
// string dictionary encoders.
func SliceBytes[T any](s []T) int64 {
	var zero T
	return int64(cap(s)) * int64(unsafe.Sizeof(zero))
}

// MakeSlice allocates a slice of the given length and capacity and reserves
// its backing-array size on res.
//
// The caller owns the slice and must eventually release the same number of
// bytes (SliceBytes of the returned slice) back to res.
func MakeSlice[T any](res Resource, length, capacity int) []T {
	s := make([]T, length, capacity)
	res.Reserve(SliceBytes(s))

	return s
}
