// Package memory provides the allocation-accounting resource that every
// column encoder receives.
//
// Encoders obtain all codec-internal buffers (dictionaries, attribute
// vectors, run arrays) through a Resource, so the memory footprint of an
// encoded column can be attributed to a specific resource instance without
// any global allocator state. A benchmark or tenant creates its own
// TrackingResource, encodes through it, and reads Allocated() before and
// after to measure the encode delta.
//
// Go's garbage collector owns actual reclamation; Release only returns the
// accounting. Encoded columns call Release with their recorded footprint
// when they are discarded.
package memory

import "sync/atomic"

// Resource tracks bytes reserved for codec-internal buffers.
//
// Implementations must be safe for concurrent use: encoded columns built
// through the same resource may be released from different goroutines.
type Resource interface {
	// Reserve records that n bytes have been allocated through this resource.
	Reserve(n int64)

	// Release returns n previously reserved bytes to the resource.
	Release(n int64)

	// Allocated reports the bytes currently reserved through this resource.
	Allocated() int64
}

// TrackingResource is a Resource backed by a single atomic counter.
type TrackingResource struct {
	allocated atomic.Int64
}

var _ Resource = (*TrackingResource)(nil)

// NewTracking creates a TrackingResource with zero bytes reserved.
func NewTracking() *TrackingResource {
	return &TrackingResource{}
}

// Reserve records that n bytes have been allocated through this resource.
func (r *TrackingResource) Reserve(n int64) {
	r.allocated.Add(n)
}

// Release returns n previously reserved bytes to the resource.
//
// Releasing more than was reserved indicates a bookkeeping bug in the caller
// and panics rather than letting the counter go negative.
func (r *TrackingResource) Release(n int64) {
	if r.allocated.Add(-n) < 0 {
		panic("memory: released more bytes than reserved")
	}
}

// Allocated reports the bytes currently reserved through this resource.
func (r *TrackingResource) Allocated() int64 {
	return r.allocated.Load()
}

// nopResource discards all accounting. It is the default for callers that do
// not need per-resource measurement.
type nopResource struct{}

func (nopResource) Reserve(int64)    {}
func (nopResource) Release(int64)    {}
func (nopResource) Allocated() int64 { return 0 }

// Nop returns a Resource that performs no accounting.
func Nop() Resource { return nopResource{} }
