// Package alloc provides the pluggable storage allocation strategy used by vectors.
//
// The allocator is injected at vector construction time rather than configured
// through global state: a vector built without an explicit allocator uses the
// Heap allocator, which is backed by the Go runtime. Custom allocators are
// mainly useful for instrumentation and for exercising allocation-failure
// paths in tests, since the default allocator cannot report failure.
package alloc

import "errors"

// ErrAllocation is returned when an allocator cannot obtain storage of the
// requested capacity. Vector operations that hit this error are required to
// leave the vector exactly as it was before the call.
var ErrAllocation = errors.New("alloc: cannot allocate storage")

// Allocator obtains, resizes and releases backing buffers for vectors.
// Implementations must be deterministic with respect to the returned buffer
// length: a successful Allocate or Reallocate returns a buffer of exactly the
// requested capacity.
type Allocator[T any] interface {
	// Allocate returns a fresh zeroed buffer of the given capacity.
	Allocate(capacity int) ([]T, error)

	// Reallocate returns a buffer of the given capacity holding the prefix of
	// buf that fits; the original buffer must not be used afterwards. Shrinking
	// below len(buf) discards the excess elements.
	Reallocate(buf []T, capacity int) ([]T, error)

	// Free releases a buffer obtained from Allocate or Reallocate.
	Free(buf []T)
}

// Heap is the default Allocator, backed by the Go runtime allocator.
// Its Allocate and Reallocate never fail, and Free only updates metrics:
// the released buffer is reclaimed by the garbage collector once unreferenced.
// The zero value is ready to use.
type Heap[T any] struct{}

// Compile-time check that Heap implements Allocator.
var _ Allocator[int] = Heap[int]{}

// Allocate returns a fresh zeroed buffer of the given capacity.
func (Heap[T]) Allocate(capacity int) ([]T, error) {
	allocationsTotal.Inc()

	return make([]T, capacity), nil
}

// Reallocate copies the surviving prefix of buf into a fresh buffer of the
// given capacity.
func (Heap[T]) Reallocate(buf []T, capacity int) ([]T, error) {
	reallocationsTotal.Inc()

	next := make([]T, capacity)
	copy(next, buf)

	return next, nil
}

// Free releases the buffer. Reclamation is left to the garbage collector.
func (Heap[T]) Free(_ []T) {
	freesTotal.Inc()
}
