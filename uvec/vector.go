package uvec

import (
	"math/bits"

	"github.com/IvanoBilenchi/uvec/alloc"
	"github.com/IvanoBilenchi/uvec/assert"
	"github.com/IvanoBilenchi/uvec/zero"
)

// Vector is a generic sequence container backed by a single contiguous
// buffer. Elements occupy the slots [0, count) of the buffer with no gaps;
// the buffer capacity is always a power of two when non-zero.
//
// The zero value is an empty vector using the default heap allocator.
type Vector[T any] struct {
	storage []T
	count   int
	alloc   alloc.Allocator[T]
}

// New creates an empty vector using the default heap allocator.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithAllocator creates an empty vector that obtains its storage from the
// given allocator. Passing nil is equivalent to New.
func NewWithAllocator[T any](allocator alloc.Allocator[T]) *Vector[T] {
	return &Vector[T]{alloc: allocator}
}

// NewWithCapacity creates an empty vector with room for at least capacity
// elements already reserved.
func NewWithCapacity[T any](capacity int) (*Vector[T], error) {
	v := New[T]()
	if err := v.ReserveCapacity(capacity); err != nil {
		return nil, err
	}

	return v, nil
}

// allocator returns the injected allocator, falling back to the heap.
func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		return alloc.Heap[T]{}
	}

	return v.alloc
}

// nextPowerOfTwo rounds n up to the next power of two. n must be positive.
func nextPowerOfTwo(n int) int {
	return 1 << bits.Len(uint(n-1))
}

// reallocate swaps the backing buffer for one of the given capacity,
// preserving the live elements. The vector is unmodified on failure.
func (v *Vector[T]) reallocate(capacity int) error {
	var (
		buf []T
		err error
	)

	if v.storage == nil {
		buf, err = v.allocator().Allocate(capacity)
	} else {
		buf, err = v.allocator().Reallocate(v.storage, capacity)
	}

	if err != nil {
		return err
	}

	v.storage = buf

	return nil
}

// expandIfRequired doubles the capacity (from 0 to 2, then 2x) when the
// vector is full, so a sequence of N pushes costs O(N) overall.
func (v *Vector[T]) expandIfRequired() error {
	if v.count < len(v.storage) {
		return nil
	}

	capacity := 2
	if len(v.storage) > 0 {
		capacity = len(v.storage) * 2
	}

	return v.reallocate(capacity)
}

// Count returns the number of elements in the vector.
func (v *Vector[T]) Count() int {
	return v.count
}

// Allocated returns the capacity of the backing buffer.
func (v *Vector[T]) Allocated() int {
	return len(v.storage)
}

// IsEmpty returns true if the vector contains no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.count == 0
}

// Get returns the element at the given index.
// Panics if the index is out of range.
func (v *Vector[T]) Get(idx int) T {
	assert.Index(idx, v.count)

	return v.storage[idx]
}

// Set replaces the element at the given index.
// Panics if the index is out of range.
func (v *Vector[T]) Set(idx int, item T) {
	assert.Index(idx, v.count)

	v.storage[idx] = item
}

// First returns the first element. Panics if the vector is empty.
func (v *Vector[T]) First() T {
	assert.True(v.count > 0, "first on empty vector")

	return v.storage[0]
}

// Last returns the last element. Panics if the vector is empty.
func (v *Vector[T]) Last() T {
	assert.True(v.count > 0, "last on empty vector")

	return v.storage[v.count-1]
}

// ReserveCapacity ensures the vector can hold at least n elements without
// further allocation, rounding the requested capacity up to the next power
// of two. It is a no-op when the current capacity is already sufficient.
// The vector is unmodified on failure.
func (v *Vector[T]) ReserveCapacity(n int) error {
	if n <= len(v.storage) {
		return nil
	}

	return v.reallocate(nextPowerOfTwo(n))
}

// Expand ensures the vector can hold n additional elements beyond the
// current count without further allocation.
func (v *Vector[T]) Expand(n int) error {
	if n <= 0 {
		return nil
	}

	return v.ReserveCapacity(v.count + n)
}

// Shrink reduces the capacity to the smallest power of two that holds the
// current elements, or releases the buffer entirely when the vector is empty.
func (v *Vector[T]) Shrink() error {
	if v.count == 0 {
		if v.storage != nil {
			v.allocator().Free(v.storage)
			v.storage = nil
		}

		return nil
	}

	if capacity := nextPowerOfTwo(v.count); capacity < len(v.storage) {
		return v.reallocate(capacity)
	}

	return nil
}

// Push appends an element to the end of the vector in amortized O(1).
func (v *Vector[T]) Push(item T) error {
	if err := v.expandIfRequired(); err != nil {
		return err
	}

	v.storage[v.count] = item
	v.count++

	return nil
}

// Pop removes and returns the last element. Panics if the vector is empty.
func (v *Vector[T]) Pop() T {
	assert.True(v.count > 0, "pop on empty vector")

	v.count--
	item := v.storage[v.count]
	v.storage[v.count] = zero.Value[T]()

	return item
}

// InsertAt inserts an element at the given index, shifting the suffix
// [idx, count) right by one slot. idx may equal Count, in which case the
// element is appended. Panics if idx is otherwise out of range.
func (v *Vector[T]) InsertAt(idx int, item T) error {
	assert.True(idx >= 0 && idx <= v.count, "insertion index %d out of bounds [0, %d]", idx, v.count)

	if err := v.expandIfRequired(); err != nil {
		return err
	}

	if idx < v.count {
		copy(v.storage[idx+1:v.count+1], v.storage[idx:v.count])
	}

	v.storage[idx] = item
	v.count++

	return nil
}

// RemoveAt removes and returns the element at the given index, shifting the
// suffix (idx, count) left by one slot. Panics if idx is out of range.
func (v *Vector[T]) RemoveAt(idx int) T {
	assert.Index(idx, v.count)

	item := v.storage[idx]
	copy(v.storage[idx:v.count-1], v.storage[idx+1:v.count])
	v.count--
	v.storage[v.count] = zero.Value[T]()

	return item
}

// RemoveAll removes every element. The capacity is unchanged; use Shrink to
// release the buffer.
func (v *Vector[T]) RemoveAll() {
	clear(v.storage[:v.count])
	v.count = 0
}

// Append bulk-appends the given elements with a single capacity check
// followed by one block copy, avoiding per-element reallocation.
func (v *Vector[T]) Append(items ...T) error {
	return v.appendSlice(items)
}

// AppendVector appends every element of other to the vector. Appending a
// vector to itself is allowed.
func (v *Vector[T]) AppendVector(other *Vector[T]) error {
	return v.appendSlice(other.storage[:other.count])
}

func (v *Vector[T]) appendSlice(items []T) error {
	if len(items) == 0 {
		return nil
	}

	newCount := v.count + len(items)
	if err := v.ReserveCapacity(newCount); err != nil {
		return err
	}

	copy(v.storage[v.count:newCount], items)
	v.count = newCount

	return nil
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T]) Reverse() {
	for i, j := 0, v.count-1; i < j; i, j = i+1, j-1 {
		v.storage[i], v.storage[j] = v.storage[j], v.storage[i]
	}
}

// Copy returns a new vector holding the same elements. The copy is shallow
// and its storage is independent of the original.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	out := NewWithAllocator[T](v.alloc)
	if err := out.appendSlice(v.storage[:v.count]); err != nil {
		return nil, err
	}

	return out, nil
}

// DeepCopy returns a new vector whose elements are produced by invoking
// copyFunc once per element, in iteration order.
func (v *Vector[T]) DeepCopy(copyFunc func(T) T) (*Vector[T], error) {
	out := NewWithAllocator[T](v.alloc)
	if err := out.ReserveCapacity(v.count); err != nil {
		return nil, err
	}

	for i := range v.count {
		out.storage[i] = copyFunc(v.storage[i])
	}

	out.count = v.count

	return out, nil
}

// DeepClear invokes freeFunc once per element, in iteration order, then
// removes every element and releases the buffer. Use it when elements own
// resources that must be torn down with the vector.
func (v *Vector[T]) DeepClear(freeFunc func(T)) {
	for i := range v.count {
		freeFunc(v.storage[i])
	}

	v.RemoveAll()

	if v.storage != nil {
		v.allocator().Free(v.storage)
		v.storage = nil
	}
}

// ToSlice returns the elements as a freshly allocated slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.count)
	copy(out, v.storage[:v.count])

	return out
}

// CopyToSlice copies elements into dst, stopping at whichever of the two is
// exhausted first, and returns the number of elements copied.
func (v *Vector[T]) CopyToSlice(dst []T) int {
	return copy(dst, v.storage[:v.count])
}
