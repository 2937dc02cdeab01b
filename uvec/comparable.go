package uvec

import (
	"reflect"

	"github.com/IvanoBilenchi/uvec/alloc"
	"github.com/IvanoBilenchi/uvec/optional"
	"github.com/IvanoBilenchi/uvec/sortable"
)

// cacheLineSize is the assumed size of a CPU cache line in bytes. Sorted
// search switches from binary halving to a linear scan once the search
// window fits within this many bytes of elements.
const cacheLineSize = 64

// Comparable is a vector whose elements carry a strict ordering through the
// sortable.Sortable contract. It extends Equatable with min/max scans,
// in-place sorting, binary search and sorted insertion.
//
// The zero value is an empty vector using the default heap allocator.
type Comparable[T sortable.Sortable[T]] struct {
	Equatable[T]

	// linearThreshold caches the search window size, in elements, below
	// which sorted search scans linearly. Computed on first use.
	linearThreshold int
}

// NewComparable creates an empty comparable vector using the default heap
// allocator.
func NewComparable[T sortable.Sortable[T]]() *Comparable[T] {
	return &Comparable[T]{}
}

// NewComparableWithAllocator creates an empty comparable vector that obtains
// its storage from the given allocator.
func NewComparableWithAllocator[T sortable.Sortable[T]](allocator alloc.Allocator[T]) *Comparable[T] {
	return &Comparable[T]{Equatable: Equatable[T]{Vector: Vector[T]{alloc: allocator}}}
}

// searchThreshold returns the number of elements that fit in one cache line,
// clamped to at least 1 so the linear phase always terminates.
func (v *Comparable[T]) searchThreshold() int {
	if v.linearThreshold == 0 {
		threshold := 1

		if size := int(reflect.TypeFor[T]().Size()); size == 0 {
			threshold = cacheLineSize
		} else if size < cacheLineSize {
			threshold = cacheLineSize / size
		}

		v.linearThreshold = threshold
	}

	return v.linearThreshold
}

// IndexOfMin returns the index of the first occurrence of the smallest
// element, or None if the vector is empty. O(count).
func (v *Comparable[T]) IndexOfMin() optional.Value[int] {
	if v.count == 0 {
		return optional.None[int]()
	}

	minIdx := 0

	for i := 1; i < v.count; i++ {
		if v.storage[i].LessThan(v.storage[minIdx]) {
			minIdx = i
		}
	}

	return optional.Some(minIdx)
}

// IndexOfMax returns the index of the first occurrence of the largest
// element, or None if the vector is empty. O(count).
func (v *Comparable[T]) IndexOfMax() optional.Value[int] {
	if v.count == 0 {
		return optional.None[int]()
	}

	maxIdx := 0

	for i := 1; i < v.count; i++ {
		if v.storage[maxIdx].LessThan(v.storage[i]) {
			maxIdx = i
		}
	}

	return optional.Some(maxIdx)
}

// InsertionIndexSorted returns the leftmost index at which item could be
// inserted while keeping the vector sorted: every element before the
// returned index is less than item, and the element at it (if any) is not
// less than item. With duplicates present this is the index of the first
// equal element. The vector is assumed to be already sorted.
//
// The search is hybrid: binary halving while the window holds more elements
// than fit in one cache line, then a linear scan over the remainder, which
// trades asymptotic optimality for cache locality on small windows.
// Average performance O(log count).
func (v *Comparable[T]) InsertionIndexSorted(item T) int {
	threshold := v.searchThreshold()
	l, r := 0, v.count

	for r-l > threshold {
		m := int(uint(l+r) >> 1)

		if v.storage[m].LessThan(item) {
			l = m + 1
		} else {
			r = m
		}
	}

	for l < r && v.storage[l].LessThan(item) {
		l++
	}

	return l
}

// IndexOfSorted returns the index of the first occurrence of item in a
// sorted vector, or None if the vector does not contain it.
// Average performance O(log count).
func (v *Comparable[T]) IndexOfSorted(item T) optional.Value[int] {
	idx := v.InsertionIndexSorted(item)
	if idx < v.count && v.storage[idx].Equals(item) {
		return optional.Some(idx)
	}

	return optional.None[int]()
}

// ContainsSorted returns true if a sorted vector contains the given element.
// Average performance O(log count).
func (v *Comparable[T]) ContainsSorted(item T) bool {
	return v.IndexOfSorted(item).NonEmpty()
}

// InsertSorted inserts item at its sorted position and returns the index it
// was inserted at. The vector is assumed to be already sorted.
func (v *Comparable[T]) InsertSorted(item T) (int, error) {
	idx := v.InsertionIndexSorted(item)
	if err := v.InsertAt(idx, item); err != nil {
		return idx, err
	}

	return idx, nil
}

// InsertSortedUnique inserts item at its sorted position only if the vector
// does not already contain an equal element. It returns the index of the
// inserted (or already present) element and reports whether insertion
// occurred.
func (v *Comparable[T]) InsertSortedUnique(item T) (int, bool, error) {
	idx := v.InsertionIndexSorted(item)
	if idx < v.count && v.storage[idx].Equals(item) {
		return idx, false, nil
	}

	if err := v.InsertAt(idx, item); err != nil {
		return idx, false, err
	}

	return idx, true, nil
}

// Copy returns a new comparable vector holding the same elements, with
// independent storage.
func (v *Comparable[T]) Copy() (*Comparable[T], error) {
	out := NewComparableWithAllocator[T](v.alloc)
	if err := out.appendSlice(v.storage[:v.count]); err != nil {
		return nil, err
	}

	return out, nil
}
