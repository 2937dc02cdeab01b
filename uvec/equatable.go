package uvec

import (
	"github.com/IvanoBilenchi/uvec/alloc"
	"github.com/IvanoBilenchi/uvec/compare"
	"github.com/IvanoBilenchi/uvec/optional"
)

// Equatable is a vector whose elements can be compared for equality through
// the compare.Comparable contract. It extends Vector with linear search and
// set-like containment operations.
//
// The zero value is an empty vector using the default heap allocator.
type Equatable[T compare.Comparable[T]] struct {
	Vector[T]
}

// NewEquatable creates an empty equatable vector using the default heap
// allocator.
func NewEquatable[T compare.Comparable[T]]() *Equatable[T] {
	return &Equatable[T]{}
}

// NewEquatableWithAllocator creates an empty equatable vector that obtains
// its storage from the given allocator.
func NewEquatableWithAllocator[T compare.Comparable[T]](allocator alloc.Allocator[T]) *Equatable[T] {
	return &Equatable[T]{Vector: Vector[T]{alloc: allocator}}
}

// IndexOf returns the index of the first occurrence of item, or None if the
// vector does not contain it. O(count).
func (v *Equatable[T]) IndexOf(item T) optional.Value[int] {
	for i := 0; i < v.count; i++ {
		if v.storage[i].Equals(item) {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

// IndexOfReverse returns the index of the last occurrence of item, or None
// if the vector does not contain it. O(count).
func (v *Equatable[T]) IndexOfReverse(item T) optional.Value[int] {
	for i := v.count - 1; i >= 0; i-- {
		if v.storage[i].Equals(item) {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

// Contains returns true if the vector contains the given element.
func (v *Equatable[T]) Contains(item T) bool {
	return v.IndexOf(item).NonEmpty()
}

// PushUnique appends item only if the vector does not already contain it.
// It reports whether the element was inserted.
func (v *Equatable[T]) PushUnique(item T) (bool, error) {
	if v.Contains(item) {
		return false, nil
	}

	if err := v.Push(item); err != nil {
		return false, err
	}

	return true, nil
}

// Remove removes the first occurrence of item and reports whether an
// element was removed.
func (v *Equatable[T]) Remove(item T) bool {
	idx, found := v.IndexOf(item).Get()
	if !found {
		return false
	}

	v.RemoveAt(idx)

	return true
}

// RemoveAllFrom removes the first occurrence of every element of other from
// the vector.
func (v *Equatable[T]) RemoveAllFrom(other *Equatable[T]) {
	for i := 0; i < other.count; i++ {
		v.Remove(other.storage[i])
	}
}

// Equals returns true if the two vectors have the same length and hold
// elements that compare equal at every position, in order. Two empty
// vectors are equal; a vector is always equal to itself.
func (v *Equatable[T]) Equals(other *Equatable[T]) bool {
	if v == other {
		return true
	}

	if v.count != other.count {
		return false
	}

	for i := 0; i < v.count; i++ {
		if !v.storage[i].Equals(other.storage[i]) {
			return false
		}
	}

	return true
}

// ContainsAll returns true if the vector contains every element of other.
// O(|other| * |v|).
func (v *Equatable[T]) ContainsAll(other *Equatable[T]) bool {
	if v == other {
		return true
	}

	for i := 0; i < other.count; i++ {
		if !v.Contains(other.storage[i]) {
			return false
		}
	}

	return true
}

// ContainsAny returns true if the vector contains at least one element of
// other. A vector always contains any of itself, even when empty.
// O(|other| * |v|).
func (v *Equatable[T]) ContainsAny(other *Equatable[T]) bool {
	if v == other {
		return true
	}

	for i := 0; i < other.count; i++ {
		if v.Contains(other.storage[i]) {
			return true
		}
	}

	return false
}

// Copy returns a new equatable vector holding the same elements, with
// independent storage.
func (v *Equatable[T]) Copy() (*Equatable[T], error) {
	out := NewEquatableWithAllocator[T](v.alloc)
	if err := out.appendSlice(v.storage[:v.count]); err != nil {
		return nil, err
	}

	return out, nil
}
