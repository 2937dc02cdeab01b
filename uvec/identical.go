package uvec

import (
	"github.com/IvanoBilenchi/uvec/optional"
)

// The functions in this file are the identity fast path for element types
// whose logical equality is the built-in == operator. The comparable
// constraint is the per-type validation that makes direct comparison legal:
// types with padding-sensitive or reference-based equality do not satisfy
// it, so they can only be searched through the compare.Comparable contract.

// Identical returns true if the two vectors have the same length and hold
// identical (==) elements at every position. A vector is always identical
// to itself.
func Identical[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}

	if a.count != b.count {
		return false
	}

	for i := 0; i < a.count; i++ {
		if a.storage[i] != b.storage[i] {
			return false
		}
	}

	return true
}

// IndexOfIdentical returns the index of the first element identical (==) to
// item, or None if the vector contains no such element. O(count).
func IndexOfIdentical[T comparable](v *Vector[T], item T) optional.Value[int] {
	for i := 0; i < v.count; i++ {
		if v.storage[i] == item {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

// ContainsIdentical returns true if the vector contains an element
// identical (==) to item.
func ContainsIdentical[T comparable](v *Vector[T], item T) bool {
	return IndexOfIdentical(v, item).NonEmpty()
}
