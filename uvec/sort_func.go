package uvec

import (
	"slices"

	"github.com/IvanoBilenchi/uvec/assert"
)

// SortFunc sorts the vector using an externally supplied three-way
// comparator, for one-off orderings distinct from the element type's
// built-in ordering. It delegates to the standard library sort; like
// [Comparable.Sort], the sort is not guaranteed to be stable.
//
// cmp must return a negative number when a sorts before b, a positive
// number when a sorts after b, and zero when they are tied.
func (v *Vector[T]) SortFunc(cmp func(a, b T) int) {
	v.SortRangeFunc(0, v.count, cmp)
}

// SortRangeFunc sorts the elements in [start, start+length) using an
// externally supplied three-way comparator.
// Panics if the range does not lie within the vector.
func (v *Vector[T]) SortRangeFunc(start, length int, cmp func(a, b T) int) {
	assert.True(start >= 0 && length >= 0 && start+length <= v.count,
		"sort range [%d, %d) out of bounds [0, %d)", start, start+length, v.count)

	slices.SortFunc(v.storage[start:start+length], cmp)
}
