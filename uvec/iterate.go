package uvec

import (
	"iter"

	"github.com/IvanoBilenchi/uvec/optional"
)

// All returns an iterator over index/element pairs in forward order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs in reverse order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.count - 1; i >= 0; i-- {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

// FirstIndexWhere returns the index of the first element satisfying pred,
// or None if no element does.
func (v *Vector[T]) FirstIndexWhere(pred func(T) bool) optional.Value[int] {
	for i := 0; i < v.count; i++ {
		if pred(v.storage[i]) {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}
