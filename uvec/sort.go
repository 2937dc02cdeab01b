package uvec

import (
	"github.com/IvanoBilenchi/uvec/assert"
	"github.com/IvanoBilenchi/uvec/sortable"
)

// sortStackSize bounds the number of pending sub-range boundaries the
// iterative quicksort keeps. 64 slots cover a partition tree deeper than
// log2 of any representable range length, so saturation only occurs under
// extremely unbalanced pivot sequences.
const sortStackSize = 64

// Linear congruential generator parameters for pivot selection. The
// generator is reseeded on every sort call so that adversarial input
// orderings cannot force quadratic behavior deterministically.
const (
	lcgSeed       uint32 = 31
	lcgMultiplier uint32 = 69069
	lcgIncrement  uint32 = 1
)

// Sort sorts the vector in place.
// Average performance O(count log count); the sort is not stable.
func (v *Comparable[T]) Sort() {
	v.SortRange(0, v.count)
}

// SortRange sorts the elements in [start, start+length) in place.
// Average performance O(length log length); the sort is not stable.
// Panics if the range does not lie within the vector.
func (v *Comparable[T]) SortRange(start, length int) {
	assert.True(start >= 0 && length >= 0 && start+length <= v.count,
		"sort range [%d, %d) out of bounds [0, %d)", start, start+length, v.count)

	quicksort(v.storage[start : start+length])
}

// quicksort is an iterative randomized quicksort with Hoare partitioning.
//
// Instead of recursing, it keeps the right boundaries of pending sub-ranges
// in a fixed-size stack: after partitioning, the left part is processed
// immediately and the right part's boundary is pushed. When a push would
// overflow the stack, the current sub-range is coalesced with the oldest
// pending boundary (stack[0]) and partitioning restarts over the merged
// range. Every pending sub-range lies within that merged range, so the
// result is still fully sorted; the trade-off is repeated partitioning work
// rather than unbounded stack growth.
//
// The pivot is drawn from the current sub-range by a linear congruential
// generator reseeded per call.
func quicksort[T sortable.Sortable[T]](array []T) {
	quicksortBounded(array, sortStackSize)
}

// quicksortBounded runs the sort with the given boundary stack capacity,
// which must be within (0, sortStackSize]. Smaller capacities saturate the
// stack sooner and exercise the coalescing path on correspondingly smaller
// inputs; quicksort always passes sortStackSize.
func quicksortBounded[T sortable.Sortable[T]](array []T, stackSize int) {
	var stackBuf [sortStackSize]int

	stack := stackBuf[:stackSize]
	lo, hi := 0, len(array)
	pos := 0
	seed := lcgSeed

	for {
		for ; lo+1 < hi; hi++ {
			if pos == stackSize {
				pos = 0
				hi = stack[0]
			}

			pivot := array[lo+int(uint(seed)%uint(hi-lo))]
			seed = seed*lcgMultiplier + lcgIncrement
			stack[pos] = hi
			pos++

			// Hoare partition: two converging scans swap elements that
			// straddle the pivot. The pivot value itself bounds both scans,
			// so neither can run past the sub-range.
			for right := lo - 1; ; {
				for right++; array[right].LessThan(pivot); right++ { //nolint:revive
				}

				for hi--; pivot.LessThan(array[hi]); hi-- { //nolint:revive
				}

				if right >= hi {
					break
				}

				array[right], array[hi] = array[hi], array[right]
			}
		}

		if pos == 0 {
			return
		}

		lo = hi
		pos--
		hi = stack[pos]
	}
}
