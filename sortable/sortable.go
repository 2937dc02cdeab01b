// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/IvanoBilenchi/uvec/compare"
)

// Sortable is the ordering contract injected into comparable vectors.
// It extends the equality contract with a strict "less than" predicate;
// together the two predicates drive sorting, min/max scans and sorted
// (binary) search. LessThan must be a strict weak ordering consistent
// with Equals: a.Equals(b) implies !a.LessThan(b) && !b.LessThan(a).
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
