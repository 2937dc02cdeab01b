// Package uvec implements a generic, contiguous-storage sequence container
// with amortized-O(1) append, indexed access, ordered search and in-place
// sorting.
//
// # Capability layers
//
// The package exposes three vector types of increasing capability, selected
// by the constraints their element type satisfies:
//
//   - [Vector] works with any element type and provides the storage core:
//     capacity management, push/pop, positional insert/remove, bulk append,
//     reversal, copying and comparator-driven sorting via [Vector.SortFunc].
//   - [Equatable] requires elements implementing
//     [github.com/IvanoBilenchi/uvec/compare.Comparable] and adds linear
//     search and set-like containment operations.
//   - [Comparable] requires elements implementing
//     [github.com/IvanoBilenchi/uvec/sortable.Sortable] and adds min/max
//     scans, in-place quicksort, binary search and sorted insertion.
//
// For element types whose equality is the built-in == operator, the
// package-level [Identical], [IndexOfIdentical] and [ContainsIdentical]
// functions provide a fast path that needs no wrapper type; the Go
// comparable constraint guarantees at compile time that bitwise comparison
// is legal for the element type.
//
// # Storage model
//
// A vector owns a contiguous buffer whose capacity is always a power of two
// when non-zero. Appending doubles the capacity when full, so the total
// reallocation cost over N appends is O(N). Buffers are never shared between
// two live vectors; [Vector.Copy] always allocates independent storage.
// Allocation is delegated to an injected
// [github.com/IvanoBilenchi/uvec/alloc.Allocator]; the zero value of every
// vector type is empty, uses the default heap allocator, and is immediately
// usable.
//
// # Errors and contract violations
//
// Operations that may grow storage (Push, InsertAt, Append, ReserveCapacity,
// sorted insertion) return an error when the allocator fails, and guarantee
// the vector is left exactly as it was before the call. Operations with no
// failure-prone step (Pop, RemoveAt, Get, Set) have no error path: calling
// them with an out-of-range index or on an empty vector is a caller contract
// violation and panics.
//
// # Concurrency
//
// Vectors perform no internal locking. Concurrent mutation of the same
// vector instance must be serialized externally.
package uvec
