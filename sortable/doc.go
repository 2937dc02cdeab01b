// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of comparable vectors.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float64], [String]
// and [NaturalString]. These types are designed to work with the ordered vector
// operations (see [github.com/IvanoBilenchi/uvec/uvec.Comparable]): in-place
// sorting, min/max scans, sorted insertion and binary search.
//
// The Sortable interface extends [github.com/IvanoBilenchi/uvec/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need ordered vectors:
//
//	v := uvec.NewComparable[sortable.Int]()
//	_, _ = v.InsertSorted(sortable.Int(42))
//	_, _ = v.InsertSorted(sortable.Int(10))
//	_, _ = v.InsertSorted(sortable.Int(25))
//
//	// Elements are kept in sorted order: 10, 25, 42
//	for _, val := range v.All() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (a Task) Equals(b Task) bool {
//	    return a.Priority == b.Priority && a.Name == b.Name
//	}
//
//	func (a Task) LessThan(b Task) bool {
//	    if a.Priority != b.Priority {
//	        return a.Priority < b.Priority
//	    }
//	    return a.Name < b.Name
//	}
//
// LessThan must be consistent with Equals: two equal values must not be
// ordered relative to each other. The sorted-search operations rely on this
// to verify a hit at the computed insertion index.
//
// # Thread Safety
//
// The wrapper types in this package are immutable value types. Vectors built
// from them are not thread-safe and require external synchronization for
// concurrent access.
package sortable
