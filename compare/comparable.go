// Package compare defines the equality contract injected into equatable vectors.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Element types stored in an equatable vector must implement this interface; the
// vector's search and set-like operations (index lookup, containment, vector equality)
// are all defined in terms of the Equals method rather than the == operator, so a
// type is free to use whatever equality semantics fit it (case-insensitive strings,
// identifier-only struct equality, and so on).
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
