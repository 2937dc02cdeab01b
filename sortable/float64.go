package sortable

// Float64 is a sortable wrapper type for the built-in float64 type.
// It implements the Sortable[Float64] interface, allowing float64 values
// to be stored in comparable vectors and ordered numerically.
//
// NaN values break the strict weak ordering required by Sortable
// (NaN is neither less than, greater than, nor equal to anything,
// including itself). Callers that may hold NaNs should filter them
// out before sorting or searching.
type Float64 float64

// Compile-time check that Float64 implements Sortable[Float64].
var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if this Float64 has the same value as the other Float64.
func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this Float64 is numerically less than the other Float64.
func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}
