package sortable

// String is a sortable wrapper type for the built-in string type.
// It implements the Sortable[String] interface, allowing strings to be
// stored in comparable vectors and ordered lexicographically (byte-wise,
// the same ordering as the built-in < operator).
//
// For an ordering that compares embedded numbers numerically
// ("file2" before "file10"), use NaturalString instead.
//
// To convert back to a regular string, use a type conversion:
//
//	var s sortable.String = "hello"
//	regularString := string(s)
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String sorts lexicographically before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
