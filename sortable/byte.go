package sortable

// Byte is a sortable wrapper type for the built-in byte type.
// It implements the Sortable[Byte] interface, allowing bytes to be stored
// in comparable vectors and ordered by their numeric value.
//
// Example:
//
//	v := uvec.NewComparable[sortable.Byte]()
//	_ = v.Append(sortable.Byte('c'), sortable.Byte('a'), sortable.Byte('b'))
//	v.Sort()
//	// Contents: 'a', 'b', 'c'
//
// To convert back to a regular byte, use a type conversion:
//
//	var s sortable.Byte = 'x'
//	regularByte := byte(s)
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}
