package sortable

import "facette.io/natsort"

// NaturalString is a sortable wrapper type for strings ordered using natural
// sort order. Natural sort treats numbers within strings numerically, so
// "file2" sorts before "file10" (a plain lexicographic comparison would put
// "file10" first).
//
// Example:
//
//	v := uvec.NewComparable[sortable.NaturalString]()
//	_ = v.Append(
//	    sortable.NaturalString("file10"),
//	    sortable.NaturalString("file2"),
//	    sortable.NaturalString("file1"),
//	)
//	v.Sort()
//	// Contents: "file1", "file2", "file10"
//
// Equality is plain string equality: "file02" and "file2" compare as ordering
// ties but are not equal.
type NaturalString string

// Compile-time check that NaturalString implements Sortable[NaturalString].
var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if this NaturalString has the same value as the other NaturalString.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this NaturalString precedes the other NaturalString
// in natural sort order.
func (s NaturalString) LessThan(other NaturalString) bool {
	return natsort.Compare(string(s), string(other))
}
