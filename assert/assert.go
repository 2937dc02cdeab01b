// Package assert provides panic-style assertions for caller contract violations.
//
// Vector operations whose preconditions are the caller's responsibility
// (indexing within bounds, popping a non-empty vector) have no error return;
// violating them is a programming error, not a recoverable condition. These
// assertions turn such violations into immediate panics with a descriptive
// message instead of silent memory corruption or a bare runtime fault.
package assert

import "fmt"

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	} else {
		panic(fmt.Sprintf("assertion failed: %v", args))
	}
}

// False asserts that the given value is false.
// If the assertion fails, it panics with a message.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Index asserts that idx is a valid position in a sequence of the given
// length, i.e. 0 <= idx < count.
func Index(idx, count int) {
	True(idx >= 0 && idx < count, "index %d out of bounds [0, %d)", idx, count)
}
