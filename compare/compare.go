// Package compare contains the comparison functions used to order the
// elements of the containers in this module.
//
// A comparison function returns a negative value when a orders before b, a
// positive value when a orders after b, and zero when they are equivalent.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function ordering values in the opposite
// direction of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// Less adapts cmp to a strict weak ordering predicate, which is the form
// expected by sorting functions and by most third-party ordered containers.
func Less[T any](cmp func(T, T) int) func(T, T) bool {
	return func(a, b T) bool { return cmp(a, b) < 0 }
}
