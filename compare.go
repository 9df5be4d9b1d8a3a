package vec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same size and equal elements at
// every index.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.live(), b.live())
}

// EqualFunc is [Equal] with a custom element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare orders a and b lexicographically over their elements: the first
// unequal pair decides, and a proper prefix orders before the longer
// vector. Returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.live(), b.live())
}

// CompareFunc is [Compare] with a custom element comparison.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.live(), b.live(), compare)
}
