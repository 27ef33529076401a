// Package datastructs holds the vocabulary shared by the containers in the
// sub-packages: how values are ordered and how values are handed back when a
// container is torn down.
package datastructs

import "cmp"

// Comparator returns a negative number if a < b, 0 if a == b and a positive
// number if a > b. It must describe a strict total order; see cmp.Compare for an example.
type Comparator[T any] func(a, b T) int

// Releaser receives a value whose ownership is given back by a container that
// is being destroyed. A nil Releaser means the container only drops its own
// scaffolding and the values are left to the garbage collector.
type Releaser[T any] func(T)

// Ordered is the natural order of T.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Release v with r if r isn't nil.
func (r Releaser[T]) Release(v T) {
	if r != nil {
		r(v)
	}
}
