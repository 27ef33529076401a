// Package Nodes holds the single-link and double-link node shapes used by the
// sequential containers, and the chain operations shared by them.
package Nodes

import (
	"github.com/g-m-twostay/datastructs"
)

// SNode is a single-link node. A node belongs to exactly one chain at a time.
type SNode[T any] struct {
	V    T
	Next *SNode[T]
}

// DNode is a double-link node. A node belongs to exactly one chain at a time.
type DNode[T any] struct {
	V          T
	Prev, Next *DNode[T]
}

// NewS returns a node holding v with no links.
func NewS[T any](v T) *SNode[T] {
	return &SNode[T]{V: v}
}

// NewD returns a node holding v with no links.
func NewD[T any](v T) *DNode[T] {
	return &DNode[T]{V: v}
}

// Free gives the value of u to release and clears u. u must already be detached from its chain.
func (u *SNode[T]) Free(release datastructs.Releaser[T]) {
	release.Release(u.V)
	*u = SNode[T]{}
}

// Free gives the value of u to release and clears u. u must already be detached from its chain.
func (u *DNode[T]) Free(release datastructs.Releaser[T]) {
	release.Release(u.V)
	*u = DNode[T]{}
}

// FreeS frees every node reachable from n through Next, in chain order.
func FreeS[T any](n *SNode[T], release datastructs.Releaser[T]) {
	for n != nil {
		next := n.Next
		n.Free(release)
		n = next
	}
}

// FreeD frees every node reachable from n through Next, in chain order.
func FreeD[T any](n *DNode[T], release datastructs.Releaser[T]) {
	for n != nil {
		next := n.Next
		n.Free(release)
		n = next
	}
}
