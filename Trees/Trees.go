// Package Trees holds ordered containers built on binary search trees.
// The trees keep their nodes in an arena: nodes are indexes into a growable
// table instead of pointers, and the parent of a node is just another index.
package Trees

import "github.com/g-m-twostay/datastructs"

// Tree represents an ordered tree like structure with no repeated values.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool); x is then the zero value of T.
// Methods implemented recursively should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if v was added, false if an equal value is already present,
	//in which case the tree isn't modified.
	Insert(v T) bool
	//Remove v from the Tree. Returns true if v was removed, false if it wasn't found.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//InOrder calls f on the elements in ascending order, or descending if reverse is true.
	//Stops when f returns false. The tree must not be modified during the iteration.
	InOrder(f func(T) bool, reverse bool)
	//Destroy the tree, giving every element to release. The tree is empty afterwards.
	Destroy(release datastructs.Releaser[T])
	//Corrupt returns whether the tree has corrupt structures, when the links or the order
	//of the values violate the properties of that specific implementation.
	//It must never return true for a tree only modified through its methods.
	Corrupt() bool
}
