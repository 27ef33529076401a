package Queues

import (
	"iter"

	"github.com/g-m-twostay/datastructs"
	"github.com/g-m-twostay/datastructs/Nodes"
)

// Stack is a LIFO Queue over a single-link chain. The zero value is an empty stack.
type Stack[T any] struct {
	head *Nodes.SNode[T]
	sz   uint
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push item on top of the stack.
// Time: O(1)
func (u *Stack[T]) Push(item T) {
	n := Nodes.NewS(item)
	n.Next = u.head
	u.head = n
	u.sz++
}

// Pop the top item; the stack no longer owns it.
// Time: O(1)
func (u *Stack[T]) Pop() (item T, ok bool) {
	if n := u.head; n != nil {
		item, ok = n.V, true
		u.head = n.Next
		n.Free(nil)
		u.sz--
	}
	return
}

func (u *Stack[T]) Peek() (item T, ok bool) {
	if u.head != nil {
		item, ok = u.head.V, true
	}
	return
}

func (u *Stack[T]) Empty() bool {
	return u.head == nil
}

func (u *Stack[T]) Size() uint {
	return u.sz
}

// Range from top to bottom.
func (u *Stack[T]) Range(f func(T) bool) {
	Nodes.MapDataS(u.head, f)
}

// All items from top to bottom.
func (u *Stack[T]) All() iter.Seq[T] {
	return Nodes.SeqS(u.head)
}

func (u *Stack[T]) Destroy(release datastructs.Releaser[T]) {
	Nodes.FreeS(u.head, release)
	u.head, u.sz = nil, 0
}
