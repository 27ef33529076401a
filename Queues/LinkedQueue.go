package Queues

import (
	"iter"

	"github.com/g-m-twostay/datastructs"
	"github.com/g-m-twostay/datastructs/Nodes"
)

// Linked is a FIFO Queue over a single-link chain with a tail pointer.
// The zero value is an empty queue.
type Linked[T any] struct {
	head, tail *Nodes.SNode[T]
	sz         uint
}

func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// Push item at the back.
// Time: O(1)
func (u *Linked[T]) Push(item T) {
	n := Nodes.NewS(item)
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.Next = n
	}
	u.tail = n
	u.sz++
}

// Pop the front item; the queue no longer owns it.
// Time: O(1)
func (u *Linked[T]) Pop() (item T, ok bool) {
	if n := u.head; n != nil {
		item, ok = n.V, true
		if u.head = n.Next; u.head == nil {
			u.tail = nil
		}
		n.Free(nil)
		u.sz--
	}
	return
}

func (u *Linked[T]) Peek() (item T, ok bool) {
	if u.head != nil {
		item, ok = u.head.V, true
	}
	return
}

func (u *Linked[T]) Empty() bool {
	return u.head == nil
}

func (u *Linked[T]) Size() uint {
	return u.sz
}

// Range from front to back.
func (u *Linked[T]) Range(f func(T) bool) {
	Nodes.MapDataS(u.head, f)
}

// All items from front to back.
func (u *Linked[T]) All() iter.Seq[T] {
	return Nodes.SeqS(u.head)
}

func (u *Linked[T]) Destroy(release datastructs.Releaser[T]) {
	Nodes.FreeS(u.head, release)
	u.head, u.tail, u.sz = nil, nil, 0
}
