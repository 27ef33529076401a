package Queues

import (
	"iter"

	"github.com/g-m-twostay/datastructs"
	"github.com/g-m-twostay/datastructs/Nodes"
)

// LinkedDeque is a Deque over a double-link chain. first and last are both nil
// when empty and the same node when holding a single item.
// The zero value is an empty deque.
type LinkedDeque[T any] struct {
	first, last *Nodes.DNode[T]
	count       uint
}

func NewLinkedDeque[T any]() *LinkedDeque[T] {
	return &LinkedDeque[T]{}
}

// PushFront adds item before the first item.
// Time: O(1)
func (u *LinkedDeque[T]) PushFront(item T) {
	n := Nodes.NewD(item)
	if u.first == nil {
		u.last = n
	} else {
		n.Next, u.first.Prev = u.first, n
	}
	u.first = n
	u.count++
}

// PushBack adds item after the last item.
// Time: O(1)
func (u *LinkedDeque[T]) PushBack(item T) {
	n := Nodes.NewD(item)
	if u.last == nil {
		u.first = n
	} else {
		n.Prev, u.last.Next = u.last, n
	}
	u.last = n
	u.count++
}

// PopFront removes the first item; the deque no longer owns it.
// Time: O(1)
func (u *LinkedDeque[T]) PopFront() (item T, ok bool) {
	if n := u.first; n != nil {
		item, ok = n.V, true
		if u.first = n.Next; u.first == nil {
			u.last = nil
		} else {
			u.first.Prev = nil
		}
		n.Free(nil)
		u.count--
	}
	return
}

// PopBack removes the last item; the deque no longer owns it.
// Time: O(1)
func (u *LinkedDeque[T]) PopBack() (item T, ok bool) {
	if n := u.last; n != nil {
		item, ok = n.V, true
		if u.last = n.Prev; u.last == nil {
			u.first = nil
		} else {
			u.last.Next = nil
		}
		n.Free(nil)
		u.count--
	}
	return
}

func (u *LinkedDeque[T]) PeekFront() (item T, ok bool) {
	if u.first != nil {
		item, ok = u.first.V, true
	}
	return
}

func (u *LinkedDeque[T]) PeekBack() (item T, ok bool) {
	if u.last != nil {
		item, ok = u.last.V, true
	}
	return
}

// Push is PushBack.
func (u *LinkedDeque[T]) Push(item T) {
	u.PushBack(item)
}

// Pop is PopBack.
func (u *LinkedDeque[T]) Pop() (T, bool) {
	return u.PopBack()
}

// Peek is PeekBack.
func (u *LinkedDeque[T]) Peek() (T, bool) {
	return u.PeekBack()
}

func (u *LinkedDeque[T]) Empty() bool {
	return u.count == 0
}

func (u *LinkedDeque[T]) Size() uint {
	return u.count
}

// Index returns the i-th item from the front.
// Time: O(i)
func (u *LinkedDeque[T]) Index(i uint) (item T, ok bool) {
	if i < u.count {
		if i < u.count/2 {
			item = Nodes.IndexD(u.first, i).V
		} else {
			for n, j := u.last, u.count-1; ; n, j = n.Prev, j-1 {
				if j == i {
					item = n.V
					break
				}
			}
		}
		ok = true
	}
	return
}

// Range from back to front, the order Pop gives them.
func (u *LinkedDeque[T]) Range(f func(T) bool) {
	Nodes.MapDataD(u.last, f, true)
}

// RangeFrom the front, or from the back if reverse is true.
func (u *LinkedDeque[T]) RangeFrom(f func(T) bool, reverse bool) {
	if reverse {
		Nodes.MapDataD(u.last, f, true)
	} else {
		Nodes.MapDataD(u.first, f, false)
	}
}

// All items from front to back.
func (u *LinkedDeque[T]) All() iter.Seq[T] {
	return Nodes.SeqD(u.first, false)
}

// Backward is All in reverse.
func (u *LinkedDeque[T]) Backward() iter.Seq[T] {
	return Nodes.SeqD(u.last, true)
}

// Cut the items at positions [start, end] out of u and return them as a new deque.
// Returns nil if the range isn't inside u.
// Time: O(end)
func (u *LinkedDeque[T]) Cut(start, end uint) *LinkedDeque[T] {
	if start > end || end >= u.count {
		return nil
	}
	first, cut := Nodes.CutD(u.first, start, end)
	n := end - start + 1
	d := &LinkedDeque[T]{first: cut, count: n}
	d.last = Nodes.IndexD(cut, n-1)
	if end == u.count-1 {
		if start == 0 {
			u.last = nil
		} else {
			u.last = Nodes.IndexD(first, start-1)
		}
	}
	u.first = first
	u.count -= n
	return d
}

func (u *LinkedDeque[T]) Destroy(release datastructs.Releaser[T]) {
	Nodes.FreeD(u.first, release)
	u.first, u.last, u.count = nil, nil, 0
}
