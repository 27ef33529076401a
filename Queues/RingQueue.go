package Queues

import (
	"iter"

	"github.com/g-m-twostay/datastructs"
)

// Ring is a FIFO Queue over a circular array. It grows by half when full and only
// shrinks on Shrink. Unlike the linked containers, it allocates nothing per item.
type Ring[T any] struct {
	sz, head uint
	content  []T
}

func NewRing[T any](initCap uint) *Ring[T] {
	return &Ring[T]{content: make([]T, initCap)}
}

func (u *Ring[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if end := u.head + u.sz; end <= uint(len(u.content)) {
		copy(nc, u.content[u.head:end])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:end-uint(len(u.content))])
	}
	u.content, u.head = nc, 0
}

// Shrink the backing array to fit the items.
func (u *Ring[T]) Shrink() {
	u.resize(u.sz)
}

func (u *Ring[T]) Empty() bool {
	return u.sz == 0
}

func (u *Ring[T]) Size() uint {
	return u.sz
}

// Cap is the number of items the queue can hold before growing.
func (u *Ring[T]) Cap() uint {
	return uint(len(u.content))
}

// Push item at the back.
// Time: amortized O(1)
func (u *Ring[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

// Pop the front item. Its slot is zeroed so the queue doesn't keep it alive.
func (u *Ring[T]) Pop() (item T, ok bool) {
	if u.sz != 0 {
		item, ok = u.content[u.head], true
		u.content[u.head] = *new(T)
		u.head = (u.head + 1) % uint(len(u.content))
		u.sz--
	}
	return
}

func (u *Ring[T]) Peek() (item T, ok bool) {
	if u.sz != 0 {
		item, ok = u.content[u.head], true
	}
	return
}

// Range from front to back.
func (u *Ring[T]) Range(f func(T) bool) {
	for i := range u.sz {
		if !f(u.content[(u.head+i)%uint(len(u.content))]) {
			return
		}
	}
}

func (u *Ring[T]) All() iter.Seq[T] {
	return u.Range
}

// Destroy [Queue.Destroy]. The backing array is kept for reuse.
func (u *Ring[T]) Destroy(release datastructs.Releaser[T]) {
	u.Range(func(v T) bool {
		release.Release(v)
		return true
	})
	clear(u.content)
	u.sz, u.head = 0, 0
}
