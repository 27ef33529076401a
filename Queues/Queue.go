// Package Queues holds the sequential containers. The linked ones store their values
// in Nodes chains, Ring in a circular array. A container owns its values until they
// are popped or the container is destroyed. None of them are safe for concurrent use.
package Queues

import "github.com/g-m-twostay/datastructs"

// Queue is a container that gives items back in an order decided by the
// implementation: LIFO for Stack, FIFO for Linked and Ring.
// Pop and Peek on an empty Queue return (zero value, false) and don't modify it.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, bool)
	Peek() (T, bool)
	Empty() bool
	Size() uint
	//Range over the items in the order Pop would give them. Stops when f returns false.
	Range(f func(T) bool)
	//Destroy the container, giving every remaining item to release.
	Destroy(release datastructs.Releaser[T])
}

// Deque is a double-ended Queue: Push and Pop work on the back like a Stack,
// the Front variants work on the front.
type Deque[T any] interface {
	Queue[T]
	PushFront(item T)
	PopFront() (T, bool)
	PeekFront() (T, bool)
}
