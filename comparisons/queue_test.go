package comparisons

import (
	"testing"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/datastructs/Queues"
	"github.com/golang-collections/collections/queue"
	"github.com/golang-collections/collections/stack"
)

const seqN = 1024

func BenchmarkStack_Stack(b *testing.B) {
	s := Queues.NewStack[int]()
	for range b.N {
		for i := range seqN {
			s.Push(i)
		}
		for range seqN {
			s.Pop()
		}
	}
}

func BenchmarkStack_Collections(b *testing.B) {
	s := stack.New()
	for range b.N {
		for i := range seqN {
			s.Push(i)
		}
		for range seqN {
			s.Pop()
		}
	}
}

func BenchmarkStack_ArrayStack(b *testing.B) {
	s := arraystack.New()
	for range b.N {
		for i := range seqN {
			s.Push(i)
		}
		for range seqN {
			s.Pop()
		}
	}
}

func BenchmarkQueue_Linked(b *testing.B) {
	q := Queues.NewLinked[int]()
	for range b.N {
		for i := range seqN {
			q.Push(i)
		}
		for range seqN {
			q.Pop()
		}
	}
}

func BenchmarkQueue_Deque(b *testing.B) {
	q := Queues.NewLinkedDeque[int]()
	for range b.N {
		for i := range seqN {
			q.PushBack(i)
		}
		for range seqN {
			q.PopFront()
		}
	}
}

func BenchmarkQueue_Collections(b *testing.B) {
	q := queue.New()
	for range b.N {
		for i := range seqN {
			q.Enqueue(i)
		}
		for range seqN {
			q.Dequeue()
		}
	}
}

func BenchmarkQueue_LinkedListQueue(b *testing.B) {
	q := linkedlistqueue.New()
	for range b.N {
		for i := range seqN {
			q.Enqueue(i)
		}
		for range seqN {
			q.Dequeue()
		}
	}
}
