package Nodes

import "iter"

// step returns the neighbour of n in the given direction.
func step[T any](n *DNode[T], reverse bool) *DNode[T] {
	if reverse {
		return n.Prev
	}
	return n.Next
}

// CountS nodes in the chain starting at n.
func CountS[T any](n *SNode[T]) (c uint) {
	for ; n != nil; n = n.Next {
		c++
	}
	return
}

// CountD nodes in the chain starting at n, following Prev if reverse is true.
func CountD[T any](n *DNode[T], reverse bool) (c uint) {
	for ; n != nil; n = step(n, reverse) {
		c++
	}
	return
}

// MapS calls f on every node starting at n. Stops when f returns false.
// f may not unlink the node it is given.
func MapS[T any](n *SNode[T], f func(*SNode[T]) bool) {
	for ; n != nil && f(n); n = n.Next {
	}
}

// MapD calls f on every node starting at n, following Prev if reverse is true.
// Stops when f returns false.
func MapD[T any](n *DNode[T], f func(*DNode[T]) bool, reverse bool) {
	for ; n != nil && f(n); n = step(n, reverse) {
	}
}

// MapDataS is MapS over the values.
func MapDataS[T any](n *SNode[T], f func(T) bool) {
	for ; n != nil && f(n.V); n = n.Next {
	}
}

// MapDataD is MapD over the values.
func MapDataD[T any](n *DNode[T], f func(T) bool, reverse bool) {
	for ; n != nil && f(n.V); n = step(n, reverse) {
	}
}

// SeqS iterates over the values of the chain starting at n.
func SeqS[T any](n *SNode[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		MapDataS(n, yield)
	}
}

// SeqD iterates over the values of the chain starting at n.
func SeqD[T any](n *DNode[T], reverse bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		MapDataD(n, yield, reverse)
	}
}

// IndexS returns the i-th node counting from n as 0, or nil if the chain is shorter.
func IndexS[T any](n *SNode[T], i uint) *SNode[T] {
	for ; n != nil && i > 0; i-- {
		n = n.Next
	}
	return n
}

// IndexD returns the i-th node counting from n as 0 following Next, or nil if the chain is shorter.
func IndexD[T any](n *DNode[T], i uint) *DNode[T] {
	for ; n != nil && i > 0; i-- {
		n = n.Next
	}
	return n
}

// CutS detaches the nodes at positions [start, end] from the chain starting at head.
// Returns the head of the remaining chain and the head of the detached chain, whose
// last node has Next==nil. If start>end or end is past the chain, nothing changes and cut is nil.
func CutS[T any](head *SNode[T], start, end uint) (rest, cut *SNode[T]) {
	if start > end {
		return head, nil
	}
	var before *SNode[T]
	if start > 0 {
		if before = IndexS(head, start-1); before == nil {
			return head, nil
		}
		cut = before.Next
	} else {
		cut = head
	}
	last := IndexS(cut, end-start)
	if last == nil {
		return head, nil
	}
	if before == nil {
		rest = last.Next
	} else {
		before.Next = last.Next
		rest = head
	}
	last.Next = nil
	return
}

// CutD is CutS for double-link chains. The detached chain has cut.Prev==nil and
// its last node has Next==nil; the neighbours of the range are linked to each other.
func CutD[T any](head *DNode[T], start, end uint) (rest, cut *DNode[T]) {
	if start > end {
		return head, nil
	}
	if cut = IndexD(head, start); cut == nil {
		return head, nil
	}
	last := IndexD(cut, end-start)
	if last == nil {
		return head, nil
	}
	before, after := cut.Prev, last.Next
	if after != nil {
		after.Prev = before
	}
	if before != nil {
		before.Next = after
	}
	if start == 0 {
		rest = after
	} else {
		rest = head
	}
	cut.Prev, last.Next = nil, nil
	return
}
