package Trees

import (
	"iter"

	"github.com/g-m-twostay/datastructs"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values and no balancing: its
// height only depends on the order of the insertions and removals.
// T is the type of values it will hold, S is the type of the node indexes, so a
// tree can hold at most the max value of S nodes.
// Nodes live in two parallel tables, ifs for the links and vs for the values, and
// deleted nodes are recycled through a free list before the tables grow.
// Pointers returned by Get are only valid until the next call to Insert.
type BSTree[T any, S constraints.Unsigned] struct {
	base[S]
	vs []T //vs[i-1] is the value of ifs[i]
	//returns negative number if first < second, 0 if first==second, positive number if first>second.
	Cmp datastructs.Comparator[T]
	sz  S
}

// New empty tree ordered by cmp. hint is the number of nodes to reserve room for.
func New[T any, S constraints.Unsigned](cmp datastructs.Comparator[T], hint S) *BSTree[T, S] {
	return &BSTree[T, S]{base: base[S]{ifs: make([]info[S], 1, int(hint)+1)}, vs: make([]T, 0, hint), Cmp: cmp}
}

// From a given slice sorted in strictly ascending order by cmp, directly build a complete tree.
// The slice is handed to the tree and it mustn't be used by the caller later.
// Time: O(n)
func From[T any, S constraints.Unsigned](vs []T, cmp datastructs.Comparator[T]) (*BSTree[T, S], error) {
	if uint64(len(vs)) > uint64(^S(0)) {
		return nil, &CapacityError{uint64(^S(0))}
	}
	for i := 1; i < len(vs); i++ {
		if cmp(vs[i-1], vs[i]) >= 0 {
			return nil, &InvalidSliceError[T]{i, vs[i-1], vs[i]}
		}
	}
	root, ifs := buildIfs(S(len(vs)))
	return &BSTree[T, S]{base: base[S]{root: root, ifs: ifs}, vs: vs, Cmp: cmp, sz: S(len(vs))}, nil
}

// find the index of the node equal to v, 0 if there's none.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if order := u.Cmp(v, u.vs[curI-1]); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// alloc a detached node holding v, reusing a free index first.
// The tables are only replaced once both appends succeeded.
func (u *BSTree[T, S]) alloc(v T) (i S) {
	if i = u.popFree(); i != 0 {
		u.vs[i-1] = v
		return
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(&CapacityError{uint64(^S(0))})
	}
	ifs := append(u.ifs, info[S]{})
	vs := append(u.vs, v)
	u.ifs, u.vs = ifs, vs
	return S(len(u.ifs) - 1)
}

// Insert [Tree.Insert].
// The new node is allocated before any link is written, so the tree is unchanged if that fails.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Insert(v T) bool {
	var p S
	left := false
	for curI := u.root; curI != 0; {
		if order := u.Cmp(v, u.vs[curI-1]); order < 0 {
			p, left, curI = curI, true, u.ifs[curI].l
		} else if order > 0 {
			p, left, curI = curI, false, u.ifs[curI].r
		} else {
			return false
		}
	}
	i := u.alloc(v)
	u.ifs[i] = info[S]{p: p}
	if p == 0 {
		u.root = i
	} else if left {
		u.ifs[p].l = i
	} else {
		u.ifs[p].r = i
	}
	u.sz++
	return true
}

// Extract removes the element equal to v and returns the stored element, which the tree no longer owns.
// A node with two children takes the value of its in-order successor, and the successor
// node, which has no left child, is the one unlinked.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Extract(v T) (old T, ok bool) {
	curI := u.find(v)
	if curI == 0 {
		return
	}
	old, ok = u.vs[curI-1], true
	if cur := u.ifs[curI]; cur.l == 0 {
		u.transplant(curI, cur.r)
	} else if cur.r == 0 {
		u.transplant(curI, cur.l)
	} else {
		si := u.leftmost(cur.r)
		u.vs[curI-1] = u.vs[si-1]
		u.transplant(si, u.ifs[si].r)
		curI = si
	}
	u.vs[curI-1] = *new(T)
	u.addFree(curI)
	u.sz--
	return
}

// Remove [Tree.Remove].
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Remove(v T) bool {
	_, ok := u.Extract(v)
	return ok
}

// Get the pointer to the element that's equal to v in the tree, nil if there's none.
// The element mustn't be modified in a way that changes its order.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Get(v T) *T {
	if curI := u.find(v); curI != 0 {
		return &u.vs[curI-1]
	}
	return nil
}

// Find the element that's equal to v in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Find(v T) (T, bool) {
	if curI := u.find(v); curI != 0 {
		return u.vs[curI-1], true
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Scan the whole tree in pre-order for an element equal to v, without relying on the
// order of the tree. Only useful for a tree whose order was broken by modifying
// elements through Get; use Get otherwise.
// Time: O(n); Space: O(1)
func (u *BSTree[T, S]) Scan(v T) *T {
	for curI := u.root; curI != 0; curI = u.nextPre(curI) {
		if u.Cmp(v, u.vs[curI-1]) == 0 {
			return &u.vs[curI-1]
		}
	}
	return nil
}

// Root element of the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) Root() (T, bool) {
	if u.root != 0 {
		return u.vs[u.root-1], true
	}
	return *new(T), false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Minimum() (T, bool) {
	if curI := u.leftmost(u.root); curI != 0 {
		return u.vs[curI-1], true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Maximum() (T, bool) {
	if curI := u.rightmost(u.root); curI != 0 {
		return u.vs[curI-1], true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.Cmp(v, u.vs[curI-1]) <= 0 {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.vs[p-1], true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Successor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.Cmp(v, u.vs[curI-1]) < 0 {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.vs[p-1], true
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) Size() uint {
	return uint(u.sz)
}

// Height of the tree, the number of nodes on its longest root to leaf path.
// Time: O(n); Space: O(1)
func (u *BSTree[T, S]) Height() uint {
	return u.height()
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(1)
func (u *BSTree[T, S]) InOrder(f func(T) bool, reverse bool) {
	u.inOrder(func(i S) bool {
		return f(u.vs[i-1])
	}, reverse)
}

// All elements in ascending order.
func (u *BSTree[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.InOrder(yield, false)
	}
}

// Backward is All in descending order.
func (u *BSTree[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.InOrder(yield, true)
	}
}

// Destroy [Tree.Destroy]
// Elements are released in post-order, children before parents. The tree keeps its
// allocated tables and can be used again.
// Time: O(n); Space: O(1)
func (u *BSTree[T, S]) Destroy(release datastructs.Releaser[T]) {
	if release != nil {
		u.postOrder(func(i S) {
			release(u.vs[i-1])
		})
	}
	clear(u.vs)
	u.vs = u.vs[:0]
	u.clrIfs()
	u.sz = 0
}

// Corrupt [Tree.Corrupt]
// Checks that every child links back to its parent, that the elements are in strictly
// ascending order, that no node is reachable twice, and that reachable and free nodes
// together account for every index.
// Time: O(n); Space: O(n)
func (u *BSTree[T, S]) Corrupt() bool {
	n := uint(len(u.ifs))
	if u.ifs[0] != (info[S]{}) || n != uint(len(u.vs))+1 || uint(u.root) >= n || u.ifs[u.root].p != 0 {
		return true
	}
	seen := datastructs.NewBitArray(n)
	var reached uint
	//[node, lower bound, upper bound]; bounds are node indexes, 0 for none.
	for st := [][3]S{{u.root, 0, 0}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		curI := top[0]
		if curI == 0 {
			continue
		}
		if seen.Get(uint(curI)) {
			return true
		}
		seen.Set(uint(curI))
		reached++
		v := u.vs[curI-1]
		if top[1] != 0 && u.Cmp(u.vs[top[1]-1], v) >= 0 || top[2] != 0 && u.Cmp(v, u.vs[top[2]-1]) >= 0 {
			return true
		}
		cur := u.ifs[curI]
		for _, c := range [2]S{cur.l, cur.r} {
			if uint(c) >= n || c != 0 && u.ifs[c].p != curI {
				return true
			}
		}
		st = append(st, [3]S{cur.l, top[1], curI}, [3]S{cur.r, curI, top[2]})
	}
	if reached != uint(u.sz) {
		return true
	}
	for curI := u.free; curI != 0; curI = u.ifs[curI].l {
		if uint(curI) >= n || seen.Get(uint(curI)) {
			return true
		}
		seen.Set(uint(curI))
	}
	return seen.Count() != n-1
}
