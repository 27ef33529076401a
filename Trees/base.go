package Trees

import (
	"golang.org/x/exp/constraints"
)

type base[S constraints.Unsigned] struct {
	root, free S         //free is the beginning of the linked list that contains all the free indexes; info[S].l represents next.
	ifs        []info[S] //ifs[0] is the nil node. all index are based on ifs.
}

// addFree index once. The node must already be detached.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// inOrder calls f on node indexes in in-order, or reversed in-order if reverse is true.
// Uses the parent links, so it doesn't need a stack and doesn't modify the tree.
func (u *base[S]) inOrder(f func(S) bool, reverse bool) {
	if reverse {
		for curI := u.rightmost(u.root); curI != 0 && f(curI); curI = u.prev(curI) {
		}
	} else {
		for curI := u.leftmost(u.root); curI != 0 && f(curI); curI = u.next(curI) {
		}
	}
}

// postOrder calls f on every node index, children before parents.
// f may modify neither links of nodes, nor the free list.
func (u *base[S]) postOrder(f func(S)) {
	if u.root == 0 {
		return
	}
	for curI := u.firstPost(u.root); curI != 0; curI = u.nextPost(curI) {
		f(curI)
	}
}

// height of the tree counted in nodes; 0 for an empty tree.
func (u *base[S]) height() (h uint) {
	var d uint
	for curI := u.root; curI != 0; {
		cur := u.ifs[curI]
		if d++; d > h {
			h = d
		}
		if cur.l != 0 {
			curI = cur.l
			continue
		} else if cur.r != 0 {
			curI = cur.r
			continue
		}
		// climb until a right subtree hasn't been visited yet.
		for curI != 0 {
			p := u.ifs[curI].p
			d--
			if p != 0 && u.ifs[p].l == curI && u.ifs[p].r != 0 {
				curI = u.ifs[p].r
				break
			}
			curI = p
		}
	}
	return
}

func (u *base[S]) clrIfs() {
	u.ifs = u.ifs[:1]
	u.root, u.free = 0, 0
}

// buildIfs array of size vsLen+1 to represent a complete binary tree over indexes [1, vsLen].
func buildIfs[S constraints.Unsigned](vsLen S) (root S, ifs []info[S]) {
	ifs = make([]info[S], int(vsLen)+1)
	if vsLen == 0 {
		return
	}
	st := make([][3]S, 0, 64) //[left,right,mid]
	{
		root = 1 + (vsLen-1)>>1
		st = append(st, [3]S{1, vsLen, root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] < top[2] {
			nr := top[2] - 1
			l := top[0] + (nr-top[0])>>1
			ifs[top[2]].l, ifs[l].p = l, top[2]
			st = append(st, [3]S{top[0], nr, l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			r := nl + (top[1]-nl)>>1
			ifs[top[2]].r, ifs[r].p = r, top[2]
			st = append(st, [3]S{nl, top[1], r})
		}
	}
	return
}
