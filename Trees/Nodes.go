package Trees

import "golang.org/x/exp/constraints"

// A node in the arena; fields are indexes into the same arena.
// Index 0 is the nil node and its info is always the zero value.
// For a node on the free list, l is the next free index.
type info[S constraints.Unsigned] struct {
	p, l, r S
}

// slot returns the field that holds i: the child field of i's parent, or root.
func (u *base[S]) slot(i S) *S {
	if p := u.ifs[i].p; p == 0 {
		return &u.root
	} else if u.ifs[p].l == i {
		return &u.ifs[p].l
	} else {
		return &u.ifs[p].r
	}
}

// transplant replaces the subtree rooted at a with the subtree rooted at b
// as a child of a's parent. a keeps its own links.
// Time: O(1); Space: O(1)
func (u *base[S]) transplant(a, b S) {
	*u.slot(a) = b
	if b != 0 {
		u.ifs[b].p = u.ifs[a].p
	}
}

func (u *base[S]) leftmost(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[S]) rightmost(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next node of i in in-order, 0 if i is the last.
// Time: amortized O(1); Space: O(1)
func (u *base[S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev node of i in in-order, 0 if i is the first.
func (u *base[S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// firstPost is the first node of the subtree rooted at i in post-order.
func (u *base[S]) firstPost(i S) S {
	for {
		if cur := u.ifs[i]; cur.l != 0 {
			i = cur.l
		} else if cur.r != 0 {
			i = cur.r
		} else {
			return i
		}
	}
}

// nextPost node of i in post-order, 0 if i is the last.
func (u *base[S]) nextPost(i S) S {
	p := u.ifs[i].p
	if p != 0 && u.ifs[p].l == i && u.ifs[p].r != 0 {
		return u.firstPost(u.ifs[p].r)
	}
	return p
}

// nextPre node of i in pre-order, 0 if i is the last.
func (u *base[S]) nextPre(i S) S {
	if cur := u.ifs[i]; cur.l != 0 {
		return cur.l
	} else if cur.r != 0 {
		return cur.r
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i && u.ifs[p].r != 0 {
			return u.ifs[p].r
		}
	}
	return 0
}
