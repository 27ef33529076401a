// Package TreeSet is an ordered Set backed by a single binary search tree.
package TreeSet

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/datastructs"
	"github.com/g-m-twostay/datastructs/Sets"
	"github.com/g-m-twostay/datastructs/Trees"
	"github.com/vmihailenco/msgpack/v5"
)

// TreeSet is a thin view over one Trees.BSTree: it has no state of its own and
// shares the tree's lifetime. Two elements are equal when the comparator says so.
// The zero value can't be used; create it with New or Of.
type TreeSet[E any] struct {
	tree *Trees.BSTree[E, uint]
}

// New empty set ordered by c.
func New[E any](c datastructs.Comparator[E]) *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E, uint](c, 0)}
}

// Of the given elements in their natural order.
func Of[E cmp.Ordered](es ...E) *TreeSet[E] {
	u := New(datastructs.Ordered[E]())
	for _, e := range es {
		u.Add(e)
	}
	return u
}

func (u *TreeSet[E]) Add(e E) bool {
	return u.tree.Insert(e)
}

func (u *TreeSet[E]) Contains(e E) bool {
	return u.tree.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.tree.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return u.tree.Size()
}

// Min element of the set.
func (u *TreeSet[E]) Min() (E, bool) {
	return u.tree.Minimum()
}

// Max element of the set.
func (u *TreeSet[E]) Max() (E, bool) {
	return u.tree.Maximum()
}

// Range in ascending order.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.tree.InOrder(f, false)
}

// All elements in ascending order.
func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.tree.All()
}

// Destroy the set and its tree.
func (u *TreeSet[E]) Destroy(release datastructs.Releaser[E]) {
	u.tree.Destroy(release)
}

func (u *TreeSet[E]) AddAll(other Sets.Set[E]) (n uint) {
	other.Range(func(e E) bool {
		if u.Add(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E]) RemoveAll(other Sets.Set[E]) (n uint) {
	if other == Sets.Set[E](u) {
		n = u.Size()
		u.Destroy(nil)
		return
	}
	other.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq returns whether both sets hold the same elements, as decided by u's comparator.
func (u *TreeSet[E]) Eq(other Sets.Set[E]) bool {
	if u.Size() != other.Size() {
		return false
	}
	eq := true
	other.Range(func(e E) bool {
		eq = u.Contains(e)
		return eq
	})
	return eq
}

// EncodeMsgpack writes the set as an array in ascending order.
func (u *TreeSet[E]) EncodeMsgpack(enc *msgpack.Encoder) (err error) {
	if err = enc.EncodeArrayLen(int(u.Size())); err != nil {
		return
	}
	u.Range(func(e E) bool {
		err = enc.Encode(e)
		return err == nil
	})
	return
}

// DecodeMsgpack adds the elements of an encoded array to u, which must have been created with New or Of.
func (u *TreeSet[E]) DecodeMsgpack(dec *msgpack.Decoder) error {
	if u.tree == nil {
		return &NoComparatorError{}
	}
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	for range n {
		var e E
		if err = dec.Decode(&e); err != nil {
			return err
		}
		u.Add(e)
	}
	return nil
}

// NoComparatorError is returned when decoding into a TreeSet that wasn't created with New or Of.
type NoComparatorError struct {
}

func (e *NoComparatorError) Error() string {
	return "TreeSet has no comparator: create it with New before decoding."
}
