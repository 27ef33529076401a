package Trees

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

var _R = rand.New(rand.NewSource(0))

var _ Tree[int] = (*BSTree[int, uint])(nil)

const (
	tAddN        = 40000
	tAddValRange = 80000
)

func newTree() *BSTree[int, uint32] {
	return New[int, uint32](cmp.Compare[int], 1)
}

func fill(t *testing.T, tree *BSTree[int, uint32], n, valRange int) (a []int, content map[int]struct{}) {
	t.Helper()
	content = make(map[int]struct{})
	a = make([]int, n)
	for i := range a {
		a[i] = _R.Intn(valRange)
	}
	for _, b := range a {
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert of key %v returned %v, present before: %v", b, c, in)
		}
		content[b] = struct{}{}
	}
	return
}

func check(t *testing.T, tree *BSTree[int, uint32], content map[int]struct{}) {
	t.Helper()
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	s := slices.Collect(tree.All())
	if len(s) != len(content) {
		t.Errorf("in-order gave %d keys, want %d", len(s), len(content))
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if !slices.IsSorted(s) {
		t.Errorf("in-order is not sorted")
	}
}

func TestBSTree_Insert(t *testing.T) {
	tree := newTree()
	_, content := fill(t, tree, tAddN, tAddValRange)
	check(t, tree, content)
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for range 1000 {
		if v := tAddValRange + _R.Intn(tAddValRange); tree.Has(v) {
			t.Errorf("tree has never inserted key %v", v)
		}
	}
}

func TestBSTree_Duplicate(t *testing.T) {
	tree := newTree()
	if !tree.Insert(7) {
		t.Error("first insert failed")
	}
	if tree.Insert(7) {
		t.Error("second insert succeeded")
	}
	if tree.Size() != 1 {
		t.Errorf("tree size is %d, want 1", tree.Size())
	}
	type pair struct{ k, v int }
	pt := New[pair, uint8](func(a, b pair) int { return cmp.Compare(a.k, b.k) }, 0)
	pt.Insert(pair{1, 1})
	if pt.Insert(pair{1, 2}) {
		t.Error("insert of equal key succeeded")
	}
	if p, _ := pt.Find(pair{k: 1}); p.v != 1 {
		t.Errorf("equal key replaced stored value: %v", p)
	}
}

func TestBSTree_Remove(t *testing.T) {
	tree := newTree()
	if tree.Remove(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a, content := fill(t, tree, tAddN, tAddValRange)
	for i := range _R.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		if tree.Has(a[i]) {
			t.Errorf("tree still has deleted key %v", a[i])
		}
		delete(content, a[i])
	}
	check(t, tree, content)
}

func TestBSTree_RemoveCases(t *testing.T) {
	//        50
	//     20      90
	//   10  30  70
	//         40  80
	cases := []struct {
		name string
		v    int
	}{
		{"leaf", 10},
		{"one child", 30},
		{"two children, successor is right child", 20},
		{"two children, deep successor", 50},
		{"root chain", 90},
	}
	for _, c := range cases {
		tree := newTree()
		content := make(map[int]struct{})
		for _, v := range []int{50, 20, 90, 10, 30, 70, 40, 80} {
			tree.Insert(v)
			content[v] = struct{}{}
		}
		if !tree.Remove(c.v) {
			t.Errorf("%s: failed to delete key %v", c.name, c.v)
		}
		delete(content, c.v)
		check(t, tree, content)
	}
	tree := newTree()
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}
	for _, v := range []int{2, 3, 1} {
		tree.Remove(v)
	}
	if tree.Size() != 0 || tree.root != 0 || tree.Corrupt() {
		t.Error("tree not empty after deleting everything")
	}
}

func TestBSTree_AddDel(t *testing.T) {
	tree := newTree()
	oracle := btree.NewOrderedG[int](8)
	for range 4 * tAddN {
		v := _R.Intn(tAddValRange / 8)
		if _R.Intn(3) == 0 {
			_, had := oracle.Delete(v)
			if tree.Remove(v) != had {
				t.Fatalf("removal of %v disagrees with btree", v)
			}
		} else {
			_, had := oracle.ReplaceOrInsert(v)
			if tree.Insert(v) == had {
				t.Fatalf("insertion of %v disagrees with btree", v)
			}
		}
	}
	if int(tree.Size()) != oracle.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), oracle.Len())
	}
	var want []int
	oracle.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if got := slices.Collect(tree.All()); !slices.Equal(got, want) {
		t.Error("in-order differs from btree")
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	// freed nodes are reused before the tables grow.
	if l := uint(len(tree.ifs)) - 1; l != tree.Size()+tree.freeLen() {
		t.Errorf("%d nodes allocated, %d live and %d free", l, tree.Size(), tree.freeLen())
	}
}

func (u *base[S]) freeLen() (n uint) {
	for i := u.free; i != 0; i = u.ifs[i].l {
		n++
	}
	return
}

func TestBSTree_InOrder(t *testing.T) {
	tree := newTree()
	_, content := fill(t, tree, tAddN/4, tAddValRange)
	for range 10 {
		var s []int
		tree.InOrder(func(v int) bool {
			s = append(s, v)
			return _R.Intn(int(tree.Size()/2)) != 0
		}, false)
		if !slices.IsSorted(s) {
			t.Errorf("partial in-order is not sorted")
		}
	}
	s := slices.Collect(tree.Backward())
	if len(s) != len(content) {
		t.Errorf("reverse in-order gave %d keys, want %d", len(s), len(content))
	}
	slices.Reverse(s)
	if !slices.IsSorted(s) {
		t.Errorf("reverse in-order is not sorted")
	}
}

func TestBSTree_Neighbours(t *testing.T) {
	tree := newTree()
	oracle := redblacktree.NewWithIntComparator()
	for range tAddN / 4 {
		v := _R.Intn(tAddValRange)
		tree.Insert(v)
		oracle.Put(v, nil)
	}
	if m, ok := tree.Minimum(); !ok || m != oracle.Left().Key.(int) {
		t.Errorf("minimum is %v, want %v", m, oracle.Left().Key)
	}
	if m, ok := tree.Maximum(); !ok || m != oracle.Right().Key.(int) {
		t.Errorf("maximum is %v, want %v", m, oracle.Right().Key)
	}
	for range 1000 {
		v := _R.Intn(tAddValRange+2) - 1
		p, ok := tree.Predecessor(v)
		if n, found := oracle.Floor(v - 1); found != ok || (ok && n.Key.(int) != p) {
			t.Errorf("predecessor of %v is (%v, %v)", v, p, ok)
		}
		s, ok := tree.Successor(v)
		if n, found := oracle.Ceiling(v + 1); found != ok || (ok && n.Key.(int) != s) {
			t.Errorf("successor of %v is (%v, %v)", v, s, ok)
		}
	}
}

func TestBSTree_Empty(t *testing.T) {
	tree := newTree()
	if _, ok := tree.Minimum(); ok {
		t.Error("empty tree has a minimum")
	}
	if _, ok := tree.Maximum(); ok {
		t.Error("empty tree has a maximum")
	}
	if _, ok := tree.Root(); ok {
		t.Error("empty tree has a root")
	}
	if tree.Get(1) != nil || tree.Scan(1) != nil || tree.Has(1) {
		t.Error("empty tree finds a key")
	}
	if _, ok := tree.Predecessor(1); ok {
		t.Error("empty tree has a predecessor")
	}
	if _, ok := tree.Extract(1); ok {
		t.Error("empty tree extracts a key")
	}
	if tree.Size() != 0 || tree.Height() != 0 || tree.Corrupt() {
		t.Error("queries changed the empty tree")
	}
	tree.InOrder(func(int) bool {
		t.Error("empty tree visits a key")
		return true
	}, false)
}

func TestBSTree_Root(t *testing.T) {
	tree := newTree()
	for _, v := range []int{50, 20, 10, 90, 70} {
		tree.Insert(v)
	}
	if r, _ := tree.Root(); r != 50 {
		t.Errorf("root is %d, want 50", r)
	}
	tree.Remove(50)
	if r, _ := tree.Root(); r != 70 {
		t.Errorf("root is %d after removing it, want its successor 70", r)
	}
}

func TestBSTree_Scan(t *testing.T) {
	tree := newTree()
	_, content := fill(t, tree, 1000, 5000)
	for k := range content {
		if p := tree.Scan(k); p == nil || *p != k {
			t.Errorf("scan does not find key %v", k)
		}
	}
	if tree.Scan(-1) != nil {
		t.Error("scan finds never inserted key")
	}
	// break the order through Get: Has can no longer see the key, Scan still does.
	k, _ := tree.Minimum()
	*tree.Get(k) = 1 << 20
	if tree.Scan(1<<20) == nil {
		t.Error("scan does not find the modified key")
	}
	if !tree.Corrupt() {
		t.Error("broken order not reported")
	}
}

func TestBSTree_Extract(t *testing.T) {
	type pair struct{ k, v int }
	tree := New[pair, uint16](func(a, b pair) int { return cmp.Compare(a.k, b.k) }, 4)
	for i := range 10 {
		tree.Insert(pair{i, i * i})
	}
	if p, ok := tree.Extract(pair{k: 3}); !ok || p.v != 9 {
		t.Errorf("extracted (%v, %v), want ({3 9}, true)", p, ok)
	}
	if _, ok := tree.Find(pair{k: 3}); ok {
		t.Error("extracted key still present")
	}
}

func TestBSTree_Destroy(t *testing.T) {
	tree := newTree()
	_, content := fill(t, tree, 5000, 10000)
	released := make(map[int]int)
	tree.Destroy(func(v int) { released[v]++ })
	if len(released) != len(content) {
		t.Errorf("released %d keys, want %d", len(released), len(content))
	}
	for k, c := range released {
		if _, in := content[k]; !in || c != 1 {
			t.Errorf("key %v released %d times", k, c)
		}
	}
	if tree.Size() != 0 {
		t.Error("tree not empty after destroy")
	}
	for k := range content {
		if tree.Has(k) {
			t.Errorf("tree has key %v after destroy", k)
		}
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt after destroy")
	}
	_, content = fill(t, tree, 100, 1000)
	check(t, tree, content)
	tree.Destroy(nil)
	if tree.Size() != 0 {
		t.Error("tree not empty after destroy")
	}
}

func TestFrom(t *testing.T) {
	vs := make([]int, 1000)
	for i := range vs {
		vs[i] = i * 2
	}
	tree, err := From[int, uint16](vs, cmp.Compare[int])
	if err != nil {
		t.Fatal(err)
	}
	content := make(map[int]struct{})
	for i := range 1000 {
		content[i*2] = struct{}{}
	}
	if tree.Corrupt() {
		t.Fatal("built tree is corrupt")
	}
	if h := tree.Height(); h != 10 {
		t.Errorf("built tree height is %d, want 10", h)
	}
	if !tree.Insert(5) || !tree.Remove(0) {
		t.Error("built tree can't be modified")
	}
	content[5] = struct{}{}
	delete(content, 0)
	if int(tree.Size()) != len(content) || tree.Corrupt() {
		t.Error("built tree broken after modification")
	}

	_, err = From[int, uint16]([]int{1, 2, 2}, cmp.Compare[int])
	var ise *InvalidSliceError[int]
	if !errors.As(err, &ise) || ise.Index != 2 {
		t.Errorf("wrong error for repeated element: %v", err)
	}
	_, err = From[int, uint8](make([]int, 256), cmp.Compare[int])
	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Errorf("wrong error for oversized slice: %v", err)
	}
	if empty, err := From[int, uint8](nil, cmp.Compare[int]); err != nil || empty.Size() != 0 || empty.Corrupt() {
		t.Error("empty build failed")
	}
}

func TestBSTree_Capacity(t *testing.T) {
	tree := New[int, uint8](cmp.Compare[int], 0)
	for i := range 255 {
		if !tree.Insert(i) {
			t.Fatalf("failed to insert key %v", i)
		}
	}
	func() {
		defer func() {
			if _, ok := recover().(*CapacityError); !ok {
				t.Error("no capacity panic")
			}
		}()
		tree.Insert(255)
	}()
	if tree.Size() != 255 || tree.Has(255) || tree.Corrupt() {
		t.Error("failed insertion modified the tree")
	}
	tree.Remove(0)
	if !tree.Insert(255) {
		t.Error("freed node not reused")
	}
}

func TestBSTree_Height(t *testing.T) {
	tree := newTree()
	for i := range 100 {
		tree.Insert(i)
	}
	if h := tree.Height(); h != 100 {
		t.Errorf("height of a chain is %d, want 100", h)
	}
	tree.Destroy(nil)
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(v)
	}
	if h := tree.Height(); h != 3 {
		t.Errorf("height is %d, want 3", h)
	}
}

func TestBSTree_Corrupt(t *testing.T) {
	tree := newTree()
	for _, v := range []int{4, 2, 6, 1, 3} {
		tree.Insert(v)
	}
	i := tree.find(3)
	tree.ifs[i].p = tree.find(6)
	if !tree.Corrupt() {
		t.Error("wrong parent not reported")
	}
	tree.ifs[i].p = tree.find(2)
	if tree.Corrupt() {
		t.Error("fixed tree reported")
	}
	tree.ifs[tree.find(6)].l = tree.root
	if !tree.Corrupt() {
		t.Error("cycle not reported")
	}
}
