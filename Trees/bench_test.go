package Trees

import (
	"cmp"
	"testing"
)

const (
	bAddN uint32 = 1 << 20
)

var sideEff bool

func create(b *testing.B) (*BSTree[int, uint32], []int) {
	b.Helper()
	tree := New[int, uint32](cmp.Compare[int], bAddN)
	all := make([]int, 0, bAddN)
	for range bAddN {
		a := _R.Int()
		tree.Insert(a)
		all = append(all, a)
	}
	return tree, all
}

func BenchmarkInsert0(b *testing.B) {
	for range b.N {
		tree := New[int](cmp.Compare[int], uint32(0))
		for range bAddN {
			tree.Insert(_R.Int())
		}
	}
}

func BenchmarkInsert1(b *testing.B) {
	for range b.N {
		tree := New[int](cmp.Compare[int], bAddN)
		for range bAddN {
			tree.Insert(_R.Int())
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func BenchmarkHas(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Has(all[i%len(all)])
	}
}

func BenchmarkScan(b *testing.B) {
	tree, all := create(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Scan(all[i%len(all)]) != nil
	}
}
