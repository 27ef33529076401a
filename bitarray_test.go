package datastructs

import "testing"

func TestBitArray(t *testing.T) {
	b := NewBitArray(130)
	if b.Len() < 130 {
		t.Errorf("len is %d, want at least 130", b.Len())
	}
	for _, i := range []uint{0, 63, 64, 129} {
		if b.Get(i) {
			t.Errorf("bit %d set before Set", i)
		}
		b.Set(i)
		if !b.Get(i) {
			t.Errorf("bit %d not set after Set", i)
		}
	}
	if b.Count() != 4 {
		t.Errorf("count is %d, want 4", b.Count())
	}
	b.Clr(64)
	if b.Get(64) || b.Count() != 3 {
		t.Errorf("bit 64 not cleared")
	}
}

func TestComparator(t *testing.T) {
	c := Ordered[int]()
	if c(1, 2) >= 0 || c(2, 1) <= 0 || c(3, 3) != 0 {
		t.Error("wrong natural order")
	}
	r := Reverse(c)
	if r(1, 2) <= 0 || r(2, 1) >= 0 {
		t.Error("wrong reversed order")
	}
	var n int
	var rel Releaser[int]
	rel.Release(1)
	rel = func(v int) { n += v }
	rel.Release(2)
	if n != 2 {
		t.Errorf("released %d, want 2", n)
	}
}
