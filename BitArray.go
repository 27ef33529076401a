package datastructs

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all cleared.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed length bit set. The zero value holds 0 bits.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of set bits.
func (u BitArray) Count() (c uint) {
	for _, w := range u.bits {
		c += uint(bits.OnesCount(w))
	}
	return
}
