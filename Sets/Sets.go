package Sets

import "github.com/g-m-twostay/datastructs"

// Set of unique elements. What makes two elements equal depends on the implementation.
type Set[E any] interface {
	//Add e to the set. Returns true if e wasn't in the set.
	Add(E) bool
	//Contains e.
	Contains(E) bool
	//Remove e from the set. Returns true if e was in the set.
	Remove(E) bool
	Size() uint
	//Range calls f on every element until f returns false.
	Range(func(E) bool)
	//Destroy the set, giving every element to the releaser.
	Destroy(datastructs.Releaser[E])
}

type ExtendedSet[E any] interface {
	Set[E]
	//AddAll elements of the other set. Returns the number of elements added.
	AddAll(Set[E]) uint
	//RemoveAll elements of the other set. Returns the number of elements removed.
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
}
