package Trees

import "fmt"

// InvalidSliceError is returned when a slice handed to From isn't sorted in strictly ascending order.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T //s[Index-1] and s[Index]
}

func (e *InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v then %v", e.Index, e.Prev, e.Next)
}

// CapacityError is the value of the panic raised when a tree needs more nodes than
// its index type can address. The tree is left as it was before the call.
type CapacityError struct {
	Max uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("tree can't hold more than %d nodes", e.Max)
}
