// Package block provides the owned backing storage of a vector.
package block

// Block exclusively owns one contiguous run of element slots of fixed
// capacity. It never tracks how many slots hold live values; that is the
// owner's job. The zero value is a valid block of capacity 0.
//
// Block is an unchecked primitive: no method validates slot indices, and
// instances must have exactly one owner at a time.
type Block[T any] struct {
	slots []T
}

// Acquire returns a block holding exactly capacity default-valued slots.
// Capacity 0 yields a valid block without storage.
func Acquire[T any](capacity int) Block[T] {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	if capacity == 0 {
		return Block[T]{}
	}
	return Block[T]{slots: make([]T, capacity)}
}

// Cap returns the number of slots.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// Slots returns the raw slot array. Writes through it are visible to every
// holder of the same view.
func (b *Block[T]) Slots() []T {
	return b.slots
}

// Swap exchanges ownership of storage between two blocks in constant time.
// No elements move.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the storage, leaving the block in the capacity-0 state.
// The slots become collectable once no other view of them remains.
func (b *Block[T]) Release() {
	b.slots = nil
}
