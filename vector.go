// Package vec implements a generic, contiguous, growable sequence container
// with explicit capacity control.
//
// A [Vector] keeps its elements in one backing buffer that it exclusively
// owns. Logical size and storage capacity are tracked separately: shrinking
// operations ([Vector.Clear], [Vector.PopBack], truncating [Vector.Resize])
// never release storage, so a drained vector can be refilled without
// reallocating. Growth always builds a replacement buffer first, relocates
// the live elements into it and only then swaps ownership, so a failed
// allocation never leaves a vector half-mutated.
//
// Vectors are not thread-safe. Concurrent use, including read-while-write,
// requires a lock owned by the caller.
package vec

import (
	"iter"
	"slices"

	"github.com/teenjuna/vec/internal/block"
)

// Vector is a growable sequence of elements of type T.
//
// The zero value is not ready to use; construct vectors with [New],
// [NewSize], [NewFill], [Of] or [WithCapacity].
type Vector[T any] struct {
	size    int
	data    block.Block[T]
	metrics *metrics
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of size default-valued elements.
func NewSize[T any](size int) *Vector[T] {
	if size < 0 {
		panic("size can't be < 0")
	}
	return &Vector[T]{
		size: size,
		data: block.Acquire[T](size),
	}
}

// NewFill returns a vector of size copies of value.
func NewFill[T any](size int, value T) *Vector[T] {
	v := NewSize[T](size)
	slots := v.data.Slots()
	for i := range slots {
		slots[i] = value
	}
	return v
}

// Of returns a vector holding the given items in order.
func Of[T any](items ...T) *Vector[T] {
	v := NewSize[T](len(items))
	copy(v.data.Slots(), items)
	return v
}

// WithCapacity returns an empty vector whose storage already holds room for
// capacity elements, so the next capacity pushes never reallocate.
func WithCapacity[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	return &Vector[T]{
		data: block.Acquire[T](capacity),
	}
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements the current storage can hold.
func (v *Vector[T]) Capacity() int {
	return v.data.Cap()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns a pointer to the element at index, or an [*IndexError] when
// index is outside [0, size). The pointer stays valid until the next
// operation that grows or swaps the storage.
func (v *Vector[T]) At(index int) (*T, error) {
	if index < 0 || index >= v.size {
		return nil, &IndexError{Index: index, Size: v.size}
	}
	return &v.data.Slots()[index], nil
}

// Get returns the element at index.
//
// Unchecked: index must be in [0, size). A violation is a bug in the caller
// and panics instead of returning an error.
func (v *Vector[T]) Get(index int) T {
	return v.live()[index]
}

// Set stores item at index. Unchecked like [Vector.Get].
func (v *Vector[T]) Set(index int, item T) {
	v.live()[index] = item
}

// Ref returns a pointer to the element at index. Unchecked like
// [Vector.Get]; the pointer stays valid until the storage grows or swaps.
func (v *Vector[T]) Ref(index int) *T {
	return &v.live()[index]
}

// Reserve grows the storage to hold exactly newCapacity elements,
// relocating the live elements into the new buffer. It does nothing when
// newCapacity does not exceed the current capacity; it never shrinks.
func (v *Vector[T]) Reserve(newCapacity int) {
	if newCapacity > v.data.Cap() {
		v.grow(newCapacity)
	}
}

// Resize changes the number of live elements to newSize.
//
// Shrinking truncates logically and keeps the storage. Growing within
// capacity re-exposes slots as default values. Growing past capacity
// reallocates to max(newSize, capacity*2) before exposing the new slots.
func (v *Vector[T]) Resize(newSize int) {
	switch {
	case newSize < 0:
		panic("size can't be < 0")
	case newSize <= v.size:
		v.size = newSize
	case newSize <= v.data.Cap():
		// Slots past the old size may hold values from before an earlier
		// truncation; they come back as defaults.
		clear(v.data.Slots()[v.size:newSize])
		v.size = newSize
	default:
		v.grow(max(newSize, v.data.Cap()*2))
		v.size = newSize
	}
}

// PushBack appends item, doubling the capacity when the storage is full.
// Appending is amortized O(1).
func (v *Vector[T]) PushBack(item T) {
	if v.size == v.data.Cap() {
		v.grow(nextCap(v.data.Cap()))
	}
	v.data.Slots()[v.size] = item
	v.size++
	v.metrics.observePush()
}

// Insert places item before index, which must be in [0, size]; index ==
// size appends. Elements at and after index shift one slot toward the
// tail, keeping their relative order. Returns the index of the inserted
// element.
func (v *Vector[T]) Insert(index int, item T) int {
	if index < 0 || index > v.size {
		panic("insert index out of range")
	}
	if v.size == v.data.Cap() {
		// Full: relocate around the hole instead of shifting after a grow.
		next := block.Acquire[T](nextCap(v.data.Cap()))
		slots := v.data.Slots()
		dst := next.Slots()
		copy(dst, slots[:index])
		dst[index] = item
		copy(dst[index+1:], slots[index:v.size])
		v.data.Swap(&next)
		next.Release()
		v.metrics.observeGrow(v.data.Cap(), v.size)
	} else {
		slots := v.data.Slots()
		copy(slots[index+1:v.size+1], slots[index:v.size])
		slots[index] = item
	}
	v.size++
	v.metrics.observeInsert()
	return index
}

// Erase removes the element at index, which must be in [0, size). Elements
// after index shift one slot toward the head. Returns the index now holding
// the element that followed the erased one, which equals size for the last
// element.
func (v *Vector[T]) Erase(index int) int {
	if index < 0 || index >= v.size {
		panic("erase index out of range")
	}
	slots := v.data.Slots()
	copy(slots[index:], slots[index+1:v.size])
	// The shift vacates the tail slot; reset it so the storage stops
	// referencing the duplicated value.
	clear(slots[v.size-1 : v.size])
	v.size--
	v.metrics.observeErase()
	return index
}

// PopBack removes the last element in O(1). The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector is empty")
	}
	v.size--
}

// Clear removes all elements. Capacity and storage are retained for reuse.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Swap exchanges contents, capacity and storage ownership with other in
// constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy: an independent vector with the same elements
// and capacity equal to its size. Mutating either vector never affects the
// other. Metrics instrumentation is not inherited.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewSize[T](v.size)
	copy(c.data.Slots(), v.live())
	return c
}

// CopyFrom replaces the receiver's contents with a deep copy of other.
// The copy is built in full before the receiver is touched, so a panic
// while copying leaves the receiver unchanged. Self-copy is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other.Clone())
}

// MoveFrom transfers other's elements and storage to the receiver in
// constant time, releasing the receiver's old storage. Afterwards other is
// empty with capacity 0 and remains valid for reuse. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size = other.size
	other.size = 0
	other.data.Release()
}

// Iter returns a sequence of the live elements in order.
func (v *Vector[T]) Iter() iter.Seq[T] {
	return slices.Values(v.live())
}

// All returns a sequence of index/element pairs over the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.live())
}

// Instrument attaches the metrics of c to the vector and returns it.
// One config may instrument any number of vectors; its collectors are
// built and registered once.
func (v *Vector[T]) Instrument(c *PrometheusConfig) *Vector[T] {
	if c == nil {
		panic("config can't be nil")
	}
	v.metrics = c.metrics()
	return v
}

// live returns the view of slots holding constructed elements.
func (v *Vector[T]) live() []T {
	return v.data.Slots()[:v.size]
}

// grow acquires a buffer of newCapacity slots, relocates the live elements
// into it and swaps ownership. The old buffer is released only after the
// swap, so the vector is never observable in a half-relocated state.
func (v *Vector[T]) grow(newCapacity int) {
	next := block.Acquire[T](newCapacity)
	copy(next.Slots(), v.live())
	v.data.Swap(&next)
	next.Release()
	v.metrics.observeGrow(newCapacity, v.size)
}

// nextCap doubles capacity. Doubling 0 is the degenerate case; the floor
// of 1 keeps the very first push from allocating nothing.
func nextCap(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}
