// Package growbuf provides the resizable vertex arrays used by the geometry
// builder. Capacity only ever grows; the logical length may shrink so that a
// transient tail can be appended and retracted every frame without
// reallocating.
package growbuf

import "fmt"

// minCapacity is the first allocation size for an empty buffer.
const minCapacity = 64

// Buffer is a growable array of T. The zero value is an empty buffer ready
// for use.
type Buffer[T any] struct {
	data []T
	// grows counts reallocations, exposed for tests and diagnostics.
	grows int
}

// New returns an empty buffer with storage for at least n elements.
func New[T any](n int) *Buffer[T] {
	b := &Buffer[T]{}
	b.EnsureCapacity(n)
	return b
}

// Len returns the logical element count.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap returns the number of elements the buffer can hold without
// reallocating.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Grows returns how many times the backing storage was reallocated.
func (b *Buffer[T]) Grows() int { return b.grows }

// EnsureCapacity guarantees storage for at least n elements, preserving the
// current contents. It does nothing if the capacity already covers n;
// otherwise the capacity at least doubles.
func (b *Buffer[T]) EnsureCapacity(n int) {
	if n <= cap(b.data) {
		return
	}
	newCap := max(2*cap(b.data), minCapacity)
	for newCap < n {
		newCap *= 2
	}
	data := make([]T, len(b.data), newCap)
	copy(data, b.data)
	b.data = data
	b.grows++
}

// Append grows the logical length by len(items) and copies items into the
// new tail.
func (b *Buffer[T]) Append(items ...T) {
	b.EnsureCapacity(len(b.data) + len(items))
	b.data = append(b.data, items...)
}

// Retract drops the last n elements. The storage is kept, so a following
// Append of the same size reuses it.
func (b *Buffer[T]) Retract(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("growbuf: retract %d from buffer of length %d", n, len(b.data)))
	}
	b.data = b.data[:len(b.data)-n]
}

// Reset sets the logical length to zero, keeping the storage.
func (b *Buffer[T]) Reset() { b.data = b.data[:0] }

// Slice returns the live elements. The slice aliases the buffer and is only
// valid until the next Append.
func (b *Buffer[T]) Slice() []T { return b.data }

// At returns the element at index i.
func (b *Buffer[T]) At(i int) T { return b.data[i] }
