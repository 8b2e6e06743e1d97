package queue

import (
	"fmt"
	"iter"

	"collections/internal/collection"
)

// Queue is a first-in, first-out collection backed by a circular buffer.
//
// Logical element i lives at buf[(head+i) % len(buf)]. The buffer doubles
// when an Enqueue would overflow it and never shrinks. The zero value is
// an empty queue with no buffer; the first Enqueue allocates one slot.
// A Queue is not safe for concurrent use.
type Queue[T comparable] struct {
	buf   []T
	head  int // slot of the oldest element
	tail  int // slot of the newest element
	count int
}

// New creates an empty queue with collection.DefaultCapacity.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		buf:  make([]T, collection.DefaultCapacity),
		tail: -1,
	}
}

// NewWithCapacity creates an empty queue with the given positive capacity.
func NewWithCapacity[T comparable](capacity int) (*Queue[T], error) {
	if err := collection.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	return &Queue[T]{
		buf:  make([]T, capacity),
		tail: -1,
	}, nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.count
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Capacity returns the size of the backing buffer.
func (q *Queue[T]) Capacity() int {
	return len(q.buf)
}

// Enqueue adds item at the back of the queue.
//
// O(1) amortized
func (q *Queue[T]) Enqueue(item T) {
	q.count++
	q.grow()
	q.tail = q.slot(q.count - 1)
	q.buf[q.tail] = item
}

// Dequeue removes and returns the element at the front of the queue.
// Returns collection.ErrEmptyCollection when the queue is empty.
//
// O(1)
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, fmt.Errorf("%w: dequeue", collection.ErrEmptyCollection)
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return item, nil
}

// Peek returns the element at the front of the queue without removing it.
// Returns collection.ErrEmptyCollection when the queue is empty.
//
// O(1)
func (q *Queue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, fmt.Errorf("%w: peek", collection.ErrEmptyCollection)
	}
	return q.buf[q.head], nil
}

// Contains reports whether some queued element equals item.
//
// O(n)
func (q *Queue[T]) Contains(item T) bool {
	for i := 0; i < q.count; i++ {
		if q.buf[q.slot(i)] == item {
			return true
		}
	}
	return false
}

// CopyTo copies the queued elements, front first, into dst starting at
// dst[start].
func (q *Queue[T]) CopyTo(dst []T, start int) error {
	if err := collection.CheckCopy(dst == nil, len(dst), start, q.count); err != nil {
		return err
	}
	q.copyLogical(dst[start:], q.count)
	return nil
}

// ToSlice returns the queued elements, front first, as a new slice.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.count)
	q.copyLogical(out, q.count)
	return out
}

// Clear empties the queue and keeps the backing buffer.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.head = 0
	q.tail = -1
	q.count = 0
}

// All returns an iterator over the queued elements, front first.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(q.buf[q.slot(i)]) {
				return
			}
		}
	}
}

func (q *Queue[T]) slot(i int) int {
	return (q.head + i) % len(q.buf)
}

// copyLogical writes the first n elements in FIFO order to the front of
// dst. The run from head may wrap past the end of buf.
func (q *Queue[T]) copyLogical(dst []T, n int) {
	if n == 0 {
		return
	}
	k := copy(dst[:n], q.buf[q.head:min(q.head+n, len(q.buf))])
	copy(dst[k:n], q.buf[:n-k])
}

// grow doubles the buffer once count exceeds it, unrolling the logical
// sequence to the front of the new buffer.
func (q *Queue[T]) grow() {
	if q.count <= len(q.buf) {
		return
	}
	// The element being enqueued is already counted but not yet stored.
	stored := q.count - 1
	buf := make([]T, max(len(q.buf)*2, 1))
	q.copyLogical(buf, stored)
	q.buf = buf
	q.head = 0
}
