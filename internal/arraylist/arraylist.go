package arraylist

import (
	"iter"

	"collections/internal/collection"
)

// List is a dynamic array. The backing buffer doubles whenever an
// insertion would overflow it.
// A List is not safe for concurrent use.
type List[T comparable] struct {
	buf   []T
	count int
}

var _ collection.List[int] = (*List[int])(nil)

// New creates an empty list with collection.DefaultCapacity.
func New[T comparable]() *List[T] {
	return &List[T]{buf: make([]T, collection.DefaultCapacity)}
}

// NewWithCapacity creates an empty list with the given positive capacity.
func NewWithCapacity[T comparable](capacity int) (*List[T], error) {
	if err := collection.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	return &List[T]{buf: make([]T, capacity)}, nil
}

// NewFrom creates a list holding items, with room for
// collection.DefaultCapacity more.
func NewFrom[T comparable](items ...T) *List[T] {
	buf := make([]T, len(items)+collection.DefaultCapacity)
	copy(buf, items)
	return &List[T]{buf: buf, count: len(items)}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.count
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// Capacity returns the size of the backing buffer.
func (l *List[T]) Capacity() int {
	return len(l.buf)
}

// Add appends item.
//
// O(1) amortized
func (l *List[T]) Add(item T) {
	l.grow()
	l.buf[l.count] = item
	l.count++
}

// AddAll appends items in order.
func (l *List[T]) AddAll(items ...T) {
	for _, item := range items {
		l.Add(item)
	}
}

// Insert places item at index, in [0, Len()], shifting later elements.
//
// O(n)
func (l *List[T]) Insert(index int, item T) error {
	if err := collection.CheckPosition(index, l.count); err != nil {
		return err
	}
	l.grow()
	copy(l.buf[index+1:l.count+1], l.buf[index:l.count])
	l.buf[index] = item
	l.count++
	return nil
}

// Get returns the element at index, in [0, Len()).
//
// O(1)
func (l *List[T]) Get(index int) (T, error) {
	if err := collection.CheckIndex(index, l.count); err != nil {
		var zero T
		return zero, err
	}
	return l.buf[index], nil
}

// Set replaces the element at index, in [0, Len()).
//
// O(1)
func (l *List[T]) Set(index int, item T) error {
	if err := collection.CheckIndex(index, l.count); err != nil {
		return err
	}
	l.buf[index] = item
	return nil
}

// RemoveAt removes and returns the element at index, in [0, Len()).
//
// O(n)
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := collection.CheckIndex(index, l.count); err != nil {
		return zero, err
	}
	item := l.buf[index]
	copy(l.buf[index:l.count-1], l.buf[index+1:l.count])
	l.count--
	l.buf[l.count] = zero
	return item, nil
}

// Remove deletes the first element equal to item.
func (l *List[T]) Remove(item T) bool {
	i := l.IndexOf(item)
	if i < 0 {
		return false
	}
	_, err := l.RemoveAt(i)
	return err == nil
}

// Contains reports whether an element equal to item is present.
func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// IndexOf returns the index of the first element equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	for i := 0; i < l.count; i++ {
		if l.buf[i] == item {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to item, or -1.
func (l *List[T]) LastIndexOf(item T) int {
	for i := l.count - 1; i >= 0; i-- {
		if l.buf[i] == item {
			return i
		}
	}
	return -1
}

// Clear removes all elements and keeps the backing buffer.
func (l *List[T]) Clear() {
	clear(l.buf[:l.count])
	l.count = 0
}

// CopyTo copies the elements into dst starting at dst[start].
func (l *List[T]) CopyTo(dst []T, start int) error {
	if err := collection.CheckCopy(dst == nil, len(dst), start, l.count); err != nil {
		return err
	}
	copy(dst[start:], l.buf[:l.count])
	return nil
}

// ToSlice returns the elements as a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.count)
	copy(out, l.buf[:l.count])
	return out
}

// All returns an iterator over index/element pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(i, l.buf[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same capacity.
func (l *List[T]) Clone() *List[T] {
	buf := make([]T, len(l.buf))
	copy(buf, l.buf[:l.count])
	return &List[T]{buf: buf, count: l.count}
}

// SubList returns a new list holding the elements in [from, to).
func (l *List[T]) SubList(from, to int) (*List[T], error) {
	if err := collection.CheckRange(from, to, l.count); err != nil {
		return nil, err
	}
	return NewFrom(l.buf[from:to]...), nil
}

// Iterator returns a bidirectional iterator positioned before the first
// element.
func (l *List[T]) Iterator() *collection.Iterator[T] {
	return collection.NewIterator[T](l)
}

// grow makes room for one more element.
func (l *List[T]) grow() {
	if l.count < len(l.buf) {
		return
	}
	buf := make([]T, max(len(l.buf)*2, 1))
	copy(buf, l.buf[:l.count])
	l.buf = buf
}
