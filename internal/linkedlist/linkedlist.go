package linkedlist

import (
	"iter"

	"collections/internal/collection"
)

// Node represents a node in the doubly linked list.
// It stores a value of type T and links to its neighbours.
// The first node has no previous node and the last node has no next node.
type Node[T comparable] struct {
	Value T        // The value stored in the node.
	next  *Node[T] // Pointer to the next node in the list.
	prev  *Node[T] // Pointer to the previous node in the list.
}

// Next returns the next node in the list, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the previous node in the list, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List represents a doubly linked list.
// The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	len  int
	gen  uint64 // bumped on every structural change
}

var _ collection.List[int] = (*List[int])(nil)

// New creates an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// NewFrom creates a list holding items in order.
func NewFrom[T comparable](items ...T) *List[T] {
	l := New[T]()
	l.AddAll(items...)
	return l
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// FirstNode returns the head node, or nil for an empty list.
func (l *List[T]) FirstNode() *Node[T] {
	return l.head
}

// LastNode returns the tail node, or nil for an empty list.
func (l *List[T]) LastNode() *Node[T] {
	return l.tail
}

// First returns the value at the head. The boolean is false for an empty list.
func (l *List[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.Value, true
}

// Last returns the value at the tail. The boolean is false for an empty list.
func (l *List[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.Value, true
}

// AddFirst inserts item at the head.
func (l *List[T]) AddFirst(item T) {
	l.insertBefore(&Node[T]{Value: item}, l.head)
}

// AddLast inserts item at the tail.
func (l *List[T]) AddLast(item T) {
	l.insertBefore(&Node[T]{Value: item}, nil)
}

// Add inserts item at the tail.
func (l *List[T]) Add(item T) {
	l.AddLast(item)
}

// AddAll appends items in order.
func (l *List[T]) AddAll(items ...T) {
	for _, item := range items {
		l.AddLast(item)
	}
}

// Insert places item at index, in [0, Len()].
//
// O(n)
func (l *List[T]) Insert(index int, item T) error {
	if err := collection.CheckPosition(index, l.len); err != nil {
		return err
	}
	var at *Node[T]
	if index < l.len {
		at = l.nodeAt(index)
	}
	l.insertBefore(&Node[T]{Value: item}, at)
	return nil
}

// Get returns the value at index, in [0, Len()).
//
// O(n)
func (l *List[T]) Get(index int) (T, error) {
	if err := collection.CheckIndex(index, l.len); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(index).Value, nil
}

// Set replaces the value at index, in [0, Len()).
//
// O(n)
func (l *List[T]) Set(index int, item T) error {
	if err := collection.CheckIndex(index, l.len); err != nil {
		return err
	}
	l.nodeAt(index).Value = item
	return nil
}

// RemoveAt unlinks the node at index, in [0, Len()), and returns its value.
//
// O(n)
func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := collection.CheckIndex(index, l.len); err != nil {
		var zero T
		return zero, err
	}
	n := l.nodeAt(index)
	l.untie(n)
	return n.Value, nil
}

// Remove unlinks the first node whose value equals item.
// It reports whether a node was removed.
func (l *List[T]) Remove(item T) bool {
	n := l.find(item)
	if n == nil {
		return false
	}
	l.untie(n)
	return true
}

// RemoveFirst unlinks the head. It reports false for an empty list.
func (l *List[T]) RemoveFirst() bool {
	if l.head == nil {
		return false
	}
	l.untie(l.head)
	return true
}

// RemoveLast unlinks the tail. It reports false for an empty list.
func (l *List[T]) RemoveLast() bool {
	if l.tail == nil {
		return false
	}
	l.untie(l.tail)
	return true
}

// Contains reports whether some node holds item.
func (l *List[T]) Contains(item T) bool {
	return l.find(item) != nil
}

// IndexOf returns the index of the first node holding item, or -1.
func (l *List[T]) IndexOf(item T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == item {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last node holding item, or -1.
func (l *List[T]) LastIndexOf(item T) int {
	i := l.len - 1
	for n := l.tail; n != nil; n = n.prev {
		if n.Value == item {
			return i
		}
		i--
	}
	return -1
}

// Clear removes every node.
func (l *List[T]) Clear() {
	// Callers may still hold nodes from FirstNode or LastNode.
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
	l.gen++
}

// CopyTo copies the values into dst starting at dst[start].
func (l *List[T]) CopyTo(dst []T, start int) error {
	if err := collection.CheckCopy(dst == nil, len(dst), start, l.len); err != nil {
		return err
	}
	i := start
	for n := l.head; n != nil; n = n.next {
		dst[i] = n.Value
		i++
	}
	return nil
}

// ToSlice returns the values from head to tail.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// All returns an iterator over index/value pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index/value pairs from tail to head.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.len - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.Value) {
				return
			}
			i--
		}
	}
}

// SubList returns a new list holding the values in [from, to).
func (l *List[T]) SubList(from, to int) (*List[T], error) {
	if err := collection.CheckRange(from, to, l.len); err != nil {
		return nil, err
	}
	sub := New[T]()
	if from == to {
		return sub, nil
	}
	n := l.nodeAt(from)
	for i := from; i < to; i++ {
		sub.AddLast(n.Value)
		n = n.next
	}
	return sub, nil
}

// Iterator returns a bidirectional iterator positioned before the head.
func (l *List[T]) Iterator() *Iterator[T] {
	return newIterator(l)
}

// insertBefore links n in front of at, or at the tail when at is nil.
func (l *List[T]) insertBefore(n, at *Node[T]) {
	if at == nil {
		n.prev = l.tail
		n.next = nil
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
	} else {
		n.prev = at.prev
		n.next = at
		if at.prev != nil {
			at.prev.next = n
		} else {
			l.head = n
		}
		at.prev = n
	}
	l.len++
	l.gen++
}

// untie removes the node from the list by linking its neighbours to each
// other. After this call the node is detached.
func (l *List[T]) untie(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
	l.gen++
}

// nodeAt walks from whichever end is closer. index must be in [0, len).
func (l *List[T]) nodeAt(index int) *Node[T] {
	if index < l.len/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.len - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

func (l *List[T]) find(item T) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.Value == item {
			return n
		}
	}
	return nil
}
