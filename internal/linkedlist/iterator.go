package linkedlist

import (
	"fmt"

	"collections/internal/collection"
)

// Iterator is a bidirectional cursor over a List.
//
// The cursor position starts at -1, before the head. Next moves it forward
// by one and returns the element it lands on; Previous returns the element
// under the cursor and moves it back by one. Walking forward to the end and
// then backward to the start therefore yields every element twice, the
// second time in reverse.
//
// Any structural change made to the list other than through this iterator
// invalidates it: later calls fail with collection.ErrStaleIterator and
// HasNext and HasPrevious report false.
type Iterator[T comparable] struct {
	list *List[T]
	next *Node[T] // node the next call to Next returns, nil past the tail
	last *Node[T] // node last returned by Next or Previous
	pos  int
	gen  uint64
}

var _ collection.ListIterator[int] = (*Iterator[int])(nil)

func newIterator[T comparable](l *List[T]) *Iterator[T] {
	return &Iterator[T]{
		list: l,
		next: l.head,
		pos:  -1,
		gen:  l.gen,
	}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.gen == it.list.gen && it.next != nil
}

// Next advances the cursor and returns the element it lands on.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if err := it.checkGen(); err != nil {
		return zero, err
	}
	if it.next == nil {
		return zero, fmt.Errorf("%w: no element after index %d", collection.ErrNoSuchElement, it.pos)
	}
	it.last = it.next
	it.next = it.next.next
	it.pos++
	return it.last.Value, nil
}

// HasPrevious reports whether Previous would return an element.
func (it *Iterator[T]) HasPrevious() bool {
	return it.gen == it.list.gen && it.prevNode() != nil
}

// Previous returns the element under the cursor and moves the cursor back.
func (it *Iterator[T]) Previous() (T, error) {
	var zero T
	if err := it.checkGen(); err != nil {
		return zero, err
	}
	p := it.prevNode()
	if p == nil {
		return zero, fmt.Errorf("%w: no element at index %d", collection.ErrNoSuchElement, it.pos)
	}
	it.next = p
	it.last = p
	it.pos--
	return p.Value, nil
}

// NextIndex returns the cursor position.
func (it *Iterator[T]) NextIndex() int {
	return it.pos
}

// PreviousIndex returns the cursor position minus one.
func (it *Iterator[T]) PreviousIndex() int {
	return it.pos - 1
}

// Remove unlinks the node last returned by Next or Previous.
// It may be called once per call to Next or Previous.
func (it *Iterator[T]) Remove() error {
	if err := it.checkGen(); err != nil {
		return err
	}
	if it.last == nil {
		return fmt.Errorf("%w: nothing to remove", collection.ErrNoSuchElement)
	}
	if it.last == it.next {
		// Returned by Previous: the cursor stays, the following node slides in.
		it.next = it.last.next
	} else {
		it.pos--
	}
	it.list.untie(it.last)
	it.last = nil
	it.gen = it.list.gen
	return nil
}

// Set replaces the value last returned by Next or Previous.
func (it *Iterator[T]) Set(item T) error {
	if err := it.checkGen(); err != nil {
		return err
	}
	if it.last == nil {
		return fmt.Errorf("%w: nothing to replace", collection.ErrNoSuchElement)
	}
	it.last.Value = item
	return nil
}

// Add inserts item before the element Next would return and moves the
// cursor past it, so a following Previous returns item.
func (it *Iterator[T]) Add(item T) error {
	if err := it.checkGen(); err != nil {
		return err
	}
	it.list.insertBefore(&Node[T]{Value: item}, it.next)
	it.pos++
	it.last = nil
	it.gen = it.list.gen
	return nil
}

func (it *Iterator[T]) prevNode() *Node[T] {
	if it.next == nil {
		return it.list.tail
	}
	return it.next.prev
}

func (it *Iterator[T]) checkGen() error {
	if it.gen != it.list.gen {
		return collection.ErrStaleIterator
	}
	return nil
}
