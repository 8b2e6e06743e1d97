package collection

import "fmt"

// Iterator is a bidirectional cursor over any List, driven through the
// list's positional operations. The cursor starts at -1, before the first
// element; Next moves it forward by one and Previous moves it back by one.
//
// Mutating the list other than through the iterator leaves the cursor
// pointing at whatever now occupies its index.
type Iterator[T comparable] struct {
	list List[T]
	pos  int
	last int // index of the element last returned, -1 if none
}

var _ ListIterator[int] = (*Iterator[int])(nil)

// NewIterator returns an iterator positioned before the first element of l.
func NewIterator[T comparable](l List[T]) *Iterator[T] {
	return &Iterator[T]{list: l, pos: -1, last: -1}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.pos+1 < it.list.Len()
}

// Next advances the cursor and returns the element under it.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, fmt.Errorf("%w: no element after index %d", ErrNoSuchElement, it.pos)
	}
	v, err := it.list.Get(it.pos + 1)
	if err != nil {
		return v, err
	}
	it.pos++
	it.last = it.pos
	return v, nil
}

// HasPrevious reports whether Previous would return an element.
func (it *Iterator[T]) HasPrevious() bool {
	return it.pos >= 0 && it.pos < it.list.Len()
}

// Previous returns the element under the cursor and moves the cursor back.
func (it *Iterator[T]) Previous() (T, error) {
	if !it.HasPrevious() {
		var zero T
		return zero, fmt.Errorf("%w: no element at index %d", ErrNoSuchElement, it.pos)
	}
	v, err := it.list.Get(it.pos)
	if err != nil {
		return v, err
	}
	it.last = it.pos
	it.pos--
	return v, nil
}

// NextIndex returns the cursor position.
func (it *Iterator[T]) NextIndex() int {
	return it.pos
}

// PreviousIndex returns the cursor position minus one.
func (it *Iterator[T]) PreviousIndex() int {
	return it.pos - 1
}

// Remove deletes the element last returned by Next or Previous.
func (it *Iterator[T]) Remove() error {
	if it.last < 0 {
		return fmt.Errorf("%w: nothing to remove", ErrNoSuchElement)
	}
	if _, err := it.list.RemoveAt(it.last); err != nil {
		return err
	}
	if it.last == it.pos {
		it.pos--
	}
	it.last = -1
	return nil
}

// Set replaces the element last returned by Next or Previous.
func (it *Iterator[T]) Set(item T) error {
	if it.last < 0 {
		return fmt.Errorf("%w: nothing to replace", ErrNoSuchElement)
	}
	return it.list.Set(it.last, item)
}

// Add inserts item before the element Next would return. A following
// call to Previous returns item.
func (it *Iterator[T]) Add(item T) error {
	if err := it.list.Insert(it.pos+1, item); err != nil {
		return err
	}
	it.pos++
	it.last = -1
	return nil
}
