package collection

import (
	"errors"
	"iter"
)

var (
	ErrEmptyCollection = errors.New("collection is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoSuchElement   = errors.New("no such element")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrStaleIterator   = errors.New("iterator invalidated by list mutation")
)

// DefaultCapacity is the initial capacity of array-backed collections
// created without an explicit capacity.
const DefaultCapacity = 4

// List is a sequential, positionally indexed collection.
// Implementations are not safe for concurrent use.
type List[T comparable] interface {
	// Len returns the number of elements.
	//
	// O(1)
	Len() int

	// IsEmpty reports whether the list has no elements.
	//
	// O(1)
	IsEmpty() bool

	// Add appends item to the end of the list.
	//
	// O(1) amortized
	Add(item T)

	// Insert places item at index, shifting later elements back.
	// Valid indices are [0, Len()]; otherwise returns ErrIndexOutOfRange.
	Insert(index int, item T) error

	// Get returns the element at index.
	// Valid indices are [0, Len()); otherwise returns ErrIndexOutOfRange.
	Get(index int) (T, error)

	// Set replaces the element at index.
	// Valid indices are [0, Len()); otherwise returns ErrIndexOutOfRange.
	Set(index int, item T) error

	// RemoveAt removes and returns the element at index.
	// Valid indices are [0, Len()); otherwise returns ErrIndexOutOfRange.
	RemoveAt(index int) (T, error)

	// Remove deletes the first element equal to item.
	// It reports whether an element was removed.
	//
	// O(n)
	Remove(item T) bool

	// Contains reports whether an element equal to item is present.
	//
	// O(n)
	Contains(item T) bool

	// IndexOf returns the index of the first element equal to item, or -1.
	//
	// O(n)
	IndexOf(item T) int

	// LastIndexOf returns the index of the last element equal to item, or -1.
	//
	// O(n)
	LastIndexOf(item T) int

	// Clear removes all elements.
	Clear()

	// CopyTo copies every element into dst starting at dst[start].
	// Returns ErrInvalidArgument when dst is nil, too short, or start is
	// outside its bounds.
	CopyTo(dst []T, start int) error

	// ToSlice returns the elements in order as a new slice.
	//
	// O(n)
	ToSlice() []T

	// All returns an iterator over index/element pairs in order.
	//
	// O(n)
	All() iter.Seq2[int, T]
}

// ListIterator is a cursor that walks a list in both directions and can
// modify it in place.
type ListIterator[T comparable] interface {
	HasNext() bool
	Next() (T, error)
	HasPrevious() bool
	Previous() (T, error)
	NextIndex() int
	PreviousIndex() int
	Remove() error
	Set(item T) error
	Add(item T) error
}
