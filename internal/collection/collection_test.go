package collection_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collections/internal/arraylist"
	"collections/internal/collection"
	"collections/internal/linkedlist"
)

// compile
func testImplements[T comparable]() []collection.List[T] {
	return []collection.List[T]{arraylist.New[T](), linkedlist.New[T]()}
}

func testIterators[T comparable]() []collection.ListIterator[T] {
	return []collection.ListIterator[T]{arraylist.New[T]().Iterator(), linkedlist.New[T]().Iterator()}
}

func lists(items ...int) map[string]collection.List[int] {
	return map[string]collection.List[int]{
		"arraylist":  arraylist.NewFrom(items...),
		"linkedlist": linkedlist.NewFrom(items...),
	}
}

func TestChecks(t *testing.T) {
	t.Parallel()

	assert.NoError(t, collection.CheckIndex(0, 1))
	assert.ErrorIs(t, collection.CheckIndex(1, 1), collection.ErrIndexOutOfRange)
	assert.ErrorIs(t, collection.CheckIndex(-1, 1), collection.ErrIndexOutOfRange)

	assert.NoError(t, collection.CheckPosition(1, 1))
	assert.ErrorIs(t, collection.CheckPosition(2, 1), collection.ErrIndexOutOfRange)

	assert.NoError(t, collection.CheckRange(0, 0, 0))
	assert.ErrorIs(t, collection.CheckRange(2, 1, 3), collection.ErrIndexOutOfRange)

	assert.NoError(t, collection.CheckCopy(false, 4, 1, 3))
	assert.ErrorIs(t, collection.CheckCopy(true, 4, 0, 0), collection.ErrInvalidArgument)
	assert.ErrorIs(t, collection.CheckCopy(false, 4, 2, 3), collection.ErrInvalidArgument)
	assert.ErrorIs(t, collection.CheckCopy(false, 0, 0, 0), collection.ErrInvalidArgument)

	assert.NoError(t, collection.CheckCapacity(1))
	assert.ErrorIs(t, collection.CheckCapacity(0), collection.ErrInvalidArgument)

	err := collection.CheckIndex(7, 3)
	assert.False(t, errors.Is(err, collection.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "index 7, size 3")
}

func TestBulk(t *testing.T) {
	t.Parallel()

	for name, l := range lists() {
		t.Run(name, func(t *testing.T) {
			collection.AddAll(l, 1, 2, 3, 4, 5, 6)
			require.Equal(t, 6, l.Len())
			require.True(t, collection.ContainsAll(l, 2, 4, 6))
			require.False(t, collection.ContainsAll(l, 2, 7))

			require.Equal(t, 3, collection.RemoveAll(l, 2, 4, 6, 8))
			require.Equal(t, []int{1, 3, 5}, l.ToSlice())

			require.False(t, collection.RetainAll(l, 1, 3, 5))
			require.True(t, collection.RetainAll(l, 3))
			require.Equal(t, []int{3}, l.ToSlice())
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := arraylist.NewFrom(1, 2, 3)
	b := linkedlist.NewFrom(1, 2, 3)
	require.True(t, collection.Equal[int](a, b))

	b.AddLast(4)
	require.False(t, collection.Equal[int](a, b))

	require.True(t, b.RemoveLast())
	require.NoError(t, b.Set(1, 0))
	require.False(t, collection.Equal[int](a, b))
}

func TestIteratorSemantics(t *testing.T) {
	t.Parallel()

	for name, l := range lists(1, 2, 3, 4) {
		t.Run(name, func(t *testing.T) {
			it := collection.NewIterator(l)
			require.Equal(t, -1, it.NextIndex())
			require.Equal(t, -2, it.PreviousIndex())
			require.False(t, it.HasPrevious())

			var forward []int
			for it.HasNext() {
				v, err := it.Next()
				require.NoError(t, err)
				forward = append(forward, v)
			}
			require.Equal(t, []int{1, 2, 3, 4}, forward)
			_, err := it.Next()
			require.ErrorIs(t, err, collection.ErrNoSuchElement)

			v, err := it.Previous()
			require.NoError(t, err)
			require.Equal(t, 4, v)
			v, err = it.Previous()
			require.NoError(t, err)
			require.Equal(t, 3, v)

			// Remove after Previous keeps the cursor.
			require.NoError(t, it.Remove())
			require.Equal(t, []int{1, 2, 4}, l.ToSlice())
			require.Equal(t, 1, it.NextIndex())
			require.ErrorIs(t, it.Remove(), collection.ErrNoSuchElement)

			v, err = it.Next()
			require.NoError(t, err)
			require.Equal(t, 4, v)
			require.NoError(t, it.Set(40))

			require.NoError(t, it.Add(5))
			require.Equal(t, []int{1, 2, 40, 5}, l.ToSlice())
			require.ErrorIs(t, it.Set(0), collection.ErrNoSuchElement)

			v, err = it.Previous()
			require.NoError(t, err)
			require.Equal(t, 5, v)
		})
	}
}

func TestIteratorRemoveForward(t *testing.T) {
	t.Parallel()

	for name, l := range lists(1, 2, 3) {
		t.Run(name, func(t *testing.T) {
			it := collection.NewIterator(l)
			for it.HasNext() {
				_, err := it.Next()
				require.NoError(t, err)
				require.NoError(t, it.Remove())
			}
			require.True(t, l.IsEmpty())
			require.Equal(t, -1, it.NextIndex())

			require.NoError(t, it.Add(9))
			require.Equal(t, []int{9}, l.ToSlice())
		})
	}
}

func TestInterfaces(t *testing.T) {
	t.Parallel()

	require.Len(t, testImplements[string](), 2)
	require.Len(t, testIterators[string](), 2)
}
