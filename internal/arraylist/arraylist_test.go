package arraylist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"collections/internal/collection"
)

const sampleSize = 10

func populate() *List[int] {
	l := New[int]()
	for i := 0; i < sampleSize; i++ {
		l.Add(i + 2)
	}
	return l
}

func TestCapacity(t *testing.T) {
	t.Parallel()

	l := New[int]()
	require.Equal(t, collection.DefaultCapacity, l.Capacity())

	l.AddAll(1, 2, 3, 4)
	require.Equal(t, 4, l.Capacity())
	l.Add(5)
	require.Equal(t, 8, l.Capacity())

	_, err := NewWithCapacity[int](0)
	require.ErrorIs(t, err, collection.ErrInvalidArgument)

	l, err = NewWithCapacity[int](1)
	require.NoError(t, err)
	l.AddAll(1, 2, 3)
	require.Equal(t, 4, l.Capacity())
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var l List[string]
	require.True(t, l.IsEmpty())
	l.Add("a")
	require.NoError(t, l.Insert(0, "b"))
	require.Equal(t, []string{"b", "a"}, l.ToSlice())
}

func TestNewFrom(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	l := NewFrom(items...)
	items[0] = 100

	require.Equal(t, []int{1, 2, 3}, l.ToSlice())
	require.Equal(t, 3+collection.DefaultCapacity, l.Capacity())
}

func TestGetSet(t *testing.T) {
	t.Parallel()

	l := populate()
	v, err := l.Get(0)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.NoError(t, l.Set(0, 100))
	v, _ = l.Get(0)
	require.Equal(t, 100, v)

	v, _ = l.Get(5)
	require.Equal(t, 7, v)
	require.NoError(t, l.Set(5, 100))
	v, _ = l.Get(5)
	require.Equal(t, 100, v)

	require.ErrorIs(t, l.Set(l.Len(), 10), collection.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Set(-1, 10), collection.ErrIndexOutOfRange)
	_, err = l.Get(-1)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)
}

func TestInsert(t *testing.T) {
	t.Parallel()

	l := populate()
	require.NoError(t, l.Insert(5, 0))
	require.Equal(t, sampleSize+1, l.Len())
	require.Equal(t, []int{2, 3, 4, 5, 6, 0, 7, 8, 9, 10, 11}, l.ToSlice())

	require.NoError(t, l.Insert(l.Len(), -1))
	require.NoError(t, l.Insert(0, -2))
	first, _ := l.Get(0)
	last, _ := l.Get(l.Len() - 1)
	require.Equal(t, -2, first)
	require.Equal(t, -1, last)

	size := l.Len()
	require.ErrorIs(t, l.Insert(5000, 10), collection.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Insert(-1, 10), collection.ErrIndexOutOfRange)
	require.Equal(t, size, l.Len())
}

func TestRemoveAt(t *testing.T) {
	t.Parallel()

	l := populate()
	size := l.Len()
	for l.Len() > 0 {
		size--
		_, err := l.RemoveAt(0)
		require.NoError(t, err)
		require.Equal(t, size, l.Len())
	}
	require.True(t, l.IsEmpty())

	_, err := l.RemoveAt(0)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)

	l = NewFrom(1, 2, 3, 4)
	v, err := l.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, []int{1, 3, 4}, l.ToSlice())
}

func TestRemove(t *testing.T) {
	t.Parallel()

	l := populate()
	for l.Len() > 0 {
		v, _ := l.Get(0)
		require.True(t, l.Remove(v))
	}

	l = NewFrom(1, 2, 1)
	require.False(t, l.Remove(5))
	require.Equal(t, 3, l.Len())
	require.True(t, l.Remove(1))
	require.Equal(t, []int{2, 1}, l.ToSlice())
}

func TestSearch(t *testing.T) {
	t.Parallel()

	l := NewFrom(1, 2, 1, 3)
	require.True(t, l.Contains(3))
	require.False(t, l.Contains(4))
	require.Equal(t, 0, l.IndexOf(1))
	require.Equal(t, 2, l.LastIndexOf(1))
	require.Equal(t, -1, l.IndexOf(4))

	pl := NewFrom[*int](nil)
	require.True(t, pl.Contains(nil))
	require.Equal(t, 0, pl.IndexOf(nil))
}

func TestClear(t *testing.T) {
	t.Parallel()

	l := populate()
	capacity := l.Capacity()
	l.Clear()
	require.True(t, l.IsEmpty())
	require.Equal(t, capacity, l.Capacity())
	require.Empty(t, l.ToSlice())
}

func TestCopyTo(t *testing.T) {
	t.Parallel()

	l := NewFrom(1, 2)
	dst := make([]int, 3)
	require.NoError(t, l.CopyTo(dst, 1))
	require.Equal(t, []int{0, 1, 2}, dst)

	require.ErrorIs(t, l.CopyTo(nil, 0), collection.ErrInvalidArgument)
	require.ErrorIs(t, l.CopyTo(make([]int, 3), 2), collection.ErrInvalidArgument)
}

func TestCloneIndependent(t *testing.T) {
	t.Parallel()

	l := NewFrom(1, 2, 3)
	c := l.Clone()
	require.NoError(t, c.Set(0, 100))
	c.Add(4)

	require.Equal(t, []int{1, 2, 3}, l.ToSlice())
	require.Equal(t, []int{100, 2, 3, 4}, c.ToSlice())
	require.True(t, collection.Equal[int](l, NewFrom(1, 2, 3)))
}

func TestSubList(t *testing.T) {
	t.Parallel()

	l := populate()
	sub, err := l.SubList(2, 6)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6, 7}, sub.ToSlice())

	require.NoError(t, sub.Set(0, 0))
	v, _ := l.Get(2)
	require.Equal(t, 4, v)

	_, err = l.SubList(0, 500)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)
	_, err = l.SubList(-1, 5)
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)
}

func TestIterator(t *testing.T) {
	t.Parallel()

	l := populate()
	it := l.Iterator()
	index := 0
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		want, _ := l.Get(index)
		require.Equal(t, want, v)
		index++
	}
	require.Equal(t, sampleSize, index)

	var backward []int
	for it.HasPrevious() {
		v, err := it.Previous()
		require.NoError(t, err)
		backward = append(backward, v)
	}
	require.Equal(t, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, backward)
}

func TestAll(t *testing.T) {
	t.Parallel()

	l := NewFrom("a", "b", "c")
	var got []string
	for i, v := range l.All() {
		require.Equal(t, l.IndexOf(v), i)
		got = append(got, v)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}
