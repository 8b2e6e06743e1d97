package scenario

import (
	"fmt"

	"collections/internal/arraylist"
	"collections/internal/collection"
	"collections/internal/linkedlist"
	"collections/internal/queue"
)

// target applies validated steps to one collection.
type target interface {
	apply(st Step) (any, error)
}

func newTarget(s *Scenario) (target, error) {
	switch s.Structure {
	case Queue:
		q, err := newQueue(s.Capacity)
		if err != nil {
			return nil, err
		}
		return &queueTarget{q: q}, nil
	case LinkedList:
		return &listTarget{list: linkedlist.New[int]()}, nil
	case ArrayList:
		l, err := newArrayList(s.Capacity)
		if err != nil {
			return nil, err
		}
		return &listTarget{list: l}, nil
	}
	return nil, fmt.Errorf("%w: unknown structure %q", ErrInvalidScenario, s.Structure)
}

func newQueue(capacity *int) (*queue.Queue[int], error) {
	if capacity == nil {
		return queue.New[int](), nil
	}
	return queue.NewWithCapacity[int](*capacity)
}

func newArrayList(capacity *int) (*arraylist.List[int], error) {
	if capacity == nil {
		return arraylist.New[int](), nil
	}
	return arraylist.NewWithCapacity[int](*capacity)
}

type queueTarget struct {
	q *queue.Queue[int]
}

func (t *queueTarget) apply(st Step) (any, error) {
	switch st.Op {
	case "new":
		q, err := newQueue(st.Value)
		if err != nil {
			return nil, err
		}
		t.q = q
		return nil, nil
	case "enqueue":
		t.q.Enqueue(*st.Value)
		return nil, nil
	case "dequeue":
		return t.q.Dequeue()
	case "peek":
		return t.q.Peek()
	case "contains":
		return t.q.Contains(*st.Value), nil
	case "len":
		return t.q.Len(), nil
	case "empty":
		return t.q.IsEmpty(), nil
	case "capacity":
		return t.q.Capacity(), nil
	case "clear":
		t.q.Clear()
		return nil, nil
	case "to-slice":
		return t.q.ToSlice(), nil
	case "copy-to":
		dst := make([]int, *st.Value)
		if err := t.q.CopyTo(dst, *st.Index); err != nil {
			return nil, err
		}
		return dst, nil
	}
	return nil, fmt.Errorf("%w: op %q on queue", ErrInvalidScenario, st.Op)
}

type listTarget struct {
	list collection.List[int]
	it   collection.ListIterator[int]
}

func (t *listTarget) iterator() collection.ListIterator[int] {
	if t.it == nil {
		t.it = t.newIterator()
	}
	return t.it
}

func (t *listTarget) newIterator() collection.ListIterator[int] {
	if l, ok := t.list.(*linkedlist.List[int]); ok {
		return l.Iterator()
	}
	return collection.NewIterator(t.list)
}

func (t *listTarget) apply(st Step) (any, error) {
	if res, ok, err := t.applyIterator(st); ok {
		return res, err
	}
	if res, ok, err := t.applyLinked(st); ok {
		return res, err
	}

	l := t.list
	switch st.Op {
	case "new":
		al, err := newArrayList(st.Value)
		if err != nil {
			return nil, err
		}
		t.list, t.it = al, nil
		return nil, nil
	case "capacity":
		if al, ok := l.(*arraylist.List[int]); ok {
			return al.Capacity(), nil
		}
	case "add":
		l.Add(*st.Value)
		return nil, nil
	case "add-all":
		collection.AddAll(l, st.Values...)
		return nil, nil
	case "insert":
		return nil, l.Insert(*st.Index, *st.Value)
	case "get":
		return l.Get(*st.Index)
	case "set":
		return nil, l.Set(*st.Index, *st.Value)
	case "remove-at":
		return l.RemoveAt(*st.Index)
	case "remove":
		return l.Remove(*st.Value), nil
	case "contains":
		return l.Contains(*st.Value), nil
	case "contains-all":
		return collection.ContainsAll(l, st.Values...), nil
	case "remove-all":
		return collection.RemoveAll(l, st.Values...), nil
	case "retain-all":
		return collection.RetainAll(l, st.Values...), nil
	case "index-of":
		return l.IndexOf(*st.Value), nil
	case "last-index-of":
		return l.LastIndexOf(*st.Value), nil
	case "len":
		return l.Len(), nil
	case "empty":
		return l.IsEmpty(), nil
	case "clear":
		l.Clear()
		return nil, nil
	case "to-slice":
		return l.ToSlice(), nil
	case "copy-to":
		dst := make([]int, *st.Value)
		if err := l.CopyTo(dst, *st.Index); err != nil {
			return nil, err
		}
		return dst, nil
	case "sub-list":
		return t.subList(*st.Index, *st.Value)
	}
	return nil, fmt.Errorf("%w: op %q on list", ErrInvalidScenario, st.Op)
}

func (t *listTarget) subList(from, to int) (any, error) {
	switch l := t.list.(type) {
	case *linkedlist.List[int]:
		sub, err := l.SubList(from, to)
		if err != nil {
			return nil, err
		}
		return sub.ToSlice(), nil
	case *arraylist.List[int]:
		sub, err := l.SubList(from, to)
		if err != nil {
			return nil, err
		}
		return sub.ToSlice(), nil
	}
	return nil, fmt.Errorf("%w: sub-list on %T", ErrInvalidScenario, t.list)
}

// applyLinked handles the operations only the linked list offers.
func (t *listTarget) applyLinked(st Step) (any, bool, error) {
	l, ok := t.list.(*linkedlist.List[int])
	if !ok {
		return nil, false, nil
	}
	switch st.Op {
	case "add-first":
		l.AddFirst(*st.Value)
		return nil, true, nil
	case "add-last":
		l.AddLast(*st.Value)
		return nil, true, nil
	case "first":
		v, err := present(l.First())
		return v, true, err
	case "last":
		v, err := present(l.Last())
		return v, true, err
	case "remove-first":
		return l.RemoveFirst(), true, nil
	case "remove-last":
		return l.RemoveLast(), true, nil
	case "backward":
		out := make([]int, 0, l.Len())
		for _, v := range l.Backward() {
			out = append(out, v)
		}
		return out, true, nil
	}
	return nil, false, nil
}

func (t *listTarget) applyIterator(st Step) (any, bool, error) {
	switch st.Op {
	case "iter.reset":
		t.it = t.newIterator()
		return nil, true, nil
	case "iter.has-next":
		return t.iterator().HasNext(), true, nil
	case "iter.next":
		v, err := t.iterator().Next()
		return v, true, err
	case "iter.has-previous":
		return t.iterator().HasPrevious(), true, nil
	case "iter.previous":
		v, err := t.iterator().Previous()
		return v, true, err
	case "iter.next-index":
		return t.iterator().NextIndex(), true, nil
	case "iter.previous-index":
		return t.iterator().PreviousIndex(), true, nil
	case "iter.remove":
		return nil, true, t.iterator().Remove()
	case "iter.set":
		return nil, true, t.iterator().Set(*st.Value)
	case "iter.add":
		return nil, true, t.iterator().Add(*st.Value)
	}
	return nil, false, nil
}

// present turns an absent First/Last into ErrEmptyCollection.
func present(v int, ok bool) (int, error) {
	if !ok {
		return 0, fmt.Errorf("%w: no element", collection.ErrEmptyCollection)
	}
	return v, nil
}
