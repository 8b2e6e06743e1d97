package collection

// AddAll appends items to l in order.
func AddAll[T comparable](l List[T], items ...T) {
	for _, item := range items {
		l.Add(item)
	}
}

// ContainsAll reports whether every item is present in l.
func ContainsAll[T comparable](l List[T], items ...T) bool {
	for _, item := range items {
		if !l.Contains(item) {
			return false
		}
	}
	return true
}

// RemoveAll deletes every element of l equal to any of items and returns
// the number of elements removed.
func RemoveAll[T comparable](l List[T], items ...T) int {
	drop := make(map[T]struct{}, len(items))
	for _, item := range items {
		drop[item] = struct{}{}
	}
	return removeWhere(l, func(v T) bool {
		_, ok := drop[v]
		return ok
	})
}

// RetainAll deletes every element of l not equal to one of items and
// reports whether l changed.
func RetainAll[T comparable](l List[T], items ...T) bool {
	keep := make(map[T]struct{}, len(items))
	for _, item := range items {
		keep[item] = struct{}{}
	}
	return removeWhere(l, func(v T) bool {
		_, ok := keep[v]
		return !ok
	}) > 0
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	right := b.ToSlice()
	for i, v := range a.All() {
		if v != right[i] {
			return false
		}
	}
	return true
}

// removeWhere walks l through an index-based iterator so that removal
// goes through the list's own positional operations.
func removeWhere[T comparable](l List[T], match func(T) bool) int {
	removed := 0
	it := NewIterator(l)
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		if match(v) {
			if err := it.Remove(); err != nil {
				break
			}
			removed++
		}
	}
	return removed
}
