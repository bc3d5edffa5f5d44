// Package keyset provides the ordered container that holds the entries of a
// single page.
//
// A page holds at most 2*rank entries, so every operation here is O(log s)
// in a small s. The container is a thin wrapper over google/btree with the
// predecessor/successor lookups the page tree needs for relinking.
package keyset

import (
	"github.com/google/btree"
)

// degree of the backing btree. Pages are small, a 2-3-4 tree is plenty.
const degree = 2

// Set is an ordered set of items. Items comparing equal under less are the
// same item.
type Set[T any] struct {
	tree *btree.BTreeG[T]
	less func(a, b T) bool
}

// New creates an empty Set ordered by less.
func New[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{
		tree: btree.NewG[T](degree, less),
		less: less,
	}
}

// Insert adds item, replacing an equal item if one exists.
// Returns true if the item was not already present.
func (s *Set[T]) Insert(item T) bool {
	_, replaced := s.tree.ReplaceOrInsert(item)
	return !replaced
}

// Delete removes the item equal to pivot and returns it.
func (s *Set[T]) Delete(pivot T) (T, bool) {
	return s.tree.Delete(pivot)
}

// Get returns the stored item equal to pivot.
func (s *Set[T]) Get(pivot T) (T, bool) {
	return s.tree.Get(pivot)
}

// Has reports whether an item equal to pivot is stored.
func (s *Set[T]) Has(pivot T) bool {
	return s.tree.Has(pivot)
}

// Min returns the smallest item.
func (s *Set[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest item.
func (s *Set[T]) Max() (T, bool) {
	return s.tree.Max()
}

// Predecessor returns the greatest item strictly less than pivot. The pivot
// itself need not be stored.
func (s *Set[T]) Predecessor(pivot T) (out T, ok bool) {
	s.tree.DescendLessOrEqual(pivot, func(item T) bool {
		if !s.less(item, pivot) {
			// equal to pivot, keep walking down
			return true
		}
		out, ok = item, true
		return false
	})
	return out, ok
}

// Successor returns the least item strictly greater than pivot. The pivot
// itself need not be stored.
func (s *Set[T]) Successor(pivot T) (out T, ok bool) {
	s.tree.AscendGreaterOrEqual(pivot, func(item T) bool {
		if !s.less(pivot, item) {
			return true
		}
		out, ok = item, true
		return false
	})
	return out, ok
}

// Len returns the number of stored items.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Ascend calls fn for every item in ascending order until fn returns false.
func (s *Set[T]) Ascend(fn func(item T) bool) {
	s.tree.Ascend(fn)
}

// Items returns all items in ascending order.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// At returns the item at position i in ascending order.
func (s *Set[T]) At(i int) (out T, ok bool) {
	if i < 0 || i >= s.tree.Len() {
		return out, false
	}
	n := 0
	s.tree.Ascend(func(item T) bool {
		if n == i {
			out, ok = item, true
			return false
		}
		n++
		return true
	})
	return out, ok
}

// Clear removes all items.
func (s *Set[T]) Clear() {
	s.tree.Clear(false)
}
