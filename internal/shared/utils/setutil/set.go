// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

// Set is a set of comparable values backed by a map for O(1) membership checks.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet creates a new empty Set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		items: make(map[T]struct{}),
	}
}

// FromSlice creates a Set containing all values in the slice.
func FromSlice[T comparable](values []T) *Set[T] {
	s := &Set[T]{
		items: make(map[T]struct{}, len(values)),
	}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

// Add adds a value to the set.
func (s *Set[T]) Add(v T) {
	s.items[v] = struct{}{}
}

// Has returns true if the value exists in the set.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

// ToSlice returns all values as a slice.
// The order is not guaranteed.
func (s *Set[T]) ToSlice() []T {
	result := make([]T, 0, len(s.items))
	for v := range s.items {
		result = append(result, v)
	}
	return result
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.items)
}
