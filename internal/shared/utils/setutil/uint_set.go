// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

import "slices"

// UintSet is a set of uint values.
// It uses map[uint]struct{} internally for memory efficiency.
type UintSet struct {
	items map[uint]struct{}
}

// NewUintSet creates a new empty UintSet.
func NewUintSet() *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}),
	}
}

// Add adds an id to the set.
func (s *UintSet) Add(id uint) {
	s.items[id] = struct{}{}
}

// AddPtr adds the pointed-to id, ignoring nil.
func (s *UintSet) AddPtr(id *uint) {
	if id != nil {
		s.items[*id] = struct{}{}
	}
}

// Has returns true if the id exists in the set.
func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// Sorted returns all ids in ascending order.
func (s *UintSet) Sorted() []uint {
	result := make([]uint, 0, len(s.items))
	for id := range s.items {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// Len returns the number of elements in the set.
func (s *UintSet) Len() int {
	return len(s.items)
}
