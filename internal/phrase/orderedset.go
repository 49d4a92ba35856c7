// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package phrase

// OrderedSet is a string set that iterates in first-insertion order.
type OrderedSet struct {
	seen  map[string]struct{}
	items []string
}

// NewOrderedSet returns a set holding items, duplicates dropped.
func NewOrderedSet(items ...string) *OrderedSet {
	s := &OrderedSet{seen: make(map[string]struct{}, len(items))}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts v and reports whether it was new.
func (s *OrderedSet) Add(v string) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Has reports whether v is in the set.
func (s *OrderedSet) Has(v string) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of elements.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Items returns the elements in insertion order. The result is never nil.
func (s *OrderedSet) Items() []string {
	return append(make([]string, 0, len(s.items)), s.items...)
}
