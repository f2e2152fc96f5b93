package view

// orderedSet is a set which remembers insertion order. Pending work is kept
// in ordered sets: recording the same item twice has no effect, and
// items are processed in the order of their first recording.
type orderedSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

func newOrderedSet[T comparable]() *orderedSet[T] {
	return &orderedSet[T]{index: make(map[T]struct{})}
}

func (s *orderedSet[T]) add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *orderedSet[T]) contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

func (s *orderedSet[T]) len() int {
	return len(s.items)
}

func (s *orderedSet[T]) clear() {
	s.items = nil
	s.index = make(map[T]struct{})
}

// drain empties the set and returns its items.
func (s *orderedSet[T]) drain() []T {
	items := s.items
	s.clear()
	return items
}
