package state

// Store holds values keyed by ID. Values survive between frames; panels
// use it to remember their size across sessions of the same window.
type Store struct {
	data map[ID]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[ID]any)}
}

// Insert stores a value under the given ID, replacing any previous value.
func (s *Store) Insert(id ID, value any) {
	s.data[id] = value
}

// Value returns the raw value stored under the ID.
func (s *Store) Value(id ID) (any, bool) {
	v, ok := s.data[id]
	return v, ok
}

// Delete removes the value stored under the ID, if any.
func (s *Store) Delete(id ID) {
	delete(s.data, id)
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	return len(s.data)
}

// Get returns the value stored under the ID if it has type T. A stored
// value of a different type reads as absent.
func Get[T any](s *Store, id ID) (T, bool) {
	if v, ok := s.data[id]; ok {
		if t, ok := v.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
