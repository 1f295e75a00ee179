package component

import "sync"

// State holds one value and calls its render callback when Set changes it.
// It replaces per-instance accessor generation with an explicit container.
type State[T comparable] struct {
	mu       sync.Mutex
	value    T
	onChange func(prev, next T)
}

// NewState creates a state with an initial value. onChange may be nil.
func NewState[T comparable](initial T, onChange func(prev, next T)) *State[T] {
	return &State[T]{value: initial, onChange: onChange}
}

// Get returns the current value
func (s *State[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and reports whether it differed from the previous value.
// The callback runs after the lock is released, only on change.
func (s *State[T]) Set(v T) bool {
	return s.Update(func(T) T { return v })
}

// Update replaces the value with fn(current)
func (s *State[T]) Update(fn func(T) T) bool {
	s.mu.Lock()
	old := s.value
	next := fn(old)
	if next == old {
		s.mu.Unlock()
		return false
	}
	s.value = next
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb(old, next)
	}
	return true
}
