package engine

import (
	"github.com/lixenwraith/arcade-siege/core"
)

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Store is a generational arena for one entity kind
// Handles stay valid while the entity lives; removal bumps the slot generation
// Iteration runs in slot order, which equals insertion order after Clear
// Not synchronized: callers hold the World update lock
type Store[T any] struct {
	slots []slot[T]
	free  []uint32 // Reusable slot indices, popped from the end
	count int
}

// NewStore creates an empty store with room for capacity entities
func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Add inserts a value and returns its handle
func (s *Store[T]) Add(value T) core.Handle {
	s.count++
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.value = value
		sl.live = true
		return core.Handle{Index: idx, Generation: sl.generation}
	}

	s.slots = append(s.slots, slot[T]{value: value, generation: 1, live: true})
	return core.Handle{Index: uint32(len(s.slots) - 1), Generation: 1}
}

// Get returns a pointer to the live value for h
// The pointer is valid until the next Add, Remove or Clear
func (s *Store[T]) Get(h core.Handle) (*T, bool) {
	if !s.valid(h) {
		return nil, false
	}
	return &s.slots[h.Index].value, true
}

// Contains reports whether h refers to a live entity
func (s *Store[T]) Contains(h core.Handle) bool {
	return s.valid(h)
}

// Remove deletes the entity behind h; stale handles are ignored
func (s *Store[T]) Remove(h core.Handle) bool {
	if !s.valid(h) {
		return false
	}
	s.release(h.Index)
	return true
}

// Each calls fn for every live entity in slot order until fn returns false
// fn may remove the entity it is visiting
func (s *Store[T]) Each(fn func(h core.Handle, v *T) bool) {
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		if !fn(core.Handle{Index: uint32(i), Generation: sl.generation}, &sl.value) {
			return
		}
	}
}

// RemoveIf deletes every live entity matching pred and returns the count removed
func (s *Store[T]) RemoveIf(pred func(v *T) bool) int {
	removed := 0
	for i := range s.slots {
		if s.slots[i].live && pred(&s.slots[i].value) {
			s.release(uint32(i))
			removed++
		}
	}
	return removed
}

// Values returns a copy of all live values in slot order
func (s *Store[T]) Values() []T {
	out := make([]T, 0, s.count)
	for i := range s.slots {
		if s.slots[i].live {
			out = append(out, s.slots[i].value)
		}
	}
	return out
}

// Len returns the number of live entities
func (s *Store[T]) Len() int {
	return s.count
}

// Clear removes every entity but keeps allocated slots for reuse
// Generations are bumped so handles from before Clear stay invalid
func (s *Store[T]) Clear() {
	var zero T
	s.free = s.free[:0]
	for i := len(s.slots) - 1; i >= 0; i-- {
		sl := &s.slots[i]
		if sl.live {
			sl.generation++
			sl.live = false
		}
		sl.value = zero
		s.free = append(s.free, uint32(i))
	}
	s.count = 0
}

func (s *Store[T]) valid(h core.Handle) bool {
	if !h.IsValid() || int(h.Index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.Index]
	return sl.live && sl.generation == h.Generation
}

func (s *Store[T]) release(idx uint32) {
	var zero T
	sl := &s.slots[idx]
	sl.value = zero
	sl.live = false
	sl.generation++
	s.free = append(s.free, idx)
	s.count--
}
