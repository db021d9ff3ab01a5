package ecs

type slot[T any] struct {
	val   T
	gen   uint32
	alive bool
}

// Store is a dense slot arena. Destroyed slots are tombstoned and recycled
// through a free list. Slots freed while Each is running are only recycled
// after the pass, and values created during a pass are not visited by it.
//
// Pointers returned by Get and passed to Each are valid until the next
// Create. Store is not safe for concurrent use.
type Store[T any] struct {
	slots   []slot[T]
	free    []uint32
	pending []uint32
	passes  int
	live    int
}

// NewStore creates an empty Store with room for capacity values.
func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{slots: make([]slot[T], 0, capacity)}
}

// Create stores v and returns its handle. During a pass it always appends,
// so the new slot lies past the pass's snapshot.
func (s *Store[T]) Create(v T) Handle {
	var idx uint32
	if n := len(s.free); n > 0 && s.passes == 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot[T]{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.alive = true
	sl.val = v
	s.live++
	return Handle{index: idx, gen: sl.gen}
}

// Destroy removes the value for h. It reports false when h is stale.
func (s *Store[T]) Destroy(h Handle) bool {
	if !s.Alive(h) {
		return false
	}
	sl := &s.slots[h.index]
	sl.alive = false
	var zero T
	sl.val = zero
	s.live--
	if s.passes > 0 {
		s.pending = append(s.pending, h.index)
	} else {
		s.free = append(s.free, h.index)
	}
	return true
}

// Alive reports whether h refers to a live value.
func (s *Store[T]) Alive(h Handle) bool {
	if h.gen == 0 || int(h.index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.index]
	return sl.alive && sl.gen == h.gen
}

// Get returns the value for h, or nil when h is stale.
func (s *Store[T]) Get(h Handle) *T {
	if !s.Alive(h) {
		return nil
	}
	return &s.slots[h.index].val
}

// Len returns the number of live values.
func (s *Store[T]) Len() int { return s.live }

// Each calls fn for every live value in slot order. fn may destroy any
// value, including the one it was handed.
func (s *Store[T]) Each(fn func(Handle, *T)) {
	n := len(s.slots)
	s.passes++
	defer s.endPass()
	for i := 0; i < n; i++ {
		sl := &s.slots[i]
		if !sl.alive {
			continue
		}
		fn(Handle{index: uint32(i), gen: sl.gen}, &sl.val)
	}
}

func (s *Store[T]) endPass() {
	s.passes--
	if s.passes == 0 && len(s.pending) > 0 {
		s.free = append(s.free, s.pending...)
		s.pending = s.pending[:0]
	}
}
