package anim

// State tracks which animation an entity shows and where it is in it.
// The zero value is unusable; call Set before Tick.
type State struct {
	def   *Def
	timer float64
	frame uint8
}

// Set switches to def unconditionally, restarting at its first frame.
func (s *State) Set(def *Def) {
	if def == nil {
		panic("anim: nil animation")
	}
	s.def = def
	s.timer = def.Interval
	s.frame = def.First
}

// Change switches to def unless it is already playing, in which case frame
// and timer are left alone so a per-frame request does not stutter.
func (s *State) Change(def *Def) {
	if s.def == def {
		return
	}
	s.Set(def)
}

// Tick advances the timer by dt. When it runs out the frame moves forward
// one step, wrapping from Last back to First. A long dt still advances only
// a single frame.
func (s *State) Tick(dt float64) {
	s.timer -= dt
	if s.timer > 0 {
		return
	}
	if s.frame < s.def.Last {
		s.frame++
	} else {
		s.frame = s.def.First
	}
	s.timer = s.def.Interval
}

// Def returns the playing animation.
func (s *State) Def() *Def { return s.def }

// Frame returns the current sprite index.
func (s *State) Frame() uint8 { return s.frame }

// Timer returns the time left before the next frame.
func (s *State) Timer() float64 { return s.timer }
