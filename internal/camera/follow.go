package camera

// Follower scrolls a Rect horizontally after a target. While idle it waits
// until the target comes within Bound tiles of a view edge, then scrolls at
// CatchUp tiles/second until the target is back at the view's midline.
type Follower struct {
	Bound   float64
	CatchUp float64
	Seek    Seek
}

// NewFollower creates an idle Follower.
func NewFollower(bound, catchUp float64) *Follower {
	return &Follower{Bound: bound, CatchUp: catchUp}
}

// Follow advances the controller by dt for a target at world x.
func (f *Follower) Follow(r *Rect, x, dt float64) {
	toEnd := (r.W - x) + r.X
	toStart := r.W - toEnd
	half := r.W / 2

	if f.Seek != SeekIdle {
		r.X += f.CatchUp * float64(f.Seek) * dt
		if f.Seek == SeekRight && toEnd >= half {
			f.Seek = SeekIdle
		} else if f.Seek == SeekLeft && toStart >= half {
			f.Seek = SeekIdle
		}
	}

	if f.Seek == SeekIdle {
		if toEnd < f.Bound {
			f.Seek = SeekRight
		} else if toStart < f.Bound {
			f.Seek = SeekLeft
		}
	}

	if r.X < 0 {
		r.X = 0
		f.Seek = SeekIdle
	}
}
