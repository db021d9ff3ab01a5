// Package camera holds the viewport rectangle and the horizontal follow
// controller that keeps the player inside a central dead-zone.
package camera

// Rect is the visible part of the world, in tiles.
type Rect struct {
	X, Y float64
	W, H float64
}

// Bound clamps the rectangle so it stays within a map of the given size.
// A map narrower than the view pins the camera at 0.
func (r *Rect) Bound(mapW, mapH int) {
	r.X = clamp(r.X, 0, float64(mapW)-r.W)
	r.Y = clamp(r.Y, 0, float64(mapH)-r.H)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Seek is the follow controller's scrolling intent.
type Seek int8

const (
	SeekLeft  Seek = -1
	SeekIdle  Seek = 0
	SeekRight Seek = 1
)

func (s Seek) String() string {
	switch s {
	case SeekLeft:
		return "left"
	case SeekRight:
		return "right"
	}
	return "idle"
}
