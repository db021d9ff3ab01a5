package render

import (
	"math"

	"pirate-platformer/internal/camera"
)

// Viewport translates between world tiles and screen cells.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Viewport struct {
	Cols int // in terminal columns
	Rows int // in terminal rows
}

// Tiles returns how many whole tiles fit in the viewport.
func (v Viewport) Tiles() (w, h float64) {
	return float64(v.Cols / 2), float64(v.Rows)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy) relative to cam.
// visible is false when the result falls outside the viewport.
func (v Viewport) WorldToScreen(cam camera.Rect, wx, wy float64) (sx, sy int, visible bool) {
	sx = int(math.Floor(wx-cam.X)) * 2
	sy = int(math.Floor(wy - cam.Y))
	visible = sx >= 0 && sx+1 < v.Cols && sy >= 0 && sy < v.Rows
	return
}
