package system

import (
	"pirate-platformer/internal/component"
	"pirate-platformer/internal/geom"
	"pirate-platformer/internal/input"
	"pirate-platformer/internal/tilemap"
)

// behavior is the closed set of per-kind logic. It is picked once when the
// entity is created.
type behavior interface {
	spawn(w *World, e *Entity)
	step(w *World, e *Entity)
}

func behaviorFor(k component.Kind) behavior {
	switch k {
	case component.KindCaptain:
		return captain{}
	case component.KindCrabby:
		return crabby{}
	}
	panic("system: no behavior for kind " + k.String())
}

// skin is how far outside the mask the captain probes for surfaces.
const skin = 1.0 / component.TileLen

// footProbe is how far below the crabby's mask its ground probes sit.
const footProbe = 0.3

type touches struct {
	below, above, left, right bool
}

// probe samples the map around the absolute box b. Each side is tested at
// two points so a surface under only one corner still counts.
func probe(m *tilemap.Map, b geom.Box) touches {
	hit := func(x, y float64) bool { return m.Tile(x, y).Occupied() }
	h := b.BR.Y - b.TL.Y
	upper := b.TL.Y + skin
	lower := b.TL.Y + h*0.75
	return touches{
		below: hit(b.TL.X+skin, b.BR.Y) || hit(b.BR.X-skin, b.BR.Y),
		above: hit(b.TL.X+skin, b.TL.Y-skin) || hit(b.BR.X-skin, b.TL.Y-skin),
		left:  hit(b.TL.X-skin, upper) || hit(b.TL.X-skin, lower),
		right: hit(b.BR.X+skin, upper) || hit(b.BR.X+skin, lower),
	}
}

type captain struct{}

func (captain) spawn(*World, *Entity) {}

func (captain) step(w *World, e *Entity) {
	t := probe(w.Map, e.Box())
	keys := w.keys

	var dir geom.V2
	if keys.Down(input.KeyUp) && !t.above {
		dir.Y = -1
	}
	if keys.Down(input.KeyDown) && !t.below {
		dir.Y = 1
	}
	if keys.Down(input.KeyLeft) && !t.left {
		dir.X = -1
	}
	if keys.Down(input.KeyRight) && !t.right {
		dir.X = 1
	}

	// Gravity always applies and is taken back out while standing on
	// something. This stands in for real collision resolution.
	e.Vel = dir.Scale(w.Tuning.CaptainSpeed)
	e.Vel.Y += w.Tuning.Gravity
	if t.below {
		e.Vel.Y -= w.Tuning.Gravity
	}

	e.pickAnimation(w.Tuning.RunThreshold)

	x := e.Pos.X + e.Meta().Mask.TL.X
	w.Follow.Follow(&w.Camera, x, w.dt)
	w.Camera.Bound(w.Map.Width, w.Map.Height)
}

type crabby struct{}

func (crabby) spawn(w *World, e *Entity) {
	e.Vel.X = w.Tuning.CrabbySpeed
}

// step turns the crab around when the ground under either front corner is
// anything but grass.
func (crabby) step(w *World, e *Entity) {
	b := e.Box()
	y := b.BR.Y + footProbe
	leftBad := w.Map.Tile(b.TL.X, y) != tilemap.TileGrass
	rightBad := w.Map.Tile(b.BR.X, y) != tilemap.TileGrass

	if leftBad || rightBad {
		e.Vel.X = -e.Vel.X
	}

	e.pickAnimation(w.Tuning.RunThreshold)
}
