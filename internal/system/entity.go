package system

import (
	"pirate-platformer/internal/anim"
	"pirate-platformer/internal/component"
	"pirate-platformer/internal/geom"
)

// Entity is one simulated actor. Entities live in a World's store; do not
// keep a pointer to one across a frame in which it could be destroyed.
type Entity struct {
	Kind  component.Kind
	Spawn geom.V2i

	Pos geom.V2
	Vel geom.V2

	Anim anim.State

	Health    int
	MaxHealth int

	behavior behavior
}

// Meta returns the kind's shared metadata.
func (e *Entity) Meta() *component.Meta { return component.MetaOf(e.Kind) }

// Box returns the collision mask translated to the entity's position.
func (e *Entity) Box() geom.Box { return e.Meta().Mask.Translate(e.Pos) }

// Hurt removes n health, stopping at zero.
func (e *Entity) Hurt(n int) {
	e.Health -= n
	if e.Health < 0 {
		e.Health = 0
	}
}

// Heal restores n health, capped at MaxHealth.
func (e *Entity) Heal(n int) {
	e.Health += n
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
}

// Dead reports whether the entity has no health left.
func (e *Entity) Dead() bool { return e.Health <= 0 }

// pickAnimation requests run or idle from horizontal speed. It is called
// every frame; Change keeps the current animation's progress when the
// request does not change it.
func (e *Entity) pickAnimation(threshold float64) {
	meta := e.Meta()
	if abs(e.Vel.X) > threshold {
		e.Anim.Change(anim.Get(meta.RunAnim))
	} else {
		e.Anim.Change(anim.Get(meta.IdleAnim))
	}
}

func integrate(e *Entity, dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
