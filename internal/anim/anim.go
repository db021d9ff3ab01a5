// Package anim holds the animation table and the per-entity animation
// state machine.
package anim

// ID names an entry in the animation table.
type ID uint8

const (
	CaptainIdle ID = iota
	CaptainRun
	CrabbyIdle
	CrabbyRun
	Count
)

// Def is one animation: a contiguous range of sprite frames [First, Last]
// shown for Interval seconds each.
type Def struct {
	Interval    float64
	First, Last uint8
}

// FrameCount returns the number of sprites in the animation.
func (d *Def) FrameCount() int { return int(d.Last) - int(d.First) + 1 }

// Sprite table layout: captain frames first, crabby frames after.
var table = [Count]Def{
	CaptainIdle: {Interval: 0.1, First: 0, Last: 4},
	CaptainRun:  {Interval: 0.1, First: 5, Last: 10},
	CrabbyIdle:  {Interval: 0.1, First: 11, Last: 19},
	CrabbyRun:   {Interval: 0.1, First: 20, Last: 25},
}

// SpriteCount is the size of the shared sprite table.
const SpriteCount = 26

// Get returns the shared definition for id. The returned pointer is stable
// and identifies the animation.
func Get(id ID) *Def {
	if id >= Count {
		panic("anim: unknown animation id")
	}
	return &table[id]
}
