package ecs

// Handle identifies a value in a Store. The generation distinguishes the
// current occupant of a slot from earlier ones, so a handle kept past
// Destroy never resolves to whatever reused the slot.
type Handle struct {
	index uint32
	gen   uint32
}

// Nil is the zero Handle; no live value ever has it.
var Nil Handle

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool { return h.gen == 0 }

// Index returns the slot index, useful as a compact key in logs and tests.
func (h Handle) Index() int { return int(h.index) }
