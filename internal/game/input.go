package game

import (
	"pirate-platformer/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionHold        // hold a simulation key down
	ActionQuit
)

// keyToAction maps a tcell key event to a game action. For ActionHold the
// key code to hold is returned as well.
func keyToAction(ev *tcell.EventKey) (Action, byte) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionHold, input.KeyUp
	case tcell.KeyDown:
		return ActionHold, input.KeyDown
	case tcell.KeyRight:
		return ActionHold, input.KeyRight
	case tcell.KeyLeft:
		return ActionHold, input.KeyLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W', ' ':
		return ActionHold, input.KeyUp
	case 'a', 'A':
		return ActionHold, input.KeyLeft
	case 's', 'S':
		return ActionHold, input.KeyDown
	case 'd', 'D':
		return ActionHold, input.KeyRight
	case 'r', 'R':
		return ActionHold, input.KeyRestart
	case 'q', 'Q':
		return ActionQuit, 0
	}
	return ActionNone, 0
}
