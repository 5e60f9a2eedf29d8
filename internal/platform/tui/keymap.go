package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathviz/internal/core"
)

// KeyMapper translates Bubble Tea key messages to visualizer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "enter", "s":
		return core.ActionStart, false
	case "p", " ":
		return core.ActionPause, false
	case "x", "esc":
		return core.ActionCancel, false
	case "m":
		return core.ActionGenMaze, false
	case "f":
		return core.ActionGenPrim, false
	case "r":
		return core.ActionGenScatter, false
	case "c":
		return core.ActionClearPath, false
	case "a":
		return core.ActionClearAll, false
	case "+", "=":
		return core.ActionSpeedUp, false
	case "-", "_":
		return core.ActionSpeedDown, false
	}

	return core.ActionNone, false
}
