package core

// Action represents a semantic visualizer action, abstracted from physical
// key presses or mouse buttons. The platform layer decodes raw input into
// these intents; the core never sees key codes.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter/S - start the search
	ActionPause             // P - pause/resume the running search
	ActionCancel            // X - cancel the running search
	ActionGenMaze           // M - generate a carved maze (backtracker)
	ActionGenPrim           // F - generate a frontier-growth maze
	ActionGenScatter        // R - generate random scattered walls
	ActionClearPath         // C - clear search visuals, keep walls/endpoints
	ActionClearAll          // A - clear everything
	ActionSpeedUp           // + - faster animation preset
	ActionSpeedDown         // - - slower animation preset
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionCancel:
		return "Cancel"
	case ActionGenMaze:
		return "GenMaze"
	case ActionGenPrim:
		return "GenPrim"
	case ActionGenScatter:
		return "GenScatter"
	case ActionClearPath:
		return "ClearPath"
	case ActionClearAll:
		return "ClearAll"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
