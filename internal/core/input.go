package core

// Action represents a semantic game action, abstracted from physical key presses.
// A host maps its own key events onto these before each frame.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space - upward impulse
	ActionPlay        // P - start or restart a run
	ActionQuit        // Q - ask the host to shut down
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
