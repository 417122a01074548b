package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game model consumes them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, K - move cursor up
	ActionDown           // S, Down arrow, J - move cursor down
	ActionLeft           // A, Left arrow, H - move cursor left
	ActionRight          // D, Right arrow, L - move cursor right
	ActionReveal         // Space, Enter - reveal the cell under the cursor
	ActionFlag           // F - toggle a flag on the cell under the cursor
	ActionRestart        // R - start a fresh board after game over
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
