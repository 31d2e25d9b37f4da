package core

// Event represents a semantic input event, abstracted from physical key presses.
// The platform layer translates raw terminal input into these; the game core
// never sees key codes.
type Event int

const (
	EventNone       Event = iota
	EventMoveUp           // W, Up arrow - steer up
	EventMoveDown         // S, Down arrow - steer down
	EventMoveLeft         // A, Left arrow - steer left
	EventMoveRight        // D, Right arrow - steer right
	EventBoostOn          // Space pressed - speed boost active
	EventBoostOff         // Space released - back to base speed
	EventConfirm          // Enter - confirm menu selection / leave end screen
	EventSelectPrev       // Up in menu - previous option
	EventSelectNext       // Down in menu - next option
	EventQuit             // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventMoveUp:
		return "MoveUp"
	case EventMoveDown:
		return "MoveDown"
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventBoostOn:
		return "BoostOn"
	case EventBoostOff:
		return "BoostOff"
	case EventConfirm:
		return "Confirm"
	case EventSelectPrev:
		return "SelectPrev"
	case EventSelectNext:
		return "SelectNext"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement returns true for the four steering events.
func (e Event) IsMovement() bool {
	switch e {
	case EventMoveUp, EventMoveDown, EventMoveLeft, EventMoveRight:
		return true
	}
	return false
}
