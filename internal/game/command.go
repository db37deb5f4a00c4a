package game

// Command is one discrete player input for a turn.
type Command int

const (
	// CommandNone passes the turn: no movement, but the enemy phase still
	// runs. Unrecognized keys map here, preserving the observed behavior
	// that any keypress advances the enemies.
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	// CommandQuit exits the run immediately with no further state change.
	CommandQuit
)

// Delta returns the movement vector for the command; the zero vector for
// anything that is not a direction.
func (c Command) Delta() (dx, dy int) {
	switch c {
	case CommandUp:
		return 0, -1
	case CommandDown:
		return 0, 1
	case CommandLeft:
		return -1, 0
	case CommandRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}
