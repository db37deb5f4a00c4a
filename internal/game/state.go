// Package game provides the turn engine: movement, combat, enemy policies,
// and fog-of-war.
package game

// State represents the current simulation state.
type State int

const (
	// StatePlaying is the active state: turns keep advancing.
	StatePlaying State = iota
	// StatePlayerDead is terminal: the player's HP reached 0.
	StatePlayerDead
	// StateAllCleared is terminal: every enemy has been eliminated.
	StateAllCleared
)

// Terminal reports whether the state ends the run.
func (s State) Terminal() bool {
	return s != StatePlaying
}

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePlayerDead:
		return "player_dead"
	case StateAllCleared:
		return "all_enemies_cleared"
	default:
		return "unknown"
	}
}
