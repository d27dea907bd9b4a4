// Package game provides the tick loop, game phases and session state.
package game

// State is the current phase of the game.
type State int

const (
	// StateLoading is active while themes and other assets load.
	StateLoading State = iota
	// StateGenerating means a new maze is due on the next tick.
	StateGenerating
	// StatePlaying is the normal phase where the player walks the maze.
	StatePlaying
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateGenerating:
		return "generating"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}
