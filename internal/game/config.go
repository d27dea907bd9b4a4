package game

import (
	"time"

	"github.com/samdwyer/amazinglylost/internal/entity"
	"github.com/samdwyer/amazinglylost/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width, Height int // Size of the first maze
	Maze          world.Options
	Movement      entity.MovementConfig

	Theme        string
	ThemesFile   string
	TickInterval time.Duration
	ShowSolution bool
}

// DefaultConfig returns a small maze with standard movement and a 10ms tick.
func DefaultConfig() Config {
	return Config{
		Width:        world.SmallMaze,
		Height:       world.SmallMaze,
		Maze:         world.DefaultOptions(),
		Movement:     entity.DefaultMovementConfig(),
		Theme:        "default",
		TickInterval: 10 * time.Millisecond,
	}
}
