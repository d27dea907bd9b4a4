// Package entity provides the player and its tile-to-tile movement.
package entity

import (
	"fmt"
	"math"

	"github.com/samdwyer/amazinglylost/internal/world"
)

// Default movement parameters. TileSize must be an exact multiple of StepsPerTile.
const (
	DefaultTileSize     = 100.0
	DefaultStepsPerTile = 20
)

// MovementConfig controls how fast the player crosses a tile.
type MovementConfig struct {
	TileSize     float64 `yaml:"tile_size"`      // World units per tile
	StepsPerTile int     `yaml:"steps_per_tile"` // Ticks needed to cross one tile
}

// DefaultMovementConfig returns the standard movement parameters.
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		TileSize:     DefaultTileSize,
		StepsPerTile: DefaultStepsPerTile,
	}
}

// StepSize returns the distance moved per tick.
func (c MovementConfig) StepSize() float64 {
	return c.TileSize / float64(c.StepsPerTile)
}

// Validate checks that interpolation lands exactly on tile boundaries.
func (c MovementConfig) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %v", c.TileSize)
	}
	if c.StepsPerTile <= 0 {
		return fmt.Errorf("steps per tile must be positive, got %d", c.StepsPerTile)
	}
	if math.Mod(c.TileSize, float64(c.StepsPerTile)) != 0 {
		return fmt.Errorf("tile size %v is not a multiple of %d steps", c.TileSize, c.StepsPerTile)
	}
	return nil
}

// Motion is the state of the movement machine.
type Motion int

const (
	// MotionIdle means the player rests on a tile and accepts requests.
	MotionIdle Motion = iota
	// MotionMoving means the player is between tiles and ignores requests.
	MotionMoving
)

// String returns a human-readable motion name.
func (m Motion) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Outcome is the result of processing one direction request.
type Outcome int

const (
	// OutcomeNone means no request was processed this tick.
	OutcomeNone Outcome = iota
	// OutcomeMoved means the player started moving to the next tile.
	OutcomeMoved
	// OutcomeBlocked means a wall is in the way; the request was dropped.
	OutcomeBlocked
	// OutcomeExitReached means the next tile is the exit.
	OutcomeExitReached
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeExitReached:
		return "exit_reached"
	default:
		return "unknown"
	}
}

// Player is the agent walking the maze. X, Y interpolate toward TargetX, TargetY
// along one axis while Moving is set; at rest they are equal.
type Player struct {
	X, Y             float64   // Current position in world units
	TargetX, TargetY float64   // Position being moved to
	Moving           Direction // Active movement, DirNone when idle
	Facing           Direction // Last requested direction
	MoveCount        int       // Committed tile moves
	LastCollision    CollisionResult

	cell    world.Point // Tile of the last completed move
	pending Direction
	cfg     MovementConfig
}

// NewPlayer creates an idle player resting on the given tile.
func NewPlayer(cell world.Point, cfg MovementConfig) *Player {
	p := &Player{cfg: cfg}
	p.Reset(cell)
	return p
}

// Reset places the player at rest on a tile and clears any pending request.
func (p *Player) Reset(cell world.Point) {
	p.cell = cell
	p.X = float64(cell.X) * p.cfg.TileSize
	p.Y = float64(cell.Y) * p.cfg.TileSize
	p.TargetX, p.TargetY = p.X, p.Y
	p.Moving = DirNone
	p.Facing = DirNorth
	p.MoveCount = 0
	p.pending = DirNone
	p.LastCollision = CollisionResult{}
}

// Motion returns the current movement state.
func (p *Player) Motion() Motion {
	if p.Moving == DirNone {
		return MotionIdle
	}
	return MotionMoving
}

// Cell returns the tile of the last completed move.
func (p *Player) Cell() world.Point {
	return p.cell
}

// NearestCell returns the tile closest to the interpolated position.
func (p *Player) NearestCell() world.Point {
	return world.Point{
		X: int(math.Round(p.X / p.cfg.TileSize)),
		Y: int(math.Round(p.Y / p.cfg.TileSize)),
	}
}

// Box returns the player's current bounding box.
func (p *Player) Box() Box {
	return Box{CenterX: p.X, CenterY: p.Y, Width: p.cfg.TileSize, Height: p.cfg.TileSize}
}

// Request queues a direction for the next tick. Only one request is held; a later
// request in the same tick replaces an earlier one.
func (p *Player) Request(dir Direction) {
	p.pending = dir
}

// Pending returns the queued direction.
func (p *Player) Pending() Direction {
	return p.pending
}

// Tick runs one step of the movement machine. An idle player processes the pending
// request and reports its outcome; a moving player discards it and advances.
func (p *Player) Tick(colliders []Collider) Outcome {
	dir := p.pending
	p.pending = DirNone

	if p.Moving != DirNone {
		p.advance()
		return OutcomeNone
	}
	if dir == DirNone {
		return OutcomeNone
	}
	return p.try(dir, colliders)
}

// try probes one step ahead in dir and commits the move when nothing is hit.
// Probing the destination keeps the player from ever overlapping a wall.
func (p *Player) try(dir Direction, colliders []Collider) Outcome {
	p.Facing = dir

	dx, dy := dir.Delta()
	step := p.cfg.StepSize()
	ahead := p.Box().Offset(float64(dx)*step, float64(dy)*step)

	result := Probe(ahead, colliders)
	p.LastCollision = result

	switch {
	case result.Clear():
		p.TargetX = p.X + float64(dx)*p.cfg.TileSize
		p.TargetY = p.Y + float64(dy)*p.cfg.TileSize
		p.Moving = dir
		p.MoveCount++
		return OutcomeMoved
	case result.Exit:
		return OutcomeExitReached
	default:
		return OutcomeBlocked
	}
}

// advance moves one step toward the target and goes idle on arrival.
func (p *Player) advance() {
	dx, dy := p.Moving.Delta()
	step := p.cfg.StepSize()

	p.X = approach(p.X, p.TargetX, float64(dx)*step)
	p.Y = approach(p.Y, p.TargetY, float64(dy)*step)

	if p.X == p.TargetX && p.Y == p.TargetY {
		p.Moving = DirNone
		p.cell = p.NearestCell()
	}
}

// approach adds delta to v without passing target.
func approach(v, target, delta float64) float64 {
	next := v + delta
	if (delta > 0 && next > target) || (delta < 0 && next < target) {
		return target
	}
	return next
}
