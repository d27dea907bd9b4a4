package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/amazinglylost/internal/entity"
	"github.com/samdwyer/amazinglylost/internal/logger"
	"github.com/samdwyer/amazinglylost/internal/telemetry"
	"github.com/samdwyer/amazinglylost/internal/world"
)

// Session is the game state shared by generation and movement. It is driven one
// tick at a time from a single goroutine.
type Session struct {
	cfg       Config
	seed      int64
	generator *world.Generator
	tracer    trace.Tracer

	Maze      *world.Maze
	Player    *entity.Player
	colliders []entity.Collider

	state         State
	generating    bool // Set while a fresh maze has not been played yet
	width, height int
	showSolution  bool

	MazesGenerated int
	MazesCompleted int
	LastOutcome    entity.Outcome
}

// NewSession creates a session in the loading state.
func NewSession(cfg Config) (*Session, error) {
	if err := world.ValidateSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if err := cfg.Movement.Validate(); err != nil {
		return nil, fmt.Errorf("invalid movement config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Session{
		cfg:          cfg,
		seed:         seed,
		generator:    world.NewGenerator(rng, cfg.Maze),
		tracer:       telemetry.Tracer("game"),
		state:        StateLoading,
		width:        cfg.Width,
		height:       cfg.Height,
		showSolution: cfg.ShowSolution,
	}, nil
}

// Start leaves the loading state and schedules the first maze.
func (s *Session) Start() {
	if s.state == StateLoading {
		s.state = StateGenerating
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Seed returns the seed the session's random source was created with.
func (s *Session) Seed() int64 { return s.seed }

// Size returns the size used for the next maze.
func (s *Session) Size() (width, height int) { return s.width, s.height }

// ShowSolution reports whether the solution path should be drawn.
func (s *Session) ShowSolution() bool { return s.showSolution }

// ToggleSolution switches solution display on or off.
func (s *Session) ToggleSolution() {
	s.showSolution = !s.showSolution
}

// RequestNewMaze schedules a new maze for the next tick. Requests arriving while
// a fresh maze has not been played yet are dropped, so duplicate requests do not
// generate twice. It reports whether the request was accepted.
func (s *Session) RequestNewMaze() bool {
	if s.state == StateLoading || s.generating {
		return false
	}
	s.state = StateGenerating
	return true
}

// Grow enlarges the next maze by one size step and schedules it.
func (s *Session) Grow() bool {
	return s.resize(world.SizeStep)
}

// Shrink reduces the next maze by one size step and schedules it.
func (s *Session) Shrink() bool {
	return s.resize(-world.SizeStep)
}

func (s *Session) resize(delta int) bool {
	width, height := s.width+delta, s.height+delta
	if width < world.SmallMaze || height < world.SmallMaze || width > world.HugeMaze || height > world.HugeMaze {
		return false
	}
	if !s.RequestNewMaze() {
		return false
	}
	s.width, s.height = width, height
	logger.Info("maze size changed", "width", width, "height", height)
	return true
}

// RequestDirection queues a direction for the player. It is ignored outside play.
func (s *Session) RequestDirection(dir entity.Direction) {
	if s.state == StatePlaying && s.Player != nil {
		s.Player.Request(dir)
	}
}

// Tick advances the session by one step: it generates a pending maze or moves the
// player. The returned outcome reports a processed direction request, if any.
func (s *Session) Tick(ctx context.Context) (entity.Outcome, error) {
	switch s.state {
	case StateGenerating:
		return entity.OutcomeNone, s.generate(ctx)
	case StatePlaying:
		s.generating = false
		outcome := s.Player.Tick(s.colliders)
		if outcome != entity.OutcomeNone {
			s.LastOutcome = outcome
		}
		if outcome == entity.OutcomeExitReached {
			s.exitReached(ctx)
		}
		return outcome, nil
	default:
		return entity.OutcomeNone, nil
	}
}

// generate builds the next maze and places the player on its start.
func (s *Session) generate(ctx context.Context) error {
	s.generating = true

	m, err := s.generator.Generate(ctx, s.width, s.height)
	if err != nil {
		s.generating = false
		return fmt.Errorf("generating %dx%d maze: %w", s.width, s.height, err)
	}

	s.Maze = m
	s.colliders = entity.NewColliders(m.Grid, s.cfg.Movement.TileSize)
	if s.Player == nil {
		s.Player = entity.NewPlayer(m.Start, s.cfg.Movement)
	} else {
		s.Player.Reset(m.Start)
	}
	s.MazesGenerated++
	s.state = StatePlaying
	return nil
}

func (s *Session) exitReached(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "maze.exit_reached")
	span.SetAttributes(
		attribute.String("maze.id", s.Maze.ID.String()),
		attribute.Int("player.moves", s.Player.MoveCount),
		attribute.Int("maze.solution_length", len(s.Maze.Solution)),
	)
	span.End()

	logger.Info("exit reached",
		"maze_id", s.Maze.ID.String(),
		"moves", s.Player.MoveCount,
		"solution_length", len(s.Maze.Solution),
	)

	s.MazesCompleted++
	s.state = StateGenerating
}
