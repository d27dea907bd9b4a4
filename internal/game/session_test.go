package game

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/amazinglylost/internal/entity"
	"github.com/samdwyer/amazinglylost/internal/world"
)

func testConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// started returns a session that has generated its first maze.
func started(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.Start()
	_, err = s.Tick(context.Background())
	require.NoError(t, err)
	require.Equal(t, StatePlaying, s.State())
	return s
}

// settle runs one playing tick so the session accepts new maze requests again.
func settle(t *testing.T, s *Session) {
	t.Helper()
	for s.State() != StatePlaying {
		_, err := s.Tick(context.Background())
		require.NoError(t, err)
	}
	_, err := s.Tick(context.Background())
	require.NoError(t, err)
}

// withMaze swaps in a hand-drawn maze with the player on its start tile.
func withMaze(t *testing.T, s *Session, rows ...string) {
	t.Helper()
	grid, err := world.GridFromStrings(rows)
	require.NoError(t, err)
	start, ok := grid.Find(world.TileStart)
	require.True(t, ok)
	exit, ok := grid.Find(world.TileExit)
	require.True(t, ok)

	s.Maze = &world.Maze{ID: uuid.New(), Grid: grid, Start: start, Exit: exit, Solution: []world.Point{start, exit}}
	s.colliders = entity.NewColliders(grid, s.cfg.Movement.TileSize)
	s.Player.Reset(start)
	s.state = StatePlaying
}

func directionBetween(from, to world.Point) entity.Direction {
	switch {
	case to.Y < from.Y:
		return entity.DirNorth
	case to.Y > from.Y:
		return entity.DirSouth
	case to.X > from.X:
		return entity.DirEast
	case to.X < from.X:
		return entity.DirWest
	default:
		return entity.DirNone
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateLoading, "loading"},
		{StateGenerating, "generating"},
		{StatePlaying, "playing"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := testConfig(1)
	cfg.Width = 3
	_, err := NewSession(cfg)
	assert.ErrorIs(t, err, world.ErrMazeTooSmall)

	cfg = testConfig(1)
	cfg.Movement.StepsPerTile = 0
	_, err = NewSession(cfg)
	assert.Error(t, err)
}

func TestSessionSeed(t *testing.T) {
	s, err := NewSession(testConfig(1234))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), s.Seed())

	s, err = NewSession(testConfig(0))
	require.NoError(t, err)
	assert.NotZero(t, s.Seed(), "seed 0 should be replaced with a time-based seed")
}

func TestSessionPhases(t *testing.T) {
	s, err := NewSession(testConfig(42))
	require.NoError(t, err)
	assert.Equal(t, StateLoading, s.State())

	// Nothing happens until loading finishes
	outcome, err := s.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeNone, outcome)
	assert.Equal(t, StateLoading, s.State())
	assert.False(t, s.RequestNewMaze(), "no new maze while loading")
	assert.Nil(t, s.Maze)

	s.Start()
	assert.Equal(t, StateGenerating, s.State())

	_, err = s.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, s.State())
	require.NotNil(t, s.Maze)
	assert.Equal(t, world.SmallMaze, s.Maze.Width())
	assert.Equal(t, s.Maze.Start, s.Player.Cell())
	assert.Equal(t, 1, s.MazesGenerated)
}

func TestSessionReproducible(t *testing.T) {
	a := started(t, testConfig(99))
	b := started(t, testConfig(99))
	assert.Equal(t, a.Maze.String(), b.Maze.String())
}

func TestRequestNewMazeGuard(t *testing.T) {
	s := started(t, testConfig(7))
	first := s.Maze.ID

	// The fresh maze has not been played yet
	assert.False(t, s.RequestNewMaze())
	assert.Equal(t, StatePlaying, s.State())

	_, err := s.Tick(context.Background())
	require.NoError(t, err)

	assert.True(t, s.RequestNewMaze())
	assert.True(t, s.RequestNewMaze(), "repeat requests before generation collapse into one")
	_, err = s.Tick(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, s.Maze.ID)
	assert.Equal(t, 2, s.MazesGenerated)
}

func TestGrowShrink(t *testing.T) {
	s := started(t, testConfig(3))
	settle(t, s)

	assert.False(t, s.Shrink(), "already at the smallest size")

	require.True(t, s.Grow())
	w, h := s.Size()
	assert.Equal(t, world.SmallMaze+world.SizeStep, w)
	assert.Equal(t, world.SmallMaze+world.SizeStep, h)
	settle(t, s)
	assert.Equal(t, w, s.Maze.Width())

	require.True(t, s.Shrink())
	w, _ = s.Size()
	assert.Equal(t, world.SmallMaze, w)

	cfg := testConfig(3)
	cfg.Width, cfg.Height = world.HugeMaze, world.HugeMaze
	s = started(t, cfg)
	settle(t, s)
	assert.False(t, s.Grow(), "already at the largest size")
}

func TestRequestDirectionIgnoredBeforePlay(t *testing.T) {
	s, err := NewSession(testConfig(5))
	require.NoError(t, err)
	assert.NotPanics(t, func() { s.RequestDirection(entity.DirNorth) })
}

func TestToggleSolution(t *testing.T) {
	cfg := testConfig(5)
	cfg.ShowSolution = true
	s, err := NewSession(cfg)
	require.NoError(t, err)

	assert.True(t, s.ShowSolution())
	s.ToggleSolution()
	assert.False(t, s.ShowSolution())
}

func TestSessionMoveAndBlock(t *testing.T) {
	s := started(t, testConfig(11))
	withMaze(t, s,
		"+++++",
		"+S.E+",
		"+.#.+",
		"+...+",
		"+++++",
	)
	ctx := context.Background()

	s.RequestDirection(entity.DirNorth)
	outcome, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeBlocked, outcome)
	assert.Equal(t, entity.OutcomeBlocked, s.LastOutcome)

	s.RequestDirection(entity.DirSouth)
	outcome, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeMoved, outcome)

	for i := 0; i < s.cfg.Movement.StepsPerTile; i++ {
		_, err = s.Tick(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, world.Point{X: 1, Y: 2}, s.Player.Cell())
	assert.Equal(t, entity.MotionIdle, s.Player.Motion())
}

func TestSessionExitStartsNextMaze(t *testing.T) {
	s := started(t, testConfig(13))
	withMaze(t, s,
		"+++++",
		"+.SE+",
		"+.#.+",
		"+...+",
		"+++++",
	)
	ctx := context.Background()

	s.RequestDirection(entity.DirEast)
	outcome, err := s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeExitReached, outcome)
	assert.Equal(t, StateGenerating, s.State())
	assert.Equal(t, 1, s.MazesCompleted)

	_, err = s.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 2, s.MazesGenerated)
	assert.Equal(t, s.Maze.Start, s.Player.Cell())
	assert.Zero(t, s.Player.MoveCount)
}

func TestWalkSolutionReachesExit(t *testing.T) {
	s := started(t, testConfig(2024))
	ctx := context.Background()
	solution := s.Maze.Solution
	require.GreaterOrEqual(t, len(solution), 2)

	for i := 1; i < len(solution); i++ {
		s.RequestDirection(directionBetween(solution[i-1], solution[i]))
		outcome, err := s.Tick(ctx)
		require.NoError(t, err)

		if i == len(solution)-1 {
			require.Equal(t, entity.OutcomeExitReached, outcome, "last step should reach the exit")
			break
		}
		require.Equal(t, entity.OutcomeMoved, outcome, "step %d from %v to %v", i, solution[i-1], solution[i])

		for j := 0; j < s.cfg.Movement.StepsPerTile; j++ {
			_, err = s.Tick(ctx)
			require.NoError(t, err)
		}
		require.Equal(t, solution[i], s.Player.Cell())
	}

	assert.Equal(t, 1, s.MazesCompleted)
	assert.Equal(t, StateGenerating, s.State())
}

func TestEveryGeneratingTickBuildsMaze(t *testing.T) {
	s := started(t, testConfig(17))
	ctx := context.Background()

	for i := 2; i <= 4; i++ {
		settle(t, s)
		require.True(t, s.RequestNewMaze())
		_, err := s.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, s.State())
		assert.Equal(t, i, s.MazesGenerated)
	}
}
