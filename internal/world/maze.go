package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/amazinglylost/internal/logger"
	"github.com/samdwyer/amazinglylost/internal/telemetry"
)

const (
	// Maze size presets
	SmallMaze  = 33
	MediumMaze = 77
	LargeMaze  = 121
	HugeMaze   = 231
	SizeStep   = 33

	// MinDimension is the smallest side that holds two open cells, so start and exit differ.
	MinDimension = 5
	// MaxDimension caps either side to bound grid memory.
	MaxDimension = 2001

	// Extra opening parameters
	DefaultOpenWallStride = 15
	DefaultExitDistance   = 10
)

// Generation errors.
var (
	ErrMazeTooSmall = errors.New("maze dimension too small")
	ErrMazeTooLarge = errors.New("maze dimension too large")
)

// Options tunes maze generation.
type Options struct {
	// OpenWallStride is how many solution cells to skip between extra openings.
	OpenWallStride int `yaml:"open_wall_stride"`
	// ExitDistance is the row or column distance from the exit a cell must exceed
	// before a wall next to it may be opened.
	ExitDistance int `yaml:"exit_distance"`
	// ExtraOpenings enables the extra connectivity pass after carving.
	ExtraOpenings bool `yaml:"extra_openings"`
}

// DefaultOptions returns the standard generation options.
func DefaultOptions() Options {
	return Options{
		OpenWallStride: DefaultOpenWallStride,
		ExitDistance:   DefaultExitDistance,
		ExtraOpenings:  true,
	}
}

// CarveStats summarises one carve run.
type CarveStats struct {
	Cells      int // Open cells visited, start included
	Backtracks int // Dead ends popped off the path stack
	MaxDepth   int // Deepest path stack, in cells
}

// Maze is a generated maze with its solution.
type Maze struct {
	ID       uuid.UUID
	Grid     *Grid
	Solution []Point // Start to exit, alternating open cell and carved wall
	Start    Point
	Exit     Point
	Openings []Point // Walls opened by the extra connectivity pass
	Stats    CarveStats
}

// Width returns the maze width in tiles.
func (m *Maze) Width() int { return m.Grid.Width }

// Height returns the maze height in tiles.
func (m *Maze) Height() int { return m.Grid.Height }

// String renders the maze as ASCII rows.
func (m *Maze) String() string {
	return m.Grid.String()
}

// Generator builds mazes from a random source.
type Generator struct {
	rng  *rand.Rand
	opts Options
}

// NewGenerator creates a generator. Passing the same seeded rng yields the same mazes.
func NewGenerator(rng *rand.Rand, opts Options) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, opts: opts}
}

// ValidateSize reports whether a maze of the given size can be generated.
func ValidateSize(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return fmt.Errorf("%w: %dx%d, minimum is %d", ErrMazeTooSmall, width, height, MinDimension)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d, maximum is %d", ErrMazeTooLarge, width, height, MaxDimension)
	}
	return nil
}

// Generate creates a new maze of the given size.
func (g *Generator) Generate(ctx context.Context, width, height int) (*Maze, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	grid, start := g.initialize(width, height)
	solution, stats := g.carve(grid, start)

	exit := solution[len(solution)-1]
	grid.At(exit).Kind = TileExit
	for _, p := range solution {
		grid.At(p).PartOfSolution = true
	}

	m := &Maze{
		ID:       uuid.New(),
		Grid:     grid,
		Solution: solution,
		Start:    start,
		Exit:     exit,
		Stats:    stats,
	}

	if g.opts.ExtraOpenings {
		m.Openings = OpenExtraWalls(m, g.opts)
	}

	elapsed := time.Since(startTime)
	span.SetAttributes(
		attribute.String("maze.id", m.ID.String()),
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
		attribute.Int("maze.cells", stats.Cells),
		attribute.Int("maze.backtracks", stats.Backtracks),
		attribute.Int("maze.solution_length", len(solution)),
		attribute.Int("maze.openings", len(m.Openings)),
		attribute.Int64("maze.generation_ms", elapsed.Milliseconds()),
	)
	logger.Info("maze generated",
		"maze_id", m.ID.String(),
		"width", width,
		"height", height,
		"solution_length", len(solution),
		"openings", len(m.Openings),
		"duration", elapsed,
	)

	return m, nil
}

// initialize lays out the border ring, the open candidates on odd/odd cells and the
// walls between them, then picks a random start.
func (g *Generator) initialize(width, height int) (*Grid, Point) {
	grid := &Grid{Width: width, Height: height, Tiles: make([][]Tile, height)}
	candidates := make([]Point, 0, (width/2)*(height/2))

	id := 0
	for y := 0; y < height; y++ {
		grid.Tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			id++
			switch {
			case y == 0 || y == height-1 || x == 0 || x == width-1:
				grid.Tiles[y][x] = NewTile(id, TileBorder)
			case x%2 != 0 && y%2 != 0:
				grid.Tiles[y][x] = NewTile(id, TileOpen)
				candidates = append(candidates, Point{X: x, Y: y})
			default:
				grid.Tiles[y][x] = NewTile(id, TileWall)
			}
		}
	}

	start := candidates[g.rng.Intn(len(candidates))]
	tile := grid.At(start)
	tile.Kind = TileStart
	tile.Usable = false

	return grid, start
}

// step is one entry of the carve stack: an open cell and the wall carved to reach it.
type step struct {
	cell Point
	wall Point
}

// carveMove is a candidate move two cells away through a standing wall.
type carveMove struct {
	wall Point
	next Point
}

// carveDeltas lists the four axis-aligned directions in candidate order.
var carveDeltas = [4]Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// carve runs the randomized backtracking walk from start and returns the longest
// path the walk produced.
//
// The best path is kept as a flattened copy of the stack at its deepest point. The
// stack below low has not been popped since that copy was taken, so a new record
// only rewrites the part above low.
func (g *Generator) carve(grid *Grid, start Point) ([]Point, CarveStats) {
	stack := []step{{cell: start}}
	best := []Point{start}
	low := 1
	stats := CarveStats{Cells: 1, MaxDepth: 1}

	var moves [4]carveMove
	for {
		current := stack[len(stack)-1].cell

		n := 0
		for _, d := range carveDeltas {
			wall := current.Add(d.X, d.Y)
			next := current.Add(2*d.X, 2*d.Y)
			if grid.Kind(wall) != TileWall {
				continue
			}
			if tile := grid.At(next); tile != nil && tile.Usable {
				moves[n] = carveMove{wall: wall, next: next}
				n++
			}
		}

		if n == 0 {
			if len(stack) == 1 {
				break
			}
			stack = stack[:len(stack)-1]
			low = min(low, len(stack))
			stats.Backtracks++
			continue
		}

		move := moves[g.rng.Intn(n)]
		grid.At(move.wall).Kind = TileOpen
		grid.At(move.next).Usable = false
		stack = append(stack, step{cell: move.next, wall: move.wall})
		stats.Cells++

		if len(stack) > stats.MaxDepth {
			stats.MaxDepth = len(stack)
			best = extendPath(best[:2*low-1], stack[low:])
			low = len(stack)
		}
	}

	return best, stats
}

// extendPath appends the wall and cell of each step to path.
func extendPath(path []Point, steps []step) []Point {
	for _, s := range steps {
		path = append(path, s.wall, s.cell)
	}
	return path
}
