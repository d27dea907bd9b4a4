// Package world provides maze generation and the grid model it produces.
package world

// TileKind identifies what occupies a single grid cell.
type TileKind int

const (
	// TileOpen is a walkable passage.
	TileOpen TileKind = iota
	// TileWall is an interior wall that carving may open.
	TileWall
	// TileBorder is the permanent outer ring of the maze.
	TileBorder
	// TileStart is where the player enters the maze.
	TileStart
	// TileExit is the far end of the solution path.
	TileExit
)

// String returns a human-readable tile kind name.
func (k TileKind) String() string {
	switch k {
	case TileOpen:
		return "open"
	case TileWall:
		return "wall"
	case TileBorder:
		return "border"
	case TileStart:
		return "start"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// IsObstacle returns true for kinds the player can never stand on.
func (k TileKind) IsObstacle() bool {
	return k == TileWall || k == TileBorder
}

// Rune returns the ASCII character used by Maze.String and GridFromStrings.
func (k TileKind) Rune() rune {
	switch k {
	case TileWall:
		return '#'
	case TileBorder:
		return '+'
	case TileStart:
		return 'S'
	case TileExit:
		return 'E'
	default:
		return '.'
	}
}

// Tile is a single maze cell.
type Tile struct {
	ID             int      // Sequential id in row-major scan order, starting at 1
	Kind           TileKind // What occupies the cell
	Usable         bool     // False for obstacles and for cells consumed by carving
	PartOfSolution bool     // True if the cell lies on the solution path
}

// NewTile creates a tile. Walls and borders are never usable.
func NewTile(id int, kind TileKind) Tile {
	return Tile{
		ID:     id,
		Kind:   kind,
		Usable: !kind.IsObstacle(),
	}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Kind.IsObstacle()
}
