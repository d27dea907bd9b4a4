package world

import (
	"fmt"
	"strings"
)

// Point is a grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns the point offset by the given delta.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// AxisDistance returns the absolute column and row distance to another point.
func (p Point) AxisDistance(other Point) (dx, dy int) {
	return abs(p.X - other.X), abs(p.Y - other.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is a 2D array of tiles indexed as Tiles[y][x].
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// InBounds returns true if the point lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns a pointer to the tile at p, or nil if p is out of bounds.
func (g *Grid) At(p Point) *Tile {
	if !g.InBounds(p) {
		return nil
	}
	return &g.Tiles[p.Y][p.X]
}

// Kind returns the kind of the tile at p. Anything outside the grid reads as border.
func (g *Grid) Kind(p Point) TileKind {
	if !g.InBounds(p) {
		return TileBorder
	}
	return g.Tiles[p.Y][p.X].Kind
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(p Point) bool {
	return g.InBounds(p) && g.Tiles[p.Y][p.X].IsPassable()
}

// Count returns how many tiles have the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x].Kind == kind {
				n++
			}
		}
	}
	return n
}

// Find returns the first point holding the given kind in row-major order.
func (g *Grid) Find(kind TileKind) (Point, bool) {
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x].Kind == kind {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// String renders the grid as ASCII rows.
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			b.WriteRune(g.Tiles[y][x].Kind.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// GridFromStrings builds a grid from ASCII rows using the alphabet of TileKind.Rune.
// A space is read as open. All rows must have the same length.
func GridFromStrings(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid needs at least one row")
	}
	width := len(rows[0])
	g := &Grid{Width: width, Height: len(rows), Tiles: make([][]Tile, len(rows))}

	id := 0
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d", y, len(row), width)
		}
		g.Tiles[y] = make([]Tile, width)
		for x, ch := range []byte(row) {
			id++
			var kind TileKind
			switch ch {
			case '#':
				kind = TileWall
			case '+':
				kind = TileBorder
			case 'S':
				kind = TileStart
			case 'E':
				kind = TileExit
			case '.', ' ':
				kind = TileOpen
			default:
				return nil, fmt.Errorf("unknown tile %q at (%d,%d)", ch, x, y)
			}
			g.Tiles[y][x] = NewTile(id, kind)
		}
	}
	return g, nil
}
