package world

// openingSide describes a wall next to a solution cell and the two tiles flanking it.
type openingSide struct {
	dx, dy int
}

// openingOrder is the fixed north, south, east, west priority of the extra pass.
var openingOrder = [4]openingSide{
	{dx: 0, dy: -1},
	{dx: 0, dy: 1},
	{dx: 1, dy: 0},
	{dx: -1, dy: 0},
}

// OpenExtraWalls adds connectivity to a carved maze so the solution is less obvious.
// It samples every opts.OpenWallStride-th solution cell far enough from the exit and
// opens one wall next to it, widening T-junctions by one more wall. When a sampled
// cell has nothing to open the next cell is tried instead. It returns the opened
// coordinates; an empty result is not an error.
func OpenExtraWalls(m *Maze, opts Options) []Point {
	stride := opts.OpenWallStride
	if stride < 1 {
		stride = 1
	}

	var opened []Point
	for i := stride; i < len(m.Solution); {
		pos := m.Solution[i]

		if !farFromExit(pos, m.Exit, opts.ExitDistance) {
			i++
			continue
		}

		walls := openWallNear(m.Grid, pos)
		if len(walls) == 0 {
			i++
			continue
		}

		opened = append(opened, walls...)
		i += stride
	}

	return opened
}

// farFromExit reports whether p is more than dist rows or columns away from exit.
func farFromExit(p, exit Point, dist int) bool {
	dx, dy := p.AxisDistance(exit)
	return dx > dist || dy > dist
}

// openWallNear opens the first eligible wall around pos and returns what was opened.
// A wall is eligible if both tiles beside it, perpendicular to the opening, are
// standing walls; otherwise opening it would only merge two existing corridors.
func openWallNear(grid *Grid, pos Point) []Point {
	for _, side := range openingOrder {
		wall := pos.Add(side.dx, side.dy)
		if grid.Kind(wall) != TileWall {
			continue
		}

		// Perpendicular neighbours of the wall
		flankA := wall.Add(side.dy, side.dx)
		flankB := wall.Add(-side.dy, -side.dx)
		if grid.Kind(flankA) != TileWall || grid.Kind(flankB) != TileWall {
			continue
		}

		grid.At(wall).Kind = TileOpen
		opened := []Point{wall}

		// T-junction: the tile past the wall is a wall as well
		beyond := wall.Add(side.dx, side.dy)
		if grid.Kind(beyond) == TileWall {
			grid.At(beyond).Kind = TileOpen
			opened = append(opened, beyond)
		}
		return opened
	}
	return nil
}
