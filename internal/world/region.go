package world

// Region is a rectangular window over the maze grid.
type Region struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the region
}

// RegionAround returns a region of the given size centred on p.
func RegionAround(p Point, width, height int) Region {
	return Region{
		X:      p.X - width/2,
		Y:      p.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Contains returns true if the given point is inside the region.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Clamp shifts the region so it stays inside a width x height grid.
// A region larger than the grid is pinned to the top-left corner.
func (r Region) Clamp(width, height int) Region {
	if r.X+r.Width > width {
		r.X = width - r.Width
	}
	if r.Y+r.Height > height {
		r.Y = height - r.Height
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}
