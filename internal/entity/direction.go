package entity

// Direction is a cardinal movement direction.
type Direction int

const (
	// DirNone means no movement.
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the unit grid offset for the direction. North is up the screen.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirEast:
		return DirWest
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}
