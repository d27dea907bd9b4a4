package entity

import (
	"math"

	"github.com/samdwyer/amazinglylost/internal/world"
)

// Box is an axis-aligned bounding box given by its centre and size.
type Box struct {
	CenterX, CenterY float64
	Width, Height    float64
}

// Offset returns the box moved by dx, dy.
func (b Box) Offset(dx, dy float64) Box {
	b.CenterX += dx
	b.CenterY += dy
	return b
}

// Overlaps returns true if the boxes share interior area. Boxes that only touch
// along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return math.Abs(b.CenterX-other.CenterX) < (b.Width+other.Width)/2 &&
		math.Abs(b.CenterY-other.CenterY) < (b.Height+other.Height)/2
}

// ColliderKind identifies what a collider represents.
type ColliderKind int

const (
	ColliderWall ColliderKind = iota
	ColliderExit
	ColliderStart
)

// String returns a human-readable collider kind.
func (k ColliderKind) String() string {
	switch k {
	case ColliderWall:
		return "wall"
	case ColliderExit:
		return "exit"
	case ColliderStart:
		return "start"
	default:
		return "unknown"
	}
}

// Collider is a solid or trigger box placed on one maze tile.
type Collider struct {
	Box
	Kind ColliderKind
	Cell world.Point
}

// NewColliders builds one collider per wall, border, start and exit tile.
// Tile (x, y) is centred at (x*tileSize, y*tileSize).
func NewColliders(grid *world.Grid, tileSize float64) []Collider {
	var colliders []Collider
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			var kind ColliderKind
			switch grid.Tiles[y][x].Kind {
			case world.TileWall, world.TileBorder:
				kind = ColliderWall
			case world.TileExit:
				kind = ColliderExit
			case world.TileStart:
				kind = ColliderStart
			default:
				continue
			}
			colliders = append(colliders, Collider{
				Box:  tileBox(world.Point{X: x, Y: y}, tileSize),
				Kind: kind,
				Cell: world.Point{X: x, Y: y},
			})
		}
	}
	return colliders
}

func tileBox(p world.Point, tileSize float64) Box {
	return Box{
		CenterX: float64(p.X) * tileSize,
		CenterY: float64(p.Y) * tileSize,
		Width:   tileSize,
		Height:  tileSize,
	}
}

// CollisionResult records what a probe touched. Up is toward smaller y.
type CollisionResult struct {
	Left, Right, Up, Down bool
	Exit                  bool
}

// Blocked returns true if any wall was hit.
func (r CollisionResult) Blocked() bool {
	return r.Left || r.Right || r.Up || r.Down
}

// Clear returns true if nothing was hit.
func (r CollisionResult) Clear() bool {
	return !r.Blocked() && !r.Exit
}

// Probe tests box against every collider. Wall hits are sorted into sides on the
// axis of least penetration; start colliders never register.
func Probe(box Box, colliders []Collider) CollisionResult {
	var result CollisionResult
	for i := range colliders {
		c := &colliders[i]
		if c.Kind == ColliderStart || !box.Overlaps(c.Box) {
			continue
		}
		if c.Kind == ColliderExit {
			result.Exit = true
			continue
		}

		dx := c.CenterX - box.CenterX
		dy := c.CenterY - box.CenterY
		penX := (box.Width+c.Width)/2 - math.Abs(dx)
		penY := (box.Height+c.Height)/2 - math.Abs(dy)

		switch {
		case penX < penY && dx < 0:
			result.Left = true
		case penX < penY:
			result.Right = true
		case dy < 0:
			result.Up = true
		default:
			result.Down = true
		}
	}
	return result
}
