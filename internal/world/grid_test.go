package world

import "testing"

func TestGridFromStrings(t *testing.T) {
	g := mustGrid(t,
		"+++++",
		"+S#.+",
		"+ #E+",
		"+++++",
	)

	if g.Width != 5 || g.Height != 4 {
		t.Fatalf("grid is %dx%d, want 5x4", g.Width, g.Height)
	}

	tests := []struct {
		p    Point
		want TileKind
	}{
		{Point{X: 0, Y: 0}, TileBorder},
		{Point{X: 1, Y: 1}, TileStart},
		{Point{X: 2, Y: 1}, TileWall},
		{Point{X: 3, Y: 1}, TileOpen},
		{Point{X: 1, Y: 2}, TileOpen},
		{Point{X: 3, Y: 2}, TileExit},
		{Point{X: -1, Y: 2}, TileBorder}, // outside reads as border
		{Point{X: 5, Y: 0}, TileBorder},
	}
	for _, tt := range tests {
		if got := g.Kind(tt.p); got != tt.want {
			t.Errorf("Kind(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if g.At(Point{X: 9, Y: 9}) != nil {
		t.Error("At outside the grid should be nil")
	}
	if start, ok := g.Find(TileStart); !ok || start != (Point{X: 1, Y: 1}) {
		t.Errorf("Find(start) = %v, %v", start, ok)
	}
	if g.At(Point{X: 2, Y: 1}).Usable {
		t.Error("walls must not be usable")
	}
	if got := g.String(); got != "+++++\n+S#.+\n+.#E+\n+++++\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestGridFromStringsErrors(t *testing.T) {
	if _, err := GridFromStrings(nil); err == nil {
		t.Error("empty input should fail")
	}
	if _, err := GridFromStrings([]string{"+++", "++"}); err == nil {
		t.Error("ragged rows should fail")
	}
	if _, err := GridFromStrings([]string{"+x+"}); err == nil {
		t.Error("unknown tile should fail")
	}
}

func TestTileKindString(t *testing.T) {
	for kind, want := range map[TileKind]string{
		TileOpen:     "open",
		TileWall:     "wall",
		TileBorder:   "border",
		TileStart:    "start",
		TileExit:     "exit",
		TileKind(42): "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("TileKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestRegionClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Region
		want Region
	}{
		{"inside", Region{X: 5, Y: 5, Width: 10, Height: 10}, Region{X: 5, Y: 5, Width: 10, Height: 10}},
		{"past right edge", Region{X: 25, Y: 0, Width: 10, Height: 10}, Region{X: 23, Y: 0, Width: 10, Height: 10}},
		{"negative", Region{X: -4, Y: -2, Width: 10, Height: 10}, Region{X: 0, Y: 0, Width: 10, Height: 10}},
		{"larger than grid", Region{X: 3, Y: 3, Width: 50, Height: 50}, Region{X: 0, Y: 0, Width: 50, Height: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(33, 33); got != tt.want {
				t.Errorf("Clamp = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegionAround(t *testing.T) {
	r := RegionAround(Point{X: 10, Y: 10}, 9, 5)
	if r != (Region{X: 6, Y: 8, Width: 9, Height: 5}) {
		t.Errorf("RegionAround = %+v", r)
	}
	if !r.Contains(Point{X: 6, Y: 8}) || r.Contains(Point{X: 15, Y: 10}) {
		t.Errorf("Contains gives wrong answer for %+v", r)
	}
}
