package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/amazinglylost/internal/world"
)

// DefaultThemeID is used when a requested theme does not exist.
const DefaultThemeID = "default"

// TileStyle is how one kind of tile is drawn.
type TileStyle struct {
	Glyph      string `json:"glyph"`                // Single character for rendering
	Color      string `json:"color"`                // Foreground hex color
	Background string `json:"background,omitempty"` // Optional background hex color
}

// GlyphRune returns the glyph as a rune for rendering.
func (s TileStyle) GlyphRune() rune {
	for _, r := range s.Glyph {
		return r
	}
	return ' '
}

// TCellStyle returns the tcell style for the tile.
func (s TileStyle) TCellStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(colorOr(s.Color, tcell.ColorWhite)).
		Background(colorOr(s.Background, tcell.ColorBlack))
}

// ThemeDef defines how a maze looks, loaded from JSON.
type ThemeDef struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Wall     TileStyle `json:"wall"`
	Border   TileStyle `json:"border"`
	Open     TileStyle `json:"open"`
	Start    TileStyle `json:"start"`
	Exit     TileStyle `json:"exit"`
	Player   TileStyle `json:"player"`
	Solution TileStyle `json:"solution"` // Open tiles on the solution path when shown
}

// StyleFor returns the style for a tile kind.
func (t *ThemeDef) StyleFor(kind world.TileKind) TileStyle {
	switch kind {
	case world.TileWall:
		return t.Wall
	case world.TileBorder:
		return t.Border
	case world.TileStart:
		return t.Start
	case world.TileExit:
		return t.Exit
	default:
		return t.Open
	}
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}
