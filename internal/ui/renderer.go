package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/amazinglylost/internal/entity"
	"github.com/samdwyer/amazinglylost/internal/gamedata"
	"github.com/samdwyer/amazinglylost/internal/world"
)

// statusLines is the number of rows reserved below the maze view.
const statusLines = 1

// Frame is everything needed to draw one frame of play.
type Frame struct {
	Maze         *world.Maze
	Player       *entity.Player
	Theme        *gamedata.ThemeDef
	ShowSolution bool
	Status       string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the part of the maze visible on a screen of the given size,
// centred on the player and kept inside the maze.
func Viewport(m *world.Maze, focus world.Point, screenWidth, screenHeight int) world.Region {
	height := screenHeight - statusLines
	if height < 0 {
		height = 0
	}
	return world.RegionAround(focus, screenWidth, height).Clamp(m.Width(), m.Height())
}

// Render draws the visible part of the maze, the player and the status line.
func (r *Renderer) Render(f Frame) {
	background := f.Theme.Open.TCellStyle()
	r.screen.SetBackground(background)
	r.screen.Clear()

	screenWidth, screenHeight := r.screen.Size()
	focus := f.Player.NearestCell()
	view := Viewport(f.Maze, focus, screenWidth, screenHeight)

	// Draw maze tiles
	for sy := 0; sy < view.Height; sy++ {
		for sx := 0; sx < view.Width; sx++ {
			p := world.Point{X: view.X + sx, Y: view.Y + sy}
			tile := f.Maze.Grid.At(p)
			if tile == nil {
				continue
			}
			style := f.Theme.StyleFor(tile.Kind)
			if f.ShowSolution && tile.PartOfSolution && tile.Kind == world.TileOpen {
				style = f.Theme.Solution
			}
			r.screen.SetContent(sx, sy, style.GlyphRune(), style.TCellStyle())
		}
	}

	// Draw player on top
	if view.Contains(focus) {
		playerStyle := f.Theme.Player.TCellStyle().Bold(true)
		r.screen.SetContent(focus.X-view.X, focus.Y-view.Y, f.Theme.Player.GlyphRune(), playerStyle)
	}

	r.RenderMessage(f.Status, screenHeight-statusLines)
	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, y, msg, style)
}

// RenderSplash clears the screen and shows a single centred message.
func (r *Renderer) RenderSplash(msg string) {
	r.screen.SetBackground(tcell.StyleDefault.Background(tcell.ColorBlack))
	r.screen.Clear()
	width, height := r.screen.Size()
	x := (width - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	r.screen.DrawText(x, height/2, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	r.screen.Show()
}
