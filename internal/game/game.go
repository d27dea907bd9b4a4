package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/amazinglylost/internal/entity"
	"github.com/samdwyer/amazinglylost/internal/gamedata"
	"github.com/samdwyer/amazinglylost/internal/logger"
	"github.com/samdwyer/amazinglylost/internal/telemetry"
	"github.com/samdwyer/amazinglylost/internal/ui"
)

// Game connects a session to the terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	themes   *gamedata.ThemeRegistry
	themeID  string
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}

	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		themeID:  cfg.Theme,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.load(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := g.screen.Events(done)

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ev)

		case <-ticker.C:
			if _, err := g.session.Tick(ctx); err != nil {
				return err
			}
			g.render()
		}
	}

	logger.Info("game finished",
		"mazes_generated", g.session.MazesGenerated,
		"mazes_completed", g.session.MazesCompleted,
	)
	return nil
}

// load reads the themes while the loading screen is shown, then starts the session.
func (g *Game) load(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.load")
	defer span.End()

	g.renderer.RenderSplash("Loading...")

	themes, err := gamedata.LoadThemeRegistry(g.cfg.ThemesFile)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("loading themes: %w", err)
	}
	g.themes = themes

	if theme := themes.Get(g.themeID); theme.ID != g.themeID {
		logger.Warning("theme not found, using fallback", "requested", g.themeID, "using", theme.ID)
		g.themeID = theme.ID
	}

	width, height := g.session.Size()
	span.SetAttributes(
		attribute.Int("themes.count", themes.Count()),
		attribute.String("theme.id", g.themeID),
		attribute.Int64("game.seed", g.session.Seed()),
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
	)
	logger.Info("game started", "seed", g.session.Seed(), "theme", g.themeID, "width", width, "height", height)

	g.session.Start()
	return nil
}

// render draws the current phase.
func (g *Game) render() {
	switch g.session.State() {
	case StatePlaying:
		g.renderer.Render(ui.Frame{
			Maze:         g.session.Maze,
			Player:       g.session.Player,
			Theme:        g.themes.Get(g.themeID),
			ShowSolution: g.session.ShowSolution(),
			Status:       g.status(),
		})
	case StateGenerating:
		g.renderer.RenderSplash("Generating maze...")
	default:
		g.renderer.RenderSplash("Loading...")
	}
}

// status builds the line shown under the maze.
func (g *Game) status() string {
	s := g.session
	return fmt.Sprintf("%dx%d  moves %d  solved %d  [arrows] move [n]ew [h]int [t]heme [PgUp/PgDn] size [q]uit",
		s.Maze.Width(), s.Maze.Height(), s.Player.MoveCount, s.MazesCompleted)
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.RequestDirection(entity.DirNorth)
	case tcell.KeyDown:
		g.session.RequestDirection(entity.DirSouth)
	case tcell.KeyLeft:
		g.session.RequestDirection(entity.DirWest)
	case tcell.KeyRight:
		g.session.RequestDirection(entity.DirEast)

	case tcell.KeyPgUp:
		g.session.Grow()
	case tcell.KeyPgDn:
		g.session.Shrink()

	case tcell.KeyRune:
		g.handleRune(ev.Rune())
	}
}

// handleRune processes character keys.
func (g *Game) handleRune(r rune) {
	switch r {
	case 'q', 'Q':
		g.running = false
	case 'w', 'W':
		g.session.RequestDirection(entity.DirNorth)
	case 's', 'S':
		g.session.RequestDirection(entity.DirSouth)
	case 'a', 'A':
		g.session.RequestDirection(entity.DirWest)
	case 'd', 'D':
		g.session.RequestDirection(entity.DirEast)
	case 'n', 'N':
		g.session.RequestNewMaze()
	case 'h', 'H':
		g.session.ToggleSolution()
	case 't', 'T':
		g.themeID = g.themes.Next(g.themeID)
		logger.Debug("theme changed", "theme", g.themeID)
	case '+':
		g.session.Grow()
	case '-':
		g.session.Shrink()
	}
}
