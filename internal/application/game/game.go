// Package game provides the ebiten.Game that drives scene transitions.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/upward/internal/application/scene"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	dt      float64
	logger  *log.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}

	dt := 1.0 / 60.0
	if display.Framerate > 0 {
		dt = 1.0 / float64(display.Framerate)
	}

	g := &Game{
		current: initialScene,
		display: display,
		dt:      dt,
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.logger.Debug("scene change", "from", fmt.Sprintf("%T", g.current), "to", fmt.Sprintf("%T", next))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.display.ScreenWidth, g.display.ScreenHeight
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Run opens the window and blocks until it is closed.
// The current scene's OnExit runs on the way out.
func (g *Game) Run(title string) error {
	scale := max(g.display.Scale, 1)
	ebiten.SetWindowSize(g.display.ScreenWidth*scale, g.display.ScreenHeight*scale)
	ebiten.SetWindowTitle(title)
	if g.display.Framerate > 0 {
		ebiten.SetTPS(g.display.Framerate)
	}

	defer g.current.OnExit()
	return ebiten.RunGame(g)
}
