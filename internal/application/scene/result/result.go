// Package result provides the end-of-run screen.
package result

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/upward/internal/application/scene"
	"github.com/younwookim/upward/internal/application/state"
	"github.com/younwookim/upward/internal/infrastructure/storage"
)

var (
	colorWon  = color.RGBA{30, 70, 40, 255}
	colorLost = color.RGBA{100, 0, 0, 255}
)

// Report describes how a run ended
type Report struct {
	Outcome state.GameState
	Elapsed float64
	Lives   int
	Summary storage.Summary
}

// Result shows the outcome and waits for the player to go again
type Result struct {
	report  Report
	screenW float64
	screenH float64
	next    func() scene.Scene
}

// New creates a result scene. next builds the scene to continue with.
func New(report Report, screenW, screenH float64, next func() scene.Scene) *Result {
	return &Result{
		report:  report,
		screenW: screenW,
		screenH: screenH,
		next:    next,
	}
}

// Update waits for Space, Enter or Z
func (r *Result) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		return r.Continue(), nil
	}
	return nil, nil
}

// Continue returns the next scene
func (r *Result) Continue() scene.Scene {
	return r.next()
}

// Draw renders the result screen
func (r *Result) Draw(screen *ebiten.Image) {
	bg := colorLost
	if r.report.Outcome == state.StateWon {
		bg = colorWon
	}
	ebitenutil.DrawRect(screen, 0, 0, r.screenW, r.screenH, bg)
	ebitenutil.DebugPrintAt(screen, r.Text(), int(r.screenW)/2-80, int(r.screenH)/3)
}

// Text returns the lines shown on screen
func (r *Result) Text() string {
	headline := "THE GOO GOT YOU"
	if r.report.Outcome == state.StateWon {
		headline = "YOU MADE IT TO THE TOP"
	}

	s := r.report.Summary
	text := fmt.Sprintf("%s\n\nTime: %.1fs  Lives left: %d\n\nRuns: %d  Wins: %d  Losses: %d",
		headline, r.report.Elapsed, r.report.Lives, s.Runs, s.Wins, s.Losses)
	if s.BestWinTime > 0 {
		text += fmt.Sprintf("\nBest: %.1fs", s.BestWinTime)
	}
	return text + "\n\nPress SPACE to try again"
}

// OnEnter is called when entering this scene
func (r *Result) OnEnter() {}

// OnExit is called when leaving this scene
func (r *Result) OnExit() {}
