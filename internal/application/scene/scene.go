// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game: the run itself or its result.
// Update returns the scene to switch to, or nil to stay.
type Scene interface {
	Update(dt float64) (next Scene, err error)
	Draw(screen *ebiten.Image)

	// OnEnter and OnExit bracket the time the scene is current.
	// OnExit is also called when the window closes.
	OnEnter()
	OnExit()
}
