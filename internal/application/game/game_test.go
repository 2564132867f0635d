package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/upward/internal/application/scene"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// fakeScene counts lifecycle calls and switches to next after `after` updates
type fakeScene struct {
	name    string
	next    scene.Scene
	after   int
	err     error
	updates int
	draws   int
	enters  int
	exits   int
	dts     []float64
}

func (f *fakeScene) Update(dt float64) (scene.Scene, error) {
	f.updates++
	f.dts = append(f.dts, dt)
	if f.err != nil {
		return nil, f.err
	}
	if f.next != nil && f.updates >= f.after {
		return f.next, nil
	}
	return nil, nil
}

func (f *fakeScene) Draw(_ *ebiten.Image) { f.draws++ }
func (f *fakeScene) OnEnter()             { f.enters++ }
func (f *fakeScene) OnExit()              { f.exits++ }

func createTestGame(initial scene.Scene) *Game {
	display := config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 3, Framerate: 60}
	return New(initial, display, log.New(io.Discard))
}

func TestNew_EntersInitialScene(t *testing.T) {
	s := &fakeScene{}
	g := createTestGame(s)

	assert.Equal(t, 1, s.enters)
	assert.Zero(t, s.updates)
	assert.Same(t, s, g.Current())
}

func TestNew_StepFromFramerate(t *testing.T) {
	tests := []struct {
		name      string
		framerate int
		wantDT    float64
	}{
		{"60 fps", 60, 1.0 / 60},
		{"30 fps", 30, 1.0 / 30},
		{"unset falls back to 60", 0, 1.0 / 60},
		{"negative falls back to 60", -5, 1.0 / 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeScene{}
			g := New(s, config.DisplayConfig{Framerate: tt.framerate}, nil)
			require.NoError(t, g.Update())
			assert.InDelta(t, tt.wantDT, s.dts[0], 1e-12)
		})
	}
}

func TestGame_DrawAndLayout(t *testing.T) {
	s := &fakeScene{}
	g := createTestGame(s)

	g.Draw(nil)
	g.Draw(nil)
	assert.Equal(t, 2, s.draws)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_Transitions(t *testing.T) {
	result := &fakeScene{name: "result"}
	run := &fakeScene{name: "run", next: result, after: 3}
	g := createTestGame(run)

	for i := 0; i < 2; i++ {
		require.NoError(t, g.Update())
	}
	assert.Same(t, run, g.Current(), "stays while Update returns nil")
	assert.Zero(t, run.exits)

	require.NoError(t, g.Update())
	assert.Same(t, result, g.Current())
	assert.Equal(t, 1, run.exits)
	assert.Equal(t, 1, result.enters)
	assert.Zero(t, result.updates, "new scene updates from the next tick")

	require.NoError(t, g.Update())
	assert.Equal(t, 3, run.updates)
	assert.Equal(t, 1, result.updates)
}

func TestGame_UpdateErrorKeepsScene(t *testing.T) {
	s := &fakeScene{err: assert.AnError, next: &fakeScene{}}
	g := createTestGame(s)

	assert.ErrorIs(t, g.Update(), assert.AnError)
	assert.Same(t, s, g.Current())
	assert.Zero(t, s.exits)
}
