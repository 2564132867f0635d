package playing

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/upward/internal/application/replay"
	"github.com/younwookim/upward/internal/application/scene"
	"github.com/younwookim/upward/internal/application/scene/result"
	"github.com/younwookim/upward/internal/application/state"
	"github.com/younwookim/upward/internal/application/system"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
	"github.com/younwookim/upward/internal/infrastructure/storage"
)

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics:  config.DefaultPhysicsConfig(),
		Entities: config.DefaultEntitiesConfig(),
	}
}

// createTestStage builds a flat 20-tile floor with spawns on it
func createTestStage(t *testing.T) *entity.Stage {
	t.Helper()

	stage, err := system.LoadStage(&config.StageConfig{
		ID:   "flat",
		Name: "Flat",
		Layers: config.LayersConfig{
			Collision: []string{
				"....................",
				"..S.................",
				"####################",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall"},
			"S": {Type: "spawn"},
		},
		Goal:   config.RectConfig{X: 18, Y: 1, W: 1, H: 1},
		Hazard: config.StageHazardConfig{BaseY: -50},
	})
	require.NoError(t, err)
	return stage
}

func createTestOptions() Options {
	return Options{
		StageID: "flat",
		Seed:    7,
		Records: storage.New(nil, log.New(io.Discard)),
		Logger:  log.New(io.Discard),
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := New(createTestConfig(), createTestStage(t), createTestOptions())

	assert.Equal(t, state.StateIntro, p.State())
	require.NotNil(t, p.Simulation())
	assert.Equal(t, 0, p.Simulation().Frame())
	assert.Nil(t, p.recorder)

	t.Run("seed fixes the character", func(t *testing.T) {
		again := New(createTestConfig(), createTestStage(t), createTestOptions())
		assert.Equal(t, p.attrs, again.attrs)
		assert.Equal(t, p.Simulation().Actor().Position, again.Simulation().Actor().Position)
	})
}

func TestPlaying_Update_StaysOnIntro(t *testing.T) {
	p := New(createTestConfig(), createTestStage(t), createTestOptions())

	next, err := p.Update(1.0 / 60.0)
	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.StateIntro, p.State())
	assert.Equal(t, 0, p.Simulation().Frame())
}

func TestPlaying_Step(t *testing.T) {
	p := New(createTestConfig(), createTestStage(t), createTestOptions())
	p.state = state.StatePlaying

	next, err := p.step(system.InputState{Right: true})
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 1, p.Simulation().Frame())
	assert.Greater(t, p.Simulation().Actor().Velocity.X, 0.0)
}

func TestPlaying_ResetStartsNewRun(t *testing.T) {
	p := New(createTestConfig(), createTestStage(t), createTestOptions())
	p.state = state.StatePlaying
	_, _ = p.step(system.InputState{})

	next, err := p.step(system.InputState{Reset: true})
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.StateIntro, p.State())
	assert.Equal(t, 0, p.Simulation().Frame())
	assert.NotEqual(t, int64(7), p.seed)
}

func TestPlaying_Finish(t *testing.T) {
	t.Run("goal reached", func(t *testing.T) {
		stage := createTestStage(t)
		stage.Goal = cp.BB{L: 0, B: 16, R: 80, T: 48}
		opts := createTestOptions()

		p := New(createTestConfig(), stage, opts)
		p.state = state.StatePlaying

		next, err := p.step(system.InputState{})
		require.NoError(t, err)
		require.IsType(t, &result.Result{}, next)
		assert.Equal(t, state.StateWon, p.State())
		assert.Equal(t, storage.Summary{Runs: 1, Wins: 1, BestWinTime: p.Simulation().Now()}, opts.Records.Summary())

		again := next.(*result.Result).Continue()
		require.IsType(t, &Playing{}, again)
		assert.Equal(t, state.StateIntro, again.(*Playing).State())
	})

	t.Run("caught by hazard", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Entities.Actor.Lives = 1
		stage := createTestStage(t)
		stage.HazardBaseY = 200
		opts := createTestOptions()

		p := New(cfg, stage, opts)
		p.state = state.StatePlaying

		next, err := p.step(system.InputState{})
		require.NoError(t, err)
		require.IsType(t, &result.Result{}, next)
		assert.Equal(t, state.StateLost, p.State())
		assert.Equal(t, 1, opts.Records.Summary().Losses)
	})
}

func TestPlaying_Recording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	opts := createTestOptions()
	opts.RecordPath = path

	p := New(createTestConfig(), createTestStage(t), opts)
	require.NotNil(t, p.recorder)
	p.state = state.StatePlaying

	for i := 0; i < 3; i++ {
		_, err := p.step(system.InputState{Right: true, JumpPressed: i == 1})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, p.recorder.FrameCount())

	p.OnExit()
	assert.False(t, p.recorder.IsRecording())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "flat", data.Stage)
	assert.Equal(t, p.attrs, data.Attributes)
	require.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[1].J)

	t.Run("replay reproduces the run", func(t *testing.T) {
		res := replay.NewReplayer(*data).Run(createTestConfig(), createTestStage(t), log.New(io.Discard))
		assert.Equal(t, p.Simulation().Actor().Position, res.Final)
	})
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder(12345, "test", entity.Attributes{}, 1.0/60.0)

	assert.True(t, r.IsRecording())
	r.RecordFrame(system.InputState{Left: true})
	assert.Equal(t, 1, r.FrameCount())
	assert.Equal(t, replay.FrameInput{F: 0, L: true}, r.Data().Frames[0])

	r.Stop()
	assert.False(t, r.IsRecording())

	r.RecordFrame(system.InputState{Left: true})
	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, "test", entity.Attributes{}, 1.0/60.0)
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, replay.ErrNoFrames)
}

const flatWithLedge = `id: flat
name: Flat
tileMapping:
  "#": { type: wall }
  "=": { type: platform }
  "S": { type: spawn }
layers:
  collision:
    - "........====........"
    - "...................."
    - "..S................."
    - "####################"
goal: { x: 18, y: 1, w: 1, h: 1 }
hazard:
  baseY: -50
`

func TestPlaying_HotReload(t *testing.T) {
	root := t.TempDir()
	stages := filepath.Join(root, "stages")
	require.NoError(t, os.Mkdir(stages, 0o755))

	watcher, err := config.NewWatcher(stages)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	opts := createTestOptions()
	opts.Loader = config.NewLoader(root)
	opts.Watcher = watcher
	p := New(createTestConfig(), createTestStage(t), opts)
	require.Equal(t, 20, p.Simulation().Stage().Index.Len())

	// rename so the watcher never sees a half-written file
	tmp := filepath.Join(root, "flat.yaml")
	require.NoError(t, os.WriteFile(tmp, []byte(flatWithLedge), 0o644))
	require.NoError(t, os.Rename(tmp, filepath.Join(stages, "flat.yaml")))

	assert.Eventually(t, func() bool {
		p.reloadStages()
		return p.Simulation().Stage().Index.Len() == 24
	}, 2*time.Second, 20*time.Millisecond)

	_, ok := p.Simulation().Stage().Index.Lookup(entity.TilePos{X: 8, Y: 3})
	assert.True(t, ok, "ledge is in the rebuilt index")
}

func TestRunPath(t *testing.T) {
	tests := []struct {
		base string
		run  int
		want string
	}{
		{"run.json", 1, "run.json"},
		{"run.json", 2, "run_2.json"},
		{"out/run.json", 3, "out/run_3.json"},
		{"run", 2, "run_2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RunPath(tt.base, tt.run))
		})
	}
}

func TestPlaying_RecordingKeepsEveryRun(t *testing.T) {
	dir := t.TempDir()
	opts := createTestOptions()
	opts.RecordPath = filepath.Join(dir, "run.json")

	p := New(createTestConfig(), createTestStage(t), opts)
	p.state = state.StatePlaying
	_, _ = p.step(system.InputState{Right: true})
	_, _ = p.step(system.InputState{Reset: true})

	p.state = state.StatePlaying
	for i := 0; i < 4; i++ {
		_, _ = p.step(system.InputState{Left: true})
	}
	p.OnExit()

	first, err := replay.LoadReplay(filepath.Join(dir, "run.json"))
	require.NoError(t, err)
	assert.Len(t, first.Frames, 2)
	assert.Equal(t, int64(7), first.Seed)

	second, err := replay.LoadReplay(filepath.Join(dir, "run_2.json"))
	require.NoError(t, err)
	assert.Len(t, second.Frames, 4)
	assert.Equal(t, p.seed, second.Seed)

	t.Run("result screen continues the numbering", func(t *testing.T) {
		stage := createTestStage(t)
		stage.Goal = cp.BB{L: 0, B: 16, R: 80, T: 48}
		p := New(createTestConfig(), stage, opts)
		p.state = state.StatePlaying

		next, err := p.step(system.InputState{})
		require.NoError(t, err)
		again := next.(*result.Result).Continue().(*Playing)
		assert.Equal(t, filepath.Join(dir, "run_2.json"), again.recordPath)
	})
}

func TestPlaying_HotReloadStopsRecording(t *testing.T) {
	root := t.TempDir()
	stages := filepath.Join(root, "stages")
	require.NoError(t, os.Mkdir(stages, 0o755))

	watcher, err := config.NewWatcher(stages)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	path := filepath.Join(root, "run.json")
	opts := createTestOptions()
	opts.Loader = config.NewLoader(root)
	opts.Watcher = watcher
	opts.RecordPath = path
	p := New(createTestConfig(), createTestStage(t), opts)
	p.state = state.StatePlaying
	_, _ = p.step(system.InputState{Right: true})

	tmp := filepath.Join(root, "flat.yaml")
	require.NoError(t, os.WriteFile(tmp, []byte(flatWithLedge), 0o644))
	require.NoError(t, os.Rename(tmp, filepath.Join(stages, "flat.yaml")))

	assert.Eventually(t, func() bool {
		p.reloadStages()
		return !p.recorder.IsRecording()
	}, 2*time.Second, 20*time.Millisecond)

	_, _ = p.step(system.InputState{Right: true})
	assert.Equal(t, 1, p.recorder.FrameCount(), "frames on the new layout are not recorded")

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 1)
}
