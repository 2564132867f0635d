// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/younwookim/upward/internal/application/scene"
	"github.com/younwookim/upward/internal/application/scene/result"
	"github.com/younwookim/upward/internal/application/state"
	"github.com/younwookim/upward/internal/application/system"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
	"github.com/younwookim/upward/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{140, 120, 80, 255}
	colorActor    = color.RGBA{100, 200, 100, 255}
	colorDebuffed = color.RGBA{90, 110, 160, 255}
	colorGoal     = color.RGBA{255, 215, 0, 160}
	colorZoneRich = color.RGBA{200, 160, 40, 90}
	colorZoneSkin = color.RGBA{220, 200, 180, 90}
	colorHazard   = color.RGBA{110, 200, 60, 200}
	colorOverlay  = color.RGBA{0, 0, 0, 160}
)

const (
	platformThickness = 4.0
	shakeIntensity    = 4.0
	shakeDecay        = 0.85
)

// Options configures a Playing scene
type Options struct {
	StageID    string
	RecordPath string
	Seed       int64 // 0 picks one from the clock
	Run        int   // runs already played this session; later recordings get numbered paths

	Loader  *config.Loader  // with Watcher, enables stage hot reload
	Watcher *config.Watcher // nil disables reload
	Records *storage.Records
	Logger  *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	cfg   *config.GameConfig
	stage *entity.Stage
	opts  Options

	state  state.GameState
	sim    *system.Simulation
	attrs  entity.Attributes
	seed   int64
	logger *log.Logger

	cam   camera
	dt    float64
	shake float64

	run        int
	recorder   *Recorder
	recordPath string
}

// New creates a new Playing scene starting on the character intro
func New(cfg *config.GameConfig, stage *entity.Stage, opts Options) *Playing {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	p := &Playing{
		cfg:    cfg,
		stage:  stage,
		opts:   opts,
		logger: opts.Logger,
		cam: camera{
			W: float64(cfg.Physics.Display.ScreenWidth),
			H: float64(cfg.Physics.Display.ScreenHeight),
		},
		dt:  1.0 / float64(cfg.Physics.Display.Framerate),
		run: opts.Run,
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.start(seed)
	return p
}

// start rolls a character and spawns a fresh simulation.
// Attributes and simulation draw from separate sources so a replay can
// rebuild the simulation from the seed alone.
func (p *Playing) start(seed int64) {
	p.seed = seed
	p.run++
	p.attrs = entity.RollAttributes(rand.New(rand.NewSource(seed)))
	p.sim = system.NewSimulation(p.cfg, p.stage, p.attrs,
		system.WithLogger(p.logger),
		system.WithRand(rand.New(rand.NewSource(seed))),
	)
	p.state = state.StateIntro
	p.shake = 0

	p.logger.Info("new run", "seed", seed, "wealth", p.attrs.Wealth, "depressive", p.attrs.Depressive)

	if p.opts.RecordPath != "" {
		p.recorder = NewRecorder(seed, p.opts.StageID, p.attrs, p.dt)
		p.recordPath = RunPath(p.opts.RecordPath, p.run)
		p.logger.Info("recording enabled", "path", p.recordPath)
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.reloadStages()

	switch p.state {
	case state.StateIntro:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			p.state = state.StatePlaying
		}
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		return p.step(system.ReadInput())
	}

	return nil, nil
}

// step advances the simulation by one frame of input
func (p *Playing) step(input system.InputState) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	res := p.sim.Step(input, p.dt)
	if res.Err != nil {
		p.logger.Warn("frame diagnostic", "frame", p.sim.Frame(), "err", res.Err)
	}
	for _, ev := range res.Events {
		p.handleEvent(ev)
	}
	p.shake *= shakeDecay

	switch res.Outcome {
	case system.OutcomeRestart:
		p.saveRecording()
		p.start(time.Now().UnixNano())
	case system.OutcomeWon:
		return p.finish(state.StateWon), nil
	case system.OutcomeLost:
		return p.finish(state.StateLost), nil
	}
	return nil, nil
}

func (p *Playing) handleEvent(ev system.Event) {
	switch e := ev.(type) {
	case system.HazardHitEvent:
		p.shake = shakeIntensity
		p.logger.Info("hazard hit", "lives", e.LivesLeft)
	case system.KnockbackEvent:
		p.shake = shakeIntensity / 2
		p.logger.Debug("knocked back", "impulse", e.Impulse)
	case system.DebuffStartedEvent:
		p.logger.Debug("debuffed", "until", e.Until)
	default:
		p.logger.Debug("event", "type", fmt.Sprintf("%T", ev))
	}
}

// finish records the result and hands over to the result screen
func (p *Playing) finish(outcome state.GameState) scene.Scene {
	p.state = outcome
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}

	summary := storage.Summary{}
	if p.opts.Records != nil {
		if err := p.opts.Records.Add(outcome == state.StateWon, p.sim.Now()); err != nil {
			p.logger.Error("failed to save records", "err", err)
		}
		summary = p.opts.Records.Summary()
	}

	next := func() scene.Scene {
		opts := p.opts
		opts.Seed = 0
		opts.Run = p.run
		return New(p.cfg, p.stage, opts)
	}
	return result.New(result.Report{
		Outcome: outcome,
		Elapsed: p.sim.Now(),
		Lives:   p.sim.Actor().Lives,
		Summary: summary,
	}, p.cam.W, p.cam.H, next)
}

// reloadStages applies stage files changed on disk between frames
func (p *Playing) reloadStages() {
	if p.opts.Watcher == nil || p.opts.Loader == nil {
		return
	}

	for _, name := range p.opts.Watcher.Poll() {
		if name != p.opts.StageID {
			continue
		}

		stageCfg, err := p.opts.Loader.LoadStage(name)
		if err != nil {
			p.logger.Error("stage reload failed", "stage", name, "err", err)
			continue
		}
		stage, err := system.LoadStage(stageCfg)
		if err != nil {
			p.logger.Error("stage reload failed", "stage", name, "err", err)
			continue
		}
		p.sim.ReloadStage(stage)
		p.logger.Info("stage reloaded", "stage", name)

		// the replay only names the stage, so frames after this would replay on the new layout
		if p.recorder != nil && p.recorder.IsRecording() {
			p.saveRecording()
			p.recorder.Stop()
			p.logger.Warn("recording stopped at stage reload", "frames", p.recorder.FrameCount())
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	stage := p.sim.Stage()
	actor := p.sim.Actor()
	now := p.sim.Now()

	p.cam.follow(actor.Position, float64(stage.Width)*entity.TileSize, float64(stage.Height)*entity.TileSize)
	cam := p.cam
	if p.shake > 0.5 {
		cam.X += p.shake * float64(p.sim.Frame()%3-1)
	}

	p.drawTiles(screen, &cam, stage)
	p.drawRegions(screen, &cam, stage)
	p.drawActor(screen, &cam, actor, now)
	p.drawHazard(screen, &cam)
	p.drawUI(screen, actor, now)

	switch p.state {
	case state.StateIntro:
		p.drawOverlay(screen, p.attrs.Describe()+"\n\nPress SPACE to start")
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, cam *camera, stage *entity.Stage) {
	for _, t := range stage.Walls {
		bb := entity.TileBox{Left: t.X, Bottom: t.Y, Right: t.X, Top: t.Y}.World()
		if !cam.visible(bb) {
			continue
		}
		x, y, w, h := cam.rect(bb)
		ebitenutil.DrawRect(screen, x, y, w, h, colorWall)
	}

	for _, t := range stage.Platforms {
		bb := entity.TileBox{Left: t.X, Bottom: t.Y, Right: t.X, Top: t.Y}.World()
		if !cam.visible(bb) {
			continue
		}
		bb.B = bb.T - platformThickness
		x, y, w, h := cam.rect(bb)
		ebitenutil.DrawRect(screen, x, y, w, h, colorPlatform)
	}
}

func (p *Playing) drawRegions(screen *ebiten.Image, cam *camera, stage *entity.Stage) {
	if cam.visible(stage.Goal) {
		x, y, w, h := cam.rect(stage.Goal)
		ebitenutil.DrawRect(screen, x, y, w, h, colorGoal)
	}

	for _, z := range stage.Zones {
		if !cam.visible(z.Bounds) {
			continue
		}
		c := colorZoneRich
		if z.Access == entity.AllowIfLightSkin {
			c = colorZoneSkin
		}
		x, y, w, h := cam.rect(z.Bounds)
		ebitenutil.DrawRect(screen, x, y, w, h, c)
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, cam *camera, actor *entity.Actor, now float64) {
	// Blink while invulnerable
	if actor.IsInvulnerable(now) && int(now*10)%2 == 0 {
		return
	}

	c := colorActor
	if actor.IsDebuffed(now) {
		c = colorDebuffed
	}
	x, y, w, h := cam.rect(actor.Bounds())
	ebitenutil.DrawRect(screen, x, y, w, h, c)

	// facing marker at head height
	eyeX := x + w - 4
	if actor.Facing == entity.FacingLeft {
		eyeX = x + 1
	}
	ebitenutil.DrawRect(screen, eyeX, y+6, 3, 3, colorBG)
}

func (p *Playing) drawHazard(screen *ebiten.Image, cam *camera) {
	surface := p.sim.Hazard().SurfaceY
	if surface <= cam.Y {
		return
	}
	bb := cp.BB{L: cam.X, B: cam.Y, R: cam.X + cam.W, T: surface}
	x, y, w, h := cam.rect(bb)
	ebitenutil.DrawRect(screen, x, y, w, h, colorHazard)
}

func (p *Playing) drawUI(screen *ebiten.Image, actor *entity.Actor, now float64) {
	text := fmt.Sprintf("Lives: %d  Time: %.1f", actor.Lives, now)
	if actor.IsDebuffed(now) {
		text += "\nYou feel drained..."
	}
	ebitenutil.DebugPrintAt(screen, text, 8, 8)

	controls := "A/D: Move | W/Space: Jump | R: Reset | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 8, int(p.cam.H)-18)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, p.cam.W, p.cam.H, colorOverlay)
	ebitenutil.DebugPrintAt(screen, wrap(text, 48), 16, int(p.cam.H)/3)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}
