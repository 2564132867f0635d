package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/younwookim/upward/internal/application/system"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// ErrNoFrames is returned for replays without recorded input
var ErrNoFrames = errors.New("replay has no frames")

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoFrames)
	}

	return &data, nil
}

// SaveReplay writes replay data to a file as indented JSON
func SaveReplay(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Result summarizes a headless replay run
type Result struct {
	Frames  int
	Time    float64
	Outcome system.Outcome
	Lives   int
	Final   entity.Vec2
	// Diagnostics counts frames that reported a non-fatal error
	Diagnostics int
}

// Run feeds every recorded frame into a fresh simulation until the input
// runs out or the run ends.
func (r *Replayer) Run(cfg *config.GameConfig, stage *entity.Stage, logger *log.Logger) Result {
	dt := r.data.DT
	if dt <= 0 {
		dt = 1.0 / float64(cfg.Physics.Display.Framerate)
	}

	sim := system.NewSimulation(cfg, stage, r.data.Attributes,
		system.WithLogger(logger),
		system.WithRand(rand.New(rand.NewSource(r.data.Seed))),
	)

	var res Result
	for {
		in, ok := r.Next()
		if !ok {
			break
		}
		frame := sim.Step(in, dt)
		if frame.Err != nil {
			res.Diagnostics++
		}
		if frame.Outcome.Terminal() {
			break
		}
	}

	res.Frames = sim.Frame()
	res.Time = sim.Now()
	res.Outcome = sim.Outcome()
	res.Lives = sim.Actor().Lives
	res.Final = sim.Actor().Position
	return res
}
