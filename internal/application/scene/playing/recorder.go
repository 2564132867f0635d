package playing

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/younwookim/upward/internal/application/replay"
	"github.com/younwookim/upward/internal/application/system"
	"github.com/younwookim/upward/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder. Seed and attributes are stored so the
// run can be reproduced.
func NewRecorder(seed int64, stage string, attrs entity.Attributes, dt float64) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:    replay.Version,
			Seed:       seed,
			Stage:      stage,
			Attributes: attrs,
			DT:         dt,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]replay.FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(r.frame, input))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

// RunPath numbers the recording path for every run after the first:
// replay.json, replay_2.json, replay_3.json...
func RunPath(base string, run int) string {
	if run <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), run, ext)
}
