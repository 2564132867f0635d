// Package storage persists run records between sessions.
package storage

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "runs"
)

// Backend is the subset of *gdata.Manager the records need
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Summary is the persisted run history
type Summary struct {
	Runs        int     `yaml:"runs"`
	Wins        int     `yaml:"wins"`
	Losses      int     `yaml:"losses"`
	BestWinTime float64 `yaml:"bestWinTime"` // seconds, 0 until the first win
}

// Records tracks run results. A nil backend keeps them in memory only.
type Records struct {
	backend Backend
	summary Summary
	logger  *log.Logger
}

// Open creates a gdata-backed store for appName
func Open(appName string, logger *log.Logger) (*Records, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open data dir: %w", err)
	}
	return New(m, logger), nil
}

// New creates records on top of backend and loads what is stored there.
// A failed load is logged and starts from an empty summary.
func New(backend Backend, logger *log.Logger) *Records {
	if logger == nil {
		logger = log.Default()
	}
	r := &Records{backend: backend, logger: logger}
	if err := r.Load(); err != nil {
		logger.Warn("failed to load records, starting fresh", "err", err)
	}
	return r
}

// Load reads the summary from the backend
func (r *Records) Load() error {
	r.summary = Summary{}
	if r.backend == nil || !r.backend.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := r.backend.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	r.summary = s
	return nil
}

// Save writes the summary to the backend
func (r *Records) Save() error {
	if r.backend == nil {
		return nil
	}

	data, err := yaml.Marshal(r.summary)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := r.backend.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Add counts a finished run and saves. elapsed only matters for wins.
func (r *Records) Add(won bool, elapsed float64) error {
	r.summary.Runs++
	if won {
		r.summary.Wins++
		if r.summary.BestWinTime == 0 || elapsed < r.summary.BestWinTime {
			r.summary.BestWinTime = elapsed
		}
	} else {
		r.summary.Losses++
	}

	r.logger.Debug("run recorded", "won", won, "elapsed", elapsed, "runs", r.summary.Runs)
	return r.Save()
}

// Summary returns the current totals
func (r *Records) Summary() Summary {
	return r.summary
}
