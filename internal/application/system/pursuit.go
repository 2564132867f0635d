package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// ErrNoFloor is reported when a hazard hit finds no floor under the actor.
// The hit still counts; the actor's feet stand in for the floor top.
var ErrNoFloor = errors.New("no floor below actor")

// PursuitSystem advances the rising hazard and resolves contact with the actor
type PursuitSystem struct {
	cfg    config.HazardConfig
	stage  *entity.Stage
	logger *log.Logger
}

// NewPursuitSystem creates a new pursuit system
func NewPursuitSystem(cfg *config.GameConfig, stage *entity.Stage, logger *log.Logger) *PursuitSystem {
	return &PursuitSystem{
		cfg:    cfg.Entities.Hazard,
		stage:  stage,
		logger: logger,
	}
}

// Update moves the hazard surface to time now and applies a hit if the
// actor's feet are below it. It reports whether the hit took the last life.
func (s *PursuitSystem) Update(h *entity.PursuitHazard, a *entity.Actor, now float64, events *Events) (bool, error) {
	surface := h.Advance(now, s.cfg.RiseSpeed, s.cfg.WobbleFrequency, s.cfg.WobbleAmplitude)
	if a.Position.Y >= surface {
		return false, nil
	}

	a.Lives--
	if a.Lives <= 0 {
		a.Lives = 0
		events.Emit(HazardHitEvent{Position: a.Position, LivesLeft: 0})
		return true, nil
	}

	var err error
	floorTop := a.Position.Y
	from := entity.PointToTile(a.Position)
	if floor, ok := s.stage.Index.NearestFloorBelow(from); ok {
		floorTop = entity.TileOrigin(floor).Y + entity.TileSize
	} else {
		err = fmt.Errorf("%w: column %d below row %d", ErrNoFloor, from.X, from.Y)
		s.logger.Error("hazard hit without floor", "tile", from, "err", err)
	}

	setback := surface - floorTop + s.cfg.HitRegress
	h.Regress += setback
	h.SurfaceY -= setback
	a.InvulnerableUntil = now + s.cfg.BlinkDuration

	events.Emit(HazardHitEvent{Position: a.Position, LivesLeft: a.Lives})
	return false, err
}
