package system

import (
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// KnockbackSystem repels actors from zones whose access rule denies them
type KnockbackSystem struct {
	cfg   config.KnockbackConfig
	stage *entity.Stage
	mover *MovementSystem
}

// NewKnockbackSystem creates a new knockback system
func NewKnockbackSystem(cfg *config.GameConfig, stage *entity.Stage) *KnockbackSystem {
	return &KnockbackSystem{
		cfg:   cfg.Entities.Knockback,
		stage: stage,
		mover: NewMovementSystem(cfg, stage),
	}
}

// Update checks every zone against the actor. A denied actor is displaced
// out of the zone each frame it overlaps, stopping short of walls; the impulse is armed only when none
// is already running.
func (s *KnockbackSystem) Update(a *entity.Actor, attrs entity.Attributes, now float64, events *Events) {
	for _, zone := range s.stage.Zones {
		if !zone.Bounds.Intersects(a.Bounds()) || zone.Access.Allows(attrs) {
			continue
		}

		s.mover.SweepX(a, -2*a.Width*zone.PushDir)

		if a.Knockback.Active {
			continue
		}
		a.Knockback = entity.Impulse{Value: s.cfg.Force * zone.PushDir, Active: true}
		a.InvulnerableUntil = now + s.cfg.Duration
		events.Emit(KnockbackEvent{Position: a.Position, Impulse: a.Knockback.Value})
	}
}
