package system

import (
	"math/rand"

	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// DebuffSystem randomly puts depressive actors into the slow movement profile
type DebuffSystem struct {
	cfg config.DebuffConfig
	rng *rand.Rand
}

// NewDebuffSystem creates a new debuff system drawing from rng
func NewDebuffSystem(cfg *config.GameConfig, rng *rand.Rand) *DebuffSystem {
	return &DebuffSystem{
		cfg: cfg.Physics.Debuff,
		rng: rng,
	}
}

// Update rolls for a new debuff once the cooldown since the last one has passed
func (s *DebuffSystem) Update(a *entity.Actor, attrs entity.Attributes, now float64, events *Events) {
	if !attrs.Depressive || a.DebuffUntil+s.cfg.Cooldown >= now {
		return
	}
	if s.rng.Float64() >= s.cfg.ChancePerFrame {
		return
	}

	span := s.cfg.MaxDuration - s.cfg.MinDuration
	a.DebuffUntil = now + s.cfg.MinDuration + s.rng.Float64()*span
	events.Emit(DebuffStartedEvent{Until: a.DebuffUntil})
}
