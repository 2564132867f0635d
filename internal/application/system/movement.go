package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// ceilingBounce is the factor applied to vertical velocity on a ceiling hit
const ceilingBounce = -0.1

// MovementSystem integrates gravity and resolves tile collisions, X before Y
type MovementSystem struct {
	physics  *config.PhysicsConfig
	canPhase bool
	stage    *entity.Stage
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.GameConfig, stage *entity.Stage) *MovementSystem {
	return &MovementSystem{
		physics:  cfg.Physics,
		canPhase: cfg.Entities.Actor.CanPhasePlatforms,
		stage:    stage,
	}
}

// Update moves the actor for one frame
func (s *MovementSystem) Update(a *entity.Actor, now, dt float64, events *Events) {
	a.Velocity.Y += s.physics.Physics.Gravity * dt

	// A stationary axis is skipped: a zero-length sweep would still
	// enumerate the tile it touches.
	if a.Velocity.X != 0 {
		s.moveX(a, dt)
	}
	if a.Velocity.Y != 0 {
		s.moveY(a, now, dt, events)
	}
}

func (s *MovementSystem) moveX(a *entity.Actor, dt float64) {
	s.SweepX(a, a.Velocity.X*dt)
}

// SweepX moves the actor dx along x, stopping at the first solid tile column
// in the way. One-way tiles never block sideways.
func (s *MovementSystem) SweepX(a *entity.Actor, dx float64) {
	if dx == 0 {
		return
	}
	hw := a.Width / 2
	skin := s.physics.Physics.Skin
	target := a.Position.X + dx
	movingRight := dx > 0

	sweep := cp.BB{
		B: a.Position.Y + skin,
		T: a.Position.Y + a.Height - skin,
	}
	if movingRight {
		sweep.L = a.Position.X + hw
		sweep.R = sweep.L + dx
	} else {
		sweep.R = a.Position.X - hw
		sweep.L = sweep.R + dx
	}

	obstacles := s.query(sweep, true)
	if len(obstacles) == 0 {
		a.Position.X = target
		return
	}

	if movingRight {
		nearest := obstacles[0].Tile.X
		for _, o := range obstacles[1:] {
			nearest = min(nearest, o.Tile.X)
		}
		limit := float64(nearest)*entity.TileSize - hw
		a.Position.X = math.Min(target, limit)
	} else {
		nearest := obstacles[0].Tile.X
		for _, o := range obstacles[1:] {
			nearest = max(nearest, o.Tile.X)
		}
		limit := float64(nearest)*entity.TileSize + entity.TileSize + hw
		a.Position.X = math.Max(target, limit)
	}
}

// moveY sweeps the leading horizontal edge, landing or bumping the ceiling
func (s *MovementSystem) moveY(a *entity.Actor, now, dt float64, events *Events) {
	hw := a.Width / 2
	skin := s.physics.Physics.Skin
	target := a.Position.Y + a.Velocity.Y*dt
	reach := math.Abs(a.Velocity.Y) * dt
	movingUp := a.Velocity.Y > 0

	sweep := cp.BB{
		L: a.Position.X - hw + skin,
		R: a.Position.X + hw - skin,
	}
	if movingUp {
		sweep.B = a.Position.Y + a.Height
		sweep.T = sweep.B + reach
	} else {
		sweep.T = a.Position.Y
		sweep.B = sweep.T - reach
	}

	obstacles := s.query(sweep, movingUp && s.canPhase)
	if len(obstacles) == 0 {
		a.Position.Y = target
		return
	}

	if movingUp {
		nearest := obstacles[0].Tile.Y
		for _, o := range obstacles[1:] {
			nearest = min(nearest, o.Tile.Y)
		}
		limit := float64(nearest)*entity.TileSize - a.Height
		if limit >= target {
			a.Position.Y = target
			return
		}
		a.Position.Y = limit
		a.Velocity.Y *= ceilingBounce
		events.Emit(CeilingHitEvent{Position: a.Position})
		return
	}

	nearest := obstacles[0].Tile.Y
	for _, o := range obstacles[1:] {
		nearest = max(nearest, o.Tile.Y)
	}
	limit := float64(nearest)*entity.TileSize + entity.TileSize
	if limit <= target {
		a.Position.Y = target
		return
	}

	a.Position.Y = limit
	if !a.IsGrounded() {
		events.Emit(LandingEvent{Position: a.Position, Velocity: a.Velocity})
	}
	a.Velocity.Y = 0
	a.Ground = entity.At(now)
}

func (s *MovementSystem) query(sweep cp.BB, ignoreOneWay bool) []entity.Obstacle {
	tiles := entity.TilesIn(entity.ToTileSpace(sweep))
	return s.stage.Index.ObstaclesIn(tiles, ignoreOneWay)
}
