package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// InputState holds the input sampled for one frame
type InputState struct {
	Left        bool
	Right       bool
	JumpPressed bool // edge-triggered
	Reset       bool
}

// ReadInput samples the keyboard
func ReadInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
		Reset: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// InputSystem turns input into actor velocity: jumps, horizontal ramp and
// the knock-back overlay
type InputSystem struct {
	physics   *config.PhysicsConfig
	knockback config.KnockbackConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.GameConfig) *InputSystem {
	return &InputSystem{
		physics:   cfg.Physics,
		knockback: cfg.Entities.Knockback,
	}
}

// UpdateActor updates the actor based on input
func (s *InputSystem) UpdateActor(a *entity.Actor, input InputState, now, dt float64, events *Events) {
	profile := s.physics.Movement.Profile(a.IsDebuffed(now))

	s.handleJump(a, input, profile, now, dt, events)
	s.handleMovement(a, input, profile, dt, events)
	s.applyKnockback(a, dt)
}

// handleJump runs the coyote-time and jump-buffer state machine
func (s *InputSystem) handleJump(a *entity.Actor, input InputState, profile config.MovementProfile, now, dt float64, events *Events) {
	jump := s.physics.Jump

	if !a.IsGrounded() {
		if input.JumpPressed {
			a.BufferedJump = entity.At(now)
		} else if a.BufferedJump.Valid && !a.BufferedJumpValid(now, jump.JumpBuffer) {
			a.BufferedJump = entity.Moment{}
		}
		return
	}

	inWindow := now < a.Ground.At+jump.CoyoteTime
	wantsJump := input.JumpPressed || a.BufferedJumpValid(now, jump.JumpBuffer)
	a.BufferedJump = entity.Moment{}

	if !inWindow {
		a.Ground = entity.Moment{}
		return
	}
	if !wantsJump {
		return
	}

	grounded := a.Velocity.Y >= 0
	// Gravity is pre-compensated so the first frame rises by the full impulse.
	a.Velocity.Y = profile.JumpImpulse - s.physics.Physics.Gravity*dt
	a.Ground = entity.Moment{}
	events.Emit(JumpEvent{Grounded: grounded, Position: a.Position, Velocity: a.Velocity})
}

// handleMovement ramps horizontal speed toward the held direction
func (s *InputSystem) handleMovement(a *entity.Actor, input InputState, profile config.MovementProfile, dt float64, events *Events) {
	switch {
	case input.Left:
		s.face(a, entity.FacingLeft, events)
		a.Velocity.X = math.Max(a.Velocity.X-profile.Acceleration*dt, -profile.TopSpeed)
	case input.Right:
		s.face(a, entity.FacingRight, events)
		a.Velocity.X = math.Min(a.Velocity.X+profile.Acceleration*dt, profile.TopSpeed)
	case a.Velocity.X > 0:
		a.Velocity.X = math.Max(a.Velocity.X-profile.StopRate*dt, 0)
	case a.Velocity.X < 0:
		a.Velocity.X = math.Min(a.Velocity.X+profile.StopRate*dt, 0)
	}
}

func (s *InputSystem) face(a *entity.Actor, f entity.Facing, events *Events) {
	if a.Facing == f {
		return
	}
	a.Facing = f
	events.Emit(FacingChangedEvent{Position: a.Position, Facing: f})
}

// applyKnockback adds the armed impulse and decays it linearly toward zero
func (s *InputSystem) applyKnockback(a *entity.Actor, dt float64) {
	if !a.Knockback.Active {
		return
	}

	v := a.Knockback.Value
	a.Velocity.X += v * dt

	decay := s.knockback.DecayRate() * dt
	switch {
	case v > 0:
		v = math.Max(v-decay, 0)
	case v < 0:
		v = math.Min(v+decay, 0)
	}

	if v == 0 {
		a.Knockback = entity.Impulse{}
		return
	}
	a.Knockback.Value = v
}
