package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded value cannot drive the simulation
var ErrInvalidConfig = errors.New("invalid config")

// DefaultPhysicsConfig returns the reference tuning
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity: -1422,
			Skin:    2,
		},
		Movement: MovementConfig{
			Normal: MovementProfile{
				TopSpeed:     160,
				Acceleration: 1200,
				StopRate:     1500,
				JumpImpulse:  440,
			},
			Debuffed: MovementProfile{
				TopSpeed:     90,
				Acceleration: 500,
				StopRate:     700,
				JumpImpulse:  300,
			},
		},
		Jump: JumpConfig{
			CoyoteTime: 0.125,
			JumpBuffer: 0.1,
		},
		Debuff: DebuffConfig{
			ChancePerFrame: 0.002,
			MinDuration:    2,
			MaxDuration:    6,
			Cooldown:       10,
		},
	}
}

// DefaultEntitiesConfig returns the reference actor and hazard tuning
func DefaultEntitiesConfig() *EntitiesConfig {
	return &EntitiesConfig{
		Actor: ActorConfig{
			Width:             16,
			Height:            36,
			Lives:             3,
			CanPhasePlatforms: true,
		},
		Hazard: HazardConfig{
			RiseSpeed:       32,
			WobbleAmplitude: 8,
			WobbleFrequency: 2,
			HitRegress:      64,
			BlinkDuration:   1.5,
		},
		Knockback: KnockbackConfig{
			Force:    2500,
			Duration: 0.5,
		},
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate rejects values the stepper cannot work with
func (c *PhysicsConfig) Validate() error {
	if c.Display.Framerate <= 0 {
		return invalid("framerate must be positive, got %d", c.Display.Framerate)
	}
	if c.Physics.Gravity >= 0 {
		return invalid("gravity must be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.Skin < 0 {
		return invalid("skin must not be negative, got %v", c.Physics.Skin)
	}
	for name, p := range map[string]MovementProfile{"normal": c.Movement.Normal, "debuffed": c.Movement.Debuffed} {
		if p.TopSpeed <= 0 || p.Acceleration <= 0 || p.StopRate <= 0 || p.JumpImpulse <= 0 {
			return invalid("movement.%s values must be positive", name)
		}
	}
	if c.Jump.CoyoteTime < 0 || c.Jump.JumpBuffer < 0 {
		return invalid("jump windows must not be negative")
	}
	if c.Debuff.MaxDuration < c.Debuff.MinDuration {
		return invalid("debuff.maxDuration below minDuration")
	}
	return nil
}

// Validate rejects values the stepper cannot work with
func (c *EntitiesConfig) Validate() error {
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		return invalid("actor size must be positive")
	}
	if c.Actor.Lives <= 0 {
		return invalid("actor.lives must be positive, got %d", c.Actor.Lives)
	}
	if c.Knockback.Duration <= 0 || c.Knockback.Force <= 0 {
		return invalid("knockback force and duration must be positive")
	}
	if c.Hazard.BlinkDuration < 0 {
		return invalid("hazard.blinkDuration must not be negative")
	}
	return nil
}
