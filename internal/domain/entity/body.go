package entity

import "github.com/jakecoffman/cp"

// Body is the physical part of the actor.
// Position is the bottom-centre (feet) point in world units.
type Body struct {
	Position Vec2
	Velocity Vec2
	Width    float64
	Height   float64
}

// Bounds returns the body's axis-aligned box in world space
func (b *Body) Bounds() cp.BB {
	hw := b.Width / 2
	return cp.BB{
		L: b.Position.X - hw,
		B: b.Position.Y,
		R: b.Position.X + hw,
		T: b.Position.Y + b.Height,
	}
}

// Actor is the single controllable character
type Actor struct {
	Body
	Facing Facing

	// Ground is set while grounded, holding the time of the last ground contact.
	Ground       Moment
	BufferedJump Moment
	Knockback    Impulse

	InvulnerableUntil float64
	DebuffUntil       float64
	Lives             int
}

// NewActor creates an actor standing at pos, facing right and airborne
func NewActor(pos Vec2, width, height float64, lives int) *Actor {
	return &Actor{
		Body: Body{
			Position: pos,
			Width:    width,
			Height:   height,
		},
		Facing: FacingRight,
		Lives:  lives,
	}
}

// IsGrounded reports whether the actor stands on something
func (a *Actor) IsGrounded() bool {
	return a.Ground.Valid
}

// IsInvulnerable returns true while the actor blinks after a hit or knock-back
func (a *Actor) IsInvulnerable(now float64) bool {
	return a.InvulnerableUntil > now
}

// IsDebuffed returns true while the reduced movement profile applies
func (a *Actor) IsDebuffed(now float64) bool {
	return a.DebuffUntil > now
}

// BufferedJumpValid reports whether a buffered jump press is younger than window
func (a *Actor) BufferedJumpValid(now, window float64) bool {
	return a.BufferedJump.Valid && now-a.BufferedJump.At < window
}
