package system

import "github.com/younwookim/upward/internal/domain/entity"

// Event is a frame-scoped notification for presentation code
type Event interface {
	isEvent()
}

// JumpEvent is emitted when a jump impulse is applied.
// Grounded is false for coyote-time jumps taken while already falling.
type JumpEvent struct {
	Grounded bool
	Position entity.Vec2
	Velocity entity.Vec2
}

func (JumpEvent) isEvent() {}

// LandingEvent carries the velocity the actor had before the landing snap
type LandingEvent struct {
	Position entity.Vec2
	Velocity entity.Vec2
}

func (LandingEvent) isEvent() {}

// CeilingHitEvent is emitted when a rising actor bumps its head
type CeilingHitEvent struct {
	Position entity.Vec2
}

func (CeilingHitEvent) isEvent() {}

// FacingChangedEvent is emitted when horizontal input turns the actor around
type FacingChangedEvent struct {
	Position entity.Vec2
	Facing   entity.Facing
}

func (FacingChangedEvent) isEvent() {}

// HazardHitEvent is emitted when the pursuit hazard catches the actor
type HazardHitEvent struct {
	Position  entity.Vec2
	LivesLeft int
}

func (HazardHitEvent) isEvent() {}

// KnockbackEvent is emitted when a zone arms a fresh impulse
type KnockbackEvent struct {
	Position entity.Vec2
	Impulse  float64
}

func (KnockbackEvent) isEvent() {}

// DebuffStartedEvent is emitted when the actor enters the debuffed state
type DebuffStartedEvent struct {
	Until float64
}

func (DebuffStartedEvent) isEvent() {}

// Events is the per-frame output queue
type Events []Event

// Emit appends an event to the queue
func (e *Events) Emit(ev Event) {
	*e = append(*e, ev)
}
