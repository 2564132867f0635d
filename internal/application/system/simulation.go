package system

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// FrameResult is what one simulation step produced.
// Err carries non-fatal diagnostics such as ErrNoFloor.
type FrameResult struct {
	Events  []Event
	Outcome Outcome
	Err     error
}

// Simulation owns the actor, the hazard and the stage and steps them in a
// fixed order: debuff, input, movement, pursuit, knock-back, outcome.
type Simulation struct {
	cfg    *config.GameConfig
	stage  *entity.Stage
	attrs  entity.Attributes
	actor  *entity.Actor
	hazard *entity.PursuitHazard

	now     float64
	frame   int
	outcome Outcome

	logger *log.Logger
	rng    *rand.Rand

	debuff    *DebuffSystem
	input     *InputSystem
	movement  *MovementSystem
	pursuit   *PursuitSystem
	knockback *KnockbackSystem
	goal      *GoalSystem
}

// Option configures a Simulation
type Option func(*Simulation)

// WithLogger sets the logger used for diagnostics
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// WithRand sets the random source; replays need a seeded one
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = r
	}
}

// WithStartTime sets the clock value the run starts from
func WithStartTime(t float64) Option {
	return func(s *Simulation) {
		s.now = t
	}
}

// NewSimulation spawns the actor on the stage according to its wealth
func NewSimulation(cfg *config.GameConfig, stage *entity.Stage, attrs entity.Attributes, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		stage: stage,
		attrs: attrs,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	actorCfg := cfg.Entities.Actor
	s.actor = entity.NewActor(stage.SpawnFor(attrs.Wealth), actorCfg.Width, actorCfg.Height, actorCfg.Lives)
	s.hazard = entity.NewPursuitHazard(stage.HazardBaseY, s.now)

	s.debuff = NewDebuffSystem(cfg, s.rng)
	s.input = NewInputSystem(cfg)
	s.movement = NewMovementSystem(cfg, stage)
	s.pursuit = NewPursuitSystem(cfg, stage, s.logger)
	s.knockback = NewKnockbackSystem(cfg, stage)
	s.goal = NewGoalSystem(stage)

	return s
}

// Step advances the clock by dt and runs one frame. Once the outcome is
// terminal further steps do nothing.
func (s *Simulation) Step(input InputState, dt float64) FrameResult {
	if s.outcome.Terminal() {
		return FrameResult{Outcome: s.outcome}
	}

	s.now += dt
	s.frame++

	if input.Reset {
		s.outcome = OutcomeRestart
		return FrameResult{Outcome: s.outcome}
	}

	var events Events
	s.debuff.Update(s.actor, s.attrs, s.now, &events)
	s.input.UpdateActor(s.actor, input, s.now, dt, &events)
	s.movement.Update(s.actor, s.now, dt, &events)

	lost, err := s.pursuit.Update(s.hazard, s.actor, s.now, &events)
	if lost {
		s.outcome = OutcomeLost
		s.logger.Info("caught by hazard", "frame", s.frame, "time", s.now)
		return FrameResult{Events: events, Outcome: s.outcome, Err: err}
	}

	s.knockback.Update(s.actor, s.attrs, s.now, &events)
	s.outcome = s.goal.Check(s.actor)
	if s.outcome == OutcomeWon {
		s.logger.Info("goal reached", "frame", s.frame, "time", s.now)
	}

	return FrameResult{Events: events, Outcome: s.outcome, Err: err}
}

// ReloadStage swaps the stage contents in place between frames.
// The actor and hazard keep their state.
func (s *Simulation) ReloadStage(stage *entity.Stage) {
	*s.stage = *stage
	s.stage.RebuildIndex()
	s.logger.Debug("stage reloaded", "stage", stage.Name, "walls", len(stage.Walls), "platforms", len(stage.Platforms))
}

// Actor returns the simulated actor
func (s *Simulation) Actor() *entity.Actor {
	return s.actor
}

// Hazard returns the pursuit hazard
func (s *Simulation) Hazard() *entity.PursuitHazard {
	return s.hazard
}

// Stage returns the current stage
func (s *Simulation) Stage() *entity.Stage {
	return s.stage
}

// Attributes returns the actor's attributes
func (s *Simulation) Attributes() entity.Attributes {
	return s.attrs
}

// Now returns the simulation clock in seconds
func (s *Simulation) Now() float64 {
	return s.now
}

// Frame returns the number of frames stepped
func (s *Simulation) Frame() int {
	return s.frame
}

// Outcome returns the current run status
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}
