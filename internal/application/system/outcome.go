package system

import "github.com/younwookim/upward/internal/domain/entity"

// Outcome is the run status after a frame
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeRestart
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeRestart:
		return "restart"
	default:
		return "running"
	}
}

// Terminal reports whether the run has ended
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// GoalSystem checks the win and loss conditions
type GoalSystem struct {
	stage *entity.Stage
}

// NewGoalSystem creates a new goal system
func NewGoalSystem(stage *entity.Stage) *GoalSystem {
	return &GoalSystem{stage: stage}
}

// Check returns Won when the actor overlaps the goal, Lost when no lives remain
func (s *GoalSystem) Check(a *entity.Actor) Outcome {
	if a.Lives <= 0 {
		return OutcomeLost
	}
	if s.stage.Goal.Intersects(a.Bounds()) {
		return OutcomeWon
	}
	return OutcomeRunning
}
