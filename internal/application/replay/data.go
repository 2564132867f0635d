package replay

import (
	"github.com/younwookim/upward/internal/application/system"
	"github.com/younwookim/upward/internal/domain/entity"
)

// Version is written into every recorded replay
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	J   bool `json:"j,omitempty"`   // JumpPressed
	Rst bool `json:"rst,omitempty"` // Reset
}

// NewFrameInput captures one frame of simulation input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		L:   in.Left,
		R:   in.Right,
		J:   in.JumpPressed,
		Rst: in.Reset,
	}
}

// Input converts the frame back to simulation input
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		JumpPressed: fi.J,
		Reset:       fi.Rst,
	}
}

// ReplayData contains all data needed to replay a run.
// Seed drives the debuff rolls; Attributes fix the spawn and zone access.
type ReplayData struct {
	Version    string            `json:"version"`
	Seed       int64             `json:"seed"`
	Stage      string            `json:"stage"`
	Attributes entity.Attributes `json:"attributes"`
	DT         float64           `json:"dt"`
	StartTime  string            `json:"startTime"`
	Frames     []FrameInput      `json:"frames"`
}
