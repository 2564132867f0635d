package playing

import (
	"github.com/jakecoffman/cp"
	"github.com/younwookim/upward/internal/domain/entity"
)

// camera maps y-up world space onto the y-down screen.
// X/Y is the world position of the screen's bottom-left corner.
type camera struct {
	X, Y float64
	W, H float64
}

// follow centres the view on target horizontally, keeps it in the lower
// third vertically, and clamps to the stage
func (c *camera) follow(target entity.Vec2, stageW, stageH float64) {
	c.X = clamp(target.X-c.W/2, 0, stageW-c.W)
	c.Y = clamp(target.Y-c.H/3, 0, stageH-c.H)
}

// rect converts a world box to a screen rectangle
func (c *camera) rect(bb cp.BB) (x, y, w, h float64) {
	return bb.L - c.X, c.H - (bb.T - c.Y), bb.R - bb.L, bb.T - bb.B
}

// visible reports whether any part of bb is on screen
func (c *camera) visible(bb cp.BB) bool {
	return bb.Intersects(cp.BB{L: c.X, B: c.Y, R: c.X + c.W, T: c.Y + c.H})
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
