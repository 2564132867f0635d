package entity

import "fmt"

// TileSize is the edge length of one tile in world units
const TileSize = 16.0

// TileType represents the type of a tile in a stage layout
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TilePlatform
)

// String returns the stage-file name of the tile type
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TilePlatform:
		return "platform"
	default:
		return "empty"
	}
}

// TilePos is an integer tile coordinate. Y grows upward.
type TilePos struct {
	X, Y int
}

func (p TilePos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec2 is a world-space vector. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Facing is the horizontal direction the actor looks at
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Moment is an optional timestamp on the simulation clock.
type Moment struct {
	At    float64
	Valid bool
}

// At returns a set Moment at t
func At(t float64) Moment {
	return Moment{At: t, Valid: true}
}

// Impulse is an optional decaying horizontal knock-back force.
type Impulse struct {
	Value  float64
	Active bool
}
