package entity

import "github.com/jakecoffman/cp"

// Stage represents the loaded level: obstacle index plus static regions
type Stage struct {
	Name   string
	Width  int // tiles
	Height int // tiles
	Index  *ObstacleIndex

	// Walls and Platforms are kept for rebuilding and drawing
	Walls     []TilePos
	Platforms []TilePos

	// Spawns are sorted by height, highest first
	Spawns      []Vec2
	Goal        cp.BB
	Zones       []KnockbackZone
	HazardBaseY float64
}

// SpawnFor picks the spawn point of a wealth tier: rich start highest.
func (s *Stage) SpawnFor(w Wealth) Vec2 {
	if len(s.Spawns) == 0 {
		return Vec2{}
	}
	i := int(WealthRich - w)
	if i >= len(s.Spawns) {
		i = len(s.Spawns) - 1
	}
	return s.Spawns[i]
}

// RebuildIndex repopulates the obstacle index from the stage tiles
func (s *Stage) RebuildIndex() {
	if s.Index == nil {
		s.Index = NewObstacleIndex()
	}
	s.Index.Rebuild(s.Walls, s.Platforms)
}
