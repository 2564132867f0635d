package entity

import (
	"math"

	"github.com/jakecoffman/cp"
)

// TileBox is an inclusive tile-space rectangle
type TileBox struct {
	Left, Bottom, Right, Top int
}

// Count returns the number of tiles TilesIn enumerates for the box
func (b TileBox) Count() int {
	if b.Right < b.Left || b.Top < b.Bottom {
		return 0
	}
	return (b.Right - b.Left + 1) * (b.Top - b.Bottom + 1)
}

func toTile(v float64) int {
	return int(math.Floor(v / TileSize))
}

// ToTileSpace maps a world-space box to the tiles its edges fall in
func ToTileSpace(bb cp.BB) TileBox {
	return TileBox{
		Left:   toTile(bb.L),
		Bottom: toTile(bb.B),
		Right:  toTile(bb.R),
		Top:    toTile(bb.T),
	}
}

// PointToTile returns the tile containing a world-space point
func PointToTile(p Vec2) TilePos {
	return TilePos{X: toTile(p.X), Y: toTile(p.Y)}
}

// TileOrigin returns the world-space bottom-left corner of a tile
func TileOrigin(t TilePos) Vec2 {
	return Vec2{X: float64(t.X) * TileSize, Y: float64(t.Y) * TileSize}
}

// TilesIn lists every tile of the box, both ends inclusive, row by row from the bottom.
func TilesIn(b TileBox) []TilePos {
	tiles := make([]TilePos, 0, b.Count())
	for y := b.Bottom; y <= b.Top; y++ {
		for x := b.Left; x <= b.Right; x++ {
			tiles = append(tiles, TilePos{X: x, Y: y})
		}
	}
	return tiles
}

// ObstaclesIn returns the obstacles found on the given tiles, in tile order.
// One-way obstacles are dropped when ignoreOneWay is set.
func (idx *ObstacleIndex) ObstaclesIn(tiles []TilePos, ignoreOneWay bool) []Obstacle {
	var found []Obstacle
	for _, t := range tiles {
		o, ok := idx.tiles[t]
		if !ok || (ignoreOneWay && o.OneWay) {
			continue
		}
		found = append(found, o)
	}
	return found
}

// NearestFloorBelow scans the column of from downward, excluding from's own row,
// and returns the first occupied tile.
func (idx *ObstacleIndex) NearestFloorBelow(from TilePos) (TilePos, bool) {
	for y := from.Y - 1; y >= idx.minY; y-- {
		t := TilePos{X: from.X, Y: y}
		if _, ok := idx.tiles[t]; ok {
			return t, true
		}
	}
	return TilePos{}, false
}

// World returns the world-space box covering every tile of b
func (b TileBox) World() cp.BB {
	return cp.BB{
		L: float64(b.Left) * TileSize,
		B: float64(b.Bottom) * TileSize,
		R: float64(b.Right+1) * TileSize,
		T: float64(b.Top+1) * TileSize,
	}
}
