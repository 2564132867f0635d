package entity

// Obstacle is a blocking tile. One-way obstacles are passable from below.
type Obstacle struct {
	Tile   TilePos
	OneWay bool
}

// ObstacleIndex maps tile coordinates to obstacles.
// It is rebuilt wholesale when stage geometry changes, never patched.
type ObstacleIndex struct {
	tiles map[TilePos]Obstacle
	minY  int
}

// NewObstacleIndex creates an empty index
func NewObstacleIndex() *ObstacleIndex {
	return &ObstacleIndex{tiles: make(map[TilePos]Obstacle)}
}

// Clear removes all entries
func (idx *ObstacleIndex) Clear() {
	clear(idx.tiles)
	idx.minY = 0
}

// Insert stores an obstacle at tile, replacing any previous entry
func (idx *ObstacleIndex) Insert(tile TilePos, o Obstacle) {
	if len(idx.tiles) == 0 || tile.Y < idx.minY {
		idx.minY = tile.Y
	}
	idx.tiles[tile] = o
}

// Lookup returns the obstacle at tile, if any
func (idx *ObstacleIndex) Lookup(tile TilePos) (Obstacle, bool) {
	o, ok := idx.tiles[tile]
	return o, ok
}

// Len returns the number of occupied tiles
func (idx *ObstacleIndex) Len() int {
	return len(idx.tiles)
}

// Rebuild replaces the index contents with the given walls and one-way platforms.
// Platforms are inserted after walls, so a platform wins on a shared tile.
func (idx *ObstacleIndex) Rebuild(walls, platforms []TilePos) {
	idx.Clear()
	for _, t := range walls {
		idx.Insert(t, Obstacle{Tile: t})
	}
	for _, t := range platforms {
		idx.Insert(t, Obstacle{Tile: t, OneWay: true})
	}
}
