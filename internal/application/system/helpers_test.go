package system

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics:  config.DefaultPhysicsConfig(),
		Entities: config.DefaultEntitiesConfig(),
	}
}

// row returns tiles x0..x1 inclusive on row y
func row(x0, x1, y int) []entity.TilePos {
	tiles := make([]entity.TilePos, 0, x1-x0+1)
	for x := x0; x <= x1; x++ {
		tiles = append(tiles, entity.TilePos{X: x, Y: y})
	}
	return tiles
}

// column returns tiles y0..y1 inclusive on column x
func column(x, y0, y1 int) []entity.TilePos {
	tiles := make([]entity.TilePos, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		tiles = append(tiles, entity.TilePos{X: x, Y: y})
	}
	return tiles
}

func createTestStage(walls, platforms []entity.TilePos) *entity.Stage {
	stage := &entity.Stage{
		Name:        "test",
		Walls:       walls,
		Platforms:   platforms,
		Spawns:      []entity.Vec2{{X: 40, Y: 16}},
		Goal:        entity.TileBox{Left: 100, Bottom: 100, Right: 101, Top: 101}.World(),
		HazardBaseY: -50,
	}
	stage.RebuildIndex()
	return stage
}

func createTestActor(x, y float64) *entity.Actor {
	return entity.NewActor(entity.Vec2{X: x, Y: y}, 16, 36, 3)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func createTestAttributes() entity.Attributes {
	return entity.Attributes{
		Wealth: entity.WealthMiddleClass,
		Skin:   entity.SkinMedium,
	}
}
