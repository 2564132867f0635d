package system

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
)

// ErrNoSpawn is returned for stages without a spawn marker
var ErrNoSpawn = errors.New("stage has no spawn point")

// LoadStage converts a StageConfig into a Stage entity.
// Collision rows are listed top first; tile y grows upward from the last row.
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	rows := cfg.Layers.Collision
	stage := &entity.Stage{
		Name:        cfg.Name,
		Height:      len(rows),
		Goal:        tileRect(cfg.Goal),
		HazardBaseY: cfg.Hazard.BaseY,
	}

	for i, row := range rows {
		y := len(rows) - 1 - i
		stage.Width = max(stage.Width, len(row))

		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			pos := entity.TilePos{X: x, Y: y}
			switch mapping.Type {
			case "wall":
				stage.Walls = append(stage.Walls, pos)
			case "platform":
				stage.Platforms = append(stage.Platforms, pos)
			case "spawn":
				origin := entity.TileOrigin(pos)
				stage.Spawns = append(stage.Spawns, entity.Vec2{
					X: origin.X + entity.TileSize/2,
					Y: origin.Y,
				})
			}
		}
	}

	if len(stage.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.ID, ErrNoSpawn)
	}
	slices.SortStableFunc(stage.Spawns, func(a, b entity.Vec2) int {
		return cmp.Compare(b.Y, a.Y)
	})

	for _, b := range cfg.Bouncers {
		dir := 1.0
		if b.PushLeft {
			dir = -1.0
		}
		stage.Zones = append(stage.Zones, entity.KnockbackZone{
			Access:  entity.ParseAccessRule(b.Allow),
			PushDir: dir,
			Bounds:  tileRect(b.Rect),
		})
	}

	stage.RebuildIndex()
	return stage, nil
}

// tileRect converts a rectangle given in tiles to world space
func tileRect(r config.RectConfig) cp.BB {
	return entity.TileBox{
		Left:   r.X,
		Bottom: r.Y,
		Right:  r.X + r.W - 1,
		Top:    r.Y + r.H - 1,
	}.World()
}
