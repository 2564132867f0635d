package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, -1422.0, cfg.Physics.Gravity)
	assert.Equal(t, 0.125, cfg.Jump.CoyoteTime)
	assert.Equal(t, 0.1, cfg.Jump.JumpBuffer)
	assert.Less(t, cfg.Movement.Debuffed.TopSpeed, cfg.Movement.Normal.TopSpeed)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 16.0, cfg.Actor.Width)
	assert.Equal(t, 36.0, cfg.Actor.Height)
	assert.Equal(t, 3, cfg.Actor.Lives)
	assert.True(t, cfg.Actor.CanPhasePlatforms)
	assert.Equal(t, 2500.0, cfg.Knockback.Force)
	assert.Equal(t, 5000.0, cfg.Knockback.DecayRate())
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.NotEmpty(t, cfg.Layers.Collision)
	assert.NotEmpty(t, cfg.Bouncers)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.Equal(t, "wall", wall.Type)

	platform, ok := cfg.TileMapping["="]
	require.True(t, ok)
	assert.Equal(t, "platform", platform.Type)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml":  {Data: []byte("physics:\n  gravity: -900\n")},
		"entities.yaml": {Data: []byte("actor:\n  lives: 5\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, -900.0, cfg.Physics.Physics.Gravity)
	assert.Equal(t, 60, cfg.Physics.Display.Framerate)
	assert.Equal(t, 5, cfg.Entities.Actor.Lives)
	assert.Equal(t, 16.0, cfg.Entities.Actor.Width)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadPhysics()
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"physics.yaml": {Data: []byte("display: [")}}
		_, err := NewFSLoader(fsys, "mem").LoadPhysics()
		assert.ErrorContains(t, err, "failed to parse physics.yaml")
	})

	t.Run("positive gravity rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"physics.yaml":  {Data: []byte("physics:\n  gravity: 10\n")},
			"entities.yaml": {Data: []byte("{}\n")},
		}
		_, err := NewFSLoader(fsys, "mem").LoadAll()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("empty stage", func(t *testing.T) {
		fsys := fstest.MapFS{"stages/void.yaml": {Data: []byte("id: void\n")}}
		_, err := NewFSLoader(fsys, "mem").LoadStage("void")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestEntitiesConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EntitiesConfig)
	}{
		{"zero lives", func(c *EntitiesConfig) { c.Actor.Lives = 0 }},
		{"zero width", func(c *EntitiesConfig) { c.Actor.Width = 0 }},
		{"zero knockback duration", func(c *EntitiesConfig) { c.Knockback.Duration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEntitiesConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, DefaultEntitiesConfig().Validate())
	assert.NoError(t, DefaultPhysicsConfig().Validate())
}
