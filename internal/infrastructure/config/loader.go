package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Validate checks every loaded section
func (c *GameConfig) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return err
	}
	return c.Entities.Validate()
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

func (l *Loader) decode(path string, out any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadPhysics loads physics.yaml on top of the defaults
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := l.decode("physics.yaml", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEntities loads entities.yaml on top of the defaults
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	cfg := DefaultEntitiesConfig()
	if err := l.decode("entities.yaml", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.decode(StagePath(name), &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Layers.Collision) == 0 {
		return nil, fmt.Errorf("stage %s: %w: empty collision layer", name, ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadAll loads and validates all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics:  physics,
		Entities: entities,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StagePath returns the stage file path relative to the config root
func StagePath(name string) string {
	return "stages/" + name + ".yaml"
}
