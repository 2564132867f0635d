package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Goal        RectConfig                   `yaml:"goal"`
	Bouncers    []BouncerConfig              `yaml:"bouncers"`
	Hazard      StageHazardConfig            `yaml:"hazard"`
}

// LayersConfig holds the ASCII layers, first row is the top of the stage
type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type string `yaml:"type"` // wall, platform, spawn
}

// RectConfig is a rectangle in tile units, X/Y is the bottom-left tile
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type BouncerConfig struct {
	Rect     RectConfig `yaml:"rect"`
	Allow    string     `yaml:"allow"` // rich, skin_light
	PushLeft bool       `yaml:"pushLeft"`
}

type StageHazardConfig struct {
	BaseY float64 `yaml:"baseY"`
}
