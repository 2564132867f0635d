package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Actor     ActorConfig     `yaml:"actor"`
	Hazard    HazardConfig    `yaml:"hazard"`
	Knockback KnockbackConfig `yaml:"knockback"`
}

type ActorConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Lives             int     `yaml:"lives"`
	CanPhasePlatforms bool    `yaml:"canPhasePlatforms"` // jump up through one-way platforms
}

// HazardConfig configures the rising pursuit hazard
type HazardConfig struct {
	RiseSpeed       float64 `yaml:"riseSpeed"`
	WobbleAmplitude float64 `yaml:"wobbleAmplitude"`
	WobbleFrequency float64 `yaml:"wobbleFrequency"`
	HitRegress      float64 `yaml:"hitRegress"`    // extra setback past the floor on each hit
	BlinkDuration   float64 `yaml:"blinkDuration"` // seconds
}

// KnockbackConfig configures bouncer zones
type KnockbackConfig struct {
	Force    float64 `yaml:"force"`
	Duration float64 `yaml:"duration"`
}

// DecayRate is how fast an armed impulse returns to zero, per second
func (k KnockbackConfig) DecayRate() float64 {
	return k.Force / k.Duration
}
