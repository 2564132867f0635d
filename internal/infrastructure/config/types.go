package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display  DisplayConfig   `yaml:"display"`
	Physics  PhysicsSettings `yaml:"physics"`
	Movement MovementConfig  `yaml:"movement"`
	Jump     JumpConfig      `yaml:"jump"`
	Debuff   DebuffConfig    `yaml:"debuff"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity float64 `yaml:"gravity"` // world units/s², negative pulls down
	Skin    float64 `yaml:"skin"`    // inset on the axis perpendicular to a sweep
}

// MovementConfig holds the normal and debuffed movement profiles
type MovementConfig struct {
	Normal   MovementProfile `yaml:"normal"`
	Debuffed MovementProfile `yaml:"debuffed"`
}

type MovementProfile struct {
	TopSpeed     float64 `yaml:"topSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	StopRate     float64 `yaml:"stopRate"`
	JumpImpulse  float64 `yaml:"jumpImpulse"`
}

type JumpConfig struct {
	CoyoteTime float64 `yaml:"coyoteTime"` // seconds after leaving ground a jump is still honoured
	JumpBuffer float64 `yaml:"jumpBuffer"` // seconds a press before landing stays valid
}

// DebuffConfig configures the random low-energy state of depressive actors
type DebuffConfig struct {
	ChancePerFrame float64 `yaml:"chancePerFrame"`
	MinDuration    float64 `yaml:"minDuration"`
	MaxDuration    float64 `yaml:"maxDuration"`
	Cooldown       float64 `yaml:"cooldown"`
}

// Profile returns the movement profile for the debuffed flag
func (m MovementConfig) Profile(debuffed bool) MovementProfile {
	if debuffed {
		return m.Debuffed
	}
	return m.Normal
}
