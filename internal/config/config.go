// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import "time"

// ChubbycornConfig contains all tuning for the game. Distances are in world
// units on a fixed playfield; the renderer scales them to the terminal.
type ChubbycornConfig struct {
	Playfield    PlayfieldConfig   `yaml:"playfield"`
	Physics      PhysicsConfig     `yaml:"physics"`
	Player       PlayerConfig      `yaml:"player"`
	Scoring      ScoringConfig     `yaml:"scoring"`
	Timers       TimersConfig      `yaml:"timers"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Hazards      HazardConfig      `yaml:"hazards"`
	Decorations  DecorationConfig  `yaml:"decorations"`
	Recycle      RecycleConfig     `yaml:"recycle"`
}

// PlayfieldConfig defines the world dimensions.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player physics, in world units per second.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"` // Negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlayerConfig defines the player's spawn point and hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig defines score and lives.
type ScoringConfig struct {
	Lives       int `yaml:"lives"`
	TickPoints  int `yaml:"tick_points"`  // Awarded on every score timer firing
	BonusPoints int `yaml:"bonus_points"` // Awarded per good collectible
}

// TimersConfig defines the cadence of the run timers.
type TimersConfig struct {
	Score      time.Duration `yaml:"score"`
	Difficulty time.Duration `yaml:"difficulty"`
	SpawnMin   time.Duration `yaml:"spawn_min"`
	SpawnMax   time.Duration `yaml:"spawn_max"`
	Decoration time.Duration `yaml:"decoration"`
}

// DifficultyConfig defines baseline speeds (world units per reference frame)
// and the per-tick increment.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	BackgroundSpeed  float64 `yaml:"background_speed"`
	HazardSpeed      float64 `yaml:"hazard_speed"`
	CollectibleSpeed float64 `yaml:"collectible_speed"`
	Step             float64 `yaml:"step"`
}

// CollectibleConfig defines collectible size, spawn band and bobbing.
type CollectibleConfig struct {
	Size         float64 `yaml:"size"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	BobPeriod    float64 `yaml:"bob_period"` // k in y += sin(x/k) * amplitude
	BobAmplitude float64 `yaml:"bob_amplitude"`
	Preplace     Slots   `yaml:"preplace"`
}

// HazardConfig defines hazard width and height band (fractions of playfield height).
type HazardConfig struct {
	Width     float64 `yaml:"width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	Preplace  Slots   `yaml:"preplace"`
}

// DecorationConfig defines cloud size, vertical band and speed jitter.
type DecorationConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Band        float64 `yaml:"band"`
	SpeedJitter float64 `yaml:"speed_jitter"`
}

// Slots describes entities placed when a run starts, at X, X+Step, ...
type Slots struct {
	Count int     `yaml:"count"`
	X     float64 `yaml:"x"`
	Step  float64 `yaml:"step"`
}

// RecyclePolicy controls what happens to entities leaving the left edge.
type RecyclePolicy string

const (
	RecycleDestroy RecyclePolicy = "destroy"
	RecycleWrap    RecyclePolicy = "wrap"
)

// RecycleConfig defines the off-screen policy.
type RecycleConfig struct {
	Policy     RecyclePolicy `yaml:"policy"`
	WrapJitter float64       `yaml:"wrap_jitter"` // Wrapped entities land in [width, width+jitter)
}
