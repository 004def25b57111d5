package session

import "github.com/vovakirdan/chubbycorn/internal/config"

// DifficultyState holds the current scroll speeds, in world units per
// reference frame.
type DifficultyState struct {
	BackgroundSpeed  float64
	HazardSpeed      float64
	CollectibleSpeed float64
}

// baselineSpeeds returns the speeds a run starts with.
func baselineSpeeds(cfg config.DifficultyConfig) DifficultyState {
	return DifficultyState{
		BackgroundSpeed:  cfg.BackgroundSpeed,
		HazardSpeed:      cfg.HazardSpeed,
		CollectibleSpeed: cfg.CollectibleSpeed,
	}
}

// Difficulty owns the speed progression. Speeds only grow between resets.
type Difficulty struct {
	baseline DifficultyState
	state    DifficultyState
	step     float64
	enabled  bool
	ticks    int
}

// NewDifficulty creates a controller at baseline. When enabled is false,
// Tick leaves the speeds untouched. The step must not be negative;
// config.Validate rejects such tunings before they get here.
func NewDifficulty(baseline DifficultyState, step float64, enabled bool) *Difficulty {
	return &Difficulty{
		baseline: baseline,
		state:    baseline,
		step:     step,
		enabled:  enabled,
	}
}

// Tick adds the step to every speed. Returns false when progression is disabled.
func (d *Difficulty) Tick() bool {
	if !d.enabled {
		return false
	}
	d.state.BackgroundSpeed += d.step
	d.state.HazardSpeed += d.step
	d.state.CollectibleSpeed += d.step
	d.ticks++
	return true
}

// Reset restores the baseline speeds.
func (d *Difficulty) Reset() {
	d.state = d.baseline
	d.ticks = 0
}

// State returns the current speeds.
func (d *Difficulty) State() DifficultyState {
	return d.state
}

// Ticks returns how many increments were applied since the last reset.
// Disabled progression never counts.
func (d *Difficulty) Ticks() int {
	return d.ticks
}

// Enabled reports whether progression is on.
func (d *Difficulty) Enabled() bool {
	return d.enabled
}
