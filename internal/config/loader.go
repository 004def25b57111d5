package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "chubbycorn.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.chubbycorn/configs/chubbycorn.yaml -> ./configs/chubbycorn.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
func Load(customPath string) (ChubbycornConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultChubbycornConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultChubbycornConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultChubbycornYAML)
	if err != nil {
		return DefaultChubbycornConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (ChubbycornConfig, error) {
	cfg := DefaultChubbycornConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects tunings the game cannot run with.
func (c ChubbycornConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Scoring.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Scoring.Lives))
	}
	if c.Timers.Score <= 0 || c.Timers.Difficulty <= 0 || c.Timers.Decoration <= 0 {
		errs = append(errs, errors.New("score, difficulty and decoration timers must be positive"))
	}
	if c.Timers.SpawnMin <= 0 || c.Timers.SpawnMax < c.Timers.SpawnMin {
		errs = append(errs, fmt.Errorf("spawn interval must satisfy 0 < min <= max, got %v..%v", c.Timers.SpawnMin, c.Timers.SpawnMax))
	}
	if c.Hazards.MinHeight < 0 || c.Hazards.MaxHeight > 1 || c.Hazards.MaxHeight < c.Hazards.MinHeight {
		errs = append(errs, fmt.Errorf("hazard height band must lie in [0,1], got %v..%v", c.Hazards.MinHeight, c.Hazards.MaxHeight))
	}
	d := c.Difficulty
	if d.BackgroundSpeed <= 0 || d.HazardSpeed <= 0 || d.CollectibleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("difficulty speeds must be positive, got background %v hazard %v collectible %v",
			d.BackgroundSpeed, d.HazardSpeed, d.CollectibleSpeed))
	}
	if d.Step < 0 {
		errs = append(errs, fmt.Errorf("difficulty step must not be negative, got %v", d.Step))
	}
	if c.Collectibles.Size <= 0 {
		errs = append(errs, fmt.Errorf("collectible size must be positive, got %v", c.Collectibles.Size))
	}
	if c.Hazards.Width <= 0 {
		errs = append(errs, fmt.Errorf("hazard width must be positive, got %v", c.Hazards.Width))
	}
	if c.Decorations.Width <= 0 || c.Decorations.Height <= 0 {
		errs = append(errs, fmt.Errorf("decoration size must be positive, got %vx%v", c.Decorations.Width, c.Decorations.Height))
	}
	if c.Decorations.SpeedJitter < 0 || c.Recycle.WrapJitter < 0 {
		errs = append(errs, fmt.Errorf("jitter must not be negative, got speed %v wrap %v", c.Decorations.SpeedJitter, c.Recycle.WrapJitter))
	}
	if c.Collectibles.BobPeriod <= 0 {
		errs = append(errs, fmt.Errorf("bob_period must be positive, got %v", c.Collectibles.BobPeriod))
	}
	switch c.Recycle.Policy {
	case RecycleDestroy, RecycleWrap:
	default:
		errs = append(errs, fmt.Errorf("unknown recycle policy %q", c.Recycle.Policy))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chubbycorn", "configs", filename)
}
