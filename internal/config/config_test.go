package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultChubbycornConfig()
	if cfg != def {
		t.Errorf("embedded YAML and DefaultChubbycornConfig() disagree:\nyaml: %+v\ngo:   %+v", cfg, def)
	}
}

func TestParsePartialOverlaysDefaults(t *testing.T) {
	data := []byte("scoring:\n  lives: 7\ntimers:\n  spawn_min: 1s\n  spawn_max: 1500ms\n")

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Scoring.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Scoring.Lives)
	}
	if cfg.Timers.SpawnMax != 1500*time.Millisecond {
		t.Errorf("SpawnMax = %v, expected 1.5s", cfg.Timers.SpawnMax)
	}
	// Untouched fields keep their defaults
	if cfg.Scoring.BonusPoints != 50 {
		t.Errorf("BonusPoints = %d, expected default 50", cfg.Scoring.BonusPoints)
	}
	if cfg.Timers.Score != 100*time.Millisecond {
		t.Errorf("Score timer = %v, expected default 100ms", cfg.Timers.Score)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChubbycornConfig)
		wantErr string
	}{
		{"defaults are valid", func(*ChubbycornConfig) {}, ""},
		{"zero lives", func(c *ChubbycornConfig) { c.Scoring.Lives = 0 }, "lives"},
		{"inverted spawn band", func(c *ChubbycornConfig) { c.Timers.SpawnMax = time.Second }, "spawn interval"},
		{"zero score timer", func(c *ChubbycornConfig) { c.Timers.Score = 0 }, "timers must be positive"},
		{"hazard band above one", func(c *ChubbycornConfig) { c.Hazards.MaxHeight = 1.5 }, "hazard height"},
		{"unknown policy", func(c *ChubbycornConfig) { c.Recycle.Policy = "teleport" }, "recycle policy"},
		{"negative hazard speed", func(c *ChubbycornConfig) { c.Difficulty.HazardSpeed = -2 }, "difficulty speeds"},
		{"zero collectible speed", func(c *ChubbycornConfig) { c.Difficulty.CollectibleSpeed = 0 }, "difficulty speeds"},
		{"zero background speed", func(c *ChubbycornConfig) { c.Difficulty.BackgroundSpeed = 0 }, "difficulty speeds"},
		{"negative step", func(c *ChubbycornConfig) { c.Difficulty.Step = -0.1 }, "step"},
		{"zero step", func(c *ChubbycornConfig) { c.Difficulty.Step = 0 }, ""},
		{"zero collectible size", func(c *ChubbycornConfig) { c.Collectibles.Size = 0 }, "collectible size"},
		{"negative hazard width", func(c *ChubbycornConfig) { c.Hazards.Width = -10 }, "hazard width"},
		{"zero decoration height", func(c *ChubbycornConfig) { c.Decorations.Height = 0 }, "decoration size"},
		{"negative speed jitter", func(c *ChubbycornConfig) { c.Decorations.SpeedJitter = -1 }, "jitter"},
		{"negative wrap jitter", func(c *ChubbycornConfig) { c.Recycle.WrapJitter = -5 }, "jitter"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultChubbycornConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  step: 0.25\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Difficulty.Step != 0.25 {
		t.Errorf("Step = %v, expected 0.25", cfg.Difficulty.Step)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with missing file should fail")
	}
	if !strings.Contains(err.Error(), "config: failed to read") {
		t.Errorf("error = %q, expected wrapped read error", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		step        float64
		enabled     bool
		hazardSpeed float64
	}{
		{"", 3, 0.1, true, 2},
		{DifficultyEasy, 5, 0.05, true, 2},
		{DifficultyNormal, 3, 0.1, true, 2},
		{DifficultyHard, 2, 0.2, true, 3},
		{DifficultyFixed, 3, 0.1, false, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultChubbycornConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Scoring.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Scoring.Lives, tc.lives)
			}
			if cfg.Difficulty.Step != tc.step {
				t.Errorf("Step = %v, expected %v", cfg.Difficulty.Step, tc.step)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.HazardSpeed != tc.hazardSpeed {
				t.Errorf("HazardSpeed = %v, expected %v", cfg.Difficulty.HazardSpeed, tc.hazardSpeed)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset(unknown) should return empty preset")
	}
}

func TestClassicConfig(t *testing.T) {
	cfg := ClassicChubbycornConfig()
	if cfg.Recycle.Policy != RecycleWrap {
		t.Errorf("Policy = %q, expected wrap", cfg.Recycle.Policy)
	}
	if cfg.Collectibles.Preplace.Count != 6 || cfg.Hazards.Preplace.Count != 4 {
		t.Errorf("Preplace counts = %d/%d, expected 6/4", cfg.Collectibles.Preplace.Count, cfg.Hazards.Preplace.Count)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("classic config should validate: %v", err)
	}
}

func TestParseEnv(t *testing.T) {
	type serverEnv struct {
		Addr    string        `env:"TEST_CHUBBY_ADDR" envDefault:":2222"`
		Timeout time.Duration `env:"TEST_CHUBBY_TIMEOUT" envDefault:"30m"`
	}

	t.Setenv("TEST_CHUBBY_ADDR", ":9999")

	var got serverEnv
	if err := ParseEnv(&got); err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if got.Addr != ":9999" {
		t.Errorf("Addr = %q, expected :9999", got.Addr)
	}
	if got.Timeout != 30*time.Minute {
		t.Errorf("Timeout = %v, expected default 30m", got.Timeout)
	}
}

func TestParseRejectsBackwardSpeeds(t *testing.T) {
	_, err := Parse([]byte("difficulty:\n  hazard_speed: -2\n  collectible_speed: 0\n"))
	if err == nil {
		t.Fatal("Parse() error = nil, expected difficulty speeds error")
	}
	if !strings.Contains(err.Error(), "difficulty speeds") {
		t.Errorf("Parse() error = %v, expected difficulty speeds error", err)
	}
}
