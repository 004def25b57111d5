package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/chubbycorn.yaml
var defaultChubbycornYAML []byte

// DefaultChubbycornConfig returns the built-in tuning. It mirrors the
// embedded YAML and backs it up if the embed fails to parse.
func DefaultChubbycornConfig() ChubbycornConfig {
	return ChubbycornConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      300,
			FlapImpulse:  -200,
			MaxFallSpeed: 400,
		},
		Player: PlayerConfig{
			X:      100,
			Y:      300,
			Width:  40,
			Height: 40,
		},
		Scoring: ScoringConfig{
			Lives:       3,
			TickPoints:  1,
			BonusPoints: 50,
		},
		Timers: TimersConfig{
			Score:      100 * time.Millisecond,
			Difficulty: time.Second,
			SpawnMin:   2 * time.Second,
			SpawnMax:   5 * time.Second,
			Decoration: 10 * time.Second,
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			BackgroundSpeed:  1,
			HazardSpeed:      2,
			CollectibleSpeed: 2,
			Step:             0.1,
		},
		Collectibles: CollectibleConfig{
			Size:         30,
			TopMargin:    50,
			BottomMargin: 50,
			BobPeriod:    50,
			BobAmplitude: 0.5,
		},
		Hazards: HazardConfig{
			Width:     60,
			MinHeight: 0.2,
			MaxHeight: 0.6,
		},
		Decorations: DecorationConfig{
			Width:       100,
			Height:      40,
			Band:        120,
			SpeedJitter: 1,
		},
		Recycle: RecycleConfig{
			Policy:     RecycleDestroy,
			WrapJitter: 400,
		},
	}
}

// ClassicChubbycornConfig returns the tuning of the looping variant:
// pre-placed cupcakes and pillars that wrap around instead of being destroyed.
func ClassicChubbycornConfig() ChubbycornConfig {
	cfg := DefaultChubbycornConfig()
	ApplyClassic(&cfg)
	return cfg
}

// ApplyClassic switches a config to the looping variant.
func ApplyClassic(cfg *ChubbycornConfig) {
	cfg.Recycle.Policy = RecycleWrap
	cfg.Collectibles.Preplace = Slots{Count: 6, X: 400, Step: 150}
	cfg.Hazards.Preplace = Slots{Count: 4, X: 600, Step: 200}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChubbycornYAML
}
