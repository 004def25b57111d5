// Package chubbycorn implements the chubbycorn arcade game: a flying
// unicorn collects cupcakes, dodges carrots and must not touch the pillars.
// The run model lives in the session package; this package supplies the
// physics world, effects and terminal rendering around it.
package chubbycorn

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chubbycorn/internal/config"
	"github.com/vovakirdan/chubbycorn/internal/core"
	"github.com/vovakirdan/chubbycorn/internal/registry"
	"github.com/vovakirdan/chubbycorn/internal/session"
)

// Mode IDs
const (
	IDCanonical = "chubbycorn"
	IDClassic   = "chubbycorn_classic"
)

// Game wraps a session with its world for the platform.
type Game struct {
	classic bool
	preset  config.DifficultyPreset // Overrides the package preset when set
	runtime core.RuntimeConfig
	cfg     config.ChubbycornConfig
	world   *World
	session *session.GameSession
	effects *Effects
	paused  bool
	scroll  float64 // Ground texture offset in world units
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config as-is.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates the canonical game, where off-screen entities are destroyed.
func New() *Game {
	return &Game{}
}

// NewClassic creates the looping variant with pre-placed entities that
// wrap around.
func NewClassic() *Game {
	return &Game{classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return IDClassic
	}
	return IDCanonical
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Chubbycorn (Classic)"
	}
	return "Chubbycorn"
}

// Description returns a one-line summary for menus and listings.
func (g *Game) Description() string {
	if g.classic {
		return "Looping field: entities wrap around instead of leaving"
	}
	return "Collect cupcakes, dodge carrots, fly between the pillars"
}

// SetDifficulty picks a preset for this instance only, so concurrent
// sessions can play at different levels. Unknown names clear the override.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Reset builds a fresh session on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultChubbycornConfig()
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig builds a fresh session from explicit tuning. The
// difficulty preset and mode are applied on top.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.ChubbycornConfig) {
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultChubbycornConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyPreset(&cfg, preset)
	if g.classic {
		config.ApplyClassic(&cfg)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.world = NewWorld(cfg)
	g.effects = NewEffects()
	g.session = session.New(cfg, g.world, runtime.Seed,
		session.WithEffects(g.effects),
		session.WithLogger(logger.With("game", g.ID())),
	)
	g.paused = false
	g.scroll = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	dt := g.runtime.TickDuration()

	switch g.session.Snapshot().Phase {
	case session.PhaseIdle:
		if in.Has(core.ActionFlap) || in.Has(core.ActionConfirm) {
			g.session.Start()
		}

	case session.PhaseRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}

		if in.Has(core.ActionFlap) {
			g.world.Flap()
		}
		g.session.Update(dt)
		g.scroll += g.session.Snapshot().Difficulty.BackgroundSpeed * float64(dt) / float64(session.ReferenceFrame)
		g.effects.Update(dt)

	case session.PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.effects.Reset()
			g.session.Reset()
			break
		}
		g.effects.Update(dt)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Lives:    snap.Lives,
		Started:  snap.Phase != session.PhaseIdle,
		GameOver: snap.GameOver,
		Paused:   g.paused,
	}
}

// RunSummary describes the run that just ended.
func (g *Game) RunSummary() core.RunSummary {
	snap := g.session.Snapshot()
	return core.RunSummary{
		Score:           snap.FinalScore,
		LivesLeft:       snap.Lives,
		EndReason:       string(snap.EndReason),
		Duration:        snap.Elapsed,
		PeakHazardSpeed: snap.Stats.PeakHazardSpeed,
		GoodCollected:   snap.Stats.GoodCollected,
		BadCollected:    snap.Stats.BadCollected,
	}
}

// Session exposes the run model, mainly for headless drivers.
func (g *Game) Session() *session.GameSession {
	return g.session
}

// World exposes the physics world.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register(IDCanonical, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}
