// Package session implements the run model of the game: the phase state
// machine, score and lives, timers, difficulty progression, spawning and
// the entity registry. It drives an Adapter for physics and rendering and
// never touches a terminal, so a whole run can be replayed in tests.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chubbycorn/internal/clock"
	"github.com/vovakirdan/chubbycorn/internal/config"
)

// TimerKind names one of the run timers.
type TimerKind int

const (
	TimerScore TimerKind = iota
	TimerDifficulty
	TimerSpawn
	TimerDecoration
	timerKindCount
)

// String returns the timer name.
func (k TimerKind) String() string {
	switch k {
	case TimerScore:
		return "score"
	case TimerDifficulty:
		return "difficulty"
	case TimerSpawn:
		return "spawn"
	case TimerDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Option configures a GameSession.
type Option func(*GameSession)

// WithEffects sets the receiver of visual effect signals.
func WithEffects(e Effects) Option {
	return func(s *GameSession) {
		if e != nil {
			s.effects = e
		}
	}
}

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *GameSession) {
		if l != nil {
			s.logger = l
		}
	}
}

// GameSession owns everything about one run. It is not safe for concurrent
// use; the host must deliver input, frames and adapter callbacks from a
// single goroutine.
type GameSession struct {
	cfg     config.ChubbycornConfig
	adapter Adapter
	effects Effects
	logger  *log.Logger

	rng        *rand.Rand
	clock      *clock.Scheduler
	timers     [timerKindCount]clock.TimerID
	state      RunState
	stats      RunStats
	difficulty *Difficulty
	registry   *Registry
	spawner    *SpawnPolicy
	startedAt  time.Duration
}

// New creates an idle session and registers its callbacks with the adapter.
func New(cfg config.ChubbycornConfig, adapter Adapter, seed int64, opts ...Option) *GameSession {
	rng := rand.New(rand.NewSource(seed))

	s := &GameSession{
		cfg:        cfg,
		adapter:    adapter,
		effects:    NopEffects{},
		logger:     log.New(io.Discard),
		rng:        rng,
		clock:      clock.NewScheduler(),
		state:      newRunState(cfg.Scoring.Lives),
		difficulty: NewDifficulty(baselineSpeeds(cfg.Difficulty), cfg.Difficulty.Step, cfg.Difficulty.Enabled),
	}
	s.registry = NewRegistry(adapter, cfg, rng)
	s.spawner = NewSpawnPolicy(cfg, rng, s.registry, s.difficulty)

	for _, opt := range opts {
		opt(s)
	}

	for kind, b := range behaviors {
		if b.hit == nil {
			continue
		}
		hit := b.hit
		adapter.OnOverlap(Kind(kind), func(h Handle) { hit(s, h) })
	}
	adapter.OnWorldBoundaryBreach(s.OnBoundaryBreach)

	return s
}

// Start begins the first run. No-op unless the session is idle.
func (s *GameSession) Start() {
	if s.state.Phase != PhaseIdle {
		return
	}
	s.beginRun()
}

// Reset clears the finished run and immediately starts a new one.
// No-op unless the run is over.
func (s *GameSession) Reset() {
	if s.state.Phase != PhaseGameOver {
		return
	}

	s.registry.Clear()
	s.state = newRunState(s.cfg.Scoring.Lives)
	s.stats = RunStats{}
	s.difficulty.Reset()
	s.adapter.ResetPlayer(s.cfg.Player.X, s.cfg.Player.Y)

	s.beginRun()
}

func (s *GameSession) beginRun() {
	s.state.Phase = PhaseRunning
	s.startedAt = s.clock.Now()
	s.adapter.ResumeSimulation()

	if n := s.spawner.Preplace(); n > 0 {
		s.logger.Debug("pre-placed entities", "count", n)
	}
	s.armAll()

	s.logger.Debug("run started", "lives", s.state.Lives, "difficulty", s.difficulty.Enabled())
}

// OnCollectGood handles the player touching a good collectible.
func (s *GameSession) OnCollectGood(id Handle) {
	e, ok := s.collectible(id, KindGood)
	if !ok {
		return
	}
	s.registry.Deactivate(id)

	bonus := s.cfg.Scoring.BonusPoints
	s.state.Score += bonus
	s.stats.GoodCollected++
	s.effects.FloatingText(e.X, e.Y, fmt.Sprintf("+%d", bonus))
}

// OnCollectBad handles the player touching a bad collectible: one life is
// lost, and the run ends when none remain.
func (s *GameSession) OnCollectBad(id Handle) {
	e, ok := s.collectible(id, KindBad)
	if !ok {
		return
	}
	s.registry.Deactivate(id)

	s.state.Lives--
	s.stats.BadCollected++
	s.effects.LifeLost(e.X, e.Y)

	if s.state.Lives <= 0 {
		s.state.Lives = 0
		s.endGame(EndReasonLives)
	}
}

// collectible returns the active entity behind a collision event, or false
// for stale and duplicate events.
func (s *GameSession) collectible(id Handle, kind Kind) (Entity, bool) {
	if s.state.Phase != PhaseRunning {
		return Entity{}, false
	}
	e, ok := s.registry.Get(id)
	if !ok || !e.Active || e.Kind != kind {
		return Entity{}, false
	}
	return *e, true
}

// OnHazardCollision ends the run regardless of lives.
func (s *GameSession) OnHazardCollision() {
	s.endGame(EndReasonHazard)
}

// OnBoundaryBreach ends the run when the player leaves the playfield.
func (s *GameSession) OnBoundaryBreach() {
	s.endGame(EndReasonBoundary)
}

// EndGame ends the current run without a gameplay cause.
func (s *GameSession) EndGame() {
	s.endGame(EndReasonNone)
}

// endGame freezes the run. Only the first call of a running run has effect.
func (s *GameSession) endGame(reason EndReason) {
	if s.state.Phase != PhaseRunning {
		return
	}

	final := s.state.Score
	s.state.Phase = PhaseGameOver
	s.state.FinalScore = &final
	s.state.EndReason = reason
	s.stats.PeakHazardSpeed = s.difficulty.State().HazardSpeed

	s.cancelAll()
	s.adapter.PauseSimulation()
	s.effects.GameOver(final)

	s.logger.Debug("run ended", "reason", reason, "score", final, "elapsed", s.Elapsed())
}

// Update advances the run by dt: entities move, the adapter steps physics
// and delivers collisions, off-screen entities are recycled, then timers
// fire. Does nothing unless the run is in progress.
func (s *GameSession) Update(dt time.Duration) {
	if s.state.Phase != PhaseRunning || dt <= 0 {
		return
	}

	scale := float64(dt) / float64(ReferenceFrame)
	s.registry.Advance(s.difficulty.State(), scale)

	s.adapter.Step(dt)
	if s.state.Phase != PhaseRunning {
		return
	}

	s.registry.Sweep()
	s.clock.Advance(dt)
}

// Timers

func (s *GameSession) armAll() {
	s.arm(TimerScore, s.clock.Every(s.cfg.Timers.Score, s.onScoreTick))
	s.arm(TimerDifficulty, s.clock.Every(s.cfg.Timers.Difficulty, s.onDifficultyTick))
	s.armSpawn()
	s.arm(TimerDecoration, s.clock.Every(s.cfg.Timers.Decoration, s.onDecorationTick))
}

// arm records id as the live timer of kind, cancelling any previous one.
func (s *GameSession) arm(kind TimerKind, id clock.TimerID) {
	s.cancel(kind)
	s.timers[kind] = id
}

func (s *GameSession) armSpawn() {
	s.arm(TimerSpawn, s.clock.After(s.spawner.NextInterval(), s.onSpawnTick))
}

func (s *GameSession) cancel(kind TimerKind) {
	if id := s.timers[kind]; id != 0 {
		s.clock.Cancel(id)
		s.timers[kind] = 0
	}
}

// cancelAll drops every pending timer at once. The session is the only
// user of its clock, so nothing else is lost.
func (s *GameSession) cancelAll() {
	s.clock.CancelAll()
	s.timers = [timerKindCount]clock.TimerID{}
}

func (s *GameSession) onScoreTick() {
	if s.state.Phase != PhaseRunning {
		return
	}
	s.state.Score += s.cfg.Scoring.TickPoints
}

func (s *GameSession) onDifficultyTick() {
	if s.state.Phase != PhaseRunning {
		return
	}
	s.difficulty.Tick()
}

// onSpawnTick spawns a collectible and a hazard, then re-arms itself with a
// fresh random interval.
func (s *GameSession) onSpawnTick() {
	if s.state.Phase != PhaseRunning {
		return
	}
	s.spawner.SpawnCollectible()
	s.spawner.SpawnHazard()
	s.stats.CollectiblesSpawned++
	s.stats.HazardsSpawned++
	s.armSpawn()
}

func (s *GameSession) onDecorationTick() {
	if s.state.Phase != PhaseRunning {
		return
	}
	s.spawner.SpawnDecoration()
	s.stats.DecorationsSpawned++
}

// Observation

// Snapshot is a read-only view of a session for display.
type Snapshot struct {
	Phase      Phase
	Score      int
	Lives      int
	MaxLives   int
	GameOver   bool
	FinalScore int // Valid when GameOver
	EndReason  EndReason
	Difficulty DifficultyState
	Stats      RunStats
	Elapsed    time.Duration
}

// Snapshot returns the current display state.
func (s *GameSession) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.state.Phase,
		Score:      s.state.Score,
		Lives:      s.state.Lives,
		MaxLives:   s.cfg.Scoring.Lives,
		GameOver:   s.state.Phase == PhaseGameOver,
		EndReason:  s.state.EndReason,
		Difficulty: s.difficulty.State(),
		Stats:      s.stats,
		Elapsed:    s.Elapsed(),
	}
	snap.Stats.DifficultyTicks = s.difficulty.Ticks()
	if s.state.FinalScore != nil {
		snap.FinalScore = *s.state.FinalScore
	}
	if !snap.GameOver {
		snap.Stats.PeakHazardSpeed = snap.Difficulty.HazardSpeed
	}
	return snap
}

// State returns a copy of the run state.
func (s *GameSession) State() RunState {
	st := s.state
	if st.FinalScore != nil {
		final := *st.FinalScore
		st.FinalScore = &final
	}
	return st
}

// Entities returns the active entities in creation order.
func (s *GameSession) Entities() []Entity {
	return s.registry.Entities()
}

// Elapsed returns the virtual time spent running in the current run.
func (s *GameSession) Elapsed() time.Duration {
	if s.state.Phase == PhaseIdle {
		return 0
	}
	return s.clock.Now() - s.startedAt
}

// ActiveTimers returns the number of live timers.
func (s *GameSession) ActiveTimers() int {
	return s.clock.Len()
}

// Config returns the tuning the session was created with.
func (s *GameSession) Config() config.ChubbycornConfig {
	return s.cfg
}
