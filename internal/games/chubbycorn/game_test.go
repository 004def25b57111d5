package chubbycorn

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/chubbycorn/internal/config"
	"github.com/vovakirdan/chubbycorn/internal/core"
	"github.com/vovakirdan/chubbycorn/internal/registry"
	"github.com/vovakirdan/chubbycorn/internal/session"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func newTestGame(classic bool) *Game {
	g := New()
	if classic {
		g = NewClassic()
	}
	g.ResetWithConfig(testRuntime(), config.DefaultChubbycornConfig())
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stepUntilOver runs empty frames until the run ends or limit frames pass.
func stepUntilOver(g *Game, limit int) int {
	for i := range limit {
		if g.Step(input()).State.GameOver {
			return i + 1
		}
	}
	return limit
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDCanonical, IDClassic} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestTitleScreenWaitsForStart(t *testing.T) {
	g := newTestGame(false)

	for range 120 {
		g.Step(input())
	}
	st := g.State()
	if st.Started || st.Score != 0 {
		t.Errorf("State = %+v, expected untouched title screen", st)
	}
	if g.World().Player().Y != 300 {
		t.Error("player should not fall before the run starts")
	}

	if !g.Step(input(core.ActionConfirm)).State.Started {
		t.Error("Confirm should start the run")
	}
}

func TestFallingWithoutFlapEndsRun(t *testing.T) {
	g := newTestGame(false)
	g.Step(input(core.ActionFlap))

	frames := stepUntilOver(g, 180)
	if !g.State().GameOver {
		t.Fatal("run should end once the unicorn falls out")
	}
	if frames > 90 {
		t.Errorf("fell out after %d frames, expected about 80", frames)
	}
	if reason := g.Session().Snapshot().EndReason; reason != session.EndReasonBoundary {
		t.Errorf("EndReason = %q, expected boundary", reason)
	}
}

func TestGameOverRaisesRestartPrompt(t *testing.T) {
	g := newTestGame(false)
	g.Step(input(core.ActionFlap))
	stepUntilOver(g, 180)

	final, shown := g.effects.RestartPrompt()
	if !shown {
		t.Fatal("RestartPrompt() should be shown once the run ends")
	}
	if want := g.Session().Snapshot().FinalScore; final != want {
		t.Errorf("RestartPrompt() score = %d, expected %d", final, want)
	}

	g.Step(input(core.ActionRestart))
	if _, shown := g.effects.RestartPrompt(); shown {
		t.Error("restart should take down the restart prompt")
	}
	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if strings.Contains(dst.String(), "GAME OVER") {
		t.Error("restarted run should not draw GAME OVER")
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	cfg := config.DefaultChubbycornConfig()
	cfg.Difficulty.HazardSpeed = -2
	cfg.Difficulty.Step = -0.1

	g := New()
	g.ResetWithConfig(testRuntime(), cfg)
	want := newTestGame(false).Session().Snapshot().Difficulty

	if got := g.Session().Snapshot().Difficulty; got != want {
		t.Errorf("Difficulty = %+v, expected defaults %+v", got, want)
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := newTestGame(false)
	g.Step(input(core.ActionFlap))
	for range 30 {
		g.Step(input())
	}

	g.Step(input(core.ActionPause))
	before := g.Session().Snapshot()
	for range 120 {
		g.Step(input(core.ActionFlap))
	}
	after := g.Session().Snapshot()

	if !g.State().Paused {
		t.Error("State().Paused = false, expected true")
	}
	if after.Score != before.Score || after.Elapsed != before.Elapsed {
		t.Errorf("paused run moved: score %d -> %d, elapsed %v -> %v", before.Score, after.Score, before.Elapsed, after.Elapsed)
	}

	g.Step(input(core.ActionPause))
	g.Step(input())
	if g.Session().Snapshot().Elapsed == before.Elapsed {
		t.Error("run should resume after second pause")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(false)
	g.Step(input(core.ActionFlap))
	stepUntilOver(g, 180)

	final := g.RunSummary()
	if final.EndReason != string(session.EndReasonBoundary) || final.Duration <= 0 {
		t.Errorf("RunSummary() = %+v, expected boundary end with a duration", final)
	}

	// Flapping does not restart
	g.Step(input(core.ActionFlap))
	if !g.State().GameOver {
		t.Fatal("flap should not restart a finished run")
	}

	st := g.Step(input(core.ActionRestart)).State
	if st.GameOver || !st.Started || st.Score != 0 || st.Lives != 3 {
		t.Errorf("State after restart = %+v, expected a fresh running run", st)
	}
	if g.World().Player().Y != 300 {
		t.Errorf("player Y = %v, expected back at spawn", g.World().Player().Y)
	}
}

func TestClassicMode(t *testing.T) {
	g := newTestGame(true)
	if g.ID() != IDClassic || g.Title() != "Chubbycorn (Classic)" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}

	g.Step(input(core.ActionConfirm))
	if n := len(g.Session().Entities()); n != 10 {
		t.Errorf("entities after start = %d, expected 10 pre-placed", n)
	}
	if g.World().bodyCount() != 10 {
		t.Errorf("world bodies = %d, expected 10", g.World().bodyCount())
	}
}

func TestRenderScreens(t *testing.T) {
	g := newTestGame(false)

	title := core.NewScreen(80, 24)
	g.Render(title)
	if !strings.Contains(title.String(), "C H U B B Y C O R N") {
		t.Error("title screen should show the game name")
	}
	if !strings.Contains(title.Row(0), "♥♥♥") {
		t.Errorf("HUD row = %q, expected three hearts", title.Row(0))
	}

	g.Step(input(core.ActionFlap))
	stepUntilOver(g, 180)

	over := core.NewScreen(80, 24)
	g.Render(over)
	if !strings.Contains(over.String(), "GAME OVER") {
		t.Error("game over screen should show GAME OVER")
	}
	if !strings.Contains(over.String(), "Flew off the sky") {
		t.Error("game over screen should show the end reason")
	}
}

func TestRenderAnySize(t *testing.T) {
	g := newTestGame(true)
	g.Step(input(core.ActionConfirm))
	for range 200 {
		g.Step(input())
	}

	for _, size := range [][2]int{{0, 0}, {1, 1}, {10, 3}, {40, 12}, {200, 60}} {
		dst := core.NewScreen(size[0], size[1])
		g.Render(dst) // Must not panic
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(false)
	g.Step(input(core.ActionFlap))
	for range 20 {
		g.Step(input())
	}
	before := g.Session().Snapshot()

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	dst.Resize(120, 40)
	g.Render(dst)

	if g.Session().Snapshot() != before {
		t.Error("rendering at a new size must not touch the run")
	}
}

func TestFloatingEffects(t *testing.T) {
	fx := NewEffects()
	fx.FloatingText(100, 200, "+50")
	fx.LifeLost(100, 200)

	fx.Update(500 * time.Millisecond)
	if got := len(fx.Floaters()); got != 2 {
		t.Fatalf("floaters = %d, expected 2", got)
	}
	if y := fx.Floaters()[0].Y; y != 170 {
		t.Errorf("floater Y = %v, expected 170 after rising", y)
	}

	fx.Update(time.Second)
	if got := len(fx.Floaters()); got != 0 {
		t.Errorf("floaters = %d, expected expired", got)
	}

	fx.FloatingText(10, 10, "+50")
	fx.GameOver(90)
	if score, shown := fx.RestartPrompt(); !shown || score != 90 {
		t.Errorf("RestartPrompt() = %d, %v, expected 90, true", score, shown)
	}
	if got := len(fx.Floaters()); got != 0 {
		t.Errorf("floaters after GameOver = %d, expected 0", got)
	}

	fx.Reset()
	if _, shown := fx.RestartPrompt(); shown {
		t.Error("Reset() should take down the restart prompt")
	}
}

func TestAutopilotKeepsFlying(t *testing.T) {
	g := newTestGame(false)
	pilot := NewAutopilot()

	for range 300 {
		g.Step(pilot.Decide(g))
	}

	if g.State().GameOver {
		t.Fatalf("autopilot lost the run: %q", g.Session().Snapshot().EndReason)
	}
	if g.Session().Snapshot().Score < 40 {
		t.Errorf("Score = %d, expected the score timer to have run", g.Session().Snapshot().Score)
	}
}

func TestSimulateDeterminism(t *testing.T) {
	run := func() core.RunSummary {
		g := newTestGame(false)
		return Simulate(g, NewAutopilot(), 30*time.Second)
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
	if s1.EndReason == "" || s1.Duration <= 0 {
		t.Errorf("summary = %+v, expected a finished run", s1)
	}
}

func TestInstanceDifficulty(t *testing.T) {
	tests := []struct {
		preset string
		lives  int
	}{
		{"easy", 5},
		{"hard", 2},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			g := New()
			g.SetDifficulty(tt.preset)
			g.ResetWithConfig(testRuntime(), config.DefaultChubbycornConfig())

			if got := g.State().Lives; got != tt.lives {
				t.Errorf("Lives = %d, expected %d", got, tt.lives)
			}
		})
	}

	// Other instances keep the configured value
	other := newTestGame(false)
	if got := other.State().Lives; got != config.DefaultChubbycornConfig().Scoring.Lives {
		t.Errorf("unrelated game Lives = %d, expected default", got)
	}
}
