package chubbycorn

import (
	"time"

	"github.com/vovakirdan/chubbycorn/internal/core"
	"github.com/vovakirdan/chubbycorn/internal/session"
)

// Autopilot flies the unicorn without a player. It steers for the middle
// of the gap left by the next pillar and detours for cupcakes in reach.
type Autopilot struct {
	Lookahead time.Duration // How far ahead pillars are considered
	Deadband  float64       // Tolerated distance below the target before flapping
}

// NewAutopilot returns an autopilot with working defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		Lookahead: 2 * time.Second,
		Deadband:  10,
	}
}

// Decide returns the input for the next frame.
func (a *Autopilot) Decide(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	switch g.session.Snapshot().Phase {
	case session.PhaseIdle:
		in.Set(core.ActionConfirm)
		return in
	case session.PhaseGameOver:
		return in
	}

	p := g.world.Player()
	_, cy := p.Center()
	if cy > a.target(g)+a.Deadband && g.world.PlayerVelocity() >= 0 {
		in.Set(core.ActionFlap)
	}
	return in
}

// target picks the height the player should hold.
func (a *Autopilot) target(g *Game) float64 {
	p := g.world.Player()
	_, worldH := g.world.Size()
	target := worldH / 2

	soonest := a.Lookahead.Seconds()
	for _, e := range g.session.Entities() {
		eta, ok := a.arrival(g, e, p)
		if !ok || eta > soonest {
			continue
		}

		switch e.Kind {
		case session.KindHazard:
			soonest = eta
			if e.Anchor == session.AnchorTop {
				target = e.Y + e.H + (worldH-e.Y-e.H)/2
			} else {
				target = e.Y / 2
			}
		case session.KindGood:
			// Only when well clear of the next pillar
			if eta < soonest/2 {
				target = e.Y + e.H/2
			}
		}
	}
	return target
}

// arrival estimates the seconds until e reaches the player, using the
// body velocity published to the world.
func (a *Autopilot) arrival(g *Game, e session.Entity, p core.RectF) (float64, bool) {
	if e.X+e.W < p.X {
		return 0, false // Already behind
	}
	vx, _, ok := g.world.Velocity(e.ID)
	if !ok || vx >= 0 {
		return 0, false
	}
	return max(e.X-p.Right(), 0) / -vx, true
}

// Simulate plays a run headlessly with the autopilot until it ends or
// limit elapses, and returns its summary. A run still alive at the limit
// is ended without a cause.
func Simulate(g *Game, pilot *Autopilot, limit time.Duration) core.RunSummary {
	dt := g.runtime.TickDuration()
	frames := int(limit / dt)

	g.Step(pilot.Decide(g)) // Leave the title screen
	for range frames {
		if g.State().GameOver {
			break
		}
		g.Step(pilot.Decide(g))
	}

	g.session.EndGame()
	return g.RunSummary()
}
