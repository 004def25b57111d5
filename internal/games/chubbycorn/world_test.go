package chubbycorn

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/chubbycorn/internal/config"
	"github.com/vovakirdan/chubbycorn/internal/session"
)

func newTestWorld() *World {
	return NewWorld(config.DefaultChubbycornConfig())
}

func TestWorldGravity(t *testing.T) {
	tests := []struct {
		name  string
		flap  bool
		dt    time.Duration
		wantY float64
		wantV float64
	}{
		{"falls from rest", false, 100 * time.Millisecond, 303, 30},
		{"flap lifts", true, 100 * time.Millisecond, 283, -170},
		{"fall speed is capped", false, 2 * time.Second, 1100, 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			if tc.flap {
				w.Flap()
			}
			w.Step(tc.dt)

			if got := w.Player().Y; math.Abs(got-tc.wantY) > 1e-9 {
				t.Errorf("Y = %v, expected %v", got, tc.wantY)
			}
			if got := w.PlayerVelocity(); math.Abs(got-tc.wantV) > 1e-9 {
				t.Errorf("velocity = %v, expected %v", got, tc.wantV)
			}
		})
	}
}

func TestWorldOverlapDispatch(t *testing.T) {
	w := newTestWorld()
	var got []session.Handle
	w.OnOverlap(session.KindGood, func(h session.Handle) { got = append(got, h) })

	a := w.CreateEntity(session.KindGood, 110, 310, 30, 30)
	w.CreateEntity(session.KindGood, 500, 310, 30, 30) // Far away
	b := w.CreateEntity(session.KindGood, 90, 290, 30, 30)
	w.CreateEntity(session.KindDecoration, 100, 300, 100, 40) // No callback registered

	w.Step(0)

	if !reflect.DeepEqual(got, []session.Handle{a, b}) {
		t.Errorf("overlaps = %v, expected [%d %d]", got, a, b)
	}
}

func TestWorldTouchingEdgesDoNotOverlap(t *testing.T) {
	w := newTestWorld()
	hits := 0
	w.OnOverlap(session.KindHazard, func(session.Handle) { hits++ })

	// Player spans x 100..140
	w.CreateEntity(session.KindHazard, 140, 0, 60, 600)
	w.Step(0)

	if hits != 0 {
		t.Errorf("hits = %d, expected 0 for touching edges", hits)
	}
}

func TestWorldCallbackEffects(t *testing.T) {
	w := newTestWorld()
	var order []string
	var second session.Handle

	w.OnOverlap(session.KindGood, func(session.Handle) {
		order = append(order, "good")
		w.DestroyEntity(second)
	})
	w.OnOverlap(session.KindHazard, func(session.Handle) {
		order = append(order, "hazard")
		w.PauseSimulation()
	})
	w.OnWorldBoundaryBreach(func() { order = append(order, "breach") })

	w.CreateEntity(session.KindGood, 100, 0, 30, 30)
	second = w.CreateEntity(session.KindGood, 100, 0, 30, 30)
	w.CreateEntity(session.KindHazard, 100, 0, 30, 30)
	w.CreateEntity(session.KindGood, 100, 0, 30, 30)
	w.ResetPlayer(100, -10) // Also out of bounds

	w.Step(0)

	if !reflect.DeepEqual(order, []string{"good", "hazard"}) {
		t.Errorf("callbacks = %v, expected destroyed body skipped and nothing after pause", order)
	}
}

func TestWorldBoundaryBreach(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"inside", 300, false},
		{"above top", -1, true},
		{"touching bottom", 560, false},
		{"below bottom", 561, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			breached := false
			w.OnWorldBoundaryBreach(func() { breached = true })
			w.ResetPlayer(100, tc.y)

			w.Step(0)

			if breached != tc.want {
				t.Errorf("breach = %v, expected %v", breached, tc.want)
			}
		})
	}
}

func TestWorldPaused(t *testing.T) {
	w := newTestWorld()
	w.PauseSimulation()
	w.Flap()
	w.Step(time.Second)

	if w.Player().Y != 300 {
		t.Errorf("Y = %v, expected frozen at 300", w.Player().Y)
	}

	w.ResumeSimulation()
	w.Step(100 * time.Millisecond)
	if w.PlayerVelocity() <= 0 {
		t.Error("flap queued while paused should be dropped")
	}
}

func TestWorldBodies(t *testing.T) {
	w := newTestWorld()
	h := w.CreateEntity(session.KindHazard, 800, 0, 60, 200)
	w.SetVelocity(h, -120, 0)
	w.SetPosition(h, 700, 0)

	vx, _, ok := w.Velocity(h)
	if !ok || vx != -120 {
		t.Errorf("Velocity() = %v, %v, expected -120", vx, ok)
	}

	w.DestroyEntity(h)
	w.DestroyEntity(h)
	if w.bodyCount() != 0 {
		t.Errorf("bodyCount() = %d, expected 0", w.bodyCount())
	}
	if _, _, ok := w.Velocity(h); ok {
		t.Error("destroyed body should not report velocity")
	}
}
