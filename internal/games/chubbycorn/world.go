package chubbycorn

import (
	"slices"
	"time"

	"github.com/vovakirdan/chubbycorn/internal/config"
	"github.com/vovakirdan/chubbycorn/internal/core"
	"github.com/vovakirdan/chubbycorn/internal/session"
)

// body is a kinematic entity box. The session scripts its position every
// frame; velocity is kept for look-ahead.
type body struct {
	kind   session.Kind
	box    core.RectF
	vx, vy float64
}

// World is the physics side of the game: the player under gravity and
// overlap detection against entity bodies. It implements session.Adapter.
type World struct {
	width   float64
	height  float64
	physics config.PhysicsConfig

	player    core.RectF
	playerVel float64
	flap      bool
	paused    bool

	bodies map[session.Handle]*body
	next   session.Handle

	overlap map[session.Kind]func(session.Handle)
	breach  func()
}

// NewWorld creates a world with the player at its spawn point.
func NewWorld(cfg config.ChubbycornConfig) *World {
	return &World{
		width:   cfg.Playfield.Width,
		height:  cfg.Playfield.Height,
		physics: cfg.Physics,
		player:  core.NewRectF(cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height),
		bodies:  make(map[session.Handle]*body),
		overlap: make(map[session.Kind]func(session.Handle)),
	}
}

// CreateEntity adds a body and returns its handle.
func (w *World) CreateEntity(kind session.Kind, x, y, bw, bh float64) session.Handle {
	w.next++
	w.bodies[w.next] = &body{kind: kind, box: core.NewRectF(x, y, bw, bh)}
	return w.next
}

// DestroyEntity removes a body. Unknown handles are ignored.
func (w *World) DestroyEntity(h session.Handle) {
	delete(w.bodies, h)
}

// SetVelocity records a body's velocity in units per second.
func (w *World) SetVelocity(h session.Handle, vx, vy float64) {
	if b, ok := w.bodies[h]; ok {
		b.vx, b.vy = vx, vy
	}
}

// SetPosition moves a body.
func (w *World) SetPosition(h session.Handle, x, y float64) {
	if b, ok := w.bodies[h]; ok {
		b.box.X, b.box.Y = x, y
	}
}

// OnOverlap registers the callback for the player touching a body of kind.
func (w *World) OnOverlap(kind session.Kind, fn func(session.Handle)) {
	w.overlap[kind] = fn
}

// OnWorldBoundaryBreach registers the callback for the player leaving the playfield.
func (w *World) OnWorldBoundaryBreach(fn func()) {
	w.breach = fn
}

// PauseSimulation freezes the player.
func (w *World) PauseSimulation() {
	w.paused = true
	w.flap = false
}

// ResumeSimulation unfreezes the player.
func (w *World) ResumeSimulation() {
	w.paused = false
}

// ResetPlayer moves the player to (x, y) at rest.
func (w *World) ResetPlayer(x, y float64) {
	w.player.X, w.player.Y = x, y
	w.playerVel = 0
	w.flap = false
}

// Flap queues an upward impulse for the next step.
func (w *World) Flap() {
	if !w.paused {
		w.flap = true
	}
}

// Step applies gravity to the player, then reports overlaps in handle
// order and finally a boundary breach. Reporting stops as soon as a
// callback pauses the simulation.
func (w *World) Step(dt time.Duration) {
	if w.paused {
		return
	}
	secs := dt.Seconds()

	if w.flap {
		w.playerVel = w.physics.FlapImpulse
		w.flap = false
	}
	w.playerVel = min(w.playerVel+w.physics.Gravity*secs, w.physics.MaxFallSpeed)
	w.player.Y += w.playerVel * secs

	for _, h := range w.touching() {
		b, ok := w.bodies[h]
		if !ok {
			continue // Destroyed by an earlier callback
		}
		if fn := w.overlap[b.kind]; fn != nil {
			fn(h)
		}
		if w.paused {
			return
		}
	}

	if w.OutOfBounds() && w.breach != nil {
		w.breach()
	}
}

// touching returns the handles of bodies overlapping the player, sorted.
func (w *World) touching() []session.Handle {
	var hits []session.Handle
	for h, b := range w.bodies {
		if w.player.Intersects(b.box) {
			hits = append(hits, h)
		}
	}
	slices.Sort(hits)
	return hits
}

// OutOfBounds reports whether any part of the player is outside the
// playfield vertically.
func (w *World) OutOfBounds() bool {
	return w.player.Y < 0 || w.player.Bottom() > w.height
}

// Player returns the player box.
func (w *World) Player() core.RectF {
	return w.player
}

// PlayerVelocity returns the player's vertical velocity in units per second.
func (w *World) PlayerVelocity() float64 {
	return w.playerVel
}

// Paused reports whether the simulation is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// Size returns the playfield dimensions.
func (w *World) Size() (float64, float64) {
	return w.width, w.height
}

// bodyCount returns the number of live bodies.
func (w *World) bodyCount() int {
	return len(w.bodies)
}

// Velocity returns a body's velocity.
func (w *World) Velocity(h session.Handle) (vx, vy float64, ok bool) {
	b, ok := w.bodies[h]
	if !ok {
		return 0, 0, false
	}
	return b.vx, b.vy, true
}
