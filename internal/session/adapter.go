package session

import "time"

// Handle identifies an entity body inside the adapter.
type Handle uint64

// Adapter is the physics and rendering side of the game. It owns the
// player body, gravity and overlap detection, and reports events back
// through the callbacks registered with OnOverlap and OnWorldBoundaryBreach.
// Callbacks are delivered synchronously from Step.
type Adapter interface {
	CreateEntity(kind Kind, x, y, w, h float64) Handle
	DestroyEntity(h Handle)
	SetVelocity(h Handle, vx, vy float64)
	SetPosition(h Handle, x, y float64)

	// OnOverlap registers a callback for the player touching an entity of kind.
	OnOverlap(kind Kind, fn func(Handle))
	// OnWorldBoundaryBreach registers a callback for the player leaving the playfield.
	OnWorldBoundaryBreach(fn func())

	PauseSimulation()
	ResumeSimulation()
	ResetPlayer(x, y float64)

	// Step advances physics by dt and delivers pending callbacks.
	Step(dt time.Duration)
}

// Effects receives fire-and-forget visual signals.
type Effects interface {
	FloatingText(x, y float64, text string)
	LifeLost(x, y float64)
	GameOver(finalScore int)
}

// NopEffects discards every signal.
type NopEffects struct{}

func (NopEffects) FloatingText(float64, float64, string) {}
func (NopEffects) LifeLost(float64, float64)             {}
func (NopEffects) GameOver(int)                          {}
