package chubbycorn

import (
	"time"

	"github.com/vovakirdan/chubbycorn/internal/core"
)

// Floating effect tuning
const (
	floaterTTL  = 1200 * time.Millisecond
	floaterRise = 60.0 // World units per second
)

// Floater is a short-lived text drifting upward from where it was emitted.
type Floater struct {
	X, Y  float64
	Text  string
	Color core.Color
	Age   time.Duration
}

// Effects collects the session's visual signals for the renderer.
// It implements session.Effects.
type Effects struct {
	floaters   []Floater
	gameOver   bool
	finalScore int
}

// NewEffects creates an empty effect layer.
func NewEffects() *Effects {
	return &Effects{}
}

// FloatingText shows text rising from (x, y).
func (e *Effects) FloatingText(x, y float64, text string) {
	e.floaters = append(e.floaters, Floater{X: x, Y: y, Text: text, Color: core.ColorBrightYellow})
}

// LifeLost shows a broken heart rising from (x, y).
func (e *Effects) LifeLost(x, y float64) {
	e.floaters = append(e.floaters, Floater{X: x, Y: y, Text: "-1 ♥", Color: core.ColorBrightRed})
}

// GameOver raises the restart prompt with the final score. Floaters still
// in flight are dropped so the prompt box stays readable.
func (e *Effects) GameOver(finalScore int) {
	e.gameOver = true
	e.finalScore = finalScore
	e.floaters = e.floaters[:0]
}

// RestartPrompt returns the final score to show and whether the restart
// prompt is up.
func (e *Effects) RestartPrompt() (finalScore int, shown bool) {
	return e.finalScore, e.gameOver
}

// Update ages floaters and drops expired ones.
func (e *Effects) Update(dt time.Duration) {
	kept := e.floaters[:0]
	for _, f := range e.floaters {
		f.Age += dt
		if f.Age >= floaterTTL {
			continue
		}
		f.Y -= floaterRise * dt.Seconds()
		kept = append(kept, f)
	}
	e.floaters = kept
}

// Floaters returns the live floaters.
func (e *Effects) Floaters() []Floater {
	return e.floaters
}

// Reset clears everything for a new run.
func (e *Effects) Reset() {
	e.floaters = e.floaters[:0]
	e.gameOver = false
	e.finalScore = 0
}
