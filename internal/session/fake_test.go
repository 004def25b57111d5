package session

import (
	"time"

	"github.com/vovakirdan/chubbycorn/internal/config"
)

// fakeAdapter records every command and lets tests fire callbacks.
type fakeAdapter struct {
	next       Handle
	created    map[Handle]Kind
	destroyed  []Handle
	positions  map[Handle][2]float64
	velocities map[Handle][2]float64
	overlap    map[Kind]func(Handle)
	breach     func()
	paused     bool
	resumes    int
	resets     int
	steps      int
	onStep     func() // Runs inside Step, like a physics engine reporting contacts
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		created:    make(map[Handle]Kind),
		positions:  make(map[Handle][2]float64),
		velocities: make(map[Handle][2]float64),
		overlap:    make(map[Kind]func(Handle)),
	}
}

func (f *fakeAdapter) CreateEntity(kind Kind, x, y, _, _ float64) Handle {
	f.next++
	f.created[f.next] = kind
	f.positions[f.next] = [2]float64{x, y}
	return f.next
}

func (f *fakeAdapter) DestroyEntity(h Handle) {
	f.destroyed = append(f.destroyed, h)
	delete(f.positions, h)
}

func (f *fakeAdapter) SetVelocity(h Handle, vx, vy float64) { f.velocities[h] = [2]float64{vx, vy} }
func (f *fakeAdapter) SetPosition(h Handle, x, y float64)   { f.positions[h] = [2]float64{x, y} }
func (f *fakeAdapter) OnOverlap(kind Kind, fn func(Handle)) { f.overlap[kind] = fn }
func (f *fakeAdapter) OnWorldBoundaryBreach(fn func())      { f.breach = fn }
func (f *fakeAdapter) PauseSimulation()                     { f.paused = true }
func (f *fakeAdapter) ResetPlayer(float64, float64)         { f.resets++ }

func (f *fakeAdapter) ResumeSimulation() {
	f.paused = false
	f.resumes++
}

func (f *fakeAdapter) Step(time.Duration) {
	f.steps++
	if f.onStep != nil {
		f.onStep()
	}
}

func (f *fakeAdapter) destroyedCount(h Handle) int {
	n := 0
	for _, d := range f.destroyed {
		if d == h {
			n++
		}
	}
	return n
}

// fakeEffects records effect signals.
type fakeEffects struct {
	texts    []string
	lifeLost int
	gameOver []int
}

func (f *fakeEffects) FloatingText(_, _ float64, text string) { f.texts = append(f.texts, text) }
func (f *fakeEffects) LifeLost(float64, float64)             { f.lifeLost++ }
func (f *fakeEffects) GameOver(final int)                    { f.gameOver = append(f.gameOver, final) }

// newTestSession returns a started session with fakes attached.
func newTestSession(cfg config.ChubbycornConfig) (*GameSession, *fakeAdapter, *fakeEffects) {
	a := newFakeAdapter()
	fx := &fakeEffects{}
	s := New(cfg, a, 42, WithEffects(fx))
	s.Start()
	return s, a, fx
}

// place adds an entity of kind at x directly through the registry.
func place(s *GameSession, kind Kind, x float64) *Entity {
	return s.registry.Create(kind, x, 100, 30, 30, 2, AnchorNone)
}
