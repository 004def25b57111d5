package session

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/chubbycorn/internal/config"
)

// ReferenceFrame is the frame length speeds are expressed against.
// An Update of one ReferenceFrame moves an entity by exactly its speed.
const ReferenceFrame = time.Second / 60

// Kind tags a spawnable entity.
type Kind int

const (
	KindGood       Kind = iota // Cupcake: bonus points
	KindBad                    // Carrot: costs a life
	KindHazard                 // Pillar: ends the run
	KindDecoration             // Cloud: never collides
	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindBad:
		return "bad"
	case KindHazard:
		return "hazard"
	case KindDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Anchor is the playfield edge a hazard is attached to.
type Anchor int

const (
	AnchorNone Anchor = iota
	AnchorTop
	AnchorBottom
)

// Entity is a spawned object. Positions are world units, X/Y is the top-left corner.
type Entity struct {
	ID     Handle
	Kind   Kind
	X, Y   float64
	W, H   float64
	Speed  float64 // World units per reference frame, leftwards
	Anchor Anchor
	Active bool
}

// Bounds returns the entity box.
func (e Entity) Bounds() (x, y, w, h float64) {
	return e.X, e.Y, e.W, e.H
}

// behavior is the per-kind rule set.
type behavior struct {
	speed func(e *Entity, d DifficultyState) float64
	bob   bool                           // Vertical oscillation while moving
	wraps bool                           // Follows the wrap policy instead of always being destroyed
	hit   func(s *GameSession, h Handle) // Overlap effect, nil when the kind never collides
}

var behaviors = [kindCount]behavior{
	KindGood: {
		speed: func(_ *Entity, d DifficultyState) float64 { return d.CollectibleSpeed },
		bob:   true,
		wraps: true,
		hit:   (*GameSession).OnCollectGood,
	},
	KindBad: {
		speed: func(_ *Entity, d DifficultyState) float64 { return d.CollectibleSpeed },
		bob:   true,
		wraps: true,
		hit:   (*GameSession).OnCollectBad,
	},
	KindHazard: {
		speed: func(_ *Entity, d DifficultyState) float64 { return d.HazardSpeed },
		wraps: true,
		hit:   func(s *GameSession, _ Handle) { s.OnHazardCollision() },
	},
	KindDecoration: {
		// Clouds keep the speed they were spawned with
		speed: func(e *Entity, _ DifficultyState) float64 { return e.Speed },
	},
}

// Registry owns the live entities and mirrors them into the adapter.
// Entities are kept in creation order so updates are deterministic.
type Registry struct {
	adapter   Adapter
	rng       *rand.Rand
	policy    config.RecyclePolicy
	width     float64
	jitter    float64
	bobPeriod float64
	bobAmp    float64

	entities []*Entity
	byID     map[Handle]*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry(adapter Adapter, cfg config.ChubbycornConfig, rng *rand.Rand) *Registry {
	return &Registry{
		adapter:   adapter,
		rng:       rng,
		policy:    cfg.Recycle.Policy,
		width:     cfg.Playfield.Width,
		jitter:    cfg.Recycle.WrapJitter,
		bobPeriod: cfg.Collectibles.BobPeriod,
		bobAmp:    cfg.Collectibles.BobAmplitude,
		entities:  make([]*Entity, 0, 16),
		byID:      make(map[Handle]*Entity),
	}
}

// Create adds an entity and its adapter body.
func (r *Registry) Create(kind Kind, x, y, w, h, speed float64, anchor Anchor) *Entity {
	id := r.adapter.CreateEntity(kind, x, y, w, h)
	e := &Entity{
		ID:     id,
		Kind:   kind,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Speed:  speed,
		Anchor: anchor,
		Active: true,
	}
	r.adapter.SetVelocity(id, velocity(speed), 0)

	r.entities = append(r.entities, e)
	r.byID[id] = e
	return e
}

// Get returns the entity with the given handle.
func (r *Registry) Get(id Handle) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Deactivate marks an entity as consumed and destroys its adapter body.
// The record itself is dropped by the next Sweep. Returns false if the
// entity is unknown or already inactive.
func (r *Registry) Deactivate(id Handle) bool {
	e, ok := r.byID[id]
	if !ok || !e.Active {
		return false
	}
	e.Active = false
	r.adapter.DestroyEntity(id)
	return true
}

// Advance moves every active entity left by its kind's speed, scaled by
// the elapsed fraction of a reference frame.
func (r *Registry) Advance(d DifficultyState, scale float64) {
	for _, e := range r.entities {
		if !e.Active {
			continue
		}
		b := behaviors[e.Kind]

		if speed := b.speed(e, d); speed != e.Speed {
			e.Speed = speed
			r.adapter.SetVelocity(e.ID, velocity(speed), 0)
		}

		e.X -= e.Speed * scale
		if b.bob && r.bobPeriod != 0 {
			e.Y += math.Sin(e.X/r.bobPeriod) * r.bobAmp * scale
		}
		r.adapter.SetPosition(e.ID, e.X, e.Y)
	}
}

// Sweep drops consumed entities and recycles those past the left edge:
// destroyed, or wrapped back beyond the right edge under the wrap policy.
// Returns the number of entities removed.
func (r *Registry) Sweep() int {
	removed := 0
	kept := r.entities[:0]

	for _, e := range r.entities {
		if e.Active && e.X < -e.W {
			if r.policy == config.RecycleWrap && behaviors[e.Kind].wraps {
				e.X = r.width + r.rng.Float64()*r.jitter
				r.adapter.SetPosition(e.ID, e.X, e.Y)
			} else {
				e.Active = false
				r.adapter.DestroyEntity(e.ID)
			}
		}

		if !e.Active {
			delete(r.byID, e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}

	clear(r.entities[len(kept):])
	r.entities = kept
	return removed
}

// Clear destroys every entity.
func (r *Registry) Clear() {
	for _, e := range r.entities {
		if e.Active {
			r.adapter.DestroyEntity(e.ID)
		}
	}
	clear(r.entities)
	r.entities = r.entities[:0]
	clear(r.byID)
}

// Entities returns copies of the active entities in creation order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.entities))
	for _, e := range r.entities {
		if e.Active {
			out = append(out, *e)
		}
	}
	return out
}

// count returns the number of active entities of a kind.
func (r *Registry) count(kind Kind) int {
	n := 0
	for _, e := range r.entities {
		if e.Active && e.Kind == kind {
			n++
		}
	}
	return n
}

// size returns the number of tracked entities, including consumed ones
// awaiting the next Sweep.
func (r *Registry) size() int {
	return len(r.entities)
}

// velocity converts a per-frame speed to a leftward velocity in units per second.
func velocity(speed float64) float64 {
	return -speed * float64(time.Second/ReferenceFrame)
}
