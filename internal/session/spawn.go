package session

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/chubbycorn/internal/config"
)

// minDecorationSpeed keeps jittered clouds moving left.
const minDecorationSpeed = 0.1

// SpawnPolicy decides what enters the playfield, where and how fast.
type SpawnPolicy struct {
	cfg        config.ChubbycornConfig
	rng        *rand.Rand
	registry   *Registry
	difficulty *Difficulty
}

// NewSpawnPolicy creates a policy that spawns into registry at the speeds
// of difficulty.
func NewSpawnPolicy(cfg config.ChubbycornConfig, rng *rand.Rand, registry *Registry, difficulty *Difficulty) *SpawnPolicy {
	return &SpawnPolicy{
		cfg:        cfg,
		rng:        rng,
		registry:   registry,
		difficulty: difficulty,
	}
}

// SpawnCollectible creates a good or bad collectible, chosen uniformly,
// at the right edge inside the safe vertical band.
func (p *SpawnPolicy) SpawnCollectible() *Entity {
	return p.collectibleAt(p.cfg.Playfield.Width)
}

func (p *SpawnPolicy) collectibleAt(x float64) *Entity {
	c := p.cfg.Collectibles
	kind := KindGood
	if p.rng.Intn(2) == 1 {
		kind = KindBad
	}

	band := max(p.cfg.Playfield.Height-c.BottomMargin-c.Size-c.TopMargin, 0)
	y := c.TopMargin + p.rng.Float64()*band

	return p.registry.Create(kind, x, y, c.Size, c.Size, p.difficulty.State().CollectibleSpeed, AnchorNone)
}

// SpawnHazard creates a pillar at the right edge, attached to the top or
// bottom edge with a random height inside the configured band.
func (p *SpawnPolicy) SpawnHazard() *Entity {
	return p.hazardAt(p.cfg.Playfield.Width)
}

func (p *SpawnPolicy) hazardAt(x float64) *Entity {
	hc := p.cfg.Hazards
	fieldH := p.cfg.Playfield.Height

	frac := hc.MinHeight + p.rng.Float64()*(hc.MaxHeight-hc.MinHeight)
	h := fieldH * frac

	anchor, y := AnchorTop, 0.0
	if p.rng.Intn(2) == 1 {
		anchor, y = AnchorBottom, fieldH-h
	}

	return p.registry.Create(KindHazard, x, y, hc.Width, h, p.difficulty.State().HazardSpeed, anchor)
}

// SpawnDecoration creates a cloud near the top of the playfield moving at
// the background speed plus or minus the configured jitter.
func (p *SpawnPolicy) SpawnDecoration() *Entity {
	dc := p.cfg.Decorations
	y := p.rng.Float64() * dc.Band
	jitter := (p.rng.Float64()*2 - 1) * dc.SpeedJitter
	speed := max(p.difficulty.State().BackgroundSpeed+jitter, minDecorationSpeed)

	return p.registry.Create(KindDecoration, p.cfg.Playfield.Width, y, dc.Width, dc.Height, speed, AnchorNone)
}

// NextInterval samples the delay before the next spawn, uniform in
// [SpawnMin, SpawnMax].
func (p *SpawnPolicy) NextInterval() time.Duration {
	lo, hi := p.cfg.Timers.SpawnMin, p.cfg.Timers.SpawnMax
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(p.rng.Int63n(int64(hi-lo)+1))
}

// Preplace fills the configured slots at run start. Returns the number of
// entities placed.
func (p *SpawnPolicy) Preplace() int {
	n := 0
	cs := p.cfg.Collectibles.Preplace
	for i := range cs.Count {
		p.collectibleAt(cs.X + float64(i)*cs.Step)
		n++
	}
	hs := p.cfg.Hazards.Preplace
	for i := range hs.Count {
		p.hazardAt(hs.X + float64(i)*hs.Step)
		n++
	}
	return n
}
