package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultParticleCapacity is the particle capacity used when none is configured.
const DefaultParticleCapacity = 200

// Particle is a short-lived trail sprite.
type Particle struct {
	Template *Template
	Pos      core.Vec2
	Scale    float64
	Life     float64 // seconds left
	VelY     float64
	Alpha    float64
	Active   bool
}

// ParticlePool is a fixed-capacity set of particles with first-fit reuse.
type ParticlePool struct {
	slots      []Particle
	archetypes []*Template
	cfg        config.ParticleConfig
	rng        *rand.Rand
}

// NewParticlePool allocates a pool. Emitted particles pick a random
// archetype and draw their parameters from the ranges in cfg.
//
// A zero capacity gives a pool that never emits, which is how
// pools.particles: 0 turns the effect off. A negative capacity uses
// DefaultParticleCapacity.
func NewParticlePool(capacity int, archetypes []*Template, cfg config.ParticleConfig, rng *rand.Rand) *ParticlePool {
	if capacity < 0 {
		capacity = DefaultParticleCapacity
	}
	return &ParticlePool{
		slots:      make([]Particle, capacity),
		archetypes: archetypes,
		cfg:        cfg,
		rng:        rng,
	}
}

// Cap returns the pool capacity.
func (p *ParticlePool) Cap() int {
	return len(p.slots)
}

// Len returns the number of active particles.
func (p *ParticlePool) Len() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Emit spawns one particle near origin in the first free slot.
// It reports false when the pool is full.
func (p *ParticlePool) Emit(origin core.Vec2) bool {
	for i := range p.slots {
		if p.slots[i].Active {
			continue
		}
		var tmpl *Template
		if len(p.archetypes) > 0 {
			tmpl = p.archetypes[p.rng.Intn(len(p.archetypes))]
		}
		p.slots[i] = Particle{
			Template: tmpl,
			Alpha:    p.sample(p.cfg.Alpha),
			Scale:    p.sample(p.cfg.Scale),
			Life:     p.sample(p.cfg.Lifespan),
			VelY:     p.sample(p.cfg.Velocity),
			Pos:      origin.Add(core.V(p.sample(p.cfg.JitterX), p.sample(p.cfg.JitterY))),
			Active:   true,
		}
		return true
	}
	return false
}

// Update ages every active particle by dt. Particles drift horizontally
// along facing and are retired once their life or scale drops below zero.
func (p *ParticlePool) Update(dt, facing float64) {
	drift := p.cfg.DriftSpeed * facing * dt
	for i := range p.slots {
		pt := &p.slots[i]
		if !pt.Active {
			continue
		}
		pt.Life -= dt
		pt.Scale -= dt / 3
		pt.Alpha = max(pt.Alpha-dt, 0)
		pt.Pos.Y += pt.VelY * dt
		pt.Pos.X += drift
		if pt.Life < 0 || pt.Scale < 0 {
			pt.Active = false
		}
	}
}

// Each calls fn for every active particle in slot order.
func (p *ParticlePool) Each(fn func(*Particle)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}

// Clear retires every particle.
func (p *ParticlePool) Clear() {
	for i := range p.slots {
		p.slots[i].Active = false
	}
}

func (p *ParticlePool) sample(r config.Range) float64 {
	return r.Min + p.rng.Float64()*(r.Max-r.Min)
}

// Emitter fires at a fixed rate.
type Emitter struct {
	interval float64
	timer    float64
}

// NewEmitter returns an emitter firing rate times per second.
// A non-positive rate never fires.
func NewEmitter(rate float64) Emitter {
	if rate <= 0 {
		return Emitter{}
	}
	return Emitter{interval: 1 / rate, timer: 1 / rate}
}

// Tick counts the timer down by dt and reports whether it fired.
// The timer restarts from the full interval after firing.
func (e *Emitter) Tick(dt float64) bool {
	if e.interval <= 0 {
		return false
	}
	e.timer -= dt
	if e.timer < 0 {
		e.timer = e.interval
		return true
	}
	return false
}
