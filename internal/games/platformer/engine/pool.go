package engine

import "github.com/vovakirdan/tui-platformer/internal/core"

// DefaultPoolCapacity is the instance capacity used when none is configured.
const DefaultPoolCapacity = 2048

// Spawn describes a new instance. Zero Pos and Vel mean the origin and rest.
type Spawn struct {
	Template *Template
	Scale    float64
	Pos      core.Vec2
	Vel      core.Vec2
	Facing   float64
	Patrol   Patrol
}

// Pool is a fixed-capacity arena of instances.
//
// Slots are allocated once; Create hands out free slots from a free list
// (lowest index first on a fresh pool, then the most recently freed slot)
// and Destroy returns them. Instance
// pointers stay valid for the pool's lifetime, but a destroyed slot may be
// reused by a later Create.
type Pool struct {
	slots []Instance
	free  []int
}

// NewPool allocates a pool with the given capacity.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	p := &Pool{
		slots: make([]Instance, capacity),
		free:  make([]int, 0, capacity),
	}
	p.Reset()
	return p
}

// Reset deactivates every instance.
func (p *Pool) Reset() {
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.slots[i] = Instance{slot: i}
		p.free = append(p.free, i)
	}
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Len returns the number of active instances.
func (p *Pool) Len() int {
	return len(p.slots) - len(p.free)
}

// Create activates a free slot initialized from s and returns it.
// It returns nil when the pool is full.
func (p *Pool) Create(s Spawn) *Instance {
	n := len(p.free)
	if n == 0 {
		return nil
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]

	facing := s.Facing
	if facing == 0 {
		facing = 1
	}
	inst := &p.slots[idx]
	*inst = Instance{
		Template:  s.Template,
		Flags:     FlagActive | FlagVisible,
		Scale:     s.Scale,
		Pos:       s.Pos,
		Vel:       s.Vel,
		Facing:    facing,
		Patrol:    s.Patrol,
		Transform: core.Identity(),
		slot:      idx,
	}
	return inst
}

// Destroy deactivates an instance. Destroying an inactive instance, or nil,
// does nothing.
func (p *Pool) Destroy(inst *Instance) {
	if inst == nil || !inst.Active() {
		return
	}
	inst.Flags = 0
	p.free = append(p.free, inst.slot)
}

// Each calls fn for every active instance in slot order. This is the
// physics view: fn may mutate the instance or destroy it.
func (p *Pool) Each(fn func(*Instance)) {
	for i := range p.slots {
		if p.slots[i].Active() {
			fn(&p.slots[i])
		}
	}
}

// Views appends the render-facing read of every visible instance to dst.
func (p *Pool) Views(dst []View) []View {
	for i := range p.slots {
		if p.slots[i].Visible() {
			dst = append(dst, p.slots[i].View())
		}
	}
	return dst
}
