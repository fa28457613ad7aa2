package engine

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Update advances the session by one frame. dt is clamped to the configured
// maximum frame time; negative values count as zero. Once a transition is
// pending the session no longer changes.
//
// The passes run in a fixed order, each reading what the previous ones
// produced this frame: input, gravity, integration, grid collision (with the
// enemy patrol), contacts, transforms, particles, camera.
func (s *Session) Update(in Input, dt float64) {
	if s.transition != TransitionNone {
		return
	}
	dt = math.Max(0, math.Min(dt, s.cfg.Physics.MaxFrameTime))
	s.elapsed += dt
	s.refreshDifficulty()

	if in.Escape {
		s.transition = TransitionMenu
		return
	}
	s.applyInput(in)

	s.pool.Each(func(inst *Instance) {
		inst.Vel.Y += s.cfg.Physics.Gravity * dt
	})
	s.pool.Each(func(inst *Instance) {
		inst.Pos = inst.Pos.Add(inst.Vel.Scale(dt))
	})
	s.pool.Each(func(inst *Instance) {
		s.resolveGrid(inst)
		if inst.Type() == TileEnemy {
			s.stepPatrol(inst, dt)
		}
	})

	s.resolveContacts(dt)

	s.pool.Each(func(inst *Instance) {
		inst.UpdateTransform()
	})

	s.particles.Update(dt, s.hero.Facing)
	if s.emitter.Tick(dt) {
		s.particles.Emit(s.hero.Pos)
	}

	s.camera.Follow(s.hero.Pos, float64(s.grid.Width()), float64(s.grid.Height()))
}

func (s *Session) applyInput(in Input) {
	h := s.hero
	switch {
	case in.Right:
		h.Vel.X = s.cfg.Hero.MoveVelocity
		h.Facing = 1
	case in.Left:
		h.Vel.X = -s.cfg.Hero.MoveVelocity
		h.Facing = -1
	default:
		h.Vel.X = 0
	}
	// Sides still holds last frame's probe.
	if in.Jump && h.Sides.Has(SideBottom) {
		h.Vel.Y = s.cfg.Hero.JumpVelocity
	}
}

// resolveGrid probes the grid around inst and pushes it out of blocked
// sides. Enemies keep their horizontal velocity so the patrol decides when
// to stop.
func (s *Session) resolveGrid(inst *Instance) {
	size := s.cfg.Physics.BoundingSize * inst.Scale
	inst.UpdateBox(s.cfg.Physics.BoundingSize)
	inst.Sides = s.grid.ProbeSides(inst.Pos.X, inst.Pos.Y, size, size)

	if inst.Sides.Has(SideBottom | SideTop) {
		inst.Pos.Y = SnapToCell(inst.Pos.Y)
		inst.Vel.Y = 0
	}
	if inst.Sides.Has(SideLeft | SideRight) {
		inst.Pos.X = SnapToCell(inst.Pos.X)
		inst.PrevSides = inst.Sides
		if inst.Type() != TileEnemy {
			inst.Vel.X = 0
		}
	}
	inst.UpdateBox(s.cfg.Physics.BoundingSize)
}

func (s *Session) stepPatrol(inst *Instance, dt float64) {
	next, cmd := inst.Patrol.Step(patrolEvents(s.grid, inst, dt), PatrolParams{
		Speed:    s.enemySpeed,
		IdleTime: s.idleTime,
	})
	inst.Patrol = next
	if cmd.SetVelX {
		inst.Vel.X = cmd.VelX
		if cmd.VelX != 0 {
			inst.Facing = math.Copysign(1, cmd.VelX)
		}
	}
}

// resolveContacts tests the hero against every collidable enemy and coin.
// Nothing more is processed once a contact requested a transition.
func (s *Session) resolveContacts(dt float64) {
	hero := s.hero
	s.pool.Each(func(inst *Instance) {
		if s.transition != TransitionNone || inst == hero || !inst.Collidable() {
			return
		}
		switch inst.Type() {
		case TileEnemy:
			if Intersects(inst.Box, inst.Vel, hero.Box, hero.Vel, dt) {
				s.loseLife()
			}
		case TileCoin:
			if Intersects(inst.Box, inst.Vel, hero.Box, hero.Vel, dt) {
				s.collect(inst)
			}
		}
	})
}

func (s *Session) loseLife() {
	s.lives = max(s.lives-1, 0)
	if s.lives == 0 {
		s.transition = TransitionRestart
		return
	}
	s.ResetHero()
}

// ResetHero puts the hero back on its spawn cell at rest.
func (s *Session) ResetHero() {
	h := s.hero
	h.Pos = s.spawn
	h.Vel = core.Vec2{}
	h.Sides, h.PrevSides = 0, 0
	h.UpdateBox(s.cfg.Physics.BoundingSize)
}

func (s *Session) collect(coin *Instance) {
	s.pool.Destroy(coin)
	s.coins = max(s.coins-1, 0)
	s.collected++
	s.refreshDifficulty()
	if s.coins == 0 {
		s.transition = TransitionNextLevel
	}
}

// Sink receives draw calls. m maps a unit square centered on the origin to
// screen space; alpha is the opacity in [0, 1].
type Sink interface {
	Draw(m core.Mat3, t *Template, alpha float64)
}

// Draw emits the visible walls, then every visible instance, then every
// active particle. view maps world space to screen space, usually
// Camera.ViewTransform.
func (s *Session) Draw(sink Sink, view core.Mat3) {
	wall := s.templates.Get(TileWall)
	vis := s.camera.Bounds()
	x0, x1 := max(cellOf(vis.Min.X), 0), min(cellOf(vis.Max.X), s.grid.Width()-1)
	y0, y1 := max(cellOf(vis.Min.Y), 0), min(cellOf(vis.Max.Y), s.grid.Height()-1)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if s.grid.Collidable(x, y) {
				sink.Draw(view.Mul(core.Translate(float64(x)+0.5, float64(y)+0.5)), wall, 1)
			}
		}
	}

	s.views = s.pool.Views(s.views[:0])
	for _, v := range s.views {
		sink.Draw(view.Mul(v.Transform), v.Template, 1)
	}

	s.particles.Each(func(p *Particle) {
		m := view.Mul(core.Translate(p.Pos.X, p.Pos.Y)).Mul(core.ScaleXY(p.Scale, p.Scale))
		sink.Draw(m, p.Template, p.Alpha)
	})
}
