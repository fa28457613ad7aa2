package engine

import (
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Flags are the per-instance state bits.
type Flags uint32

const (
	FlagActive Flags = 1 << iota
	FlagVisible
	FlagNonCollidable
)

// Side is a bitmask of the box sides a grid probe found blocked.
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideRight
	SideTop
	SideBottom
)

// Has reports whether any bit of o is set in s.
func (s Side) Has(o Side) bool {
	return s&o != 0
}

// String lists the blocked sides, e.g. "Left|Bottom".
func (s Side) String() string {
	if s == 0 {
		return "None"
	}
	var parts []string
	for _, p := range []struct {
		bit  Side
		name string
	}{{SideLeft, "Left"}, {SideRight, "Right"}, {SideTop, "Top"}, {SideBottom, "Bottom"}} {
		if s.Has(p.bit) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}

// Instance is a pooled game object: the hero, an enemy or a coin.
//
// Gameplay code reads and writes instances through the pool's physics view
// (Pool.Each); renderers only see the read-only View.
type Instance struct {
	Template *Template
	Flags    Flags
	Scale    float64
	Pos      core.Vec2
	Vel      core.Vec2
	Facing   float64 // +1 right, -1 left

	// Sides is the result of the latest grid probe. PrevSides keeps the
	// last probe that blocked horizontally.
	Sides     Side
	PrevSides Side

	// Patrol is only meaningful for enemies.
	Patrol Patrol

	Box       core.AABB
	Transform core.Mat3

	slot int
}

// Active reports whether the slot is in use.
func (i *Instance) Active() bool {
	return i.Flags&FlagActive != 0
}

// Visible reports whether the instance should be drawn.
func (i *Instance) Visible() bool {
	return i.Flags&(FlagActive|FlagVisible) == FlagActive|FlagVisible
}

// Collidable reports whether the instance takes part in contact tests.
func (i *Instance) Collidable() bool {
	return i.Active() && i.Flags&FlagNonCollidable == 0
}

// Type returns the archetype the instance was spawned from.
func (i *Instance) Type() TileType {
	if i.Template == nil {
		return TileEmpty
	}
	return i.Template.Type
}

// Slot returns the instance's index in its pool.
func (i *Instance) Slot() int {
	return i.slot
}

// UpdateBox recomputes the bounding box from position and scale.
// size is the box edge length per unit of scale.
func (i *Instance) UpdateBox(size float64) {
	edge := size * i.Scale
	i.Box = core.BoxAround(i.Pos, edge, edge)
}

// UpdateTransform recomputes the instance-to-world transform.
func (i *Instance) UpdateTransform() {
	i.Transform = core.Translate(i.Pos.X, i.Pos.Y).Mul(core.ScaleXY(i.Scale, i.Scale))
}

// View is the render-facing read of an instance.
type View struct {
	Template  *Template
	Transform core.Mat3
	Pos       core.Vec2
	Facing    float64
}

// View returns the render-facing read of the instance.
func (i *Instance) View() View {
	return View{
		Template:  i.Template,
		Transform: i.Transform,
		Pos:       i.Pos,
		Facing:    i.Facing,
	}
}
