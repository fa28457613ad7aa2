package engine

import "github.com/vovakirdan/tui-platformer/internal/core"

// Camera is a viewport onto the world, measured in world units.
type Camera struct {
	Center core.Vec2
	ViewW  float64
	ViewH  float64
}

// Follow centers the camera on target, clamped so the view stays inside a
// mapW x mapH world. On an axis where the view is at least as large as the
// map, the map is centered instead.
func (c *Camera) Follow(target core.Vec2, mapW, mapH float64) {
	c.Center.X = followAxis(target.X, c.ViewW, mapW)
	c.Center.Y = followAxis(target.Y, c.ViewH, mapH)
}

func followAxis(target, view, size float64) float64 {
	if view >= size {
		return size / 2
	}
	return core.ClampF(target, view/2, size-view/2)
}

// Left returns the world x of the view's left edge.
func (c Camera) Left() float64 {
	return c.Center.X - c.ViewW/2
}

// Top returns the world y of the view's top edge.
func (c Camera) Top() float64 {
	return c.Center.Y + c.ViewH/2
}

// Bounds returns the visible world rectangle.
func (c Camera) Bounds() core.AABB {
	return core.BoxAround(c.Center, c.ViewW, c.ViewH)
}

// ViewTransform maps world coordinates to screen cells, where one world
// unit spans cellW columns and cellH rows and screen y grows downwards.
func (c Camera) ViewTransform(cellW, cellH float64) core.Mat3 {
	return core.ScaleXY(cellW, -cellH).Mul(core.Translate(-c.Left(), -c.Top()))
}
