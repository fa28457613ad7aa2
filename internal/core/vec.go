package core

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// AABB is an axis-aligned box given by its min and max corners.
type AABB struct {
	Min, Max Vec2
}

// BoxAround returns the box of the given size centered on c.
func BoxAround(c Vec2, w, h float64) AABB {
	return AABB{
		Min: Vec2{c.X - w/2, c.Y - h/2},
		Max: Vec2{c.X + w/2, c.Y + h/2},
	}
}

// Overlaps reports whether two boxes overlap. Touching edges count.
func (b AABB) Overlaps(o AABB) bool {
	return !(b.Min.X > o.Max.X || o.Min.X > b.Max.X ||
		b.Min.Y > o.Max.Y || o.Min.Y > b.Max.Y)
}

// Mat3 is a 2D affine transform in homogeneous coordinates, row-major.
type Mat3 [3][3]float64

// Identity returns the identity transform.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Mat3 {
	return Mat3{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
}

// ScaleXY returns a non-uniform scale.
func ScaleXY(sx, sy float64) Mat3 {
	return Mat3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// Rotate returns a counter-clockwise rotation by rad radians.
func Rotate(rad float64) Mat3 {
	s, c := math.Sincos(rad)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns m * n, so that the result applies n first and then m.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// Apply transforms the point p.
func (m Mat3) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}
