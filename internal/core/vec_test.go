package core

import (
	"math"
	"testing"
)

func approxVec(a, b Vec2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{"overlapping", BoxAround(V(0, 0), 2, 2), BoxAround(V(1, 1), 2, 2), true},
		{"separated on x", BoxAround(V(0, 0), 1, 1), BoxAround(V(3, 0), 1, 1), false},
		{"separated on y", BoxAround(V(0, 0), 1, 1), BoxAround(V(0, 3), 1, 1), false},
		{"touching edges", BoxAround(V(0, 0), 1, 1), BoxAround(V(1, 0), 1, 1), true},
		{"contained", BoxAround(V(0, 0), 4, 4), BoxAround(V(0.5, 0.5), 1, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMat3Compose(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 5).Mul(ScaleXY(2, 3))

	tests := []struct {
		in, expected Vec2
	}{
		{V(0, 0), V(10, 5)},
		{V(1, 1), V(12, 8)},
		{V(-0.5, 0.5), V(9, 6.5)},
	}

	for _, tc := range tests {
		if got := m.Apply(tc.in); !approxVec(got, tc.expected) {
			t.Errorf("Apply(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestMat3Identity(t *testing.T) {
	m := Rotate(math.Pi / 3)
	if m.Mul(Identity()) != m {
		t.Error("m * I should equal m")
	}

	got := Rotate(math.Pi / 2).Apply(V(1, 0))
	if !approxVec(got, V(0, 1)) {
		t.Errorf("Rotate(pi/2).Apply(1,0) = %v, expected (0,1)", got)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -1)

	if got := a.Add(b); got != V(4, 1) {
		t.Errorf("Add() = %v, expected (4,1)", got)
	}
	if got := a.Sub(b); got != V(-2, 3) {
		t.Errorf("Sub() = %v, expected (-2,3)", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale() = %v, expected (2,4)", got)
	}
}
