package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionRight)

	if !f.Has(ActionJump) || !f.IsHeld(ActionJump) {
		t.Error("pressed action should be both pressed and held")
	}
	if f.Has(ActionRight) {
		t.Error("held-only action should not report a press")
	}
	if !f.IsHeld(ActionRight) {
		t.Error("IsHeld(ActionRight) = false, expected true")
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionJump) || f.IsHeld(ActionRight) {
		t.Error("Clear() should drop presses and holds")
	}
	if !c.Has(ActionJump) || !c.IsHeld(ActionRight) {
		t.Error("Clone() should not share maps with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) || f.IsHeld(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionLeft)
	if !f.IsHeld(ActionLeft) {
		t.Error("Set() on zero frame should allocate maps")
	}
}
