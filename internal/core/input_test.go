package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("New frame should be empty")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Has(Up) should be true after Set")
	}
	if f.Has(ActionDown) {
		t.Error("Has(Down) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Frame should be empty after Clear")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone should not be affected by Clear on original")
	}
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionLeft, ActionRestart)
	if !f.Has(ActionLeft) || !f.Has(ActionRestart) {
		t.Errorf("InputOf lost actions: %v", f.Actions)
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionUp:    "Up",
		ActionLeft:  "Left",
		ActionRight: "Right",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
