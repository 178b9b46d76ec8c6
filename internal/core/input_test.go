package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionBoost)

	if len(f.Actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionLeft || f.Actions[2] != ActionBoost {
		t.Errorf("actions out of order: %v", f.Actions)
	}
}

func TestInputFrameClearKeepsCapacity(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionRestart)
	capBefore := cap(f.Actions)

	f.Clear()

	if len(f.Actions) != 0 {
		t.Errorf("Clear() should drop all actions, got %v", f.Actions)
	}
	if cap(f.Actions) != capBefore {
		t.Errorf("Clear() should keep the backing array, cap %d -> %d", capBefore, cap(f.Actions))
	}
}

func TestActionString(t *testing.T) {
	if ActionCamera.String() != "Camera" {
		t.Errorf("ActionCamera.String() = %q", ActionCamera.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
