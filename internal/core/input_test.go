package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFire)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionLeft)

	for i := 0; i < 3; i++ {
		f := NewInputFrame()
		h.Apply(&f)
		if !f.Has(ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}

	f := NewInputFrame()
	h.Apply(&f)
	if f.Has(ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestHoldTrackerRepeatRearms(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(ActionRight)

	f := NewInputFrame()
	h.Apply(&f)
	h.Press(ActionRight) // auto-repeat

	for i := 0; i < 2; i++ {
		f := NewInputFrame()
		h.Apply(&f)
		if !f.Has(ActionRight) {
			t.Fatalf("tick %d: repeat should re-arm the hold", i)
		}
	}
}

// step ages the tracker by one tick and returns the frame it produced.
func step(h *HoldTracker) InputFrame {
	f := NewInputFrame()
	h.Apply(&f)
	return f
}

func TestHoldTrackerOpposites(t *testing.T) {
	tests := []struct {
		name        string
		presses     []Action
		left, right bool
	}{
		{"right releases left", []Action{ActionLeft, ActionRight}, false, true},
		{"left releases right", []Action{ActionRight, ActionLeft}, true, false},
		{"stop releases both", []Action{ActionLeft, ActionStop}, false, false},
		{"fire leaves direction", []Action{ActionRight, ActionFire}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHoldTracker(10)
			for _, a := range tc.presses {
				h.Press(a)
			}
			f := step(h)
			if f.Has(ActionLeft) != tc.left || f.Has(ActionRight) != tc.right {
				t.Errorf("frame left=%v right=%v, expected left=%v right=%v",
					f.Has(ActionLeft), f.Has(ActionRight), tc.left, tc.right)
			}
		})
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(ActionLeft)
	h.ReleaseAll()
	if f := step(h); f.Has(ActionLeft) {
		t.Error("ReleaseAll should drop the held direction")
	}
}

func TestHoldTrackerDefault(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(ActionLeft)

	ticks := 0
	for step(h).Has(ActionLeft) {
		ticks++
	}
	if ticks != DefaultHoldTicks {
		t.Errorf("held for %d ticks, expected %d", ticks, DefaultHoldTicks)
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
