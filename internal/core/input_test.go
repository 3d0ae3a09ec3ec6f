package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone) // ignored
	f.Set(ActionJump)
	f.Set(ActionLeft)

	got := f.Actions()
	expected := []Action{ActionLeft, ActionJump, ActionLeft}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true")
	}
	if f.Has(ActionSlide) {
		t.Error("Has(ActionSlide) should be false")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSlide)

	clone := f.Clone()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Clear should empty the frame, got %d actions", f.Len())
	}
	if !clone.Has(ActionSlide) {
		t.Error("Clone should not be affected by Clear on the original")
	}

	// Zero value frame is usable
	var zero InputFrame
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Zero-value InputFrame should accept actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{ActionSlide, "Slide"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestRuntimeConfigFrameSeconds(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}
	if got := cfg.FrameSeconds(); got != 1.0/30 {
		t.Errorf("FrameSeconds() = %f, expected %f", got, 1.0/30)
	}

	cfg.TickRate = 0
	if got := cfg.FrameSeconds(); got != 1.0/60 {
		t.Errorf("FrameSeconds() with zero rate = %f, expected %f", got, 1.0/60)
	}
}
