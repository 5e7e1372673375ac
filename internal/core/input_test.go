package core

import "testing"

func TestInputFrameKeepsOrderAndRepeats(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if f.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", f.Len(), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
	if !f.Has(ActionRotate) || f.Has(ActionHold) {
		t.Error("Has() reported wrong membership")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	clone := f.Clone()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if clone.Len() != 1 || clone.Actions[0] != ActionHardDrop {
		t.Errorf("clone = %v, expected [HardDrop]", clone.Actions)
	}
}

func TestTickMillis(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{60, 16},
		{50, 20},
		{0, 16},
		{-5, 16},
	}
	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.rate}
		if got := cfg.TickMillis(); got != tt.want {
			t.Errorf("TickMillis(%d) = %d, expected %d", tt.rate, got, tt.want)
		}
	}
}
