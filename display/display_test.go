package display

import (
	"testing"
	"time"

	"github.com/rbafna6507/fluid-microbit/sim"
)

func TestFromSimMapsInteriorCells(t *testing.T) {
	s := sim.New()
	s.UpdateDensity()
	f := FromSim(s)

	// The initial layout packs one particle per interior cell, so the
	// whole matrix lights.
	for j := range f {
		for i := range f[j] {
			if f[j][i] != sim.LedOn {
				t.Errorf("LED (%d,%d) = %d, want %d", i, j, f[j][i], sim.LedOn)
			}
		}
	}
}

func TestHeadlessCountsFrames(t *testing.T) {
	h := NewHeadless(0)
	var f Frame
	for i := 0; i < 7; i++ {
		if err := h.Draw(f, 50*time.Millisecond); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}
	if h.Frames() != 7 {
		t.Errorf("Frames() = %d, want 7", h.Frames())
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOnOffLevelsMatchSim(t *testing.T) {
	// The renderers and the solver must agree on the wire levels.
	if On != sim.LedOn || Off != sim.LedOff {
		t.Fatalf("display levels (%d,%d) differ from sim (%d,%d)", Off, On, sim.LedOff, sim.LedOn)
	}
}
