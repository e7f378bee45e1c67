package sensor

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func TestFixedEmitsConstantSample(t *testing.T) {
	src := NewFixed(-700, 300, 0)
	defer src.Close()

	for i := 0; i < 5; i++ {
		s, err := src.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if s.X != -700 || s.Y != 300 {
			t.Fatalf("sample %d = %+v, want {-700 300}", i, s)
		}
	}
}

func TestVirtualTiltIsSettable(t *testing.T) {
	src := NewVirtual(0)
	defer src.Close()

	s, err := src.Next()
	if err != nil || s.X != 0 || s.Y != 0 {
		t.Fatalf("initial sample = %+v, %v; want zero tilt", s, err)
	}

	src.SetTilt(512, -512)
	s, _ = src.Next()
	if s.X != 512 || s.Y != -512 {
		t.Fatalf("sample after SetTilt = %+v", s)
	}

	x, y := src.Tilt()
	if x != 512 || y != -512 {
		t.Fatalf("Tilt() = (%d, %d)", x, y)
	}
}

func TestVirtualPacing(t *testing.T) {
	src := NewVirtual(100) // 10ms per sample
	defer src.Close()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := src.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("3 samples at 100 Hz took %v, want >= 25ms", elapsed)
	}
}

func TestSynthStaysWithinAmplitude(t *testing.T) {
	src := NewSynth(42, 0, 800, 0.2)
	defer src.Close()

	varies := false
	var prev Sample
	for i := 0; i < 100; i++ {
		s, err := src.Next()
		if err != nil {
			t.Fatal(err)
		}
		if s.X < -800 || s.X > 800 || s.Y < -800 || s.Y > 800 {
			t.Fatalf("sample %d = %+v exceeds amplitude 800", i, s)
		}
		if i > 0 && s != prev {
			varies = true
		}
		prev = s
	}
	if !varies {
		t.Error("synth produced a constant signal")
	}
}

func TestSynthIsDeterministicPerSeed(t *testing.T) {
	a := NewSynth(7, 0, 900, 0.18)
	b := NewSynth(7, 0, 900, 0.18)
	defer a.Close()
	defer b.Close()

	for i := 0; i < 20; i++ {
		sa, _ := a.Next()
		sb, _ := b.Next()
		if sa != sb {
			t.Fatalf("sample %d diverged: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestRecorderReplayRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")

	rec := NewRecorder(NewSynth(99, 0, 600, 0.25), path)
	var want []Sample
	for i := 0; i < 30; i++ {
		s, err := rec.Next()
		if err != nil {
			t.Fatal(err)
		}
		want = append(want, s)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("closing recorder: %v", err)
	}

	rep, err := NewReplay(path, 0)
	if err != nil {
		t.Fatalf("loading trace: %v", err)
	}
	defer rep.Close()

	if rep.Len() != len(want) {
		t.Fatalf("trace length %d, want %d", rep.Len(), len(want))
	}
	for i, w := range want {
		s, err := rep.Next()
		if err != nil {
			t.Fatalf("replay sample %d: %v", i, err)
		}
		if s != w {
			t.Fatalf("replay sample %d = %+v, want %+v", i, s, w)
		}
	}

	if _, err := rep.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("exhausted replay returned %v, want io.EOF", err)
	}
}

func TestReplayMissingFile(t *testing.T) {
	if _, err := NewReplay(filepath.Join(t.TempDir(), "nope.csv"), 0); err == nil {
		t.Error("expected error for missing trace file")
	}
}
