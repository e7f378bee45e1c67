package telemetry

import (
	"path/filepath"
	"testing"

	"github.com/rbafna6507/fluid-microbit/sim"
)

func TestSnapshotRoundtrip(t *testing.T) {
	s := sim.New()
	for i := 0; i < 30; i++ {
		s.Step(-900, 400)
	}

	snap := &Snapshot{
		Version: SnapshotVersion,
		Seed:    1234,
		Frame:   30,
		State:   s.State(),
	}

	dir := t.TempDir()
	path, err := SaveSnapshot(snap, dir)
	if err != nil {
		t.Fatalf("saving snapshot: %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}

	if loaded.Seed != snap.Seed || loaded.Frame != snap.Frame {
		t.Errorf("metadata mismatch: %+v vs %+v", loaded.Seed, snap.Seed)
	}
	if loaded.State != snap.State {
		t.Error("state did not roundtrip exactly")
	}

	// A restored run must continue bit for bit.
	restored := sim.New()
	restored.Restore(loaded.State)
	for i := 0; i < 10; i++ {
		s.Step(200, -300)
		restored.Step(200, -300)
	}
	if restored.Particles() != s.Particles() {
		t.Error("restored simulation diverged from original")
	}
}

func TestLoadSnapshotRejectsWrongVersion(t *testing.T) {
	s := sim.New()
	snap := &Snapshot{Version: SnapshotVersion + 1, State: s.State()}

	path, err := SaveSnapshot(snap, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected version mismatch error")
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing snapshot")
	}
}
