package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseP2G)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseProject)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration")
	}

	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseP2G]; !ok {
		t.Error("expected p2g phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseProject]; !ok {
		t.Error("expected project phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Fill window completely
	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseForces)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration after window filled")
	}

	if stats.FramesPerSecond <= 0 {
		t.Error("expected positive frames per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate with uneven phase durations
	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseForces)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseSensorWait)
		time.Sleep(100 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct[PhaseForces]
	slowPct := stats.PhasePct[PhaseSensorWait]

	if slowPct <= fastPct {
		t.Errorf("expected sensor wait (%v%%) > forces (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.StartFrame()
	pc.StartPhase(PhaseSensorWait)
	time.Sleep(50 * time.Microsecond)
	pc.StartPhase(PhaseRender)
	time.Sleep(50 * time.Microsecond)
	pc.EndFrame()

	row := pc.Stats().ToCSV(120)

	if row.WindowEnd != 120 {
		t.Errorf("WindowEnd = %d, want 120", row.WindowEnd)
	}
	if row.AvgFrameUS <= 0 {
		t.Error("expected positive avg frame duration in CSV row")
	}
	if row.SensorWaitPct <= 0 || row.RenderPct <= 0 {
		t.Errorf("phase percentages missing: sensor_wait=%v render=%v",
			row.SensorWaitPct, row.RenderPct)
	}
}
