// Package driver runs the per-frame loop: block on the tilt source, step
// the solver in its fixed stage order, hand the density frame to the
// renderer, and feed telemetry. One loop owns one Sim; everything is
// single-threaded, and the sensor wait is the only suspension point.
package driver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rbafna6507/fluid-microbit/display"
	"github.com/rbafna6507/fluid-microbit/sensor"
	"github.com/rbafna6507/fluid-microbit/sim"
	"github.com/rbafna6507/fluid-microbit/telemetry"
)

// Options configures a Loop. Source, Renderer, and Sim are required; the
// telemetry fields are optional and nil disables them.
type Options struct {
	Source   sensor.Source
	Renderer display.Renderer
	Sim      *sim.Sim

	// Hold is the per-frame hold duration passed to the renderer.
	Hold time.Duration

	// MaxFrames stops the loop after N frames; 0 runs until the source
	// ends or the renderer closes.
	MaxFrames int

	Perf     *telemetry.PerfCollector
	Stats    *telemetry.Collector
	Output   *telemetry.OutputManager
	LogStats bool

	// SnapshotDir, when set, receives a state snapshot on every clean
	// stop.
	SnapshotDir string
	Seed        int64
}

// Loop is the frame driver.
type Loop struct {
	o     Options
	frame int
}

// New builds a loop over the given collaborators.
func New(o Options) *Loop {
	return &Loop{o: o}
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() int {
	return l.frame
}

// Run executes the frame loop until a stop condition. It returns nil on a
// clean stop: the frame limit is reached, the source returns io.EOF, or
// the renderer reports the user closed it. A collaborator failure halts
// the loop and returns the wrapped error; the solver itself cannot fail.
func (l *Loop) Run() error {
	for {
		if l.o.MaxFrames > 0 && l.frame >= l.o.MaxFrames {
			return l.stop("max frames reached")
		}

		l.startFrame()
		l.startPhase(telemetry.PhaseSensorWait)
		sample, err := l.o.Source.Next()
		if errors.Is(err, io.EOF) {
			return l.stop("source exhausted")
		}
		if err != nil {
			return fmt.Errorf("sensor read at frame %d: %w", l.frame, err)
		}

		// The firmware's axis mapping: horizontal tilt is negated at the
		// call site, the solver's scale constant folds the rest.
		l.startPhase(telemetry.PhaseForces)
		l.o.Sim.ApplyForces(-sample.X, sample.Y)
		l.startPhase(telemetry.PhaseP2G)
		l.o.Sim.TransferToGrid()
		l.startPhase(telemetry.PhaseProject)
		l.o.Sim.Project()
		l.startPhase(telemetry.PhaseG2P)
		l.o.Sim.TransferFromGrid()
		l.startPhase(telemetry.PhaseAdvect)
		l.o.Sim.Advect()
		l.startPhase(telemetry.PhaseDensity)
		l.o.Sim.UpdateDensity()

		l.startPhase(telemetry.PhaseRender)
		err = l.o.Renderer.Draw(display.FromSim(l.o.Sim), l.o.Hold)
		if errors.Is(err, display.ErrClosed) {
			return l.stop("renderer closed")
		}
		if err != nil {
			return fmt.Errorf("draw at frame %d: %w", l.frame, err)
		}
		l.endFrame()

		l.frame++
		l.collect(sample)
	}
}

func (l *Loop) collect(sample sensor.Sample) {
	if l.o.Stats == nil {
		return
	}
	l.o.Stats.Observe(sample.X, sample.Y)
	if !l.o.Stats.ShouldFlush(l.frame) {
		return
	}

	ws := l.o.Stats.Flush(l.frame, l.o.Sim)
	if l.o.LogStats {
		ws.LogStats()
	}
	if err := l.o.Output.WriteStats(ws); err != nil {
		slog.Warn("stats output failed", "error", err)
	}

	if l.o.Perf != nil {
		ps := l.o.Perf.Stats()
		if l.o.LogStats {
			ps.LogStats()
		}
		if err := l.o.Output.WritePerf(ps, l.frame); err != nil {
			slog.Warn("perf output failed", "error", err)
		}
	}
}

// stop handles a clean shutdown: flush a snapshot if requested and return
// nil so the caller exits zero.
func (l *Loop) stop(reason string) error {
	slog.Info("run stopped", "reason", reason, "frames", l.frame)

	if l.o.SnapshotDir != "" {
		snap := &telemetry.Snapshot{
			Version: telemetry.SnapshotVersion,
			Seed:    l.o.Seed,
			Frame:   l.frame,
			State:   l.o.Sim.State(),
		}
		path, err := telemetry.SaveSnapshot(snap, l.o.SnapshotDir)
		if err != nil {
			slog.Warn("snapshot save failed", "error", err)
		} else {
			slog.Info("snapshot saved", "path", path)
		}
	}
	return nil
}

func (l *Loop) startFrame() {
	if l.o.Perf != nil {
		l.o.Perf.StartFrame()
	}
}

func (l *Loop) startPhase(name string) {
	if l.o.Perf != nil {
		l.o.Perf.StartPhase(name)
	}
}

func (l *Loop) endFrame() {
	if l.o.Perf != nil {
		l.o.Perf.EndFrame()
	}
}
