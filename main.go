package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/rbafna6507/fluid-microbit/config"
	"github.com/rbafna6507/fluid-microbit/display"
	"github.com/rbafna6507/fluid-microbit/driver"
	"github.com/rbafna6507/fluid-microbit/sensor"
	"github.com/rbafna6507/fluid-microbit/sim"
	"github.com/rbafna6507/fluid-microbit/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without any display")
	terminal := flag.Bool("terminal", false, "Render in the terminal instead of a window")
	replayPath := flag.String("replay", "", "Play back a recorded tilt trace CSV")
	recordPath := flag.String("record", "", "Record the tilt trace to this CSV")
	tiltX := flag.Int("tilt-x", 0, "Fixed tilt X in raw counts (with -tilt-y selects the fixed source)")
	tiltY := flag.Int("tilt-y", 0, "Fixed tilt Y in raw counts")
	seed := flag.Int64("seed", 0, "Synth noise seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in frames (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for state snapshots on clean stop")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	statsFrames := cfg.Telemetry.StatsWindowFrames
	if *statsWindow > 0 {
		statsFrames = *statsWindow
	}

	// Tilt source. The virtual source is shared with interactive
	// renderers so their controls feed the frame loop.
	var (
		src     sensor.Source
		virtual *sensor.Virtual
		backend string
	)
	switch {
	case *replayPath != "":
		r, err := sensor.NewReplay(*replayPath, cfg.Sensor.RateHz)
		if err != nil {
			slog.Error("failed to load replay trace", "error", err)
			os.Exit(1)
		}
		src = r
		backend = "replay"
	case *tiltX != 0 || *tiltY != 0:
		src = sensor.NewFixed(int32(*tiltX), int32(*tiltY), cfg.Sensor.RateHz)
		backend = "fixed"
	case *headless:
		src = sensor.NewSynth(rngSeed, cfg.Sensor.RateHz, cfg.Sensor.Amplitude, cfg.Sensor.NoiseScale)
		backend = "synth"
	default:
		virtual = sensor.NewVirtual(cfg.Sensor.RateHz)
		src = virtual
		backend = "virtual"
	}

	if *recordPath != "" {
		src = sensor.NewRecorder(src, *recordPath)
	}
	defer src.Close()

	s := sim.New()

	// Renderer
	var rend display.Renderer
	switch {
	case *headless:
		rend = display.NewHeadless(statsFrames)
	case *terminal:
		if virtual == nil {
			virtual = sensor.NewVirtual(0)
		}
		rend = display.NewTerminal(virtual)
	default:
		if virtual == nil {
			virtual = sensor.NewVirtual(0)
		}
		rend = display.NewWindow(virtual, s.Particles)
	}
	defer rend.Close()

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("config snapshot failed", "error", err)
	}

	var (
		perf  *telemetry.PerfCollector
		stats *telemetry.Collector
	)
	if *logStats || output != nil {
		perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindowFrames)
		stats = telemetry.NewCollector(statsFrames)
	}

	slog.Info("run starting",
		"backend", backend,
		"seed", rngSeed,
		"rate_hz", cfg.Sensor.RateHz,
		"max_frames", *maxFrames,
	)

	loop := driver.New(driver.Options{
		Source:      src,
		Renderer:    rend,
		Sim:         s,
		Hold:        time.Duration(cfg.Display.HoldMS) * time.Millisecond,
		MaxFrames:   *maxFrames,
		Perf:        perf,
		Stats:       stats,
		Output:      output,
		LogStats:    *logStats,
		SnapshotDir: *snapshotDir,
		Seed:        rngSeed,
	})

	if err := loop.Run(); err != nil {
		slog.Error("run failed", "error", err, "frames", loop.Frames())
		os.Exit(1)
	}
}
