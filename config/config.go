// Package config provides configuration loading and access for the host
// harness. Solver constants are compile-time values in the sim package and
// deliberately have no keys here; everything configurable is harness-side
// (backends, pacing, telemetry, export).
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all harness configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Sensor    SensorConfig    `yaml:"sensor"`
	Display   DisplayConfig   `yaml:"display"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ScreenConfig holds window renderer settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	PadSize   int `yaml:"pad_size"` // LED pad edge length in pixels
	PadGap    int `yaml:"pad_gap"`  // spacing between pads in pixels
}

// TerminalConfig holds TUI renderer settings.
type TerminalConfig struct {
	Glyph   string `yaml:"glyph"`    // characters drawn per LED cell
	DecayMS int    `yaml:"decay_ms"` // virtual tilt decay interval after key release
}

// SensorConfig holds tilt source settings.
type SensorConfig struct {
	RateHz     float64 `yaml:"rate_hz"`     // samples per second; the frame rate gate
	Amplitude  float64 `yaml:"amplitude"`   // synth output swing in raw counts
	NoiseScale float64 `yaml:"noise_scale"` // synth noise step per sample
}

// DisplayConfig holds renderer pacing settings.
type DisplayConfig struct {
	HoldMS int `yaml:"hold_ms"` // per-frame hold passed to Renderer.Draw
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowFrames int `yaml:"stats_window_frames"`
	PerfWindowFrames  int `yaml:"perf_window_frames"`
}

// ExportConfig holds offline video export settings.
type ExportConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	FPS      int    `yaml:"fps"`
	Quality  int    `yaml:"quality"`  // JPEG quality 1-100
	Gradient string `yaml:"gradient"` // color ramp name
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
