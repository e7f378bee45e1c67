package telemetry

import "log/slog"

// WindowStats holds aggregated solver observations for one frame window.
type WindowStats struct {
	WindowStartFrame int     `csv:"-"`
	WindowEndFrame   int     `csv:"window_end"`
	WallMS           float64 `csv:"wall_ms"`
	EffectiveHz      float64 `csv:"hz"`

	// Mean raw tilt over the window, per axis.
	TiltXMean float64 `csv:"tilt_x_mean"`
	TiltYMean float64 `csv:"tilt_y_mean"`

	// Particle speed distribution sampled at window end.
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedMax  float64 `csv:"speed_max"`

	// Solver health sampled at window end.
	KineticEnergy float64 `csv:"kinetic_energy"`
	Divergence    float64 `csv:"divergence"`
	OccupiedCells int     `csv:"occupied_cells"`
	WallContacts  int     `csv:"wall_contacts"`
	Overlaps      int     `csv:"overlaps"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartFrame),
		slog.Int("window_end", s.WindowEndFrame),
		slog.Float64("wall_ms", s.WallMS),
		slog.Float64("hz", s.EffectiveHz),
		slog.Float64("tilt_x_mean", s.TiltXMean),
		slog.Float64("tilt_y_mean", s.TiltYMean),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("kinetic_energy", s.KineticEnergy),
		slog.Float64("divergence", s.Divergence),
		slog.Int("occupied_cells", s.OccupiedCells),
		slog.Int("wall_contacts", s.WallContacts),
		slog.Int("overlaps", s.Overlaps),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"wall_ms", s.WallMS,
		"hz", s.EffectiveHz,
		"tilt_x_mean", s.TiltXMean,
		"tilt_y_mean", s.TiltYMean,
		"speed_mean", s.SpeedMean,
		"speed_p50", s.SpeedP50,
		"speed_max", s.SpeedMax,
		"kinetic_energy", s.KineticEnergy,
		"divergence", s.Divergence,
		"occupied_cells", s.OccupiedCells,
		"wall_contacts", s.WallContacts,
		"overlaps", s.Overlaps,
	)
}
