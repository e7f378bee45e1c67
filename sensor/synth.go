package sensor

import opensimplex "github.com/ojrac/opensimplex-go"

// Synth generates smooth pseudo-random tilt by walking two channels of 2-D
// OpenSimplex noise along time. The output swings within ±amplitude raw
// counts, changing gradually enough to look like a hand slowly rocking the
// device.
type Synth struct {
	noise     opensimplex.Noise
	pace      pacer
	amplitude float64
	step      float64
	t         float64
}

// NewSynth builds a noise-driven source. seed fixes the walk; rateHz paces
// delivery (0 disables pacing); amplitude is the output swing in raw
// counts; noiseScale is the time step per sample, larger means jitterier.
func NewSynth(seed int64, rateHz, amplitude, noiseScale float64) *Synth {
	return &Synth{
		noise:     opensimplex.New(seed),
		pace:      newPacer(rateHz),
		amplitude: amplitude,
		step:      noiseScale,
	}
}

// Next returns the next tilt sample, blocking for pacing.
func (s *Synth) Next() (Sample, error) {
	s.pace.wait()
	s.t += s.step

	// Two slices of the same noise field far enough apart to decorrelate
	// the axes.
	x := s.noise.Eval2(s.t, 0)
	y := s.noise.Eval2(s.t, 173.1)

	return Sample{
		X: int32(x * s.amplitude),
		Y: int32(y * s.amplitude),
	}, nil
}

// Close stops the pacing ticker.
func (s *Synth) Close() error {
	s.pace.stop()
	return nil
}
