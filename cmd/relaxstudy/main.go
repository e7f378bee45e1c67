// Command relaxstudy measures the solver's two tuned decay behaviors
// offline: how fast repeated projection applications drive divergence down
// for the configured over-relaxation factor, and how fast the per-frame
// damping bleeds kinetic energy under zero tilt. Each sequence is fitted
// with an exponential and emitted as CSV plus a PNG curve.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rbafna6507/fluid-microbit/sim"
)

func main() {
	outDir := flag.String("out", "relaxstudy", "Output directory for CSVs and plots")
	seed := flag.Int64("seed", 42, "Seed for the disturbed particle configuration")
	apps := flag.Int("apps", 30, "Projection applications for the divergence study")
	frames := flag.Int("frames", 120, "Zero-tilt frames for the energy study")
	kick := flag.Int("kick", 8, "Full-tilt frames injecting energy before the energy study")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	divSeries := divergenceSeries(*seed, *apps)
	divFit := fitExpDecay(divSeries)
	log.Printf("divergence decay: d0=%.4f lambda=%.4f (over-relaxation %v, %d sweeps/application)",
		divFit.D0, divFit.Lambda, sim.OverRelaxation, sim.ProjectIters)

	if err := writeSeries(filepath.Join(*outDir, "divergence.csv"), divSeries, divFit); err != nil {
		log.Fatalf("writing divergence csv: %v", err)
	}
	if err := plotSeries(
		filepath.Join(*outDir, "divergence.png"),
		"Projection divergence decay", "application", "sum |divergence|",
		divSeries, divFit,
	); err != nil {
		log.Fatalf("plotting divergence: %v", err)
	}

	energySeries := energySeries(*kick, *frames)
	energyFit := fitExpDecay(energySeries)
	log.Printf("energy decay: e0=%.4f lambda=%.4f (damping %v)",
		energyFit.D0, energyFit.Lambda, sim.Damping)

	if err := writeSeries(filepath.Join(*outDir, "energy.csv"), energySeries, energyFit); err != nil {
		log.Fatalf("writing energy csv: %v", err)
	}
	if err := plotSeries(
		filepath.Join(*outDir, "energy.png"),
		"Kinetic energy decay under zero tilt", "frame", "kinetic energy",
		energySeries, energyFit,
	); err != nil {
		log.Fatalf("plotting energy: %v", err)
	}

	log.Printf("results written to %s", *outDir)
}

// divergenceSeries builds a seeded disturbed state and records the summed
// absolute divergence after each projection application. Index 0 is the
// unprojected transfer result.
func divergenceSeries(seed int64, apps int) []float64 {
	s := sim.New()
	rng := rand.New(rand.NewSource(seed))

	// Stir the fluid with a few random-tilt frames so the velocity field
	// has structure, then rebuild the grid without projecting.
	for i := 0; i < 12; i++ {
		s.Step(int32(rng.Intn(2049)-1024), int32(rng.Intn(2049)-1024))
	}
	s.TransferToGrid()

	series := make([]float64, 0, apps+1)
	series = append(series, s.Divergence())
	for k := 0; k < apps; k++ {
		s.Project()
		series = append(series, s.Divergence())
	}
	return series
}

// energySeries kicks the fluid with sustained full tilt, then records
// kinetic energy over zero-tilt frames.
func energySeries(kick, frames int) []float64 {
	s := sim.New()
	for i := 0; i < kick; i++ {
		s.Step(-1024, 640)
	}

	series := make([]float64, 0, frames+1)
	series = append(series, s.KineticEnergy())
	for i := 0; i < frames; i++ {
		s.Step(0, 0)
		series = append(series, s.KineticEnergy())
	}
	return series
}
