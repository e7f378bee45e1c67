// Command ledcast renders a simulated run to an MJPEG AVI offline. It
// drives the solver from a synth, fixed, or replay tilt source with no
// pacing, rasterizes each LED frame, and muxes the JPEG frames into a
// video, so a run can be inspected without hardware or a window.
package main

import (
	"bytes"
	"flag"
	"image/jpeg"
	"log"

	"github.com/icza/mjpeg"

	"github.com/rbafna6507/fluid-microbit/config"
	"github.com/rbafna6507/fluid-microbit/display"
	"github.com/rbafna6507/fluid-microbit/sensor"
	"github.com/rbafna6507/fluid-microbit/sim"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	out := flag.String("out", "run.avi", "Output AVI path")
	frames := flag.Int("frames", 300, "Frames to render")
	source := flag.String("source", "synth", "Tilt source: synth, fixed, or replay")
	replayPath := flag.String("replay", "", "Trace CSV for the replay source")
	tiltX := flag.Int("tilt-x", -800, "Fixed source tilt X in raw counts")
	tiltY := flag.Int("tilt-y", 0, "Fixed source tilt Y in raw counts")
	seed := flag.Int64("seed", 42, "Synth noise seed")
	overlay := flag.Bool("overlay", true, "Draw sub-cell particle positions")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("loading config: %v", err)
	}
	cfg := config.Cfg()

	var (
		src sensor.Source
		err error
	)
	switch *source {
	case "synth":
		src = sensor.NewSynth(*seed, 0, cfg.Sensor.Amplitude, cfg.Sensor.NoiseScale)
	case "fixed":
		src = sensor.NewFixed(int32(*tiltX), int32(*tiltY), 0)
	case "replay":
		src, err = sensor.NewReplay(*replayPath, 0)
		if err != nil {
			log.Fatalf("loading replay trace: %v", err)
		}
	default:
		log.Fatalf("unknown source %q", *source)
	}
	defer src.Close()

	aw, err := mjpeg.New(*out, int32(cfg.Export.Width), int32(cfg.Export.Height), int32(cfg.Export.FPS))
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}

	raster := newRasterizer(cfg.Export, *overlay)
	opts := &jpeg.Options{Quality: cfg.Export.Quality}
	s := sim.New()

	var buf bytes.Buffer
	rendered := 0
	for i := 0; i < *frames; i++ {
		sample, err := src.Next()
		if err != nil {
			// A short replay trace ends the video early.
			break
		}
		s.Step(-sample.X, sample.Y)

		img := raster.render(display.FromSim(s), s)

		buf.Reset()
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			log.Fatalf("encoding frame %d: %v", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			log.Fatalf("muxing frame %d: %v", i, err)
		}
		rendered++
	}

	if err := aw.Close(); err != nil {
		log.Fatalf("finalizing %s: %v", *out, err)
	}
	log.Printf("wrote %d frames to %s", rendered, *out)
}
