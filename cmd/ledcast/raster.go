package main

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/mazznoer/colorgrad"

	"github.com/rbafna6507/fluid-microbit/config"
	"github.com/rbafna6507/fluid-microbit/display"
	"github.com/rbafna6507/fluid-microbit/sim"
)

// rasterizer draws frames as rounded LED pads on a dark background, with
// an optional particle overlay colored by speed.
type rasterizer struct {
	width   int
	height  int
	overlay bool
	grad    colorgrad.Gradient

	pitch   float64
	pad     float64
	originX float64
	originY float64
}

func newRasterizer(cfg config.ExportConfig, overlay bool) *rasterizer {
	r := &rasterizer{
		width:   cfg.Width,
		height:  cfg.Height,
		overlay: overlay,
		grad:    gradientByName(cfg.Gradient),
	}

	// Fit the 5x5 matrix with a one-pitch margin on all sides.
	span := math.Min(float64(r.width), float64(r.height))
	r.pitch = span / float64(sim.SimWidth+2)
	r.pad = r.pitch * 0.82
	r.originX = (float64(r.width) - r.pitch*float64(sim.SimWidth)) / 2
	r.originY = (float64(r.height) - r.pitch*float64(sim.SimHeight)) / 2

	return r
}

func gradientByName(name string) colorgrad.Gradient {
	switch name {
	case "magma":
		return colorgrad.Magma()
	case "plasma":
		return colorgrad.Plasma()
	case "inferno":
		return colorgrad.Inferno()
	default:
		return colorgrad.Viridis()
	}
}

func (r *rasterizer) render(f display.Frame, s *sim.Sim) image.Image {
	ctx := gg.NewContext(r.width, r.height)
	ctx.SetRGB(0.07, 0.07, 0.09)
	ctx.Clear()

	inset := (r.pitch - r.pad) / 2
	for j := 0; j < sim.SimHeight; j++ {
		for i := 0; i < sim.SimWidth; i++ {
			t := float64(f[j][i]) / float64(display.On)
			ctx.SetColor(r.grad.At(0.08 + 0.92*t))
			ctx.DrawRoundedRectangle(
				r.originX+float64(i)*r.pitch+inset,
				r.originY+float64(j)*r.pitch+inset,
				r.pad, r.pad, r.pad*0.2,
			)
			ctx.Fill()
		}
	}

	if r.overlay {
		maxSpeed := s.MaxSpeed()
		for _, p := range s.Particles() {
			speed := math.Sqrt(float64(p.VX*p.VX + p.VY*p.VY))
			t := 0.0
			if maxSpeed > 0 {
				t = speed / maxSpeed
			}
			ctx.SetColor(r.grad.At(1 - 0.6*t))
			// Interior cell (1,1) maps to pad (0,0); positions are in
			// cell units.
			ctx.DrawCircle(
				r.originX+(float64(p.X)-1)*r.pitch,
				r.originY+(float64(p.Y)-1)*r.pitch,
				r.pitch*0.07,
			)
			ctx.Fill()
		}
	}

	return ctx.Image()
}
