package display

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rbafna6507/fluid-microbit/config"
	"github.com/rbafna6507/fluid-microbit/sensor"
	"github.com/rbafna6507/fluid-microbit/sim"
)

var (
	padOffColor = colorful.Color{R: 0.13, G: 0.13, B: 0.15}
	padOnColor  = colorful.Color{R: 1.0, G: 0.78, B: 0.16}
)

// Window renders frames as an LED matrix in a raylib window, with raygui
// sliders feeding the attached virtual tilt source and an optional overlay
// of sub-cell particle positions. Closing the window surfaces as ErrClosed
// from Draw.
type Window struct {
	tilt      *sensor.Virtual
	particles func() [sim.NumParticles]sim.Particle

	padSize int32
	padGap  int32
	originX int32
	originY int32

	tiltX   float32
	tiltY   float32
	overlay bool
}

// NewWindow opens the window. particles supplies positions for the overlay
// toggle; nil disables the toggle.
func NewWindow(tilt *sensor.Virtual, particles func() [sim.NumParticles]sim.Particle) *Window {
	cfg := config.Cfg()

	w := &Window{
		tilt:      tilt,
		particles: particles,
		padSize:   int32(cfg.Screen.PadSize),
		padGap:    int32(cfg.Screen.PadGap),
	}

	matrixW := int32(sim.SimWidth)*w.padSize + int32(sim.SimWidth-1)*w.padGap
	w.originX = (int32(cfg.Screen.Width) - matrixW) / 2
	w.originY = 60

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "fluid")
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	return w
}

// Draw presents one frame and services the control panel. The hold
// duration is ignored: pacing comes from the sensor and raylib's FPS cap
// keeps the panel responsive between frames.
func (w *Window) Draw(f Frame, hold time.Duration) error {
	if rl.WindowShouldClose() {
		return ErrClosed
	}

	w.pollKeys()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 24, 28, 255))

	pitch := w.padSize + w.padGap
	for j := 0; j < sim.SimHeight; j++ {
		for i := 0; i < sim.SimWidth; i++ {
			x := w.originX + int32(i)*pitch
			y := w.originY + int32(j)*pitch
			bounds := rl.Rectangle{
				X: float32(x), Y: float32(y),
				Width: float32(w.padSize), Height: float32(w.padSize),
			}
			c := padOffColor.BlendLuv(padOnColor, float64(f[j][i])/float64(On))
			r, g, b := c.RGB255()
			rl.DrawRectangleRounded(bounds, 0.3, 6, rl.NewColor(r, g, b, 255))
		}
	}

	if w.overlay && w.particles != nil {
		for _, p := range w.particles() {
			px := float32(w.originX) + (p.X-1)*float32(pitch)
			py := float32(w.originY) + (p.Y-1)*float32(pitch)
			rl.DrawCircleV(rl.Vector2{X: px, Y: py}, 4, rl.NewColor(120, 200, 255, 200))
		}
	}

	w.drawPanel()

	rl.EndDrawing()
	return nil
}

// pollKeys nudges the sliders from the arrow keys so the window matches
// the terminal renderer's controls.
func (w *Window) pollKeys() {
	const nudge = 48
	if rl.IsKeyDown(rl.KeyLeft) {
		w.tiltX = clampTiltF(w.tiltX - nudge)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		w.tiltX = clampTiltF(w.tiltX + nudge)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		w.tiltY = clampTiltF(w.tiltY + nudge)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		w.tiltY = clampTiltF(w.tiltY - nudge)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		w.tiltX, w.tiltY = 0, 0
	}
}

func (w *Window) drawPanel() {
	panelX := float32(w.originX)
	panelW := float32(w.padSize*int32(sim.SimWidth) + w.padGap*int32(sim.SimWidth-1))
	y := float32(w.originY + (w.padSize+w.padGap)*int32(sim.SimHeight) + 24)

	rl.DrawText("tilt x", int32(panelX), int32(y), 14, rl.Gray)
	w.tiltX = gui.SliderBar(
		rl.Rectangle{X: panelX + 60, Y: y, Width: panelW - 130, Height: 18},
		"-1024", "1024",
		w.tiltX, -1024, 1024,
	)
	rl.DrawText(fmt.Sprintf("%5.0f", w.tiltX), int32(panelX+panelW-60), int32(y+2), 14, rl.LightGray)
	y += 30

	rl.DrawText("tilt y", int32(panelX), int32(y), 14, rl.Gray)
	w.tiltY = gui.SliderBar(
		rl.Rectangle{X: panelX + 60, Y: y, Width: panelW - 130, Height: 18},
		"-1024", "1024",
		w.tiltY, -1024, 1024,
	)
	rl.DrawText(fmt.Sprintf("%5.0f", w.tiltY), int32(panelX+panelW-60), int32(y+2), 14, rl.LightGray)
	y += 30

	if w.particles != nil {
		w.overlay = gui.CheckBox(
			rl.Rectangle{X: panelX, Y: y, Width: 18, Height: 18},
			"particle overlay", w.overlay,
		)
	}

	w.tilt.SetTilt(int32(w.tiltX), int32(w.tiltY))
}

// Close tears the window down.
func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func clampTiltF(v float32) float32 {
	if v > 1024 {
		return 1024
	}
	if v < -1024 {
		return -1024
	}
	return v
}
