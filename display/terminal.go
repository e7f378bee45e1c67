package display

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbafna6507/fluid-microbit/config"
	"github.com/rbafna6507/fluid-microbit/sensor"
)

// tiltStep is the raw-count nudge per arrow key press; tiltMax matches the
// sensor's full-scale output at 1g.
const (
	tiltStep int32 = 256
	tiltMax  int32 = 1024
)

var (
	termTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	termOn     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	termOff    = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	termDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	termBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// Terminal renders frames as a full-screen Bubble Tea TUI. Arrow keys feed
// the attached virtual tilt source; a held key sustains the tilt and
// release decays it back to zero. q or ctrl-c quits, which Draw surfaces
// as ErrClosed.
type Terminal struct {
	prog   *tea.Program
	done   chan struct{}
	runErr error
}

// NewTerminal starts the TUI over the given virtual source. The program
// runs on its own goroutine; Draw feeds it frames.
func NewTerminal(tilt *sensor.Virtual) *Terminal {
	cfg := config.Cfg()
	decay := time.Duration(cfg.Terminal.DecayMS) * time.Millisecond
	if decay <= 0 {
		decay = 120 * time.Millisecond
	}
	m := termModel{
		tilt:  tilt,
		glyph: cfg.Terminal.Glyph,
		decay: decay,
	}
	t := &Terminal{
		prog: tea.NewProgram(m, tea.WithAltScreen()),
		done: make(chan struct{}),
	}
	go func() {
		_, err := t.prog.Run()
		t.runErr = err
		close(t.done)
	}()
	return t
}

// Draw pushes a frame into the TUI. Once the user has quit it returns
// ErrClosed.
func (t *Terminal) Draw(f Frame, hold time.Duration) error {
	select {
	case <-t.done:
		return ErrClosed
	default:
	}
	t.prog.Send(frameMsg(f))
	return nil
}

// Close shuts the TUI down and waits for the program to exit.
func (t *Terminal) Close() error {
	t.prog.Quit()
	<-t.done
	return t.runErr
}

type frameMsg Frame

type decayMsg time.Time

type termModel struct {
	tilt  *sensor.Virtual
	glyph string
	decay time.Duration

	frame  Frame
	tiltX  int32
	tiltY  int32
	frames int
}

func (m termModel) Init() tea.Cmd {
	return m.decayTick()
}

func (m termModel) decayTick() tea.Cmd {
	return tea.Tick(m.decay, func(t time.Time) tea.Msg { return decayMsg(t) })
}

func (m termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = Frame(msg)
		m.frames++
		return m, nil

	case decayMsg:
		// Key release is invisible to a terminal, so tilt decays on a
		// timer instead; holding a key outruns the decay.
		m.tiltX = m.tiltX * 3 / 4
		m.tiltY = m.tiltY * 3 / 4
		m.tilt.SetTilt(m.tiltX, m.tiltY)
		return m, m.decayTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.tiltX = clampTilt(m.tiltX - tiltStep)
		case "right":
			m.tiltX = clampTilt(m.tiltX + tiltStep)
		case "up":
			m.tiltY = clampTilt(m.tiltY + tiltStep)
		case "down":
			m.tiltY = clampTilt(m.tiltY - tiltStep)
		case "0", " ":
			m.tiltX, m.tiltY = 0, 0
		}
		m.tilt.SetTilt(m.tiltX, m.tiltY)
		return m, nil
	}
	return m, nil
}

func (m termModel) View() string {
	var b strings.Builder

	b.WriteString(termTitle.Render("fluid"))
	b.WriteString("\n\n")

	var grid strings.Builder
	for j := range m.frame {
		for i := range m.frame[j] {
			if m.frame[j][i] != Off {
				grid.WriteString(termOn.Render(m.glyph))
			} else {
				grid.WriteString(termOff.Render(m.glyph))
			}
		}
		if j < len(m.frame)-1 {
			grid.WriteByte('\n')
		}
	}
	b.WriteString(termBorder.Render(grid.String()))

	b.WriteString("\n\n")
	b.WriteString(termDim.Render(fmt.Sprintf("tilt %5d %5d   frame %d", m.tiltX, m.tiltY, m.frames)))
	b.WriteString("\n")
	b.WriteString(termDim.Render("arrows tilt · space levels · q quits"))
	b.WriteString("\n")

	return b.String()
}

func clampTilt(v int32) int32 {
	if v > tiltMax {
		return tiltMax
	}
	if v < -tiltMax {
		return -tiltMax
	}
	return v
}
