// Package tui is the terminal front end: a bubbletea program that steps the
// simulation on every tick and paints it into a braille canvas.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/chime/internal/config"
	"github.com/san-kum/chime/internal/frame"
	"github.com/san-kum/chime/internal/log"
	"github.com/san-kum/chime/internal/metrics"
	"github.com/san-kum/chime/internal/scale"
	"github.com/san-kum/chime/internal/sim"
	"github.com/san-kum/chime/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	minSpeed = 1
	maxSpeed = 20

	historyLen = 60
)

type model struct {
	ctrl   *sim.Controller
	queue  *frame.Queue
	canvas *viz.Canvas
	rec    *metrics.Recorder
	log    *log.Logger

	interval time.Duration
	help     bool
	lastErr  error

	width  int
	height int
}

// New builds the terminal model around a fresh controller. The rng may be
// nil for a time-seeded run.
func New(cfg *config.Config, voices sim.VoiceFactory, rng *rand.Rand, logger *log.Logger) *model {
	queue := frame.NewQueue()
	canvas := viz.NewCanvas(60, 16)
	settings := cfg.Settings()
	canvas.SetWorld(settings.Bounds)

	ctrl := sim.NewController(canvas, voices, queue, settings)
	ctrl.SetLogger(logger)
	if rng != nil {
		ctrl.SetRand(rng)
	}
	rec := metrics.NewRecorder(historyLen, metrics.NewNotes(), metrics.NewHits(sim.PairHit))
	ctrl.AddObserver(rec)

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return &model{
		ctrl:     ctrl,
		queue:    queue,
		canvas:   canvas,
		rec:      rec,
		log:      logger.With("tui"),
		interval: time.Second / time.Duration(fps),
		width:    80,
		height:   24,
	}
}

// Run starts the program and blocks until the user quits.
func Run(cfg *config.Config, voices sim.VoiceFactory, rng *rand.Rand, logger *log.Logger) error {
	m := New(cfg, voices, rng, logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if m.ctrl.Running() {
		m.ctrl.Stop()
	}
	return err
}

type tickMsg time.Time

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return m.tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.queue.Step()
		return m, m.tick()
	}
	return m, nil
}

func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	cw, ch := w-4, h-10
	if cw < 20 {
		cw = 20
	}
	if ch < 6 {
		ch = 6
	}
	m.canvas.Resize(cw, ch)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		if m.ctrl.Running() {
			m.ctrl.Stop()
		}
		return m, tea.Quit
	case " ", "enter":
		m.lastErr = m.ctrl.Toggle()
		if m.lastErr != nil {
			m.log.Warnf("toggle: %v", m.lastErr)
		}
		if m.ctrl.Running() {
			m.rec.Reset()
		}
	case "1", "2", "3", "4", "5":
		slot := int(key[0] - '1')
		m.ctrl.UpdateSettings(func(s *sim.Settings) { s.Slots[slot] = !s.Slots[slot] })
	case "s":
		m.ctrl.SetScale(scale.Next(m.ctrl.Settings().Scale, 1))
	case "S":
		m.ctrl.SetScale(scale.Next(m.ctrl.Settings().Scale, -1))
	case "v":
		m.ctrl.UpdateSettings(func(s *sim.Settings) { s.Voice = s.Voice.Next(1) })
	case "V":
		m.ctrl.UpdateSettings(func(s *sim.Settings) { s.Voice = s.Voice.Next(-1) })
	case "r":
		m.ctrl.UpdateSettings(func(s *sim.Settings) { s.Reverb = !s.Reverb })
	case "+", "=":
		m.ctrl.UpdateSettings(func(s *sim.Settings) { s.Speed = clampSpeed(s.Speed + 1) })
	case "-", "_":
		m.ctrl.UpdateSettings(func(s *sim.Settings) { s.Speed = clampSpeed(s.Speed - 1) })
	case "?", "h":
		m.help = true
	}
	return m, nil
}

func clampSpeed(v float64) float64 {
	if v < minSpeed {
		return minSpeed
	}
	if v > maxSpeed {
		return maxSpeed
	}
	return v
}

func (m *model) View() string {
	if m.help {
		return m.viewHelp()
	}
	s := m.ctrl.Settings()

	var b strings.Builder
	b.WriteString("\n  " + viz.Title.Render("c h i m e") + "  ")
	if m.ctrl.Running() {
		b.WriteString(viz.StatusRunning.Render("● playing"))
		b.WriteString(dim.Render(fmt.Sprintf("  frame %d", m.ctrl.Frame())))
	} else {
		b.WriteString(viz.StatusStopped.Render("○ stopped"))
	}
	b.WriteString("\n")

	b.WriteString(viz.Panel.Render(m.canvas.Render()) + "\n")

	b.WriteString("  ")
	for i, on := range s.Slots {
		b.WriteString(viz.Toggle(fmt.Sprintf("%d", i+1), on))
	}
	b.WriteString("  " + viz.Toggle("reverb", s.Reverb))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s\n",
		viz.Label.Render("scale"), magenta.Render(s.Scale),
		viz.Label.Render("voice"), magenta.Render(s.Voice.String()),
		viz.Label.Render("speed"), white.Render(fmt.Sprintf("%.0f", s.Speed))))

	vals := m.rec.Values()
	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s\n",
		viz.Label.Render("notes"), viz.Value.Render(fmt.Sprintf("%.0f", vals["notes"])),
		viz.Label.Render("hits"), viz.Value.Render(fmt.Sprintf("%.0f", vals["pair_hits"])),
		viz.Sparkline(m.rec.Series(), 30)))

	b.WriteString(viz.KeyHint.Render("  space start/stop  1-5 bodies  s scale  v voice  r reverb  ± speed  ? help  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *model) viewHelp() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("c h i m e") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")
	b.WriteString(dim.Render("    Circles bounce around the box. Every time one hits a wall") + "\n")
	b.WriteString(dim.Render("    or another circle it plays a random note from the scale,") + "\n")
	b.WriteString(dim.Render("    never the same note twice in a row.") + "\n\n")

	keys := [][2]string{
		{"space", "start / stop"},
		{"1-5", "enable bodies (next start)"},
		{"s / S", "next / previous scale (live)"},
		{"v / V", "next / previous voice (next start)"},
		{"r", "reverb (next start)"},
		{"+ / -", "speed (next start)"},
		{"q", "quit"},
	}
	for _, k := range keys {
		b.WriteString("      " + cyan.Render(fmt.Sprintf("%-8s", k[0])) + white.Render(k[1]) + "\n")
	}
	b.WriteString("\n" + dim.Render("    any key to close") + "\n")
	return b.String()
}
