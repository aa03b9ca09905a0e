package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/chime/internal/config"
	"github.com/san-kum/chime/internal/log"
	"github.com/san-kum/chime/internal/sim"
	"github.com/san-kum/chime/internal/voice"
)

type nopVoice struct{ released int }

func (v *nopVoice) SoundNote(string, voice.Duration) {}
func (v *nopVoice) Release()                         { v.released++ }
func (v *nopVoice) ConnectReverb()                   {}

type nopFactory struct{ voices []*nopVoice }

func (f *nopFactory) NewVoice(voice.Kind) sim.Voice {
	v := &nopVoice{}
	f.voices = append(f.voices, v)
	return v
}

func newTestModel() (*model, *nopFactory) {
	f := &nopFactory{}
	m := New(config.DefaultConfig(), f, rand.New(rand.NewSource(1)), log.Nop())
	return m, f
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestSpaceTogglesSimulation(t *testing.T) {
	m, f := newTestModel()

	press(m, " ")
	if !m.ctrl.Running() {
		t.Fatal("space should start the simulation")
	}
	if len(f.voices) != 3 {
		t.Fatalf("default config should build 3 voices, got %d", len(f.voices))
	}

	m.Update(tickMsg{})
	m.Update(tickMsg{})
	if m.ctrl.Frame() != 2 {
		t.Errorf("two ticks should run two frames, got %d", m.ctrl.Frame())
	}

	press(m, " ")
	if m.ctrl.Running() {
		t.Fatal("second space should stop the simulation")
	}
	for i, v := range f.voices {
		if v.released != 1 {
			t.Errorf("voice %d released %d times", i, v.released)
		}
	}
}

func TestKeysEditSettings(t *testing.T) {
	m, _ := newTestModel()
	before := m.ctrl.Settings()

	press(m, "4", "1", "s", "v", "r", "+", "+")

	s := m.ctrl.Settings()
	if !s.Slots[3] || s.Slots[0] {
		t.Errorf("slot keys not applied: %v", s.Slots)
	}
	if s.Scale == before.Scale {
		t.Error("s should change the scale")
	}
	if s.Voice != before.Voice.Next(1) {
		t.Errorf("voice = %v, want %v", s.Voice, before.Voice.Next(1))
	}
	if s.Reverb == before.Reverb {
		t.Error("r should toggle reverb")
	}
	if s.Speed != before.Speed+2 {
		t.Errorf("speed = %v, want %v", s.Speed, before.Speed+2)
	}

	press(m, "S")
	if got := m.ctrl.Settings().Scale; got != before.Scale {
		t.Errorf("S should step back to %s, got %s", before.Scale, got)
	}
}

func TestSpeedIsClamped(t *testing.T) {
	m, _ := newTestModel()
	for i := 0; i < 50; i++ {
		press(m, "-")
	}
	if s := m.ctrl.Settings().Speed; s != minSpeed {
		t.Errorf("speed = %v, want %v", s, minSpeed)
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel()
	press(m, "?")
	if !strings.Contains(m.View(), "any key to close") {
		t.Error("? should show the help overlay")
	}
	press(m, "q")
	if m.help {
		t.Error("a key should close help")
	}
	if m.ctrl.Running() {
		t.Error("closing help must not act on the key")
	}
}

func TestQuitStopsRunningSimulation(t *testing.T) {
	m, f := newTestModel()
	press(m, " ")
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.ctrl.Running() {
		t.Error("quit should stop the simulation")
	}
	if f.voices[0].released != 1 {
		t.Error("quit should release voices")
	}
}

func TestViewShowsState(t *testing.T) {
	m, _ := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.canvas.Width != 96 || m.canvas.Height != 20 {
		t.Errorf("canvas = %dx%d, want 96x20", m.canvas.Width, m.canvas.Height)
	}
	if !strings.Contains(m.View(), "stopped") {
		t.Error("view should show stopped state")
	}
	press(m, " ")
	m.Update(tickMsg{})
	if !strings.Contains(m.View(), "playing") {
		t.Error("view should show playing state")
	}
}
