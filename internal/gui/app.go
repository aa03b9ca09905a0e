// Package gui is the windowed front end built on raylib.
package gui

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/chime/internal/config"
	"github.com/san-kum/chime/internal/frame"
	"github.com/san-kum/chime/internal/log"
	"github.com/san-kum/chime/internal/metrics"
	"github.com/san-kum/chime/internal/scale"
	"github.com/san-kum/chime/internal/sim"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColField   = rl.NewColor(18, 18, 22, 255)
	ColBorder  = rl.NewColor(40, 40, 48, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColOn      = rl.NewColor(0, 255, 136, 255)
)

const (
	hudHeight = 70
	margin    = 10

	minSpeed = 1
	maxSpeed = 20
)

type App struct {
	Ctrl     *sim.Controller
	Ticker   *frame.Ticker
	Surface  *Surface
	Recorder *metrics.Recorder
	Font     rl.Font
	ShowHelp bool

	bounds sim.Bounds
	log    *log.Logger
}

func initWindow(w, h int32, fps int) {
	rl.InitWindow(w, h, "chime")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont tries Liberation Mono and falls back to the raylib default font.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, voices sim.VoiceFactory, rng *rand.Rand, logger *log.Logger) *App {
	settings := cfg.Settings()
	surface := NewSurface(margin, hudHeight)
	// frames run on the ticker goroutine; the window only replays the surface
	ticker := frame.NewTicker(cfg.FPS)

	ctrl := sim.NewController(surface, voices, ticker, settings)
	ctrl.SetLogger(logger)
	if rng != nil {
		ctrl.SetRand(rng)
	}
	rec := metrics.NewRecorder(0, metrics.NewNotes(), metrics.NewHits(sim.PairHit))
	ctrl.AddObserver(rec)

	return &App{
		Ctrl:     ctrl,
		Ticker:   ticker,
		Surface:  surface,
		Recorder: rec,
		Font:     loadFont(),
		bounds:   settings.Bounds,
		log:      logger.With("gui"),
	}
}

// Run opens a window sized to the configured surface and blocks until it
// is closed.
func Run(cfg *config.Config, voices sim.VoiceFactory, rng *rand.Rand, logger *log.Logger) {
	w := int32(cfg.Width) + 2*margin
	h := int32(cfg.Height) + hudHeight + margin
	initWindow(w, h, cfg.FPS)
	defer rl.CloseWindow()

	app := NewApp(cfg, voices, rng, logger)
	defer app.Close()
	app.RunLoop()
}

// Close stops the simulation and its ticker.
func (a *App) Close() {
	if a.Ctrl.Running() {
		a.Ctrl.Stop()
	}
	a.Ticker.Close()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and reports false when the user asked to quit.
func (a *App) Update() bool {
	if a.ShowHelp {
		if rl.GetKeyPressed() != 0 {
			a.ShowHelp = false
		}
		return true
	}

	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	switch {
	case rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape):
		return false
	case rl.IsKeyPressed(rl.KeySpace):
		if err := a.Ctrl.Toggle(); err != nil {
			a.log.Warnf("toggle: %v", err)
		}
		if a.Ctrl.Running() {
			a.Recorder.Reset()
		}
	case rl.IsKeyPressed(rl.KeyS):
		step := 1
		if shift {
			step = -1
		}
		a.Ctrl.SetScale(scale.Next(a.Ctrl.Settings().Scale, step))
	case rl.IsKeyPressed(rl.KeyV):
		step := 1
		if shift {
			step = -1
		}
		a.Ctrl.UpdateSettings(func(s *sim.Settings) { s.Voice = s.Voice.Next(step) })
	case rl.IsKeyPressed(rl.KeyR):
		a.Ctrl.UpdateSettings(func(s *sim.Settings) { s.Reverb = !s.Reverb })
	case rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd):
		a.Ctrl.UpdateSettings(func(s *sim.Settings) { s.Speed = min(s.Speed+1, maxSpeed) })
	case rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract):
		a.Ctrl.UpdateSettings(func(s *sim.Settings) { s.Speed = max(s.Speed-1, minSpeed) })
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHelp = true
	}

	slotKeys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}
	for i, k := range slotKeys {
		if rl.IsKeyPressed(k) {
			slot := i
			a.Ctrl.UpdateSettings(func(s *sim.Settings) { s.Slots[slot] = !s.Slots[slot] })
		}
	}
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.DrawRectangle(margin, hudHeight, int32(a.bounds.Width), int32(a.bounds.Height), ColField)
	rl.DrawRectangleLines(margin, hudHeight, int32(a.bounds.Width), int32(a.bounds.Height), ColBorder)
	a.Surface.Draw()
	a.DrawHUD()
	if a.ShowHelp {
		a.drawHelp()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	s := a.Ctrl.Settings()
	a.drawText("chime", margin, 10, 24, ColSelect)

	status, col := "STOPPED", ColTextDim
	if a.Ctrl.Running() {
		status, col = fmt.Sprintf("PLAYING  frame %d", a.Ctrl.Frame()), ColOn
	}
	a.drawText(status, 100, 16, 16, col)

	x := margin
	for i, on := range s.Slots {
		c := ColTextDim
		if on {
			c = ColOn
		}
		a.drawText(fmt.Sprintf("%d", i+1), x, 42, 16, c)
		x += 18
	}
	reverb := ColTextDim
	if s.Reverb {
		reverb = ColOn
	}
	a.drawText("reverb", x+10, 42, 16, reverb)

	vals := a.Recorder.Values()
	a.drawText(fmt.Sprintf("scale %s   voice %s   speed %.0f   notes %.0f", s.Scale, s.Voice, s.Speed, vals["notes"]),
		x+90, 42, 16, ColText)
	a.drawText("[SPACE] START/STOP  [1-5] BODIES  [S] SCALE  [V] VOICE  [R] REVERB  [+/-] SPEED  [H] HELP  [Q] QUIT",
		margin, int(int32(a.bounds.Height))+hudHeight-16, 12, ColTextDim)
}

func (a *App) drawHelp() {
	w, h := int32(420), int32(220)
	x := int32(a.bounds.Width)/2 + margin - w/2
	y := int32(a.bounds.Height)/2 + hudHeight - h/2
	rl.DrawRectangle(x, y, w, h, rl.NewColor(0, 0, 0, 220))
	rl.DrawRectangleLines(x, y, w, h, ColBorder)

	lines := []string{
		"chime",
		"",
		"Circles bounce around the field. Each wall or",
		"circle hit plays a random note from the scale,",
		"never the same note twice in a row.",
		"",
		"Scale changes apply immediately; bodies, voice,",
		"speed and reverb apply on the next start.",
		"",
		"press any key",
	}
	for i, l := range lines {
		c := ColText
		if i == 0 {
			c = ColSelect
		}
		a.drawText(l, int(x)+16, int(y)+14+i*19, 16, c)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
