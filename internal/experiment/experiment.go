// Package experiment runs the simulation without a screen: a fixed number
// of frames stepped as fast as possible, with metrics and optional offline
// audio.
package experiment

import (
	"context"
	"errors"
	"image/color"
	"math/rand"
	"time"

	"github.com/san-kum/chime/internal/audio"
	"github.com/san-kum/chime/internal/frame"
	"github.com/san-kum/chime/internal/log"
	"github.com/san-kum/chime/internal/metrics"
	"github.com/san-kum/chime/internal/sim"
)

var ErrNoFrames = errors.New("experiment: frame count must be positive")

type Config struct {
	Settings   sim.Settings
	Frames     int
	FPS        int
	SampleRate int
	Seed       int64
	// Render mixes the voices offline, one frame's worth of samples per
	// frame.
	Render bool
}

type Result struct {
	Frames     int
	Elapsed    time.Duration
	Metrics    map[string]float64
	Series     []float64
	Audio      []float32
	SampleRate int
}

// Duration is the simulated wall time of the run.
func (r *Result) Duration(fps int) time.Duration {
	return time.Duration(r.Frames) * time.Second / time.Duration(fps)
}

type Experiment struct {
	cfg   Config
	mixer *audio.Mixer
	ctrl  *sim.Controller
	queue *frame.Queue
	rec   *metrics.Recorder
	log   *log.Logger
}

func New(cfg Config, logger *log.Logger) *Experiment {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = audio.SampleRate
	}
	e := &Experiment{
		cfg:   cfg,
		mixer: audio.NewMixer(cfg.SampleRate),
		queue: frame.NewQueue(),
		rec:   metrics.NewRecorder(0, metrics.Default()...),
		log:   logger.With("experiment"),
	}
	e.ctrl = sim.NewController(blankSurface{}, e.mixer, e.queue, cfg.Settings)
	e.ctrl.SetRand(rand.New(rand.NewSource(cfg.Seed)))
	e.ctrl.SetLogger(logger)
	e.ctrl.AddObserver(e.rec)
	return e
}

// AddObserver registers an extra per-frame observer.
func (e *Experiment) AddObserver(o sim.Observer) {
	e.ctrl.AddObserver(o)
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.cfg.Frames <= 0 {
		return nil, ErrNoFrames
	}
	if err := e.ctrl.Start(); err != nil {
		return nil, err
	}
	defer func() {
		if e.ctrl.Running() {
			e.ctrl.Stop()
		}
	}()

	var samples []float32
	if e.cfg.Render {
		total := e.cfg.Frames * e.cfg.SampleRate / e.cfg.FPS
		samples = make([]float32, 0, 2*total)
	}

	start := time.Now()
	rendered := 0
	for i := 0; i < e.cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.queue.Step()
		if e.cfg.Render {
			// frame i ends at sample (i+1)*sr/fps
			end := (i + 1) * e.cfg.SampleRate / e.cfg.FPS
			samples = append(samples, e.mixer.Render(end-rendered)...)
			rendered = end
		}
	}
	e.log.Debugf("%d frames in %v", e.cfg.Frames, time.Since(start))

	return &Result{
		Frames:     e.ctrl.Frame(),
		Elapsed:    time.Since(start),
		Metrics:    e.rec.Values(),
		Series:     e.rec.Series(),
		Audio:      samples,
		SampleRate: e.cfg.SampleRate,
	}, nil
}

// Tail renders d more audio after the run so released voices and the
// reverb can ring out.
func (e *Experiment) Tail(d time.Duration) []float32 {
	return e.mixer.Render(int(d.Seconds() * float64(e.cfg.SampleRate)))
}

type blankSurface struct{}

func (blankSurface) Clear()                                   {}
func (blankSurface) DrawCircle(_, _, _ float64, _ color.RGBA) {}
