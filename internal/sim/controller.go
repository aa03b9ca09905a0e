package sim

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/chime/internal/frame"
	"github.com/san-kum/chime/internal/log"
	"github.com/san-kum/chime/internal/scale"
)

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Controller owns the bodies and voices of a run and drives the per-frame
// update: move, wall notes, pair detection, velocity swap, pair notes,
// draw, reschedule.
//
// All mutating methods share one lock, so a Controller can be ticked from
// a frame.Ticker goroutine while another goroutine calls Stop. Observers
// run under that lock and must not call back into the Controller.
type Controller struct {
	mu        sync.Mutex
	surface   Surface
	voices    VoiceFactory
	sched     frame.Scheduler
	settings  Settings
	observers []Observer
	rng       *rand.Rand
	log       *log.Logger

	state   State
	bounds  Bounds
	bodies  []*Body
	bound   map[int]Voice
	trigger *NoteTrigger
	scale   scale.Scale
	handle  frame.Handle
	gen     uint64
	frame   int
}

func NewController(surface Surface, voices VoiceFactory, sched frame.Scheduler, settings Settings) *Controller {
	return &Controller{
		surface:   surface,
		voices:    voices,
		sched:     sched,
		settings:  settings,
		observers: make([]Observer, 0),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       log.Nop(),
	}
}

func (c *Controller) AddObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// SetRand replaces the random source used for placement, colour and notes.
func (c *Controller) SetRand(rng *rand.Rand) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng = rng
}

func (c *Controller) SetLogger(l *log.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l.With("sim")
}

// Settings returns the settings the next Start will use.
func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// UpdateSettings edits the settings read by the next Start. A scale change
// also applies to the current run from the next trigger on; everything else
// waits for a restart.
func (c *Controller) UpdateSettings(fn func(*Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.settings)
	if c.state == Running {
		c.scale = c.lookupScale(c.settings.Scale)
	}
}

// SetScale switches the scale; a running simulation picks it up on its
// next trigger.
func (c *Controller) SetScale(name string) {
	c.UpdateSettings(func(s *Settings) { s.Scale = name })
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Running() bool { return c.State() == Running }

// Frame returns the number of ticks run since the last Start.
func (c *Controller) Frame() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Bodies returns a copy of the current bodies.
func (c *Controller) Bodies() []Body {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Body, len(c.bodies))
	for i, b := range c.bodies {
		out[i] = *b
	}
	return out
}

// Start builds a fresh set of bodies and voices from the settings and
// schedules the first frame.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		return ErrAlreadyRunning
	}

	s := c.settings
	c.bodies = make([]*Body, 0, MaxSlots)
	c.bound = make(map[int]Voice, MaxSlots)
	for slot, enabled := range s.Slots {
		if !enabled {
			continue
		}
		b := c.spawn(slot, s)
		c.bodies = append(c.bodies, b)

		v := c.voices.NewVoice(s.Voice)
		if s.Reverb {
			v.ConnectReverb()
		}
		c.bound[b.ID] = v
	}

	c.bounds = s.Bounds
	c.scale = c.lookupScale(s.Scale)
	c.trigger = NewNoteTrigger(c.rng, c.bound, c.log)
	c.frame = 0
	c.gen++
	c.state = Running
	c.schedule()

	c.log.Infof("started: %d bodies, scale=%s voice=%s reverb=%t speed=%.1f",
		len(c.bodies), c.scale.Name(), s.Voice, s.Reverb, s.Speed)
	return nil
}

func (c *Controller) spawn(slot int, s Settings) *Body {
	b := NewBody(slot, slot+1)
	b.X = c.rng.Float64() * s.Bounds.Width
	b.Y = c.rng.Float64() * s.Bounds.Height
	b.VX = (c.rng.Float64() - 0.5) * s.Speed
	b.VY = (c.rng.Float64() - 0.5) * s.Speed
	r, g, bl := colorful.Hsl(c.rng.Float64()*360, 1.0, 0.7).RGB255()
	b.Color = color.RGBA{R: r, G: g, B: bl, A: 255}
	return b
}

func (c *Controller) lookupScale(name string) scale.Scale {
	sc, ok := scale.Lookup(name)
	if !ok {
		c.log.Warnf("unknown scale %q, using %s", name, sc.Name())
	}
	return sc
}

// Stop cancels the pending frame, clears the surface and releases every
// voice. Bodies and voices are discarded; the next Start builds new ones.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return ErrNotRunning
	}

	c.sched.Cancel(c.handle)
	c.handle = 0
	c.gen++
	c.surface.Clear()
	for _, b := range c.bodies {
		if v, ok := c.bound[b.ID]; ok {
			v.Release()
		}
	}
	c.log.Infof("stopped after %d frames", c.frame)

	c.bodies = nil
	c.bound = nil
	c.trigger = nil
	c.state = Stopped
	return nil
}

// Toggle starts a stopped simulation and stops a running one.
func (c *Controller) Toggle() error {
	if c.Running() {
		return c.Stop()
	}
	return c.Start()
}

// Tick runs one frame right away, outside the frame schedule. It does
// nothing unless the simulation is running.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick()
}

func (c *Controller) schedule() {
	gen := c.gen
	c.handle = c.sched.Request(func() { c.scheduledTick(gen) })
}

// scheduledTick drops frames requested by a run that has since stopped.
func (c *Controller) scheduledTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.handle = 0
	c.tick()
	if c.state == Running {
		c.schedule()
	}
}

func (c *Controller) tick() {
	if c.state != Running {
		return
	}
	c.frame++
	report := FrameReport{Frame: c.frame}

	for _, b := range c.bodies {
		for _, ev := range Advance(b, c.bounds) {
			report.Events = append(report.Events, ev)
			c.play(&report, b, ev.Kind)
		}
	}

	report.Pairs = DetectPairs(c.bodies)
	for _, p := range report.Pairs {
		a, b := c.bodies[p.I], c.bodies[p.J]
		Resolve(a, b)
		report.Events = append(report.Events, Event{Kind: PairHit, Body: a.ID}, Event{Kind: PairHit, Body: b.ID})
		c.play(&report, a, PairHit)
		c.play(&report, b, PairHit)
	}

	c.surface.Clear()
	for _, b := range c.bodies {
		c.surface.DrawCircle(b.X, b.Y, b.Radius, b.Color)
	}

	for _, o := range c.observers {
		o.OnFrame(report)
	}
}

func (c *Controller) play(r *FrameReport, b *Body, cause EventKind) {
	note, sounded := c.trigger.OnCollision(b, c.scale)
	r.Notes = append(r.Notes, NoteEvent{Body: b.ID, Cause: cause, Note: note, Sounded: sounded})
}
