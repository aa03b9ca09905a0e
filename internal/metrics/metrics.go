package metrics

import (
	"sync"

	"github.com/san-kum/chime/internal/sim"
)

// Metric folds frame reports into one number.
type Metric interface {
	Name() string
	Observe(r sim.FrameReport)
	Value() float64
	Reset()
}

// Default is the set printed after a headless run.
func Default() []Metric {
	return []Metric{
		NewHits(sim.WallX),
		NewHits(sim.WallY),
		NewHits(sim.PairHit),
		NewNotes(),
		NewSuppressed(),
		NewNoteRate(),
	}
}

var _ sim.Observer = (*Recorder)(nil)

// Recorder is a sim.Observer feeding a set of metrics and keeping the
// number of notes sounded on every frame.
type Recorder struct {
	mu      sync.Mutex
	metrics []Metric
	series  []float64
	limit   int
}

// NewRecorder records into ms. limit caps the series length; 0 keeps every
// frame.
func NewRecorder(limit int, ms ...Metric) *Recorder {
	return &Recorder{metrics: ms, limit: limit}
}

func (r *Recorder) OnFrame(rep sim.FrameReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.metrics {
		m.Observe(rep)
	}
	r.series = append(r.series, float64(rep.Sounded()))
	if r.limit > 0 && len(r.series) > r.limit {
		r.series = r.series[len(r.series)-r.limit:]
	}
}

// Series returns a copy of the notes-per-frame history.
func (r *Recorder) Series() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.series))
	copy(out, r.series)
	return out
}

func (r *Recorder) Metrics() []Metric {
	return r.metrics
}

// Values snapshots every metric by name.
func (r *Recorder) Values() map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.metrics {
		m.Reset()
	}
	r.series = r.series[:0]
}
