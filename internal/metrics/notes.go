package metrics

import "github.com/san-kum/chime/internal/sim"

// Notes counts notes that sounded.
type Notes struct {
	count int
}

func NewNotes() *Notes { return &Notes{} }

func (n *Notes) Name() string { return "notes" }

func (n *Notes) Observe(r sim.FrameReport) { n.count += r.Sounded() }

func (n *Notes) Value() float64 { return float64(n.count) }

func (n *Notes) Reset() { n.count = 0 }

// Suppressed counts triggers that drew the body's previous note and stayed
// silent.
type Suppressed struct {
	count int
}

func NewSuppressed() *Suppressed { return &Suppressed{} }

func (s *Suppressed) Name() string { return "suppressed" }

func (s *Suppressed) Observe(r sim.FrameReport) {
	s.count += len(r.Notes) - r.Sounded()
}

func (s *Suppressed) Value() float64 { return float64(s.count) }

func (s *Suppressed) Reset() { s.count = 0 }

// NoteRate is the mean number of notes sounded per frame.
type NoteRate struct {
	notes   int
	samples int
}

func NewNoteRate() *NoteRate { return &NoteRate{} }

func (n *NoteRate) Name() string { return "notes_per_frame" }

func (n *NoteRate) Observe(r sim.FrameReport) {
	n.notes += r.Sounded()
	n.samples++
}

func (n *NoteRate) Value() float64 {
	if n.samples == 0 {
		return 0
	}
	return float64(n.notes) / float64(n.samples)
}

func (n *NoteRate) Reset() {
	n.notes = 0
	n.samples = 0
}
