package metrics

import "github.com/san-kum/chime/internal/sim"

// Hits counts collision events of one kind.
type Hits struct {
	name  string
	kind  sim.EventKind
	count int
}

func NewHits(kind sim.EventKind) *Hits {
	name := "wall_x_hits"
	switch kind {
	case sim.WallY:
		name = "wall_y_hits"
	case sim.PairHit:
		name = "pair_hits"
	}
	return &Hits{name: name, kind: kind}
}

func (h *Hits) Name() string { return h.name }

func (h *Hits) Observe(r sim.FrameReport) {
	if h.kind == sim.PairHit {
		h.count += len(r.Pairs)
		return
	}
	for _, e := range r.Events {
		if e.Kind == h.kind {
			h.count++
		}
	}
}

func (h *Hits) Value() float64 { return float64(h.count) }

func (h *Hits) Reset() { h.count = 0 }
