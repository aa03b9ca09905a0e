package voice

import "sync"

const polyphony = 8

// poly spreads notes over several basic voices so earlier notes keep
// ringing through their release while new ones start.
type poly struct {
	mu      sync.Mutex
	voices  []*mono
	next    int
	scratch []float32
}

func newPoly(sr float64, n int) *poly {
	p := &poly{voices: make([]*mono, n)}
	for i := range p.voices {
		p.voices[i] = newMono(Basic, sr, &basicGen{})
	}
	return p
}

func (p *poly) Kind() Kind { return Poly }

func (p *poly) SoundNote(pitch string, d Duration) {
	p.mu.Lock()
	v := p.allocate()
	p.mu.Unlock()
	v.SoundNote(pitch, d)
}

// allocate prefers an idle voice and otherwise steals round-robin.
func (p *poly) allocate() *mono {
	for i := range p.voices {
		idx := (p.next + i) % len(p.voices)
		if p.voices[idx].Idle() {
			p.next = (idx + 1) % len(p.voices)
			return p.voices[idx]
		}
	}
	v := p.voices[p.next]
	p.next = (p.next + 1) % len(p.voices)
	return v
}

func (p *poly) Release() {
	for _, v := range p.voices {
		v.Release()
	}
}

func (p *poly) Idle() bool {
	for _, v := range p.voices {
		if !v.Idle() {
			return false
		}
	}
	return true
}

// Active returns how many sub-voices are sounding.
func (p *poly) Active() int {
	n := 0
	for _, v := range p.voices {
		if !v.Idle() {
			n++
		}
	}
	return n
}

func (p *poly) Process(dst []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cap(p.scratch) < len(dst) {
		p.scratch = make([]float32, len(dst))
	}
	buf := p.scratch[:len(dst)]
	clear(dst)
	for _, v := range p.voices {
		if v.Idle() {
			continue
		}
		v.Process(buf)
		for i, s := range buf {
			dst[i] += s
		}
	}
}
