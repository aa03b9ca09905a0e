package effects

import "math"

// comb and allpass delay lengths in seconds
var (
	combDelays    = [4]float64{0.0297, 0.0371, 0.0411, 0.0437}
	allpassDelays = [2]float64{0.0050, 0.0017}
)

// Reverb is a Schroeder reverb: four parallel feedback combs followed by
// two allpass diffusers. Comb feedback is derived from the decay time so the
// tail falls by 60 dB after roughly decay seconds.
type Reverb struct {
	combs   [4]combFilter
	allpass [2]allpassFilter
	wet     float32
	decay   float64
}

type combFilter struct {
	buf []float32
	pos int
	fb  float32
}

type allpassFilter struct {
	buf []float32
	pos int
	fb  float32
}

// NewReverb builds a reverb. decay is the RT60 in seconds, wet the output
// mix in 0..1 (1 returns only the reverberated signal).
func NewReverb(sampleRate int, decay float64, wet float32) *Reverb {
	if decay <= 0 {
		decay = 0.1
	}
	r := &Reverb{wet: clamp(wet, 0, 1), decay: decay}
	for i, d := range combDelays {
		n := maxInt(int(d*float64(sampleRate)), 1)
		fb := math.Pow(10, -3*d/decay)
		r.combs[i] = combFilter{
			buf: make([]float32, n),
			fb:  clamp(float32(fb), 0, 0.98),
		}
	}
	for i, d := range allpassDelays {
		r.allpass[i] = allpassFilter{
			buf: make([]float32, maxInt(int(d*float64(sampleRate)), 1)),
			fb:  0.5,
		}
	}
	return r
}

func (r *Reverb) Decay() float64 { return r.decay }

func (r *Reverb) Process(l, r2 float32) (float32, float32) {
	mono := (l + r2) * 0.5
	var out float32
	for i := range r.combs {
		out += r.combs[i].process(mono)
	}
	out *= 0.25
	for i := range r.allpass {
		out = r.allpass[i].process(out)
	}
	return l*(1-r.wet) + out*r.wet, r2*(1-r.wet) + out*r.wet
}

func (r *Reverb) Reset() {
	for i := range r.combs {
		clear(r.combs[i].buf)
		r.combs[i].pos = 0
	}
	for i := range r.allpass {
		clear(r.allpass[i].buf)
		r.allpass[i].pos = 0
	}
}

func (c *combFilter) process(in float32) float32 {
	out := c.buf[c.pos]
	c.buf[c.pos] = in + out*c.fb
	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	return out
}

func (a *allpassFilter) process(in float32) float32 {
	bufOut := a.buf[a.pos]
	out := -in + bufOut
	a.buf[a.pos] = in + bufOut*a.fb
	a.pos++
	if a.pos >= len(a.buf) {
		a.pos = 0
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
