package voice

import "math"

const twoPi = 2 * math.Pi

// Oscillator shapes take a phase in cycles.

func sine(phase float64) float64 {
	return math.Sin(twoPi * phase)
}

// triangle is smooth and flute-like
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func square(phase float64) float64 {
	if phase-math.Floor(phase) < 0.5 {
		return 1
	}
	return -1
}

func advance(phase, freq, sr float64) float64 {
	phase += freq / sr
	if phase >= 1 {
		phase -= math.Floor(phase)
	}
	return phase
}

// generator produces raw oscillator output for a mono voice.
type generator interface {
	envelope() Envelope
	// trigger is called on every note-on.
	trigger()
	next(freq, sr float64) float64
}

type basicGen struct {
	phase float64
}

func (g *basicGen) envelope() Envelope {
	return Envelope{Attack: 0.005, Decay: 0.1, Sustain: 0.3, Release: 1}
}

func (g *basicGen) trigger() {}

func (g *basicGen) next(freq, sr float64) float64 {
	out := triangle(g.phase)
	g.phase = advance(g.phase, freq, sr)
	return out
}

// amGen multiplies a sine carrier by a square modulator at a harmonic of
// the note.
type amGen struct {
	harmonicity float64
	carrier     float64
	modulator   float64
}

func (g *amGen) envelope() Envelope {
	return Envelope{Attack: 0.01, Decay: 0.01, Sustain: 1, Release: 0.5}
}

func (g *amGen) trigger() {}

func (g *amGen) next(freq, sr float64) float64 {
	amp := (square(g.modulator) + 1) / 2
	out := sine(g.carrier) * (0.5 + 0.5*amp)
	g.carrier = advance(g.carrier, freq, sr)
	g.modulator = advance(g.modulator, freq*g.harmonicity, sr)
	return out
}

// fmGen is a two-operator FM pair whose modulation depth rises to index
// over rise seconds after each note-on.
type fmGen struct {
	harmonicity float64
	index       float64
	rise        float64
	carrier     float64
	modulator   float64
	elapsed     float64
}

func (g *fmGen) envelope() Envelope {
	return Envelope{Attack: 0.01, Decay: 0.01, Sustain: 1, Release: 0.5}
}

func (g *fmGen) trigger() { g.elapsed = 0 }

func (g *fmGen) next(freq, sr float64) float64 {
	depth := g.index
	if g.rise > 0 && g.elapsed < g.rise {
		depth *= g.elapsed / g.rise
	}
	g.elapsed += 1 / sr
	mod := sine(g.modulator) * depth
	out := math.Sin(twoPi*g.carrier + mod)
	g.carrier = advance(g.carrier, freq, sr)
	g.modulator = advance(g.modulator, freq*g.harmonicity, sr)
	return out
}

// duoGen detunes two oscillators by harmonicity and shares a vibrato LFO.
type duoGen struct {
	harmonicity  float64
	vibratoRate  float64
	vibratoDepth float64 // semitones
	a, b, lfo    float64
}

func (g *duoGen) envelope() Envelope {
	return Envelope{Attack: 0.01, Decay: 0, Sustain: 1, Release: 0.5}
}

func (g *duoGen) trigger() {}

func (g *duoGen) next(freq, sr float64) float64 {
	bend := math.Pow(2, g.vibratoDepth*sine(g.lfo)/12)
	out := 0.5*triangle(g.a) + 0.5*sine(g.b)
	g.a = advance(g.a, freq*bend, sr)
	g.b = advance(g.b, freq*g.harmonicity*bend, sr)
	g.lfo = advance(g.lfo, g.vibratoRate, sr)
	return out
}
