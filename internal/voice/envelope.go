package voice

// Envelope is an ADSR shape. Times are in seconds, Sustain is a level in 0..1.
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

type envStage int

const (
	envOff envStage = iota
	envAttack
	envDecay
	envSustain
	envRelease
)

type envelope struct {
	shape   Envelope
	sr      float64
	stage   envStage
	level   float64
	relStep float64
}

func newEnvelope(shape Envelope, sr float64) envelope {
	return envelope{shape: shape, sr: sr}
}

// gateOn restarts the attack from the current level so retriggers do not click.
func (e *envelope) gateOn() {
	e.stage = envAttack
}

func (e *envelope) gateOff() {
	if e.stage == envOff || e.stage == envRelease {
		return
	}
	e.stage = envRelease
	e.relStep = e.level / e.samples(e.shape.Release)
}

func (e *envelope) samples(sec float64) float64 {
	n := sec * e.sr
	if n < 1 {
		return 1
	}
	return n
}

func (e *envelope) next() float64 {
	switch e.stage {
	case envAttack:
		e.level += 1 / e.samples(e.shape.Attack)
		if e.level >= 1 {
			e.level = 1
			e.stage = envDecay
		}
	case envDecay:
		e.level -= (1 - e.shape.Sustain) / e.samples(e.shape.Decay)
		if e.level <= e.shape.Sustain {
			e.level = e.shape.Sustain
			e.stage = envSustain
		}
	case envSustain:
		e.level = e.shape.Sustain
	case envRelease:
		e.level -= e.relStep
		if e.level <= 0 {
			e.level = 0
			e.stage = envOff
		}
	case envOff:
		e.level = 0
	}
	return e.level
}

func (e *envelope) idle() bool {
	return e.stage == envOff
}
