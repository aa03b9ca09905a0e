package voice

import (
	"sync"

	"github.com/san-kum/chime/internal/scale"
)

const monoGain = 0.3

// mono plays one note at a time; a new note retriggers the envelope.
type mono struct {
	mu   sync.Mutex
	kind Kind
	sr   float64
	gen  generator
	env  envelope
	freq float64
	hold int // samples until the scheduled release, 0 when none is pending
}

func newMono(kind Kind, sr float64, gen generator) *mono {
	return &mono{
		kind: kind,
		sr:   sr,
		gen:  gen,
		env:  newEnvelope(gen.envelope(), sr),
	}
}

func (m *mono) Kind() Kind { return m.kind }

func (m *mono) SoundNote(pitch string, d Duration) {
	f, err := scale.Frequency(pitch)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.freq = f
	m.hold = int(d.Seconds() * m.sr)
	if m.hold < 1 {
		m.hold = 1
	}
	m.gen.trigger()
	m.env.gateOn()
}

func (m *mono) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hold = 0
	m.env.gateOff()
}

func (m *mono) Idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.env.idle()
}

func (m *mono) Process(dst []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i+1 < len(dst); i += 2 {
		if m.hold > 0 {
			m.hold--
			if m.hold == 0 {
				m.env.gateOff()
			}
		}
		amp := m.env.next()
		if amp == 0 {
			dst[i], dst[i+1] = 0, 0
			continue
		}
		s := float32(m.gen.next(m.freq, m.sr) * amp * monoGain)
		dst[i], dst[i+1] = s, s
	}
}
