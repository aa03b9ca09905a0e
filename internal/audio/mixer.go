package audio

import (
	"sync"
	"sync/atomic"

	"github.com/san-kum/chime/internal/effects"
	"github.com/san-kum/chime/internal/sim"
	"github.com/san-kum/chime/internal/voice"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// ReverbDecay is the RT60 of the shared reverb in seconds.
	ReverbDecay = 2.0
)

// Mixer sums every live voice into a stereo bus. Voices connected to the
// reverb are also fed to a shared reverb whose output is added on top of
// the dry signal; the sum passes through a soft limiter.
//
// Mixer is the sim.VoiceFactory of a real run: voices it hands out keep
// rendering until released and fully decayed, then drop off the bus.
type Mixer struct {
	mu         sync.Mutex
	sampleRate int
	channels   []*Channel
	reverb     *effects.Reverb
	master     *effects.Chain
	scratch    []float32
	wet        []float32
}

func NewMixer(sampleRate int) *Mixer {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	return &Mixer{
		sampleRate: sampleRate,
		reverb:     effects.NewReverb(sampleRate, ReverbDecay, 1),
		master:     effects.NewChain(effects.NewLimiter(1.2, 0.9)),
	}
}

func (m *Mixer) SampleRate() int { return m.sampleRate }

// Channel is one voice on the mixer bus.
type Channel struct {
	v        voice.Voice
	send     atomic.Bool
	released atomic.Bool
}

func (c *Channel) SoundNote(pitch string, d voice.Duration) { c.v.SoundNote(pitch, d) }

func (c *Channel) Release() {
	c.released.Store(true)
	c.v.Release()
}

func (c *Channel) ConnectReverb() { c.send.Store(true) }

func (c *Channel) Kind() voice.Kind { return c.v.Kind() }

// NewVoice creates a voice of the given kind and adds it to the bus.
func (m *Mixer) NewVoice(kind voice.Kind) sim.Voice {
	return m.Add(voice.New(kind, m.sampleRate))
}

// Add puts an existing voice on the bus.
func (m *Mixer) Add(v voice.Voice) *Channel {
	ch := &Channel{v: v}
	m.mu.Lock()
	m.channels = append(m.channels, ch)
	m.mu.Unlock()
	return ch
}

// Channels returns how many voices are on the bus.
func (m *Mixer) Channels() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.channels)
}

// Process overwrites dst with the next interleaved stereo block.
func (m *Mixer) Process(dst []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cap(m.scratch) < len(dst) {
		m.scratch = make([]float32, len(dst))
		m.wet = make([]float32, len(dst))
	}
	buf := m.scratch[:len(dst)]
	wet := m.wet[:len(dst)]
	clear(dst)
	clear(wet)

	live := m.channels[:0]
	for _, ch := range m.channels {
		if ch.released.Load() && ch.v.Idle() {
			continue
		}
		live = append(live, ch)
		ch.v.Process(buf)
		send := ch.send.Load()
		for i, s := range buf {
			dst[i] += s
			if send {
				wet[i] += s
			}
		}
	}
	clear(m.channels[len(live):])
	m.channels = live

	for i := 0; i+1 < len(dst); i += 2 {
		wl, wr := m.reverb.Process(wet[i], wet[i+1])
		dst[i], dst[i+1] = m.master.Process(dst[i]+wl, dst[i+1]+wr)
	}
}

// Render returns the next frames stereo frames as interleaved samples.
func (m *Mixer) Render(frames int) []float32 {
	out := make([]float32, frames*2)
	m.Process(out)
	return out
}
