package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/san-kum/chime/internal/log"
)

// SampleSource fills dst with interleaved stereo samples.
type SampleSource interface {
	Process(dst []float32)
}

// StreamReader turns a SampleSource into the little-endian float32 byte
// stream ebiten players read from.
type StreamReader struct {
	mu     sync.Mutex
	source SampleSource
	buf    []float32
}

func NewStreamReader(source SampleSource) *StreamReader {
	return &StreamReader{source: source}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]
	r.source.Process(r.buf)
	for i, s := range r.buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return frames * 8, nil
}

var (
	contextOnce       sync.Once
	sharedContext     *ebitaudio.Context
	sharedContextRate int
)

// ebiten allows a single audio context per process.
func audioContext(sampleRate int) (*ebitaudio.Context, error) {
	contextOnce.Do(func() {
		sharedContextRate = sampleRate
		sharedContext = ebitaudio.NewContext(sampleRate)
	})
	if sharedContextRate != sampleRate {
		return nil, fmt.Errorf("audio context already running at %d Hz (requested %d Hz)", sharedContextRate, sampleRate)
	}
	return sharedContext, nil
}

// EbitenOutput plays the mixer through ebiten's audio context.
type EbitenOutput struct {
	mixer  *Mixer
	player *ebitaudio.Player
	log    *log.Logger
}

func (o *EbitenOutput) Name() string { return BackendEbiten }

func (o *EbitenOutput) Start() error {
	ctx, err := audioContext(o.mixer.SampleRate())
	if err != nil {
		return err
	}
	pl, err := ctx.NewPlayerF32(NewStreamReader(o.mixer))
	if err != nil {
		return fmt.Errorf("ebiten player: %w", err)
	}
	pl.Play()
	o.player = pl
	o.log.Infof("ebiten audio started at %d Hz", o.mixer.SampleRate())
	return nil
}

func (o *EbitenOutput) Stop() error {
	if o.player == nil {
		return nil
	}
	o.player.Pause()
	err := o.player.Close()
	o.player = nil
	return err
}
