package audio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/chime/internal/log"
)

var ErrUnknownBackend = errors.New("audio: unknown backend")

const (
	BackendPortAudio = "portaudio"
	BackendEbiten    = "ebiten"
	BackendNone      = "none"
)

// Output drives a Mixer from a sound device.
type Output interface {
	Start() error
	Stop() error
	Name() string
}

func Backends() []string {
	return []string{BackendPortAudio, BackendEbiten, BackendNone}
}

// New returns the output for a backend name. It does not touch the device
// until Start is called.
func New(backend string, m *Mixer, logger *log.Logger) (Output, error) {
	logger = logger.With("audio")
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendPortAudio, "":
		return &PortAudioOutput{mixer: m, log: logger}, nil
	case BackendEbiten:
		return &EbitenOutput{mixer: m, log: logger}, nil
	case BackendNone, "silent":
		return Silent{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Open creates and starts an output. A device that fails to start is
// logged and replaced by Silent so the simulation keeps running.
func Open(backend string, m *Mixer, logger *log.Logger) (Output, error) {
	out, err := New(backend, m, logger)
	if err != nil {
		return nil, err
	}
	if err := out.Start(); err != nil {
		logger.With("audio").Errorf("%s unavailable, running silent: %v", out.Name(), err)
		return Silent{}, nil
	}
	return out, nil
}

// Silent is an output that never pulls from the mixer.
type Silent struct{}

func (Silent) Start() error { return nil }
func (Silent) Stop() error  { return nil }
func (Silent) Name() string { return BackendNone }
