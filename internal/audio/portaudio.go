package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/chime/internal/log"
)

// PortAudioOutput plays the mixer through the default PortAudio device.
type PortAudioOutput struct {
	stream *portaudio.Stream
	mixer  *Mixer
	buf    []float32
	log    *log.Logger
}

func (o *PortAudioOutput) Name() string { return BackendPortAudio }

func (o *PortAudioOutput) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init: %w", err)
	}
	// output only; duplex streams often fail on Linux when devices differ
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(o.mixer.SampleRate()), BufferSize, o.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("portaudio open: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("portaudio start: %w", err)
	}
	o.stream = stream
	o.log.Infof("portaudio started at %d Hz", o.mixer.SampleRate())
	return nil
}

func (o *PortAudioOutput) Stop() error {
	if o.stream == nil {
		return nil
	}
	o.stream.Stop()
	err := o.stream.Close()
	o.stream = nil
	portaudio.Terminate()
	return err
}

func (o *PortAudioOutput) process(out [][]float32) {
	n := len(out[0])
	if cap(o.buf) < 2*n {
		o.buf = make([]float32, 2*n)
	}
	buf := o.buf[:2*n]
	o.mixer.Process(buf)
	for i := 0; i < n; i++ {
		out[0][i] = buf[2*i]
		out[1][i] = buf[2*i+1]
	}
}
