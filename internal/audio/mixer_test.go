package audio

import (
	"testing"

	"github.com/san-kum/chime/internal/voice"
)

type constVoice struct {
	level    float32
	idle     bool
	released int
}

func (v *constVoice) SoundNote(string, voice.Duration) {}
func (v *constVoice) Release()                         { v.released++ }
func (v *constVoice) Idle() bool                       { return v.idle }
func (v *constVoice) Kind() voice.Kind                 { return voice.Basic }

func (v *constVoice) Process(dst []float32) {
	for i := range dst {
		dst[i] = v.level
	}
}

func TestMixerSilentWithoutVoices(t *testing.T) {
	m := NewMixer(SampleRate)
	out := m.Render(512)
	if len(out) != 1024 {
		t.Fatalf("Render(512) returned %d samples, want 1024", len(out))
	}
	for i, s := range out {
		if s != 0 {
			t.Fatalf("sample %d = %v, want 0", i, s)
		}
	}
}

func TestMixerSumsVoices(t *testing.T) {
	m := NewMixer(SampleRate)
	m.Add(&constVoice{level: 0.1})
	m.Add(&constVoice{level: 0.2})

	single := NewMixer(SampleRate)
	single.Add(&constVoice{level: 0.1})

	a, b := m.Render(64), single.Render(64)
	if a[10] <= b[10] {
		t.Errorf("two voices (%v) should be louder than one (%v)", a[10], b[10])
	}
}

func TestMixerOutputIsLimited(t *testing.T) {
	m := NewMixer(SampleRate)
	for i := 0; i < 8; i++ {
		m.Add(&constVoice{level: 1})
	}
	for i, s := range m.Render(256) {
		if s > 1 || s < -1 {
			t.Fatalf("sample %d = %v escapes [-1, 1]", i, s)
		}
	}
}

func TestMixerReverbSendAddsTail(t *testing.T) {
	dry := NewMixer(SampleRate)
	dryVoice := &constVoice{level: 0.2}
	dry.Add(dryVoice)

	wet := NewMixer(SampleRate)
	wetVoice := &constVoice{level: 0.2}
	wet.Add(wetVoice).ConnectReverb()

	dry.Render(SampleRate / 10)
	wet.Render(SampleRate / 10)
	dryVoice.level, wetVoice.level = 0, 0

	if RMS(dry.Render(1024)) != 0 {
		t.Error("dry mixer should be silent once its voice is")
	}
	if RMS(wet.Render(1024)) == 0 {
		t.Error("reverb send should leave a tail after the voice stops")
	}
}

func TestMixerDropsReleasedIdleChannels(t *testing.T) {
	m := NewMixer(SampleRate)
	keep := &constVoice{}
	gone := &constVoice{idle: true}
	ringing := &constVoice{level: 0.1}

	m.Add(keep)
	m.Add(gone).Release()
	m.Add(ringing).Release()
	m.Render(16)

	if got := m.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2", got)
	}
	if gone.released != 1 || ringing.released != 1 {
		t.Error("Release should reach the underlying voice")
	}

	ringing.idle = true
	m.Render(16)
	if got := m.Channels(); got != 1 {
		t.Errorf("Channels() = %d after decay, want 1", got)
	}
}

func TestMixerNewVoiceUsesKind(t *testing.T) {
	m := NewMixer(SampleRate)
	for _, k := range voice.Kinds() {
		v := m.NewVoice(k)
		ch, ok := v.(*Channel)
		if !ok {
			t.Fatalf("NewVoice(%v) returned %T", k, v)
		}
		if ch.Kind() != k {
			t.Errorf("channel kind = %v, want %v", ch.Kind(), k)
		}
	}
	if got := m.Channels(); got != len(voice.Kinds()) {
		t.Errorf("Channels() = %d, want %d", got, len(voice.Kinds()))
	}
}
