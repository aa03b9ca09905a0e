package sim

import (
	"image/color"

	"github.com/san-kum/chime/internal/voice"
)

type circle struct {
	x, y, r float64
	c       color.RGBA
}

type recordingSurface struct {
	clears int
	drawn  []circle
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.drawn = s.drawn[:0]
}

func (s *recordingSurface) DrawCircle(x, y, r float64, c color.RGBA) {
	s.drawn = append(s.drawn, circle{x, y, r, c})
}

type fakeVoice struct {
	kind      voice.Kind
	notes     []string
	durations []voice.Duration
	releases  int
	reverb    int
}

func (v *fakeVoice) SoundNote(pitch string, d voice.Duration) {
	v.notes = append(v.notes, pitch)
	v.durations = append(v.durations, d)
}

func (v *fakeVoice) Release()       { v.releases++ }
func (v *fakeVoice) ConnectReverb() { v.reverb++ }

type fakeFactory struct {
	voices []*fakeVoice
}

func (f *fakeFactory) NewVoice(kind voice.Kind) Voice {
	v := &fakeVoice{kind: kind}
	f.voices = append(f.voices, v)
	return v
}

type recordingObserver struct {
	reports []FrameReport
}

func (o *recordingObserver) OnFrame(r FrameReport) {
	o.reports = append(o.reports, r)
}
