package sim

import (
	"math/rand"

	"github.com/san-kum/chime/internal/log"
	"github.com/san-kum/chime/internal/scale"
	"github.com/san-kum/chime/internal/voice"
)

// NoteDuration is how long each collision note rings before release.
const NoteDuration = voice.Eighth

// NoteTrigger turns collisions into notes on the colliding body's voice.
type NoteTrigger struct {
	rng    *rand.Rand
	voices map[int]Voice
	log    *log.Logger
}

// NewNoteTrigger binds a trigger to the voices of one run, keyed by body ID.
func NewNoteTrigger(rng *rand.Rand, voices map[int]Voice, logger *log.Logger) *NoteTrigger {
	if logger == nil {
		logger = log.Nop()
	}
	return &NoteTrigger{rng: rng, voices: voices, log: logger}
}

// OnCollision draws a pitch class uniformly from sc and plays it in octave
// 4 on b's voice. A draw equal to the body's previous note is dropped:
// nothing sounds and b is unchanged.
func (t *NoteTrigger) OnCollision(b *Body, sc scale.Scale) (note string, sounded bool) {
	note = scale.WithOctave(sc.At(t.rng.Intn(sc.Len())))
	if note == b.LastNote {
		return note, false
	}
	b.LastNote = note

	v, ok := t.voices[b.ID]
	if !ok {
		t.log.Debugf("body %d has no voice, %s not played", b.ID, note)
		return note, true
	}
	v.SoundNote(note, NoteDuration)
	return note, true
}
