// Package voice implements the synthesizer voices bound to moving bodies.
//
// A voice is a small software synth: SoundNote starts a note with an attack
// and schedules its release after a musical duration, Release silences it
// immediately, and Process renders interleaved stereo samples for the mixer.
// Note commands are fire-and-forget and safe to issue from the frame loop
// while the audio thread is rendering.
package voice

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the closed set of voice types a simulation can be started with.
type Kind int

const (
	Basic Kind = iota
	AM
	FM
	Duo
	Poly
)

// DefaultKind is used for unknown selectors.
const DefaultKind = Basic

var kindNames = [...]string{
	Basic: "synth",
	AM:    "amsynth",
	FM:    "fmsynth",
	Duo:   "duosynth",
	Poly:  "polysynth",
}

var kindAliases = map[string]Kind{
	"basic": Basic,
	"am":    AM,
	"fm":    FM,
	"duo":   Duo,
	"poly":  Poly,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a selector to a Kind. Unknown selectors map to DefaultKind
// with ok=false.
func ParseKind(s string) (k Kind, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name {
			return Kind(i), true
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, true
	}
	return DefaultKind, false
}

// Kinds lists every voice kind in selector order.
func Kinds() []Kind {
	return []Kind{Basic, AM, FM, Duo, Poly}
}

// Next cycles through the kinds, wrapping around.
func (k Kind) Next(step int) Kind {
	n := len(kindNames)
	return Kind(((int(k)+step)%n + n) % n)
}

// Duration is a musical note-length token such as "8n".
type Duration string

const (
	Whole     Duration = "1n"
	Half      Duration = "2n"
	Quarter   Duration = "4n"
	Eighth    Duration = "8n"
	Sixteenth Duration = "16n"
)

// Tempo in beats per minute used to turn duration tokens into time.
const Tempo = 120.0

// ParseDuration validates a "<n>n" token where n is a power of two up to 64.
func ParseDuration(s string) (Duration, error) {
	d := Duration(strings.TrimSpace(s))
	if _, err := d.division(); err != nil {
		return "", err
	}
	return d, nil
}

func (d Duration) division() (int, error) {
	if !strings.HasSuffix(string(d), "n") {
		return 0, fmt.Errorf("voice: invalid duration %q", string(d))
	}
	n, err := strconv.Atoi(strings.TrimSuffix(string(d), "n"))
	if err != nil || n <= 0 || n > 64 || n&(n-1) != 0 {
		return 0, fmt.Errorf("voice: invalid duration %q", string(d))
	}
	return n, nil
}

// Seconds returns the length of the token at Tempo. Invalid tokens last an
// eighth note.
func (d Duration) Seconds() float64 {
	n, err := d.division()
	if err != nil {
		n = 8
	}
	beat := 60.0 / Tempo
	return beat * 4 / float64(n)
}

type Voice interface {
	// SoundNote attacks pitch (e.g. "C#4") and releases it after d.
	// Unparseable pitches are ignored.
	SoundNote(pitch string, d Duration)
	// Release silences whatever is sounding without naming a pitch.
	Release()
	// Process overwrites dst with interleaved stereo samples.
	Process(dst []float32)
	// Idle reports whether the voice has fully decayed.
	Idle() bool
	Kind() Kind
}

// New builds a voice of the given kind rendering at sampleRate.
func New(kind Kind, sampleRate int) Voice {
	sr := float64(sampleRate)
	switch kind {
	case AM:
		return newMono(AM, sr, &amGen{harmonicity: 3})
	case FM:
		return newMono(FM, sr, &fmGen{harmonicity: 3, index: 10, rise: 0.5})
	case Duo:
		return newMono(Duo, sr, &duoGen{harmonicity: 1.5, vibratoRate: 5, vibratoDepth: 0.5})
	case Poly:
		return newPoly(sr, polyphony)
	default:
		return newMono(Basic, sr, &basicGen{})
	}
}
