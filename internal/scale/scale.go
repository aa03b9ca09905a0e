// Package scale holds the catalog of musical scales notes are drawn from and
// the pitch-name arithmetic the synthesizer needs.
package scale

import (
	"strconv"
	"strings"
)

// Octave is appended to every pitch class drawn from a scale.
const Octave = 4

// Default is used whenever a requested scale name is unknown.
const Default = "tonal"

// Scale is an immutable named sequence of pitch classes such as "C", "F#"
// or "Bb". Pitch classes never carry an octave.
type Scale struct {
	name  string
	notes []string
}

func (s Scale) Name() string { return s.name }
func (s Scale) Len() int     { return len(s.notes) }

// At returns the i-th pitch class.
func (s Scale) At(i int) string { return s.notes[i] }

// Notes returns a copy of the pitch classes.
func (s Scale) Notes() []string {
	out := make([]string, len(s.notes))
	copy(out, s.notes)
	return out
}

// Contains reports whether pc (without octave) is one of the scale's pitch classes.
func (s Scale) Contains(pc string) bool {
	for _, n := range s.notes {
		if n == pc {
			return true
		}
	}
	return false
}

// WithOctave turns a pitch class into a playable pitch name, e.g. "F#" -> "F#4".
func WithOctave(pc string) string {
	return pc + strconv.Itoa(Octave)
}

// PitchClass strips the trailing octave from a pitch name, e.g. "Bb4" -> "Bb".
func PitchClass(note string) string {
	return strings.TrimRight(note, "-0123456789")
}

var catalog = []Scale{
	{"tonal", []string{"C", "D", "E", "F", "G", "A", "B"}},
	{"chromatic", []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}},
	{"minor", []string{"C", "D", "Eb", "F", "G", "Ab", "Bb"}},
	{"pentatonic", []string{"C", "D", "E", "G", "A"}},
	{"dorian", []string{"C", "D", "Eb", "F", "G", "A", "Bb"}},
	{"phrygian", []string{"C", "Db", "Eb", "F", "G", "Ab", "Bb"}},
	{"lydian", []string{"C", "D", "E", "F#", "G", "A", "B"}},
	{"mixolydian", []string{"C", "D", "E", "F", "G", "A", "Bb"}},
	{"locrian", []string{"C", "Db", "Eb", "F", "Gb", "Ab", "Bb"}},
	{"blues", []string{"C", "Eb", "F", "F#", "G", "Bb"}},
	{"harmonicMinor", []string{"C", "D", "Eb", "F", "G", "Ab", "B"}},
	{"melodicMinor", []string{"C", "D", "Eb", "F", "G", "A", "B"}},
	{"arabic", []string{"C", "Db", "E", "F", "G", "Ab", "B"}},
	{"hungarianMinor", []string{"C", "D", "Eb", "F#", "G", "Ab", "B"}},
	{"japanese", []string{"C", "Db", "F", "G", "Ab"}},
	{"hirajoshi", []string{"C", "D", "Eb", "G", "Ab"}},
}

var byName = func() map[string]Scale {
	m := make(map[string]Scale, len(catalog))
	for _, s := range catalog {
		m[s.name] = s
	}
	return m
}()

// Lookup returns the named scale. Unknown names resolve to the Default
// scale with ok=false.
func Lookup(name string) (s Scale, ok bool) {
	s, ok = byName[name]
	if !ok {
		return byName[Default], false
	}
	return s, true
}

// Names lists the catalog in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.name
	}
	return names
}

// Next returns the catalog name after name, wrapping around. step may be
// negative. Unknown names start from the Default scale.
func Next(name string, step int) string {
	idx := 0
	for i, s := range catalog {
		if s.name == name {
			idx = i
			break
		}
	}
	n := len(catalog)
	return catalog[((idx+step)%n+n)%n].name
}
