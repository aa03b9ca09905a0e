package scale

import (
	"math"
	"strings"
	"testing"
)

func TestCatalogInvariants(t *testing.T) {
	names := Names()
	if len(names) != 16 {
		t.Fatalf("expected 16 scales, got %d", len(names))
	}
	for _, name := range names {
		s, ok := Lookup(name)
		if !ok {
			t.Errorf("%s: lookup failed", name)
			continue
		}
		if s.Len() == 0 {
			t.Errorf("%s: empty scale", name)
		}
		for _, pc := range s.Notes() {
			if strings.ContainsAny(pc, "0123456789") {
				t.Errorf("%s: pitch class %q carries an octave", name, pc)
			}
			if _, err := MIDI(WithOctave(pc)); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	}
}

func TestLookupPentatonic(t *testing.T) {
	s, ok := Lookup("pentatonic")
	if !ok {
		t.Fatal("pentatonic not found")
	}
	want := []string{"C", "D", "E", "G", "A"}
	got := s.Notes()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("note %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLookupUnknownFallsBack(t *testing.T) {
	s, ok := Lookup("klingon")
	if ok {
		t.Error("expected ok=false for unknown scale")
	}
	if s.Name() != Default {
		t.Errorf("expected fallback %s, got %s", Default, s.Name())
	}
}

func TestNotesReturnsCopy(t *testing.T) {
	s, _ := Lookup("blues")
	n := s.Notes()
	n[0] = "X"
	again, _ := Lookup("blues")
	if again.At(0) != "C" {
		t.Error("catalog was mutated through Notes()")
	}
}

func TestNextWraps(t *testing.T) {
	names := Names()
	if got := Next(names[len(names)-1], 1); got != names[0] {
		t.Errorf("expected wrap to %s, got %s", names[0], got)
	}
	if got := Next(names[0], -1); got != names[len(names)-1] {
		t.Errorf("expected wrap to %s, got %s", names[len(names)-1], got)
	}
}

func TestPitchClass(t *testing.T) {
	tests := map[string]string{"C4": "C", "F#4": "F#", "Bb4": "Bb", "A-1": "A"}
	for in, want := range tests {
		if got := PitchClass(in); got != want {
			t.Errorf("PitchClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		note string
		hz   float64
	}{
		{"A4", 440},
		{"C4", 261.6256},
		{"A#4", 466.1638},
		{"Bb4", 466.1638},
		{"Gb4", 369.9944},
		{"C5", 523.2511},
	}
	for _, tt := range tests {
		got, err := Frequency(tt.note)
		if err != nil {
			t.Fatalf("%s: %v", tt.note, err)
		}
		if math.Abs(got-tt.hz) > 0.01 {
			t.Errorf("%s: expected %.4f Hz, got %.4f", tt.note, tt.hz, got)
		}
	}
}

func TestFrequencyInvalid(t *testing.T) {
	for _, bad := range []string{"", "H4", "C", "C#x"} {
		if _, err := Frequency(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
