package sim

import (
	"math/rand"
	"testing"

	"github.com/san-kum/chime/internal/scale"
)

func TestOnCollisionNeverRepeatsImmediately(t *testing.T) {
	pent, _ := scale.Lookup("pentatonic")
	v := &fakeVoice{}
	trig := NewNoteTrigger(rand.New(rand.NewSource(1)), map[int]Voice{0: v}, nil)
	b := NewBody(0, 1)

	sounded, suppressed := 0, 0
	for i := 0; i < 1000; i++ {
		before := b.LastNote
		note, ok := trig.OnCollision(b, pent)

		if !pent.Contains(scale.PitchClass(note)) {
			t.Fatalf("note %s not in pentatonic", note)
		}
		if note[len(note)-1] != '4' {
			t.Fatalf("note %s not in octave 4", note)
		}
		if ok {
			sounded++
			if note == before {
				t.Fatalf("sounded %s twice in a row", note)
			}
			if b.LastNote != note {
				t.Fatalf("LastNote not updated to %s", note)
			}
		} else {
			suppressed++
			if note != before || b.LastNote != before {
				t.Fatalf("suppressed draw %s changed state (before %s, now %s)", note, before, b.LastNote)
			}
		}
	}

	if suppressed == 0 {
		t.Error("expected some repeats to be suppressed over 1000 draws")
	}
	if len(v.notes) != sounded {
		t.Errorf("voice got %d notes, trigger reported %d", len(v.notes), sounded)
	}
	for i := 1; i < len(v.notes); i++ {
		if v.notes[i] == v.notes[i-1] {
			t.Fatalf("voice heard %s twice in a row", v.notes[i])
		}
	}
	for _, d := range v.durations {
		if d != NoteDuration {
			t.Fatalf("expected %s duration, got %s", NoteDuration, d)
		}
	}
}

func TestOnCollisionSuppressesOnlyTheImmediateRepeat(t *testing.T) {
	chrom, _ := scale.Lookup("chromatic")
	trig := NewNoteTrigger(rand.New(rand.NewSource(3)), map[int]Voice{}, nil)
	b := NewBody(0, 1)

	// some note must come back after a different one in between
	var history []string
	for i := 0; i < 500; i++ {
		if note, ok := trig.OnCollision(b, chrom); ok {
			history = append(history, note)
		}
	}
	seen := false
	for i := 2; i < len(history); i++ {
		if history[i] == history[i-2] {
			seen = true
			break
		}
	}
	if !seen {
		t.Error("expected a note to recur two triggers later")
	}
}

func TestOnCollisionUsesBoundVoice(t *testing.T) {
	tonal, _ := scale.Lookup("tonal")
	v1, v3 := &fakeVoice{}, &fakeVoice{}
	trig := NewNoteTrigger(rand.New(rand.NewSource(5)), map[int]Voice{1: v1, 3: v3}, nil)

	body3 := NewBody(3, 4)
	if _, ok := trig.OnCollision(body3, tonal); !ok {
		t.Fatal("first note must sound")
	}
	if len(v3.notes) != 1 || len(v1.notes) != 0 {
		t.Errorf("note routed to wrong voice: v1=%v v3=%v", v1.notes, v3.notes)
	}
}

func TestOnCollisionWithoutVoice(t *testing.T) {
	tonal, _ := scale.Lookup("tonal")
	trig := NewNoteTrigger(rand.New(rand.NewSource(5)), nil, nil)
	b := NewBody(4, 5)
	note, ok := trig.OnCollision(b, tonal)
	if !ok || b.LastNote != note {
		t.Errorf("expected state update without a voice, got %s %t", b.LastNote, ok)
	}
}
