package scale

import (
	"fmt"
	"math"
	"strconv"
)

var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// MIDI converts a pitch name such as "C4", "F#3" or "Bb4" to its MIDI note
// number (A4 = 69).
func MIDI(note string) (int, error) {
	if len(note) < 2 {
		return 0, fmt.Errorf("scale: invalid pitch %q", note)
	}
	semi, ok := letterSemitones[note[0]]
	if !ok {
		return 0, fmt.Errorf("scale: invalid pitch letter in %q", note)
	}
	i := 1
accidentals:
	for ; i < len(note); i++ {
		switch note[i] {
		case '#':
			semi++
		case 'b':
			semi--
		default:
			break accidentals
		}
	}
	oct, err := strconv.Atoi(note[i:])
	if err != nil {
		return 0, fmt.Errorf("scale: invalid octave in %q", note)
	}
	return 12*(oct+1) + semi, nil
}

// Frequency returns the equal-tempered frequency of a pitch name in Hz,
// tuned to A4 = 440 Hz.
func Frequency(note string) (float64, error) {
	m, err := MIDI(note)
	if err != nil {
		return 0, err
	}
	return 440 * math.Pow(2, float64(m-69)/12), nil
}
