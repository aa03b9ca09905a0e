package sim

import (
	"image/color"

	"github.com/san-kum/chime/internal/voice"
)

const (
	// MaxSlots bounds the body count; pair detection is quadratic.
	MaxSlots = 5
	// RadiusUnit is the radius of a size-tier-1 body.
	RadiusUnit = 10.0
)

// Bounds is the simulated surface, spanning [0, Width] x [0, Height].
type Bounds struct {
	Width  float64
	Height float64
}

// Body is one bouncing circle.
type Body struct {
	// ID is the slot index the body was created from. It is stable for the
	// life of a run and keys the body's voice.
	ID       int
	X, Y     float64
	VX, VY   float64
	Tier     int
	Radius   float64
	Color    color.RGBA
	LastNote string // empty until the first note sounds
}

// NewBody creates a body of the given size tier at rest at the origin.
func NewBody(id, tier int) *Body {
	return &Body{ID: id, Tier: tier, Radius: float64(tier) * RadiusUnit}
}

type EventKind int

const (
	WallX EventKind = iota
	WallY
	PairHit
)

func (k EventKind) String() string {
	switch k {
	case WallX:
		return "wall-x"
	case WallY:
		return "wall-y"
	case PairHit:
		return "pair"
	default:
		return "unknown"
	}
}

// Event is a collision that asks for a note.
type Event struct {
	Kind EventKind
	Body int
}

// Pair holds indices into the body list, I < J.
type Pair struct {
	I, J int
}

// Surface is where bodies are drawn each frame.
type Surface interface {
	Clear()
	DrawCircle(x, y, radius float64, c color.RGBA)
}

// Voice is the sound source bound to one body.
type Voice interface {
	SoundNote(pitch string, d voice.Duration)
	Release()
	// ConnectReverb routes the voice through the shared reverb.
	ConnectReverb()
}

// VoiceFactory builds voices for new runs.
type VoiceFactory interface {
	NewVoice(kind voice.Kind) Voice
}

// Settings is everything Start reads.
type Settings struct {
	Bounds Bounds
	Slots  [MaxSlots]bool
	Speed  float64
	Scale  string
	Voice  voice.Kind
	Reverb bool
}

// NoteEvent records one trigger attempt.
type NoteEvent struct {
	Body    int
	Cause   EventKind
	Note    string
	Sounded bool
}

// FrameReport summarizes one tick for observers.
type FrameReport struct {
	Frame  int
	Events []Event
	Pairs  []Pair
	Notes  []NoteEvent
}

// Sounded counts the notes that actually played this frame.
func (r FrameReport) Sounded() int {
	n := 0
	for _, ne := range r.Notes {
		if ne.Sounded {
			n++
		}
	}
	return n
}

type Observer interface {
	OnFrame(r FrameReport)
}
