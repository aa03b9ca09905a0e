package gui

import (
	"image/color"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/chime/internal/sim"
)

type circle struct {
	pos    rl.Vector2
	radius float32
	color  rl.Color
}

// Surface keeps the circles of the latest frame and replays them on every
// window redraw, so a stopped simulation shows an empty field.
type Surface struct {
	mu      sync.Mutex
	circles []circle
	origin  rl.Vector2
}

func NewSurface(originX, originY float32) *Surface {
	return &Surface{origin: rl.NewVector2(originX, originY)}
}

func (s *Surface) Clear() {
	s.mu.Lock()
	s.circles = s.circles[:0]
	s.mu.Unlock()
}

func (s *Surface) DrawCircle(x, y, radius float64, c color.RGBA) {
	s.mu.Lock()
	s.circles = append(s.circles, circle{
		pos:    rl.NewVector2(s.origin.X+float32(x), s.origin.Y+float32(y)),
		radius: float32(radius),
		color:  rl.NewColor(c.R, c.G, c.B, c.A),
	})
	s.mu.Unlock()
}

// Draw issues the raylib calls; it must run between BeginDrawing and
// EndDrawing.
func (s *Surface) Draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.circles {
		rl.DrawCircleV(c.pos, c.radius, c.color)
	}
}

var _ sim.Surface = (*Surface)(nil)
