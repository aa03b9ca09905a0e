package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/chime/internal/sim"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid with one colour per cell. It implements
// sim.Surface: world coordinates are scaled uniformly so circles stay round
// and the world fits the grid.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	colors        [][]color.RGBA
	world         sim.Bounds
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid to w x h cells, dropping its contents.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.colors = make([][]color.RGBA, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.colors[i] = make([]color.RGBA, w)
	}
	c.Clear()
}

// SetWorld sets the extent of the coordinates DrawCircle receives.
func (c *Canvas) SetWorld(b sim.Bounds) { c.world = b }

// Set lights the sub-pixel (x, y). The grid is (Width*2) x (Height*4)
// sub-pixels; the cell takes the colour of its latest dot.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	c.Grid[cy][cx] |= rune(pixelMap[y%4][x%2])
	c.colors[cy][cx] = col
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.colors[i][j] = color.RGBA{}
		}
	}
}

// FillCircle fills a disc in sub-pixel coordinates.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	c.Set(int(math.Round(cx)), int(math.Round(cy)), col)
	r2 := r * r
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				c.Set(x, y, col)
			}
		}
	}
}

// DrawCircle draws a world-space circle.
func (c *Canvas) DrawCircle(x, y, radius float64, col color.RGBA) {
	s := c.scale()
	c.FillCircle(x*s, y*s, radius*s, col)
}

func (c *Canvas) scale() float64 {
	if c.world.Width <= 0 || c.world.Height <= 0 {
		return 1
	}
	return math.Min(float64(c.Width*2)/c.world.Width, float64(c.Height*4)/c.world.Height)
}

// String renders the grid without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render renders the grid with each run of same-coloured cells wrapped in
// one lipgloss style.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.colors[i][j] == c.colors[i][start] {
				continue
			}
			b.WriteString(paint(string(row[start:j]), c.colors[i][start]))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func paint(s string, col color.RGBA) string {
	if col.A == 0 {
		return s
	}
	cf, _ := colorful.MakeColor(col)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cf.Hex())).Render(s)
}

var _ sim.Surface = (*Canvas)(nil)
