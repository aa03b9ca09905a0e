package sim

import "testing"

func TestAdvanceBoundaryScenario(t *testing.T) {
	b := NewBody(0, 1)
	b.X, b.Y = 499, 250
	b.VX, b.VY = 5, 0

	events := Advance(b, Bounds{Width: 500, Height: 500})

	if b.X != 504 {
		t.Errorf("expected unclamped x=504, got %v", b.X)
	}
	if b.VX != -5 {
		t.Errorf("expected speedX=-5, got %v", b.VX)
	}
	if len(events) != 1 || events[0].Kind != WallX || events[0].Body != 0 {
		t.Errorf("expected one wall-x event, got %v", events)
	}
}

func TestAdvanceAxes(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 50}
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantVX, wantVY float64
		wantKinds      []EventKind
	}{
		{"inside", 50, 25, 3, -2, 3, -2, nil},
		{"left wall", 1, 25, -3, 0, 3, 0, []EventKind{WallX}},
		{"bottom wall", 50, 49, 0, 4, 0, -4, []EventKind{WallY}},
		{"corner", 99, 49, 2, 2, -2, -2, []EventKind{WallX, WallY}},
		{"exactly on edge", 97, 25, 3, 0, 3, 0, nil},
		{"still outside keeps flipping", -5, 25, -1, 0, 1, 0, []EventKind{WallX}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(2, 3)
			b.X, b.Y, b.VX, b.VY = tt.x, tt.y, tt.vx, tt.vy
			events := Advance(b, bounds)

			if b.X != tt.x+tt.vx || b.Y != tt.y+tt.vy {
				t.Errorf("position not integrated: (%v,%v)", b.X, b.Y)
			}
			if b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("expected v=(%v,%v), got (%v,%v)", tt.wantVX, tt.wantVY, b.VX, b.VY)
			}
			if len(events) != len(tt.wantKinds) {
				t.Fatalf("expected %d events, got %v", len(tt.wantKinds), events)
			}
			for i, k := range tt.wantKinds {
				if events[i].Kind != k || events[i].Body != 2 {
					t.Errorf("event %d: expected %v for body 2, got %v", i, k, events[i])
				}
			}
		})
	}
}

func TestAdvanceFlipsOncePerExit(t *testing.T) {
	bounds := Bounds{Width: 200, Height: 200}
	b := NewBody(0, 1)
	b.X, b.Y, b.VX, b.VY = 150, 100, 7, 0

	flips := 0
	prev := b.VX
	for i := 0; i < 200; i++ {
		inside := b.X >= 0 && b.X <= bounds.Width
		Advance(b, bounds)
		if b.VX != prev {
			flips++
			if !inside {
				t.Fatalf("flip at step %d started outside the surface", i)
			}
			prev = b.VX
		}
	}
	if flips == 0 {
		t.Error("expected the body to bounce")
	}
}
