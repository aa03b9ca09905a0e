package sim

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func place(id, tier int, x, y float64) *Body {
	b := NewBody(id, tier)
	b.X, b.Y = x, y
	return b
}

func TestDetectPairsStrictInequality(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want int
	}{
		{"overlapping", 29.9, 1},
		{"touching", 30, 0},
		{"apart", 31, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// radii 10 and 20
			bodies := []*Body{place(0, 1, 0, 0), place(1, 2, tt.dist, 0)}
			if got := DetectPairs(bodies); len(got) != tt.want {
				t.Errorf("expected %d pairs, got %v", tt.want, got)
			}
		})
	}
}

func TestDetectPairsOrder(t *testing.T) {
	// all five bodies piled on one spot
	bodies := make([]*Body, MaxSlots)
	for i := range bodies {
		bodies[i] = place(i, i+1, 100, 100)
	}
	got := DetectPairs(bodies)
	want := []Pair{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDetectPairsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		bodies := make([]*Body, MaxSlots)
		for i := range bodies {
			bodies[i] = place(i, i+1, rng.Float64()*200, rng.Float64()*200)
		}
		first := DetectPairs(bodies)
		if again := DetectPairs(bodies); !reflect.DeepEqual(first, again) {
			t.Fatalf("trial %d: detection not deterministic", trial)
		}
		hit := map[Pair]bool{}
		for k, p := range first {
			if p.I >= p.J {
				t.Fatalf("trial %d: pair %v not ordered", trial, p)
			}
			if k > 0 {
				prev := first[k-1]
				if prev.I > p.I || (prev.I == p.I && prev.J >= p.J) {
					t.Fatalf("trial %d: pairs out of order %v then %v", trial, prev, p)
				}
			}
			hit[p] = true
		}
		for i := range bodies {
			for j := i + 1; j < len(bodies); j++ {
				a, b := bodies[i], bodies[j]
				overlap := math.Hypot(a.X-b.X, a.Y-b.Y) < a.Radius+b.Radius
				if overlap != hit[Pair{i, j}] {
					t.Fatalf("trial %d: pair (%d,%d) overlap=%t reported=%t", trial, i, j, overlap, hit[Pair{i, j}])
				}
			}
		}
	}
}

func TestDetectPairsSmallInputs(t *testing.T) {
	if got := DetectPairs(nil); len(got) != 0 {
		t.Errorf("expected no pairs, got %v", got)
	}
	if got := DetectPairs([]*Body{place(0, 1, 0, 0)}); len(got) != 0 {
		t.Errorf("expected no pairs, got %v", got)
	}
}

func TestResolveSwapsBothComponents(t *testing.T) {
	a, b := NewBody(0, 1), NewBody(1, 2)
	a.VX, a.VY = 1, 2
	b.VX, b.VY = -3, 4
	a.X, b.X = 5, 6

	Resolve(a, b)
	if a.VX != -3 || a.VY != 4 || b.VX != 1 || b.VY != 2 {
		t.Errorf("velocities not swapped: a=(%v,%v) b=(%v,%v)", a.VX, a.VY, b.VX, b.VY)
	}
	if a.X != 5 || b.X != 6 {
		t.Error("Resolve must not move bodies")
	}

	Resolve(a, b)
	if a.VX != 1 || a.VY != 2 || b.VX != -3 || b.VY != 4 {
		t.Errorf("Resolve is not its own inverse: a=(%v,%v) b=(%v,%v)", a.VX, a.VY, b.VX, b.VY)
	}
}
