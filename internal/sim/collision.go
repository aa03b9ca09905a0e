package sim

import "math"

// DetectPairs returns every pair of bodies whose circles overlap, strictly:
// touching circles do not collide. Pairs come out ordered by I then J.
//
// The scan is O(n^2); n is capped at MaxSlots. A larger world needs a
// broad phase (grid or sweep) in front of this.
func DetectPairs(bodies []*Body) []Pair {
	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if dist < a.Radius+b.Radius {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}
	return pairs
}

// Resolve exchanges the velocities of a and b. Positions are left alone, so
// bodies that still overlap next frame collide again.
func Resolve(a, b *Body) {
	a.VX, a.VY, b.VX, b.VY = b.VX, b.VY, a.VX, a.VY
}
