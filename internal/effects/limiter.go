package effects

import "math"

// Limiter soft-clips the master bus with a tanh curve so several voices
// sounding at once never exceed full scale.
type Limiter struct {
	drive float32
	gain  float32
}

// NewLimiter returns a limiter; drive > 1 pushes harder into the curve and
// gain scales the result.
func NewLimiter(drive, gain float32) *Limiter {
	if drive <= 0 {
		drive = 1
	}
	return &Limiter{drive: drive, gain: gain}
}

func (l *Limiter) Process(left, right float32) (float32, float32) {
	left = float32(math.Tanh(float64(left*l.drive))) * l.gain
	right = float32(math.Tanh(float64(right*l.drive))) * l.gain
	return left, right
}

func (l *Limiter) Reset() {}
