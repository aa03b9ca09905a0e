package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Mono folds interleaved stereo samples to one channel.
func Mono(stereo []float32) []float64 {
	out := make([]float64, len(stereo)/2)
	for i := range out {
		out[i] = 0.5 * float64(stereo[2*i]+stereo[2*i+1])
	}
	return out
}

// PeakFrequency returns the frequency of the strongest spectral bin of a
// mono signal, refined by parabolic interpolation. Silence returns 0.
func PeakFrequency(samples []float64, sampleRate int) float64 {
	n := len(samples)
	if n < 4 {
		return 0
	}
	windowed := make([]float64, n)
	for i, v := range samples {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = v * w
	}
	spectrum := fft.FFTReal(windowed)

	best, bestMag := 0, 0.0
	mags := make([]float64, n/2)
	for i := 1; i < n/2; i++ {
		mags[i] = cmplx.Abs(spectrum[i])
		if mags[i] > bestMag {
			best, bestMag = i, mags[i]
		}
	}
	if bestMag < 1e-9 {
		return 0
	}

	offset := 0.0
	if best > 1 && best < n/2-1 {
		a, b, c := mags[best-1], mags[best], mags[best+1]
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}
	return (float64(best) + offset) * float64(sampleRate) / float64(n)
}

// RMS is the root-mean-square level of interleaved samples.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}
