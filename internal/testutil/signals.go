package testutil

import (
	"math"
	"math/rand"
)

// Flat generates a constant trace of the given length.
func Flat(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Spike generates a flat trace of base with a single sample raised to height
// at pos. Out-of-range positions leave the trace flat.
func Spike(base, height float64, length, pos int) []float64 {
	out := Flat(base, length)
	if pos >= 0 && pos < length {
		out[pos] = height
	}
	return out
}

// EmissionLine adds a Gaussian line of the given peak height and width
// (standard deviation, in pixels) centred on centre to trace, in place.
func EmissionLine(trace []float64, centre, sigma, height float64) {
	if sigma <= 0 {
		return
	}
	inv := 1 / (2 * sigma * sigma)
	for i := range trace {
		d := float64(i) - centre
		trace[i] += height * math.Exp(-d*d*inv)
	}
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp generates start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
