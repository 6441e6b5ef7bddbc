package conv

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// directThreshold is the kernel length up to which direct evaluation beats
// the FFT path on trace-sized inputs (a few thousand samples).
const directThreshold = 64

// correlateValidDirect writes dst[i] = sum_j x[i+j]*k[j] for every fully
// overlapping position. scratch must hold len(k) samples.
func correlateValidDirect(dst, x, k, scratch []float64) {
	m := len(k)
	for i := range dst {
		vecmath.MulBlock(scratch, x[i:i+m], k)
		dst[i] = floats.Sum(scratch)
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
