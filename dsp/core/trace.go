package core

import "math"

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// The contents of a reused slice are left as they were.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Max returns the largest value in x and its first index.
// An empty slice yields (0, -1).
func Max(x []float64) (value float64, index int) {
	if len(x) == 0 {
		return 0, -1
	}
	value, index = x[0], 0
	for i := 1; i < len(x); i++ {
		if x[i] > value {
			value, index = x[i], i
		}
	}
	return value, index
}

// countSnap is how close a sample must be to a whole count to be taken as
// that count before truncation.
const countSnap = 1e-6

// TruncCounts truncates every sample of x towards zero to a whole count in
// place. Samples within countSnap of a whole count snap to it. Negative zero is normalised to zero.
func TruncCounts(x []float64) {
	for i, v := range x {
		r := math.Round(v)
		if math.Abs(v-r) > countSnap {
			r = math.Trunc(v)
		}
		if r == 0 {
			r = 0 // drop the sign of -0
		}
		x[i] = r
	}
}

// FromBytes converts 8-bit samples to float64 counts, writing into dst.
// dst is grown as needed and returned.
func FromBytes(dst []float64, src []byte) []float64 {
	dst = EnsureLen(dst, len(src))
	for i, b := range src {
		dst[i] = float64(b)
	}
	return dst
}
