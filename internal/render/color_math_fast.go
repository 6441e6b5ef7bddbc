//go:build fastmath

package render

import "github.com/meko-christian/algo-approx"

// mathPow computes x^y for x > 0 using fast approximation.
// Uses the identity: x^y = e^(y * ln(x))
func mathPow(x, y float64) float64 {
	return approx.FastExp(y * approx.FastLog(x))
}
