package savgol

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Coefficients returns the smoothing kernel for the given window length and
// polynomial order. The kernel has window taps, is symmetric and sums to 1.
//
// The taps are the first row of the pseudo-inverse of the window's
// Vandermonde matrix, i.e. the weights that evaluate the fitted polynomial at
// the window centre. Abscissae are scaled to [-1, 1] to keep the system well
// conditioned for high orders; the centre value does not depend on that scale.
func Coefficients(window, order int) ([]float64, error) {
	if err := validateConfig(window, order); err != nil {
		return nil, err
	}

	half := window / 2
	cols := order + 1

	a := mat.NewDense(window, cols, nil)
	for i := 0; i < window; i++ {
		x := float64(i-half) / float64(half)
		p := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, p)
			p *= x
		}
	}

	identity := mat.NewDense(window, window, nil)
	for i := 0; i < window; i++ {
		identity.Set(i, i, 1)
	}

	var qr mat.QR
	qr.Factorize(a)

	var pinv mat.Dense
	if err := qr.SolveTo(&pinv, false, identity); err != nil {
		return nil, fmt.Errorf("%w: window %d order %d: %v", ErrInvalidFilterConfig, window, order, err)
	}

	taps := make([]float64, window)
	for i := range taps {
		taps[i] = pinv.At(0, i)
	}

	// Symmetrise to remove rounding asymmetry from the factorisation.
	for i := 0; i < half; i++ {
		m := 0.5 * (taps[i] + taps[window-1-i])
		taps[i], taps[window-1-i] = m, m
	}
	return taps, nil
}
