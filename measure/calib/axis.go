package calib

import "slices"

// Method identifies the polynomial model behind an axis.
type Method int

const (
	// MethodLinear is a straight line through 2 points.
	MethodLinear Method = iota
	// MethodQuadratic is the exact parabola through 3 points.
	MethodQuadratic
	// MethodCubic is a least-squares cubic through 4 or more points.
	MethodCubic
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodQuadratic:
		return "quadratic"
	case MethodCubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Axis is a per-pixel wavelength table. It is immutable once built; accessors
// hand out copies.
type Axis struct {
	values   []float64
	method   Method
	rSquared float64
	coeffs   []float64
	scale    float64
}

// Len returns the number of pixels covered.
func (a Axis) Len() int { return len(a.values) }

// At returns the wavelength at pixel. It panics if pixel is out of range.
func (a Axis) At(pixel int) float64 { return a.values[pixel] }

// Values returns a copy of the wavelength table.
func (a Axis) Values() []float64 { return slices.Clone(a.values) }

// Method returns the polynomial model.
func (a Axis) Method() Method { return a.method }

// RSquared returns the coefficient of determination of a cubic fit. Exact
// fits report 1.
func (a Axis) RSquared() float64 { return a.rSquared }

// Coefficients returns the polynomial coefficients in ascending order, in
// terms of pixel/Scale().
func (a Axis) Coefficients() []float64 { return slices.Clone(a.coeffs) }

// Scale returns the divisor applied to pixel positions before evaluating the
// polynomial.
func (a Axis) Scale() float64 { return a.scale }

// Eval evaluates the fitted polynomial at a fractional pixel position, which
// may lie outside the table.
func (a Axis) Eval(pixel float64) float64 {
	return evalPoly(a.coeffs, pixel/a.scale)
}

// Range returns the smallest and largest wavelength on the axis.
func (a Axis) Range() (lo, hi float64) {
	if len(a.values) == 0 {
		return 0, 0
	}
	return slices.Min(a.values), slices.Max(a.values)
}

// Nearest returns the pixel whose wavelength is closest to wavelength.
// The lowest such pixel wins ties. An empty axis yields -1.
func (a Axis) Nearest(wavelength float64) int {
	best := -1
	bestDist := 0.0
	for i, v := range a.values {
		d := v - wavelength
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func evalPoly(coeffs []float64, x float64) float64 {
	y := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}
