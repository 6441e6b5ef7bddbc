package calib

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

// Fit builds the wavelength axis for pixels [0, width) from points.
//
// Two points give a straight line, three an exact quadratic and four or more
// a least-squares cubic. Points may be given in any order and may lie outside
// [0, width). The returned error wraps [ErrInvalidCalibration] or
// [ErrInvalidWidth].
func Fit(points []Point, width int) (Axis, error) {
	if err := validateWidth(width); err != nil {
		return Axis{}, err
	}
	if err := validatePoints(points); err != nil {
		return Axis{}, err
	}

	sorted := sortedPoints(points)
	scale := float64(sorted[len(sorted)-1].Pixel)
	if scale <= 0 {
		scale = 1
	}

	var (
		coeffs []float64
		method Method
		r2     = 1.0
		err    error
	)
	switch len(sorted) {
	case 2:
		coeffs, method = fitLinear(sorted, scale), MethodLinear
	case 3:
		method = MethodQuadratic
		coeffs, err = fitQuadratic(sorted, scale)
	default:
		method = MethodCubic
		coeffs, r2, err = fitCubic(sorted, scale)
	}
	if err != nil {
		return Axis{}, err
	}

	values := make([]float64, width)
	for x := range values {
		v := evalPoly(coeffs, float64(x)/scale)
		if !core.IsFinite(v) {
			return Axis{}, fmt.Errorf("%w: non-finite wavelength at pixel %d", ErrInvalidCalibration, x)
		}
		values[x] = v
	}

	return Axis{
		values:   values,
		method:   method,
		rSquared: r2,
		coeffs:   coeffs,
		scale:    scale,
	}, nil
}

func fitLinear(p []Point, scale float64) []float64 {
	x0, x1 := float64(p[0].Pixel)/scale, float64(p[1].Pixel)/scale
	slope := (p[1].Wavelength - p[0].Wavelength) / (x1 - x0)
	return []float64{p[0].Wavelength - slope*x0, slope}
}

// fitQuadratic solves the 3x3 Vandermonde system exactly.
func fitQuadratic(p []Point, scale float64) ([]float64, error) {
	a := mat.NewDense(3, 3, nil)
	b := mat.NewVecDense(3, nil)
	for i, pt := range p {
		x := float64(pt.Pixel) / scale
		a.Set(i, 0, 1)
		a.Set(i, 1, x)
		a.Set(i, 2, x*x)
		b.SetVec(i, pt.Wavelength)
	}

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%w: quadratic fit: %v", ErrInvalidCalibration, err)
	}
	return []float64{c.AtVec(0), c.AtVec(1), c.AtVec(2)}, nil
}

// fitCubic computes the least-squares cubic via QR and its R².
func fitCubic(p []Point, scale float64) ([]float64, float64, error) {
	const cols = 4
	n := len(p)
	a := mat.NewDense(n, cols, nil)
	b := mat.NewVecDense(n, nil)
	ys := make([]float64, n)
	for i, pt := range p {
		x := float64(pt.Pixel) / scale
		v := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, v)
			v *= x
		}
		b.SetVec(i, pt.Wavelength)
		ys[i] = pt.Wavelength
	}

	var qr mat.QR
	qr.Factorize(a)

	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, b); err != nil {
		return nil, 0, fmt.Errorf("%w: cubic fit: %v", ErrInvalidCalibration, err)
	}
	coeffs := []float64{c.AtVec(0), c.AtVec(1), c.AtVec(2), c.AtVec(3)}

	mean := floats.Sum(ys) / float64(n)
	var ssRes, ssTot float64
	for i, pt := range p {
		r := ys[i] - evalPoly(coeffs, float64(pt.Pixel)/scale)
		d := ys[i] - mean
		ssRes += r * r
		ssTot += d * d
	}

	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	return coeffs, r2, nil
}
