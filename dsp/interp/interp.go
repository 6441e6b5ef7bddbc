package interp

// Linear2 interpolates between x0 and x1 at t in [0, 1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Parabolic fits a parabola through three equally spaced samples centred on
// y0 and returns the offset of its vertex from the centre sample and the
// height there. For a strict local maximum the offset lies in [-0.5, 0.5].
// Collinear samples yield (0, y0).
func Parabolic(ym1, y0, y1 float64) (offset, height float64) {
	denom := ym1 - 2*y0 + y1
	if denom == 0 {
		return 0, y0
	}
	offset = 0.5 * (ym1 - y1) / denom
	height = y0 - 0.25*(ym1-y1)*offset
	return offset, height
}

// Vertex refines the local maximum of trace at index i. It returns the
// fractional index and interpolated height; end samples are returned as is.
func Vertex(trace []float64, i int) (pos, height float64) {
	if i <= 0 || i >= len(trace)-1 {
		return float64(i), trace[i]
	}
	offset, h := Parabolic(trace[i-1], trace[i], trace[i+1])
	return float64(i) + offset, h
}
