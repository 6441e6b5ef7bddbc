package calib

import "math"

// Mark is a labelled graticule line.
type Mark struct {
	Pixel      int
	Wavelength int
}

// Graticule holds the pixel positions of the wavelength grid lines.
type Graticule struct {
	// Tens lists the pixel of every whole 10 nm wavelength on the axis.
	Tens []int
	// Fifties lists the labelled 50 nm lines.
	Fifties []Mark
}

// NewGraticule places grid lines on axis. A line is placed at the pixel
// nearest its wavelength, and only when that pixel is within 1 nm of it.
func NewGraticule(axis Axis) Graticule {
	var g Graticule
	lo, hi := axis.Range()
	if axis.Len() == 0 {
		return g
	}

	for wl := int(math.Ceil(lo/10)) * 10; float64(wl) <= hi; wl += 10 {
		px := axis.Nearest(float64(wl))
		if math.Abs(axis.At(px)-float64(wl)) >= 1 {
			continue
		}
		g.Tens = append(g.Tens, px)
		if wl%50 == 0 {
			g.Fifties = append(g.Fifties, Mark{Pixel: px, Wavelength: wl})
		}
	}
	return g
}
