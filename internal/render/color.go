package render

import (
	"image/color"
	"math"

	"github.com/cwbudde/algo-spectro/dsp/interp"
)

const (
	colorGamma   = 0.8
	maxIntensity = 255
)

// Grey is used for wavelengths outside the visible range.
var Grey = color.RGBA{R: 155, G: 155, B: 155, A: 255}

// WavelengthToRGB approximates the display colour of light at nm nanometres
// (Bruton's piecewise-linear model). The input is rounded to a whole
// nanometre. Wavelengths without a visible colour map to [Grey].
func WavelengthToRGB(nm float64) color.RGBA {
	w := math.Round(nm)

	var r, g, b float64
	switch {
	case w >= 380 && w < 440:
		r, g, b = -(w-440)/(440-380), 0, 1
	case w >= 440 && w < 490:
		r, g, b = 0, (w-440)/(490-440), 1
	case w >= 490 && w < 510:
		r, g, b = 0, 1, -(w-510)/(510-490)
	case w >= 510 && w < 580:
		r, g, b = (w-510)/(580-510), 1, 0
	case w >= 580 && w < 645:
		r, g, b = 1, -(w-645)/(645-580), 0
	case w >= 645 && w <= 780:
		r, g, b = 1, 0, 0
	}

	var factor float64
	switch {
	case w >= 380 && w < 420:
		factor = interp.Linear2((w-380)/(420-380), 0.3, 1)
	case w >= 420 && w <= 700:
		factor = 1
	case w > 700 && w <= 780:
		factor = interp.Linear2((780-w)/(780-700), 0.3, 1)
	}

	c := color.RGBA{
		R: adjust(r, factor),
		G: adjust(g, factor),
		B: adjust(b, factor),
		A: 255,
	}
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return Grey
	}
	return c
}

func adjust(v, factor float64) uint8 {
	if v <= 0 || factor <= 0 {
		return 0
	}
	return uint8(maxIntensity * mathPow(v*factor, colorGamma))
}

// Palette holds the display colour of every pixel of a wavelength axis, and
// the same colours split into float channels for row scaling.
type Palette struct {
	colors  []color.RGBA
	r, g, b []float64
}

// NewPalette computes the colour of every wavelength.
func NewPalette(wavelengths []float64) *Palette {
	p := &Palette{
		colors: make([]color.RGBA, len(wavelengths)),
		r:      make([]float64, len(wavelengths)),
		g:      make([]float64, len(wavelengths)),
		b:      make([]float64, len(wavelengths)),
	}
	for i, wl := range wavelengths {
		c := WavelengthToRGB(wl)
		p.colors[i] = c
		p.r[i], p.g[i], p.b[i] = float64(c.R), float64(c.G), float64(c.B)
	}
	return p
}

// Len returns the number of pixels.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the colour of pixel i.
func (p *Palette) At(i int) color.RGBA { return p.colors[i] }
