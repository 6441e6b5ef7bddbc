package render

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultContrast   = 2.5
	defaultBrightness = 10
)

// Waterfall is a rolling history of spectra, newest row on top. Each row
// shows the wavelength colour of every pixel scaled by its intensity.
type Waterfall struct {
	canvas     *Canvas
	contrast   float64
	brightness float64

	lum     []float64
	scratch []float64
}

// NewWaterfall returns an empty waterfall of the given size.
func NewWaterfall(width, rows int) *Waterfall {
	return &Waterfall{
		canvas:     NewCanvas(width, rows),
		contrast:   defaultContrast,
		brightness: defaultBrightness,
		lum:        make([]float64, width),
		scratch:    make([]float64, width),
	}
}

// Canvas returns the history image.
func (w *Waterfall) Canvas() *Canvas { return w.canvas }

// Push scrolls the history down by one row and writes intensity as the new
// top row.
func (w *Waterfall) Push(intensity []float64, palette *Palette) {
	c := w.canvas
	rowBytes := c.Width * 3
	copy(c.Pix[rowBytes:], c.Pix[:len(c.Pix)-rowBytes])
	w.renderRow(c.Row(0), intensity, palette)
}

// renderRow writes one BGR row: channel * intensity/255, then
// contrast * v + brightness with saturation.
func (w *Waterfall) renderRow(dst []byte, intensity []float64, palette *Palette) {
	n := min(len(intensity), w.canvas.Width, palette.Len())
	for i := range w.lum {
		w.lum[i] = 0
	}
	for i := 0; i < n; i++ {
		w.lum[i] = intensity[i] / maxIntensity
	}

	channels := [3][]float64{palette.b, palette.g, palette.r}
	for ch, src := range channels {
		vecmath.MulBlock(w.scratch[:n], src[:n], w.lum[:n])
		for i := 0; i < n; i++ {
			v := math.Round(w.scratch[i])
			dst[i*3+ch] = saturate(w.contrast*v + w.brightness)
		}
		for i := n; i < w.canvas.Width; i++ {
			dst[i*3+ch] = saturate(w.brightness)
		}
	}
}

func saturate(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return byte(math.Round(v))
	}
}
