package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/cwbudde/algo-spectro/measure/calib"
	"github.com/cwbudde/algo-spectro/measure/spectro"
)

const (
	// GraphHeight is the height of the spectrum plot in pixels.
	GraphHeight = 320

	graticuleTop = 15
	labelOffset  = 12
	fontScale    = 0.4
)

var (
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black      = color.RGBA{A: 255}
	lightGrey  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	darkGrey   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	labelFill  = color.RGBA{R: 255, G: 255, A: 255}
)

// BarTop returns the row at which the bar for value starts; the bar runs
// down to the bottom row. Values are clipped to the plot height.
func BarTop(value float64) int {
	v := int(value)
	v = max(0, min(v, GraphHeight))
	return GraphHeight - v
}

// DrawTrace paints the graticule and the intensity bars on a white canvas
// of GraphHeight rows. Each bar takes the colour of its wavelength and is
// capped with a black pixel.
func DrawTrace(c *Canvas, intensity []float64, palette *Palette, grat calib.Graticule) {
	c.Fill(white)

	for _, px := range grat.Tens {
		c.VLine(px, graticuleTop, c.Height-1, lightGrey)
	}
	for _, m := range grat.Fifties {
		c.VLine(m.Pixel, graticuleTop, c.Height-1, darkGrey)
	}

	n := min(len(intensity), c.Width, palette.Len())
	for x := 0; x < n; x++ {
		top := BarTop(intensity[x])
		if top >= c.Height {
			continue
		}
		c.VLine(x, top, c.Height-1, palette.At(x))
		c.Set(x, top, black)
	}
}

// PeakLabel returns the label text and its box for a peak.
func PeakLabel(p spectro.Peak) (string, image.Rectangle) {
	base := BarTop(p.Value) - 10
	left := p.Pixel - labelOffset
	return fmt.Sprintf("%.1fnm", p.Wavelength), image.Rect(left-2, base-15, left+60, base)
}

// DrawGraticuleLabels writes the 50 nm labels along the top of the plot.
func DrawGraticuleLabels(img *gocv.Mat, grat calib.Graticule) {
	for _, m := range grat.Fifties {
		gocv.PutText(img, fmt.Sprintf("%dnm", m.Wavelength), image.Pt(m.Pixel-labelOffset, 12),
			gocv.FontHersheySimplex, fontScale, black, 1)
	}
}

// DrawPeaks boxes and labels every peak.
func DrawPeaks(img *gocv.Mat, peaks []spectro.Peak) {
	for _, p := range peaks {
		text, box := PeakLabel(p)
		gocv.Rectangle(img, box, labelFill, -1)
		gocv.Rectangle(img, box, black, 1)
		gocv.PutText(img, text, image.Pt(box.Min.X+2, box.Max.Y-3), gocv.FontHersheySimplex, fontScale, black, 1)
		gocv.Line(img, image.Pt(p.Pixel, box.Max.Y), image.Pt(p.Pixel, box.Max.Y+10), black, 1)
	}
}

// Overlay is the interactive state drawn over the plot.
type Overlay struct {
	// Cursor is the mouse position in plot coordinates.
	Cursor image.Point
	// Measure shows the wavelength under the cursor.
	Measure bool
	// Pixel shows the pixel column under the cursor and the pending clicks.
	Pixel bool
	// Clicks are the pending calibration pixels.
	Clicks []int
}

// CursorLabel returns the text shown next to the cursor, or "" when no
// cursor mode is active.
func CursorLabel(o Overlay, axis calib.Axis) string {
	x := o.Cursor.X
	switch {
	case o.Measure && x >= 0 && x < axis.Len():
		return fmt.Sprintf("%.2fnm", axis.At(x))
	case o.Pixel:
		return fmt.Sprintf("%dpx", x)
	default:
		return ""
	}
}

// DrawOverlay draws the cursor crosshair and label and the click markers.
func DrawOverlay(img *gocv.Mat, o Overlay, axis calib.Axis, intensity []float64) {
	if label := CursorLabel(o, axis); label != "" {
		x, y := o.Cursor.X, o.Cursor.Y
		gocv.Line(img, image.Pt(x, y-20), image.Pt(x, y+20), black, 1)
		gocv.Line(img, image.Pt(x-20, y), image.Pt(x+20, y), black, 1)
		gocv.PutText(img, label, image.Pt(x+5, y-5), gocv.FontHersheySimplex, fontScale, black, 1)
	}
	if !o.Pixel {
		return
	}
	for _, px := range o.Clicks {
		y := GraphHeight / 2
		if px >= 0 && px < len(intensity) {
			y = BarTop(intensity[px])
		}
		gocv.Circle(img, image.Pt(px, y), 5, black, -1)
		gocv.PutText(img, fmt.Sprint(px), image.Pt(px+5, y), gocv.FontHersheySimplex, fontScale, black, 1)
	}
}
