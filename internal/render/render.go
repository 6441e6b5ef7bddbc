package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/cwbudde/algo-spectro/measure/calib"
	"github.com/cwbudde/algo-spectro/measure/spectro"
)

// Renderer composes the spectrograph and waterfall views for one axis.
// It is not safe for concurrent use.
type Renderer struct {
	width      int
	bandHeight int
	axis       calib.Axis
	palette    *Palette
	grat       calib.Graticule
	graph      *Canvas
	waterfall  *Waterfall
}

// NewRenderer returns a renderer for frames of the given width and band
// height. The waterfall history is only kept when withWaterfall is set.
func NewRenderer(width, bandHeight int, axis calib.Axis, withWaterfall bool) *Renderer {
	r := &Renderer{
		width:      width,
		bandHeight: bandHeight,
		graph:      NewCanvas(width, GraphHeight),
	}
	if withWaterfall {
		r.waterfall = NewWaterfall(width, GraphHeight)
	}
	r.SetAxis(axis)
	return r
}

// SetAxis recomputes colours and grid lines after a recalibration.
func (r *Renderer) SetAxis(axis calib.Axis) {
	r.axis = axis
	r.palette = NewPalette(axis.Values())
	r.grat = calib.NewGraticule(axis)
}

// Height returns the height of a stacked view.
func (r *Renderer) Height() int {
	return MessageHeight + r.bandHeight + GraphHeight
}

// PlotPoint converts window coordinates to plot coordinates.
func (r *Renderer) PlotPoint(x, y int) image.Point {
	return image.Pt(x, y-MessageHeight-r.bandHeight)
}

// PushWaterfall adds a raw row to the waterfall history.
func (r *Renderer) PushWaterfall(raw []float64) {
	if r.waterfall != nil {
		r.waterfall.Push(raw, r.palette)
	}
}

// Spectrum renders the spectrograph: message strip, band and plot. The
// returned Mat must be closed by the caller.
func (r *Renderer) Spectrum(band gocv.Mat, frame spectro.Frame, status Status, o Overlay) (gocv.Mat, error) {
	DrawTrace(r.graph, frame.Intensity, r.palette, r.grat)
	plot, err := r.graph.Mat()
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("render: plot: %w", err)
	}
	defer plot.Close()

	DrawGraticuleLabels(&plot, r.grat)
	DrawPeaks(&plot, frame.Peaks)
	DrawOverlay(&plot, o, r.axis, frame.Intensity)

	return r.stack(band, plot, status, true), nil
}

// Waterfall renders the waterfall view, or reports false when the renderer
// keeps no history. The returned Mat must be closed by the caller.
func (r *Renderer) Waterfall(band gocv.Mat, status Status) (gocv.Mat, bool, error) {
	if r.waterfall == nil {
		return gocv.NewMat(), false, nil
	}
	hist, err := r.waterfall.Canvas().Mat()
	if err != nil {
		return gocv.NewMat(), false, fmt.Errorf("render: waterfall: %w", err)
	}
	defer hist.Close()

	for _, m := range r.grat.Fifties {
		for y := 2; y < GraphHeight; y += 20 {
			gocv.Line(&hist, image.Pt(m.Pixel, y), image.Pt(m.Pixel, y+1), black, 2)
			gocv.Line(&hist, image.Pt(m.Pixel, y), image.Pt(m.Pixel, y+1), white, 1)
		}
		label := fmt.Sprintf("%dnm", m.Wavelength)
		at := image.Pt(m.Pixel-labelOffset, GraphHeight-5)
		gocv.PutText(&hist, label, at, gocv.FontHersheySimplex, fontScale, black, 2)
		gocv.PutText(&hist, label, at, gocv.FontHersheySimplex, fontScale, white, 1)
	}

	return r.stack(band, hist, status, false), true, nil
}

func (r *Renderer) stack(band, bottom gocv.Mat, status Status, withProcessing bool) gocv.Mat {
	msg := gocv.NewMatWithSize(MessageHeight, r.width, gocv.MatTypeCV8UC3)
	defer msg.Close()
	DrawMessages(&msg, status, withProcessing)

	marked := band.Clone()
	defer marked.Close()
	mid := marked.Rows() / 2
	gocv.Line(&marked, image.Pt(0, mid-2), image.Pt(r.width, mid-2), white, 1)
	gocv.Line(&marked, image.Pt(0, mid+2), image.Pt(r.width, mid+2), white, 1)

	top := gocv.NewMat()
	defer top.Close()
	gocv.Vconcat(msg, marked, &top)

	out := gocv.NewMat()
	gocv.Vconcat(top, bottom, &out)

	gocv.Line(&out, image.Pt(0, MessageHeight), image.Pt(r.width, MessageHeight), white, 1)
	gocv.Line(&out, image.Pt(0, MessageHeight+r.bandHeight), image.Pt(r.width, MessageHeight+r.bandHeight), white, 1)
	return out
}
