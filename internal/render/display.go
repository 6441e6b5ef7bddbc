package render

import (
	"gocv.io/x/gocv"
)

// Mouse event codes delivered by HighGUI.
const (
	MouseMove     = 0
	MouseLeftDown = 1
)

const (
	spectrumTitle  = "Spectrograph"
	waterfallTitle = "Waterfall"
)

// Display owns the HighGUI windows.
type Display struct {
	spectrum  *gocv.Window
	waterfall *gocv.Window
}

// NewDisplay opens the spectrograph window, and the waterfall window when
// requested. Fullscreen applies to the spectrograph only.
func NewDisplay(width, height int, waterfall, fullscreen bool) *Display {
	d := &Display{spectrum: gocv.NewWindow(spectrumTitle)}
	if fullscreen {
		d.spectrum.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
	} else {
		d.spectrum.ResizeWindow(width, height)
		d.spectrum.MoveWindow(0, 0)
	}
	if waterfall {
		d.waterfall = gocv.NewWindow(waterfallTitle)
		d.waterfall.ResizeWindow(width, height)
		d.waterfall.MoveWindow(200, 200)
	}
	return d
}

// OnMouse registers fn for mouse events on the spectrograph window.
// Coordinates are window coordinates.
func (d *Display) OnMouse(fn func(event, x, y int)) {
	d.spectrum.SetMouseHandler(func(event, x, y, _ int, _ interface{}) {
		fn(event, x, y)
	}, nil)
}

// Show presents the spectrograph and, when the waterfall window is open and
// waterfall is not nil, the waterfall.
func (d *Display) Show(spectrum gocv.Mat, waterfall *gocv.Mat) {
	d.spectrum.IMShow(spectrum)
	if d.waterfall != nil && waterfall != nil {
		d.waterfall.IMShow(*waterfall)
	}
}

// WaitKey pumps the GUI event loop for up to ms milliseconds and returns the
// pressed key, or -1.
func (d *Display) WaitKey(ms int) int {
	return d.spectrum.WaitKey(ms)
}

// Close closes all windows.
func (d *Display) Close() error {
	if d.waterfall != nil {
		if err := d.waterfall.Close(); err != nil {
			return err
		}
	}
	return d.spectrum.Close()
}
