package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"gocv.io/x/gocv"

	"github.com/cwbudde/algo-spectro/measure/spectro"
)

// MessageHeight is the height of the status strip above the band.
const MessageHeight = 80

var (
	statusYellow = color.RGBA{R: 255, G: 255, A: 255}
	stripColor   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// Status is the text shown in the message strip.
type Status struct {
	Calibration [3]string
	SaveMessage string
	Gain        float64
	Held        bool
	Params      spectro.Params
	FilterErr   error
}

// Columns returns the strip text as columns of lines. The spectrograph
// shows all three columns; the waterfall omits the processing column.
func (s Status) Columns() [3][]string {
	hold := "Holdpeaks OFF"
	if s.Held {
		hold = "Holdpeaks ON"
	}
	savgol := fmt.Sprintf("Savgol Filter: %d", s.Params.PolyOrder)
	if s.FilterErr != nil {
		savgol += " (invalid)"
	}

	cal := make([]string, len(s.Calibration))
	for i, line := range s.Calibration {
		cal[i] = strings.ReplaceAll(line, "²", "^2")
	}

	return [3][]string{
		cal,
		{s.SaveMessage, fmt.Sprintf("Gain: %.1f", s.Gain)},
		{
			hold,
			savgol,
			fmt.Sprintf("Label Peak Width: %d", s.Params.MinDistance),
			fmt.Sprintf("Label Threshold: %d", s.Params.ThresholdPercent),
		},
	}
}

var columnX = [3]int{10, 330, 560}

// DrawMessages fills img (MessageHeight rows) with the strip.
func DrawMessages(img *gocv.Mat, s Status, withProcessing bool) {
	img.SetTo(gocv.NewScalar(float64(stripColor.B), float64(stripColor.G), float64(stripColor.R), 0))
	for col, lines := range s.Columns() {
		if col == 2 && !withProcessing {
			lines = lines[:1]
		}
		for row, line := range lines {
			gocv.PutText(img, line, image.Pt(columnX[col], 15+18*row),
				gocv.FontHersheySimplex, fontScale, statusYellow, 1)
		}
	}
}
