// Package capture reads video frames and reduces the spectral band of each
// frame to a one-dimensional intensity row.
package capture

import (
	"fmt"
	"image"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

const (
	defaultBandHeight = 80
	defaultBandRows   = 3
)

// BandConfig describes the horizontal slice of the frame that carries the
// diffracted spectrum.
type BandConfig struct {
	// Height is the height of the cropped band in pixels, centred vertically.
	Height int
	// Rows is the number of rows around the band midline that are averaged.
	Rows int
}

// DefaultBandConfig returns an 80-pixel band averaged over 3 rows.
func DefaultBandConfig() BandConfig {
	return BandConfig{Height: defaultBandHeight, Rows: defaultBandRows}
}

func (c BandConfig) validate(frameHeight int) error {
	if c.Height <= 0 || c.Height > frameHeight {
		return fmt.Errorf("capture: band height %d outside frame height %d", c.Height, frameHeight)
	}
	if c.Rows <= 0 || c.Rows > c.Height {
		return fmt.Errorf("capture: band rows %d outside band height %d", c.Rows, c.Height)
	}
	return nil
}

// BandRect returns the band rectangle for a frame of the given size.
func BandRect(width, height int, cfg BandConfig) image.Rectangle {
	top := height/2 - cfg.Height/2
	return image.Rect(0, top, width, top+cfg.Height)
}

// ReduceRows averages rows of an 8-bit single-channel image stored row-major
// in pix with the given number of columns. The averaged rows are centred on
// row centre; each output sample is the truncated mean in whole counts.
// dst is grown as needed and returned.
func ReduceRows(dst []float64, pix []byte, cols, centre, rows int) []float64 {
	if cols <= 0 || rows <= 0 {
		return core.EnsureLen(dst, cols)
	}
	nrows := len(pix) / cols
	if rows == 1 && centre >= 0 && centre < nrows {
		return core.FromBytes(dst, pix[centre*cols:(centre+1)*cols])
	}

	dst = core.EnsureLen(dst, cols)
	first := centre - (rows-1)/2

	for x := 0; x < cols; x++ {
		sum, n := 0, 0
		for r := first; r < first+rows; r++ {
			if r < 0 || r >= nrows {
				continue
			}
			sum += int(pix[r*cols+x])
			n++
		}
		if n == 0 {
			dst[x] = 0
			continue
		}
		dst[x] = float64(sum / n)
	}
	return dst
}
