package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Canvas is a packed 8-bit BGR image.
type Canvas struct {
	Width  int
	Height int
	Pix    []byte
}

// NewCanvas returns a black canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, Pix: make([]byte, width*height*3)}
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.RGBA) {
	for i := 0; i < len(c.Pix); i += 3 {
		c.Pix[i], c.Pix[i+1], c.Pix[i+2] = col.B, col.G, col.R
	}
}

// Set paints one pixel; coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	i := (y*c.Width + x) * 3
	c.Pix[i], c.Pix[i+1], c.Pix[i+2] = col.B, col.G, col.R
}

// At returns the colour of one pixel.
func (c *Canvas) At(x, y int) color.RGBA {
	i := (y*c.Width + x) * 3
	return color.RGBA{R: c.Pix[i+2], G: c.Pix[i+1], B: c.Pix[i], A: 255}
}

// VLine paints column x from y0 to y1 inclusive, clipped to the canvas.
func (c *Canvas) VLine(x, y0, y1 int, col color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := max(y0, 0); y <= min(y1, c.Height-1); y++ {
		c.Set(x, y, col)
	}
}

// Row returns the bytes of row y.
func (c *Canvas) Row(y int) []byte {
	return c.Pix[y*c.Width*3 : (y+1)*c.Width*3]
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// Mat returns the canvas as a gocv Mat that the caller must Close. The Mat
// may share memory with the canvas.
func (c *Canvas) Mat() (gocv.Mat, error) {
	return gocv.NewMatFromBytes(c.Height, c.Width, gocv.MatTypeCV8UC3, c.Pix)
}
