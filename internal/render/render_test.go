package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/cwbudde/algo-spectro/measure/calib"
	"github.com/cwbudde/algo-spectro/measure/spectro"
)

func TestWavelengthToRGB(t *testing.T) {
	tests := []struct {
		nm   float64
		want color.RGBA
	}{
		{300, Grey},
		{900, Grey},
		{380, color.RGBA{R: 97, G: 0, B: 97, A: 255}},
		{450, color.RGBA{R: 0, G: 70, B: 255, A: 255}},
		{510, color.RGBA{R: 0, G: 255, B: 0, A: 255}},
		{700, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{780, color.RGBA{R: 97, G: 0, B: 0, A: 255}},
	}
	for _, tt := range tests {
		if got := WavelengthToRGB(tt.nm); got != tt.want {
			t.Fatalf("WavelengthToRGB(%v) = %v, want %v", tt.nm, got, tt.want)
		}
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Fill(white)
	c.VLine(1, 5, -2, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	c.Set(10, 10, black)

	for y := 0; y < 3; y++ {
		if got := c.At(1, y); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
			t.Fatalf("At(1, %d) = %v", y, got)
		}
		if got := c.At(0, y); got != white {
			t.Fatalf("At(0, %d) = %v", y, got)
		}
	}
	if got := c.Pix[3:6]; got[0] != 3 || got[2] != 1 {
		t.Fatalf("pixel not stored as BGR: %v", got)
	}
	if c.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("Bounds() = %v", c.Bounds())
	}
}

func TestBarTop(t *testing.T) {
	for _, tt := range []struct {
		v    float64
		want int
	}{
		{-5, GraphHeight}, {0, GraphHeight}, {100, GraphHeight - 100}, {320, 0}, {1000, 0},
	} {
		if got := BarTop(tt.v); got != tt.want {
			t.Fatalf("BarTop(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestDrawTrace(t *testing.T) {
	palette := NewPalette([]float64{700, 700, 700})
	c := NewCanvas(3, GraphHeight)
	grat := calib.Graticule{Tens: []int{2}}

	DrawTrace(c, []float64{0, 100, 0}, palette, grat)

	if got := c.At(0, GraphHeight-1); got != white {
		t.Fatalf("empty column = %v", got)
	}
	if got := c.At(1, GraphHeight-100); got != black {
		t.Fatalf("bar cap = %v", got)
	}
	if got := c.At(1, GraphHeight-1); got != palette.At(1) {
		t.Fatalf("bar body = %v", got)
	}
	if got := c.At(2, GraphHeight-1); got != lightGrey {
		t.Fatalf("graticule = %v", got)
	}
	if got := c.At(2, 0); got != white {
		t.Fatalf("graticule above top margin = %v", got)
	}
}

func TestPeakLabel(t *testing.T) {
	text, box := PeakLabel(spectro.Peak{Pixel: 200, Wavelength: 472.616, Value: 70})
	if text != "472.6nm" {
		t.Fatalf("text = %q", text)
	}
	want := image.Rect(186, GraphHeight-70-25, 248, GraphHeight-70-10)
	if box != want {
		t.Fatalf("box = %v, want %v", box, want)
	}
}

func TestCursorLabel(t *testing.T) {
	axis, err := calib.Fit([]calib.Point{{Pixel: 0, Wavelength: 400}, {Pixel: 99, Wavelength: 499}}, 100)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		o    Overlay
		want string
	}{
		{"off", Overlay{Cursor: image.Pt(10, 0)}, ""},
		{"measure", Overlay{Cursor: image.Pt(10, 0), Measure: true}, "410.00nm"},
		{"measure-outside", Overlay{Cursor: image.Pt(150, 0), Measure: true}, ""},
		{"pixel", Overlay{Cursor: image.Pt(42, 0), Pixel: true}, "42px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CursorLabel(tt.o, axis); got != tt.want {
				t.Fatalf("CursorLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWaterfallPush(t *testing.T) {
	palette := NewPalette([]float64{700, 700})
	w := NewWaterfall(2, 3)

	w.Push([]float64{255, 0}, palette)
	row := w.Canvas().Row(0)
	want := []byte{10, 10, 255, 10, 10, 10}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("row 0 = %v, want %v", row, want)
		}
	}

	w.Push([]float64{0, 0}, palette)
	if got := w.Canvas().Row(1); got[2] != 255 {
		t.Fatalf("history did not scroll: row 1 = %v", got)
	}
	if got := w.Canvas().Row(0); got[2] != 10 {
		t.Fatalf("new row = %v", got)
	}
}

func TestStatusColumns(t *testing.T) {
	s := Status{
		Calibration: [3]string{"Calibrated", "3rd Order Polyfit R²=0.9999", "380.0-750.0nm"},
		SaveMessage: "No data saved",
		Gain:        10,
		Held:        true,
		Params:      spectro.DefaultParams(),
	}
	cols := s.Columns()
	if cols[0][1] != "3rd Order Polyfit R^2=0.9999" {
		t.Fatalf("calibration line = %q", cols[0][1])
	}
	if cols[1][1] != "Gain: 10.0" {
		t.Fatalf("gain line = %q", cols[1][1])
	}
	wantProc := []string{"Holdpeaks ON", "Savgol Filter: 7", "Label Peak Width: 50", "Label Threshold: 20"}
	for i, want := range wantProc {
		if cols[2][i] != want {
			t.Fatalf("processing line %d = %q, want %q", i, cols[2][i], want)
		}
	}

	s.FilterErr = errors.New("bad")
	if got := s.Columns()[2][1]; got != "Savgol Filter: 7 (invalid)" {
		t.Fatalf("invalid filter line = %q", got)
	}
}
