package calib

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Save writes points in the two-line calibration format.
func Save(w io.Writer, points []Point) error {
	pixels := make([]string, len(points))
	waves := make([]string, len(points))
	for i, p := range points {
		pixels[i] = strconv.Itoa(p.Pixel)
		waves[i] = strconv.FormatFloat(p.Wavelength, 'f', -1, 64)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(pixels); err != nil {
		return fmt.Errorf("calib: write pixels: %w", err)
	}
	if err := cw.Write(waves); err != nil {
		return fmt.Errorf("calib: write wavelengths: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Load reads points written by [Save]. Blank fields and surrounding spaces
// are tolerated; the two lines must hold the same number of values.
func Load(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	pixelRec, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: pixel line: %v", ErrMalformedFile, err)
	}
	waveRec, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: wavelength line: %v", ErrMalformedFile, err)
	}

	pixelFields := nonEmpty(pixelRec)
	waveFields := nonEmpty(waveRec)
	if len(pixelFields) != len(waveFields) {
		return nil, fmt.Errorf("%w: %d pixels but %d wavelengths", ErrMalformedFile, len(pixelFields), len(waveFields))
	}

	points := make([]Point, len(pixelFields))
	for i := range pixelFields {
		px, err := strconv.Atoi(pixelFields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: pixel %q: %v", ErrMalformedFile, pixelFields[i], err)
		}
		wl, err := strconv.ParseFloat(waveFields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: wavelength %q: %v", ErrMalformedFile, waveFields[i], err)
		}
		points[i] = Point{Pixel: px, Wavelength: wl}
	}
	return points, nil
}

// SaveFile writes points to path, replacing any existing file.
func SaveFile(path string, points []Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("calib: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("calib: close %s: %w", path, cerr)
		}
	}()
	return Save(f, points)
}

// LoadFile reads points from path. A missing file is reported with an error
// matching [os.ErrNotExist].
func LoadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("calib: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("calib: open %s: %w", path, err)
	}
	defer f.Close()

	points, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

func nonEmpty(fields []string) []string {
	out := fields[:0:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
