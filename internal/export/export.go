// Package export writes spectrum snapshots: a CSV of wavelength and
// intensity plus PNG images of the current views.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gocv.io/x/gocv"
)

const (
	fileStamp = "20060102--150405"
	clockTime = "15:04:05"
)

// ErrLengthMismatch is returned when axis and intensity differ in length.
var ErrLengthMismatch = errors.New("export: axis and intensity lengths differ")

// WriteCSV writes a "Wavelength,Intensity" header and one row per pixel,
// with CRLF line endings.
func WriteCSV(w io.Writer, wavelengths, intensity []float64) error {
	if len(wavelengths) != len(intensity) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wavelengths), len(intensity))
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write([]string{"Wavelength", "Intensity"}); err != nil {
		return err
	}
	for i, wl := range wavelengths {
		rec := []string{
			strconv.FormatFloat(wl, 'f', -1, 64),
			strconv.FormatFloat(intensity[i], 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Paths names the files of one snapshot.
type Paths struct {
	Spectrum  string
	Waterfall string
	CSV       string
}

// SnapshotPaths returns the file names for a snapshot taken at t in dir.
func SnapshotPaths(dir string, t time.Time) Paths {
	stamp := t.Format(fileStamp)
	return Paths{
		Spectrum:  filepath.Join(dir, "spectrum-"+stamp+".png"),
		Waterfall: filepath.Join(dir, "waterfall-"+stamp+".png"),
		CSV:       filepath.Join(dir, "Spectrum-"+stamp+".csv"),
	}
}

// SaveMessage returns the status line reported after a snapshot at t.
func SaveMessage(t time.Time) string {
	return "Last Save: " + t.Format(clockTime)
}

// Snapshot is one set of data to save.
type Snapshot struct {
	Wavelengths []float64
	Intensity   []float64
	Spectrum    gocv.Mat
	// Waterfall is optional.
	Waterfall *gocv.Mat
}

// Save writes the snapshot into dir, stamped with t, and returns the status
// message.
func Save(dir string, t time.Time, s Snapshot) (Paths, string, error) {
	p := SnapshotPaths(dir, t)

	if err := SaveCSV(p.CSV, s.Wavelengths, s.Intensity); err != nil {
		return p, "", err
	}
	if !gocv.IMWrite(p.Spectrum, s.Spectrum) {
		return p, "", fmt.Errorf("export: write %s failed", p.Spectrum)
	}
	if s.Waterfall != nil {
		if !gocv.IMWrite(p.Waterfall, *s.Waterfall) {
			return p, "", fmt.Errorf("export: write %s failed", p.Waterfall)
		}
	} else {
		p.Waterfall = ""
	}
	return p, SaveMessage(t), nil
}

// SaveCSV writes the CSV file at path.
func SaveCSV(path string, wavelengths, intensity []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()
	return WriteCSV(f, wavelengths, intensity)
}
