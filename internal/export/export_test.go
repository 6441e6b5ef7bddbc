package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []float64{380, 380.463}, []float64{5, 200}); err != nil {
		t.Fatal(err)
	}
	want := "Wavelength,Intensity\r\n380,5\r\n380.463,200\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("WriteCSV() = %q, want %q", got, want)
	}
}

func TestWriteCSVLengthMismatch(t *testing.T) {
	if err := WriteCSV(&bytes.Buffer{}, []float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestSnapshotPaths(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	p := SnapshotPaths("out", ts)
	if p.Spectrum != filepath.Join("out", "spectrum-20240309--140507.png") {
		t.Fatalf("Spectrum = %q", p.Spectrum)
	}
	if p.Waterfall != filepath.Join("out", "waterfall-20240309--140507.png") {
		t.Fatalf("Waterfall = %q", p.Waterfall)
	}
	if p.CSV != filepath.Join("out", "Spectrum-20240309--140507.csv") {
		t.Fatalf("CSV = %q", p.CSV)
	}
	if got := SaveMessage(ts); got != "Last Save: 14:05:07" {
		t.Fatalf("SaveMessage() = %q", got)
	}
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.csv")
	if err := SaveCSV(path, []float64{400}, []float64{12}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Wavelength,Intensity\r\n400,12\r\n" {
		t.Fatalf("file = %q", data)
	}
}
