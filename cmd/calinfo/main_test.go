package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectro/measure/calib"
)

func TestParseInline(t *testing.T) {
	points, err := parseInline("120:436, 610:611.5,")
	if err != nil {
		t.Fatal(err)
	}
	want := []calib.Point{{Pixel: 120, Wavelength: 436}, {Pixel: 610, Wavelength: 611.5}}
	if len(points) != len(want) || points[0] != want[0] || points[1] != want[1] {
		t.Fatalf("parseInline() = %v, want %v", points, want)
	}

	for _, bad := range []string{"120", "x:436", "120:y"} {
		if _, err := parseInline(bad); err == nil {
			t.Fatalf("parseInline(%q) should fail", bad)
		}
	}
}

func TestPrintReportLinear(t *testing.T) {
	var buf bytes.Buffer
	src := source{
		name:       "test",
		points:     []calib.Point{{Pixel: 0, Wavelength: 380}, {Pixel: 799, Wavelength: 750}},
		calibrated: true,
	}
	if err := printReport(&buf, src, 800, 400); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"test: Calibrated, Linear (2-point), 380.0-750.0nm",
		"Graticule: 38 lines",
		"400nm@43",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	found := false
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 3 && f[0] == "799" && f[1] == "750.000" {
			found = true
		}
	}
	if !found {
		t.Fatalf("sampled table missing last pixel:\n%s", out)
	}
}

func TestPrintReportRejectsBadPoints(t *testing.T) {
	src := source{name: "bad", points: []calib.Point{{Pixel: 5, Wavelength: 500}}, calibrated: true}
	if err := printReport(&bytes.Buffer{}, src, 800, 100); err == nil {
		t.Fatal("expected error")
	}
}

func TestCollectSourcesDefault(t *testing.T) {
	sources, err := collectSources(nil, "", 800)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 || sources[0].calibrated || sources[0].name != "default" {
		t.Fatalf("collectSources() = %+v", sources)
	}
}
