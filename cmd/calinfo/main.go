// Command calinfo prints the wavelength axis described by calibration files.
//
// Usage:
//
//	calinfo [flags] [caldata-file ...]
//
// Without arguments it prints the nominal uncalibrated axis.
//
// Examples:
//
//	calinfo caldata.txt
//	calinfo -width 1280 -step 64 caldata.txt
//	calinfo -points 120:436,610:611
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/measure/calib"
)

func main() {
	width := flag.Int("width", 800, "sensor width in pixels")
	step := flag.Int("step", 100, "pixel step of the sampled axis table")
	inline := flag.String("points", "", "inline points as pixel:nm pairs separated by commas")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: calinfo [flags] [caldata-file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the fitted wavelength axis of spectrometer calibrations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the nominal uncalibrated axis.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  calinfo caldata.txt\n")
		fmt.Fprintf(os.Stderr, "  calinfo -width 1280 -step 64 caldata.txt\n")
		fmt.Fprintf(os.Stderr, "  calinfo -points 120:436,610:611\n")
	}
	flag.Parse()

	sources, err := collectSources(flag.Args(), *inline, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for i, src := range sources {
		if i > 0 {
			fmt.Println()
		}
		if err := printReport(os.Stdout, src, *width, *step); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", src.name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

type source struct {
	name       string
	points     []calib.Point
	calibrated bool
}

func collectSources(files []string, inline string, width int) ([]source, error) {
	var out []source
	if inline != "" {
		points, err := parseInline(inline)
		if err != nil {
			return nil, err
		}
		out = append(out, source{name: "-points", points: points, calibrated: true})
	}
	for _, f := range files {
		points, err := calib.LoadFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, source{name: f, points: points, calibrated: true})
	}
	if len(out) == 0 {
		out = append(out, source{name: "default", points: calib.DefaultPoints(width)})
	}
	return out, nil
}

func parseInline(s string) ([]calib.Point, error) {
	var points []calib.Point
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		px, nm, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("point %q: want pixel:nm", pair)
		}
		pixel, err := strconv.Atoi(strings.TrimSpace(px))
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", pair, err)
		}
		wl, err := strconv.ParseFloat(strings.TrimSpace(nm), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", pair, err)
		}
		points = append(points, calib.Point{Pixel: pixel, Wavelength: wl})
	}
	return points, nil
}

func printReport(w io.Writer, src source, width, step int) error {
	cal, err := calib.NewCalibrator(width)
	if err != nil {
		return err
	}
	if src.calibrated {
		if err := cal.Commit(src.points); err != nil {
			return err
		}
	}
	axis := cal.Axis()

	summary := cal.Summary()
	if _, err := fmt.Fprintf(w, "%s: %s, %s, %s\n\n", src.name, summary[0], summary[1], summary[2]); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pixel\tReference [nm]\tFitted [nm]\tResidual [nm]\n")
	fmt.Fprintf(tw, "-----\t--------------\t-----------\t-------------\n")
	for _, p := range cal.Points() {
		fitted := axis.Eval(float64(p.Pixel))
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%+.4f\n", p.Pixel, p.Wavelength, fitted, fitted-p.Wavelength)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if step <= 0 {
		step = width
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pixel\tWavelength [nm]\tDispersion [nm/px]\n")
	fmt.Fprintf(tw, "-----\t---------------\t------------------\n")
	for x := 0; x < width; x += step {
		fmt.Fprintf(tw, "%d\t%.3f\t%.4f\n", x, axis.At(x), dispersion(axis, x))
	}
	if last := width - 1; last%step != 0 {
		fmt.Fprintf(tw, "%d\t%.3f\t%.4f\n", last, axis.At(last), dispersion(axis, last))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	grat := calib.NewGraticule(axis)
	marks := make([]string, len(grat.Fifties))
	for i, m := range grat.Fifties {
		marks[i] = fmt.Sprintf("%dnm@%d", m.Wavelength, m.Pixel)
	}
	_, err = fmt.Fprintf(w, "\nGraticule: %d lines, labels %s\n", len(grat.Tens), strings.Join(marks, " "))
	return err
}

func dispersion(axis calib.Axis, x int) float64 {
	return axis.Eval(float64(x)+0.5) - axis.Eval(float64(x)-0.5)
}
