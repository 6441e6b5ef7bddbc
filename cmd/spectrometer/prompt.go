package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errPromptAborted = errors.New("calibration aborted")

// promptWavelengths asks for the known wavelength at every clicked pixel.
// An empty answer aborts; unparsable answers are asked again.
func promptWavelengths(in io.Reader, out io.Writer, clicks []int) ([]float64, error) {
	sc := bufio.NewScanner(in)
	waves := make([]float64, 0, len(clicks))

	for _, px := range clicks {
		for {
			fmt.Fprintf(out, "Enter wavelength for pixel %d (nm, empty to abort): ", px)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, errPromptAborted
			}
			answer := strings.TrimSpace(sc.Text())
			if answer == "" {
				return nil, errPromptAborted
			}
			wl, err := strconv.ParseFloat(answer, 64)
			if err != nil {
				fmt.Fprintf(out, "Not a number: %q\n", answer)
				continue
			}
			waves = append(waves, wl)
			break
		}
	}
	return waves, nil
}
