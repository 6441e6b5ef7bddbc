// Package control maps keyboard input to commands and tracks the cursor
// modes of the spectrograph window.
package control

import (
	"image"

	"github.com/cwbudde/algo-spectro/measure/spectro"
)

// Command is a user request decoded from a key press.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdToggleHold
	CmdSnapshot
	CmdCalibrate
	CmdClearClicks
	CmdMeasure
	CmdPixel
	CmdSmoothUp
	CmdSmoothDown
	CmdDistanceUp
	CmdDistanceDown
	CmdThresholdUp
	CmdThresholdDown
	CmdGainUp
	CmdGainDown
)

var keymap = map[rune]Command{
	'q': CmdQuit,
	'h': CmdToggleHold,
	's': CmdSnapshot,
	'c': CmdCalibrate,
	'x': CmdClearClicks,
	'm': CmdMeasure,
	'p': CmdPixel,
	'o': CmdSmoothUp,
	'l': CmdSmoothDown,
	'i': CmdDistanceUp,
	'k': CmdDistanceDown,
	'u': CmdThresholdUp,
	'j': CmdThresholdDown,
	't': CmdGainUp,
	'g': CmdGainDown,
}

var commandNames = map[Command]string{
	CmdNone:          "none",
	CmdQuit:          "quit",
	CmdToggleHold:    "toggle-hold",
	CmdSnapshot:      "snapshot",
	CmdCalibrate:     "calibrate",
	CmdClearClicks:   "clear-clicks",
	CmdMeasure:       "measure",
	CmdPixel:         "pixel",
	CmdSmoothUp:      "smooth-up",
	CmdSmoothDown:    "smooth-down",
	CmdDistanceUp:    "distance-up",
	CmdDistanceDown:  "distance-down",
	CmdThresholdUp:   "threshold-up",
	CmdThresholdDown: "threshold-down",
	CmdGainUp:        "gain-up",
	CmdGainDown:      "gain-down",
}

// String implements fmt.Stringer.
func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "unknown"
}

// Lookup decodes a key code as returned by WaitKey. Unmapped keys and -1
// (no key) yield CmdNone.
func Lookup(key int) Command {
	if key < 0 {
		return CmdNone
	}
	return keymap[rune(key&0xff)]
}

// Action returns the processing action for c, or spectro.ActionNone when c
// is not a processing command.
func (c Command) Action() spectro.Action {
	switch c {
	case CmdToggleHold:
		return spectro.ActionToggleHold
	case CmdSmoothUp:
		return spectro.ActionSmoothUp
	case CmdSmoothDown:
		return spectro.ActionSmoothDown
	case CmdDistanceUp:
		return spectro.ActionDistanceUp
	case CmdDistanceDown:
		return spectro.ActionDistanceDown
	case CmdThresholdUp:
		return spectro.ActionThresholdUp
	case CmdThresholdDown:
		return spectro.ActionThresholdDown
	default:
		return spectro.ActionNone
	}
}

// Cursor tracks the mouse position and the mutually exclusive measure and
// pixel modes.
type Cursor struct {
	Pos     image.Point
	Measure bool
	Pixel   bool
}

// ToggleMeasure flips measure mode and leaves pixel mode.
func (c *Cursor) ToggleMeasure() {
	c.Pixel = false
	c.Measure = !c.Measure
}

// TogglePixel flips pixel mode and leaves measure mode.
func (c *Cursor) TogglePixel() {
	c.Measure = false
	c.Pixel = !c.Pixel
}

// AcceptsClicks reports whether clicks should be recorded as calibration
// positions.
func (c *Cursor) AcceptsClicks() bool { return c.Pixel }
