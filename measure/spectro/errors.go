package spectro

import "errors"

// ErrLengthMismatch is returned when a raw row does not match the sensor width.
var ErrLengthMismatch = errors.New("spectro: row length does not match sensor width")
