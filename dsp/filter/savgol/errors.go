package savgol

import (
	"errors"
	"fmt"
)

// ErrInvalidFilterConfig is returned for a window/order combination that does
// not describe a centred least-squares fit, or a window longer than the trace.
var ErrInvalidFilterConfig = errors.New("savgol: invalid filter config")

func validateConfig(window, order int) error {
	if window < 3 {
		return fmt.Errorf("%w: window must be >= 3: %d", ErrInvalidFilterConfig, window)
	}
	if window%2 == 0 {
		return fmt.Errorf("%w: window must be odd: %d", ErrInvalidFilterConfig, window)
	}
	if order < 0 {
		return fmt.Errorf("%w: order must be >= 0: %d", ErrInvalidFilterConfig, order)
	}
	if order >= window {
		return fmt.Errorf("%w: order %d must be < window %d", ErrInvalidFilterConfig, order, window)
	}
	return nil
}
