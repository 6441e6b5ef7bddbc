package spectro

import "github.com/cwbudde/algo-spectro/measure/calib"

type config struct {
	params Params
	points []calib.Point
	held   bool
}

// Option mutates the processor configuration.
type Option func(*config)

func applyOptions(opts ...Option) config {
	cfg := config{params: DefaultParams()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithParams sets the initial processing parameters.
func WithParams(p Params) Option {
	return func(cfg *config) {
		cfg.params = p
	}
}

// WithCalibration commits points at construction. Without it the processor
// starts on the nominal uncalibrated axis.
func WithCalibration(points []calib.Point) Option {
	return func(cfg *config) {
		cfg.points = append([]calib.Point(nil), points...)
	}
}

// WithHold starts the processor in the held state.
func WithHold(held bool) Option {
	return func(cfg *config) {
		cfg.held = held
	}
}
