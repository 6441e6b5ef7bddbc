package capture

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

const (
	// MinGain and MaxGain bound the analogue gain.
	MinGain = 0.0
	MaxGain = 50.0

	defaultGain = 10.0
)

// ErrNoFrame is returned when the device delivers no image.
var ErrNoFrame = errors.New("capture: no frame")

// Config selects and configures the video device.
type Config struct {
	// Device is a camera index ("0") or a file or stream URL.
	Device string
	Width  int
	Height int
	FPS    float64
	Gain   float64
	Band   BandConfig
}

// DefaultConfig returns an 800x600 capture at 30 fps with gain 10.
func DefaultConfig() Config {
	return Config{
		Device: "0",
		Width:  800,
		Height: 600,
		FPS:    30,
		Gain:   defaultGain,
		Band:   DefaultBandConfig(),
	}
}

// ClampGain limits g to [MinGain, MaxGain].
func ClampGain(g float64) float64 {
	return core.Clamp(g, MinGain, MaxGain)
}

// Source wraps a gocv video capture and the buffers used to extract the band.
// It is not safe for concurrent use.
type Source struct {
	cfg   Config
	cap   *gocv.VideoCapture
	raw   gocv.Mat
	frame gocv.Mat
	gray  gocv.Mat
	row   []float64
}

// Open opens the device named in cfg and applies size, rate and gain.
func Open(cfg Config) (*Source, error) {
	if err := cfg.Band.validate(cfg.Height); err != nil {
		return nil, err
	}

	var device interface{} = cfg.Device
	if idx, err := strconv.Atoi(cfg.Device); err == nil {
		device = idx
	}
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", cfg.Device, err)
	}

	vc.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	if cfg.FPS > 0 {
		vc.Set(gocv.VideoCaptureFPS, cfg.FPS)
	}
	vc.Set(gocv.VideoCaptureBufferSize, 1)

	s := &Source{
		cfg:   cfg,
		cap:   vc,
		raw:   gocv.NewMat(),
		frame: gocv.NewMat(),
		gray:  gocv.NewMat(),
	}
	s.SetGain(cfg.Gain)
	return s, nil
}

// Close releases the device and buffers.
func (s *Source) Close() error {
	s.raw.Close()
	s.frame.Close()
	s.gray.Close()
	return s.cap.Close()
}

// Gain returns the current analogue gain.
func (s *Source) Gain() float64 { return s.cfg.Gain }

// SetGain clamps and applies g and returns the applied value.
func (s *Source) SetGain(g float64) float64 {
	s.cfg.Gain = ClampGain(g)
	s.cap.Set(gocv.VideoCaptureGain, s.cfg.Gain)
	return s.cfg.Gain
}

// StepGain changes the gain by delta.
func (s *Source) StepGain(delta float64) float64 {
	return s.SetGain(s.cfg.Gain + delta)
}

// Read grabs the next frame, resized to the configured size when the device
// delivers another. The returned Mat is owned by the Source and valid until
// the next Read.
func (s *Source) Read() (gocv.Mat, error) {
	if ok := s.cap.Read(&s.raw); !ok || s.raw.Empty() {
		return s.raw, ErrNoFrame
	}
	if s.raw.Cols() == s.cfg.Width && s.raw.Rows() == s.cfg.Height {
		return s.raw, nil
	}
	gocv.Resize(s.raw, &s.frame, image.Pt(s.cfg.Width, s.cfg.Height), 0, 0, gocv.InterpolationLinear)
	return s.frame, nil
}

// Band crops the band from frame and reduces it to an intensity row.
// The returned Mat is the colour band, a view into frame that the caller
// must Close; the row is reused across calls.
func (s *Source) Band(frame gocv.Mat) (gocv.Mat, []float64) {
	rect := BandRect(frame.Cols(), frame.Rows(), s.cfg.Band)
	band := frame.Region(rect)

	gocv.CvtColor(band, &s.gray, gocv.ColorBGRToGray)
	s.row = ReduceRows(s.row, s.gray.ToBytes(), s.gray.Cols(), s.gray.Rows()/2, s.cfg.Band.Rows)
	return band, s.row
}
