package haptics

import (
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// Tunables of the device core. Zero config fields fall back to these.
const (
	defaultScaleFactor         = 10.0
	defaultCaptureRadiusFactor = 3.0
	defaultAnchorStiffness     = 0.8
	defaultMaxMoveEventsPerSec = 60
)

// Config tunes the haptic device core.
type Config struct {
	// ScaleFactor is the uniform scale between application and device-native
	// coordinates.
	ScaleFactor float64 `json:"scale_factor,omitempty"`
	// CaptureRadiusFactor widens each atom's selection zone beyond its
	// nominal radius.
	CaptureRadiusFactor float64 `json:"capture_radius_factor,omitempty"`
	// AnchorStiffness scales the raw guidance force before clamping.
	AnchorStiffness float64 `json:"anchor_stiffness,omitempty"`
	// MaxMoveEventsPerSec throttles move notifications to listeners.
	MaxMoveEventsPerSec int `json:"max_move_events_per_sec,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.ScaleFactor < 0 {
		return goutils.NewConfigValidationError(path, errors.New("scale_factor cannot be negative"))
	}
	if cfg.CaptureRadiusFactor < 0 {
		return goutils.NewConfigValidationError(path, errors.New("capture_radius_factor cannot be negative"))
	}
	if cfg.AnchorStiffness < 0 {
		return goutils.NewConfigValidationError(path, errors.New("anchor_stiffness cannot be negative"))
	}
	if cfg.MaxMoveEventsPerSec < 0 {
		return goutils.NewConfigValidationError(path, errors.New("max_move_events_per_sec cannot be negative"))
	}
	return nil
}

func (cfg Config) withDefaults() Config {
	if cfg.ScaleFactor == 0 {
		cfg.ScaleFactor = defaultScaleFactor
	}
	if cfg.CaptureRadiusFactor == 0 {
		cfg.CaptureRadiusFactor = defaultCaptureRadiusFactor
	}
	if cfg.AnchorStiffness == 0 {
		cfg.AnchorStiffness = defaultAnchorStiffness
	}
	if cfg.MaxMoveEventsPerSec == 0 {
		cfg.MaxMoveEventsPerSec = defaultMaxMoveEventsPerSec
	}
	return cfg
}
