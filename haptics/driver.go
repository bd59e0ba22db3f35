package haptics

import (
	"context"
	"time"

	"github.com/golang/geo/r3"
)

// Buttons is the device button bitmask as reported by the hardware.
type Buttons int

// The two stylus buttons of a typical haptic pen.
const (
	Button1 Buttons = 1 << iota
	Button2
)

// Pressed reports whether every button in mask is down.
func (b Buttons) Pressed(mask Buttons) bool {
	return b&mask == mask
}

// Frame is one sample of device state, read at the top of every tick.
type Frame struct {
	// Position is the current pointer position in device-native coordinates.
	Position r3.Vector
	// LastPosition is the pointer position of the previous hardware frame.
	LastPosition r3.Vector
	// Buttons is the current button bitmask.
	Buttons Buttons
	// LastButtons is the button bitmask of the previous hardware frame.
	LastButtons Buttons
}

// Driver is the boundary to the vendor haptics SDK. Frame and SetForce are
// called from the single servicing goroutine at the device's native rate and
// must be non-blocking; Open and Close may be called from other goroutines.
type Driver interface {
	// Open initializes the hardware connection.
	Open(ctx context.Context) error
	// EnableForceOutput arms the device's force actuators.
	EnableForceOutput(ctx context.Context) error
	// Frame reads the current and previous pose and button samples.
	Frame() (Frame, error)
	// SetForce writes the force the device renders until the next write.
	SetForce(force r3.Vector) error
	// NominalMaxContinuousForce is the force magnitude ceiling the device can
	// sustain; computed forces are clamped to it.
	NominalMaxContinuousForce() float64
	// UpdateRate is the period at which the servicing loop runs.
	UpdateRate() time.Duration
	// Close disables the hardware connection.
	Close(ctx context.Context) error
}
