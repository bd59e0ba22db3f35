// Package fake implements an in-memory haptic driver for tests and demos. It
// replays a scripted queue of frames and records every force written back.
package fake

import (
	"context"
	"sync"
	"time"

	"github.com/golang/geo/r3"

	"github.com/molviz/haptics/haptics"
)

// Ceiling mimics the continuous-force rating of a typical desktop haptic pen,
// in newtons.
const Ceiling = 3.3

// Driver is a scriptable haptics.Driver. Frames pushed with PushFrame are
// replayed in order; once the queue drains, the last frame repeats, which
// matches a real device reporting a stationary pen.
type Driver struct {
	mu           sync.Mutex
	frames       []haptics.Frame
	current      haptics.Frame
	forces       []r3.Vector
	opened       bool
	forceEnabled bool
	rate         time.Duration
}

// NewDriver returns a fake driver ticking at 1ms, the typical native rate of
// force-feedback hardware.
func NewDriver() *Driver {
	return &Driver{rate: time.Millisecond}
}

// PushFrame appends one frame to the replay queue.
func (d *Driver) PushFrame(f haptics.Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, f)
}

// Open implements haptics.Driver.
func (d *Driver) Open(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opened = true
	return nil
}

// EnableForceOutput implements haptics.Driver.
func (d *Driver) EnableForceOutput(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.forceEnabled = true
	return nil
}

// Frame implements haptics.Driver.
func (d *Driver) Frame() (haptics.Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) > 0 {
		d.current = d.frames[0]
		d.frames = d.frames[1:]
	}
	return d.current, nil
}

// SetForce implements haptics.Driver.
func (d *Driver) SetForce(force r3.Vector) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.forces = append(d.forces, force)
	return nil
}

// NominalMaxContinuousForce implements haptics.Driver.
func (d *Driver) NominalMaxContinuousForce() float64 {
	return Ceiling
}

// UpdateRate implements haptics.Driver.
func (d *Driver) UpdateRate() time.Duration {
	return d.rate
}

// Close implements haptics.Driver.
func (d *Driver) Close(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opened = false
	d.forceEnabled = false
	return nil
}

// Opened reports whether the connection is open.
func (d *Driver) Opened() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened
}

// ForceEnabled reports whether force output was armed.
func (d *Driver) ForceEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.forceEnabled
}

// Forces returns a copy of every force written so far, in order.
func (d *Driver) Forces() []r3.Vector {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]r3.Vector(nil), d.forces...)
}
