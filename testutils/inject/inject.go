// Package inject provides dependency-injected haptics structs for testing.
// Each field function, when set, overrides the corresponding method; unset
// driver methods fall through to the embedded Driver.
package inject

import (
	"context"
	"time"

	"github.com/golang/geo/r3"

	"github.com/molviz/haptics/haptics"
)

// Driver is an injected haptics.Driver.
type Driver struct {
	haptics.Driver
	OpenFunc                      func(ctx context.Context) error
	EnableForceOutputFunc         func(ctx context.Context) error
	FrameFunc                     func() (haptics.Frame, error)
	SetForceFunc                  func(force r3.Vector) error
	NominalMaxContinuousForceFunc func() float64
	UpdateRateFunc                func() time.Duration
	CloseFunc                     func(ctx context.Context) error
}

// Open calls the injected Open or the real version.
func (d *Driver) Open(ctx context.Context) error {
	if d.OpenFunc == nil {
		return d.Driver.Open(ctx)
	}
	return d.OpenFunc(ctx)
}

// EnableForceOutput calls the injected EnableForceOutput or the real version.
func (d *Driver) EnableForceOutput(ctx context.Context) error {
	if d.EnableForceOutputFunc == nil {
		return d.Driver.EnableForceOutput(ctx)
	}
	return d.EnableForceOutputFunc(ctx)
}

// Frame calls the injected Frame or the real version.
func (d *Driver) Frame() (haptics.Frame, error) {
	if d.FrameFunc == nil {
		return d.Driver.Frame()
	}
	return d.FrameFunc()
}

// SetForce calls the injected SetForce or the real version.
func (d *Driver) SetForce(force r3.Vector) error {
	if d.SetForceFunc == nil {
		return d.Driver.SetForce(force)
	}
	return d.SetForceFunc(force)
}

// NominalMaxContinuousForce calls the injected version or the real version.
func (d *Driver) NominalMaxContinuousForce() float64 {
	if d.NominalMaxContinuousForceFunc == nil {
		return d.Driver.NominalMaxContinuousForce()
	}
	return d.NominalMaxContinuousForceFunc()
}

// UpdateRate calls the injected UpdateRate or the real version.
func (d *Driver) UpdateRate() time.Duration {
	if d.UpdateRateFunc == nil {
		return d.Driver.UpdateRate()
	}
	return d.UpdateRateFunc()
}

// Close calls the injected Close or the real version.
func (d *Driver) Close(ctx context.Context) error {
	if d.CloseFunc == nil {
		return d.Driver.Close(ctx)
	}
	return d.CloseFunc(ctx)
}

// Listener is an injected haptics.Listener whose unset methods are no-ops.
type Listener struct {
	MoveFunc             func(position r3.Vector, azimuth, elevation, zoom float64)
	FirstButtonDownFunc  func()
	FirstButtonUpFunc    func()
	SecondButtonDownFunc func(atomID int)
	SecondButtonUpFunc   func()
}

// Move calls the injected Move, if any.
func (l *Listener) Move(position r3.Vector, azimuth, elevation, zoom float64) {
	if l.MoveFunc != nil {
		l.MoveFunc(position, azimuth, elevation, zoom)
	}
}

// FirstButtonDown calls the injected FirstButtonDown, if any.
func (l *Listener) FirstButtonDown() {
	if l.FirstButtonDownFunc != nil {
		l.FirstButtonDownFunc()
	}
}

// FirstButtonUp calls the injected FirstButtonUp, if any.
func (l *Listener) FirstButtonUp() {
	if l.FirstButtonUpFunc != nil {
		l.FirstButtonUpFunc()
	}
}

// SecondButtonDown calls the injected SecondButtonDown, if any.
func (l *Listener) SecondButtonDown(atomID int) {
	if l.SecondButtonDownFunc != nil {
		l.SecondButtonDownFunc(atomID)
	}
}

// SecondButtonUp calls the injected SecondButtonUp, if any.
func (l *Listener) SecondButtonUp() {
	if l.SecondButtonUpFunc != nil {
		l.SecondButtonUpFunc()
	}
}
