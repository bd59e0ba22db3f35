// Package haptics implements the device core that lets a molecular
// visualization feel and manipulate atoms through a force-feedback input
// device. A high-rate servicing loop reads device pose and buttons, maps them
// into application coordinates, finds the nearest atom, writes a guidance
// force back to the hardware, and emits a throttled stream of pose and camera
// events to registered listeners.
package haptics

import (
	"github.com/golang/geo/r3"
)

// NoAtom is the selected-atom sentinel reported when the pointer is not
// within any atom's capture zone.
const NoAtom = -1

// Atom is the device core's mirror of one atom of the visualized molecule.
type Atom struct {
	// ID indexes the atom within the molecule and into the gradient table.
	ID int
	// Position is the atom center in application coordinates.
	Position r3.Vector
	// Radius is the nominal atomic radius used for the pointer containment
	// test; the capture zone extends a configurable multiple beyond it.
	Radius float64
}

// Listener receives pose and button events from the servicing loop. Methods
// are invoked synchronously on the loop goroutine in registration order, so
// they must not block; a slow listener directly increases tick latency.
type Listener interface {
	// Move reports a throttled pointer position in application coordinates
	// together with camera deltas derived from device-native motion.
	Move(position r3.Vector, azimuth, elevation, zoom float64)
	// FirstButtonDown fires on the rising edge of the primary button.
	FirstButtonDown()
	// FirstButtonUp fires on the falling edge of the primary button.
	FirstButtonUp()
	// SecondButtonDown fires on the rising edge of the secondary button and
	// reports the currently selected atom id, or NoAtom.
	SecondButtonDown(atomID int)
	// SecondButtonUp fires on the falling edge of the secondary button.
	SecondButtonUp()
}
