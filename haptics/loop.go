package haptics

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/molviz/haptics/spatialmath"
)

// Camera zoom classification of device-native z motion between two emitted
// move events.
const (
	zoomThreshold = 1.2
	zoomOutFactor = 0.90
	zoomInFactor  = 1.10
)

// zoomStep classifies device-native z motion into a discrete camera zoom
// factor: pulling the pen toward the user zooms out, pushing it away zooms in.
func zoomStep(dz float64) float64 {
	switch {
	case dz <= -zoomThreshold:
		return zoomOutFactor
	case dz >= zoomThreshold:
		return zoomInFactor
	default:
		return 1.0
	}
}

// listenerRegistry is an append-only, ordered set of listeners. There is no
// removal; registered listeners must outlive the device session.
type listenerRegistry struct {
	mu        sync.Mutex
	listeners []Listener
}

func (r *listenerRegistry) add(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

func (r *listenerRegistry) snapshot() []Listener {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Listener(nil), r.listeners...)
}

// deviceLoop holds the state owned exclusively by the servicing goroutine
// between ticks. Everything shared with application goroutines goes through
// the bounded snapshot/replace operations of sceneState.
type deviceLoop struct {
	driver   Driver
	scene    *sceneState
	registry *listenerRegistry
	cfg      Config
	clock    clock.Clock
	logger   golog.Logger

	// fail terminates the process on an unrecoverable mid-tick hardware
	// error; continuing with erroneous data risks unsafe force output.
	// Tests substitute it.
	fail func(err error)

	minMoveInterval time.Duration

	firstButtonDown  bool
	secondButtonDown bool
	firstTick        bool
	// lastSent is the device-native position at the last emitted move event.
	lastSent   r3.Vector
	lastMoveAt time.Time
}

func newDeviceLoop(driver Driver, scene *sceneState, registry *listenerRegistry, cfg Config, clk clock.Clock, logger golog.Logger) *deviceLoop {
	l := &deviceLoop{
		driver:          driver,
		scene:           scene,
		registry:        registry,
		cfg:             cfg,
		clock:           clk,
		logger:          logger,
		minMoveInterval: time.Second / time.Duration(cfg.MaxMoveEventsPerSec),
		firstTick:       true,
	}
	l.fail = func(err error) {
		l.logger.Fatalw("haptic device failure", "error", err)
	}
	return l
}

// tick services the device once. The hardware scheduler invokes it
// periodically from a single goroutine until the session stops.
func (l *deviceLoop) tick() {
	frame, err := l.driver.Frame()
	if err != nil {
		l.fail(errors.Wrap(err, "reading device frame"))
		return
	}

	atoms := l.scene.atomsSnapshot()
	transform, inverse := l.scene.transformsSnapshot()
	gradients, guidance := l.scene.gradientsSnapshot()

	pointer := spatialmath.ToApplicationCoordinates(frame.Position, transform, l.cfg.ScaleFactor)

	selectedAtomID := NoAtom
	if len(atoms) > 0 {
		gradient := r3.Vector{}
		closest := atoms[closestAtomIndex(atoms, pointer)]
		if withinCaptureZone(closest, pointer, l.cfg.CaptureRadiusFactor) {
			selectedAtomID = closest.ID
			if selectedAtomID >= 0 && selectedAtomID < len(gradients) {
				gradient = gradients[selectedAtomID]
			}
		}

		atomDevice := spatialmath.ToDeviceCoordinates(closest.Position, inverse, l.cfg.ScaleFactor)
		gradientDevice := spatialmath.ToDeviceCoordinates(gradient, inverse, l.cfg.ScaleFactor)

		force := computeForce(
			atomDevice,
			gradientDevice,
			guidance,
			l.secondButtonDown,
			l.cfg.AnchorStiffness,
			l.driver.NominalMaxContinuousForce(),
		)
		if err := l.driver.SetForce(force); err != nil {
			l.fail(errors.Wrap(err, "writing device force"))
			return
		}
	}

	l.notifyButtons(frame, selectedAtomID)

	now := l.clock.Now()
	if now.Sub(l.lastMoveAt) < l.minMoveInterval {
		return
	}
	l.lastMoveAt = now

	if l.firstTick {
		l.firstTick = false
		l.lastSent = frame.LastPosition
	}

	lastSentApp := spatialmath.ToApplicationCoordinates(l.lastSent, transform, l.cfg.ScaleFactor)

	azimuth := l.lastSent.X - frame.Position.X
	elevation := l.lastSent.Y - frame.Position.Y
	zoom := zoomStep(l.lastSent.Z - frame.Position.Z)

	if pointer != lastSentApp {
		for _, listener := range l.registry.snapshot() {
			listener.Move(pointer, azimuth, elevation, zoom)
		}
	}
	l.lastSent = frame.Position
}

// notifyButtons fires edge-transition events for the two buttons. The four
// transitions are independent and may co-occur in one tick.
func (l *deviceLoop) notifyButtons(frame Frame, selectedAtomID int) {
	listeners := l.registry.snapshot()

	down, wasDown := frame.Buttons.Pressed(Button1), frame.LastButtons.Pressed(Button1)
	if down && !wasDown {
		l.firstButtonDown = true
		for _, lis := range listeners {
			lis.FirstButtonDown()
		}
	}
	if !down && wasDown {
		l.firstButtonDown = false
		for _, lis := range listeners {
			lis.FirstButtonUp()
		}
	}

	down, wasDown = frame.Buttons.Pressed(Button2), frame.LastButtons.Pressed(Button2)
	if down && !wasDown {
		l.secondButtonDown = true
		for _, lis := range listeners {
			lis.SecondButtonDown(selectedAtomID)
		}
	}
	if !down && wasDown {
		l.secondButtonDown = false
		for _, lis := range listeners {
			lis.SecondButtonUp()
		}
	}
}
