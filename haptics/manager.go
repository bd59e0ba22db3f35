package haptics

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// DeviceManager owns one physical haptic device connection: the mirrored
// scene state, the listener registry, and the scheduler goroutine that
// services the device at its native rate. Construct one per device; there is
// no ambient global state.
type DeviceManager struct {
	driver Driver
	cfg    Config
	logger golog.Logger
	clock  clock.Clock

	scene    *sceneState
	registry *listenerRegistry

	opMu                    sync.Mutex
	running                 bool
	cancel                  func()
	activeBackgroundWorkers sync.WaitGroup
}

// NewDeviceManager validates cfg and returns a manager for the given driver.
// The device is not opened until Start.
func NewDeviceManager(driver Driver, cfg Config, logger golog.Logger) (*DeviceManager, error) {
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}
	return &DeviceManager{
		driver:   driver,
		cfg:      cfg.withDefaults(),
		logger:   logger,
		clock:    clock.New(),
		scene:    newSceneState(),
		registry: &listenerRegistry{},
	}, nil
}

// Start opens the hardware connection, enables force output, and starts the
// scheduler goroutine driving the servicing loop. On failure the device is
// left closed; Start may be retried. Starting a running manager is a no-op.
func (m *DeviceManager) Start(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if m.running {
		return nil
	}

	if err := m.driver.Open(ctx); err != nil {
		return errors.Wrap(err, "initializing haptic device")
	}
	if err := m.driver.EnableForceOutput(ctx); err != nil {
		goutils.UncheckedError(m.driver.Close(ctx))
		return errors.Wrap(err, "enabling force output")
	}

	period := m.driver.UpdateRate()
	if period <= 0 {
		period = time.Millisecond
	}
	loop := newDeviceLoop(m.driver, m.scene, m.registry, m.cfg, m.clock, m.logger)

	cancelCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer m.activeBackgroundWorkers.Done()
		ticker := m.clock.Ticker(period)
		defer ticker.Stop()
		for {
			select {
			case <-cancelCtx.Done():
				return
			case <-ticker.C:
				loop.tick()
			}
		}
	})

	m.running = true
	m.logger.Infow("haptic device started", "period", period)
	return nil
}

// Stop halts the scheduler and disables the hardware connection. It is safe
// to call on a manager that was never started and safe to call concurrently
// with an in-flight tick: it does not return until the scheduler goroutine
// has drained.
func (m *DeviceManager) Stop(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	if !m.running {
		return nil
	}
	m.cancel()
	m.activeBackgroundWorkers.Wait()
	m.running = false
	err := m.driver.Close(ctx)
	m.logger.Infow("haptic device stopped")
	return err
}

// Close stops the device session.
func (m *DeviceManager) Close(ctx context.Context) error {
	return m.Stop(ctx)
}

// RegisterListener appends l to the ordered listener set. There is no removal
// and no deduplication; l must outlive the device session and its methods
// must not block.
func (m *DeviceManager) RegisterListener(l Listener) {
	m.registry.add(l)
}

// ClearMolecule removes all mirrored atoms.
func (m *DeviceManager) ClearMolecule() {
	m.scene.clearAtoms()
}

// AddAtom appends one atom to the mirrored molecule.
func (m *DeviceManager) AddAtom(a Atom) {
	m.scene.addAtom(a)
}

// UpdateAtom replaces the atom at a.ID and errors if no such atom exists.
func (m *DeviceManager) UpdateAtom(a Atom) error {
	return m.scene.updateAtom(a)
}

// ReplaceMolecule swaps the whole mirrored molecule in one step.
func (m *DeviceManager) ReplaceMolecule(atoms []Atom) {
	m.scene.replaceAtoms(atoms)
}

// UpdateGradients overwrites the per-atom gradient table from packed
// 3-vectors; len(flat) must be a multiple of 3.
func (m *DeviceManager) UpdateGradients(flat []float64) error {
	return m.scene.setGradients(flat)
}

// SetGuidanceMode enables or disables gradient-derived guidance force.
func (m *DeviceManager) SetGuidanceMode(enabled bool) {
	m.scene.setGuidance(enabled)
}

// SetTransforms replaces the device/application transform pair from two flat
// row-major 16-element matrices.
func (m *DeviceManager) SetTransforms(flatTransform, flatInverse []float64) error {
	return m.scene.setTransforms(flatTransform, flatInverse)
}
