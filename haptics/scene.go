package haptics

import (
	"sync"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/molviz/haptics/spatialmath"
)

// sceneState mirrors the parts of the application's scene the servicing loop
// needs each tick. The three state categories are guarded by independent
// mutexes that are never held together: a writer blocks the loop for no
// longer than one copy, and lock ordering can never deadlock. An atom
// snapshot and a gradient snapshot taken in the same tick may therefore
// reflect writes from slightly different instants; low tick latency wins over
// cross-category consistency here.
type sceneState struct {
	atomsMu sync.Mutex
	atoms   []Atom

	gradientsMu sync.Mutex
	gradients   []r3.Vector
	guidance    bool

	matrixMu  sync.Mutex
	transform spatialmath.Matrix4
	inverse   spatialmath.Matrix4
}

func newSceneState() *sceneState {
	return &sceneState{
		transform: spatialmath.Identity4(),
		inverse:   spatialmath.Identity4(),
	}
}

func (s *sceneState) clearAtoms() {
	s.atomsMu.Lock()
	defer s.atomsMu.Unlock()
	s.atoms = nil
}

func (s *sceneState) addAtom(a Atom) {
	s.atomsMu.Lock()
	defer s.atomsMu.Unlock()
	s.atoms = append(s.atoms, a)
}

// updateAtom replaces the atom stored at index a.ID. The id must address an
// existing slot; out-of-range ids are rejected rather than silently indexing
// past the molecule.
func (s *sceneState) updateAtom(a Atom) error {
	s.atomsMu.Lock()
	defer s.atomsMu.Unlock()
	if a.ID < 0 || a.ID >= len(s.atoms) {
		return errors.Errorf("no atom at id %d (molecule has %d atoms)", a.ID, len(s.atoms))
	}
	s.atoms[a.ID] = a
	return nil
}

// replaceAtoms swaps in a whole new molecule under a single lock acquisition.
func (s *sceneState) replaceAtoms(atoms []Atom) {
	s.atomsMu.Lock()
	defer s.atomsMu.Unlock()
	s.atoms = append([]Atom(nil), atoms...)
}

// atomsSnapshot returns an independent copy safe to read lock-free.
func (s *sceneState) atomsSnapshot() []Atom {
	s.atomsMu.Lock()
	defer s.atomsMu.Unlock()
	return append([]Atom(nil), s.atoms...)
}

func (s *sceneState) setGuidance(enabled bool) {
	s.gradientsMu.Lock()
	defer s.gradientsMu.Unlock()
	s.guidance = enabled
}

// setGradients overwrites the gradient table from count/3 packed 3-vectors.
// The table grows to fit new indices and never shrinks.
func (s *sceneState) setGradients(flat []float64) error {
	if len(flat)%3 != 0 {
		return errors.Errorf("gradient values must come in 3-vectors, got %d values", len(flat))
	}
	s.gradientsMu.Lock()
	defer s.gradientsMu.Unlock()
	n := len(flat) / 3
	for len(s.gradients) < n {
		s.gradients = append(s.gradients, r3.Vector{})
	}
	for i := 0; i < n; i++ {
		s.gradients[i] = r3.Vector{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
	}
	return nil
}

// gradientsSnapshot returns an independent copy of the gradient table along
// with the guidance flag, both read under the same lock.
func (s *sceneState) gradientsSnapshot() ([]r3.Vector, bool) {
	s.gradientsMu.Lock()
	defer s.gradientsMu.Unlock()
	return append([]r3.Vector(nil), s.gradients...), s.guidance
}

// setTransforms replaces the transform pair wholesale from two flat row-major
// 16-element matrices. Callers are responsible for supplying a consistent
// forward/inverse pair; see spatialmath.PairFromMatrix.
func (s *sceneState) setTransforms(flatTransform, flatInverse []float64) error {
	transform, err := spatialmath.NewMatrix4(flatTransform)
	if err != nil {
		return errors.Wrap(err, "transform")
	}
	inverse, err := spatialmath.NewMatrix4(flatInverse)
	if err != nil {
		return errors.Wrap(err, "inverse transform")
	}
	s.matrixMu.Lock()
	defer s.matrixMu.Unlock()
	s.transform = transform
	s.inverse = inverse
	return nil
}

func (s *sceneState) transformsSnapshot() (spatialmath.Matrix4, spatialmath.Matrix4) {
	s.matrixMu.Lock()
	defer s.matrixMu.Unlock()
	return s.transform, s.inverse
}
