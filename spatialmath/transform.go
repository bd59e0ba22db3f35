// Package spatialmath provides the coordinate math shared by the haptic device
// core: affine mappings between the device-native frame reported by the hardware
// and the application (scene) frame used by the visualization.
package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix4 is a row-major 4x4 affine transform whose fourth column holds the
// translation. Only the top three rows participate in point transformation.
type Matrix4 [16]float64

// NewMatrix4 builds a Matrix4 from a flat, row-major slice of 16 elements.
func NewMatrix4(flat []float64) (Matrix4, error) {
	var m Matrix4
	if len(flat) != 16 {
		return m, errors.Errorf("expected 16 matrix elements, got %d", len(flat))
	}
	copy(m[:], flat)
	return m, nil
}

// Identity4 returns the identity transform.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Apply transforms the point v, rotating/scaling by the upper-left 3x3 block
// and then adding the translation column.
func (m Matrix4) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// ToApplicationCoordinates maps a device-native position into application
// coordinates: the affine transform followed by a uniform downscale of all
// three components.
func ToApplicationCoordinates(devicePos r3.Vector, m Matrix4, scale float64) r3.Vector {
	return m.Apply(devicePos).Mul(1 / scale)
}

// ToDeviceCoordinates maps an application position back into device-native
// coordinates by applying inv to the uniformly upscaled position. The result
// inverts ToApplicationCoordinates only when inv is the true matrix inverse of
// the forward transform; no consistency check is performed here.
func ToDeviceCoordinates(appPos r3.Vector, inv Matrix4, scale float64) r3.Vector {
	return inv.Apply(appPos.Mul(scale))
}

// Pair couples a forward transform with its inverse so both directions of the
// device/application mapping stay consistent.
type Pair struct {
	Transform Matrix4
	Inverse   Matrix4
}

// IdentityPair returns the trivially consistent identity pair.
func IdentityPair() Pair {
	return Pair{Transform: Identity4(), Inverse: Identity4()}
}

// PairFromMatrix computes the exact inverse of m and returns the coupled pair.
// It errors when m is singular.
func PairFromMatrix(m Matrix4) (Pair, error) {
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(4, 4, append([]float64(nil), m[:]...))); err != nil {
		return Pair{}, errors.Wrap(err, "cannot invert transform matrix")
	}
	p := Pair{Transform: m}
	copy(p.Inverse[:], inv.RawMatrix().Data)
	return p, nil
}
