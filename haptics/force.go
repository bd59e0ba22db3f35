package haptics

import "github.com/golang/geo/r3"

// computeForce derives the force written back to the device for the selected
// atom, all in device-native coordinates. Outside guidance mode, or while the
// secondary button is up, the force is zero; the caller still writes that
// zero so no stale force keeps acting on the pen. In guidance mode the pen is
// pulled toward the gradient-displaced target, scaled by the anchor stiffness
// and clamped to the device's continuous-force ceiling.
func computeForce(atomPos, gradient r3.Vector, guidance, secondButtonDown bool, stiffness, ceiling float64) r3.Vector {
	if !guidance || !secondButtonDown {
		return r3.Vector{}
	}
	target := atomPos.Sub(gradient)
	force := target.Sub(atomPos).Mul(stiffness)
	if mag := force.Norm(); mag > ceiling {
		force = force.Mul(ceiling / mag)
	}
	return force
}
