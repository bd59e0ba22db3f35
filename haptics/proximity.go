package haptics

import "github.com/golang/geo/r3"

// closestAtomIndex returns the index of the atom nearest to the pointer, or
// -1 for an empty molecule. Ties go to the lowest index. Molecules are small
// (tens to low hundreds of atoms), so a linear scan per tick is well within
// the servicing loop's budget.
func closestAtomIndex(atoms []Atom, pointer r3.Vector) int {
	closest := -1
	var best float64
	for i, a := range atoms {
		d := a.Position.Distance(pointer)
		if closest == -1 || d < best {
			closest = i
			best = d
		}
	}
	return closest
}

// withinCaptureZone reports whether the pointer is on the atom: within
// factor times the atom's nominal radius, boundary inclusive.
func withinCaptureZone(a Atom, pointer r3.Vector, factor float64) bool {
	return a.Position.Distance(pointer) <= factor*a.Radius
}
