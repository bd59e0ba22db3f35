package haptics

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestClosestAtomIndex(t *testing.T) {
	test.That(t, closestAtomIndex(nil, r3.Vector{}), test.ShouldEqual, -1)

	atoms := []Atom{
		{ID: 0, Position: r3.Vector{X: 10}},
		{ID: 1, Position: r3.Vector{X: 1}},
		{ID: 2, Position: r3.Vector{X: 4}},
	}
	test.That(t, closestAtomIndex(atoms, r3.Vector{}), test.ShouldEqual, 1)
	test.That(t, closestAtomIndex(atoms, r3.Vector{X: 8}), test.ShouldEqual, 0)

	// ties go to the lowest index
	tied := []Atom{
		{ID: 0, Position: r3.Vector{X: 2}},
		{ID: 1, Position: r3.Vector{X: -2}},
	}
	test.That(t, closestAtomIndex(tied, r3.Vector{}), test.ShouldEqual, 0)
}

func TestWithinCaptureZone(t *testing.T) {
	a := Atom{Position: r3.Vector{X: 1}, Radius: 2}
	test.That(t, withinCaptureZone(a, r3.Vector{X: 7}, 3), test.ShouldBeTrue)  // exactly 3x radius
	test.That(t, withinCaptureZone(a, r3.Vector{X: 7.001}, 3), test.ShouldBeFalse)
	test.That(t, withinCaptureZone(a, r3.Vector{X: 1}, 3), test.ShouldBeTrue)
}
