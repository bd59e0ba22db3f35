package fake

import (
	"context"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/molviz/haptics/haptics"
)

func TestDriverReplaysFrames(t *testing.T) {
	d := NewDriver()

	f, err := d.Frame()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f, test.ShouldResemble, haptics.Frame{})

	first := haptics.Frame{Position: r3.Vector{X: 1}}
	second := haptics.Frame{Position: r3.Vector{X: 2}, Buttons: haptics.Button1}
	d.PushFrame(first)
	d.PushFrame(second)

	f, _ = d.Frame()
	test.That(t, f, test.ShouldResemble, first)
	f, _ = d.Frame()
	test.That(t, f, test.ShouldResemble, second)

	// the last frame repeats once the queue drains
	f, _ = d.Frame()
	test.That(t, f, test.ShouldResemble, second)
}

func TestDriverLifecycleAndForces(t *testing.T) {
	ctx := context.Background()
	d := NewDriver()
	test.That(t, d.Opened(), test.ShouldBeFalse)

	test.That(t, d.Open(ctx), test.ShouldBeNil)
	test.That(t, d.EnableForceOutput(ctx), test.ShouldBeNil)
	test.That(t, d.Opened(), test.ShouldBeTrue)
	test.That(t, d.ForceEnabled(), test.ShouldBeTrue)

	test.That(t, d.SetForce(r3.Vector{X: 1}), test.ShouldBeNil)
	test.That(t, d.SetForce(r3.Vector{Y: 2}), test.ShouldBeNil)
	test.That(t, d.Forces(), test.ShouldResemble, []r3.Vector{{X: 1}, {Y: 2}})

	test.That(t, d.Close(ctx), test.ShouldBeNil)
	test.That(t, d.Opened(), test.ShouldBeFalse)
	test.That(t, d.ForceEnabled(), test.ShouldBeFalse)
}
