// Package main demonstrates the haptic device core against the fake driver:
// it mirrors a tiny molecule, scripts some pen motion, and prints the pose
// and button events a visualization would receive.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/utils"

	"github.com/molviz/haptics/haptics"
	"github.com/molviz/haptics/haptics/fake"
	"github.com/molviz/haptics/spatialmath"
)

var logger = golog.NewDevelopmentLogger("hapticmove")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

type printingListener struct{}

func (printingListener) Move(position r3.Vector, azimuth, elevation, zoom float64) {
	fmt.Printf("move pos=%v azimuth=%.2f elevation=%.2f zoom=%.2f\n", position, azimuth, elevation, zoom)
}

func (printingListener) FirstButtonDown() { fmt.Println("first button down") }
func (printingListener) FirstButtonUp()   { fmt.Println("first button up") }

func (printingListener) SecondButtonDown(atomID int) {
	fmt.Printf("second button down, selected atom %d\n", atomID)
}

func (printingListener) SecondButtonUp() { fmt.Println("second button up") }

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	driver := fake.NewDriver()

	// a pen stroke across the molecule, pressing the second button on atom 1
	prev := r3.Vector{}
	for i := 1; i <= 40; i++ {
		pos := r3.Vector{X: float64(i), Y: float64(i) / 2}
		frame := haptics.Frame{Position: pos, LastPosition: prev}
		if i >= 10 && i < 30 {
			frame.Buttons = haptics.Button2
		}
		if i > 10 && i <= 30 {
			frame.LastButtons = haptics.Button2
		}
		driver.PushFrame(frame)
		prev = pos
	}

	mgr, err := haptics.NewDeviceManager(driver, haptics.Config{}, logger)
	if err != nil {
		return err
	}
	mgr.RegisterListener(printingListener{})

	mgr.ReplaceMolecule([]haptics.Atom{
		{ID: 0, Position: r3.Vector{X: 0.5}, Radius: 0.3},
		{ID: 1, Position: r3.Vector{X: 1.5, Y: 0.7}, Radius: 0.4},
	})
	if err := mgr.UpdateGradients([]float64{0, 0, 0, 0.2, -0.1, 0}); err != nil {
		return err
	}
	mgr.SetGuidanceMode(true)

	pair, err := spatialmath.PairFromMatrix(spatialmath.Identity4())
	if err != nil {
		return err
	}
	if err := mgr.SetTransforms(pair.Transform[:], pair.Inverse[:]); err != nil {
		return err
	}

	if err := mgr.Start(ctx); err != nil {
		return err
	}
	defer func() {
		utils.UncheckedError(mgr.Stop(context.Background()))
	}()

	if !utils.SelectContextOrWait(ctx, 2*time.Second) {
		return ctx.Err()
	}
	return nil
}
