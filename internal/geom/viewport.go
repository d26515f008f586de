// Package geom computes the world-space footprint of sheet viewports and
// answers containment queries against it.
//
// A viewport is a rectangular (optionally clipped) window on a 2D layout
// sheet exposing a region of a 3D scene. The engine rebuilds the
// sheet-to-camera and camera-to-world transforms purely from the stored
// viewport parameters, so footprints can be computed for any number of
// viewports without activating them one at a time.
package geom

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Viewport is an immutable snapshot of the stored parameters of a single
// sheet viewport. All fields are read at construction time; the engine
// never mutates a Viewport.
type Viewport struct {
	Center      v2.Vec  // window center on the sheet (sheet space)
	Width       float64 // window width (sheet space)
	Height      float64 // window height (sheet space)
	ViewCenter  v2.Vec  // view center (camera space)
	Target      v3.Vec  // view target (world space)
	Direction   v3.Vec  // view direction, normal of the camera plane (world space)
	Twist       float64 // twist angle about the view direction, radians
	CustomScale float64 // sheet units per camera unit, must be nonzero
	Clipped     bool    // true when a non-rectangular clip applies
	ClipRef     EntityRef
}

// validate checks the preconditions shared by all transform builders.
func (vp *Viewport) validate() error {
	if vp == nil {
		return &ErrInvalidArgument{Reason: "nil viewport"}
	}
	if vp.CustomScale == 0 {
		return &ErrInvalidArgument{Reason: "custom scale must be nonzero"}
	}
	return nil
}

// liftSheet lifts a sheet-space 2D point into 3D with zero Z.
func liftSheet(p v2.Vec) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y}
}
