package viewport

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/beetlebugorg/viewport/internal/geom"
)

// EntityRef identifies an object in the scene store. The zero value means
// "no reference".
type EntityRef = geom.EntityRef

// Viewport is an immutable snapshot of the stored parameters of a sheet
// viewport. Populate it from the surrounding document system and hand it
// to an Extractor; the engine never mutates it.
type Viewport struct {
	// Center is the window center on the sheet, in sheet space.
	Center v2.Vec

	// Width and Height are the window extents in sheet space.
	Width  float64
	Height float64

	// ViewCenter is the view center in camera space.
	ViewCenter v2.Vec

	// Target is the view target point in world space.
	Target v3.Vec

	// Direction is the view direction in world space: the normal of the
	// camera plane. Must be nonzero; it need not be unit length.
	Direction v3.Vec

	// Twist is the twist angle about the view direction, in radians.
	Twist float64

	// CustomScale is the viewport scale in sheet units per camera unit.
	// Must be nonzero.
	CustomScale float64

	// Clipped is true when a non-rectangular clip boundary applies.
	Clipped bool

	// ClipRef references the clip boundary entity in the scene store.
	// Ignored unless Clipped is set.
	ClipRef EntityRef
}

// Validate checks the snapshot's preconditions: nonzero custom scale,
// nonzero view direction, non-negative extents.
func (vp Viewport) Validate() error {
	if vp.CustomScale == 0 {
		return &ErrInvalidArgument{Reason: "custom scale must be nonzero"}
	}
	if (vp.Direction == v3.Vec{}) {
		return &ErrInvalidArgument{Reason: "view direction must be nonzero"}
	}
	if vp.Width < 0 || vp.Height < 0 {
		return &ErrInvalidArgument{Reason: "window extents must be non-negative"}
	}
	return nil
}

// toInternal converts the public snapshot to the engine descriptor.
func (vp Viewport) toInternal() geom.Viewport {
	return geom.Viewport{
		Center:      vp.Center,
		Width:       vp.Width,
		Height:      vp.Height,
		ViewCenter:  vp.ViewCenter,
		Target:      vp.Target,
		Direction:   vp.Direction,
		Twist:       vp.Twist,
		CustomScale: vp.CustomScale,
		Clipped:     vp.Clipped,
		ClipRef:     vp.ClipRef,
	}
}
