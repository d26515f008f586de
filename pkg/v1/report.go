package viewport

import (
	"fmt"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/beetlebugorg/viewport/internal/geom"
)

// TransformReport returns a human-readable dump of the viewport's two
// transformation matrices and one sample corner mapping. The output is
// descriptive only, meant for debugging; its exact layout carries no
// contract.
func TransformReport(vp Viewport) (string, error) {
	internal := vp.toInternal()

	sheetToCamera, err := geom.BuildSheetToCamera(&internal)
	if err != nil {
		return "", err
	}
	cameraToWorld, err := geom.BuildCameraToWorld(&internal)
	if err != nil {
		return "", err
	}
	composed := geom.Compose(cameraToWorld, sheetToCamera)

	var b strings.Builder
	fmt.Fprintf(&b, "viewport transform report\n")
	fmt.Fprintf(&b, "  center=(%g, %g) extents=%gx%g scale=%g twist=%g rad\n",
		vp.Center.X, vp.Center.Y, vp.Width, vp.Height, vp.CustomScale, vp.Twist)
	fmt.Fprintf(&b, "  target=(%g, %g, %g) direction=(%g, %g, %g)\n",
		vp.Target.X, vp.Target.Y, vp.Target.Z,
		vp.Direction.X, vp.Direction.Y, vp.Direction.Z)

	writeMatrix(&b, "sheet -> camera", sheetToCamera)
	writeMatrix(&b, "camera -> world", cameraToWorld)

	// Sample mapping: the bottom-left window corner through the full chain.
	corner := v3.Vec{
		X: vp.Center.X - vp.Width/2,
		Y: vp.Center.Y - vp.Height/2,
	}
	mapped := composed.Apply(corner)
	fmt.Fprintf(&b, "sample: bottom-left corner (%g, %g, %g) -> world (%g, %g, %g)\n",
		corner.X, corner.Y, corner.Z, mapped.X, mapped.Y, mapped.Z)

	return b.String(), nil
}

func writeMatrix(b *strings.Builder, label string, t geom.Transform) {
	fmt.Fprintf(b, "%s:\n", label)
	for _, row := range t.Matrix() {
		fmt.Fprintf(b, "  [%12.6f %12.6f %12.6f | %12.6f]\n", row[0], row[1], row[2], row[3])
	}
}
