package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// arbitraryAxisBound is the threshold below which the view direction is
// considered close enough to the world Z axis that the world Y axis is used
// as the up reference when deriving the camera plane frame.
const arbitraryAxisBound = 1.0 / 64.0

// Transform is an affine map over 3D points: a 3x3 linear part plus a
// translation column, stored row-major. The zero value is NOT the identity;
// use Identity.
type Transform struct {
	m [3][4]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	var t Transform
	t.m[0][0] = 1
	t.m[1][1] = 1
	t.m[2][2] = 1
	return t
}

// Translation returns the transform that adds d to every point.
func Translation(d v3.Vec) Transform {
	t := Identity()
	t.m[0][3] = d.X
	t.m[1][3] = d.Y
	t.m[2][3] = d.Z
	return t
}

// ScaleAbout returns a uniform scale by k pivoted at the given point.
func ScaleAbout(k float64, pivot v3.Vec) Transform {
	var t Transform
	t.m[0][0] = k
	t.m[1][1] = k
	t.m[2][2] = k
	t.m[0][3] = pivot.X * (1 - k)
	t.m[1][3] = pivot.Y * (1 - k)
	t.m[2][3] = pivot.Z * (1 - k)
	return t
}

// RotationAbout returns the rotation by angle (radians, right hand rule)
// about the axis direction through the pivot point.
func RotationAbout(axis v3.Vec, angle float64, pivot v3.Vec) (Transform, error) {
	if axis.Length() == 0 {
		return Transform{}, &ErrInvalidArgument{Reason: "rotation axis must be nonzero"}
	}
	k := axis.Normalize()
	c := math.Cos(angle)
	s := math.Sin(angle)
	ic := 1 - c

	// Rodrigues rotation matrix.
	var t Transform
	t.m[0][0] = c + k.X*k.X*ic
	t.m[0][1] = k.X*k.Y*ic - k.Z*s
	t.m[0][2] = k.X*k.Z*ic + k.Y*s
	t.m[1][0] = k.Y*k.X*ic + k.Z*s
	t.m[1][1] = c + k.Y*k.Y*ic
	t.m[1][2] = k.Y*k.Z*ic - k.X*s
	t.m[2][0] = k.Z*k.X*ic - k.Y*s
	t.m[2][1] = k.Z*k.Y*ic + k.X*s
	t.m[2][2] = c + k.Z*k.Z*ic

	// Conjugate with the pivot: translate pivot to origin, rotate,
	// translate back. Folded into the translation column.
	t.m[0][3] = pivot.X - (t.m[0][0]*pivot.X + t.m[0][1]*pivot.Y + t.m[0][2]*pivot.Z)
	t.m[1][3] = pivot.Y - (t.m[1][0]*pivot.X + t.m[1][1]*pivot.Y + t.m[1][2]*pivot.Z)
	t.m[2][3] = pivot.Z - (t.m[2][0]*pivot.X + t.m[2][1]*pivot.Y + t.m[2][2]*pivot.Z)
	return t, nil
}

// PlaneToWorld returns the basis change from the plane whose normal is the
// given direction to world coordinates. The in-plane X axis follows the
// arbitrary axis convention: when the normal is within 1/64 of the world Z
// axis in both X and Y the world Y axis is the up reference, otherwise the
// world Z axis is.
func PlaneToWorld(normal v3.Vec) (Transform, error) {
	if normal.Length() == 0 {
		return Transform{}, &ErrInvalidArgument{Reason: "view direction must be nonzero"}
	}
	n := normal.Normalize()

	var up v3.Vec
	if math.Abs(n.X) < arbitraryAxisBound && math.Abs(n.Y) < arbitraryAxisBound {
		up = v3.Vec{Y: 1}
	} else {
		up = v3.Vec{Z: 1}
	}

	ax := up.Cross(n).Normalize()
	ay := n.Cross(ax)

	// Basis vectors become the matrix columns: plane X maps to ax,
	// plane Y to ay, plane Z to the normal.
	var t Transform
	t.m[0][0], t.m[0][1], t.m[0][2] = ax.X, ay.X, n.X
	t.m[1][0], t.m[1][1], t.m[1][2] = ax.Y, ay.Y, n.Y
	t.m[2][0], t.m[2][1], t.m[2][2] = ax.Z, ay.Z, n.Z
	return t, nil
}

// Compose returns the transform equivalent to applying b first, then a.
// Composition is not commutative; the viewport chain depends on the exact
// order world = cameraToWorld ∘ sheetToCamera.
func Compose(a, b Transform) Transform {
	var t Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			t.m[i][j] = a.m[i][0]*b.m[0][j] + a.m[i][1]*b.m[1][j] + a.m[i][2]*b.m[2][j]
		}
		t.m[i][3] += a.m[i][3]
	}
	return t
}

// Apply maps a point through the transform.
func (t Transform) Apply(p v3.Vec) v3.Vec {
	return v3.Vec{
		X: t.m[0][0]*p.X + t.m[0][1]*p.Y + t.m[0][2]*p.Z + t.m[0][3],
		Y: t.m[1][0]*p.X + t.m[1][1]*p.Y + t.m[1][2]*p.Z + t.m[1][3],
		Z: t.m[2][0]*p.X + t.m[2][1]*p.Y + t.m[2][2]*p.Z + t.m[2][3],
	}
}

// Matrix returns the affine matrix rows (linear part plus translation
// column). Used by the diagnostic report.
func (t Transform) Matrix() [3][4]float64 {
	return t.m
}

// BuildSheetToCamera builds the transform from sheet space to camera space:
// scale by 1/customScale about the window center, then translate by the
// vector from the window center to the view center.
func BuildSheetToCamera(vp *Viewport) (Transform, error) {
	if err := vp.validate(); err != nil {
		return Transform{}, err
	}
	center := liftSheet(vp.Center)
	shift := Translation(liftSheet(vp.ViewCenter).Sub(center))
	scale := ScaleAbout(1/vp.CustomScale, center)
	return Compose(shift, scale), nil
}

// BuildCameraToWorld builds the transform from camera space to world space:
// change basis from the camera plane to world, translate to the view
// target, then rotate by the negated twist angle about the view direction
// through the target.
func BuildCameraToWorld(vp *Viewport) (Transform, error) {
	if err := vp.validate(); err != nil {
		return Transform{}, err
	}
	basis, err := PlaneToWorld(vp.Direction)
	if err != nil {
		return Transform{}, err
	}
	place := Translation(vp.Target)
	twist, err := RotationAbout(vp.Direction, -vp.Twist, vp.Target)
	if err != nil {
		return Transform{}, err
	}
	return Compose(twist, Compose(place, basis)), nil
}

// BuildSheetToWorld composes the full viewport chain
// world = cameraToWorld ∘ sheetToCamera.
func BuildSheetToWorld(vp *Viewport) (Transform, error) {
	sheetToCamera, err := BuildSheetToCamera(vp)
	if err != nil {
		return Transform{}, err
	}
	cameraToWorld, err := BuildCameraToWorld(vp)
	if err != nil {
		return Transform{}, err
	}
	return Compose(cameraToWorld, sheetToCamera), nil
}
