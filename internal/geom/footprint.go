package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Polygon is an ordered sequence of world-space points. Order is
// significant: vertex i connects to vertex i+1 mod n, and the winding it
// defines is part of the extraction contract.
type Polygon []v3.Vec

// ExtractFootprint computes the world-space polygon exposed by a viewport.
//
// A rectangular viewport yields its four corners in the fixed order
// bottom-left, top-left, top-right, bottom-right. A clipped viewport yields
// its clip boundary vertices in stored order. Either way every vertex is
// mapped through the composed sheet-to-world transform.
//
// The session parameter is optional. When nil and the viewport is clipped,
// a session is opened from the opener for the duration of vertex extraction
// and released before return on every path. A caller-supplied session is
// borrowed and never closed.
func ExtractFootprint(opener SessionOpener, vp *Viewport, session ReadSession) (Polygon, error) {
	if vp == nil {
		return nil, &ErrInvalidArgument{Reason: "nil viewport"}
	}
	xform, err := BuildSheetToWorld(vp)
	if err != nil {
		return nil, err
	}
	if vp.Clipped && vp.ClipRef != 0 {
		return extractClipped(opener, vp, session, xform)
	}
	return extractRect(vp, xform), nil
}

// extractRect builds the four rectangle corners in sheet space and maps
// them to world space. The corner order is a fixed invariant; callers
// depend on consistent winding.
func extractRect(vp *Viewport, xform Transform) Polygon {
	hw := vp.Width / 2
	hh := vp.Height / 2
	cx := vp.Center.X
	cy := vp.Center.Y

	corners := [4]v3.Vec{
		{X: cx - hw, Y: cy - hh}, // bottom-left
		{X: cx - hw, Y: cy + hh}, // top-left
		{X: cx + hw, Y: cy + hh}, // top-right
		{X: cx + hw, Y: cy - hh}, // bottom-right
	}

	poly := make(Polygon, 0, len(corners))
	for _, c := range corners {
		poly = append(poly, xform.Apply(c))
	}
	return poly
}

// extractClipped resolves the clip boundary and maps its vertices to world
// space, in stored order.
func extractClipped(opener SessionOpener, vp *Viewport, session ReadSession, xform Transform) (Polygon, error) {
	if session == nil {
		if opener == nil {
			return nil, &ErrInvalidArgument{Reason: "clipped viewport needs a read session or a session opener"}
		}
		opened, err := opener.OpenSession()
		if err != nil {
			return nil, &ErrTransformFailure{Op: "open read session", Err: err}
		}
		defer opened.Close()
		session = opened
	}

	verts, err := readClipVertices(session, vp.ClipRef)
	if err != nil {
		return nil, err
	}

	poly := make(Polygon, 0, len(verts))
	for _, v := range verts {
		poly = append(poly, xform.Apply(v))
	}
	return poly, nil
}
