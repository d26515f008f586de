package viewport

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/beetlebugorg/viewport/internal/geom"
)

// Footprint is the world-space polygon a viewport exposes: an ordered
// vertex sequence whose winding follows the extraction contract (fixed
// corner order for rectangular viewports, stored clip order otherwise).
type Footprint struct {
	points geom.Polygon
}

// Points returns the footprint vertices in order. The slice is owned by
// the footprint; callers must not modify it.
func (f *Footprint) Points() []v3.Vec {
	return f.points
}

// VertexCount returns the number of vertices.
func (f *Footprint) VertexCount() int {
	return len(f.points)
}

// Bounds returns the axis-aligned bounding box of the footprint, or nil
// for an empty footprint. Bounds are recomputed on every call, never
// cached.
func (f *Footprint) Bounds() *Bounds {
	b := geom.ComputeBounds(f.points)
	if b == nil {
		return nil
	}
	return &Bounds{Min: b.Min, Max: b.Max}
}

// Contains reports whether the point (x, y) lies inside the footprint's XY
// projection, by ray casting. The footprint must have at least 3 vertices.
func (f *Footprint) Contains(x, y float64) (bool, error) {
	return geom.Contains(x, y, f.points)
}

// ContainsTolerance reports whether (x, y) or any of four axis-aligned
// probe points offset by tol lies inside the footprint. Tolerance must be
// non-negative; values below 1e-12 behave exactly like Contains.
func (f *Footprint) ContainsTolerance(x, y, tol float64) (bool, error) {
	return geom.ContainsTolerance(x, y, f.points, tol)
}

// WindingNumber returns the signed winding of the footprint around (x, y).
// It backs an independent containment cross-check: nonzero means inside.
func (f *Footprint) WindingNumber(x, y float64) int {
	return geom.WindingNumber(x, y, f.points)
}

// Extractor computes viewport footprints.
//
// Create one with NewExtractor. Extractors are stateless and safe for
// concurrent use; every call is a pure function of its inputs.
type Extractor interface {
	// Extract computes the footprint of the given viewport snapshot. For
	// a clipped viewport a read session is opened internally for the
	// duration of the call.
	Extract(vp Viewport) (*Footprint, error)

	// ExtractWithSession is Extract with a caller-supplied read session.
	// The session is borrowed: the extractor never closes it.
	ExtractWithSession(vp Viewport, session ReadSession) (*Footprint, error)
}

// NewExtractor creates an extractor over the given scene store. The store
// may be nil when only rectangular (unclipped) viewports are extracted.
//
// Example:
//
//	store := viewport.NewStore()
//	ex := viewport.NewExtractor(store)
//	fp, err := ex.Extract(vp)
func NewExtractor(store *Store) Extractor {
	return &extractorWrapper{store: store}
}

// extractorWrapper adapts the internal engine to the public API.
type extractorWrapper struct {
	store *Store
}

func (e *extractorWrapper) Extract(vp Viewport) (*Footprint, error) {
	return e.ExtractWithSession(vp, nil)
}

func (e *extractorWrapper) ExtractWithSession(vp Viewport, session ReadSession) (*Footprint, error) {
	internal := vp.toInternal()
	poly, err := geom.ExtractFootprint(e.store.opener(), &internal, session)
	if err != nil {
		return nil, err
	}
	return &Footprint{points: poly}, nil
}

// InViewport reports whether the world point (x, y) falls inside the
// region the viewport exposes. It extracts the footprint and delegates to
// the tolerance containment test with opts.Tolerance.
func InViewport(ex Extractor, vp Viewport, x, y float64, opts ExtractOptions) (bool, error) {
	var fp *Footprint
	var err error
	if opts.Session != nil {
		fp, err = ex.ExtractWithSession(vp, opts.Session)
	} else {
		fp, err = ex.Extract(vp)
	}
	if err != nil {
		return false, err
	}
	return fp.ContainsTolerance(x, y, opts.Tolerance)
}
