package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Bounds is an axis-aligned world-space bounding box. Bounds are derived
// values: always recomputed from a footprint, never stored.
type Bounds struct {
	Min v3.Vec
	Max v3.Vec
}

// ComputeBounds folds min/max over the polygon's vertices. Returns nil for
// an empty polygon; that is a structurally valid input, not an error.
func ComputeBounds(poly Polygon) *Bounds {
	if len(poly) == 0 {
		return nil
	}

	b := Bounds{Min: poly[0], Max: poly[0]}
	for _, p := range poly[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
		if p.Z < b.Min.Z {
			b.Min.Z = p.Z
		}
		if p.Z > b.Max.Z {
			b.Max.Z = p.Z
		}
	}
	return &b
}
