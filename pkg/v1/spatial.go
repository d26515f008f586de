package viewport

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Bounds is an axis-aligned world-space bounding box.
//
// Bounds are derived values: always recomputed from a footprint, never
// persisted.
type Bounds struct {
	Min v3.Vec
	Max v3.Vec
}

// Contains returns true if the point (x, y) is within the XY projection of
// the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X &&
		y >= b.Min.Y && y <= b.Max.Y
}

// ContainsPoint returns true if the 3D point is within the bounds.
func (b Bounds) ContainsPoint(p v3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects returns true if the given bounds intersects with this bounds
// in the XY plane.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.Max.X < b.Min.X ||
		other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y ||
		other.Min.Y > b.Max.Y)
}

// Expand returns a new Bounds expanded by the given margin in all
// directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		Min: v3.Vec{X: b.Min.X - margin, Y: b.Min.Y - margin, Z: b.Min.Z - margin},
		Max: v3.Vec{X: b.Max.X + margin, Y: b.Max.Y + margin, Z: b.Max.Z + margin},
	}
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	u := b
	if other.Min.X < u.Min.X {
		u.Min.X = other.Min.X
	}
	if other.Min.Y < u.Min.Y {
		u.Min.Y = other.Min.Y
	}
	if other.Min.Z < u.Min.Z {
		u.Min.Z = other.Min.Z
	}
	if other.Max.X > u.Max.X {
		u.Max.X = other.Max.X
	}
	if other.Max.Y > u.Max.Y {
		u.Max.Y = other.Max.Y
	}
	if other.Max.Z > u.Max.Z {
		u.Max.Z = other.Max.Z
	}
	return u
}
