package geom

import (
	"fmt"
)

// toleranceFloor is the tolerance below which ContainsTolerance degenerates
// to the exact test without probing.
const toleranceFloor = 1e-12

// Contains reports whether the point (x, y) lies inside the polygon,
// testing against the polygon's XY projection by ray casting.
//
// An edge crosses the +X ray from the test point when exactly one endpoint
// Y is strictly below the test Y and the other is at or above it, and the
// edge's X at the test height is strictly greater than the test X. The
// half-open interval keeps a ray through a shared vertex from being counted
// once per adjacent edge; the inequality directions are part of the
// contract and must not be flipped.
func Contains(x, y float64, poly Polygon) (bool, error) {
	if len(poly) < 3 {
		return false, &ErrInvalidArgument{
			Reason: fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(poly)),
		}
	}

	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if (a.Y < y && y <= b.Y) || (b.Y < y && y <= a.Y) {
			ix := a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if ix > x {
				inside = !inside
			}
		}
	}
	return inside, nil
}

// ContainsWinding reports containment by the winding number test. It is an
// independent cross-check with the same contract as Contains and agrees
// with it on every simple polygon.
func ContainsWinding(x, y float64, poly Polygon) (bool, error) {
	if len(poly) < 3 {
		return false, &ErrInvalidArgument{
			Reason: fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(poly)),
		}
	}
	return WindingNumber(x, y, poly) != 0, nil
}

// WindingNumber returns the signed number of times the polygon's XY
// projection wraps around the point (x, y). Upward crossings with the point
// left of the edge count +1, downward crossings with the point right of the
// edge count -1.
func WindingNumber(x, y float64, poly Polygon) int {
	wn := 0
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if a.Y <= y {
			if b.Y > y && isLeft(a.X, a.Y, b.X, b.Y, x, y) > 0 {
				wn++
			}
		} else {
			if b.Y <= y && isLeft(a.X, a.Y, b.X, b.Y, x, y) < 0 {
				wn--
			}
		}
	}
	return wn
}

// isLeft returns a positive value when (px, py) is left of the directed
// edge a->b, negative when right, zero when collinear. Twice the signed
// area of the triangle.
func isLeft(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (px-ax)*(by-ay)
}

// ContainsTolerance reports whether (x, y) or any of its four axis-aligned
// probes at distance tol is inside the polygon. Probing absorbs the small
// numerical drift the transform chain introduces near a boundary without
// changing the exact-test semantics. Tolerances below 1e-12 short-circuit
// to the exact test.
func ContainsTolerance(x, y float64, poly Polygon, tol float64) (bool, error) {
	if tol < 0 {
		return false, &ErrInvalidArgument{
			Reason: fmt.Sprintf("tolerance must be non-negative, got %g", tol),
		}
	}
	if tol < toleranceFloor {
		return Contains(x, y, poly)
	}

	probes := [5][2]float64{
		{x, y},
		{x - tol, y},
		{x + tol, y},
		{x, y - tol},
		{x, y + tol},
	}
	for _, p := range probes {
		inside, err := Contains(p[0], p[1], poly)
		if err != nil {
			return false, err
		}
		if inside {
			return true, nil
		}
	}
	return false, nil
}
