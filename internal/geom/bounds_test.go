package geom

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// TestComputeBounds checks the min/max fold over footprint vertices.
func TestComputeBounds(t *testing.T) {
	poly, err := ExtractFootprint(nil, planViewport(), nil)
	if err != nil {
		t.Fatalf("ExtractFootprint failed: %v", err)
	}

	b := ComputeBounds(poly)
	if b == nil {
		t.Fatal("Expected non-nil bounds for rectangular footprint")
	}
	wantMin := v3.Vec{X: -5, Y: -5, Z: 0}
	wantMax := v3.Vec{X: 5, Y: 5, Z: 0}
	if !vecsAlmostEqual(b.Min, wantMin) {
		t.Errorf("Expected min %v, got %v", wantMin, b.Min)
	}
	if !vecsAlmostEqual(b.Max, wantMax) {
		t.Errorf("Expected max %v, got %v", wantMax, b.Max)
	}
}

// TestComputeBoundsEmpty checks the empty-polygon case: nil, not an error.
func TestComputeBoundsEmpty(t *testing.T) {
	if b := ComputeBounds(nil); b != nil {
		t.Errorf("Expected nil bounds for empty polygon, got %v", b)
	}
	if b := ComputeBounds(Polygon{}); b != nil {
		t.Errorf("Expected nil bounds for empty polygon, got %v", b)
	}
}

// TestComputeBoundsSingleVertex checks the degenerate one-point box.
func TestComputeBoundsSingleVertex(t *testing.T) {
	p := v3.Vec{X: 2, Y: -1, Z: 4}
	b := ComputeBounds(Polygon{p})
	if b == nil {
		t.Fatal("Expected non-nil bounds for single vertex")
	}
	if b.Min != p || b.Max != p {
		t.Errorf("Expected min and max both %v, got %v and %v", p, b.Min, b.Max)
	}
}
