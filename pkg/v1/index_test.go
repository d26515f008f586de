package viewport

import (
	"fmt"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// gridViewports lays out a row of 10x10 viewports spaced 20 units apart
// along world X.
func gridViewports(t *testing.T, n int) []*Footprint {
	t.Helper()
	ex := NewExtractor(nil)
	footprints := make([]*Footprint, 0, n)
	for i := 0; i < n; i++ {
		vp := testViewport()
		vp.ViewCenter = v2.Vec{X: float64(20 * i)}
		fp, err := ex.Extract(vp)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		footprints = append(footprints, fp)
	}
	return footprints
}

func TestIndexQueryPoint(t *testing.T) {
	idx := NewFootprintIndex()
	footprints := gridViewports(t, 5)
	for i, fp := range footprints {
		if err := idx.Insert(fmt.Sprintf("window-%d", i), fp); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if idx.Count() != 5 {
		t.Fatalf("Expected 5 indexed footprints, got %d", idx.Count())
	}

	tests := []struct {
		name string
		x, y float64
		want []string
	}{
		{"inside first", 0, 0, []string{"window-0"}},
		{"inside third", 40, 3, []string{"window-2"}},
		{"between windows", 10, 0, nil},
		{"far away", 0, 100, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := idx.QueryPoint(tt.x, tt.y, 1e-9)
			if err != nil {
				t.Fatalf("QueryPoint failed: %v", err)
			}
			if len(hits) != len(tt.want) {
				t.Fatalf("Expected %d hits, got %d", len(tt.want), len(hits))
			}
			for i, id := range tt.want {
				if hits[i].ID != id {
					t.Errorf("Expected hit %s, got %s", id, hits[i].ID)
				}
			}
		})
	}
}

// TestIndexAgreesWithBruteForce cross-checks index hits against direct
// containment over every footprint.
func TestIndexAgreesWithBruteForce(t *testing.T) {
	idx := NewFootprintIndex()
	footprints := gridViewports(t, 8)
	for i, fp := range footprints {
		if err := idx.Insert(fmt.Sprintf("window-%d", i), fp); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	for x := -10.0; x < 170; x += 3.7 {
		for y := -10.0; y < 10; y += 2.9 {
			hits, err := idx.QueryPoint(x, y, 0)
			if err != nil {
				t.Fatalf("QueryPoint failed: %v", err)
			}
			brute := 0
			for _, fp := range footprints {
				inside, err := fp.Contains(x, y)
				if err != nil {
					t.Fatalf("Contains failed: %v", err)
				}
				if inside {
					brute++
				}
			}
			if len(hits) != brute {
				t.Fatalf("Index and brute force disagree at (%g, %g): %d vs %d",
					x, y, len(hits), brute)
			}
		}
	}
}

func TestIndexQueryRegion(t *testing.T) {
	idx := NewFootprintIndex()
	footprints := gridViewports(t, 5)
	for i, fp := range footprints {
		if err := idx.Insert(fmt.Sprintf("window-%d", i), fp); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	region := Bounds{
		Min: v3.Vec{X: -1, Y: -1},
		Max: v3.Vec{X: 45, Y: 1},
	}
	hits := idx.QueryRegion(region)
	if len(hits) != 3 {
		t.Errorf("Expected 3 footprints intersecting region, got %d", len(hits))
	}
}

func TestIndexRejectsEmptyFootprint(t *testing.T) {
	idx := NewFootprintIndex()
	if err := idx.Insert("empty", &Footprint{}); err == nil {
		t.Error("Expected error indexing an empty footprint")
	}
	if err := idx.Insert("nil", nil); err == nil {
		t.Error("Expected error indexing a nil footprint")
	}
	if _, err := idx.QueryPoint(0, 0, -1); err == nil {
		t.Error("Expected error for negative tolerance")
	}
}
