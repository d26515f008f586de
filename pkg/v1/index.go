package viewport

import (
	"github.com/dhconnelly/rtreego"
)

// minIndexExtent pads degenerate (zero-width or zero-height) footprint
// bounds so they remain representable as R-tree rectangles.
const minIndexExtent = 1e-9

// FootprintIndex provides fast point and region queries over a collection
// of viewport footprints.
//
// The index stores each footprint's bounding box in an R-tree, so a query
// touches only the footprints whose bounds intersect it; the exact
// containment test then runs on those candidates alone. This is the
// intended backing for "which windows expose this annotation" style
// decisions over many viewports.
//
// Example:
//
//	idx := viewport.NewFootprintIndex()
//	idx.Insert("plan-a", planFootprint)
//	idx.Insert("detail-b", detailFootprint)
//
//	hits, err := idx.QueryPoint(12.0, 3.5, 1e-9)
//	for _, hit := range hits {
//	    fmt.Printf("inside %s\n", hit.ID)
//	}
type FootprintIndex struct {
	rtree *rtreego.Rtree
	count int
}

// IndexEntry is one indexed footprint.
type IndexEntry struct {
	ID        string
	Footprint *Footprint
	bounds    Bounds
}

// Bounds implements the rtreego.Spatial interface over the footprint's XY
// bounding box.
func (e *IndexEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bounds.Min.X, e.bounds.Min.Y}
	lengths := []float64{
		e.bounds.Max.X - e.bounds.Min.X,
		e.bounds.Max.Y - e.bounds.Min.Y,
	}
	for i := range lengths {
		if lengths[i] < minIndexExtent {
			lengths[i] = minIndexExtent
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewFootprintIndex returns an empty footprint index.
func NewFootprintIndex() *FootprintIndex {
	return &FootprintIndex{
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// Insert adds a footprint under the given identifier. The footprint must
// be non-empty.
func (idx *FootprintIndex) Insert(id string, fp *Footprint) error {
	if fp == nil || fp.VertexCount() == 0 {
		return &ErrInvalidArgument{Reason: "cannot index an empty footprint"}
	}
	entry := &IndexEntry{
		ID:        id,
		Footprint: fp,
		bounds:    *fp.Bounds(),
	}
	idx.rtree.Insert(entry)
	idx.count++
	return nil
}

// QueryPoint returns the footprints containing the point (x, y), tested
// with the given tolerance. Candidates come from the R-tree; each is
// confirmed with the exact containment test.
func (idx *FootprintIndex) QueryPoint(x, y, tol float64) ([]*IndexEntry, error) {
	if tol < 0 {
		return nil, &ErrInvalidArgument{Reason: "tolerance must be non-negative"}
	}

	side := 2 * tol
	if side < minIndexExtent {
		side = minIndexExtent
	}
	point := rtreego.Point{x - side/2, y - side/2}
	queryRect, _ := rtreego.NewRect(point, []float64{side, side})

	var result []*IndexEntry
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		entry := spatial.(*IndexEntry)
		if entry.Footprint.VertexCount() < 3 {
			// Degenerate footprints occupy area zero.
			continue
		}
		inside, err := entry.Footprint.ContainsTolerance(x, y, tol)
		if err != nil {
			return nil, err
		}
		if inside {
			result = append(result, entry)
		}
	}
	return result, nil
}

// QueryRegion returns the footprints whose bounds intersect the given
// bounds in the XY plane.
func (idx *FootprintIndex) QueryRegion(b Bounds) []*IndexEntry {
	point := rtreego.Point{b.Min.X, b.Min.Y}
	lengths := []float64{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y}
	for i := range lengths {
		if lengths[i] < minIndexExtent {
			lengths[i] = minIndexExtent
		}
	}
	queryRect, _ := rtreego.NewRect(point, lengths)

	var result []*IndexEntry
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		entry := spatial.(*IndexEntry)
		if b.Intersects(entry.bounds) {
			result = append(result, entry)
		}
	}
	return result
}

// Count returns the number of indexed footprints.
func (idx *FootprintIndex) Count() int {
	return idx.count
}
