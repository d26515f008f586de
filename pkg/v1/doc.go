// Package viewport computes the world-space footprint of sheet layout
// viewports and answers containment queries against it.
//
// A viewport is a rectangular (optionally clipped) window embedded in a 2D
// layout sheet exposing a region of a 3D scene. The engine rebuilds the
// sheet-to-camera and camera-to-world transform chain purely from the
// stored viewport parameters, so footprints can be computed for any number
// of viewports without making each one active in turn.
//
// # Basic Usage
//
//	ex := viewport.NewExtractor(nil)
//	fp, err := ex.Extract(viewport.Viewport{
//	    Width: 10, Height: 10,
//	    Direction:   v3.Vec{Z: 1},
//	    CustomScale: 1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Footprint covers %+v\n", fp.Bounds())
//
// # Clipped Viewports
//
// Non-rectangular viewports carry a reference to a clip boundary entity in
// the scene store. The extractor resolves the boundary through a short
// lived read session:
//
//	store := viewport.NewStore()
//	ref := store.AddClip(viewport.Clip{
//	    Kind:     viewport.ClipKindPolyline,
//	    Vertices: []v3.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}},
//	})
//
//	ex := viewport.NewExtractor(store)
//	fp, err := ex.Extract(viewport.Viewport{
//	    Width: 10, Height: 10,
//	    Direction:   v3.Vec{Z: 1},
//	    CustomScale: 1,
//	    Clipped:     true,
//	    ClipRef:     ref,
//	})
//
// # Containment Queries
//
// Footprints answer point containment by ray casting, with an optional
// tolerance that absorbs the numerical drift of the transform chain:
//
//	inside, err := fp.Contains(1.0, 2.0)
//	insideNear, err := fp.ContainsTolerance(1.0, 2.0, 1e-9)
//
// # Spatial Index
//
// Many footprints can be indexed for fast candidate lookup before the
// exact test:
//
//	idx := viewport.NewFootprintIndex()
//	idx.Insert("plan-a", fp)
//	hits, err := idx.QueryPoint(1.0, 2.0, 1e-9)
//
// # Errors
//
// All failures are deterministic given identical input; nothing is retried
// and nothing is downgraded to an empty result. ErrInvalidArgument flags
// caller bugs, ErrUnsupportedGeometry names an unrecognized clip entity
// kind, and ErrTransformFailure wraps lower-level causes.
package viewport
