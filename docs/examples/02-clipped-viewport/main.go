package main

import (
	"errors"
	"fmt"
	"log"

	v3 "github.com/deadsy/sdfx/vec/v3"

	viewport "github.com/beetlebugorg/viewport/pkg/v1"
)

func main() {
	store := viewport.NewStore()

	// A pentagonal clip boundary stored as a legacy 2D polyline with
	// vertex sub-records at elevation 0.
	ref := store.AddClip(viewport.Clip{
		Kind: viewport.ClipKind2DPolyline,
		Vertices: []v3.Vec{
			{X: -4, Y: -3},
			{X: 4, Y: -3},
			{X: 5, Y: 1},
			{X: 0, Y: 4},
			{X: -5, Y: 1},
		},
	})

	vp := viewport.Viewport{
		Width:       12,
		Height:      10,
		Direction:   v3.Vec{Z: 1},
		CustomScale: 1,
		Clipped:     true,
		ClipRef:     ref,
	}

	ex := viewport.NewExtractor(store)
	fp, err := ex.Extract(vp)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Clipped footprint has %d vertices:\n", fp.VertexCount())
	for i, p := range fp.Points() {
		fmt.Printf("  %d: (%g, %g, %g)\n", i, p.X, p.Y, p.Z)
	}

	// An unsupported boundary kind is a named error, never an empty
	// polygon.
	odd := store.AddClip(viewport.Clip{Kind: viewport.ClipKindUnsupported, RawKind: "SPLINE"})
	vp.ClipRef = odd
	_, err = ex.Extract(vp)
	var unsupported *viewport.ErrUnsupportedGeometry
	if errors.As(err, &unsupported) {
		fmt.Printf("Skipping viewport with unsupported boundary: %s\n", unsupported.Kind)
	}
}
