package main

import (
	"fmt"
	"log"

	v3 "github.com/deadsy/sdfx/vec/v3"

	viewport "github.com/beetlebugorg/viewport/pkg/v1"
)

func main() {
	// A 10x10 window at the sheet origin looking straight down world Z.
	vp := viewport.Viewport{
		Width:       10,
		Height:      10,
		Direction:   v3.Vec{Z: 1},
		CustomScale: 1,
	}

	ex := viewport.NewExtractor(nil)
	fp, err := ex.Extract(vp)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("World-space footprint:")
	for i, p := range fp.Points() {
		fmt.Printf("  corner %d: (%g, %g, %g)\n", i, p.X, p.Y, p.Z)
	}

	if b := fp.Bounds(); b != nil {
		fmt.Printf("Bounds: min (%g, %g, %g) max (%g, %g, %g)\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	}

	// Dump the transform chain for debugging.
	report, err := viewport.TransformReport(vp)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(report)
}
