package main

import (
	"fmt"
	"log"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	viewport "github.com/beetlebugorg/viewport/pkg/v1"
)

func main() {
	// A twisted, scaled viewport: half scale, rotated 30 degrees.
	vp := viewport.Viewport{
		Width:       10,
		Height:      6,
		Direction:   v3.Vec{Z: 1},
		Twist:       math.Pi / 6,
		CustomScale: 0.5,
	}

	ex := viewport.NewExtractor(nil)
	fp, err := ex.Extract(vp)
	if err != nil {
		log.Fatal(err)
	}

	queries := []struct{ x, y float64 }{
		{0, 0},
		{8, 4},
		{10, -8},
		{-9.9, -2.2},
	}

	for _, q := range queries {
		exact, err := fp.Contains(q.x, q.y)
		if err != nil {
			log.Fatal(err)
		}
		tolerant, err := fp.ContainsTolerance(q.x, q.y, 1e-6)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("(%6.2f, %6.2f): exact=%-5v tolerant=%-5v winding=%d\n",
			q.x, q.y, exact, tolerant, fp.WindingNumber(q.x, q.y))
	}

	// One-call convenience for annotation placement decisions.
	inside, err := viewport.InViewport(ex, vp, 1.5, 2.0, viewport.DefaultExtractOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Annotation at (1.5, 2.0) inside viewport: %v\n", inside)
}
