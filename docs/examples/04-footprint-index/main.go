package main

import (
	"fmt"
	"log"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	viewport "github.com/beetlebugorg/viewport/pkg/v1"
)

func main() {
	ex := viewport.NewExtractor(nil)
	idx := viewport.NewFootprintIndex()

	// Index a strip of detail windows along world X.
	for i := 0; i < 10; i++ {
		vp := viewport.Viewport{
			Width:       10,
			Height:      10,
			ViewCenter:  v2.Vec{X: float64(15 * i)},
			Direction:   v3.Vec{Z: 1},
			CustomScale: 1,
		}
		fp, err := ex.Extract(vp)
		if err != nil {
			log.Fatal(err)
		}
		if err := idx.Insert(fmt.Sprintf("window-%d", i), fp); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("Indexed %d footprints\n", idx.Count())

	// Which windows expose this annotation point?
	hits, err := idx.QueryPoint(17.0, 2.0, 1e-9)
	if err != nil {
		log.Fatal(err)
	}
	for _, hit := range hits {
		fmt.Printf("Point (17, 2) exposed by %s\n", hit.ID)
	}

	// Which windows touch this region?
	region := viewport.Bounds{
		Min: v3.Vec{X: 0, Y: -5},
		Max: v3.Vec{X: 40, Y: 5},
	}
	for _, hit := range idx.QueryRegion(region) {
		b := hit.Footprint.Bounds()
		fmt.Printf("%s covers X [%g, %g]\n", hit.ID, b.Min.X, b.Max.X)
	}
}
