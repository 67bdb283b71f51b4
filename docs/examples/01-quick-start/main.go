package main

import (
	"context"
	"fmt"
	"log"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

func main() {
	// Extract states and districts only
	opts := osmpoly.DefaultExtractOptions()
	opts.MinAdminLevel = 4
	opts.MaxAdminLevel = 6

	polygons, err := osmpoly.NewExtractor(opts).Extract(context.Background(), "bremen-latest.osm.pbf")
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range polygons {
		bounds := p.Bounds()
		fmt.Printf("%-30s level=%d rings=%d closed=%d [%.4f,%.4f] to [%.4f,%.4f]\n",
			p.Name(), p.AdminLevel(), len(p.Rings()), len(p.ClosedRings()),
			bounds.MinLon, bounds.MinLat,
			bounds.MaxLon, bounds.MaxLat)
	}
}
