package main

import (
	"context"
	"fmt"
	"log"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

func main() {
	polygons, err := osmpoly.NewExtractor(osmpoly.DefaultExtractOptions()).Extract(context.Background(), "berlin-latest.osm.pbf")
	if err != nil {
		log.Fatal(err)
	}

	// R-tree over polygon bounds, exact ring test on candidates
	idx := osmpoly.BuildIndex(polygons)
	fmt.Printf("Indexed %d polygons\n", idx.Count())

	// Brandenburg Gate
	for _, p := range idx.Containing(13.3777, 52.5163) {
		fmt.Printf("  level %d: %s\n", p.AdminLevel(), p.Name())
	}

	// Everything touching the city centre
	centre := osmpoly.Bounds{MinLon: 13.38, MaxLon: 13.42, MinLat: 52.50, MaxLat: 52.53}
	fmt.Printf("%d polygons touch the centre\n", len(idx.Query(centre)))
}
