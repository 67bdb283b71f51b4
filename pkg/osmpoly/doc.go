// Package osmpoly extracts administrative boundary polygons from OpenStreetMap data.
//
// A boundary in OpenStreetMap is a relation tagged boundary=administrative
// whose members reference the ways tracing its border. The ways in turn
// reference nodes carrying coordinates. The extractor resolves this chain of
// references with three forward passes over the file (relations, ways, nodes)
// and stitches the way fragments of each relation into rings.
//
// # Basic Usage
//
//	extractor := osmpoly.NewExtractor(osmpoly.DefaultExtractOptions())
//	polygons, err := extractor.Extract(ctx, "germany-latest.osm.pbf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, p := range polygons {
//	    fmt.Printf("%s (level %d): %d rings\n", p.Name(), p.AdminLevel(), len(p.Rings()))
//	}
//
// # Admin Levels
//
// Only relations whose admin_level lies within [MinAdminLevel, MaxAdminLevel]
// are extracted. Relations with an admin_level that is not an integer are
// never extracted:
//
//	opts := osmpoly.DefaultExtractOptions()
//	opts.MinAdminLevel = 4
//	opts.MaxAdminLevel = 6
//
// # Rings
//
// Each stitched chain of way fragments becomes one Ring. A ring is closed
// when its first and last point coincide; incomplete extracts can leave
// rings open. Rings carry no outer/inner distinction. Use ClosedRings
// to drop open fragments and MultiPolygon to convert to orb geometry.
//
// # Spatial Queries
//
// PolygonIndex answers bounding box and point-in-polygon queries:
//
//	idx := osmpoly.BuildIndex(polygons)
//	for _, p := range idx.Containing(13.40, 52.52) {
//	    fmt.Println(p.Name())
//	}
package osmpoly
