package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

func extract(path string, opts osmpoly.ExtractOptions) ([]*osmpoly.Polygon, error) {
	polygons, err := osmpoly.NewExtractor(opts).Extract(context.Background(), path)

	var (
		ioErr     *osmpoly.ErrDatasetIO
		decodeErr *osmpoly.ErrDecode
		rangeErr  *osmpoly.ErrInvalidLevelRange
		coordErr  *osmpoly.ErrInvalidCoordinate
	)
	switch {
	case err == nil:
		return polygons, nil
	case errors.As(err, &rangeErr):
		return nil, fmt.Errorf("check the level window: %w", err)
	case errors.As(err, &ioErr) && errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("input not found: %s", ioErr.Path)
	case errors.As(err, &decodeErr):
		log.Printf("corrupt input during %s pass", decodeErr.Pass)
	case errors.As(err, &coordErr):
		log.Printf("point %d is out of range", coordErr.PointID)
	}
	return nil, err
}

func main() {
	opts := osmpoly.DefaultExtractOptions()
	opts.ValidateCoordinates = true

	polygons, err := extract("monaco-latest.osm.pbf", opts)
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}
	fmt.Printf("Extracted %d polygons\n", len(polygons))

	// Inverted window is rejected before the file is read
	opts.MinAdminLevel, opts.MaxAdminLevel = 8, 2
	if _, err := extract("monaco-latest.osm.pbf", opts); err != nil {
		log.Printf("Expected error: %v", err)
	}
}
