package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

// memoryDataset replays records held in memory
type memoryDataset struct {
	records []*osmpoly.Record
	pos     int
}

func (d *memoryDataset) Reset() error {
	d.pos = 0
	return nil
}

func (d *memoryDataset) Next() (*osmpoly.Record, error) {
	if d.pos >= len(d.records) {
		return nil, io.EOF
	}
	rec := d.records[d.pos]
	d.pos++
	return rec, nil
}

func node(id int64, lat, lon float64) *osmpoly.Record {
	return &osmpoly.Record{
		Kind:     osmpoly.KindNode,
		ID:       id,
		LatFixed: int64(lat * osmpoly.CoordinateScale),
		LonFixed: int64(lon * osmpoly.CoordinateScale),
	}
}

func main() {
	ds := &memoryDataset{records: []*osmpoly.Record{
		node(1, 53.0, 8.7),
		node(2, 53.0, 8.9),
		node(3, 53.2, 8.8),
		{Kind: osmpoly.KindWay, ID: 10, Nodes: []int64{1, 2}},
		{Kind: osmpoly.KindWay, ID: 11, Nodes: []int64{3, 2}},
		{Kind: osmpoly.KindWay, ID: 12, Nodes: []int64{3, 1}},
		{
			Kind: osmpoly.KindRelation,
			ID:   100,
			Tags: osmpoly.Tags{"boundary": "administrative", "admin_level": "4", "name": "Triangle"},
			Members: []osmpoly.Member{
				{Kind: osmpoly.KindWay, Ref: 10, Role: "outer"},
				{Kind: osmpoly.KindWay, Ref: 11, Role: "outer"},
				{Kind: osmpoly.KindWay, Ref: 12, Role: "outer"},
			},
		},
	}}

	polygons, err := osmpoly.NewExtractor(osmpoly.DefaultExtractOptions()).ExtractDataset(context.Background(), ds)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range polygons {
		ring := p.Rings()[0]
		fmt.Printf("%s: %d points, closed=%v\n", p.Name(), len(ring), ring.Closed())
		fmt.Printf("  orb: %v\n", p.MultiPolygon())
	}
}
