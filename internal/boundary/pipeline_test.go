package boundary

import (
	"context"
	"errors"
	"testing"
)

// boundaryFixture has two resolvable relations, one relation whose only way
// is missing and one non-boundary relation. Relation 200 is listed first so
// output ordering is exercised.
func boundaryFixture() *memDataset {
	return &memDataset{records: []*Record{
		node(1, 0, 0),
		node(2, 0, 1),
		node(3, 1, 1),
		node(4, 1, 0),
		node(5, 10, 10),
		node(6, 10, 11),
		node(7, 11, 11),
		way(10, 1, 2),
		way(11, 2, 3),
		way(12, 4, 3),
		way(13, 4, 1),
		way(20, 5, 6, 8, 7, 5),
		relation(200, Tags{"boundary": "administrative", "admin_level": "8", "name": "Town", "name:prefix": "City"}, 20, 21),
		relation(100, adminTags("Region", "4"), 10, 11, 12, 13),
		relation(300, adminTags("Ghost", "6"), 99),
		relation(400, Tags{"type": "route", "name": "Bus"}, 10),
	}}
}

func TestPipelineRun(t *testing.T) {
	ds := boundaryFixture()
	opts := DefaultOptions()
	opts.Workers = 2
	opts.BatchSize = 3

	p := NewPipeline(ds, opts)
	polygons, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if ds.resets != 3 {
		t.Errorf("expected 3 passes, got %d resets", ds.resets)
	}
	if len(polygons) != 2 {
		t.Fatalf("expected 2 polygons, got %d", len(polygons))
	}

	region, town := polygons[0], polygons[1]
	if region.RelationID != 100 || town.RelationID != 200 {
		t.Fatalf("expected output sorted by relation id, got %d, %d", region.RelationID, town.RelationID)
	}

	if region.Name != "Region" || region.AdminLevel != 4 {
		t.Errorf("unexpected region %q level %d", region.Name, region.AdminLevel)
	}
	if len(region.Rings) != 1 {
		t.Fatalf("expected one region ring, got %d", len(region.Rings))
	}
	ring := region.Rings[0]
	if len(ring) != 5 || ring[0] != ring[len(ring)-1] {
		t.Errorf("expected closed 5-point square, got %v", ring)
	}

	if town.Name != "City_Town" || town.AdminLevel != 8 {
		t.Errorf("unexpected town %q level %d", town.Name, town.AdminLevel)
	}
	if len(town.Rings) != 1 || len(town.Rings[0]) != 4 {
		t.Errorf("expected one 4-point town ring with the missing point dropped, got %v", town.Rings)
	}

	stats := p.Stats()
	want := Stats{
		Relations:       3,
		WaysRequested:   7,
		WaysMissing:     2,
		PointsRequested: 8,
		PointsMissing:   1,
		Polygons:        2,
	}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

// TestPipelineNoRelations tests that an empty selection ends after one pass
func TestPipelineNoRelations(t *testing.T) {
	ds := boundaryFixture()
	opts := DefaultOptions()
	opts.MinAdminLevel = 11
	opts.MaxAdminLevel = 12

	polygons, err := NewPipeline(ds, opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if polygons == nil || len(polygons) != 0 {
		t.Errorf("expected empty, non-nil result, got %v", polygons)
	}
	if ds.resets != 1 {
		t.Errorf("expected a single pass, got %d resets", ds.resets)
	}
}

func TestPipelineLevelWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.MinAdminLevel = 8
	opts.MaxAdminLevel = 8

	polygons, err := NewPipeline(boundaryFixture(), opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(polygons) != 1 || polygons[0].RelationID != 200 {
		t.Errorf("expected only relation 200, got %v", polygons)
	}
}

func TestPipelineDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Workers = 4
	opts.BatchSize = 1

	a, err := NewPipeline(boundaryFixture(), opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for run := 0; run < 5; run++ {
		b, err := NewPipeline(boundaryFixture(), opts).Run(context.Background())
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(a) != len(b) {
			t.Fatalf("run %d: %d polygons, want %d", run, len(b), len(a))
		}
		for i := range a {
			if len(a[i].Rings) != len(b[i].Rings) {
				t.Fatalf("run %d polygon %d: ring count differs", run, i)
			}
			for r := range a[i].Rings {
				if len(a[i].Rings[r]) != len(b[i].Rings[r]) {
					t.Fatalf("run %d polygon %d ring %d: length differs", run, i, r)
				}
				for k := range a[i].Rings[r] {
					if a[i].Rings[r][k] != b[i].Rings[r][k] {
						t.Errorf("run %d polygon %d ring %d point %d differs", run, i, r, k)
					}
				}
			}
		}
	}
}

func TestPipelineValidateCoordinates(t *testing.T) {
	ds := &memDataset{records: []*Record{
		node(1, 95, 0),
		node(2, 0, 0),
		way(10, 1, 2, 1),
		relation(1, adminTags("Nowhere", "4"), 10),
	}}
	opts := DefaultOptions()
	opts.ValidateCoordinates = true

	polygons, err := NewPipeline(ds, opts).Run(context.Background())
	var coordErr *ErrInvalidCoordinate
	if !errors.As(err, &coordErr) {
		t.Fatalf("expected *ErrInvalidCoordinate, got %T: %v", err, err)
	}
	if coordErr.PointID != 1 {
		t.Errorf("expected point 1 to be reported, got %d", coordErr.PointID)
	}
	if polygons != nil {
		t.Errorf("expected no polygons on error, got %v", polygons)
	}
}

func TestPipelineDecodeErrorAbortsRun(t *testing.T) {
	ds := boundaryFixture()
	ds.failAt = len(ds.records) - 1

	polygons, err := NewPipeline(ds, DefaultOptions()).Run(context.Background())

	var decodeErr *ErrDecode
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *ErrDecode, got %T: %v", err, err)
	}
	if decodeErr.Pass != "relations" {
		t.Errorf("expected failure in the relation pass, got %q", decodeErr.Pass)
	}
	if polygons != nil {
		t.Errorf("expected no polygons, got %v", polygons)
	}
}

func TestPipelineCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPipeline(boundaryFixture(), DefaultOptions()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
