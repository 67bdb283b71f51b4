package osmpoly

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/osmpoly/internal/boundary"
	"github.com/beetlebugorg/osmpoly/internal/osmfile"
)

// Extractor extracts boundary polygons from OSM data.
//
// Create an extractor with NewExtractor and use Extract to read a file.
type Extractor interface {
	// Extract opens an .osm.pbf (or .osm XML) file and returns one polygon per
	// matching relation that has at least one resolvable way, sorted by
	// relation id.
	Extract(ctx context.Context, path string) ([]*Polygon, error)

	// ExtractDataset runs the same resolution over an arbitrary Dataset.
	ExtractDataset(ctx context.Context, ds Dataset) ([]*Polygon, error)
}

// NewExtractor creates an extractor with the given options.
//
// Example:
//
//	opts := osmpoly.DefaultExtractOptions()
//	opts.MaxAdminLevel = 4
//	polygons, err := osmpoly.NewExtractor(opts).Extract(ctx, "planet.osm.pbf")
func NewExtractor(opts ExtractOptions) Extractor {
	return &extractor{opts: opts}
}

type extractor struct {
	opts ExtractOptions
}

func (e *extractor) Extract(ctx context.Context, path string) ([]*Polygon, error) {
	if err := e.opts.Validate(); err != nil {
		return nil, err
	}

	f, err := osmfile.Open(ctx, path, osmfile.Options{Procs: e.opts.DecodeProcs})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return e.run(ctx, f)
}

func (e *extractor) ExtractDataset(ctx context.Context, ds Dataset) ([]*Polygon, error) {
	if err := e.opts.Validate(); err != nil {
		return nil, err
	}
	return e.run(ctx, ds)
}

func (e *extractor) run(ctx context.Context, ds Dataset) ([]*Polygon, error) {
	internal, err := boundary.NewPipeline(ds, e.opts.pipelineOptions()).Run(ctx)
	if err != nil {
		return nil, err
	}

	polygons := make([]*Polygon, len(internal))
	for i := range internal {
		polygons[i] = convertPolygon(internal[i])
	}
	return polygons, nil
}

// Point is a single coordinate in degrees (WGS84).
type Point struct {
	Lat float32
	Lon float32
}

// Orb converts the point to an orb.Point in lon/lat order.
func (p Point) Orb() orb.Point {
	return orb.Point{float64(p.Lon), float64(p.Lat)}
}

// Ring is an ordered sequence of points traced by stitched ways.
type Ring []Point

// Closed reports whether the ring ends where it starts.
func (r Ring) Closed() bool {
	return len(r) >= 2 && r[0] == r[len(r)-1]
}

// Bounds returns the bounding box of the ring.
func (r Ring) Bounds() Bounds {
	if len(r) == 0 {
		return Bounds{}
	}
	return BoundsFromOrb(r.Orb().Bound())
}

// Orb converts the ring to an orb.Ring, closing it when it is open.
func (r Ring) Orb() orb.Ring {
	ring := make(orb.Ring, 0, len(r)+1)
	for _, p := range r {
		ring = append(ring, p.Orb())
	}
	if len(ring) > 0 && !r.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// Polygon is the extracted boundary of one administrative relation.
//
// All fields are private to maintain encapsulation.
type Polygon struct {
	name       string
	adminLevel int64
	relationID int64
	rings      []Ring
	bounds     Bounds
}

// Name returns the export name: the relation's name tag, prefixed with
// "<name:prefix>_" when present, or UNKNOWN_NAME.
func (p *Polygon) Name() string { return p.name }

// AdminLevel returns the relation's admin_level.
func (p *Polygon) AdminLevel() int64 { return p.adminLevel }

// RelationID returns the id of the source relation.
func (p *Polygon) RelationID() int64 { return p.relationID }

// Rings returns the stitched rings in output order.
func (p *Polygon) Rings() []Ring { return p.rings }

// Bounds returns the bounding box of all rings.
func (p *Polygon) Bounds() Bounds { return p.bounds }

// PointCount returns the total number of points over all rings.
func (p *Polygon) PointCount() int {
	n := 0
	for _, r := range p.rings {
		n += len(r)
	}
	return n
}

// ClosedRings returns the rings that end where they start.
func (p *Polygon) ClosedRings() []Ring {
	closed := make([]Ring, 0, len(p.rings))
	for _, r := range p.rings {
		if r.Closed() {
			closed = append(closed, r)
		}
	}
	return closed
}

// MultiPolygon converts the polygon with one orb.Polygon per ring.
// Open rings are closed and rings with fewer than 3 points are dropped.
func (p *Polygon) MultiPolygon() orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(p.rings))
	for _, r := range p.rings {
		if len(r) < 3 {
			continue
		}
		mp = append(mp, orb.Polygon{r.Orb()})
	}
	return mp
}

// NewPolygon builds a polygon from already resolved parts.
func NewPolygon(name string, adminLevel, relationID int64, rings []Ring) *Polygon {
	p := &Polygon{
		name:       name,
		adminLevel: adminLevel,
		relationID: relationID,
		rings:      rings,
	}
	p.bounds = ringsBounds(rings)
	return p
}

// convertPolygon converts an internal polygon to the public type
func convertPolygon(internal boundary.Polygon) *Polygon {
	rings := make([]Ring, len(internal.Rings))
	for i, ir := range internal.Rings {
		ring := make(Ring, len(ir))
		for j, pt := range ir {
			ring[j] = Point{Lat: pt.Lat, Lon: pt.Lon}
		}
		rings[i] = ring
	}
	return NewPolygon(internal.Name, internal.AdminLevel, internal.RelationID, rings)
}

func ringsBounds(rings []Ring) Bounds {
	var (
		b     Bounds
		found bool
	)
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		if !found {
			b, found = r.Bounds(), true
			continue
		}
		b = b.Union(r.Bounds())
	}
	return b
}
