package osmpoly

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PolygonIndex provides fast spatial queries over extracted polygons.
//
// Polygon bounding boxes are kept in an R-tree. Bounding box queries are
// answered from the tree alone; point queries refine the candidates with an
// exact ring containment test.
//
// Example:
//
//	idx := osmpoly.BuildIndex(polygons)
//	berlin := idx.Containing(13.40, 52.52)
type PolygonIndex struct {
	polygons []*Polygon
	rtree    *rtreego.Rtree
}

// indexedPolygon wraps a polygon for R-tree storage.
type indexedPolygon struct {
	polygon *Polygon
}

// Bounds implements rtreego.Spatial interface.
func (e *indexedPolygon) Bounds() rtreego.Rect {
	return toRect(e.polygon.bounds)
}

// toRect converts bounds to an R-tree rectangle. R-tree requires non-zero
// dimensions, so degenerate boxes get a small epsilon (~11 meters at equator).
func toRect(b Bounds) rtreego.Rect {
	const epsilon = 0.0001

	point := rtreego.Point{b.MinLon, b.MinLat}
	lonLength := b.MaxLon - b.MinLon
	latLength := b.MaxLat - b.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// BuildIndex creates an index over polygons. Polygons without any point are
// counted but never returned by queries.
func BuildIndex(polygons []*Polygon) *PolygonIndex {
	// Create R-tree (2D, min=25 children, max=50 children)
	rtree := rtreego.NewTree(2, 25, 50)

	for _, p := range polygons {
		if p.PointCount() == 0 {
			continue
		}
		rtree.Insert(&indexedPolygon{polygon: p})
	}

	return &PolygonIndex{
		polygons: polygons,
		rtree:    rtree,
	}
}

// Query returns polygons whose bounding box intersects bounds, ordered by
// admin level and then relation id.
func (idx *PolygonIndex) Query(bounds Bounds) []*Polygon {
	var result []*Polygon
	for _, spatial := range idx.rtree.SearchIntersect(toRect(bounds)) {
		p := spatial.(*indexedPolygon).polygon
		// the epsilon padding may reach past the real box
		if !bounds.Intersects(p.bounds) {
			continue
		}
		result = append(result, p)
	}
	sortPolygons(result)
	return result
}

// Containing returns polygons covering the point (lon, lat), ordered by
// admin level and then relation id.
//
// Only closed rings are considered. A point is inside when an odd number of
// rings contain it, so inner rings nested in an outer ring act as holes.
func (idx *PolygonIndex) Containing(lon, lat float64) []*Polygon {
	pt := orb.Point{lon, lat}
	candidates := idx.Query(Bounds{MinLon: lon, MaxLon: lon, MinLat: lat, MaxLat: lat})

	var result []*Polygon
	for _, p := range candidates {
		// the tree pads rectangles, so candidates may miss the point by a little
		if !p.bounds.Contains(lon, lat) {
			continue
		}
		inside := false
		for _, r := range p.ClosedRings() {
			if planar.RingContains(r.Orb(), pt) {
				inside = !inside
			}
		}
		if inside {
			result = append(result, p)
		}
	}
	return result
}

// Count returns the total number of polygons in the index.
func (idx *PolygonIndex) Count() int {
	return len(idx.polygons)
}

// Bounds returns the union of all polygon bounds in the index.
func (idx *PolygonIndex) Bounds() Bounds {
	var (
		bounds Bounds
		found  bool
	)
	for _, p := range idx.polygons {
		if p.PointCount() == 0 {
			continue
		}
		if !found {
			bounds, found = p.bounds, true
			continue
		}
		bounds = bounds.Union(p.bounds)
	}
	return bounds
}

// All returns all polygons in the index.
func (idx *PolygonIndex) All() []*Polygon {
	return idx.polygons
}

func sortPolygons(polygons []*Polygon) {
	sort.Slice(polygons, func(i, j int) bool {
		if polygons[i].adminLevel != polygons[j].adminLevel {
			return polygons[i].adminLevel < polygons[j].adminLevel
		}
		return polygons[i].relationID < polygons[j].relationID
	})
}
