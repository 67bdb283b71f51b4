package osmpoly

import "github.com/paulmach/orb"

// Bounds represents a geographic bounding box in degrees.
//
// Bounds is a lon/lat view of an orb.Bound; the operations delegate to orb.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
// Edges are inclusive.
func (b Bounds) Contains(lon, lat float64) bool {
	return b.Orb().Contains(orb.Point{lon, lat})
}

// Intersects returns true if the given bounds overlaps or touches this one.
func (b Bounds) Intersects(other Bounds) bool {
	return b.Orb().Intersects(other.Orb())
}

// Expand returns a new Bounds padded by margin decimal degrees on every side.
func (b Bounds) Expand(margin float64) Bounds {
	return BoundsFromOrb(b.Orb().Pad(margin))
}

// Union returns the smallest bounds containing both.
func (b Bounds) Union(other Bounds) Bounds {
	return BoundsFromOrb(b.Orb().Union(other.Orb()))
}

// Orb converts to an orb.Bound.
func (b Bounds) Orb() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}

// BoundsFromOrb converts an orb.Bound.
func BoundsFromOrb(b orb.Bound) Bounds {
	return Bounds{
		MinLon: b.Min.Lon(),
		MaxLon: b.Max.Lon(),
		MinLat: b.Min.Lat(),
		MaxLat: b.Max.Lat(),
	}
}
