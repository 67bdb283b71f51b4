package boundary

import (
	"strconv"
)

const (
	tagName       = "name"
	tagNamePrefix = "name:prefix"

	// UnknownName is used for relations without a name tag
	UnknownName = "UNKNOWN_NAME"
)

// FullName returns the export name of a relation: its name tag (or UnknownName),
// prefixed with "<name:prefix>_" when a non-empty prefix tag is present.
func FullName(tags Tags) string {
	name, ok := tags[tagName]
	if !ok {
		name = UnknownName
	}
	if prefix := tags[tagNamePrefix]; prefix != "" {
		return prefix + "_" + name
	}
	return name
}

// AssemblyAdminLevel parses admin_level for export, defaulting to 0.
// Relations reaching assembly have already passed the filter, so the
// fallback only guards against inconsistent input.
func AssemblyAdminLevel(tags Tags) int64 {
	level, err := strconv.ParseInt(tags[tagAdminLevel], 10, 64)
	if err != nil {
		return 0
	}
	return level
}

// Assemble combines a relation with its stitched chains into a Polygon.
// Each chain becomes one ring, in chain order, points unchanged.
func Assemble(rel *BoundaryRelation, chains []NodeChain) Polygon {
	rings := make([]Ring, len(chains))
	for i, chain := range chains {
		ring := make(Ring, len(chain))
		for j, p := range chain {
			ring[j] = Point{Lat: p.Lat, Lon: p.Lon}
		}
		rings[i] = ring
	}

	return Polygon{
		Name:       FullName(rel.Tags),
		AdminLevel: AssemblyAdminLevel(rel.Tags),
		RelationID: rel.ID,
		Rings:      rings,
	}
}
