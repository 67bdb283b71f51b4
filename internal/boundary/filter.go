package boundary

import (
	"context"
	"math"
	"strconv"
)

// Tag keys and values consulted by the relation filter
const (
	tagBoundary      = "boundary"
	tagAdminLevel    = "admin_level"
	boundaryAdminVal = "administrative"
)

// UnparsedAdminLevel stands in for a missing or non-integer admin_level tag.
// HasProperAdminLevel rejects it for every range, including one ending at math.MaxInt.
const UnparsedAdminLevel = math.MaxInt

// ParseAdminLevel returns the integer admin_level of tags, or UnparsedAdminLevel
// when the tag is absent or does not parse.
func ParseAdminLevel(tags Tags) int {
	raw, ok := tags[tagAdminLevel]
	if !ok {
		return UnparsedAdminLevel
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return UnparsedAdminLevel
	}
	return level
}

// HasProperAdminLevel reports whether level lies within [minLevel, maxLevel].
func HasProperAdminLevel(level, minLevel, maxLevel int) bool {
	if level == UnparsedAdminLevel {
		return false
	}
	return level >= minLevel && level <= maxLevel
}

// IsAdministrativeBoundary reports whether a relation with the given tags is
// an administrative boundary with an admin_level inside [minLevel, maxLevel].
func IsAdministrativeBoundary(tags Tags, minLevel, maxLevel int) bool {
	if !tags.Contains(tagBoundary, boundaryAdminVal) {
		return false
	}
	return HasProperAdminLevel(ParseAdminLevel(tags), minLevel, maxLevel)
}

// SelectRelations scans ds once and returns every administrative boundary
// relation whose admin_level lies within [opts.MinAdminLevel, opts.MaxAdminLevel],
// keyed by relation id. An empty result is not an error.
func SelectRelations(ctx context.Context, ds Dataset, opts Options) (map[int64]*BoundaryRelation, error) {
	minLevel, maxLevel := opts.MinAdminLevel, opts.MaxAdminLevel

	return runPass(ctx, ds, opts, pass[map[int64]*BoundaryRelation]{
		name: "relations",
		kind: KindRelation,
		newPartial: func() map[int64]*BoundaryRelation {
			return make(map[int64]*BoundaryRelation)
		},
		visit: func(partial map[int64]*BoundaryRelation, rec *Record) {
			if !IsAdministrativeBoundary(rec.Tags, minLevel, maxLevel) {
				return
			}
			partial[rec.ID] = &BoundaryRelation{
				ID:      rec.ID,
				Tags:    rec.Tags,
				Members: rec.Members,
			}
		},
		merge: mergeMaps[int64, *BoundaryRelation],
		size:  func(m map[int64]*BoundaryRelation) int { return len(m) },
	})
}
