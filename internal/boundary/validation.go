package boundary

import (
	"errors"
	"slices"
)

// ValidateLevelRange checks the caller-side precondition minLevel <= maxLevel.
// The filter itself never validates it.
func ValidateLevelRange(minLevel, maxLevel int) error {
	if minLevel > maxLevel {
		return &ErrInvalidLevelRange{Min: minLevel, Max: maxLevel}
	}
	return nil
}

// ValidateCoordinate validates a single coordinate pair
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidatePoints checks every resolved point lies within geographic bounds.
// Points are checked in ascending id order, so the lowest offending id is
// the one reported.
func ValidatePoints(points map[int64]PointRecord) error {
	ids := make([]int64, 0, len(points))
	for id := range points {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		p := points[id]
		if err := ValidateCoordinate(float64(p.Lat), float64(p.Lon)); err != nil {
			var coordErr *ErrInvalidCoordinate
			if errors.As(err, &coordErr) {
				coordErr.PointID = id
			}
			return err
		}
	}
	return nil
}
