package boundary

import (
	"fmt"
)

// ErrDatasetIO indicates the dataset could not be opened, rewound or read.
// It aborts the whole resolution run.
type ErrDatasetIO struct {
	Path string
	Op   string // "open", "reset", "read", "close"
	Err  error
}

func (e *ErrDatasetIO) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("dataset %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dataset %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrDatasetIO) Unwrap() error { return e.Err }

// ErrDecode indicates a malformed record inside the dataset.
// There is no best-effort mode: the pass that hit it is abandoned.
type ErrDecode struct {
	Pass string
	Err  error
}

func (e *ErrDecode) Error() string {
	if e.Pass == "" {
		return fmt.Sprintf("decode record: %v", e.Err)
	}
	return fmt.Sprintf("decode record during %s pass: %v", e.Pass, e.Err)
}

func (e *ErrDecode) Unwrap() error { return e.Err }

// ErrInvalidLevelRange indicates a caller supplied min_admin_level > max_admin_level
type ErrInvalidLevelRange struct {
	Min, Max int
}

func (e *ErrInvalidLevelRange) Error() string {
	return fmt.Sprintf("invalid admin level range: min=%d is greater than max=%d", e.Min, e.Max)
}

// ErrInvalidCoordinate indicates a resolved point outside valid geographic bounds
type ErrInvalidCoordinate struct {
	PointID  int64
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("point %d has invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.PointID, e.Lat, e.Lon)
}
