package osmpoly

import "github.com/beetlebugorg/osmpoly/internal/boundary"

// Error types returned by Extract and ExtractDataset. Use errors.As to inspect them.
type (
	// ErrDatasetIO indicates the input could not be opened, rewound or read.
	ErrDatasetIO = boundary.ErrDatasetIO

	// ErrDecode indicates a malformed record in the input.
	ErrDecode = boundary.ErrDecode

	// ErrInvalidLevelRange indicates MinAdminLevel > MaxAdminLevel.
	ErrInvalidLevelRange = boundary.ErrInvalidLevelRange

	// ErrInvalidCoordinate indicates a point outside geographic bounds.
	ErrInvalidCoordinate = boundary.ErrInvalidCoordinate
)
