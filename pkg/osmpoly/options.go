package osmpoly

import (
	"log/slog"
	"runtime"

	"github.com/beetlebugorg/osmpoly/internal/boundary"
)

// ExtractOptions configures extraction.
type ExtractOptions struct {
	// MinAdminLevel and MaxAdminLevel bound the extracted admin levels, inclusive.
	MinAdminLevel int
	MaxAdminLevel int

	// Workers is the number of goroutines evaluating records and stitching
	// relations. If 0, defaults to runtime.NumCPU().
	Workers int

	// DecodeProcs is the number of goroutines decoding PBF blocks.
	// If 0, defaults to runtime.NumCPU().
	DecodeProcs int

	// ValidateCoordinates rejects points outside ±90/±180 with *ErrInvalidCoordinate.
	ValidateCoordinates bool

	// Logger receives progress for each pass. Nil discards it.
	Logger *slog.Logger
}

// DefaultExtractOptions returns options extracting admin levels 1 through 8.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		MinAdminLevel: 1,
		MaxAdminLevel: 8,
		Workers:       runtime.NumCPU(),
		DecodeProcs:   runtime.NumCPU(),
	}
}

// Validate reports an invalid admin level window.
func (o ExtractOptions) Validate() error {
	return boundary.ValidateLevelRange(o.MinAdminLevel, o.MaxAdminLevel)
}

func (o ExtractOptions) pipelineOptions() boundary.Options {
	opts := boundary.DefaultOptions()
	opts.MinAdminLevel = o.MinAdminLevel
	opts.MaxAdminLevel = o.MaxAdminLevel
	opts.Workers = o.Workers
	opts.ValidateCoordinates = o.ValidateCoordinates
	opts.Logger = o.Logger
	return opts
}
