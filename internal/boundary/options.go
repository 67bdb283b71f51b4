package boundary

import (
	"log/slog"
	"runtime"
)

// Options configures the resolution pipeline
type Options struct {
	// MinAdminLevel and MaxAdminLevel bound the admitted admin_level values (inclusive).
	// The caller validates MinAdminLevel <= MaxAdminLevel.
	MinAdminLevel int
	MaxAdminLevel int

	// Workers is the number of goroutines evaluating records in each pass and
	// stitching relations afterwards. If 0, defaults to runtime.NumCPU().
	Workers int

	// BatchSize is the number of records handed to a worker at once.
	// If 0, defaults to 4096.
	BatchSize int

	// ValidateCoordinates rejects resolved points outside ±90/±180 with *ErrInvalidCoordinate.
	ValidateCoordinates bool

	// Logger receives per-pass progress. Nil discards it.
	Logger *slog.Logger
}

const defaultBatchSize = 4096

// DefaultOptions returns options admitting admin levels 1 through 8
func DefaultOptions() Options {
	return Options{
		MinAdminLevel: 1,
		MaxAdminLevel: 8,
		Workers:       runtime.NumCPU(),
		BatchSize:     defaultBatchSize,
	}
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o Options) batchSize() int {
	if o.BatchSize <= 0 {
		return defaultBatchSize
	}
	return o.BatchSize
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
