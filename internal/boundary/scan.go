package boundary

// scan.go - one forward pass over a Dataset
//
// A pass rewinds the dataset, reads it sequentially on a single producer
// goroutine and hands batches of records of the wanted kind to a pool of
// workers. Each worker folds records into its own partial result; the partials
// are merged once every worker has drained the queue. Partials are keyed by
// unique record id, so the merge is order independent and needs no locks.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// pass describes a single scan collecting a result of type T
type pass[T any] struct {
	name string
	kind Kind // only records of this kind reach visit

	newPartial func() T
	visit      func(partial T, rec *Record)
	merge      func(dst, src T)
	size       func(T) int
}

// passStats summarises a finished pass for logging
type passStats struct {
	scanned int64
	visited int64
	elapsed time.Duration
}

// runPass executes p over ds. Any reset or decode failure aborts the pass and
// no partial result is returned.
func runPass[T any](ctx context.Context, ds Dataset, opts Options, p pass[T]) (T, error) {
	var zero T
	start := time.Now()
	log := opts.logger()

	if err := ctx.Err(); err != nil {
		return zero, err
	}
	log.Debug("pass started", "pass", p.name)

	if skipper, ok := ds.(KindSkipper); ok {
		skipper.SkipKinds(p.kind != KindNode, p.kind != KindWay, p.kind != KindRelation)
	}
	if err := ds.Reset(); err != nil {
		return zero, fmt.Errorf("%s pass: %w", p.name, err)
	}

	workers := opts.workers()
	batchSize := opts.batchSize()

	g, gctx := errgroup.WithContext(ctx)
	batches := make(chan []*Record, workers)

	var stats passStats

	g.Go(func() error {
		defer close(batches)

		batch := make([]*Record, 0, batchSize)
		send := func() error {
			select {
			case batches <- batch:
				batch = make([]*Record, 0, batchSize)
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		for {
			rec, err := ds.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				var decodeErr *ErrDecode
				if errors.As(err, &decodeErr) {
					if decodeErr.Pass == "" {
						decodeErr.Pass = p.name
					}
					return err
				}
				return fmt.Errorf("%s pass: %w", p.name, err)
			}
			stats.scanned++

			if rec.Kind != p.kind {
				continue
			}
			stats.visited++

			batch = append(batch, rec)
			if len(batch) == batchSize {
				if err := send(); err != nil {
					return err
				}
			}
		}

		if len(batch) > 0 {
			return send()
		}
		return nil
	})

	partials := make([]T, workers)
	for i := range workers {
		partials[i] = p.newPartial()
		partial := partials[i]
		g.Go(func() error {
			for batch := range batches {
				for _, rec := range batch {
					p.visit(partial, rec)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zero, err
	}

	result := partials[0]
	for _, partial := range partials[1:] {
		p.merge(result, partial)
	}

	stats.elapsed = time.Since(start)
	log.Info("pass finished",
		"pass", p.name,
		"scanned", stats.scanned,
		"candidates", stats.visited,
		"kept", p.size(result),
		"elapsed", stats.elapsed.Round(time.Millisecond))

	return result, nil
}

// mergeMaps is the unique-key union used to combine partial pass results.
func mergeMaps[K comparable, V any](dst, src map[K]V) {
	for k, v := range src {
		dst[k] = v
	}
}
