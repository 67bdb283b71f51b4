package boundary

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Stats counts what a pipeline run selected and what it had to drop
type Stats struct {
	Relations       int // relations admitted by the filter
	WaysRequested   int
	WaysMissing     int // way references not found in the dataset
	PointsRequested int
	PointsMissing   int // point references not found in the dataset
	Polygons        int
}

// Pipeline resolves boundary relations of a Dataset into polygons.
//
// A run makes at most three forward passes: relations, then ways, then nodes.
// Each pass rewinds the dataset first. Reset and decode failures abort the run
// and no polygons are returned.
type Pipeline struct {
	ds    Dataset
	opts  Options
	stats Stats
}

// NewPipeline creates a pipeline over ds. Callers validate the level range
// with ValidateLevelRange beforehand.
func NewPipeline(ds Dataset, opts Options) *Pipeline {
	return &Pipeline{ds: ds, opts: opts}
}

// Stats returns the counters of the last Run.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Run executes the full resolution and returns one Polygon per relation that
// owns at least one resolvable way, sorted by relation id.
func (p *Pipeline) Run(ctx context.Context) ([]Polygon, error) {
	start := time.Now()
	log := p.opts.logger()
	p.stats = Stats{}

	relations, err := SelectRelations(ctx, p.ds, p.opts)
	if err != nil {
		return nil, err
	}
	p.stats.Relations = len(relations)
	if len(relations) == 0 {
		log.Info("no boundary relations matched",
			"min_admin_level", p.opts.MinAdminLevel,
			"max_admin_level", p.opts.MaxAdminLevel)
		return []Polygon{}, nil
	}

	relationWays := ExtractWayIDs(relations)
	wayIDs := wayIDSet(relationWays)
	p.stats.WaysRequested = len(wayIDs)

	ways, err := ResolveWayPoints(ctx, p.ds, wayIDs, p.opts)
	if err != nil {
		return nil, err
	}

	pointIDs := pointIDSet(ways)
	p.stats.PointsRequested = len(pointIDs)

	points, err := ResolvePoints(ctx, p.ds, pointIDs, p.opts)
	if err != nil {
		return nil, err
	}

	if p.opts.ValidateCoordinates {
		if err := ValidatePoints(points); err != nil {
			return nil, err
		}
	}

	// Compose chains per relation in a fixed order so the output is stable
	ids := make([]int64, 0, len(relationWays))
	for id := range relationWays {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	jobs := make([]stitchJob, 0, len(ids))
	for _, id := range ids {
		chains, cs := buildChains(relationWays[id], ways, points)
		p.stats.WaysMissing += cs.missingWays
		p.stats.PointsMissing += cs.missingPoints
		if cs.missingWays > 0 || cs.missingPoints > 0 {
			log.Debug("relation has missing references",
				"relation", id,
				"ways_missing", cs.missingWays,
				"points_missing", cs.missingPoints)
		}
		if len(chains) == 0 {
			log.Debug("relation has no resolvable ways", "relation", id)
			continue
		}
		jobs = append(jobs, stitchJob{relation: relations[id], chains: chains})
	}

	polygons := stitchAll(jobs, p.opts.workers())
	p.stats.Polygons = len(polygons)

	log.Info("resolution finished",
		"relations", p.stats.Relations,
		"polygons", p.stats.Polygons,
		"ways_missing", p.stats.WaysMissing,
		"points_missing", p.stats.PointsMissing,
		"elapsed", time.Since(start).Round(time.Millisecond))

	return polygons, nil
}

// stitchJob is the per-relation input of the stitching stage
type stitchJob struct {
	relation *BoundaryRelation
	chains   []NodeChain
}

// stitchAll stitches and assembles relations concurrently. Relations share no
// mutable state; results keep the order of jobs.
func stitchAll(jobs []stitchJob, workers int) []Polygon {
	polygons := make([]Polygon, len(jobs))
	if len(jobs) == 0 {
		return polygons
	}

	// Don't create more workers than relations
	if workers > len(jobs) {
		workers = len(jobs)
	}

	indices := make(chan int, len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indices {
				job := jobs[index]
				polygons[index] = Assemble(job.relation, Stitch(job.chains))
			}
		}()
	}

	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return polygons
}
