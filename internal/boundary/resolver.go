package boundary

// resolver.go - relation → way → point reference resolution
//
// The dataset offers no random access, so references are resolved breadth
// first: all way ids wanted by all selected relations are collected and looked
// up in one pass, then all point ids wanted by those ways in another.
// Missing references are dropped, never gap filled.

import (
	"context"
)

// ExtractWayIDs returns, per relation, the ids of all way members in member order.
//
// Node and relation members are ignored. Member roles are not consulted.
func ExtractWayIDs(relations map[int64]*BoundaryRelation) map[int64][]int64 {
	result := make(map[int64][]int64, len(relations))
	for id, rel := range relations {
		var ways []int64
		for _, m := range rel.Members {
			if m.Kind == KindWay {
				ways = append(ways, m.Ref)
			}
		}
		result[id] = ways
	}
	return result
}

// wayIDSet flattens per-relation way lists into the set of ways to resolve.
func wayIDSet(relationWays map[int64][]int64) IDSet {
	set := make(IDSet)
	for _, ways := range relationWays {
		for _, id := range ways {
			set.Add(id)
		}
	}
	return set
}

// pointIDSet collects every point referenced by the resolved ways.
func pointIDSet(ways map[int64]WaySegment) IDSet {
	set := make(IDSet)
	for _, way := range ways {
		for _, id := range way.PointIDs {
			set.Add(id)
		}
	}
	return set
}

// ResolveWayPoints scans ds once and returns the point-id list of every way in wayIDs.
// Ways absent from the dataset are absent from the result.
func ResolveWayPoints(ctx context.Context, ds Dataset, wayIDs IDSet, opts Options) (map[int64]WaySegment, error) {
	return runPass(ctx, ds, opts, pass[map[int64]WaySegment]{
		name: "ways",
		kind: KindWay,
		newPartial: func() map[int64]WaySegment {
			return make(map[int64]WaySegment)
		},
		visit: func(partial map[int64]WaySegment, rec *Record) {
			if !wayIDs.Has(rec.ID) {
				return
			}
			partial[rec.ID] = WaySegment{ID: rec.ID, PointIDs: rec.Nodes}
		},
		merge: mergeMaps[int64, WaySegment],
		size:  func(m map[int64]WaySegment) int { return len(m) },
	})
}

// ResolvePoints scans ds once and returns the position of every point in pointIDs.
// Points absent from the dataset are absent from the result.
func ResolvePoints(ctx context.Context, ds Dataset, pointIDs IDSet, opts Options) (map[int64]PointRecord, error) {
	return runPass(ctx, ds, opts, pass[map[int64]PointRecord]{
		name: "nodes",
		kind: KindNode,
		newPartial: func() map[int64]PointRecord {
			return make(map[int64]PointRecord)
		},
		visit: func(partial map[int64]PointRecord, rec *Record) {
			if !pointIDs.Has(rec.ID) {
				return
			}
			partial[rec.ID] = newPointRecord(rec)
		},
		merge: mergeMaps[int64, PointRecord],
		size:  func(m map[int64]PointRecord) int { return len(m) },
	})
}

// chainStats counts the references dropped while building chains
type chainStats struct {
	missingWays   int
	missingPoints int
}

// BuildChains turns a relation's way list into one NodeChain per resolved way,
// in way order. Unresolved ways are skipped. Unresolved points are skipped in
// place, so a chain can be shorter than its way or even empty.
func BuildChains(wayIDs []int64, ways map[int64]WaySegment, points map[int64]PointRecord) []NodeChain {
	chains, _ := buildChains(wayIDs, ways, points)
	return chains
}

func buildChains(wayIDs []int64, ways map[int64]WaySegment, points map[int64]PointRecord) ([]NodeChain, chainStats) {
	var stats chainStats
	chains := make([]NodeChain, 0, len(wayIDs))

	for _, wayID := range wayIDs {
		way, ok := ways[wayID]
		if !ok {
			stats.missingWays++
			continue
		}

		chain := make(NodeChain, 0, len(way.PointIDs))
		for _, pointID := range way.PointIDs {
			point, ok := points[pointID]
			if !ok {
				stats.missingPoints++
				continue
			}
			chain = append(chain, point)
		}
		chains = append(chains, chain)
	}

	return chains, stats
}
