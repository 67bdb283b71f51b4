package osmfile

import (
	"math"

	"github.com/paulmach/osm"

	"github.com/beetlebugorg/osmpoly/internal/boundary"
)

// toRecord converts a decoded OSM object. Changesets, notes and users have
// no place in a boundary dataset and yield nil.
func toRecord(obj osm.Object) *boundary.Record {
	switch o := obj.(type) {
	case *osm.Node:
		return &boundary.Record{
			Kind:     boundary.KindNode,
			ID:       int64(o.ID),
			Tags:     toTags(o.Tags),
			LatFixed: toFixed(o.Lat),
			LonFixed: toFixed(o.Lon),
		}
	case *osm.Way:
		nodes := make([]int64, len(o.Nodes))
		for i, wn := range o.Nodes {
			nodes[i] = int64(wn.ID)
		}
		return &boundary.Record{
			Kind:  boundary.KindWay,
			ID:    int64(o.ID),
			Tags:  toTags(o.Tags),
			Nodes: nodes,
		}
	case *osm.Relation:
		members := make([]boundary.Member, 0, len(o.Members))
		for _, m := range o.Members {
			kind, ok := toKind(m.Type)
			if !ok {
				continue
			}
			members = append(members, boundary.Member{Kind: kind, Ref: m.Ref, Role: m.Role})
		}
		return &boundary.Record{
			Kind:    boundary.KindRelation,
			ID:      int64(o.ID),
			Tags:    toTags(o.Tags),
			Members: members,
		}
	}
	return nil
}

func toKind(t osm.Type) (boundary.Kind, bool) {
	switch t {
	case osm.TypeNode:
		return boundary.KindNode, true
	case osm.TypeWay:
		return boundary.KindWay, true
	case osm.TypeRelation:
		return boundary.KindRelation, true
	}
	return 0, false
}

func toTags(tags osm.Tags) boundary.Tags {
	if len(tags) == 0 {
		return nil
	}
	out := make(boundary.Tags, len(tags))
	for _, t := range tags {
		out[t.Key] = t.Value
	}
	return out
}

// toFixed converts degrees to the 10^-7 fixed point used in OSM files
func toFixed(deg float64) int64 {
	return int64(math.Round(deg * boundary.CoordinateScale))
}
