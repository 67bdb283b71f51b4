package boundary

import (
	"errors"
	"io"
)

// memDataset is an in-memory Dataset for driving passes in tests
type memDataset struct {
	records []*Record
	pos     int
	resets  int

	// failAt makes Next fail with an *ErrDecode once pos reaches it (if > 0)
	failAt int
	// resetErr is returned by Reset when set
	resetErr error

	skipNodes, skipWays, skipRelations bool
}

func (d *memDataset) Reset() error {
	if d.resetErr != nil {
		return &ErrDatasetIO{Op: "reset", Err: d.resetErr}
	}
	d.pos = 0
	d.resets++
	return nil
}

func (d *memDataset) Next() (*Record, error) {
	for d.pos < len(d.records) {
		if d.failAt > 0 && d.pos >= d.failAt {
			return nil, &ErrDecode{Err: errors.New("truncated block")}
		}
		rec := d.records[d.pos]
		d.pos++
		if d.skipped(rec.Kind) {
			continue
		}
		return rec, nil
	}
	return nil, io.EOF
}

func (d *memDataset) SkipKinds(nodes, ways, relations bool) {
	d.skipNodes, d.skipWays, d.skipRelations = nodes, ways, relations
}

func (d *memDataset) skipped(k Kind) bool {
	switch k {
	case KindNode:
		return d.skipNodes
	case KindWay:
		return d.skipWays
	case KindRelation:
		return d.skipRelations
	}
	return false
}

func node(id int64, lat, lon float64) *Record {
	return &Record{
		Kind:     KindNode,
		ID:       id,
		LatFixed: int64(lat * CoordinateScale),
		LonFixed: int64(lon * CoordinateScale),
	}
}

func way(id int64, nodes ...int64) *Record {
	return &Record{Kind: KindWay, ID: id, Nodes: nodes}
}

func relation(id int64, tags Tags, wayRefs ...int64) *Record {
	members := make([]Member, len(wayRefs))
	for i, ref := range wayRefs {
		members[i] = Member{Kind: KindWay, Ref: ref, Role: "outer"}
	}
	return &Record{Kind: KindRelation, ID: id, Tags: tags, Members: members}
}

func adminTags(name, level string) Tags {
	return Tags{"boundary": "administrative", "admin_level": level, "name": name}
}

// chainOf builds a chain from point ids with coordinates derived from the id
func chainOf(ids ...int64) NodeChain {
	c := make(NodeChain, len(ids))
	for i, id := range ids {
		c[i] = PointRecord{ID: id, Lat: float32(id), Lon: float32(-id)}
	}
	return c
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func reversedIDs(ids []int64) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}
