package boundary

// record.go - dataset records and the entities resolved from them

// CoordinateScale converts fixed-point node coordinates to degrees.
// OSM stores latitude and longitude as integers in units of 10^-7 degrees.
const CoordinateScale = 10_000_000.0

// Kind discriminates the three record kinds of an OSM dataset
type Kind int

const (
	KindNode Kind = iota + 1
	KindWay
	KindRelation
)

// String returns the OSM name of the record kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindWay:
		return "way"
	case KindRelation:
		return "relation"
	default:
		return "unknown"
	}
}

// Tags maps tag keys to values. Keys are unique.
type Tags map[string]string

// Contains reports whether the tag key is present with exactly the given value.
func (t Tags) Contains(key, value string) bool {
	v, ok := t[key]
	return ok && v == value
}

// Member is a reference from a relation to another record
type Member struct {
	Kind Kind
	Ref  int64
	Role string // "outer", "inner", "admin_centre", ... carried but never filtered on
}

// Record is a single entry read from a Dataset.
// Only the fields belonging to Kind are populated.
type Record struct {
	Kind Kind
	ID   int64
	Tags Tags

	// Node coordinates, degrees scaled by 10^7
	LatFixed int64
	LonFixed int64

	// Way point ids in traversal order
	Nodes []int64

	// Relation members in their original order
	Members []Member
}

// BoundaryRelation is a relation admitted by the filter
type BoundaryRelation struct {
	ID      int64
	Tags    Tags
	Members []Member
}

// WaySegment is the ordered point-id list of one way
type WaySegment struct {
	ID       int64
	PointIDs []int64
}

// PointRecord is a resolved node position in degrees
type PointRecord struct {
	ID  int64
	Lat float32
	Lon float32
}

// newPointRecord narrows the fixed-point coordinates of a node record to output precision.
func newPointRecord(rec *Record) PointRecord {
	return PointRecord{
		ID:  rec.ID,
		Lat: float32(float64(rec.LatFixed) / CoordinateScale),
		Lon: float32(float64(rec.LonFixed) / CoordinateScale),
	}
}

// NodeChain is an ordered sequence of resolved points, one way or several stitched together
type NodeChain []PointRecord

// Closed reports whether the chain starts and ends on the same point id.
func (c NodeChain) Closed() bool {
	return len(c) > 1 && c[0].ID == c[len(c)-1].ID
}

// IDs returns the point ids of the chain in order.
func (c NodeChain) IDs() []int64 {
	ids := make([]int64, len(c))
	for i, p := range c {
		ids[i] = p.ID
	}
	return ids
}

// Point is a ring vertex
type Point struct {
	Lat float32
	Lon float32
}

// Ring is one ordered boundary sequence of a polygon
type Ring []Point

// Polygon is the exported entity for one boundary relation
type Polygon struct {
	Name       string
	AdminLevel int64
	RelationID int64
	Rings      []Ring
}

// IDSet is a set of record ids
type IDSet map[int64]struct{}

// Add inserts id into the set.
func (s IDSet) Add(id int64) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}
