package osmpoly

import "github.com/beetlebugorg/osmpoly/internal/boundary"

// Dataset is a resettable stream of OSM records. Implement it to extract
// from sources other than files on disk; see ExtractDataset.
type Dataset = boundary.Dataset

// KindSkipper is optionally implemented by a Dataset to avoid decoding
// record kinds a pass does not need.
type KindSkipper = boundary.KindSkipper

// Record types read from a Dataset.
type (
	Record = boundary.Record
	Member = boundary.Member
	Kind   = boundary.Kind
	Tags   = boundary.Tags
)

const (
	KindNode     = boundary.KindNode
	KindWay      = boundary.KindWay
	KindRelation = boundary.KindRelation
)

// CoordinateScale is the factor between degrees and Record.LatFixed/LonFixed.
const CoordinateScale = boundary.CoordinateScale
