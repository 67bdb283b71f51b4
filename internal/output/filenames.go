package output

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

// forbiddenChars are removed from polygon names before use as file names
const forbiddenChars = `\/&:<>|*`

// MakeSafe strips characters that are unsafe in file names.
func MakeSafe(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenChars, r) {
			return -1
		}
		return r
	}, name)
}

// NamedPolygon pairs a polygon with its output file name, without extension
type NamedPolygon struct {
	Filename string
	Polygon  *osmpoly.Polygon
}

// PairSafeFilenames assigns a file name to every polygon. Names that collide
// case-insensitively after sanitising all get "_<relation id>" appended;
// unique names are kept verbatim.
func PairSafeFilenames(polygons []*osmpoly.Polygon) []NamedPolygon {
	safe := make([]string, len(polygons))
	counts := make(map[string]int, len(polygons))
	for i, p := range polygons {
		safe[i] = MakeSafe(p.Name())
		counts[strings.ToLower(safe[i])]++
	}

	named := make([]NamedPolygon, len(polygons))
	for i, p := range polygons {
		name := safe[i]
		if counts[strings.ToLower(name)] > 1 {
			name += "_" + strconv.FormatInt(p.RelationID(), 10)
		}
		named[i] = NamedPolygon{Filename: name, Polygon: p}
	}
	return named
}
