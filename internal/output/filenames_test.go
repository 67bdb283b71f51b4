package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

func named(name string, relationID int64) *osmpoly.Polygon {
	return osmpoly.NewPolygon(name, 1, relationID, nil)
}

func filenames(polygons []*osmpoly.Polygon) []string {
	var out []string
	for _, np := range PairSafeFilenames(polygons) {
		out = append(out, np.Filename)
	}
	return out
}

func TestMakeSafeRemovesForbiddenChars(t *testing.T) {
	assert.Equal(t, "abc", MakeSafe(`abc&:<>/\|*`))
}

func TestMakeSafeKeepsHarmlessChars(t *testing.T) {
	assert.Equal(t, "jhdsakljvsjkasspasd", MakeSafe("jhdsakljvsjkasspasd"))
	assert.Equal(t, "Baden-Württemberg (DE)", MakeSafe("Baden-Württemberg (DE)"))
}

func TestPairSafeFilenamesAppendsIDToDuplicates(t *testing.T) {
	got := filenames([]*osmpoly.Polygon{
		named("spain_region", 100),
		named("french_region", 200),
		named("spain_region", 300),
		named("spain_region", 400),
	})

	assert.Equal(t, []string{"spain_region_100", "french_region", "spain_region_300", "spain_region_400"}, got)
}

func TestPairSafeFilenamesKeepsUniqueNames(t *testing.T) {
	got := filenames([]*osmpoly.Polygon{
		named("spanish_region", 1),
		named("french_region", 2),
		named("german_region", 3),
	})

	assert.Equal(t, []string{"spanish_region", "french_region", "german_region"}, got)
}

func TestPairSafeFilenamesIgnoresCaseButRetainsOriginal(t *testing.T) {
	got := filenames([]*osmpoly.Polygon{
		named("spanish_region", 123),
		named("SPAniSh_RegION", 456),
	})

	assert.Equal(t, []string{"spanish_region_123", "SPAniSh_RegION_456"}, got)
}

func TestPairSafeFilenamesDetectsDuplicatesAfterSanitising(t *testing.T) {
	got := filenames([]*osmpoly.Polygon{
		named("a/b", 1),
		named("ab", 2),
	})

	assert.Equal(t, []string{"ab_1", "ab_2"}, got)
}
