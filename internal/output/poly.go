package output

import (
	"bufio"
	"io"
	"strconv"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

// PolyWriter writes the Osmosis ASCII polygon format.
//
//	<name>
//	area_1
//		<lon> 	<lat>
//	END
//	END
//
// Every ring becomes one numbered section. Coordinates use the shortest
// decimal form that round-trips the stored float32.
type PolyWriter struct{}

func (PolyWriter) Ext() string { return "poly" }

func (PolyWriter) WritePolygon(w io.Writer, p *osmpoly.Polygon) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(p.Name())
	bw.WriteByte('\n')

	for i, ring := range p.Rings() {
		bw.WriteString("area_")
		bw.WriteString(strconv.Itoa(i + 1))
		bw.WriteByte('\n')
		for _, pt := range ring {
			bw.WriteByte('\t')
			bw.WriteString(formatCoord(pt.Lon))
			bw.WriteString(" \t")
			bw.WriteString(formatCoord(pt.Lat))
			bw.WriteByte('\n')
		}
		bw.WriteString("END\n")
	}
	bw.WriteString("END\n")

	return bw.Flush()
}

func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
