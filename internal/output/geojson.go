package output

import (
	"io"

	"github.com/paulmach/orb/geojson"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

// GeoJSONWriter writes one GeoJSON Feature per polygon. The geometry is a
// MultiPolygon with one polygon per ring; open rings are closed.
type GeoJSONWriter struct{}

func (GeoJSONWriter) Ext() string { return "geojson" }

func (GeoJSONWriter) WritePolygon(w io.Writer, p *osmpoly.Polygon) error {
	body, err := Feature(p).MarshalJSON()
	if err != nil {
		return err
	}
	body = append(body, '\n')
	_, err = w.Write(body)
	return err
}

// Feature converts a polygon to a GeoJSON feature with name, admin_level
// and relation_id properties.
func Feature(p *osmpoly.Polygon) *geojson.Feature {
	f := geojson.NewFeature(p.MultiPolygon())
	f.ID = p.RelationID()
	f.Properties["name"] = p.Name()
	f.Properties["admin_level"] = p.AdminLevel()
	f.Properties["relation_id"] = p.RelationID()
	return f
}
