// Package output writes extracted polygons to disk, one file per polygon and format.
package output

import (
	"io"

	"github.com/beetlebugorg/osmpoly/pkg/osmpoly"
)

// FileWriter encodes a single polygon in one output format
type FileWriter interface {
	// Ext returns the file extension without the leading dot
	Ext() string

	// WritePolygon encodes p to w
	WritePolygon(w io.Writer, p *osmpoly.Polygon) error
}
