// Package pointio reads and writes polylines in the formats the simplify
// command understands. None of this is needed to call simplify.Simplify; it
// only turns external representations into points and back.
package pointio

import (
	"io"

	simplify "github.com/buehler/simplify-algorithm"
	"github.com/pkg/errors"
)

type Format string

const (
	// One point per line, "x y" or "x y z"
	FormatLines Format = "lines"
	// An array of {"x": …, "y": …, "z": …} objects
	FormatJSON Format = "json"
	// A LineString, as bare geometry, feature or feature collection
	FormatGeoJSON Format = "geojson"
	// The first polyline or polygon of an SVG document
	FormatSVG Format = "svg"
)

var Formats = []Format{FormatLines, FormatJSON, FormatGeoJSON, FormatSVG}

func Read(format Format, r io.Reader) ([]simplify.Point, error) {
	switch format {
	case FormatLines:
		return ReadLines(r)
	case FormatJSON:
		return ReadJSON(r)
	case FormatGeoJSON:
		return ReadGeoJSON(r)
	case FormatSVG:
		return ReadSVG(r)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

func Write(format Format, w io.Writer, points []simplify.Point) error {
	switch format {
	case FormatLines:
		return WriteLines(w, points)
	case FormatJSON:
		return WriteJSON(w, points)
	case FormatGeoJSON:
		return WriteGeoJSON(w, points)
	case FormatSVG:
		return WriteSVG(w, points)
	}
	return errors.Errorf("unknown format %q", format)
}
