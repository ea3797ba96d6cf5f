package pointio

import (
	"encoding/json"
	"io"

	simplify "github.com/buehler/simplify-algorithm"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// orb geometry is planar, so everything that goes through here is 2D. The Z of
// a 3D point is dropped.

func FromLineString(ls orb.LineString) []simplify.Point {
	points := make([]simplify.Point, len(ls))
	for i, p := range ls {
		points[i] = simplify.Point2D(p.X(), p.Y())
	}
	return points
}

func ToLineString(points []simplify.Point) orb.LineString {
	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

// Read the first line string out of a GeoJSON document. The document can be a
// feature collection, a single feature or a bare geometry. A multi line string
// contributes its first line and a polygon its outer ring.
func ReadGeoJSON(r io.Reader) ([]simplify.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "decoding geojson")
	}

	var geometries []orb.Geometry
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "decoding feature collection")
		}
		for _, feature := range fc.Features {
			geometries = append(geometries, feature.Geometry)
		}
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "decoding feature")
		}
		geometries = append(geometries, feature.Geometry)
	default:
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "decoding geometry")
		}
		geometries = append(geometries, geometry.Geometry())
	}

	for _, geometry := range geometries {
		if ls, ok := firstLineString(geometry); ok {
			return FromLineString(ls), nil
		}
	}
	return nil, errors.New("no line string found in geojson")
}

func firstLineString(geometry orb.Geometry) (orb.LineString, bool) {
	switch g := geometry.(type) {
	case orb.LineString:
		return g, true
	case orb.MultiLineString:
		if len(g) > 0 {
			return g[0], true
		}
	case orb.Polygon:
		if len(g) > 0 {
			return orb.LineString(g[0]), true
		}
	}
	return nil, false
}

// Write a feature collection holding a single line string feature.
func WriteGeoJSON(w io.Writer, points []simplify.Point) error {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(ToLineString(points)))
	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	_, err = w.Write(append(data, '\n'))
	return errors.Wrap(err, "writing geojson")
}
