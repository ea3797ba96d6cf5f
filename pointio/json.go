package pointio

import (
	"encoding/json"
	"io"

	simplify "github.com/buehler/simplify-algorithm"
	"github.com/pkg/errors"
)

// The point objects of the json format. A present z makes a 3D point.
type jsonPoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

func ReadJSON(r io.Reader) ([]simplify.Point, error) {
	var objects []jsonPoint
	if err := json.NewDecoder(r).Decode(&objects); err != nil {
		return nil, errors.Wrap(err, "decoding json points")
	}

	points := make([]simplify.Point, len(objects))
	for i, object := range objects {
		if object.Z != nil {
			points[i] = simplify.Point3D(object.X, object.Y, *object.Z)
		} else {
			points[i] = simplify.Point2D(object.X, object.Y)
		}
	}
	return points, nil
}

func WriteJSON(w io.Writer, points []simplify.Point) error {
	objects := make([]jsonPoint, len(points))
	for i, p := range points {
		objects[i] = jsonPoint{X: p.X, Y: p.Y}
		if p.Is3D() {
			z := p.Z
			objects[i].Z = &z
		}
	}
	return errors.Wrap(json.NewEncoder(w).Encode(objects), "encoding json points")
}
