package pointio

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	simplify "github.com/buehler/simplify-algorithm"
	"github.com/pkg/errors"
)

// This is not a full svg reader. It takes the points attribute of the first
// polyline, falling back to the first polygon, and ignores transforms.
func ReadSVG(r io.Reader) ([]simplify.Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	for _, name := range []string{"polyline", "polygon"} {
		elements := rootEl.FindAll(name)
		if len(elements) == 0 {
			continue
		}
		points, err := parseSVGPoints(elements[0].Attributes["points"])
		return points, errors.Wrapf(err, "%s points", name)
	}
	return nil, errors.New("no polyline or polygon found in svg")
}

// The points attribute is a list of numbers separated by commas and/or
// whitespace, taken in pairs.
func parseSVGPoints(attribute string) ([]simplify.Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]simplify.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, simplify.Point2D(x, y))
	}
	return points, nil
}

// Write a minimal svg document holding the points as a single polyline. The
// view box is the bounding box of the points. Z is dropped.
func WriteSVG(w io.Writer, points []simplify.Point) error {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	pairs := make([]string, len(points))
	for i, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		pairs[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%s %s %s %s\">\n"+
			"  <polyline fill=\"none\" stroke=\"black\" points=\"%s\"/>\n"+
			"</svg>\n",
		formatFloat(minX), formatFloat(minY), formatFloat(maxX-minX), formatFloat(maxY-minY),
		strings.Join(pairs, " "))
	return errors.Wrap(err, "writing svg")
}
