package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	simplify "github.com/buehler/simplify-algorithm"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y" or "x y z". Blank lines and
// lines starting with # are skipped.
func ReadLines(r io.Reader) ([]simplify.Point, error) {
	points := []simplify.Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (simplify.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 && len(parts) != 3 {
		return simplify.Point{}, errors.Errorf("expected 2 or 3 coordinates, got %d", len(parts))
	}

	coordinates := make([]float64, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return simplify.Point{}, errors.Wrapf(err, "coordinate %d", i+1)
		}
		coordinates[i] = value
	}

	if len(coordinates) == 3 {
		return simplify.Point3D(coordinates[0], coordinates[1], coordinates[2]), nil
	}
	return simplify.Point2D(coordinates[0], coordinates[1]), nil
}

// Write points one per line, with a third column for 3D points. Coordinates
// are written with the shortest representation that reads back exactly.
func WriteLines(w io.Writer, points []simplify.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		line := formatFloat(p.X) + " " + formatFloat(p.Y)
		if p.Is3D() {
			line += " " + formatFloat(p.Z)
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	return errors.Wrap(bw.Flush(), "writing points")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
