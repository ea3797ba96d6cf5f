package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polylines. It is not a full
// svg parser. It takes the first polyline in the document and reads its
// points attribute. If anything goes wrong, it fails hard.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}
	if len(polylines) > 1 {
		log.Fatalf("More than one polyline found in fixture %q", name)
	}

	pointStrings := strings.Fields(polylines[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
		}
		points = append(points, Point2D(x, y))
	}
	return points
}

// Some ad hoc code specified fixtures

// A noisy sine wave. The seed keeps it stable between runs.
func NoisySine(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x := float64(i) * 0.1
		y := 5*math.Sin(x) + rng.Float64()*0.6 - 0.3
		points = append(points, Point2D(x, y))
	}
	return points
}

// A helix climbing the z axis, with a little noise on the radius.
func NoisyHelix(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * math.Pi / 16
		r := 4 + rng.Float64()*0.2
		points = append(points, Point3D(r*math.Cos(angle), r*math.Sin(angle), float64(i)*0.05))
	}
	return points
}
