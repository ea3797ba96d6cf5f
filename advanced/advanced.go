// Package advanced exposes the individual stages behind simplify.Simplify.
//
// Unlike Simplify, every function here takes the tolerance already squared.
// That makes it possible to run the radial pass and Douglas-Peucker
// separately, or several times over, without squaring again on each call.
package advanced

import "github.com/buehler/simplify-algorithm/internal"

type Point = internal.Point

// Squared euclidean distance between the canonical forms of a and b.
func SquaredDistance(a, b Point) float64 {
	return internal.SquaredDistance(a, b)
}

// Squared distance from p to the segment [start, end]. Note that only
// projections past end are clamped; a projection before start is measured to
// the foot on the infinite line.
func SquaredSegmentDistance(p, start, end Point) float64 {
	return internal.SquaredSegmentDistance(p, start, end)
}

func SimplifyRadialDistance(points []Point, sqTolerance float64) []Point {
	return internal.SimplifyRadialDistance(points, sqTolerance)
}

func SimplifyDouglasPeucker(points []Point, sqTolerance float64) []Point {
	return internal.SimplifyDouglasPeucker(points, sqTolerance)
}
