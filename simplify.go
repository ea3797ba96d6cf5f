// Polyline simplification for Go.
//
// This package reduces the number of points in a 2D or 3D polyline while
// keeping its shape within a given tolerance. It combines a radial distance
// pass with Douglas-Peucker refinement, or runs Douglas-Peucker on its own when
// quality matters more than speed.
//
// Everything here is pure. The input is never modified and calls may run
// concurrently.
package simplify

import "github.com/buehler/simplify-algorithm/internal"

type Point = internal.Point
type Dimension = internal.Dimension

const (
	Dim2 = internal.Dim2
	Dim3 = internal.Dim3
)

func Point2D(x, y float64) Point {
	return internal.Point2D(x, y)
}

func Point3D(x, y, z float64) Point {
	return internal.Point3D(x, y, z)
}

// Simplify the polyline given by points.
//
// The tolerance is a linear distance in the same units as the coordinates.
// Only its square is ever used, so the sign makes no difference. With
// highQuality the radial pre-filter is skipped and Douglas-Peucker sees every
// point. Polylines of two points or fewer come back unchanged.
//
// The result always starts and ends with the first and last input point.
func Simplify(points []Point, tolerance float64, highQuality bool) []Point {
	return internal.Simplify(points, tolerance, highQuality)
}
