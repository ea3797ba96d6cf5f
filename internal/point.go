package internal

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Dimension tags which variant a Point is.
type Dimension uint8

const (
	Dim2 Dimension = 2
	Dim3 Dimension = 3
)

// A Point is either a 2D or a 3D coordinate. The algorithms only ever look at
// the canonical form returned by Vec3, so both variants can be mixed in one
// sequence; 2D points then sit on the z = 0 plane.
type Point struct {
	X, Y, Z float64
	Dim     Dimension
}

func Point2D(x, y float64) Point {
	return Point{X: x, Y: y, Dim: Dim2}
}

func Point3D(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, Dim: Dim3}
}

func (p Point) Is3D() bool {
	return p.Dim == Dim3
}

// Canonical 3-coordinate form. The Z field of a 2D point is ignored.
func (p Point) Vec3() mgl64.Vec3 {
	if p.Is3D() {
		return mgl64.Vec3{p.X, p.Y, p.Z}
	}
	return mgl64.Vec3{p.X, p.Y, 0}
}

// Exact comparison of canonical forms. There is deliberately no epsilon here:
// the simplifiers use this to recognize the anchor and the chord endpoints,
// and two points with identical coordinates count as the same point.
func (p Point) Equal(other Point) bool {
	return p.Vec3() == other.Vec3()
}

func (p Point) String() string {
	if p.Is3D() {
		return fmt.Sprintf("3D Point: X = %f; Y = %f; Z = %f", p.X, p.Y, p.Z)
	}
	return fmt.Sprintf("2D Point: X = %f; Y = %f", p.X, p.Y)
}
