package internal

import "github.com/go-gl/mathgl/mgl64"

// Everything is computed squared. Callers only compare against a squared
// tolerance, so there is never a reason to take a root.

func SquaredDistance(a, b Point) float64 {
	return a.Vec3().Sub(b.Vec3()).LenSqr()
}

// Squared distance from p to the segment [start, end].
//
// Only the far end is clamped. A projection parameter below zero still uses
// the projected point on the infinite line rather than start, and existing
// outputs depend on that, so it has to stay this way.
func SquaredSegmentDistance(p, start, end Point) float64 {
	point := p.Vec3()
	origin := start.Vec3()
	delta := end.Vec3().Sub(origin)

	// Degenerate segment
	if delta == (mgl64.Vec3{}) {
		return point.Sub(origin).LenSqr()
	}

	t := point.Sub(origin).Dot(delta) / delta.LenSqr()
	if t > 1 {
		return point.Sub(end.Vec3()).LenSqr()
	}
	return point.Sub(origin.Add(delta.Mul(t))).LenSqr()
}
