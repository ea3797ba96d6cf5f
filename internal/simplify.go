package internal

// Simplify runs the full pipeline. The tolerance is a plain linear distance;
// it is squared once here and both passes use the squared value. Sequences of
// two points or fewer are returned as they are.
//
// With highQuality set only Douglas-Peucker runs. Otherwise the radial pass
// thins the input first, which is cheaper on dense input.
func Simplify(points []Point, tolerance float64, highQuality bool) []Point {
	if len(points) <= 2 {
		return points
	}

	sqTolerance := tolerance * tolerance
	if highQuality {
		return SimplifyDouglasPeucker(points, sqTolerance)
	}
	return SimplifyDouglasPeucker(SimplifyRadialDistance(points, sqTolerance), sqTolerance)
}
