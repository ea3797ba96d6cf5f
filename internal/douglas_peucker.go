package internal

// Douglas-Peucker refinement. Each span between two kept points is replaced
// by its chord unless some interior point deviates from the chord by more
// than the tolerance, in which case the span is split at the farthest such
// point and both halves are refined on their own.
//
// The recursion works on index ranges over the input instead of sub slices.
// Both halves share the split point; the left half contributes everything up
// to but excluding it, so nothing is emitted twice.
//
// The tolerance is squared. The input is never modified.
func SimplifyDouglasPeucker(points []Point, sqTolerance float64) []Point {
	if len(points) <= 1 {
		return points
	}

	result := make([]Point, 0, len(points))
	result = refineSpan(points, 0, len(points)-1, sqTolerance, result)
	return append(result, points[len(points)-1])
}

// Appends the kept points of points[first:last] to result. The point at last
// is left to the caller, since it opens the next span.
func refineSpan(points []Point, first, last int, sqTolerance float64, result []Point) []Point {
	split, distance := farthestFromChord(points, first, last)
	if split >= 0 && distance > sqTolerance {
		result = refineSpan(points, first, split, sqTolerance, result)
		return refineSpan(points, split, last, sqTolerance, result)
	}

	// Nothing deviates enough, so the chord stands in for the whole span
	return append(result, points[first])
}

// Finds the interior point of the span that is farthest from the chord
// between points[first] and points[last]. Points equal in value to either
// endpoint are never candidates. On a tie the later index wins. Returns -1 if
// there is no candidate at all.
func farthestFromChord(points []Point, first, last int) (int, float64) {
	start, end := points[first], points[last]

	split := -1
	var best float64
	for i := first + 1; i < last; i++ {
		point := points[i]
		if point.Equal(start) || point.Equal(end) {
			continue
		}

		distance := SquaredSegmentDistance(point, start, end)
		if distance >= best {
			best = distance
			split = i
		}
	}
	return split, best
}
