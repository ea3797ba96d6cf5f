package internal

// Single forward pass that drops every point closer than the tolerance to the
// last point that was kept (the anchor). The last input point always ends the
// output, even when it was within tolerance of the anchor, because the
// Douglas-Peucker pass that follows needs the true endpoints.
//
// The tolerance is squared. The input is never modified, and polylines of two
// points or fewer come back unchanged.
func SimplifyRadialDistance(points []Point, sqTolerance float64) []Point {
	if len(points) <= 2 {
		return points
	}

	anchor := points[0]
	result := []Point{anchor}
	for _, point := range points[1:] {
		if SquaredDistance(point, anchor) < sqTolerance {
			continue
		}
		result = append(result, point)
		anchor = point
	}

	if last := points[len(points)-1]; !last.Equal(anchor) {
		result = append(result, last)
	}
	return result
}
