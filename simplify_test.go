package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestSimplify(t *testing.T) {
	points := []Point{
		Point2D(0, 0),
		Point2D(1, 1.02),
		Point2D(2, 1.98),
		Point2D(3, 3),
		Point2D(4, 2.01),
		Point2D(5, 0.99),
		Point2D(6, 0),
	}

	for _, highQuality := range []bool{true, false} {
		result := Simplify(points, 0.5, highQuality)
		assert.Equal(t, []Point{Point2D(0, 0), Point2D(3, 3), Point2D(6, 0)}, result)
	}
}

func TestSimplify_ShortInput(t *testing.T) {
	assert.Empty(t, Simplify(nil, 1, true))
	assert.Equal(t, []Point{Point3D(1, 2, 3)}, Simplify([]Point{Point3D(1, 2, 3)}, 1, false))
}
