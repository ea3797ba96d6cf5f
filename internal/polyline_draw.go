package internal

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Padding around the drawing so that points on the bounding box stay visible
const dbgDrawPadding = 20

// Largest width or height of the drawing itself, in pixels. Larger drawings
// are scaled down to fit.
const dbgDrawMaxSize = 4096

// Draw the original polyline with the simplified one on top of it, for
// debugging. Only X and Y are drawn, so 3D polylines are projected onto the
// z = 0 plane. The origin is at the bottom left.
func Render(original, simplified []Point, scale float64) image.Image {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, points := range [][]Point{original, simplified} {
		for _, p := range points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	if extent := math.Max(maxX-minX, maxY-minY); scale*extent > dbgDrawMaxSize {
		scale = dbgDrawMaxSize / extent
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0.4, 0.4, 0.4)
	drawPolyline(c, original)
	c.Stroke()

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	drawPolyline(c, simplified)
	c.Stroke()

	// Paths are transformed but line widths are not, so only the radius needs
	// to undo the scale
	c.SetRGB(1, 0.5, 0)
	for _, p := range simplified {
		c.DrawCircle(p.X, p.Y, 3/scale)
	}
	c.Fill()

	return c.Image()
}

func drawPolyline(c *gg.Context, points []Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
}
