package pointio

import (
	"bytes"
	"strings"
	"testing"

	simplify "github.com/buehler/simplify-algorithm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVG(t *testing.T) {
	cases := map[string]string{
		"polyline": `<svg xmlns="http://www.w3.org/2000/svg"><polyline points="0,0 1,1.5 2,0"/></svg>`,
		"polygon":  `<svg xmlns="http://www.w3.org/2000/svg"><g><polygon points="0 0 1 1.5 2 0"/></g></svg>`,
		"mixed separators": `<svg xmlns="http://www.w3.org/2000/svg">
			<polyline points="0,0,1,1.5
				2 0"/>
		</svg>`,
	}

	expected := []simplify.Point{simplify.Point2D(0, 0), simplify.Point2D(1, 1.5), simplify.Point2D(2, 0)}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			points, err := ReadSVG(strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, expected, points)
		})
	}
}

func TestReadSVG_Errors(t *testing.T) {
	_, err := ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><circle r="1"/></svg>`))
	assert.EqualError(t, err, "no polyline or polygon found in svg")

	_, err = ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><polyline points="0,0 1"/></svg>`))
	assert.EqualError(t, err, "polyline points: odd number of coordinates (3)")
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	points := []simplify.Point{simplify.Point2D(-1, 0), simplify.Point2D(1, 1.5), simplify.Point3D(2, 0, 9)}
	require.NoError(t, WriteSVG(&buf, points))
	assert.Contains(t, buf.String(), `viewBox="-1 0 3 1.5"`)

	read, err := ReadSVG(&buf)
	require.NoError(t, err)
	assert.Equal(t, []simplify.Point{simplify.Point2D(-1, 0), simplify.Point2D(1, 1.5), simplify.Point2D(2, 0)}, read)
}
