package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	simplify "github.com/buehler/simplify-algorithm"
	"github.com/buehler/simplify-algorithm/internal"
	"github.com/buehler/simplify-algorithm/internal/dbg"
	"github.com/buehler/simplify-algorithm/pointio"
)

type config struct {
	tolerance    float64
	highQuality  bool
	input        string
	format       string
	outputFormat string
	png          string
	scale        float64
	imgcat       bool
	noColor      bool
	quiet        bool
}

func formatNames() []string {
	names := make([]string, len(pointio.Formats))
	for i, format := range pointio.Formats {
		names[i] = string(format)
	}
	return names
}

func parseFlags(args []string) (*config, error) {
	var c config
	app := kingpin.New("simplify", "Reduce the number of points in a 2D or 3D polyline while keeping its shape.")
	app.Flag("tolerance", "Maximum deviation of the result, in coordinate units.").
		Short('t').Default("1").Envar("SIMPLIFY_TOLERANCE").Float64Var(&c.tolerance)
	app.Flag("high-quality", "Skip the radial distance pre-filter and run Douglas-Peucker on every point.").
		Short('q').Envar("SIMPLIFY_HIGH_QUALITY").BoolVar(&c.highQuality)
	app.Flag("format", "Input format.").
		Short('f').Default(string(pointio.FormatLines)).Envar("SIMPLIFY_FORMAT").EnumVar(&c.format, formatNames()...)
	app.Flag("output-format", "Output format. Defaults to the input format.").
		Short('o').Envar("SIMPLIFY_OUTPUT_FORMAT").EnumVar(&c.outputFormat, formatNames()...)
	app.Flag("png", "Render the original and the simplified polyline to this PNG file.").
		PlaceHolder("PATH").StringVar(&c.png)
	app.Flag("scale", "Pixels per coordinate unit when rendering.").
		Default("10").Float64Var(&c.scale)
	app.Flag("imgcat", "Print the rendering to the terminal (iTerm only).").BoolVar(&c.imgcat)
	app.Flag("no-color", "Disable colored output.").Envar("SIMPLIFY_NO_COLOR").BoolVar(&c.noColor)
	app.Flag("quiet", "Do not print the summary.").BoolVar(&c.quiet)
	app.Arg("input", "Input file. Reads stdin when omitted.").StringVar(&c.input)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if c.outputFormat == "" {
		c.outputFormat = c.format
	}
	if c.scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %v", c.scale)
	}
	return &c, nil
}

// Simplify a polyline read from a file or stdin and write the result to
// stdout. A one line summary goes to stderr.
//
//	simplify -t 0.5 -q < points.txt
//	simplify -f geojson -o lines --png /tmp/out.png track.geojson
func main() {
	logger := log.New(os.Stderr, "simplify: ", 0)

	c, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}
	if err := run(c, os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Fatal(err)
	}
}

func run(c *config, stdin io.Reader, stdout, stderr io.Writer) error {
	in := stdin
	name := "stdin"
	if c.input != "" && c.input != "-" {
		file, err := os.Open(c.input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
		name = c.input
	}

	points, err := pointio.Read(pointio.Format(c.format), in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}

	result := simplify.Simplify(points, c.tolerance, c.highQuality)

	if err := pointio.Write(pointio.Format(c.outputFormat), stdout, result); err != nil {
		return err
	}

	if c.png != "" || c.imgcat {
		if err := render(c, points, result, stderr); err != nil {
			return err
		}
	}

	if !c.quiet {
		au := aurora.NewAurora(!c.noColor)
		mode := "fast"
		if c.highQuality {
			mode = "high quality"
		}
		fmt.Fprintf(stderr, "%s %s: %s, tolerance %v, %s\n",
			au.Bold(dbg.Name(name)), au.Faint(name), dbg.Reduction(au, len(points), len(result)), c.tolerance, mode)
	}
	return nil
}

// The rendering is printed to stderr, which keeps stdout machine readable.
func render(c *config, original, simplified []simplify.Point, stderr io.Writer) error {
	img := internal.Render(original, simplified, c.scale)
	path := c.png
	if path == "" {
		path = "/tmp/simplify.png"
	}
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrap(err, "saving png")
	}
	if c.imgcat {
		if err := imgcat.CatFile(path, stderr); err != nil {
			return errors.Wrap(err, "printing png")
		}
	}
	return nil
}
