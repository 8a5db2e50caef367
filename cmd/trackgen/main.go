// seehuhn.de/go/racetrack - rounded track outlines from rectilinear waypoints
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command trackgen draws a racetrack from a loop of waypoints.
//
// The waypoints are read from a CSV file with one "x,y" pair per line, or
// entered interactively.  The y axis of the input points up.  The track is
// written as SVG, PDF, PNG or GeoJSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"seehuhn.de/go/racetrack"
	"seehuhn.de/go/racetrack/export"
	"seehuhn.de/go/racetrack/internal/tui"
	"seehuhn.de/go/racetrack/waypoints"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "trackgen:", err)
		os.Exit(1)
	}
}

type options struct {
	input       string
	interactive bool
	output      string
	format      string
	config      string
	radius      float64
	padding     float64
	width       float64
	height      float64
	startLine   bool
	strict      bool
	engine      string
	scale       float64
	title       string
	print       bool
	preview     bool
	verbose     bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opt options
	flags := flag.NewFlagSet("trackgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opt.input, "i", "points.csv", "input CSV `file`")
	flags.BoolVar(&opt.interactive, "interactive", false, "enter waypoints in the terminal instead of reading -i")
	flags.StringVar(&opt.output, "o", "output.svg", "output `file`, or - for standard output")
	flags.StringVar(&opt.format, "f", "", "output `format`: svg, pdf, png or geojson (default: from the -o extension)")
	flags.StringVar(&opt.config, "config", "", "JSON style configuration `file`")
	flags.Float64Var(&opt.radius, "radius", -1, "corner `radius` for all outlines (default from the configuration)")
	flags.Float64Var(&opt.padding, "padding", waypoints.DefaultPadding, "distance of the track from the top left corner")
	flags.Float64Var(&opt.width, "width", export.DefaultCanvas.Width, "canvas width, 0 to fit the track")
	flags.Float64Var(&opt.height, "height", export.DefaultCanvas.Height, "canvas height, 0 to fit the track")
	flags.BoolVar(&opt.startLine, "start-line", false, "draw the start line")
	flags.BoolVar(&opt.strict, "strict", false, "reject segments which are not horizontal or vertical")
	flags.StringVar(&opt.engine, "engine", "native", "PNG `engine`: native or chrome")
	flags.Float64Var(&opt.scale, "scale", 1, "PNG pixels per unit")
	flags.StringVar(&opt.title, "title", "", "PNG title")
	flags.BoolVar(&opt.print, "print", false, "print the normalized waypoint table")
	flags.BoolVar(&opt.preview, "preview", false, "print a preview of the track")
	flags.BoolVar(&opt.verbose, "v", false, "log debug messages")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	racetrack.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer racetrack.SetLogger(nil)

	format, err := outputFormat(opt.format, opt.output)
	if err != nil {
		return err
	}
	if opt.engine != "native" && opt.engine != "chrome" {
		return fmt.Errorf("unknown PNG engine %q", opt.engine)
	}

	cfg, err := loadConfig(&opt)
	if err != nil {
		return err
	}
	renderer, err := racetrack.NewRenderer(cfg)
	if err != nil {
		return err
	}

	var loop racetrack.Loop
	if opt.interactive {
		loop, err = tui.ReadWaypoints()
	} else {
		loop, err = waypoints.ReadFile(opt.input)
	}
	if err != nil {
		return err
	}
	loop = waypoints.Normalize(loop, opt.padding)

	d, err := renderer.Render(loop)
	if err != nil {
		return err
	}

	if opt.print {
		fmt.Fprintln(stdout, tui.PointTable(loop))
	}
	if opt.preview {
		fmt.Fprintln(stdout, tui.Preview(d, 60, 20))
	}

	canvas := export.Canvas{Width: opt.width, Height: opt.height}
	if err := write(ctx, &opt, format, d, canvas, stdout); err != nil {
		return err
	}
	racetrack.Logger().Info("track written",
		slog.String("file", opt.output),
		slog.String("format", format),
		slog.Int("waypoints", len(loop)))
	return nil
}

func loadConfig(opt *options) (racetrack.Config, error) {
	cfg := racetrack.DefaultConfig()
	if opt.config != "" {
		var err error
		cfg, err = racetrack.ReadConfigFile(opt.config)
		if err != nil {
			return racetrack.Config{}, err
		}
	}
	if opt.radius >= 0 {
		cfg.SetRadius(opt.radius)
	}
	if opt.startLine && cfg.StartLine == nil {
		s := racetrack.StartLineStyle
		cfg.StartLine = &s
	}
	if opt.strict {
		cfg.Strict = true
	}
	return cfg, nil
}

func outputFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "json" {
			format = "geojson"
		}
	}
	switch format {
	case "svg", "pdf", "png", "geojson":
		return format, nil
	case "":
		return "", fmt.Errorf("cannot infer the output format of %q, use -f", output)
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

func write(ctx context.Context, opt *options, format string, d *racetrack.Drawing, canvas export.Canvas, stdout io.Writer) (err error) {
	if format == "pdf" {
		if opt.output == "-" {
			return errors.New("PDF output needs a file name")
		}
		return export.WritePDF(opt.output, d, canvas)
	}

	var w io.Writer = stdout
	if opt.output != "-" {
		f, ferr := os.Create(opt.output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch format {
	case "svg":
		return export.WriteSVG(w, d, canvas)
	case "geojson":
		return export.WriteGeoJSON(w, d, nil)
	case "png":
		if opt.engine == "chrome" {
			return export.WriteChromePNG(ctx, w, d, canvas)
		}
		return export.WritePNG(w, d, canvas, &export.PNGOptions{
			Scale: opt.scale,
			Title: opt.title,
		})
	}
	panic("unreachable")
}
