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

// Package racetrack turns a closed rectilinear sequence of waypoints into
// the outline of a race track with rounded corners.
//
// A track drawing consists of three outlines around the same waypoint loop:
// a wide outer boundary, a narrower inner line painted on top of it, and a
// dashed centerline.  Each outline is built from straights, trimmed short
// of every corner by the corner radius, and quadratic curves which bridge
// the gaps and use the original waypoint as control point.
//
// Only horizontal and vertical segments are supported.  Diagonal segments
// are tolerated but are drawn without trimming, which gives malformed
// corners.
//
// The sub-packages read waypoints (waypoints), write the drawing in various
// formats (export), and provide the trackgen command.
package racetrack

import (
	"fmt"
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Layer combines a corner radius with a stroke style.
type Layer struct {
	Radius float64 `json:"radius"`
	Style  Style   `json:"style"`
}

// Config holds the parameters for rendering a track.
type Config struct {
	Outer      Layer `json:"outer"`
	Inner      Layer `json:"inner"`
	Centerline Layer `json:"centerline"`

	// StartLine, if set, adds a line across the track at the middle of
	// the first segment.
	StartLine *Style `json:"startLine,omitempty"`

	// Strict makes Render fail on segments which are neither horizontal
	// nor vertical, instead of drawing them untrimmed.
	Strict bool `json:"strict,omitempty"`
}

// DefaultRadius is the default corner radius.
const DefaultRadius = 10

// DefaultConfig returns the standard track look: a black outer boundary,
// a white inner line and a dashed red centerline, all with corner radius
// DefaultRadius.
func DefaultConfig() Config {
	return Config{
		Outer:      Layer{Radius: DefaultRadius, Style: OuterStyle.clone()},
		Inner:      Layer{Radius: DefaultRadius, Style: InnerStyle.clone()},
		Centerline: Layer{Radius: DefaultRadius, Style: CenterlineStyle.clone()},
	}
}

// SetRadius sets the corner radius of all three outlines.
func (c *Config) SetRadius(r float64) {
	c.Outer.Radius = r
	c.Inner.Radius = r
	c.Centerline.Radius = r
}

// Check reports whether the configuration can be rendered.
func (c *Config) Check() error {
	for _, layer := range c.layers() {
		if !(layer.Radius >= 0) {
			return fmt.Errorf("racetrack: invalid corner radius %g for %q", layer.Radius, layer.Style.Name)
		}
		if err := layer.Style.Check(); err != nil {
			return fmt.Errorf("racetrack: %w", err)
		}
	}
	if c.StartLine != nil {
		if err := c.StartLine.Check(); err != nil {
			return fmt.Errorf("racetrack: %w", err)
		}
	}
	return nil
}

// layers returns the three outline layers in drawing order.
func (c *Config) layers() []Layer {
	return []Layer{c.Outer, c.Inner, c.Centerline}
}

// Renderer draws tracks with a fixed configuration.
// A Renderer holds no mutable state and can be used concurrently.
type Renderer struct {
	cfg Config
}

// NewRenderer checks the configuration and returns a Renderer for it.
// The configuration is copied; later changes to cfg have no effect.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	r := &Renderer{cfg: cfg}
	r.cfg.Outer.Style = cfg.Outer.Style.clone()
	r.cfg.Inner.Style = cfg.Inner.Style.clone()
	r.cfg.Centerline.Style = cfg.Centerline.Style.clone()
	if cfg.StartLine != nil {
		s := cfg.StartLine.clone()
		r.cfg.StartLine = &s
	}
	return r, nil
}

// Config returns a copy of the renderer's configuration.
func (r *Renderer) Config() Config {
	cfg := r.cfg
	cfg.Outer.Style = r.cfg.Outer.Style.clone()
	cfg.Inner.Style = r.cfg.Inner.Style.clone()
	cfg.Centerline.Style = r.cfg.Centerline.Style.clone()
	if r.cfg.StartLine != nil {
		s := r.cfg.StartLine.clone()
		cfg.StartLine = &s
	}
	return cfg
}

// Render draws the track for the given loop.
//
// The outer boundary is drawn first, followed by the inner line and the
// centerline, so that later outlines appear on top.  Loops with fewer than
// MinPoints waypoints are rejected with ErrTooFewPoints.
func (r *Renderer) Render(loop Loop) (*Drawing, error) {
	if len(loop) < MinPoints {
		return nil, ErrTooFewPoints
	}

	log := Logger()
	for i := range loop {
		from, to := loop.Segment(i)
		if Classify(from, to) != Unknown {
			continue
		}
		err := &SegmentError{Index: i, From: from, To: to}
		if r.cfg.Strict {
			return nil, err
		}
		log.Warn("segment drawn without rounded corners",
			slog.Int("segment", i),
			slog.Any("from", from), slog.Any("to", to))
	}

	d := &Drawing{Loop: loop}
	for _, layer := range r.cfg.layers() {
		o, err := BuildOutline(loop, layer.Radius, layer.Style)
		if err != nil {
			return nil, err
		}
		log.Debug("outline built",
			slog.String("style", layer.Style.Name),
			slog.Float64("radius", layer.Radius),
			slog.Int("primitives", len(o.Primitives)))
		d.Outlines = append(d.Outlines, o)
	}

	if r.cfg.StartLine != nil {
		if o, ok := startLine(loop, r.cfg.Outer.Style.Width, *r.cfg.StartLine); ok {
			d.Outlines = append(d.Outlines, o)
		}
	}

	return d, nil
}

// startLine returns a line across the middle of the first segment.
// The line is as long as the track is wide.
func startLine(loop Loop, width float64, style Style) (Outline, bool) {
	from, to := loop.Segment(0)
	d := to.Sub(from)
	length := d.Length()
	if length == 0 {
		return Outline{}, false
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(width / 2)
	mid := from.Add(d.Mul(0.5))
	return Outline{
		Style:      style,
		Primitives: []Primitive{Line{Start: mid.Sub(n), End: mid.Add(n)}},
	}, true
}

// clone returns a copy of s which does not share the dash slice.
func (s Style) clone() Style {
	s.Dash = slices.Clone(s.Dash)
	return s
}
