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

package racetrack

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Style describes how an outline is stroked.
//
// The geometry code never looks inside a Style; it is attached to the
// generated outlines and interpreted by the output writers.
type Style struct {
	// Name identifies the outline in output formats which support labels.
	Name string `json:"name,omitempty"`

	// Color is an SVG colour: one of the SVG 1.1 keyword colours, or a
	// hexadecimal value in the form #rgb or #rrggbb.
	Color string `json:"color"`

	// Width is the stroke width in drawing units.
	Width float64 `json:"width"`

	// Dash gives alternating on/off lengths.  Nil means a solid line.
	Dash []float64 `json:"dash,omitempty"`

	// DashPhase offsets into the dash pattern.
	DashPhase float64 `json:"dashPhase,omitempty"`
}

// Default styles, matching the traditional look of the track drawings.
var (
	OuterStyle = Style{
		Name:  "outer",
		Color: "black",
		Width: trackWidth + trackLineThickness,
	}
	InnerStyle = Style{
		Name:  "inner",
		Color: "white",
		Width: trackWidth,
	}
	CenterlineStyle = Style{
		Name:  "centerline",
		Color: "red",
		Width: 0.5,
		Dash:  []float64{0.5, 2},
	}
	StartLineStyle = Style{
		Name:  "start",
		Color: "red",
		Width: 1,
	}
)

const (
	trackWidth         = 4
	trackLineThickness = 1
)

// RGBA converts the style colour to a color.RGBA value.
func (s Style) RGBA() (color.RGBA, error) {
	return ParseColor(s.Color)
}

// Check reports whether the style can be rendered.
func (s Style) Check() error {
	if _, err := s.RGBA(); err != nil {
		return err
	}
	if !(s.Width > 0) {
		return fmt.Errorf("style %q: invalid stroke width %g", s.Name, s.Width)
	}
	for _, d := range s.Dash {
		if d < 0 {
			return fmt.Errorf("style %q: negative dash length %g", s.Name, d)
		}
	}
	return nil
}

// ParseColor converts an SVG colour string to a color.RGBA value.
// The keyword "none" and the empty string give a fully transparent colour.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
