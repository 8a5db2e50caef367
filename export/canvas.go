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

// Package export writes track drawings as SVG, PDF, PNG and GeoJSON.
//
// All writers use the coordinate system of the drawing, with the origin in
// the top left corner and the y axis pointing down.  Waypoints are usually
// mapped into this system by waypoints.Normalize first.
package export

import (
	"math"

	"seehuhn.de/go/racetrack"
)

// Canvas is the size of the drawing area, in drawing units.
type Canvas struct {
	Width, Height float64
}

// DefaultCanvas is the canvas size used when nothing else is specified.
var DefaultCanvas = Canvas{Width: 500, Height: 500}

// fitMargin is added to the extent of a drawing when the canvas size is
// chosen automatically.
const fitMargin = 25

// Resolve replaces zero or negative dimensions of the canvas by the
// extent of the drawing, plus a margin.
func (c Canvas) Resolve(d *racetrack.Drawing) Canvas {
	if c.Width > 0 && c.Height > 0 {
		return c
	}
	b := d.Bounds()
	if c.Width <= 0 {
		c.Width = math.Ceil(max(b.URx, 0) + fitMargin)
	}
	if c.Height <= 0 {
		c.Height = math.Ceil(max(b.URy, 0) + fitMargin)
	}
	return c
}
