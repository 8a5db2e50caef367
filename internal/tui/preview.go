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

package tui

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/racetrack"
)

// curveSteps is the number of straight pieces used for each corner curve.
const curveSteps = 6

// Preview draws the outlines of d as braille characters and returns the
// picture inside a rounded box.  The picture is at most cols cells wide
// and rows cells high, not counting the box.
func Preview(d *racetrack.Drawing, cols, rows int) string {
	cols = max(cols, 4)
	rows = max(rows, 2)
	lines := previewLines(d, cols, rows)
	title := titleStyle.Render(fmt.Sprintf("track preview: %d waypoints", len(d.Loop)))
	return boxStyle.Render(title + "\n" + strings.Join(lines, "\n"))
}

// previewLines returns the braille picture of d, one string per row.
func previewLines(d *racetrack.Drawing, cols, rows int) []string {
	buf := newBrailleBuf(cols, rows)
	b := d.Bounds()
	if b == (rect.Rect{}) {
		return buf.lines()
	}
	tr := fitTransform(b, 2*cols, 4*rows)

	for i := range d.Outlines {
		for _, prim := range d.Outlines[i].Primitives {
			switch prim := prim.(type) {
			case racetrack.Line:
				x0, y0 := tr(prim.Start)
				x1, y1 := tr(prim.End)
				buf.line(x0, y0, x1, y1)
			case racetrack.Curve:
				x0, y0 := tr(prim.Start)
				for k := 1; k <= curveSteps; k++ {
					x1, y1 := tr(prim.At(float64(k) / curveSteps))
					buf.line(x0, y0, x1, y1)
					x0, y0 = x1, y1
				}
			}
		}
	}
	return buf.lines()
}

// fitTransform returns a map from drawing coordinates to micro-pixels,
// which scales the rectangle b uniformly to fit into w×h micro-pixels.
// Braille dots are roughly square, so the aspect ratio is preserved.
func fitTransform(b rect.Rect, w, h int) func(vec.Vec2) (int, int) {
	dx := b.URx - b.LLx
	dy := b.URy - b.LLy
	scale := math.Inf(1)
	if dx > 0 {
		scale = float64(w-1) / dx
	}
	if dy > 0 {
		scale = min(scale, float64(h-1)/dy)
	}
	if math.IsInf(scale, 0) {
		scale = 1
	}
	return func(p vec.Vec2) (int, int) {
		x := int(math.Round((p.X - b.LLx) * scale))
		y := int(math.Round((p.Y - b.LLy) * scale))
		return x, y
	}
}
