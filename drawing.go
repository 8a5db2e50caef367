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
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Drawing is the result of rendering a track.
type Drawing struct {
	// Loop is the waypoint loop the drawing was made from.
	Loop Loop

	// Outlines are listed in painting order.
	Outlines []Outline
}

// All iterates over all primitives of the drawing in painting order,
// together with the style of the outline they belong to.
func (d *Drawing) All() iter.Seq2[Style, Primitive] {
	return func(yield func(Style, Primitive) bool) {
		for i := range d.Outlines {
			o := &d.Outlines[i]
			for _, prim := range o.Primitives {
				if !yield(o.Style, prim) {
					return
				}
			}
		}
	}
}

// Len returns the total number of primitives in the drawing.
func (d *Drawing) Len() int {
	n := 0
	for i := range d.Outlines {
		n += len(d.Outlines[i].Primitives)
	}
	return n
}

// Bounds returns a rectangle which contains all strokes of the drawing.
// Curves are bounded by their control points, and the rectangle is
// enlarged by half the widest stroke.  For an empty drawing the zero
// rectangle is returned.
func (d *Drawing) Bounds() rect.Rect {
	var b bbox
	maxWidth := 0.0
	for i := range d.Outlines {
		o := &d.Outlines[i]
		for _, prim := range o.Primitives {
			switch prim := prim.(type) {
			case Line:
				b.add(prim.Start)
				b.add(prim.End)
			case Curve:
				b.add(prim.Start)
				b.add(prim.Control)
				b.add(prim.End)
			}
		}
		maxWidth = max(maxWidth, o.Style.Width)
	}
	if !b.isSet {
		return rect.Rect{}
	}
	m := maxWidth / 2
	return rect.Rect{LLx: b.xMin - m, LLy: b.yMin - m, URx: b.xMax + m, URy: b.yMax + m}
}

// bbox accumulates the bounding box of a set of points.
type bbox struct {
	xMin, xMax, yMin, yMax float64
	isSet                  bool
}

func (b *bbox) add(p vec.Vec2) {
	if !b.isSet {
		b.xMin, b.xMax = p.X, p.X
		b.yMin, b.yMax = p.Y, p.Y
		b.isSet = true
		return
	}
	b.xMin = min(b.xMin, p.X)
	b.xMax = max(b.xMax, p.X)
	b.yMin = min(b.yMin, p.Y)
	b.yMax = max(b.yMax, p.Y)
}
