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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Primitive is a drawable element of an outline.
// The concrete types are Line and Curve.
type Primitive interface {
	isPrimitive()
}

// Line is a straight piece of an outline.
type Line struct {
	Start, End vec.Vec2
}

func (Line) isPrimitive() {}

// Curve is a quadratic Bézier curve joining two straight pieces at a
// corner.  Control is the original waypoint at the corner.
type Curve struct {
	Start, Control, End vec.Vec2
}

func (Curve) isPrimitive() {}

// At evaluates the curve at parameter t in [0, 1].
func (c Curve) At(t float64) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return c.Start.Mul(omt * omt).Add(c.Control.Mul(2 * omt * t)).Add(c.End.Mul(t * t))
}

// Outline is one pass of lines and corner curves around a loop.
type Outline struct {
	Style  Style
	Radius float64

	// Primitives alternates between Line and Curve values, starting with
	// the line for segment 0.
	Primitives []Primitive
}

// BuildOutline traces the loop with straights trimmed by radius and
// quadratic curves through the original corners.
//
// For every waypoint i, one Line and one Curve are emitted: the line is
// segment i trimmed at both ends, and the curve runs from the end of this
// line, with waypoint i+1 as control point, to the start of the trimmed
// segment i+1.  The result holds exactly 2*len(loop) primitives.
//
// Segments which are not horizontal or vertical are not trimmed.  This
// gives visibly wrong corners but no error; use Loop.Validate to reject
// such input first.
func BuildOutline(loop Loop, radius float64, style Style) (Outline, error) {
	if len(loop) == 0 {
		return Outline{}, ErrEmptyLoop
	}

	n := len(loop)
	prims := make([]Primitive, 0, 2*n)
	for i := range n {
		lineStart, lineEnd := Trim(loop.At(i), loop.At(i+1), radius)
		prims = append(prims, Line{Start: lineStart, End: lineEnd})

		arcEnd, _ := Trim(loop.At(i+1), loop.At(i+2), radius)
		prims = append(prims, Curve{
			Start:   lineEnd,
			Control: loop.At(i + 1),
			End:     arcEnd,
		})
	}

	return Outline{Style: style, Radius: radius, Primitives: prims}, nil
}

// Path converts the outline to a path.  Every primitive becomes a separate
// open subpath, so that strokes end with caps rather than joins, the same
// way the SVG output draws them.
func (o *Outline) Path() *path.Data {
	p := &path.Data{}
	for _, prim := range o.Primitives {
		switch prim := prim.(type) {
		case Line:
			p.MoveTo(prim.Start).LineTo(prim.End)
		case Curve:
			p.MoveTo(prim.Start).QuadTo(prim.Control, prim.End)
		}
	}
	return p
}

// Lines returns the straight pieces of the outline, in order.
func (o *Outline) Lines() []Line {
	var res []Line
	for _, prim := range o.Primitives {
		if l, ok := prim.(Line); ok {
			res = append(res, l)
		}
	}
	return res
}

// Curves returns the corner curves of the outline, in order.
func (o *Outline) Curves() []Curve {
	var res []Curve
	for _, prim := range o.Primitives {
		if c, ok := prim.(Curve); ok {
			res = append(res, c)
		}
	}
	return res
}
