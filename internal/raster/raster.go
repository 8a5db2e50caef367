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

// Package raster computes anti-aliased pixel coverage for filled and
// stroked paths.
//
// Coverage is reported one pixel row at a time through a callback, so that
// the caller decides how to composite it.  Device space has the y axis
// pointing down, and pixel (x, y) covers the square [x, x+1) × [y, y+1).
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of pixels xMin, xMin+1, ... in row y.
// Coverage values range from 0 to 1.  The slice is only valid during the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer converts paths to pixel coverage.
//
// A Rasterizer can be reused for many paths; internal buffers are kept
// between calls.  A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.
	// The coordinates are rounded towards zero.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash gives alternating on/off lengths in user space.
	// Nil or an all-zero pattern gives a solid line.
	Dash      []float64
	DashPhase float64

	edges  []edge
	active []*edge
	cover  []float32
	area   []float32

	lines []polyline
	polys [][]vec.Vec2
}

// Default values used by NewRasterizer.
const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0
)

// NewRasterizer returns a Rasterizer with an identity CTM, the given clip
// rectangle, and PDF default values for all stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// FillNonZero fills the path using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.lines = r.flatten(p, r.lines[:0])
	for _, pl := range r.lines {
		r.addPolygon(pl.pts)
	}
	r.scan(emit)
}

// addPolygon adds the edges of the closed polygon pts, given in user space.
func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := range n {
		r.addEdge(pts[i], pts[(i+1)%n])
	}
}

// edge is a non-horizontal line segment in device space.
//
// The segment runs from top (smaller y) to bottom.  Dir is +1 if the
// original segment pointed downwards and -1 otherwise.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	slope  float64 // dx/dy
	dir    float32
}

func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the largest device space length of a user space
// vector of length l.
func (r *Rasterizer) deviceLength(l float64) float64 {
	m := &r.CTM
	a := math.Hypot(m[0], m[1])
	b := math.Hypot(m[2], m[3])
	return l * max(a, b)
}

func (r *Rasterizer) addEdge(p, q vec.Vec2) {
	a := r.toDevice(p)
	b := r.toDevice(q)
	if a.Y == b.Y {
		return
	}
	var dir float32 = 1
	if a.Y > b.Y {
		a, b = b, a
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		slope: (b.X - a.X) / (b.Y - a.Y),
		dir:   dir,
	})
}

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.slope
}

// scan converts the collected edges to coverage values, using the nonzero
// winding rule.
func (r *Rasterizer) scan(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		xMin = min(xMin, e.x0, e.x1)
		xMax = max(xMax, e.x0, e.x1)
		yMin = min(yMin, e.y0)
		yMax = max(yMax, e.y1)
	}
	clipX0, clipX1 := int(r.Clip.LLx), int(r.Clip.URx)
	clipY0, clipY1 := int(r.Clip.LLy), int(r.Clip.URy)
	x0 := max(int(math.Floor(xMin)), clipX0)
	x1 := min(int(math.Floor(xMax))+1, clipX1)
	y0 := max(int(math.Floor(yMin)), clipY0)
	y1 := min(int(math.Floor(yMax))+1, clipY1)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	width := x1 - x0
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := y0; y < y1; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, &r.edges[next])
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(e *edge) bool {
			return e.y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, e := range r.active {
			r.accumulate(e, top, bot, x0, x1)
		}

		var acc float32
		for i := range r.cover {
			v := acc + r.area[i]
			acc += r.cover[i]
			if v < 0 {
				v = -v
			}
			r.cover[i] = min(v, 1)
		}

		lo, hi := 0, width
		for lo < hi && r.cover[lo] == 0 {
			lo++
		}
		for hi > lo && r.cover[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y, x0+lo, r.cover[lo:hi])
		}
	}
}

// accumulate adds the contribution of e within the row [top, bot) to the
// cover and area buffers.  Both buffers are indexed relative to x0.
//
// A piece of the edge with vertical extent h inside pixel column c adds
// h to cover[c], and h times the fraction of the pixel to the right of
// the piece to area[c].  Pieces left of x0 count as fully covering column
// x0.  Pieces right of x1 are dropped.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, x0, x1 int) {
	ya := max(top, e.y0)
	yb := min(bot, e.y1)
	if yb <= ya {
		return
	}

	xa, xb := e.xAt(ya), e.xAt(yb)
	if e.slope == 0 {
		xb = xa
	}
	colA := int(math.Floor(xa))
	colB := int(math.Floor(xb))

	add := func(col int, h, xMid float64) {
		if col >= x1 {
			return
		}
		c := e.dir * float32(h)
		if col < x0 {
			r.cover[0] += c
			r.area[0] += c
			return
		}
		i := col - x0
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(col)))
	}

	if colA == colB {
		add(colA, yb-ya, (xa+xb)/2)
		return
	}

	// split the piece at the vertical pixel boundaries
	step := 1
	if colB < colA {
		step = -1
	}
	yPrev, xPrev := ya, xa
	for col := colA; col != colB; col += step {
		bx := float64(col + 1)
		if step < 0 {
			bx = float64(col)
		}
		yCross := e.y0 + (bx-e.x0)/e.slope
		yCross = min(max(yCross, yPrev), yb)
		add(col, yCross-yPrev, (xPrev+bx)/2)
		yPrev, xPrev = yCross, bx
	}
	add(colB, yb-yPrev, (xPrev+xb)/2)
}
