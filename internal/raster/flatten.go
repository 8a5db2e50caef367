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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polyline is a flattened subpath in user space.
type polyline struct {
	pts    []vec.Vec2
	closed bool

	// dir is the tangent used for caps when the polyline is a single
	// point.  It is zero if the point has no orientation.
	dir vec.Vec2
}

// flatten converts all subpaths of p to polylines and appends them to res.
// Curves are replaced by line segments which stay within Flatness device
// pixels of the curve.  Subpaths consisting of a MoveTo alone are dropped.
func (r *Rasterizer) flatten(p *path.Data, res []polyline) []polyline {
	var cur []vec.Vec2
	closed := false
	drawn := false
	finish := func() {
		if drawn {
			res = append(res, polyline{pts: cur, closed: closed})
		}
		cur, closed, drawn = nil, false, false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			cur = []vec.Vec2{p.Coords[k]}
			k++
		case path.CmdLineTo:
			cur = appendPoint(cur, p.Coords[k])
			drawn = true
			k++
		case path.CmdQuadTo:
			cur = r.appendQuad(cur, p.Coords[k], p.Coords[k+1])
			drawn = true
			k += 2
		case path.CmdCubeTo:
			cur = r.appendCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			drawn = true
			k += 3
		case path.CmdClose:
			if len(cur) > 0 {
				start := cur[0]
				if len(cur) > 1 && cur[len(cur)-1] == start {
					cur = cur[:len(cur)-1]
				}
				closed = true
				drawn = true
				finish()
				// a new subpath starts at the start of the closed one
				cur = []vec.Vec2{start}
			}
		}
	}
	finish()
	return res
}

// appendPoint adds q to the polyline unless it repeats the last point.
func appendPoint(pts []vec.Vec2, q vec.Vec2) []vec.Vec2 {
	if len(pts) > 0 && pts[len(pts)-1] == q {
		return pts
	}
	return append(pts, q)
}

func (r *Rasterizer) appendQuad(pts []vec.Vec2, p1, p2 vec.Vec2) []vec.Vec2 {
	if len(pts) == 0 {
		return appendPoint(pts, p2)
	}
	p0 := pts[len(pts)-1]

	// the distance between the curve and its chord is at most |P0-2P1+P2|/4
	dd := p0.Sub(p1.Mul(2)).Add(p2)
	dev := r.deviceLength(dd.Length()) / 4
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		pts = appendPoint(pts, q)
	}
	return appendPoint(pts, p2)
}

func (r *Rasterizer) appendCubic(pts []vec.Vec2, p1, p2, p3 vec.Vec2) []vec.Vec2 {
	if len(pts) == 0 {
		return appendPoint(pts, p3)
	}
	p0 := pts[len(pts)-1]

	// Wang's formula
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := r.deviceLength(max(d1.Length(), d2.Length()))
	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(0.75*m/r.Flatness))))
	}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		pts = appendPoint(pts, q)
	}
	return appendPoint(pts, p3)
}
