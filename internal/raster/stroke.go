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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of the path, using the stroke parameters
// Width, Cap, Join, MiterLimit, Dash and DashPhase.
//
// The stroke is assembled from convex pieces: one quadrilateral per
// flattened segment, plus polygons for the joins and caps.  All pieces
// have the same orientation and are filled together with the nonzero
// rule, so that overlapping pieces are painted only once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.lines = r.flatten(p, r.lines[:0])
	if isDashed(r.Dash) {
		var dashed []polyline
		for _, pl := range r.lines {
			dashed = dashPolyline(pl, r.Dash, r.DashPhase, dashed)
		}
		r.lines = dashed
	}

	r.polys = r.polys[:0]
	for _, pl := range r.lines {
		r.strokePolyline(pl)
	}
	for _, poly := range r.polys {
		if signedArea(poly) < 0 {
			slices.Reverse(poly)
		}
		r.addPolygon(poly)
	}
	r.scan(emit)
}

// strokePolyline appends the stroke pieces for one polyline to r.polys.
func (r *Rasterizer) strokePolyline(pl polyline) {
	hw := r.Width / 2
	pts := pl.pts

	if len(pts) == 1 {
		r.dot(pts[0], pl.dir, hw)
		return
	}

	n := len(pts) - 1
	if pl.closed {
		n++
	}
	tangent := func(i int) vec.Vec2 {
		a, b := pts[i%len(pts)], pts[(i+1)%len(pts)]
		return unit(b.Sub(a))
	}

	for i := range n {
		a, b := pts[i%len(pts)], pts[(i+1)%len(pts)]
		t := unit(b.Sub(a))
		nv := normal(t).Mul(hw)
		r.polys = append(r.polys, []vec.Vec2{a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv)})

		if i+1 < n || pl.closed {
			r.join(b, t, tangent(i+1), hw)
		}
	}

	if !pl.closed {
		r.cap(pts[0], tangent(0).Mul(-1), hw)
		r.cap(pts[len(pts)-1], tangent(n-1), hw)
	}
}

// join appends the join piece at p, where the path turns from direction t1
// to direction t2.  The piece fills the wedge on the outer side of the
// turn.
func (r *Rasterizer) join(p, t1, t2 vec.Vec2, hw float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)

	if math.Abs(cross) < collinearEps {
		if dot > 0 {
			return
		}
		// the path reverses direction
		if r.Join == graphics.LineJoinRound {
			r.polys = append(r.polys, r.arc(p, hw, normal(t1), 2*math.Pi, nil))
		}
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side)
	n2 := normal(t2).Mul(side)
	a := p.Add(n1.Mul(hw))
	b := p.Add(n2.Mul(hw))

	switch r.Join {
	case graphics.LineJoinRound:
		sweep := math.Atan2(cross, dot)
		poly := []vec.Vec2{p}
		r.polys = append(r.polys, r.arc(p, hw, n1, sweep, poly))

	case graphics.LineJoinMiter:
		// cos of half the turning angle; the miter is hw/cosHalf away from p
		cosHalf := math.Sqrt((1 + dot) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			m := p.Add(unit(n1.Add(n2)).Mul(hw / cosHalf))
			r.polys = append(r.polys, []vec.Vec2{p, a, m, b})
			return
		}
		r.polys = append(r.polys, []vec.Vec2{p, a, b})

	default:
		r.polys = append(r.polys, []vec.Vec2{p, a, b})
	}
}

// cap appends the cap piece at the end point p.  The vector t is the unit
// tangent pointing away from the stroke.
func (r *Rasterizer) cap(p, t vec.Vec2, hw float64) {
	n := normal(t).Mul(hw)
	switch r.Cap {
	case graphics.LineCapSquare:
		e := t.Mul(hw)
		r.polys = append(r.polys, []vec.Vec2{p.Add(n), p.Add(n).Add(e), p.Sub(n).Add(e), p.Sub(n)})
	case graphics.LineCapRound:
		// rotating the normal by -π passes through t
		r.polys = append(r.polys, r.arc(p, hw, normal(t), -math.Pi, nil))
	}
}

// dot appends the stroke of a zero-length subpath.  Round caps give a
// disc.  Square caps give a square aligned with dir, if dir is known.
func (r *Rasterizer) dot(p, dir vec.Vec2, hw float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		circle := r.arc(p, hw, vec.Vec2{X: 1}, 2*math.Pi, nil)
		r.polys = append(r.polys, circle[:len(circle)-1])
	case graphics.LineCapSquare:
		if dir == (vec.Vec2{}) {
			return
		}
		t := dir.Mul(hw)
		n := normal(dir).Mul(hw)
		r.polys = append(r.polys, []vec.Vec2{
			p.Add(t).Add(n), p.Add(t).Sub(n), p.Sub(t).Sub(n), p.Sub(t).Add(n),
		})
	}
}

// arc appends points on the circle around c with the given radius to res.
// The arc starts in direction dir from c and turns by sweep radians,
// counter-clockwise for positive sweep.  Both end points are included.
func (r *Rasterizer) arc(c vec.Vec2, radius float64, dir vec.Vec2, sweep float64, res []vec.Vec2) []vec.Vec2 {
	devR := r.deviceLength(radius)
	n := 1
	if devR > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devR)
		n = int(math.Ceil(math.Abs(sweep) / step))
	}
	n = max(n, int(math.Ceil(math.Abs(sweep)/(math.Pi/2))))
	for i := 0; i <= n; i++ {
		phi := sweep * float64(i) / float64(n)
		s, co := math.Sincos(phi)
		d := vec.Vec2{X: dir.X*co - dir.Y*s, Y: dir.X*s + dir.Y*co}
		res = append(res, c.Add(d.Mul(radius)))
	}
	return res
}

// signedArea returns twice the signed area of the polygon.
func signedArea(poly []vec.Vec2) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// normal returns v rotated by 90 degrees counter-clockwise.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

const collinearEps = 1e-9
