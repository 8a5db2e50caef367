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

	"seehuhn.de/go/geom/vec"
)

// isDashed reports whether the pattern has a positive total length.
func isDashed(pattern []float64) bool {
	for _, x := range pattern {
		if x > 0 {
			return true
		}
	}
	return false
}

// dashPolyline splits pl into the "on" pieces of the dash pattern and
// appends them to res.
//
// Even entries of the pattern are "on", odd entries are "off".  A pattern
// of odd length is used twice, so that the roles swap in the second half.
// The phase gives the distance into the pattern at the start of pl.
// Zero-length dashes become single point polylines, with dir set to the
// local direction of the path.
func dashPolyline(pl polyline, pattern []float64, phase float64, res []polyline) []polyline {
	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
	}
	total := 0.0
	for _, x := range pattern {
		total += x
	}
	if !(total > 0) || len(pl.pts) < 2 {
		return append(res, pl)
	}

	phase = math.Mod(phase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	rem := pattern[0]
	for phase > 0 {
		if phase < rem {
			rem -= phase
			break
		}
		phase -= rem
		idx = (idx + 1) % len(pattern)
		rem = pattern[idx]
	}
	on := idx%2 == 0
	startsOn := on

	pts := pl.pts
	nSeg := len(pts) - 1
	if pl.closed {
		nSeg++
	}

	first := len(res)
	toggled := false
	var t vec.Vec2
	var cur []vec.Vec2
	if on {
		cur = []vec.Vec2{pts[0]}
	}
	for i := range nSeg {
		a, b := pts[i], pts[(i+1)%len(pts)]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		t = d.Mul(1 / l)

		pos := 0.0
		for rem < l-pos {
			pos += rem
			q := a.Add(t.Mul(pos))
			if on {
				cur = appendPoint(cur, q)
				res = append(res, polyline{pts: cur, dir: t})
				cur = nil
			} else {
				cur = []vec.Vec2{q}
			}
			toggled = true
			idx = (idx + 1) % len(pattern)
			rem = pattern[idx]
			on = !on
		}
		rem -= l - pos
		if on {
			cur = appendPoint(cur, b)
		}
	}

	if !toggled {
		// the whole path lies within a single dash
		if on {
			return append(res, pl)
		}
		return res
	}
	if !on || len(cur) == 0 {
		return res
	}
	if pl.closed && startsOn && len(res) > first {
		// the last dash runs through the start point into the first dash
		merged := append(cur, res[first].pts[1:]...)
		res[first] = polyline{pts: merged, dir: res[first].dir}
		return res
	}
	return append(res, polyline{pts: cur, dir: t})
}
