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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		p1, p2 vec.Vec2
		want   Direction
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0}, Right},
		{vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 0, Y: 0}, Left},
		{vec.Vec2{X: 5, Y: 0}, vec.Vec2{X: 5, Y: 7}, Down},
		{vec.Vec2{X: 5, Y: 7}, vec.Vec2{X: 5, Y: 0}, Up},
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, Unknown},
		{vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}, Unknown},
		{vec.Vec2{X: -1, Y: -2}, vec.Vec2{X: -3, Y: -2}, Left},
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 1e-300}, Down},
	}
	for _, c := range cases {
		got := Classify(c.p1, c.p2)
		if got != c.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", c.p1, c.p2, got, c.want)
		}
	}

	// coordinates are compared exactly
	a, b := 0.1, 0.2
	p1 := vec.Vec2{X: 0, Y: a + b}
	p2 := vec.Vec2{X: 10, Y: 0.3}
	if got := Classify(p1, p2); got != Unknown {
		t.Errorf("Classify(%v, %v) = %v, want %v", p1, p2, got, Unknown)
	}
}

// TestClassifyGrid checks all pairs of points on a small integer grid.
func TestClassifyGrid(t *testing.T) {
	const n = 4
	for x1 := range n {
		for y1 := range n {
			for x2 := range n {
				for y2 := range n {
					p1 := vec.Vec2{X: float64(x1), Y: float64(y1)}
					p2 := vec.Vec2{X: float64(x2), Y: float64(y2)}
					got := Classify(p1, p2)

					var want Direction
					switch {
					case y1 == y2 && x1 < x2:
						want = Right
					case y1 == y2 && x1 > x2:
						want = Left
					case x1 == x2 && y1 < y2:
						want = Down
					case x1 == x2 && y1 > y2:
						want = Up
					}
					if got != want {
						t.Errorf("Classify(%v, %v) = %v, want %v", p1, p2, got, want)
					}
				}
			}
		}
	}
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{
		Unknown: "unknown",
		Up:      "up",
		Down:    "down",
		Left:    "left",
		Right:   "right",
		99:      "unknown",
	}
	for d, want := range names {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", d, got, want)
		}
	}
}

func TestTrim(t *testing.T) {
	cases := []struct {
		p1, p2     vec.Vec2
		d          float64
		start, end vec.Vec2
	}{
		{ // right
			vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0}, 10,
			vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 90, Y: 0},
		},
		{ // left
			vec.Vec2{X: 100, Y: 5}, vec.Vec2{X: 0, Y: 5}, 10,
			vec.Vec2{X: 90, Y: 5}, vec.Vec2{X: 10, Y: 5},
		},
		{ // down
			vec.Vec2{X: 3, Y: 0}, vec.Vec2{X: 3, Y: 50}, 5,
			vec.Vec2{X: 3, Y: 5}, vec.Vec2{X: 3, Y: 45},
		},
		{ // up
			vec.Vec2{X: 3, Y: 50}, vec.Vec2{X: 3, Y: 0}, 5,
			vec.Vec2{X: 3, Y: 45}, vec.Vec2{X: 3, Y: 5},
		},
		{ // diagonal: no trim
			vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}, 5,
			vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10},
		},
		{ // coincident: no trim
			vec.Vec2{X: 7, Y: 7}, vec.Vec2{X: 7, Y: 7}, 5,
			vec.Vec2{X: 7, Y: 7}, vec.Vec2{X: 7, Y: 7},
		},
		{ // zero distance
			vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: -8}, 0,
			vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: -8},
		},
	}
	for i, c := range cases {
		start, end := Trim(c.p1, c.p2, c.d)
		if start != c.start || end != c.end {
			t.Errorf("%d: Trim(%v, %v, %g) = (%v, %v), want (%v, %v)",
				i, c.p1, c.p2, c.d, start, end, c.start, c.end)
		}
	}
}

// TestTrimProperties checks that trimmed endpoints move along the segment
// axis by exactly the trim distance.
func TestTrimProperties(t *testing.T) {
	segments := [][2]vec.Vec2{
		{{X: 0, Y: 0}, {X: 40, Y: 0}},
		{{X: 40, Y: 0}, {X: 40, Y: 30}},
		{{X: 40, Y: 30}, {X: -10, Y: 30}},
		{{X: -10, Y: 30}, {X: -10, Y: 0}},
	}
	for _, seg := range segments {
		p1, p2 := seg[0], seg[1]
		dir := Classify(p1, p2)
		for _, d := range []float64{0, 0.5, 1, 7, 15} {
			start, end := Trim(p1, p2, d)

			ds := start.Sub(p1)
			de := p2.Sub(end)
			if ds != de {
				t.Errorf("%v %g: start moved by %v, end by %v", dir, d, ds, de)
			}
			if got := math.Abs(ds.X) + math.Abs(ds.Y); got != d {
				t.Errorf("%v %g: endpoints moved by %g", dir, d, got)
			}
			if ds.X != 0 && ds.Y != 0 {
				t.Errorf("%v %g: offset %v is not axis aligned", dir, d, ds)
			}
			if d > 0 && Classify(p1, start) != dir {
				t.Errorf("%v %g: start moved in direction %v", dir, d, Classify(p1, start))
			}
		}
	}
}
