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
	"errors"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var square = Loop{pt(0, 0), pt(100, 0), pt(100, 100), pt(0, 100)}

func TestLoopAt(t *testing.T) {
	l := Loop{pt(0, 0), pt(1, 0), pt(1, 1)}
	cases := []struct {
		i    int
		want vec.Vec2
	}{
		{0, pt(0, 0)},
		{2, pt(1, 1)},
		{3, pt(0, 0)},
		{4, pt(1, 0)},
		{7, pt(1, 0)},
		{-1, pt(1, 1)},
		{-3, pt(0, 0)},
		{-4, pt(1, 1)},
	}
	for _, c := range cases {
		if got := l.At(c.i); got != c.want {
			t.Errorf("At(%d) = %v, want %v", c.i, got, c.want)
		}
	}
}

func TestLoopAtEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At on empty loop did not panic")
		}
	}()
	Loop{}.At(0)
}

func TestLoopValidate(t *testing.T) {
	if err := square.Validate(); err != nil {
		t.Errorf("square: unexpected error %v", err)
	}

	short := Loop{pt(0, 0), pt(10, 0)}
	if err := short.Validate(); err != ErrTooFewPoints {
		t.Errorf("two points: got %v, want %v", err, ErrTooFewPoints)
	}

	// the closing segment from (10, 10) back to (0, 0) is diagonal
	diag := Loop{pt(0, 0), pt(10, 0), pt(10, 10)}
	err := diag.Validate()
	var segErr *SegmentError
	if !errors.As(err, &segErr) {
		t.Fatalf("diagonal: got %v, want *SegmentError", err)
	}
	if segErr.Index != 2 || segErr.From != pt(10, 10) || segErr.To != pt(0, 0) {
		t.Errorf("diagonal: wrong segment reported: %+v", segErr)
	}
	if !errors.Is(err, ErrNotRectilinear) {
		t.Errorf("diagonal: error %v does not match ErrNotRectilinear", err)
	}
}

func TestLoopClone(t *testing.T) {
	c := square.Clone()
	c[0] = pt(-1, -1)
	if square[0] != pt(0, 0) {
		t.Error("Clone shares memory with the original")
	}
	if Loop(nil).Clone() != nil {
		t.Error("Clone of nil loop is not nil")
	}
}

// TestSquareOutline checks the outline of a 100x100 square with corner
// radius 10.
func TestSquareOutline(t *testing.T) {
	o, err := BuildOutline(square, 10, InnerStyle)
	if err != nil {
		t.Fatal(err)
	}

	wantLines := []Line{
		{pt(10, 0), pt(90, 0)},
		{pt(100, 10), pt(100, 90)},
		{pt(90, 100), pt(10, 100)},
		{pt(0, 90), pt(0, 10)},
	}
	wantCurves := []Curve{
		{pt(90, 0), pt(100, 0), pt(100, 10)},
		{pt(100, 90), pt(100, 100), pt(90, 100)},
		{pt(10, 100), pt(0, 100), pt(0, 90)},
		{pt(0, 10), pt(0, 0), pt(10, 0)},
	}

	if len(o.Primitives) != 8 {
		t.Fatalf("got %d primitives, want 8", len(o.Primitives))
	}
	for i, prim := range o.Primitives {
		switch i % 2 {
		case 0:
			if prim != Primitive(wantLines[i/2]) {
				t.Errorf("primitive %d: got %v, want %v", i, prim, wantLines[i/2])
			}
		case 1:
			if prim != Primitive(wantCurves[i/2]) {
				t.Errorf("primitive %d: got %v, want %v", i, prim, wantCurves[i/2])
			}
		}
	}

	for i, l := range o.Lines() {
		if length := l.End.Sub(l.Start).Length(); length != 80 {
			t.Errorf("line %d: length %g, want 80", i, length)
		}
	}
	for i, c := range o.Curves() {
		if c.Control != square[(i+1)%4] {
			t.Errorf("curve %d: control %v, want %v", i, c.Control, square[(i+1)%4])
		}
	}

	if o.Radius != 10 || o.Style.Name != InnerStyle.Name {
		t.Errorf("outline metadata not passed through: %g %q", o.Radius, o.Style.Name)
	}
}

// TestOutlineConnected checks that every curve starts where the previous
// line ends and ends where the next line starts.
func TestOutlineConnected(t *testing.T) {
	loops := []Loop{
		square,
		{pt(0, 0), pt(60, 0), pt(60, 20), pt(30, 20), pt(30, 50), pt(0, 50)},
		{pt(10, 10), pt(10, 90), pt(90, 90), pt(90, 10)},
	}
	for _, loop := range loops {
		for _, r := range []float64{0, 3, 10} {
			o, err := BuildOutline(loop, r, OuterStyle)
			if err != nil {
				t.Fatal(err)
			}
			n := len(o.Primitives)
			for i := 1; i < n; i += 2 {
				c := o.Primitives[i].(Curve)
				prev := o.Primitives[i-1].(Line)
				next := o.Primitives[(i+1)%n].(Line)
				if c.Start != prev.End {
					t.Errorf("r=%g curve %d: starts at %v, line ends at %v", r, i/2, c.Start, prev.End)
				}
				if c.End != next.Start {
					t.Errorf("r=%g curve %d: ends at %v, next line starts at %v", r, i/2, c.End, next.Start)
				}
			}
		}
	}
}

func TestOutlineCounts(t *testing.T) {
	for n := 3; n <= 12; n++ {
		// staircase-free rectilinear loops do not exist for odd n, but
		// the counts do not depend on the geometry
		loop := make(Loop, n)
		for i := range loop {
			loop[i] = pt(float64(i), float64(i%2))
		}
		o, err := BuildOutline(loop, 1, OuterStyle)
		if err != nil {
			t.Fatal(err)
		}
		if got := len(o.Lines()); got != n {
			t.Errorf("n=%d: %d lines", n, got)
		}
		if got := len(o.Curves()); got != n {
			t.Errorf("n=%d: %d curves", n, got)
		}
	}
}

// TestThreePointWrap checks the index wrap-around for the shortest
// accepted loop.
func TestThreePointWrap(t *testing.T) {
	loop := Loop{pt(0, 0), pt(50, 0), pt(50, 50)}
	o, err := BuildOutline(loop, 5, OuterStyle)
	if err != nil {
		t.Fatal(err)
	}
	curves := o.Curves()

	// the curve after the last segment bends around waypoint 0 and ends
	// on segment 0
	last := curves[2]
	if last.Control != loop[0] {
		t.Errorf("last curve control %v, want %v", last.Control, loop[0])
	}
	if last.End != pt(5, 0) {
		t.Errorf("last curve ends at %v, want (5, 0)", last.End)
	}

	// the curve after segment 1 ends on the diagonal closing segment,
	// which is not trimmed
	if curves[1].End != pt(50, 50) {
		t.Errorf("curve 1 ends at %v, want (50, 50)", curves[1].End)
	}
}

func TestBuildOutlineEmpty(t *testing.T) {
	_, err := BuildOutline(nil, 10, OuterStyle)
	if err != ErrEmptyLoop {
		t.Errorf("got %v, want %v", err, ErrEmptyLoop)
	}
}

func TestCurveAt(t *testing.T) {
	c := Curve{pt(90, 0), pt(100, 0), pt(100, 10)}
	if got := c.At(0); got != c.Start {
		t.Errorf("At(0) = %v", got)
	}
	if got := c.At(1); got != c.End {
		t.Errorf("At(1) = %v", got)
	}
	// B(1/2) = P0/4 + P1/2 + P2/4
	if got := c.At(0.5); got != pt(97.5, 2.5) {
		t.Errorf("At(0.5) = %v, want (97.5, 2.5)", got)
	}
}

func TestOutlinePath(t *testing.T) {
	o, err := BuildOutline(square, 10, OuterStyle)
	if err != nil {
		t.Fatal(err)
	}
	p := o.Path()

	var moves, lines, quads int
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdLineTo:
			lines++
		case path.CmdQuadTo:
			quads++
		default:
			t.Errorf("unexpected path command %v", cmd)
		}
	}
	if moves != 8 || lines != 4 || quads != 4 {
		t.Errorf("got %d moves, %d lines, %d quads, want 8, 4, 4", moves, lines, quads)
	}
	// 8 move points + 4 line points + 4*2 quad points
	if len(p.Coords) != 20 {
		t.Errorf("got %d coordinates, want 20", len(p.Coords))
	}
}
