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

package waypoints

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/racetrack"
)

// DefaultPadding is the distance between the smallest coordinates of a
// normalized loop and the origin.
const DefaultPadding = 25

// Normalize maps waypoints given in a y-up coordinate system into y-down
// drawing coordinates.  The y axis is flipped, and the loop is then
// translated so that its smallest x and y coordinates both equal padding.
func Normalize(loop racetrack.Loop, padding float64) racetrack.Loop {
	if len(loop) == 0 {
		return nil
	}
	b := Bounds(loop)
	// after the flip, the smallest y coordinate is -b.URy
	m := matrix.Matrix{1, 0, 0, -1, padding - b.LLx, padding + b.URy}
	return Transform(loop, m)
}

// Transform applies the affine map m to every waypoint.
func Transform(loop racetrack.Loop, m matrix.Matrix) racetrack.Loop {
	if loop == nil {
		return nil
	}
	res := make(racetrack.Loop, len(loop))
	for i, p := range loop {
		res[i] = vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
	return res
}

// InvertY negates all y coordinates.
func InvertY(loop racetrack.Loop) racetrack.Loop {
	return Transform(loop, matrix.Matrix{1, 0, 0, -1, 0, 0})
}

// Translate shifts all waypoints by d.
func Translate(loop racetrack.Loop, d vec.Vec2) racetrack.Loop {
	return Transform(loop, matrix.Matrix{1, 0, 0, 1, d.X, d.Y})
}

// Min returns the smallest x and the smallest y coordinate of the loop.
// The two values may come from different waypoints.
func Min(loop racetrack.Loop) vec.Vec2 {
	b := Bounds(loop)
	return vec.Vec2{X: b.LLx, Y: b.LLy}
}

// Bounds returns the smallest rectangle containing all waypoints.
// The zero rectangle is returned for an empty loop.
func Bounds(loop racetrack.Loop) rect.Rect {
	if len(loop) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: loop[0].X, LLy: loop[0].Y, URx: loop[0].X, URy: loop[0].Y}
	for _, p := range loop[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}
