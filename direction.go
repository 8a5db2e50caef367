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

import "seehuhn.de/go/geom/vec"

// Direction is the axis-aligned direction of a segment between two waypoints.
// Directions refer to a y-down coordinate system: Down means increasing y.
type Direction uint8

// These are the possible directions.
const (
	Unknown Direction = iota // diagonal or zero-length
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Classify returns the direction of the segment from p1 to p2.
//
// Coordinates are compared exactly.  A segment which changes both
// coordinates, or neither, is classified as Unknown.  Callers which read
// waypoints from text should make sure that coordinates along a straight
// are bit-for-bit identical.
func Classify(p1, p2 vec.Vec2) Direction {
	switch {
	case p1.X < p2.X && p1.Y == p2.Y:
		return Right
	case p1.X > p2.X && p1.Y == p2.Y:
		return Left
	case p1.X == p2.X && p1.Y < p2.Y:
		return Down
	case p1.X == p2.X && p1.Y > p2.Y:
		return Up
	default:
		return Unknown
	}
}

// step returns the vector of the given length pointing in direction d.
// Unknown gives the zero vector.
func (d Direction) step(length float64) vec.Vec2 {
	switch d {
	case Up:
		return vec.Vec2{X: 0, Y: -length}
	case Down:
		return vec.Vec2{X: 0, Y: length}
	case Left:
		return vec.Vec2{X: -length, Y: 0}
	case Right:
		return vec.Vec2{X: length, Y: 0}
	default:
		return vec.Vec2{}
	}
}

// Trim shortens the segment from p1 to p2 by distance at both ends.
//
// Points are moved along the segment's own axis, not sideways.  The
// returned segment therefore starts distance units after p1 and ends
// distance units before p2, which is exactly where a corner arc of radius
// distance has to begin or end.  For segments of Unknown direction the
// original endpoints are returned unchanged.
func Trim(p1, p2 vec.Vec2, distance float64) (start, end vec.Vec2) {
	s := Classify(p1, p2).step(distance)
	return p1.Add(s), p2.Sub(s)
}
