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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Loop is a closed sequence of waypoints.  The last waypoint connects back
// to the first one.
//
// Loops are treated as read-only by all functions in this module.
type Loop []vec.Vec2

var (
	// ErrEmptyLoop is returned when an outline is requested for a loop
	// without waypoints.
	ErrEmptyLoop = errors.New("racetrack: empty waypoint loop")

	// ErrTooFewPoints is returned for loops with fewer than three waypoints,
	// which cannot describe a closed rectilinear track.
	ErrTooFewPoints = errors.New("racetrack: need at least 3 waypoints")

	// ErrNotRectilinear is matched by a SegmentError.
	ErrNotRectilinear = errors.New("racetrack: segment is not horizontal or vertical")
)

// MinPoints is the smallest number of waypoints a track can have.
const MinPoints = 3

// At returns the waypoint with index i modulo the length of the loop.
// Negative indices count backwards from the end.
// At panics if the loop is empty.
func (l Loop) At(i int) vec.Vec2 {
	n := len(l)
	if n == 0 {
		panic("racetrack: At called on empty loop")
	}
	i %= n
	if i < 0 {
		i += n
	}
	return l[i]
}

// Segment returns the endpoints of segment i, which runs from waypoint i to
// waypoint i+1 (wrapping around at the end).
func (l Loop) Segment(i int) (from, to vec.Vec2) {
	return l.At(i), l.At(i + 1)
}

// Clone returns a copy of the loop which shares no memory with l.
func (l Loop) Clone() Loop {
	if l == nil {
		return nil
	}
	res := make(Loop, len(l))
	copy(res, l)
	return res
}

// Validate checks that the loop is a usable rectilinear track.  It returns
// ErrTooFewPoints for short loops, and a *SegmentError for the first segment
// which is neither horizontal nor vertical.
func (l Loop) Validate() error {
	if len(l) < MinPoints {
		return ErrTooFewPoints
	}
	for i := range l {
		from, to := l.Segment(i)
		if Classify(from, to) == Unknown {
			return &SegmentError{Index: i, From: from, To: to}
		}
	}
	return nil
}

// SegmentError reports a segment of Unknown direction.
type SegmentError struct {
	Index    int // segment i runs from waypoint i to waypoint i+1
	From, To vec.Vec2
}

func (err *SegmentError) Error() string {
	return fmt.Sprintf("racetrack: segment %d from (%g, %g) to (%g, %g) is not horizontal or vertical",
		err.Index, err.From.X, err.From.Y, err.To.X, err.To.Y)
}

// Is allows errors.Is(err, ErrNotRectilinear) to match.
func (err *SegmentError) Is(target error) bool {
	return target == ErrNotRectilinear
}
