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

package testcases

import "seehuhn.de/go/racetrack"

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"track":      trackCases,
	"degenerate": degenerateCases,
}

var trackCases = []TestCase{
	{
		Name:        "square",
		Loop:        racetrack.Loop{pt(0, 0), pt(100, 0), pt(100, 100), pt(0, 100)},
		Rectilinear: true,
	},
	{
		Name:        "rectangle",
		Loop:        racetrack.Loop{pt(0, 0), pt(300, 0), pt(300, 120), pt(0, 120)},
		Rectilinear: true,
	},
	{
		Name:        "counter_clockwise",
		Loop:        racetrack.Loop{pt(0, 0), pt(0, 150), pt(200, 150), pt(200, 0)},
		Rectilinear: true,
	},
	{
		Name: "l_shape",
		Loop: racetrack.Loop{
			pt(0, 0), pt(300, 0), pt(300, 100),
			pt(120, 100), pt(120, 300), pt(0, 300),
		},
		Rectilinear: true,
	},
	{
		Name: "u_shape",
		Loop: racetrack.Loop{
			pt(0, 0), pt(400, 0), pt(400, 300), pt(300, 300),
			pt(300, 100), pt(100, 100), pt(100, 300), pt(0, 300),
		},
		Rectilinear: true,
	},
	{
		// two straights joined by a narrow chicane
		Name: "hairpin",
		Loop: racetrack.Loop{
			pt(50, 50), pt(400, 50), pt(400, 200), pt(250, 200),
			pt(250, 250), pt(400, 250), pt(400, 400), pt(50, 400),
		},
		Rectilinear: true,
	},
}

var degenerateCases = []TestCase{
	{
		// the closing segment is diagonal
		Name:        "three_points",
		Loop:        racetrack.Loop{pt(0, 0), pt(100, 0), pt(100, 100)},
		Rectilinear: false,
	},
	{
		Name:        "diagonal",
		Loop:        racetrack.Loop{pt(0, 0), pt(100, 0), pt(150, 80), pt(0, 80)},
		Rectilinear: false,
	},
	{
		// a repeated waypoint gives a zero-length segment
		Name:        "repeated_point",
		Loop:        racetrack.Loop{pt(0, 0), pt(100, 0), pt(100, 0), pt(100, 100), pt(0, 100)},
		Rectilinear: false,
	},
	{
		// segments shorter than twice the corner radius
		Name:        "short_segments",
		Loop:        racetrack.Loop{pt(0, 0), pt(15, 0), pt(15, 15), pt(0, 15)},
		Rectilinear: true,
	},
}
