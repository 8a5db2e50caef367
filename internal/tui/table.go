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

package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"seehuhn.de/go/racetrack"
)

// PointTable formats the waypoints of a loop as a table, one row per
// waypoint.  The last column gives the direction of the segment which
// starts at the waypoint.
func PointTable(loop racetrack.Loop) string {
	rows := make([][]string, len(loop))
	for i, p := range loop {
		from, to := loop.Segment(i)
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			racetrack.Classify(from, to).String(),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderCol)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			s := cellStyle
			if col > 0 && col < 3 {
				s = s.Align(lipgloss.Right)
			}
			if col == 3 && row < len(rows) && rows[row][3] == racetrack.Unknown.String() {
				s = s.Inherit(errorStyle)
			}
			return s
		}).
		Headers("#", "x", "y", "segment").
		Rows(rows...)
	return t.Render()
}
