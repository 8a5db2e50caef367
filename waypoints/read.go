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

// Package waypoints reads track waypoints from text files and maps them
// into drawing coordinates.
package waypoints

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/racetrack"
)

// ErrNoPoints is returned when the input contains no valid waypoint.
var ErrNoPoints = errors.New("waypoints: no valid points found")

// Read reads waypoints from r, one point per line.
//
// The coordinates on a line are separated by a comma, optionally followed
// by spaces, or by white space alone.  Lines starting with '#' are
// comments.  Lines which cannot be parsed (for example a header row) are
// skipped with a warning.
func Read(r io.Reader) (racetrack.Loop, error) {
	log := racetrack.Logger()
	var loop racetrack.Loop

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			log.Warn("skipping malformed line",
				slog.Int("line", lineNo), slog.String("error", err.Error()))
			continue
		}
		loop = append(loop, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("waypoints: %w", err)
	}

	if len(loop) == 0 {
		return nil, ErrNoPoints
	}
	log.Debug("waypoints read", slog.Int("points", len(loop)))
	return loop, nil
}

// parseLine decodes a single input line as a CSV record.  A quoted field
// never extends past the end of the line.
func parseLine(line string) (vec.Vec2, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	record, err := cr.Read()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return vec.Vec2{}, perr.Err
		}
		return vec.Vec2{}, err
	}
	return parseFields(record)
}

// ReadFile reads waypoints from the named file.
// See Read for the file format.
func ReadFile(name string) (racetrack.Loop, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	loop, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return loop, nil
}

// ParsePoint parses a single point, written either as "x,y" or as "x y".
func ParsePoint(s string) (vec.Vec2, error) {
	s = strings.TrimSpace(s)
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		fields = strings.Fields(s)
	}
	return parseFields(fields)
}

// parseFields converts a record to a point.  A record with a single field
// is split at white space.
func parseFields(fields []string) (vec.Vec2, error) {
	if len(fields) == 1 {
		fields = strings.Fields(fields[0])
	}
	if len(fields) != 2 {
		return vec.Vec2{}, fmt.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := parseCoord(fields[0])
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := parseCoord(fields[1])
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func parseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return x, nil
}
