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

// Command export writes the sample tracks to JSON, together with reference
// SVG and PNG drawings of every track.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/racetrack"
	"seehuhn.de/go/racetrack/export"
	"seehuhn.de/go/racetrack/testcases"
	"seehuhn.de/go/racetrack/waypoints"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	renderer, err := racetrack.NewRenderer(racetrack.DefaultConfig())
	if err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			out.TestCases = append(out.TestCases, toJSON(name, tc))

			loop := waypoints.Normalize(tc.Loop, waypoints.DefaultPadding)
			d, err := renderer.Render(loop)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writeReferences(name, d); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writeReferences(name string, d *racetrack.Drawing) error {
	svg, err := export.MarshalSVG(d, export.Canvas{})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(refDir, name+".svg"), svg, 0644); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(refDir, name+".png"))
	if err != nil {
		return err
	}
	err = export.WritePNG(f, d, export.Canvas{}, &export.PNGOptions{Scale: 2})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

type jsonTestCase struct {
	Name        string       `json:"name"`
	Rectilinear bool         `json:"rectilinear"`
	Points      [][2]float64 `json:"points"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:        name,
		Rectilinear: tc.Rectilinear,
		Points:      make([][2]float64, len(tc.Loop)),
	}
	for i, p := range tc.Loop {
		jtc.Points[i] = [2]float64{p.X, p.Y}
	}
	return jtc
}
