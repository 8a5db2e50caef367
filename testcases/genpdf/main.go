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

// Command genpdf writes every sample track as a PDF file and renders it to
// PNG using Ghostscript.  The resulting images serve as an independent
// reference for the PNG output of the export package.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
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

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+"_gs.png")

			loop := waypoints.Normalize(tc.Loop, waypoints.DefaultPadding)
			d, err := renderer.Render(loop)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := export.WritePDF(pdfPath, d, export.Canvas{}); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -r144 matches the scale of the reference images written by
	// testcases/export.
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
