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

package export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/racetrack"
)

// WritePDF writes the drawing as a single-page PDF file.  One drawing unit
// maps to one PDF point.
func WritePDF(filename string, d *racetrack.Drawing, canvas Canvas) error {
	canvas = canvas.Resolve(d)

	paper := &pdf.Rectangle{URx: canvas.Width, URy: canvas.Height}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, canvas.Width, canvas.Height)
	page.Fill()

	// PDF has the origin in the bottom left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, canvas.Height})

	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	for i := range d.Outlines {
		o := &d.Outlines[i]
		col, err := o.Style.RGBA()
		if err != nil {
			page.Close()
			return fmt.Errorf("outline %q: %w", o.Style.Name, err)
		}
		if col.A == 0 {
			continue
		}

		page.PushGraphicsState()
		page.SetStrokeColor(color.DeviceRGB{
			float64(col.R) / 255,
			float64(col.G) / 255,
			float64(col.B) / 255,
		})
		page.SetLineWidth(o.Style.Width)
		if len(o.Style.Dash) > 0 {
			page.SetLineDash(o.Style.Dash, o.Style.DashPhase)
		}

		for cmd, pts := range o.Path().Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
		page.PopGraphicsState()
	}

	return page.Close()
}
