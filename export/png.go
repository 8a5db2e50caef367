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
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/racetrack"
	"seehuhn.de/go/racetrack/internal/raster"
)

// PNGOptions controls the native PNG writer.
type PNGOptions struct {
	// Scale is the number of pixels per drawing unit.  Zero means 1.
	Scale float64

	// Background fills the image before the outlines are drawn.
	// Nil means white.
	Background color.Color

	// Title, if non-empty, is printed in the top left corner.
	Title string
}

// svgMiterLimit is the initial value of the SVG stroke-miterlimit property.
const svgMiterLimit = 4

// titleSize is the font size of the title, in drawing units.
const titleSize = 12

// RenderImage rasterizes the drawing into a new RGBA image.
func RenderImage(d *racetrack.Drawing, canvas Canvas, opt *PNGOptions) (*image.RGBA, error) {
	if opt == nil {
		opt = &PNGOptions{}
	}
	scale := opt.Scale
	if scale == 0 {
		scale = 1
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("invalid scale %g", scale)
	}

	canvas = canvas.Resolve(d)
	w := int(math.Ceil(canvas.Width * scale))
	h := int(math.Ceil(canvas.Height * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	var bg color.Color = color.White
	if opt.Background != nil {
		bg = opt.Background
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Scale(scale, scale)
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = svgMiterLimit

	for i := range d.Outlines {
		o := &d.Outlines[i]
		col, err := o.Style.RGBA()
		if err != nil {
			return nil, fmt.Errorf("outline %q: %w", o.Style.Name, err)
		}
		if col.A == 0 {
			continue
		}
		r.Width = o.Style.Width
		r.Dash = o.Style.Dash
		r.DashPhase = o.Style.DashPhase
		r.Stroke(o.Path(), func(y, xMin int, coverage []float32) {
			blendRow(img, y, xMin, coverage, col)
		})
	}

	if opt.Title != "" {
		if err := drawTitle(img, opt.Title, scale); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// WritePNG rasterizes the drawing and writes it as a PNG image.
func WritePNG(w io.Writer, d *racetrack.Drawing, canvas Canvas, opt *PNGOptions) error {
	img, err := RenderImage(d, canvas, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// blendRow composites a row of coverage values in colour col over img,
// using the Porter-Duff source-over operator.
func blendRow(img *image.RGBA, y, xMin int, coverage []float32, col color.RGBA) {
	row := img.Pix[y*img.Stride+4*xMin:]
	srcA := float32(col.A) / 255
	for i, c := range coverage {
		a := c * srcA
		if a <= 0 {
			continue
		}
		px := row[4*i : 4*i+4 : 4*i+4]
		px[0] = over(col.R, px[0], a)
		px[1] = over(col.G, px[1], a)
		px[2] = over(col.B, px[2], a)
		px[3] = over(255, px[3], a)
	}
}

func over(src, dst uint8, a float32) uint8 {
	v := float32(src)*a + float32(dst)*(1-a)
	return uint8(min(v+0.5, 255))
}

func drawTitle(img *image.RGBA, title string, scale float64) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    titleSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	margin := fixed.Int26_6(4 * scale * 64)
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.Point26_6{X: margin, Y: margin + face.Metrics().Ascent},
	}
	drawer.DrawString(title)
	return nil
}
