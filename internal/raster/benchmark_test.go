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

package raster

import (
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// BenchmarkFillO fills an "O" shape: an outer circle and a reversed inner
// circle.
func BenchmarkFillO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			p := &path.Data{}
			addCircle(p, c, c, float64(size)*0.45, false)
			addCircle(p, c, c, float64(size)*0.30, true)

			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with golang.org/x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			v := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float32(size) / 2
			b.ReportAllocs()
			for b.Loop() {
				v.Reset(size, size)
				addCircleVector(v, c, c, float32(size)*0.45, false)
				addCircleVector(v, c, c, float32(size)*0.30, true)
				v.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeTrack strokes a dashed outline of straights and corner
// curves, as used for the centerline of a track drawing.
func BenchmarkStrokeTrack(b *testing.B) {
	const size = 500
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.Width = 0.5
	r.Cap = graphics.LineCapButt
	r.Dash = []float64{0.5, 2}

	p := &path.Data{}
	corners := []vec.Vec2{{X: 25, Y: 25}, {X: 475, Y: 25}, {X: 475, Y: 475}, {X: 25, Y: 475}}
	const radius = 10
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		after := corners[(i+2)%len(corners)]
		d := unit(next.Sub(c)).Mul(radius)
		e := unit(after.Sub(next)).Mul(radius)
		p.MoveTo(c.Add(d)).LineTo(next.Sub(d))
		p.MoveTo(next.Sub(d)).QuadTo(next, next.Add(e))
	}

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(p, func(int, int, []float32) {})
	}
}

// addCircle appends a circle made of four cubic curves.
func addCircle(p *path.Data, cx, cy, rad float64, clockwise bool) {
	const k = 0.5522847498
	kr := k * rad
	s := 1.0
	if clockwise {
		s = -1
	}
	p.MoveTo(vec.Vec2{X: cx, Y: cy - rad})
	p.CubeTo(vec.Vec2{X: cx + s*kr, Y: cy - rad}, vec.Vec2{X: cx + s*rad, Y: cy - kr}, vec.Vec2{X: cx + s*rad, Y: cy})
	p.CubeTo(vec.Vec2{X: cx + s*rad, Y: cy + kr}, vec.Vec2{X: cx + s*kr, Y: cy + rad}, vec.Vec2{X: cx, Y: cy + rad})
	p.CubeTo(vec.Vec2{X: cx - s*kr, Y: cy + rad}, vec.Vec2{X: cx - s*rad, Y: cy + kr}, vec.Vec2{X: cx - s*rad, Y: cy})
	p.CubeTo(vec.Vec2{X: cx - s*rad, Y: cy - kr}, vec.Vec2{X: cx - s*kr, Y: cy - rad}, vec.Vec2{X: cx, Y: cy - rad})
	p.Close()
}

func addCircleVector(v *vector.Rasterizer, cx, cy, rad float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * rad
	s := float32(1)
	if clockwise {
		s = -1
	}
	v.MoveTo(cx, cy-rad)
	v.CubeTo(cx+s*kr, cy-rad, cx+s*rad, cy-kr, cx+s*rad, cy)
	v.CubeTo(cx+s*rad, cy+kr, cx+s*kr, cy+rad, cx, cy+rad)
	v.CubeTo(cx-s*kr, cy+rad, cx-s*rad, cy+kr, cx-s*rad, cy)
	v.CubeTo(cx-s*rad, cy-kr, cx-s*kr, cy-rad, cx, cy-rad)
	v.ClosePath()
}
