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
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/racetrack"
)

// WriteSVG writes the drawing as a standalone SVG 1.1 document.
//
// Every line becomes a <line> element and every corner curve a <path>
// element with a relative quadratic segment, in painting order.
func WriteSVG(w io.Writer, d *racetrack.Drawing, canvas Canvas) error {
	canvas = canvas.Resolve(d)

	bw := bufio.NewWriter(w)
	bw.WriteString("<?xml version=\"1.0\" standalone=\"no\"?>\n")
	bw.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\"\n")
	bw.WriteString("  \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	bw.WriteString("<svg width=\"" + fmtNum(canvas.Width) + "\" height=\"" + fmtNum(canvas.Height) + "\" version=\"1.1\"\n")
	bw.WriteString("     xmlns=\"http://www.w3.org/2000/svg\">\n")

	var buf []byte
	for i := range d.Outlines {
		o := &d.Outlines[i]
		style := styleAttrs(o.Style)
		for _, prim := range o.Primitives {
			buf = buf[:0]
			switch prim := prim.(type) {
			case racetrack.Line:
				buf = append(buf, `<line x1="`...)
				buf = appendNum(buf, prim.Start.X)
				buf = append(buf, `" y1="`...)
				buf = appendNum(buf, prim.Start.Y)
				buf = append(buf, `" x2="`...)
				buf = appendNum(buf, prim.End.X)
				buf = append(buf, `" y2="`...)
				buf = appendNum(buf, prim.End.Y)
				buf = append(buf, `" `...)
			case racetrack.Curve:
				c := prim.Control.Sub(prim.Start)
				e := prim.End.Sub(prim.Start)
				buf = append(buf, `<path d="M `...)
				buf = appendNum(buf, prim.Start.X)
				buf = append(buf, ' ')
				buf = appendNum(buf, prim.Start.Y)
				buf = append(buf, " q "...)
				buf = appendNum(buf, c.X)
				buf = append(buf, ' ')
				buf = appendNum(buf, c.Y)
				buf = append(buf, ' ')
				buf = appendNum(buf, e.X)
				buf = append(buf, ' ')
				buf = appendNum(buf, e.Y)
				buf = append(buf, `" fill="none" `...)
			}
			buf = append(buf, style...)
			buf = append(buf, " />\n"...)
			bw.Write(buf)
		}
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// MarshalSVG returns the SVG document for the drawing.
func MarshalSVG(d *racetrack.Drawing, canvas Canvas) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := WriteSVG(buf, d, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// styleAttrs returns the presentation attributes for a style, for example
//
//	stroke="red" stroke-dasharray="0.5,2" stroke-width="0.5"
func styleAttrs(s racetrack.Style) string {
	var b strings.Builder
	b.WriteString(`stroke="`)
	b.WriteString(escapeAttr(s.Color))
	b.WriteString(`"`)
	if len(s.Dash) > 0 {
		b.WriteString(` stroke-dasharray="`)
		for i, x := range s.Dash {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmtNum(x))
		}
		b.WriteString(`"`)
		if s.DashPhase != 0 {
			b.WriteString(` stroke-dashoffset="`)
			b.WriteString(fmtNum(s.DashPhase))
			b.WriteString(`"`)
		}
	}
	b.WriteString(` stroke-width="`)
	b.WriteString(fmtNum(s.Width))
	b.WriteString(`"`)
	return b.String()
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func fmtNum(x float64) string {
	return string(appendNum(nil, x))
}

// appendNum formats x with the smallest number of digits which represent it
// exactly.  Negative zero is written as "0".
func appendNum(buf []byte, x float64) []byte {
	if x == 0 {
		return append(buf, '0')
	}
	return strconv.AppendFloat(buf, x, 'f', -1, 64)
}
