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
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/racetrack"
)

// GeoJSONOptions controls the GeoJSON writer.
type GeoJSONOptions struct {
	// Samples is the number of straight pieces used for each corner
	// curve.  Zero means 8.
	Samples int

	// Tolerance, if positive, simplifies the sampled lines with the
	// Douglas-Peucker algorithm.
	Tolerance float64
}

const defaultSamples = 8

// GeoJSON converts the drawing into a feature collection.
//
// Every outline becomes a MultiLineString feature with one line per
// primitive.  The properties follow the simplestyle conventions, so that
// map viewers pick up colour and width.  A final LineString feature,
// named "waypoints", holds the closed waypoint loop.
func GeoJSON(d *racetrack.Drawing, opt *GeoJSONOptions) *geojson.FeatureCollection {
	samples := defaultSamples
	var tol float64
	if opt != nil {
		if opt.Samples > 0 {
			samples = opt.Samples
		}
		tol = opt.Tolerance
	}

	fc := geojson.NewFeatureCollection()
	for i := range d.Outlines {
		o := &d.Outlines[i]
		mls := make(orb.MultiLineString, 0, len(o.Primitives))
		for _, prim := range o.Primitives {
			var ls orb.LineString
			switch prim := prim.(type) {
			case racetrack.Line:
				ls = orb.LineString{toOrb(prim.Start), toOrb(prim.End)}
			case racetrack.Curve:
				ls = make(orb.LineString, samples+1)
				for k := range ls {
					ls[k] = toOrb(prim.At(float64(k) / float64(samples)))
				}
				if tol > 0 {
					if s, ok := simplify.DouglasPeucker(tol).Simplify(ls.Clone()).(orb.LineString); ok && len(s) >= 2 {
						ls = s
					}
				}
			}
			mls = append(mls, ls)
		}

		f := geojson.NewFeature(mls)
		f.Properties["name"] = o.Style.Name
		f.Properties["stroke"] = o.Style.Color
		f.Properties["stroke-width"] = o.Style.Width
		if len(o.Style.Dash) > 0 {
			f.Properties["stroke-dasharray"] = o.Style.Dash
		}
		f.Properties["radius"] = o.Radius
		fc.Append(f)
	}

	if len(d.Loop) > 0 {
		ls := make(orb.LineString, 0, len(d.Loop)+1)
		for _, p := range d.Loop {
			ls = append(ls, toOrb(p))
		}
		ls = append(ls, toOrb(d.Loop[0]))
		f := geojson.NewFeature(ls)
		f.Properties["name"] = "waypoints"
		f.Properties["points"] = len(d.Loop)
		fc.Append(f)
	}

	return fc
}

// WriteGeoJSON writes the drawing as a GeoJSON feature collection.
func WriteGeoJSON(w io.Writer, d *racetrack.Drawing, opt *GeoJSONOptions) error {
	data, err := GeoJSON(d, opt).MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func toOrb(p vec.Vec2) orb.Point {
	return orb.Point{p.X, p.Y}
}
