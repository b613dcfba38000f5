// seehuhn.de/go/selection - selection masks for raster images
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

package selection

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Outline returns a mask covering a band of the given line width, centred
// on the boundary of the selection ("stroke selection").  For vector
// selections, join determines the shape of the band at corners; miter
// joins longer than 10 half-widths are replaced by bevels.  Mask selections
// are outlined by the pixels within lineWidth/2 of the mask boundary, and
// join is ignored.
//
// The result is empty if lineWidth is not positive or if sel has no area.
func Outline(sel Selection, width, height int, lineWidth float64, join graphics.LineJoinStyle) *Buffer {
	if s, isMask := sel.(MaskSelection); isMask && s.Mask != nil {
		m := Rasterise(s, width, height)
		if !(lineWidth > 0) {
			return NewMask(width, height)
		}
		d := lineWidth / 2
		return Subtract(Expand(m, d), Contract(m, d))
	}

	out := NewMask(width, height)
	p := Path(sel)
	if p == nil || !(lineWidth > 0) {
		return out
	}

	r := NewRasteriser(canvasClip(width, height))
	o := &outliner{
		d:          lineWidth / 2,
		join:       join,
		miterLimit: defaultMiterLimit,
		flatness:   r.Flatness,
		out:        &path.Data{},
	}
	for _, ring := range o.rings(r, p) {
		o.strokeRing(ring)
	}
	r.FillMask(o.out, out)
	return out
}

// outliner builds the stroke band of closed polylines as a set of
// polygons.  All polygons are given the same orientation, so that filling
// them with the nonzero rule yields their union.
type outliner struct {
	d          float64 // half the line width
	join       graphics.LineJoinStyle
	miterLimit float64
	flatness   float64
	out        *path.Data
}

// rings flattens every subpath of p into a closed polyline.
func (o *outliner) rings(r *Rasteriser, p *path.Data) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var ring []vec.Vec2
	add := func(_, b vec.Vec2) {
		if b.Sub(ring[len(ring)-1]).Length() > zeroLengthThreshold {
			ring = append(ring, b)
		}
	}
	finish := func() {
		if len(ring) > 1 && ring[0].Sub(ring[len(ring)-1]).Length() <= zeroLengthThreshold {
			ring = ring[:len(ring)-1]
		}
		if len(ring) >= 2 {
			res = append(res, ring)
		}
		ring = nil
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			ring = []vec.Vec2{p.Coords[k]}
			k++
		case path.CmdLineTo:
			add(vec.Vec2{}, p.Coords[k])
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(ring[len(ring)-1], p.Coords[k], p.Coords[k+1], add)
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(ring[len(ring)-1], p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
			k += 3
		case path.CmdClose:
			finish()
		}
	}
	finish()
	return res
}

// strokeRing adds the band around one closed polyline.
func (o *outliner) strokeRing(ring []vec.Vec2) {
	n := len(ring)
	for i := range n {
		a := ring[i]
		b := ring[(i+1)%n]
		c := ring[(i+2)%n]

		t1 := unit(b.Sub(a))
		nrm := vec.Vec2{X: -t1.Y, Y: t1.X}
		o.polygon(
			a.Add(nrm.Mul(o.d)),
			b.Add(nrm.Mul(o.d)),
			b.Sub(nrm.Mul(o.d)),
			a.Sub(nrm.Mul(o.d)),
		)

		if c != b {
			o.addJoin(b, t1, unit(c.Sub(b)))
		}
	}
}

// addJoin adds the join geometry on the outer side of the corner at p,
// where the direction changes from t1 to t2.
func (o *outliner) addJoin(p, t1, t2 vec.Vec2) {
	sinTheta := t1.X*t2.Y - t1.Y*t2.X
	cosTheta := t1.Dot(t2)
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	// The outer side is the +N side for turns with sinTheta < 0.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)
	p1 := p.Add(n1.Mul(o.d))
	p2 := p.Add(n2.Mul(o.d))

	switch o.join {
	case graphics.LineJoinRound:
		o.disc(p)
		return
	case graphics.LineJoinMiter:
		// The miter length, relative to the line width, is 1/cos(θ/2)
		// for an angle θ between the two tangents.
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		bisector := n1.Add(n2)
		if cosHalf > 0 && 1/cosHalf <= o.miterLimit+1e-10 && bisector.Length() > zeroLengthThreshold {
			tip := p.Add(unit(bisector).Mul(o.d / cosHalf))
			o.polygon(p, p1, tip, p2)
			return
		}
	}
	o.polygon(p, p1, p2)
}

// disc adds a polygonal approximation of the circle of radius d around c.
func (o *outliner) disc(c vec.Vec2) {
	step := math.Pi / 4
	if o.d > o.flatness {
		step = 2 * math.Acos(1-o.flatness/o.d)
	}
	n := max(int(math.Ceil(2*math.Pi/step)), 8)
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: c.X + o.d*math.Cos(phi), Y: c.Y + o.d*math.Sin(phi)}
	}
	o.polygon(pts...)
}

// polygon appends a closed polygon to the output, reversing it if needed
// to give it positive signed area.  Degenerate polygons are dropped.
func (o *outliner) polygon(pts ...vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if math.Abs(area) < zeroLengthThreshold {
		return
	}
	if area < 0 {
		pts = slices.Clone(pts)
		slices.Reverse(pts)
	}
	o.out = o.out.MoveTo(pts[0])
	for _, p := range pts[1:] {
		o.out = o.out.LineTo(p)
	}
	o.out = o.out.Close()
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		panic(fmt.Sprintf("selection: zero-length direction %v", v))
	}
	return v.Mul(1 / l)
}

const (
	// defaultMiterLimit matches the PDF/PostScript default; miter joins at
	// angles below about 11.5 degrees become bevels.
	defaultMiterLimit = 10.0

	// zeroLengthThreshold is the length below which two outline points
	// are considered equal.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold detects corners which need no join.
	collinearityThreshold = 1e-6
)
