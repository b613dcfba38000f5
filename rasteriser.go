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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule determines which points are inside a path.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (float64, float64) {
	if e.y0 < e.y1 {
		return e.y0, e.y1
	}
	return e.y1, e.y0
}

// Rasteriser converts closed paths into per-pixel coverage.  One instance
// can be reused for many paths; its scratch buffers grow as needed and are
// kept between calls.
//
// A Rasteriser is not safe for concurrent use.  Independent goroutines
// should each use their own instance.
type Rasteriser struct {
	// CTM maps path coordinates to pixel coordinates.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this rectangle in pixel coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve and
	// the polygon used to approximate it.  Must be positive.
	Flatness float64

	// Rule selects the fill rule used by FillMask.
	Rule FillRule

	// Antialias makes FillMask store graded coverage.  If false, pixels
	// which are at least half covered are set to 255 and all others are
	// left untouched.
	Antialias bool

	// smallPathThreshold is the largest bounding box area, in pixels, for
	// which full 2D accumulation buffers are used.  Larger paths are
	// processed one scanline at a time using an active edge list.
	smallPathThreshold int

	cover       []float32 // signed vertical edge extent per pixel; reused as output
	area        []float32 // signed area right of the edge within each pixel
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	haveBBox       bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with an
// identity transformation and the nonzero winding rule.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset restores the default settings for a new clip rectangle while
// keeping the allocated scratch space.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Rule = NonZero
	r.Antialias = false
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
}

// FillMask fills the path p into the mask dst.  Existing pixels of dst are
// only ever increased, so that several paths can be combined into one mask.
func (r *Rasteriser) FillMask(p *path.Data, dst *Buffer) {
	dst.check()
	r.Fill(p, r.Rule, func(y, xMin int, coverage []float32) {
		if y < 0 || y >= dst.Height {
			return
		}
		for i, c := range coverage {
			x := xMin + i
			if x < 0 || x >= dst.Width {
				continue
			}
			var a uint8
			if r.Antialias {
				a = uint8(max(0, min(255, int(c*255+0.5))))
			} else if c >= 0.5 {
				a = 255
			}
			if a > dst.Alpha(x, y) {
				dst.SetAlpha(x, y, a)
			}
		}
	})
}

// Fill computes the coverage of the path p using the given fill rule.  All
// subpaths are treated as closed.  The emit callback is called once for
// every scanline with non-zero coverage; the slice passed to emit is only
// valid during the call.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	if p == nil {
		return
	}
	r.edges = r.edges[:0]
	r.haveBBox = false

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	xMin, xMax, yMin, yMax, ok := r.clippedBBox()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// clippedBBox returns the integer bounding box of all edges, restricted
// to the clip rectangle.
func (r *Rasteriser) clippedBBox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// apply maps a point from path coordinates to pixel coordinates.
func (r *Rasteriser) apply(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// applyLinear maps a vector, ignoring the translation part of the CTM.
func (r *Rasteriser) applyLinear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// addEdge appends the segment from a to b, given in path coordinates.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p0 := r.apply(a)
	p1 := r.apply(b)

	dy := p1.Y - p0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if !r.haveBBox {
		r.bbXMin, r.bbXMax = p0.X, p0.X
		r.bbYMin, r.bbYMax = p0.Y, p0.Y
		r.haveBBox = true
	}
	r.bbXMin = min(r.bbXMin, p0.X, p1.X)
	r.bbXMax = max(r.bbXMax, p0.X, p1.X)
	r.bbYMin = min(r.bbYMin, p0.Y, p1.Y)
	r.bbYMax = max(r.bbYMax, p0.Y, p1.Y)
}

// flattenQuadratic replaces a quadratic Bézier curve by line segments and
// passes these to emit.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// deviation from the chord is bounded by |P0 - 2P1 + P2| / 4
	dev := r.applyLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces a cubic Bézier curve by line segments.  The number
// of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.applyLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.applyLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Each edge crossing a pixel deposits two numbers:
//
//	cover: the signed vertical extent of the crossing (+ downwards)
//	area:  cover times the horizontal fraction of the pixel to the
//	       right of the crossing
//
// Scanning a row from left to right, the signed area covered inside pixel
// i is the running sum of cover over pixels left of i plus area[i].  The
// fill rule then maps this winding value to a coverage in [0, 1].

// accumulate adds the contribution of e to scanline y.  The buffers are
// indexed by x - xMin; contributions left of xMin are collected in the
// first pixel.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	lo, hi := e.yRange()
	yTop := max(float64(y), lo)
	yBot := min(float64(y+1), hi)
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixLeft >= xMax {
		return
	}
	if pixRight < xMin || pixLeft == pixRight {
		r.deposit(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		r.deposit(e, segTop, segBot, sign, pix, cover, area, xMin, xMax)
	}
}

// deposit records the part of e between yTop and yBot, which lies in pixel
// column pix.
func (r *Rasteriser) deposit(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		cover[pix-xMin] += c
		area[pix-xMin] += c * float32(1-frac)
	}
}

// integrate turns the accumulated cover and area values of one scanline
// into coverage values, in place.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		if rule == EvenOdd {
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		cover[i] = w
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillSmall accumulates all edges into buffers covering the whole
// bounding box, then integrates row by row.
func (r *Rasteriser) fillSmall(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin
	n := width * height
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		lo, hi := e.yRange()
		first := max(int(math.Floor(lo)), yMin)
		last := min(int(math.Floor(hi))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		line := r.cover[off : off+width]
		integrate(line, r.area[off:off+width], rule)
		if trimmed, skip := trimZeros(line); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// fillLarge processes one scanline at a time, keeping a list of the edges
// which intersect the current scanline.
func (r *Rasteriser) fillLarge(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		aLo, _ := a.yRange()
		bLo, _ := b.yRange()
		return cmp.Compare(aLo, bLo)
	})
	r.activeIdx = r.activeIdx[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) {
			if lo, _ := r.edges[next].yRange(); lo >= bottom {
				break
			}
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if _, hi := e.yRange(); hi <= top {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, skip := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+skip, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve approximation tolerance in
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not contribute to coverage and are dropped.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default bounding box area below which
	// fillSmall is used.
	smallPathThreshold = 65536
)
