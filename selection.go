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

// Package selection implements selection masks for raster images.
//
// Vector selections (rectangles, ovals, polygons and free-hand lassos) are
// converted into masks by Rasterise.  Masks can then be refined with the
// morphology operators Expand, Contract, Border, Feather and Smooth.
// FloodFill and ColorRange select pixels of a source image by colour.
package selection

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies the variant of a Selection.
type Kind int

const (
	KindRect Kind = iota
	KindOval
	KindLasso
	KindPolygon
	KindMask
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindOval:
		return "oval"
	case KindLasso:
		return "lasso"
	case KindPolygon:
		return "polygon"
	case KindMask:
		return "mask"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Selection describes a selected region of a canvas.  The concrete types
// are Rect, Oval, Polygon and MaskSelection.  Selection values are never
// modified by this package; operations which change a selection return a
// new mask instead.
type Selection interface {
	Kind() Kind
	isSelection()
}

// Rect is an axis-aligned rectangular selection.  Width and Height must be
// positive for the selection to be non-empty.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (Rect) Kind() Kind   { return KindRect }
func (Rect) isSelection() {}

// pixels returns the integer pixel box covered by the rectangle.
func (s Rect) pixels() image.Rectangle {
	if !(s.Width > 0 && s.Height > 0) {
		return image.Rectangle{}
	}
	r := image.Rectangle{
		Min: image.Point{X: int(math.Round(s.X)), Y: int(math.Round(s.Y))},
		Max: image.Point{X: int(math.Round(s.X + s.Width)), Y: int(math.Round(s.Y + s.Height))},
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// Oval is an elliptical selection with centre (CX, CY) and radii RX, RY.
type Oval struct {
	CX, CY float64
	RX, RY float64
}

func (Oval) Kind() Kind   { return KindOval }
func (Oval) isSelection() {}

// Polygon is a closed polygonal selection.  The last point is implicitly
// connected to the first one.  At least three points are required.
// Lasso marks free-hand selections; it does not change the geometry.
type Polygon struct {
	Points []vec.Vec2
	Lasso  bool
}

// NewPolygon returns a polygon selection which owns a copy of pts.
func NewPolygon(pts []vec.Vec2) Polygon {
	return Polygon{Points: slices.Clone(pts)}
}

// NewLasso returns a free-hand selection which owns a copy of pts.
func NewLasso(pts []vec.Vec2) Polygon {
	return Polygon{Points: slices.Clone(pts), Lasso: true}
}

func (p Polygon) Kind() Kind {
	if p.Lasso {
		return KindLasso
	}
	return KindPolygon
}

func (Polygon) isSelection() {}

// MaskSelection is a selection which has already been rasterised.
type MaskSelection struct {
	Mask *Buffer
}

func (MaskSelection) Kind() Kind   { return KindMask }
func (MaskSelection) isSelection() {}

// Bounds returns the smallest pixel rectangle containing the selection.
// The result is empty (Dx() <= 0 or Dy() <= 0) if nothing is selected,
// including for invalid geometry such as a polygon with fewer than three
// points.  For masks, every pixel with non-zero alpha is included.
func Bounds(sel Selection) image.Rectangle {
	switch s := sel.(type) {
	case nil:
		return image.Rectangle{}
	case Rect:
		return s.pixels()
	case Oval:
		if !(s.RX > 0 && s.RY > 0) {
			return image.Rectangle{}
		}
		return floatBounds(s.CX-s.RX, s.CY-s.RY, s.CX+s.RX, s.CY+s.RY)
	case Polygon:
		if len(s.Points) < 3 || collinear(s.Points) {
			return image.Rectangle{}
		}
		xMin, yMin := s.Points[0].X, s.Points[0].Y
		xMax, yMax := xMin, yMin
		for _, p := range s.Points[1:] {
			xMin = min(xMin, p.X)
			xMax = max(xMax, p.X)
			yMin = min(yMin, p.Y)
			yMax = max(yMax, p.Y)
		}
		return floatBounds(xMin, yMin, xMax, yMax)
	case MaskSelection:
		if s.Mask == nil {
			return image.Rectangle{}
		}
		return maskBounds(s.Mask)
	default:
		panic(fmt.Sprintf("selection: unknown selection type %T", sel))
	}
}

// ClampedBounds returns Bounds(sel) restricted to a width×height canvas.
func ClampedBounds(sel Selection, width, height int) image.Rectangle {
	return Bounds(sel).Intersect(image.Rect(0, 0, width, height))
}

// HasSelection reports whether sel selects anything at all.
func HasSelection(sel Selection) bool {
	return !Bounds(sel).Empty()
}

// floatBounds rounds a bounding box outwards to whole pixels.  Boxes
// without area are reported as empty.
func floatBounds(xMin, yMin, xMax, yMax float64) image.Rectangle {
	if !(xMax > xMin && yMax > yMin) {
		return image.Rectangle{}
	}
	r := image.Rectangle{
		Min: image.Point{X: int(math.Floor(xMin)), Y: int(math.Floor(yMin))},
		Max: image.Point{X: int(math.Ceil(xMax)), Y: int(math.Ceil(yMax))},
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// collinear reports whether all points lie on one straight line, so that
// the polygon encloses no area.
func collinear(pts []vec.Vec2) bool {
	p0 := pts[0]
	var dir vec.Vec2
	for _, p := range pts[1:] {
		v := p.Sub(p0)
		if dir == (vec.Vec2{}) {
			dir = v
			continue
		}
		cross := dir.X*v.Y - dir.Y*v.X
		if math.Abs(cross) > collinearityTolerance*dir.Length()*v.Length() {
			return false
		}
	}
	return true
}

// collinearityTolerance is the largest sine of the angle between two
// directions which are still considered parallel.
const collinearityTolerance = 1e-12

// maskBounds scans m for pixels with non-zero alpha.
func maskBounds(m *Buffer) image.Rectangle {
	m.check()
	xMin, yMin := m.Width, m.Height
	xMax, yMax := -1, -1
	for y := range m.Height {
		row := m.Pix[y*m.Width*4 : (y+1)*m.Width*4]
		for x := range m.Width {
			if row[4*x+3] == 0 {
				continue
			}
			xMin = min(xMin, x)
			xMax = max(xMax, x)
			yMin = min(yMin, y)
			yMax = max(yMax, y)
		}
	}
	if xMax < 0 {
		return image.Rectangle{}
	}
	return image.Rect(xMin, yMin, xMax+1, yMax+1)
}

// Path returns the outline of a vector selection.  The result is nil for
// mask selections and for selections without area.
func Path(sel Selection) *path.Data {
	switch s := sel.(type) {
	case nil:
		return nil
	case Rect:
		r := s.pixels()
		if r.Empty() {
			return nil
		}
		x0, y0 := float64(r.Min.X), float64(r.Min.Y)
		x1, y1 := float64(r.Max.X), float64(r.Max.Y)
		return (&path.Data{}).
			MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	case Oval:
		if !(s.RX > 0 && s.RY > 0) {
			return nil
		}
		return ellipse(s.CX, s.CY, s.RX, s.RY)
	case Polygon:
		if len(s.Points) < 3 {
			return nil
		}
		p := (&path.Data{}).MoveTo(s.Points[0])
		for _, pt := range s.Points[1:] {
			p = p.LineTo(pt)
		}
		return p.Close()
	case MaskSelection:
		return nil
	default:
		panic(fmt.Sprintf("selection: unknown selection type %T", sel))
	}
}

// ellipse approximates an axis-aligned ellipse by four cubic Bézier arcs.
// The maximal radial error is about 0.027% of the radius.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := bezierCircle * rx
	ky := bezierCircle * ry
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// bezierCircle is the control point distance, relative to the radius, for
// approximating a quarter circle by a cubic Bézier curve.
const bezierCircle = 0.5522847498307936
