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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single selection test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shape  Shape         // the selection geometry
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // what to do with the rasterised selection
	CTM    matrix.Matrix // transformation for Fill (zero-value means identity)
}

// Shape is the geometry of a vector selection.
type Shape interface {
	isShape()
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

func (Rect) isShape() {}

// Oval is an axis-aligned ellipse.
type Oval struct {
	CX, CY, RX, RY float64
}

func (Oval) isShape() {}

// Polygon is a closed polygon.
type Polygon struct {
	Points []vec.Vec2
}

func (Polygon) isShape() {}

// Operation is applied to the selection after rasterisation.
type Operation interface {
	isOperation()
}

// Fill rasterises the selection without further processing.
type Fill struct {
	Antialias bool // keep graded coverage along the edges
}

// Outline strokes the selection boundary.
type Outline struct {
	Width float64                // line width (>0)
	Join  graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
}

// Invert inverts the selection.
type Invert struct{}

// Expand grows the selection by R pixels.
type Expand struct{ R float64 }

// Contract shrinks the selection by R pixels.
type Contract struct{ R float64 }

// Border selects the inner ring of width R.
type Border struct{ R float64 }

// Feather softens the selection edge over R pixels on either side.
type Feather struct{ R float64 }

// Smooth removes boundary noise with a blur of radius R.
type Smooth struct{ R int }

func (Fill) isOperation()     {}
func (Outline) isOperation()  {}
func (Invert) isOperation()   {}
func (Expand) isOperation()   {}
func (Contract) isOperation() {}
func (Border) isOperation()   {}
func (Feather) isOperation()  {}
func (Smooth) isOperation()   {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
