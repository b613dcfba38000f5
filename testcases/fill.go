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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Shape:  Rect{X: 10, Y: 10, Width: 44, Height: 44},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle_fractional",
		Shape:  Rect{X: 10.4, Y: 9.6, Width: 20.3, Height: 30.2},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle_clipped",
		Shape:  Rect{X: -10, Y: 40, Width: 100, Height: 50},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "oval",
		Shape:  Oval{CX: 32, CY: 32, RX: 25, RY: 15},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "circle_antialias",
		Shape:  Oval{CX: 32, CY: 32, RX: 20, RY: 20},
		Width:  64,
		Height: 64,
		Op:     Fill{Antialias: true},
	},
	{
		Name:   "triangle",
		Shape:  Polygon{Points: []vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "star",
		Shape:  Polygon{Points: fivePointStar(32, 32, 25)},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "lasso_scribble",
		Shape:  Polygon{Points: scribble(32, 32, 24, 40)},
		Width:  64,
		Height: 64,
		Op:     Fill{Antialias: true},
	},
	{
		Name:   "star_scaled",
		Shape:  Polygon{Points: fivePointStar(0, 0, 10)},
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(2.5, 2.5).Translate(32, 32),
	},
	{
		Name:   "oval_rotated",
		Shape:  Oval{CX: 0, CY: 0, RX: 28, RY: 10},
		Width:  64,
		Height: 64,
		Op:     Fill{Antialias: true},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
}

// largeCases have bounding boxes above 65536 pixels, so that the
// rasteriser uses its active edge list.
var largeCases = []TestCase{
	{
		Name:   "rectangle",
		Shape:  Rect{X: 50, Y: 50, Width: 412, Height: 412},
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
	{
		Name:   "oval",
		Shape:  Oval{CX: 256, CY: 256, RX: 240, RY: 180},
		Width:  512,
		Height: 512,
		Op:     Fill{Antialias: true},
	},
	{
		Name:   "star",
		Shape:  Polygon{Points: fivePointStar(256, 256, 240)},
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
}

// fivePointStar returns the corners of a self-intersecting five-pointed
// star, in drawing order.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	corners := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	order := []int{0, 2, 4, 1, 3}
	pts := make([]vec.Vec2, len(order))
	for i, j := range order {
		pts[i] = corners[j]
	}
	return pts
}

// scribble returns n points of a wobbly closed free-hand curve around
// (cx, cy), as a lasso tool might record it.
func scribble(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		rr := r * (1 + 0.15*math.Sin(5*phi) + 0.05*math.Cos(13*phi))
		pts[i] = pt(cx+rr*math.Cos(phi), cy+rr*math.Sin(phi))
	}
	return pts
}
