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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var outlineCases = []TestCase{
	{
		Name:   "rectangle_miter",
		Shape:  Rect{X: 12, Y: 12, Width: 40, Height: 40},
		Width:  64,
		Height: 64,
		Op:     Outline{Width: 6, Join: graphics.LineJoinMiter},
	},
	{
		Name:   "rectangle_round",
		Shape:  Rect{X: 12, Y: 12, Width: 40, Height: 40},
		Width:  64,
		Height: 64,
		Op:     Outline{Width: 6, Join: graphics.LineJoinRound},
	},
	{
		Name:   "triangle_bevel",
		Shape:  Polygon{Points: []vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}},
		Width:  64,
		Height: 64,
		Op:     Outline{Width: 4, Join: graphics.LineJoinBevel},
	},
	{
		Name:   "oval",
		Shape:  Oval{CX: 32, CY: 32, RX: 24, RY: 16},
		Width:  64,
		Height: 64,
		Op:     Outline{Width: 3, Join: graphics.LineJoinRound},
	},
	{
		Name:   "star_miter",
		Shape:  Polygon{Points: fivePointStar(32, 32, 24)},
		Width:  64,
		Height: 64,
		Op:     Outline{Width: 2, Join: graphics.LineJoinMiter},
	},
}
