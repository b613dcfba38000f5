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

import "seehuhn.de/go/geom/vec"

// morphCases exercise the mask operators on rasterised selections.
var morphCases = []TestCase{
	{
		Name:   "invert_oval",
		Shape:  Oval{CX: 32, CY: 32, RX: 20, RY: 12},
		Width:  64,
		Height: 64,
		Op:     Invert{},
	},
	{
		Name:   "expand_triangle",
		Shape:  Polygon{Points: []vec.Vec2{pt(16, 44), pt(32, 16), pt(48, 44)}},
		Width:  64,
		Height: 64,
		Op:     Expand{R: 6},
	},
	{
		Name:   "contract_rectangle",
		Shape:  Rect{X: 8, Y: 8, Width: 48, Height: 40},
		Width:  64,
		Height: 64,
		Op:     Contract{R: 5},
	},
	{
		Name:   "border_oval",
		Shape:  Oval{CX: 32, CY: 32, RX: 26, RY: 18},
		Width:  64,
		Height: 64,
		Op:     Border{R: 3},
	},
	{
		Name:   "border_canvas_edge",
		Shape:  Rect{X: 0, Y: 0, Width: 32, Height: 64},
		Width:  64,
		Height: 64,
		Op:     Border{R: 2},
	},
	{
		Name:   "feather_rectangle",
		Shape:  Rect{X: 16, Y: 16, Width: 32, Height: 32},
		Width:  64,
		Height: 64,
		Op:     Feather{R: 8},
	},
	{
		Name:   "feather_star",
		Shape:  Polygon{Points: fivePointStar(32, 32, 26)},
		Width:  64,
		Height: 64,
		Op:     Feather{R: 4.5},
	},
	{
		Name:   "smooth_scribble",
		Shape:  Polygon{Points: scribble(32, 32, 22, 60)},
		Width:  64,
		Height: 64,
		Op:     Smooth{R: 3},
	},
}
