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

	"seehuhn.de/go/geom/rect"
)

// Rasterise converts a selection into a binary mask for a canvas of the
// given size.  Parts of the selection outside the canvas are discarded.
//
// Rectangles are snapped to whole pixels.  Ovals and polygons use the
// nonzero winding rule, and a pixel is selected when at least half of its
// area is covered.  Selections without area give an empty mask.
//
// For a MaskSelection a copy of the mask is returned; the mask must have
// the requested size.  The result is always a new buffer owned by the
// caller.
func Rasterise(sel Selection, width, height int) *Buffer {
	if s, isMask := sel.(MaskSelection); isMask && s.Mask != nil {
		s.Mask.check()
		if s.Mask.Width != width || s.Mask.Height != height {
			panic(fmt.Sprintf("selection: %dx%d mask used on %dx%d canvas",
				s.Mask.Width, s.Mask.Height, width, height))
		}
		return s.Mask.Clone()
	}

	m := NewMask(width, height)
	switch s := sel.(type) {
	case nil, MaskSelection:
		// nothing selected
	case Rect:
		box := s.pixels().Intersect(m.Bounds())
		for y := box.Min.Y; y < box.Max.Y; y++ {
			row := m.Pix[m.PixOffset(box.Min.X, y):m.PixOffset(box.Max.X, y)]
			for i := range row {
				row[i] = 255
			}
		}
	case Oval, Polygon:
		r := NewRasteriser(canvasClip(width, height))
		r.FillMask(Path(s), m)
	default:
		panic(fmt.Sprintf("selection: unknown selection type %T", sel))
	}
	return m
}

func canvasClip(width, height int) rect.Rect {
	return rect.Rect{URx: float64(width), URy: float64(height)}
}
