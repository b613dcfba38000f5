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
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/selection/testcases"
)

// maskFromRows builds a binary mask from a picture, where '#' marks
// selected pixels.
func maskFromRows(rows ...string) *Buffer {
	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				m.SetAlpha(x, y, 255)
			}
		}
	}
	return m
}

// maskRows is the inverse of maskFromRows, for use in error messages.
func maskRows(m *Buffer) string {
	var b strings.Builder
	for y := range m.Height {
		for x := range m.Width {
			if m.Selected(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// boxMask returns a w×h mask where the given rectangle is selected.
func boxMask(w, h, x0, y0, x1, y1 int) *Buffer {
	m := NewMask(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.SetAlpha(x, y, 255)
		}
	}
	return m
}

// isBinary reports whether every alpha value of m is 0 or 255.
func isBinary(m *Buffer) bool {
	for i := 3; i < len(m.Pix); i += 4 {
		if a := m.Pix[i]; a != 0 && a != 255 {
			return false
		}
	}
	return true
}

// isSubset reports whether every pixel selected in a is also selected in b.
func isSubset(a, b *Buffer) bool {
	for y := range a.Height {
		for x := range a.Width {
			if a.Selected(x, y) && !b.Selected(x, y) {
				return false
			}
		}
	}
	return true
}

func toSelection(s testcases.Shape) Selection {
	switch s := s.(type) {
	case testcases.Rect:
		return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	case testcases.Oval:
		return Oval{CX: s.CX, CY: s.CY, RX: s.RX, RY: s.RY}
	case testcases.Polygon:
		return NewPolygon(s.Points)
	default:
		panic(fmt.Sprintf("unexpected shape %T", s))
	}
}

// renderCase runs a test case.  The threshold parameter controls which of
// the two fill approaches the rasteriser uses.
func renderCase(tc testcases.TestCase, threshold int) *Buffer {
	sel := toSelection(tc.Shape)
	w, h := tc.Width, tc.Height

	switch op := tc.Op.(type) {
	case testcases.Fill:
		m := NewMask(w, h)
		r := NewRasteriser(canvasClip(w, h))
		r.smallPathThreshold = threshold
		r.Antialias = op.Antialias
		if tc.CTM != (matrix.Matrix{}) {
			r.CTM = tc.CTM
		}
		r.FillMask(Path(sel), m)
		return m
	case testcases.Outline:
		return Outline(sel, w, h, op.Width, op.Join)
	}

	base := Rasterise(sel, w, h)
	switch op := tc.Op.(type) {
	case testcases.Invert:
		return Invert(base)
	case testcases.Expand:
		return Expand(base, op.R)
	case testcases.Contract:
		return Contract(base, op.R)
	case testcases.Border:
		return Border(base, op.R)
	case testcases.Feather:
		return Feather(base, op.R)
	case testcases.Smooth:
		return Smooth(base, op.R)
	default:
		panic(fmt.Sprintf("unexpected operation %T", op))
	}
}
