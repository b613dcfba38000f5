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

// Wand holds the settings of a magic wand tool, which selects pixels by
// colour similarity.
type Wand struct {
	// Tolerance is the colour tolerance.  Use SetTolerance to keep the
	// value in range.
	Tolerance Tolerance

	// Contiguous restricts the selection to pixels connected to the
	// clicked pixel.  If false, matching pixels anywhere in the image
	// are selected.
	Contiguous bool
}

// NewWand returns a contiguous magic wand with the given tolerance.
func NewWand(tol int) *Wand {
	return &Wand{
		Tolerance:  ClampTolerance(tol),
		Contiguous: true,
	}
}

// SetTolerance changes the tolerance, clamping v to the range 0 to 255.
func (w *Wand) SetTolerance(v int) {
	w.Tolerance = ClampTolerance(v)
}

// Select returns the mask of pixels selected by clicking at (x, y).
func (w *Wand) Select(img *Buffer, x, y int) *Buffer {
	if w.Contiguous {
		return FloodFill(img, x, y, w.Tolerance)
	}
	return ColorRange(img, x, y, w.Tolerance)
}
