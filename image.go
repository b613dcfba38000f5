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
	"image"

	"golang.org/x/image/draw"
)

// NRGBA returns an *image.NRGBA which shares its pixel data with b.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromImage copies an arbitrary image into a new buffer.  The top-left
// corner of src.Bounds() maps to pixel (0, 0) of the result.
func FromImage(src image.Image) *Buffer {
	r := src.Bounds()
	dst := NewBuffer(r.Dx(), r.Dy())
	draw.Draw(dst.NRGBA(), image.Rect(0, 0, dst.Width, dst.Height), src, r.Min, draw.Src)
	return dst
}

// Resize scales a mask to a new canvas size using nearest-neighbour
// sampling, so that binary masks stay binary.
func Resize(m *Buffer, width, height int) *Buffer {
	m.check()
	dst := NewBuffer(width, height)
	draw.NearestNeighbor.Scale(dst.NRGBA(), dst.Bounds(), m.NRGBA(), m.Bounds(), draw.Src, nil)
	return dst
}
