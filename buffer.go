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
	"image"
	"image/color"
)

// Buffer is a row-major RGBA pixel buffer with 8 bits per channel and no
// alpha premultiplication. Pix holds Width*Height*4 bytes.
//
// A Buffer is used both for source images and for masks. In a mask the
// selection strength of each pixel is stored in all four channels, so that
// the mask is itself a valid grayscale image. A mask pixel counts as
// selected when its alpha value is greater than 127.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBuffer allocates a zeroed buffer. Width and height must be positive.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("selection: invalid buffer size %dx%d", width, height))
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// NewMask allocates an empty mask, i.e. a buffer where no pixel is selected.
func NewMask(width, height int) *Buffer {
	return NewBuffer(width, height)
}

// check panics if the buffer violates the size invariant.
func (b *Buffer) check() {
	if b == nil {
		panic("selection: nil buffer")
	}
	if b.Width <= 0 || b.Height <= 0 || len(b.Pix) != b.Width*b.Height*4 {
		panic(fmt.Sprintf("selection: malformed %dx%d buffer with %d bytes",
			b.Width, b.Height, len(b.Pix)))
	}
}

// sameSize panics unless a and b have identical dimensions.
func sameSize(a, b *Buffer) {
	a.check()
	b.check()
	if a.Width != b.Width || a.Height != b.Height {
		panic(fmt.Sprintf("selection: size mismatch %dx%d vs %dx%d",
			a.Width, a.Height, b.Width, b.Height))
	}
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * 4
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Alpha returns the alpha channel of pixel (x, y).
func (b *Buffer) Alpha(x, y int) uint8 {
	return b.Pix[b.PixOffset(x, y)+3]
}

// SetAlpha stores a mask value at (x, y), mirrored into all four channels.
func (b *Buffer) SetAlpha(x, y int, a uint8) {
	i := b.PixOffset(x, y)
	b.Pix[i+0] = a
	b.Pix[i+1] = a
	b.Pix[i+2] = a
	b.Pix[i+3] = a
}

// setMask writes a mask value for the pixel with flat index i.
func (b *Buffer) setMask(i int, a uint8) {
	p := b.Pix[4*i : 4*i+4 : 4*i+4]
	p[0], p[1], p[2], p[3] = a, a, a, a
}

// Selected reports whether pixel (x, y) is part of the selection.
func (b *Buffer) Selected(x, y int) bool {
	return b.Alpha(x, y) > selectedThreshold
}

// Count returns the number of selected pixels.
func (b *Buffer) Count() int {
	n := 0
	for i := 3; i < len(b.Pix); i += 4 {
		if b.Pix[i] > selectedThreshold {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    append([]byte(nil), b.Pix...),
	}
}

// Equal reports whether both buffers have the same size and contents.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Width != other.Width || b.Height != other.Height {
		return false
	}
	return string(b.Pix) == string(other.Pix)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	if !b.In(x, y) {
		return color.NRGBA{}
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Set implements the draw.Image interface.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.In(x, y) {
		return
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = nc.R, nc.G, nc.B, nc.A
}

// selectedThreshold is the largest alpha value which still counts as
// unselected.
const selectedThreshold = 127
