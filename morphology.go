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

import "math"

// Invert selects exactly the pixels which are not selected in m.
func Invert(m *Buffer) *Buffer {
	m.check()
	out := NewMask(m.Width, m.Height)
	for i := range m.Width * m.Height {
		if m.Pix[4*i+3] <= selectedThreshold {
			out.setMask(i, 255)
		}
	}
	return out
}

// Expand grows the selection by r pixels: a pixel is selected in the result
// if its distance to the nearest selected pixel of m is at most r.
func Expand(m *Buffer, r float64) *Buffer {
	m.check()
	r = max(r, 0)
	dist := outsideDistance(m)
	out := NewMask(m.Width, m.Height)
	for i, d := range dist.D {
		if float64(d) <= r {
			out.setMask(i, 255)
		}
	}
	return out
}

// Contract shrinks the selection by r pixels: a pixel stays selected if its
// distance to the nearest unselected pixel is greater than r.  The area
// outside the canvas counts as unselected.
func Contract(m *Buffer, r float64) *Buffer {
	m.check()
	r = max(r, 0)
	dist := insideDistance(m)
	out := NewMask(m.Width, m.Height)
	for i, d := range dist.D {
		if m.Pix[4*i+3] > selectedThreshold && float64(d) > r {
			out.setMask(i, 255)
		}
	}
	return out
}

// Border selects the inner ring of width r along the selection boundary,
// i.e. the selected pixels within distance r of an unselected pixel or of
// the canvas edge.  The result is always a subset of m.
func Border(m *Buffer, r float64) *Buffer {
	m.check()
	r = max(r, 0)
	dist := insideDistance(m)
	out := NewMask(m.Width, m.Height)
	for i, d := range dist.D {
		if m.Pix[4*i+3] > selectedThreshold && float64(d) <= r {
			out.setMask(i, 255)
		}
	}
	return out
}

// Feather softens the selection edge into a graded ramp.  A selected pixel
// at distance d < r from the nearest unselected pixel gets the value
// 255·d/r; an unselected pixel at distance d < r from the selection gets
// 255·(1-d/r).  All other pixels keep their binary value.  The graded band
// is thus about 2r pixels wide and straddles the original boundary.
func Feather(m *Buffer, r float64) *Buffer {
	m.check()
	r = max(r, 0)
	inside := insideDistance(m)
	outside := outsideDistance(m)
	out := NewMask(m.Width, m.Height)
	for i := range m.Width * m.Height {
		var a float64
		if m.Pix[4*i+3] > selectedThreshold {
			if d := float64(inside.D[i]); d >= r {
				a = 255
			} else {
				a = math.Round(d / r * 255)
			}
		} else {
			if d := float64(outside.D[i]); d >= r {
				a = 0
			} else {
				a = math.Round((1 - d/r) * 255)
			}
		}
		out.setMask(i, uint8(max(0, min(255, a))))
	}
	return out
}

// Smooth removes small protrusions and notches from the selection boundary
// by low-pass filtering: the alpha channel is blurred three times with a
// box filter of radius r, which approximates a Gaussian, and then
// thresholded at 128.
//
// The cost per pixel is proportional to r.
func Smooth(m *Buffer, r int) *Buffer {
	m.check()
	r = max(r, 0)
	w, h := m.Width, m.Height
	alpha := make([]float32, w*h)
	for i := range alpha {
		alpha[i] = float32(m.Pix[4*i+3])
	}
	for range smoothPasses {
		boxBlur(alpha, w, h, r)
	}
	out := NewMask(w, h)
	for i, a := range alpha {
		if a >= 128 {
			out.setMask(i, 255)
		}
	}
	return out
}

// smoothPasses is the number of box blur passes used by Smooth.
const smoothPasses = 3

// insideDistance returns, for every pixel of m, the distance to the nearest
// unselected pixel.  Pixels outside the canvas are treated as unselected.
func insideDistance(m *Buffer) *DistanceField {
	// Embed the mask in a grid with a one pixel wide unselected frame.
	w, h := m.Width+2, m.Height+2
	bg := make([]bool, w*h)
	for y := range h {
		for x := range w {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				bg[y*w+x] = true
				continue
			}
			bg[y*w+x] = m.Pix[m.PixOffset(x-1, y-1)+3] <= selectedThreshold
		}
	}
	padded := DistanceTransform(w, h, bg)

	res := &DistanceField{
		Width:  m.Width,
		Height: m.Height,
		D:      make([]float32, m.Width*m.Height),
	}
	for y := range m.Height {
		copy(res.D[y*m.Width:(y+1)*m.Width], padded.D[(y+1)*w+1:(y+1)*w+1+m.Width])
	}
	return res
}

// outsideDistance returns, for every pixel of m, the distance to the
// nearest selected pixel.
func outsideDistance(m *Buffer) *DistanceField {
	return ComputeDistance(m, func(offset int) bool {
		return m.Pix[offset+3] > selectedThreshold
	})
}
