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

// Tolerance is the maximal per-channel colour difference, in the range
// 0 to 255, which still counts as a match for FloodFill and ColorRange.
type Tolerance int

// ClampTolerance converts v into a valid Tolerance.  Values outside the
// range 0 to 255 are clamped rather than rejected.
func ClampTolerance(v int) Tolerance {
	return Tolerance(max(0, min(255, v)))
}

// matcher tests pixels against a fixed reference colour using the sum of
// absolute differences over the R, G, B and A channels.
type matcher struct {
	ref    [4]byte
	maxSAD int
}

func newMatcher(img *Buffer, x, y int, tol Tolerance) matcher {
	i := img.PixOffset(x, y)
	m := matcher{maxSAD: 4 * int(ClampTolerance(int(tol)))}
	copy(m.ref[:], img.Pix[i:i+4])
	return m
}

// match reports whether the pixel starting at byte offset i of pix is
// similar enough to the reference colour.
func (m *matcher) match(pix []byte, i int) bool {
	p := pix[i : i+4 : i+4]
	sad := absDiff(p[0], m.ref[0]) + absDiff(p[1], m.ref[1]) +
		absDiff(p[2], m.ref[2]) + absDiff(p[3], m.ref[3])
	return sad <= m.maxSAD
}

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// ColorRange selects every pixel of img whose colour is similar to the
// colour at (x, y), whether or not it is connected to (x, y).  A pixel
// matches if the sum of absolute channel differences is at most 4*tol.
// The tolerance is clamped to the range 0 to 255.  If (x, y) is outside
// the image, the result is an empty mask.
func ColorRange(img *Buffer, x, y int, tol Tolerance) *Buffer {
	img.check()
	out := NewMask(img.Width, img.Height)
	if !img.In(x, y) {
		return out
	}
	m := newMatcher(img, x, y, tol)
	for i := range img.Width * img.Height {
		if m.match(img.Pix, 4*i) {
			out.setMask(i, 255)
		}
	}
	return out
}
