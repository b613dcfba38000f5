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

// FloodFill selects the region of pixels connected to (x, y) whose colour
// is similar to the colour at (x, y).  Similarity is tested as in
// ColorRange, always against the colour of the seed pixel.  Pixels are
// connected through their four horizontal and vertical neighbours.
//
// If (x, y) is outside the image, the result is an empty mask.
func FloodFill(img *Buffer, x, y int, tol Tolerance) *Buffer {
	return floodFill(img, x, y, tol, nil)
}

// floodFill implements FloodFill.  If pick is not nil, it is called with
// the number n of queued pixels before every step, and the queue entry at
// the returned index in [0, n) is processed next.  Otherwise the queue is
// processed in FIFO order.
func floodFill(img *Buffer, x, y int, tol Tolerance, pick func(n int) int) *Buffer {
	img.check()
	out := NewMask(img.Width, img.Height)
	if !img.In(x, y) {
		return out
	}
	m := newMatcher(img, x, y, tol)
	w, h := img.Width, img.Height

	visited := make([]bool, w*h)
	seed := y*w + x
	visited[seed] = true
	out.setMask(seed, 255)
	queue := []int{seed}

	visit := func(j int) {
		if visited[j] {
			return
		}
		visited[j] = true
		if m.match(img.Pix, 4*j) {
			out.setMask(j, 255)
			queue = append(queue, j)
		}
	}

	for head := 0; head < len(queue); head++ {
		if pick != nil {
			k := head + pick(len(queue)-head)
			queue[head], queue[k] = queue[k], queue[head]
		}
		i := queue[head]
		px, py := i%w, i/w
		if px > 0 {
			visit(i - 1)
		}
		if px < w-1 {
			visit(i + 1)
		}
		if py > 0 {
			visit(i - w)
		}
		if py < h-1 {
			visit(i + w)
		}
	}
	return out
}
