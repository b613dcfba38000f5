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

// boxBlur replaces every value of the w×h grid buf by the mean over a
// (2r+1)×(2r+1) window.  The filter is applied as a horizontal pass
// followed by a vertical pass.  Samples outside the grid are replaced by
// the nearest value on the grid.
func boxBlur(buf []float32, w, h, r int) {
	if r <= 0 {
		return
	}
	line := make([]float32, max(w, h))

	for y := range h {
		row := buf[y*w : (y+1)*w]
		copy(line, row)
		blurLine(row, 1, line[:w], r)
	}
	for x := range w {
		for y := range h {
			line[y] = buf[y*w+x]
		}
		blurLine(buf[x:], w, line[:h], r)
	}
}

// blurLine writes the running mean of src into dst[0], dst[stride], ...
func blurLine(dst []float32, stride int, src []float32, r int) {
	n := len(src)
	at := func(i int) float64 {
		return float64(src[max(0, min(n-1, i))])
	}
	scale := 1 / float64(2*r+1)

	var sum float64
	for i := -r; i <= r; i++ {
		sum += at(i)
	}
	for i := range n {
		dst[i*stride] = float32(sum * scale)
		sum += at(i+r+1) - at(i-r)
	}
}
