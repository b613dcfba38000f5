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
	"math"
	"slices"
)

// DistanceField holds one Euclidean distance per pixel, in row-major order.
type DistanceField struct {
	Width  int
	Height int
	D      []float32
}

// At returns the distance stored for pixel (x, y).
func (f *DistanceField) At(x, y int) float32 {
	return f.D[y*f.Width+x]
}

// DistanceTransform computes, for every pixel of a width×height grid, the
// exact Euclidean distance to the nearest pixel i with background[i] set.
// Background pixels have distance 0.  If the grid has no background pixels
// at all, every distance is +Inf.
//
// The implementation uses Meijster's two-pass algorithm: a vertical scan in
// every column, followed by a lower envelope of parabolas in every row.
// The run time is linear in the number of pixels.
func DistanceTransform(width, height int, background []bool) *DistanceField {
	if width <= 0 || height <= 0 || len(background) != width*height {
		panic(fmt.Sprintf("selection: %d indicator values for %dx%d grid",
			len(background), width, height))
	}

	res := &DistanceField{
		Width:  width,
		Height: height,
		D:      make([]float32, width*height),
	}
	if !slices.Contains(background, true) {
		inf := float32(math.Inf(1))
		for i := range res.D {
			res.D[i] = inf
		}
		return res
	}

	// Any finite distance is less than width+height, so this value acts
	// as infinity in the column pass.
	inf := float64(width + height)
	g := make([]float64, width*height)

	// vertical distances, squared at the end of each column
	for x := range width {
		prev := inf
		for y := range height {
			i := y*width + x
			if background[i] {
				prev = 0
			} else {
				prev = min(prev+1, inf)
			}
			g[i] = prev
		}
		for y := height - 2; y >= 0; y-- {
			i := y*width + x
			if below := g[i+width] + 1; below < g[i] {
				g[i] = below
			}
		}
		for y := range height {
			i := y*width + x
			g[i] *= g[i]
		}
	}

	env := newEnvelope(width)
	row := make([]float64, width)
	for y := range height {
		env.edt1d(row, g[y*width:(y+1)*width])
		out := res.D[y*width : (y+1)*width]
		for x, d2 := range row {
			out[x] = float32(math.Sqrt(d2))
		}
	}
	return res
}

// ComputeDistance runs the distance transform on an RGBA buffer.  The
// predicate receives the byte offset of a pixel in b.Pix and reports
// whether that pixel belongs to the background.
func ComputeDistance(b *Buffer, isBackground func(offset int) bool) *DistanceField {
	b.check()
	bg := make([]bool, b.Width*b.Height)
	for i := range bg {
		bg[i] = isBackground(4 * i)
	}
	return DistanceTransform(b.Width, b.Height, bg)
}

// envelope holds the scratch space for the one-dimensional transform.
type envelope struct {
	v []int     // apex positions of the parabolas in the lower envelope
	z []float64 // boundaries between neighbouring parabolas
}

func newEnvelope(n int) *envelope {
	return &envelope{
		v: make([]int, n),
		z: make([]float64, n+1),
	}
}

// edt1d computes the squared one-dimensional distance transform of the
// sampled function f:
//
//	d[q] = min_p (q-p)² + f[p]
//
// The result is written to d, which must have the same length as f.
func (e *envelope) edt1d(d, f []float64) {
	n := len(f)
	v, z := e.v, e.z

	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			// z[0] is -∞, so this stops at k == 0
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := range n {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the position where the parabolas with apexes at q and
// p, and heights f[q] and f[p], intersect.
func intersect(f []float64, q, p int) float64 {
	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*(q-p))
}
