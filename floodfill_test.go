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
	"image/color"
	"math/rand"
	"testing"
)

// paint fills the rectangle [x0,x1)×[y0,y1) of img with c.
func paint(img *Buffer, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
}

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestFloodFillRectangle(t *testing.T) {
	const w, h = 23, 17
	img := NewBuffer(w, h)
	paint(img, 0, 0, w, h, blue)
	paint(img, 4, 3, 15, 12, red)
	want := boxMask(w, h, 4, 3, 15, 12)

	rng := rand.New(rand.NewSource(6))
	for _, seed := range [][2]int{{4, 3}, {14, 11}, {9, 7}} {
		got := FloodFill(img, seed[0], seed[1], 0)
		if !got.Equal(want) {
			t.Errorf("seed %v: unexpected mask\n%s", seed, maskRows(got))
		}

		for range 10 {
			got := floodFill(img, seed[0], seed[1], 0, rng.Intn)
			if !got.Equal(want) {
				t.Fatalf("seed %v, random order: unexpected mask\n%s", seed, maskRows(got))
			}
		}
	}
}

// TestFloodFillOrder checks that the result does not depend on the order
// in which the queue is processed, also for noisy images where the
// matching pixels form an irregular region.
func TestFloodFillOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 31, 29
	img := NewBuffer(w, h)
	for i := 0; i < len(img.Pix); i += 4 {
		v := uint8(100 + rng.Intn(40))
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 255
	}

	for _, tol := range []Tolerance{3, 8, 15} {
		want := FloodFill(img, 15, 14, tol)
		for range 10 {
			got := floodFill(img, 15, 14, tol, rng.Intn)
			if !got.Equal(want) {
				t.Fatalf("tolerance %d: result depends on traversal order", tol)
			}
		}
		if !isSubset(want, ColorRange(img, 15, 14, tol)) {
			t.Fatalf("tolerance %d: flood fill selected non-matching pixels", tol)
		}
	}
}

func TestFloodFillConnectivity(t *testing.T) {
	img := NewBuffer(7, 5)
	paint(img, 0, 0, 7, 5, white)
	// two red regions, touching only at a corner
	paint(img, 0, 0, 3, 3, red)
	paint(img, 3, 3, 7, 5, red)

	got := FloodFill(img, 1, 1, 0)
	if !got.Equal(boxMask(7, 5, 0, 0, 3, 3)) {
		t.Errorf("diagonal neighbours were connected\n%s", maskRows(got))
	}
	if got := ColorRange(img, 1, 1, 0).Count(); got != 9+8 {
		t.Errorf("color range selected %d pixels", got)
	}
}

func TestFloodFillFixedReference(t *testing.T) {
	// a gradient where neighbouring pixels differ by less than the
	// tolerance; only pixels close to the seed colour are selected
	img := NewBuffer(40, 1)
	for x := range 40 {
		img.Set(x, 0, color.NRGBA{R: uint8(10 * x), A: 255})
	}
	got := FloodFill(img, 0, 0, 10)
	// SAD at pixel x is 10x, the limit is 40
	if want := boxMask(40, 1, 0, 0, 5, 1); !got.Equal(want) {
		t.Errorf("unexpected mask\n%s", maskRows(got))
	}
}

func TestFloodFillOutside(t *testing.T) {
	img := NewBuffer(5, 5)
	paint(img, 0, 0, 5, 5, red)
	for _, seed := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if got := FloodFill(img, seed[0], seed[1], 255).Count(); got != 0 {
			t.Errorf("seed %v: %d pixels selected", seed, got)
		}
		if got := ColorRange(img, seed[0], seed[1], 255).Count(); got != 0 {
			t.Errorf("seed %v: %d pixels selected", seed, got)
		}
	}
}

func TestColorRange(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const w, h = 19, 13
	img := NewBuffer(w, h)
	rng.Read(img.Pix)
	copy(img.Pix[img.PixOffset(7, 7):], img.Pix[img.PixOffset(2, 3):img.PixOffset(2, 3)+4])

	if got := ColorRange(img, 2, 3, 255).Count(); got != w*h {
		t.Errorf("tolerance 255 selected %d of %d pixels", got, w*h)
	}
	if got := ColorRange(img, 2, 3, 1000).Count(); got != w*h {
		t.Errorf("tolerance 1000 selected %d of %d pixels", got, w*h)
	}

	exact := ColorRange(img, 2, 3, 0)
	ref := img.At(2, 3)
	for y := range h {
		for x := range w {
			if exact.Selected(x, y) != (img.At(x, y) == ref) {
				t.Errorf("pixel (%d,%d): wrong selection state", x, y)
			}
		}
	}
	if !exact.Selected(7, 7) {
		t.Error("identical pixel not selected")
	}
	if got := ColorRange(img, 2, 3, -5); !got.Equal(exact) {
		t.Error("negative tolerance differs from tolerance 0")
	}
}

func TestColorRangeSAD(t *testing.T) {
	img := NewBuffer(3, 1)
	img.Set(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	img.Set(1, 0, color.NRGBA{R: 110, G: 95, B: 100, A: 250})  // SAD 20
	img.Set(2, 0, color.NRGBA{R: 121, G: 100, B: 100, A: 255}) // SAD 21

	got := ColorRange(img, 0, 0, 5)
	if !got.Selected(0, 0) || !got.Selected(1, 0) || got.Selected(2, 0) {
		t.Errorf("unexpected mask\n%s", maskRows(got))
	}
}

func TestClampTolerance(t *testing.T) {
	cases := []struct {
		in   int
		want Tolerance
	}{
		{-10, 0}, {0, 0}, {32, 32}, {255, 255}, {256, 255}, {1 << 40, 255},
	}
	for _, c := range cases {
		if got := ClampTolerance(c.in); got != c.want {
			t.Errorf("ClampTolerance(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestWand(t *testing.T) {
	img := NewBuffer(12, 6)
	paint(img, 0, 0, 12, 6, white)
	paint(img, 1, 1, 4, 4, red)
	paint(img, 7, 1, 10, 5, red)

	w := NewWand(300)
	if w.Tolerance != 255 || !w.Contiguous {
		t.Fatalf("unexpected wand settings %+v", w)
	}
	w.SetTolerance(0)

	if got := w.Select(img, 2, 2); !got.Equal(boxMask(12, 6, 1, 1, 4, 4)) {
		t.Errorf("contiguous wand\n%s", maskRows(got))
	}

	w.Contiguous = false
	want := Union(boxMask(12, 6, 1, 1, 4, 4), boxMask(12, 6, 7, 1, 10, 5))
	if got := w.Select(img, 2, 2); !got.Equal(want) {
		t.Errorf("global wand\n%s", maskRows(got))
	}
}

// TestToleranceOutOfRange checks that tolerances set directly, bypassing
// ClampTolerance, are still clamped.
func TestToleranceOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	img := NewBuffer(9, 7)
	rng.Read(img.Pix)

	w := &Wand{Tolerance: 400}
	if got := w.Select(img, 3, 3); !got.Equal(ColorRange(img, 3, 3, 255)) {
		t.Error("tolerance above 255 is not clamped")
	}
	w = &Wand{Tolerance: -20, Contiguous: true}
	if got := w.Select(img, 3, 3); !got.Equal(FloodFill(img, 3, 3, 0)) {
		t.Error("negative tolerance is not clamped")
	}
}
