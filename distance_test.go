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
	"math"
	"math/rand"
	"testing"
)

// bruteForceDistance computes the distance transform by checking every pair
// of pixels.
func bruteForceDistance(w, h int, bg []bool) []float64 {
	res := make([]float64, w*h)
	for i := range res {
		res[i] = math.Inf(1)
		for j, isBG := range bg {
			if !isBG {
				continue
			}
			dx := float64(i%w - j%w)
			dy := float64(i/w - j/w)
			res[i] = min(res[i], math.Hypot(dx, dy))
		}
	}
	return res
}

func TestDistanceSinglePixel(t *testing.T) {
	const w, h = 16, 16
	bg := make([]bool, w*h)
	bg[5*w+9] = true

	dist := DistanceTransform(w, h, bg)
	for y := range h {
		for x := range w {
			want := math.Hypot(float64(x-9), float64(y-5))
			if got := float64(dist.At(x, y)); math.Abs(got-want) > 1e-3 {
				t.Errorf("(%d,%d): expected %.4f, got %.4f", x, y, want, got)
			}
		}
	}
}

func TestDistanceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := [][2]int{{1, 1}, {1, 7}, {9, 1}, {13, 11}, {32, 20}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		for _, density := range []float64{0.01, 0.1, 0.5, 0.9} {
			bg := make([]bool, w*h)
			found := false
			for i := range bg {
				bg[i] = rng.Float64() < density
				found = found || bg[i]
			}
			if !found {
				bg[rng.Intn(w*h)] = true
			}

			want := bruteForceDistance(w, h, bg)
			got := DistanceTransform(w, h, bg)
			for i := range want {
				if math.Abs(float64(got.D[i])-want[i]) > 1e-3 {
					t.Fatalf("%dx%d, density %g, pixel %d: expected %.4f, got %.4f",
						w, h, density, i, want[i], got.D[i])
				}
			}
		}
	}
}

func TestDistanceNoBackground(t *testing.T) {
	const w, h = 7, 5
	dist := DistanceTransform(w, h, make([]bool, w*h))
	for i, d := range dist.D {
		if !math.IsInf(float64(d), 1) {
			t.Errorf("pixel %d: expected +Inf, got %g", i, d)
		}
	}
}

func TestDistanceBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("wrong indicator length did not panic")
		}
	}()
	DistanceTransform(4, 4, make([]bool, 15))
}

func TestComputeDistance(t *testing.T) {
	m := maskFromRows(
		"......",
		"......",
		"..##..",
		"......",
	)
	dist := ComputeDistance(m, func(offset int) bool {
		return m.Pix[offset+3] > selectedThreshold
	})
	cases := []struct {
		x, y int
		want float64
	}{
		{2, 2, 0},
		{3, 2, 0},
		{0, 2, 2},
		{5, 3, math.Sqrt(5)},
		{0, 0, math.Sqrt(8)},
	}
	for _, c := range cases {
		if got := float64(dist.At(c.x, c.y)); math.Abs(got-c.want) > 1e-3 {
			t.Errorf("(%d,%d): expected %.4f, got %.4f", c.x, c.y, c.want, got)
		}
	}
}

func TestEdt1d(t *testing.T) {
	f := []float64{4, 100, 0, 100, 100, 1, 100}
	d := make([]float64, len(f))
	newEnvelope(len(f)).edt1d(d, f)
	for q := range f {
		want := math.Inf(1)
		for p, fp := range f {
			want = min(want, float64((q-p)*(q-p))+fp)
		}
		if d[q] != want {
			t.Errorf("d[%d] = %g, want %g", q, d[q], want)
		}
	}
}
