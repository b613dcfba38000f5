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

import "testing"

func TestCombine(t *testing.T) {
	a := boxMask(10, 6, 1, 1, 6, 5)
	b := boxMask(10, 6, 4, 2, 9, 4)

	cases := []struct {
		mode Mode
		want *Buffer
	}{
		{ModeReplace, b},
		{ModeAdd, Union(a, b)},
		{ModeSubtract, Subtract(a, b)},
		{ModeIntersect, boxMask(10, 6, 4, 2, 6, 4)},
	}
	for _, c := range cases {
		got := Combine(c.mode, a, b)
		if !got.Equal(c.want) {
			t.Errorf("%s: unexpected mask\n%s", c.mode, maskRows(got))
		}
		if got == a || got == b {
			t.Errorf("%s: result aliases an input", c.mode)
		}
	}

	if got := Union(a, b).Count(); got != 20+10-4 {
		t.Errorf("union has %d pixels", got)
	}
	if got := Subtract(a, b).Count(); got != 20-4 {
		t.Errorf("difference has %d pixels", got)
	}
}

func TestCombineEmpty(t *testing.T) {
	b := boxMask(5, 5, 1, 1, 3, 3)
	if got := Combine(ModeAdd, nil, b); !got.Equal(b) {
		t.Error("adding to nothing")
	}
	if got := Combine(ModeSubtract, nil, b); got.Count() != 0 {
		t.Error("subtracting from nothing")
	}
}

func TestCombineGraded(t *testing.T) {
	a := NewMask(3, 1)
	b := NewMask(3, 1)
	a.SetAlpha(0, 0, 200)
	a.SetAlpha(1, 0, 100)
	b.SetAlpha(0, 0, 100)
	b.SetAlpha(1, 0, 200)
	b.SetAlpha(2, 0, 50)

	check := func(name string, m *Buffer, want ...uint8) {
		t.Helper()
		for x, w := range want {
			if got := m.Alpha(x, 0); got != w {
				t.Errorf("%s: pixel %d is %d, want %d", name, x, got, w)
			}
		}
	}
	check("union", Union(a, b), 200, 200, 50)
	check("intersect", Intersect(a, b), 100, 100, 0)
	check("subtract", Subtract(a, b), 155, 55, 0)
}

func TestCombineSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("size mismatch did not panic")
		}
	}()
	Union(NewMask(3, 3), NewMask(3, 4))
}

func TestModeString(t *testing.T) {
	if s := ModeSubtract.String(); s != "subtract" {
		t.Errorf("got %q", s)
	}
	if s := Mode(9).String(); s != "Mode(9)" {
		t.Errorf("got %q", s)
	}
}
