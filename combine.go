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

import "fmt"

// Mode determines how a new selection is combined with the existing one.
type Mode int

const (
	ModeReplace Mode = iota
	ModeAdd
	ModeSubtract
	ModeIntersect
)

func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeAdd:
		return "add"
	case ModeSubtract:
		return "subtract"
	case ModeIntersect:
		return "intersect"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Combine merges the mask next into the mask current according to mode.
// Neither argument is modified.  A nil current mask is treated as empty.
func Combine(mode Mode, current, next *Buffer) *Buffer {
	if current == nil {
		current = NewMask(next.Width, next.Height)
	}
	switch mode {
	case ModeReplace:
		sameSize(current, next)
		return next.Clone()
	case ModeAdd:
		return Union(current, next)
	case ModeSubtract:
		return Subtract(current, next)
	case ModeIntersect:
		return Intersect(current, next)
	default:
		panic(fmt.Sprintf("selection: unknown combine mode %d", int(mode)))
	}
}

// Union returns the pixelwise maximum of two masks.
func Union(a, b *Buffer) *Buffer {
	return combinePixels(a, b, func(x, y uint8) uint8 { return max(x, y) })
}

// Subtract removes the selection b from a.  Graded masks are combined as
// min(a, 255-b).
func Subtract(a, b *Buffer) *Buffer {
	return combinePixels(a, b, func(x, y uint8) uint8 { return min(x, 255-y) })
}

// Intersect returns the pixelwise minimum of two masks.
func Intersect(a, b *Buffer) *Buffer {
	return combinePixels(a, b, func(x, y uint8) uint8 { return min(x, y) })
}

func combinePixels(a, b *Buffer, op func(x, y uint8) uint8) *Buffer {
	sameSize(a, b)
	out := NewMask(a.Width, a.Height)
	for i := range a.Width * a.Height {
		out.setMask(i, op(a.Pix[4*i+3], b.Pix[4*i+3]))
	}
	return out
}
