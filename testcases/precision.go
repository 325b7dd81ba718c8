// vraster - a 2D vector graphics rasterizer
// Copyright (C) 2026  vraster contributors
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

package testcases

import "vraster"

var precisionCases = []TestCase{
	// subpixel positioning: the same rectangle shape shifted by fractional
	// pixel amounts should produce correspondingly shifted coverage, not a
	// quantized snap to the nearest integer pixel.
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 4, 4, 0.0),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 4, 4, 0.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 4, 4, 0.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 4, 4, 0.75),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},

	// thin lines at integer vs. half-integer y: a 1-unit-wide stroke
	// centered on an integer coordinate straddles two rows and splits its
	// coverage evenly across them, while one centered on a half-integer
	// coordinate falls entirely into a single row.
	{
		Name:   "thin_line_y_integer",
		Path:   horizontalLine(10, 5, 59),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1.0, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
	},
	{
		Name:   "thin_line_y_half",
		Path:   horizontalLine(10.5, 5, 59),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1.0, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
	},

	// a rectangle whose corner coordinates carry more fractional digits
	// than float32 holds at this magnitude, so each is rounded to the
	// nearest float32 when its Pt is built.
	{
		Name:   "float32_precision",
		Path:   float32PrecisionShape(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
}

// offsetRectangle builds a w-by-h rectangle anchored at (x, y) with a
// fractional offset applied to all four corners.
func offsetRectangle(x, y, w, h, offset float32) vraster.Path {
	ox0, oy0 := x+offset, y+offset
	ox1, oy1 := x+w+offset, y+h+offset
	return rectangle(ox0, oy0, ox1, oy1)
}

// float32PrecisionShape builds a rectangle spanning 22.1234567 to
// 42.1234568 on both axes. Both values carry more digits than float32
// holds near this magnitude and are rounded on input; the 1e-7 gap
// between delta1 and delta2 is below float32 resolution here, so it does
// not survive that rounding.
func float32PrecisionShape() vraster.Path {
	const base = 32.0
	const delta1 = 0.1234567
	const delta2 = 0.1234568
	x0, y0 := float32(base-10+delta1), float32(base-10+delta1)
	x1, y1 := float32(base+10+delta2), float32(base+10+delta2)
	return rectangle(x0, y0, x1, y1)
}
