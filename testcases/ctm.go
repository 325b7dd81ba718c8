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

var ctmCases = []TestCase{
	{
		Name:   "translate",
		Path:   rectangle(0, 0, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
		CTM:    vraster.Translate(12, 12),
	},
	{
		Name:   "scale",
		Path:   rectangle(4, 4, 14, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
		CTM:    vraster.Scale(3, 3),
	},
	{
		Name:   "rotate_45",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
		CTM:    vraster.Translate(32, 32).Mul(vraster.Rotate(0.785398163)),
	},
	{
		Name:   "skew_stroke",
		Path:   rectangle(8, 8, 40, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
		CTM:    vraster.SkewX(0.4),
	},
}
