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

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "bowtie_nonzero",
		Path:   bowtie(10, 10, 50, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "bowtie_evenodd",
		Path:   bowtie(10, 10, 50, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.EvenOdd},
	},
	{
		Name:   "concentric_same_winding_evenodd",
		Path:   concentricSquares(32, 32, 20, 10, true),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.EvenOdd},
	},
	{
		Name:   "concentric_opposite_winding_nonzero",
		Path:   concentricSquares(32, 32, 20, 10, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "unit_square",
		Path:   rectangle(4, 4, 5, 5),
		Width:  8,
		Height: 8,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "half_pixel_shift",
		Path:   rectangle(4.5, 4.5, 5.5, 5.5),
		Width:  8,
		Height: 8,
		Op:     Fill{Rule: vraster.NonZero},
	},
}
