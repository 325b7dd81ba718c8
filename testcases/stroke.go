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

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   horizontalLine(32, 10, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
	},
	{
		Name:   "line_round",
		Path:   horizontalLine(32, 10, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: vraster.CapRound, Join: vraster.JoinMiter, MiterLimit: 10},
	},
	{
		Name:   "line_square",
		Path:   horizontalLine(32, 10, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: vraster.CapSquare, Join: vraster.JoinMiter, MiterLimit: 10},
	},
	{
		Name:   "corner_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
	},
	{
		Name:   "corner_bevel",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: vraster.CapButt, Join: vraster.JoinBevel, MiterLimit: 10},
	},
	{
		Name:   "corner_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: vraster.CapButt, Join: vraster.JoinRound, MiterLimit: 10},
	},
	{
		// A needle-sharp corner with a low miter limit, to exercise the
		// miter-limit-fallback-to-bevel behavior.
		Name:   "corner_miter_limit_fallback",
		Path:   corner(5, 60, 32, 5, 59, 60),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 1.2},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
	},
}
