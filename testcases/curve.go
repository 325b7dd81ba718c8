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

var curveCases = []TestCase{
	{
		Name:   "quad_fill",
		Path:   quadraticCurve(8, 56, 32, 4, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "quad_stroke",
		Path:   quadraticCurve(8, 56, 32, 4, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10},
	},
	{
		Name:   "cubic_fill",
		Path:   cubicCurve(6, 56, 6, 4, 58, 4, 58, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "cubic_stroke",
		Path:   cubicCurve(6, 56, 6, 4, 58, 4, 58, 56),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
	},
	{
		// Control points coincide with the endpoints: the curve degenerates
		// to a straight segment and the flattener must still converge.
		Name:   "cubic_degenerate_to_line",
		Path:   cubicCurve(10, 32, 10, 32, 54, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10},
	},
	{
		// A cubic with an S-shaped inflection, to exercise flattening
		// depth beyond the common convex case.
		Name:   "cubic_s_curve_stroke",
		Path:   cubicCurve(6, 10, 58, 20, 6, 44, 58, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10},
	},
}
