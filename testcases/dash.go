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

var dashCases = []TestCase{
	{
		Name:   "dash_even",
		Path:   horizontalLine(32, 4, 60),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10, Dash: []float32{8, 4}},
	},
	{
		Name:   "dash_phase_offset",
		Path:   horizontalLine(32, 4, 60),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10, Dash: []float32{8, 4}, DashPhase: 6},
	},
	{
		Name:   "dash_round_caps",
		Path:   horizontalLine(32, 4, 60),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10, Dash: []float32{2, 10}},
	},
	{
		Name:   "dash_closed_square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10, Dash: []float32{6, 6}},
	},
	{
		// An asymmetric on/off/on pattern with an odd number of entries,
		// which repeats the pattern rather than alternating a fixed pair.
		Name:   "dash_three_entry_pattern",
		Path:   horizontalLine(32, 4, 60),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapButt, Join: vraster.JoinMiter, MiterLimit: 10, Dash: []float32{5, 3, 1}},
	},
}
