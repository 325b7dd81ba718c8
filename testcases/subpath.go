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

// multiSubpath returns two disjoint closed squares in a single path, to
// exercise the Figure builder's subpath segmentation on Move.
func multiSubpath() vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(6, 6)).Line(pt(26, 6)).Line(pt(26, 26)).Line(pt(6, 26)).Close()
	b.Move(pt(38, 38)).Line(pt(58, 38)).Line(pt(58, 58)).Line(pt(38, 58)).Close()
	return b.Path()
}

// degenerateSubpath returns a path whose first subpath collapses to a
// single point (fewer than 3 distinct vertices) followed by a valid
// triangle, exercising BuildFigure's degenerate-subpath discarding.
func degenerateSubpath() vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(32, 32)).Line(pt(32, 32)).Close()
	b.Move(pt(10, 50)).Line(pt(32, 10)).Line(pt(54, 50)).Close()
	return b.Path()
}

// unclosedSubpath omits the trailing Close op; the rasterizer must treat
// the subpath as implicitly closed for fill purposes.
func unclosedSubpath() vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(10, 50)).Line(pt(32, 10)).Line(pt(54, 50))
	return b.Path()
}

// emptyPath returns a path with zero ops, for the empty-path round-trip
// invariant.
func emptyPath() vraster.Path {
	b := vraster.NewPathBuilder()
	return b.Path()
}

var subpathCases = []TestCase{
	{
		Name:   "multi_subpath_nonzero",
		Path:   multiSubpath(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "degenerate_subpath_discarded",
		Path:   degenerateSubpath(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "unclosed_subpath_implicit_close",
		Path:   unclosedSubpath(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "empty_path",
		Path:   emptyPath(),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: vraster.NonZero},
	},
}
