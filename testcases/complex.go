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

import (
	"math"

	"vraster"
)

var complexCases = []TestCase{
	// mixed lines and curves in a single subpath.
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},
	{
		Name:   "stroked_mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10},
	},
	{
		Name:   "glyph_like",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: vraster.NonZero},
	},

	// stroke self-intersection: the offset outline of these paths
	// overlaps itself, relying on NonZero fill to absorb it cleanly.
	{
		Name:   "spiral_overlap",
		Path:   spiralPath(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10},
	},
	{
		Name:   "figure_eight",
		Path:   figureEightStroke(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10},
	},
	{
		Name:   "thick_tight_curve",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10},
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzagPath(10, 32, 54, 20),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: vraster.CapRound, Join: vraster.JoinRound, MiterLimit: 10},
	},
}

// mixedLinesCurves builds a path combining line segments with a
// quadratic and a cubic curve in the same subpath.
func mixedLinesCurves() vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(10, 50)).
		Line(pt(20, 30)).
		Quad(pt(32, 10), pt(44, 30)).
		Line(pt(54, 50)).
		Cubic(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
	return b.Path()
}

// glyphLikeShape builds a bowl-with-counter shape resembling a
// typographic glyph: an outer closed contour plus an oppositely-wound
// inner contour that NonZero fill treats as a hole.
func glyphLikeShape() vraster.Path {
	const kappa = 0.5522847498307936
	cx, cy := float32(32), float32(38)
	r := float32(18)
	k := r * kappa

	b := vraster.NewPathBuilder()
	b.Move(pt(cx+r, cy)).
		Cubic(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		Cubic(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		Cubic(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		Cubic(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()

	ir := float32(8)
	ik := ir * kappa
	b.Move(pt(cx+ir, cy)).
		Cubic(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		Cubic(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		Cubic(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		Cubic(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		Close()

	return b.Path()
}

// spiralPath builds an Archimedean spiral approximated by line segments,
// with successive turns (rMax-rMin)/turns apart. In spiral_overlap that
// spacing (20/3) is wider than the stroke width (4), so the outline does
// not overlap across turns; it overlaps itself only at the inner corners
// of the flattened polyline.
func spiralPath(cx, cy, rMin, rMax, turns float32) vraster.Path {
	steps := int(turns * 32)
	if steps < 8 {
		steps = 8
	}
	totalAngle := float64(turns) * 2 * math.Pi
	rGrowth := float64(rMax-rMin) / totalAngle

	b := vraster.NewPathBuilder()
	b.Move(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := t * totalAngle
		r := float64(rMin) + rGrowth*angle
		x := float64(cx) + r*math.Cos(angle)
		y := float64(cy) + r*math.Sin(angle)
		b.Line(pt(float32(x), float32(y)))
	}
	return b.Path()
}

// figureEightStroke builds a lemniscate-like path from two oppositely
// wound cubic loops meeting at a single center crossing, the canonical
// shape for testing a stroker's handling of a self-crossing centerline.
func figureEightStroke(cx, cy, size float32) vraster.Path {
	const kappa = 0.5522847498307936
	r := size / 2
	k := r * kappa
	topCy := cy - r/2
	botCy := cy + r/2

	b := vraster.NewPathBuilder()
	b.Move(pt(cx, cy)).
		Cubic(pt(cx+k, cy-r/4), pt(cx+r, topCy-k/2), pt(cx+r, topCy)).
		Cubic(pt(cx+r, topCy-k), pt(cx+k, topCy-r), pt(cx, topCy-r)).
		Cubic(pt(cx-k, topCy-r), pt(cx-r, topCy-k), pt(cx-r, topCy)).
		Cubic(pt(cx-r, topCy+k/2), pt(cx-k, cy-r/4), pt(cx, cy)).
		Cubic(pt(cx-k, cy+r/4), pt(cx-r, botCy-k/2), pt(cx-r, botCy)).
		Cubic(pt(cx-r, botCy+k), pt(cx-k, botCy+r), pt(cx, botCy+r)).
		Cubic(pt(cx+k, botCy+r), pt(cx+r, botCy+k), pt(cx+r, botCy)).
		Cubic(pt(cx+r, botCy-k/2), pt(cx+k, cy+r/4), pt(cx, cy))
	return b.Path()
}

// tightCurve builds a U-turn whose inner radius is small relative to
// the stroke width used in its test case, so the inner offset edge
// crosses itself at the bend.
func tightCurve(cx, cy, size float32) vraster.Path {
	const kappa = 0.5522847498307936
	r := size
	k := r * kappa

	b := vraster.NewPathBuilder()
	b.Move(pt(cx-r, cy-size)).
		Line(pt(cx-r, cy)).
		Cubic(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		Cubic(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Line(pt(cx+r, cy-size))
	return b.Path()
}

// zigzagPath builds a zigzag whose adjacent segments, once stroked at
// the width used in its test case, overlap at each vertex.
func zigzagPath(x0, cy, x1, amplitude float32) vraster.Path {
	const segments = 5
	width := x1 - x0
	segWidth := width / segments

	b := vraster.NewPathBuilder()
	b.Move(pt(x0, cy))
	for i := 1; i <= segments; i++ {
		x := x0 + float32(i)*segWidth
		y := cy - amplitude
		if i%2 == 0 {
			y = cy + amplitude
		}
		b.Line(pt(x, y))
	}
	return b.Path()
}
