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

func rectangle(x0, y0, x1, y1 float32) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(x0, y0)).Line(pt(x1, y0)).Line(pt(x1, y1)).Line(pt(x0, y1)).Close()
	return b.Path()
}

func triangle(x0, y0, x1, y1, x2, y2 float32) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(x0, y0)).Line(pt(x1, y1)).Line(pt(x2, y2)).Close()
	return b.Path()
}

func fivePointStar(cx, cy, r float32) vraster.Path {
	b := vraster.NewPathBuilder()
	var outer, inner [5]vraster.Pt
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/5
		outer[i] = pt(cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)))
		ai := a + math.Pi/5
		inner[i] = pt(cx+0.382*r*float32(math.Cos(ai)), cy+0.382*r*float32(math.Sin(ai)))
	}
	b.Move(outer[0])
	for i := 0; i < 5; i++ {
		b.Line(inner[i])
		b.Line(outer[(i+1)%5])
	}
	b.Close()
	return b.Path()
}

func horizontalLine(y, x0, x1 float32) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(x0, y)).Line(pt(x1, y))
	return b.Path()
}

func corner(x0, y0, x1, y1, x2, y2 float32) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(x0, y0)).Line(pt(x1, y1)).Line(pt(x2, y2))
	return b.Path()
}

func quadraticCurve(x0, y0, cx, cy, x1, y1 float32) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(x0, y0)).Quad(pt(cx, cy), pt(x1, y1)).Close()
	return b.Path()
}

func cubicCurve(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float32) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(x0, y0)).Cubic(pt(c1x, c1y), pt(c2x, c2y), pt(x1, y1)).Close()
	return b.Path()
}

// concentricSquares returns two square subpaths sharing a center, with
// independently chosen winding direction, for testing NonZero/EvenOdd
// duality on oppositely-wound overlapping shapes.
func concentricSquares(cx, cy, outerHalf, innerHalf float32, sameWinding bool) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(cx-outerHalf, cy-outerHalf))
	b.Line(pt(cx+outerHalf, cy-outerHalf))
	b.Line(pt(cx+outerHalf, cy+outerHalf))
	b.Line(pt(cx-outerHalf, cy+outerHalf))
	b.Close()
	if sameWinding {
		b.Move(pt(cx-innerHalf, cy-innerHalf))
		b.Line(pt(cx+innerHalf, cy-innerHalf))
		b.Line(pt(cx+innerHalf, cy+innerHalf))
		b.Line(pt(cx-innerHalf, cy+innerHalf))
	} else {
		b.Move(pt(cx-innerHalf, cy+innerHalf))
		b.Line(pt(cx+innerHalf, cy+innerHalf))
		b.Line(pt(cx+innerHalf, cy-innerHalf))
		b.Line(pt(cx-innerHalf, cy-innerHalf))
	}
	b.Close()
	return b.Path()
}

// bowtie returns a single self-intersecting subpath shaped like a
// bowtie (figure-eight). Its two lobes are traced in opposite
// directions (winding -1 and +1), so NonZero and EvenOdd both fill both
// lobes.
func bowtie(x0, y0, x1, y1 float32) vraster.Path {
	b := vraster.NewPathBuilder()
	b.Move(pt(x0, y0)).Line(pt(x1, y1)).Line(pt(x1, y0)).Line(pt(x0, y1)).Close()
	return b.Path()
}
