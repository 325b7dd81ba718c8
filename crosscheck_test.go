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

// Package vraster_test cross-checks vraster's NonZero scan conversion
// against golang.org/x/image/vector, an independently-implemented
// rasterizer, on simple (non-self-intersecting) polygon input. It lives
// as an external test package so that it can import vraster as a regular
// client without creating an import cycle.
package vraster_test

import (
	"image"
	"image/draw"
	"testing"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"vraster"
)

// rasterizeWithXImage renders pts (a single closed polygon, NonZero fill)
// with golang.org/x/image/vector and returns its 8-bit coverage grid in
// the same row-major, no-padding layout as vraster.Matte.
func rasterizeWithXImage(pts []vraster.Pt, w, h int) []uint8 {
	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	r.MoveTo(f32.Vec2{pts[0].X, pts[0].Y})
	for _, p := range pts[1:] {
		r.LineTo(f32.Vec2{p.X, p.Y})
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = dst.AlphaAt(x, y).A
		}
	}
	return out
}

func rasterizeWithVraster(pts []vraster.Pt, w, h int) []uint8 {
	b := vraster.NewPathBuilder()
	b.Move(pts[0])
	for _, p := range pts[1:] {
		b.Line(p)
	}
	b.Close()

	p, err := vraster.NewPlotter(w, h)
	if err != nil {
		panic(err)
	}
	matte, err := p.Fill(b.Path(), vraster.NonZero)
	if err != nil {
		panic(err)
	}
	return append([]uint8(nil), matte.Pix...)
}

func TestCrossCheckAgainstXImageVector(t *testing.T) {
	const w, h = 40, 40

	cases := map[string][]vraster.Pt{
		"triangle": {{4, 4}, {36, 10}, {10, 36}},
		"rectangle": {
			{6, 6}, {30, 6}, {30, 30}, {6, 30},
		},
		"convex_pentagon": {
			{20, 2}, {36, 14}, {30, 34}, {10, 34}, {4, 14},
		},
		"half_pixel_shift": {
			{6.5, 6.5}, {20.5, 6.5}, {20.5, 20.5}, {6.5, 20.5},
		},
	}

	for name, pts := range cases {
		t.Run(name, func(t *testing.T) {
			want := rasterizeWithXImage(pts, w, h)
			got := rasterizeWithVraster(pts, w, h)

			var maxDiff int
			for i := range want {
				d := int(want[i]) - int(got[i])
				if d < 0 {
					d = -d
				}
				if d > maxDiff {
					maxDiff = d
				}
			}
			// Both rasterizers compute exact trapezoidal coverage for
			// convex, non-self-intersecting polygons; they may still
			// differ by a few 8-bit quantization steps due to rounding
			// choices made at different points in each pipeline.
			const tolerance = 3
			if maxDiff > tolerance {
				t.Errorf("%s: max per-pixel coverage difference %d exceeds tolerance %d", name, maxDiff, tolerance)
			}
		})
	}
}
