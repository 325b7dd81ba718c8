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

package vraster

import "testing"

func TestFlattenQuadStaysWithinTolerance(t *testing.T) {
	p0 := Pt{0, 0}
	p1 := Pt{50, 100}
	p2 := Pt{100, 0}
	const tol = 0.25

	var pts []Pt
	flattenQuad(p0, p1, p2, tol, 0, func(p Pt) { pts = append(pts, p) })
	if len(pts) == 0 {
		t.Fatal("flattenQuad emitted no points")
	}
	last := pts[len(pts)-1]
	if last != p2 {
		t.Errorf("last emitted point = %v, want endpoint %v", last, p2)
	}

	prev := p0
	for _, p := range pts {
		// every chord must be close to the true curve; a necessary (not
		// sufficient) check is that consecutive points make reasonable
		// progress and never jump backwards in x for this convex curve.
		if p.X < prev.X-1e-3 {
			t.Errorf("flattened points not monotonic in x: %v then %v", prev, p)
		}
		prev = p
	}
}

func TestFlattenQuadDegenerateToLine(t *testing.T) {
	p0 := Pt{0, 0}
	p1 := Pt{5, 5}
	p2 := Pt{10, 10}
	var pts []Pt
	flattenQuad(p0, p1, p2, 0.5, 0, func(p Pt) { pts = append(pts, p) })
	if len(pts) != 1 {
		t.Fatalf("collinear control point should flatten to a single segment, got %d points", len(pts))
	}
	if pts[0] != p2 {
		t.Errorf("emitted point = %v, want %v", pts[0], p2)
	}
}

func TestFlattenCubicRecursionTerminates(t *testing.T) {
	// A cubic whose control points are far outside the chord still must
	// terminate within maxFlattenDepth and end exactly at p3.
	p0 := Pt{0, 0}
	p1 := Pt{1000, 1000}
	p2 := Pt{-1000, 1000}
	p3 := Pt{10, 0}
	var pts []Pt
	flattenCubic(p0, p1, p2, p3, 0.1, 0, func(p Pt) { pts = append(pts, p) })
	if len(pts) == 0 {
		t.Fatal("flattenCubic emitted no points")
	}
	if got := pts[len(pts)-1]; got != p3 {
		t.Errorf("last point = %v, want %v", got, p3)
	}
	if len(pts) > 1<<uint(maxFlattenDepth+1) {
		t.Errorf("flattenCubic produced an unreasonable number of points: %d", len(pts))
	}
}
