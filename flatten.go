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

// defaultFlatness is the maximum deviation, in device pixels, that the
// flattener tolerates between a curve and its polyline approximation.
const defaultFlatness float32 = 0.5

// maxFlattenDepth bounds the De Casteljau recursion so that a
// pathological or NaN-infected curve still terminates.
const maxFlattenDepth = 32

// flattenQuad recursively subdivides the quadratic Bezier (p0, p1, p2)
// via De Casteljau midpoint subdivision, calling emit with each line
// segment endpoint (p0 itself is never emitted; the caller already holds
// the current point). Subdivision always splits at t=0.5 exactly, so the
// same input always produces the same polyline regardless of machine or
// build.
func flattenQuad(p0, p1, p2 Pt, tol float32, depth int, emit func(Pt)) {
	if depth >= maxFlattenDepth || quadFlatEnough(p0, p1, p2, tol) {
		emit(p2)
		return
	}
	q1 := midpoint(p0, p1)
	q2 := midpoint(p1, p2)
	r0 := midpoint(q1, q2)
	flattenQuad(p0, q1, r0, tol, depth+1, emit)
	flattenQuad(r0, q2, p2, tol, depth+1, emit)
}

// flattenCubic recursively subdivides the cubic Bezier (p0, p1, p2, p3)
// the same way.
func flattenCubic(p0, p1, p2, p3 Pt, tol float32, depth int, emit func(Pt)) {
	if depth >= maxFlattenDepth || cubicFlatEnough(p0, p1, p2, p3, tol) {
		emit(p3)
		return
	}
	q1 := midpoint(p0, p1)
	q2 := midpoint(p1, p2)
	q3 := midpoint(p2, p3)
	r1 := midpoint(q1, q2)
	r2 := midpoint(q2, q3)
	s0 := midpoint(r1, r2)
	flattenCubic(p0, q1, r1, s0, tol, depth+1, emit)
	flattenCubic(s0, r2, q3, p3, tol, depth+1, emit)
}

func midpoint(a, b Pt) Pt {
	return Pt{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}

// quadFlatEnough reports whether the control point p1 lies close enough
// to the chord p0-p2 that a straight line from p0 to p2 is an adequate
// approximation within tol.
func quadFlatEnough(p0, p1, p2 Pt, tol float32) bool {
	return pointLineDistance(p1, p0, p2) <= tol
}

// cubicFlatEnough reports the same for both interior control points of a
// cubic against the chord p0-p3.
func cubicFlatEnough(p0, p1, p2, p3 Pt, tol float32) bool {
	return pointLineDistance(p1, p0, p3) <= tol && pointLineDistance(p2, p0, p3) <= tol
}

// pointLineDistance returns the perpendicular distance from p to the
// infinite line through a and b. If a and b coincide, it falls back to
// the distance from p to a.
func pointLineDistance(p, a, b Pt) float32 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := sqrt32(dx*dx + dy*dy)
	if length == 0 {
		ex := p.X - a.X
		ey := p.Y - a.Y
		return sqrt32(ex*ex + ey*ey)
	}
	// |cross(b-a, p-a)| / |b-a|
	cross := dx*(p.Y-a.Y) - dy*(p.X-a.X)
	if cross < 0 {
		cross = -cross
	}
	return cross / length
}

func sqrt32(x float32) float32 {
	return float32(sqrtf64(float64(x)))
}
