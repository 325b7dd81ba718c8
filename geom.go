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

import "golang.org/x/image/math/f32"

// Pt is a point in device space, with 32-bit float coordinates.
type Pt struct {
	X, Y float32
}

// Vec2 returns p as a golang.org/x/image/math/f32.Vec2, for use in the
// linear-algebra-heavy parts of the stroker.
func (p Pt) Vec2() f32.Vec2 { return f32.Vec2{p.X, p.Y} }

// PtFromVec2 converts a f32.Vec2 back into a Pt.
func PtFromVec2(v f32.Vec2) Pt { return Pt{v[0], v[1]} }

// WidePt is a point carrying a per-vertex pen width, used inside the
// stroker to interpolate variable-width strokes.
type WidePt struct {
	Pt
	Width float32
}

// Transform is a 2x3 affine matrix
//
//	[ A C E ]
//	[ B D F ]
//
// mapping (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Transform struct {
	A, B, C, D, E, F float32
}

// Identity is the identity transform.
var Identity = Transform{A: 1, D: 1}

// Translate returns a transform that translates by (dx, dy).
func Translate(dx, dy float32) Transform {
	return Transform{A: 1, D: 1, E: dx, F: dy}
}

// Scale returns a transform that scales by (sx, sy) about the origin.
func Scale(sx, sy float32) Transform {
	return Transform{A: sx, D: sy}
}

// Rotate returns a transform that rotates by theta radians (counter-clockwise
// in a y-up mathematical sense; the caller's coordinate system is y-down, so
// the visual effect is clockwise).
func Rotate(theta float64) Transform {
	s, c := sincos(theta)
	return Transform{A: float32(c), B: float32(s), C: float32(-s), D: float32(c)}
}

// SkewX returns a transform that shears x by tan(theta)*y.
func SkewX(theta float64) Transform {
	return Transform{A: 1, D: 1, C: float32(tan(theta))}
}

// SkewY returns a transform that shears y by tan(theta)*x.
func SkewY(theta float64) Transform {
	return Transform{A: 1, D: 1, B: float32(tan(theta))}
}

// Mul returns the transform equivalent to first applying g, then t
// (t.Mul(g) == apply g, then t — matrix multiplication t * g).
func (t Transform) Mul(g Transform) Transform {
	return Transform{
		A: t.A*g.A + t.C*g.B,
		B: t.B*g.A + t.D*g.B,
		C: t.A*g.C + t.C*g.D,
		D: t.B*g.C + t.D*g.D,
		E: t.A*g.E + t.C*g.F + t.E,
		F: t.B*g.E + t.D*g.F + t.F,
	}
}

// Apply maps p through the transform.
func (t Transform) Apply(p Pt) Pt {
	return Pt{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// ApplyLinear maps a vector through the linear part of the transform,
// ignoring translation.
func (t Transform) ApplyLinear(v f32.Vec2) f32.Vec2 {
	return f32.Vec2{t.A*v[0] + t.C*v[1], t.B*v[0] + t.D*v[1]}
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity
}
