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

func vecSub(a, b f32.Vec2) f32.Vec2 { return f32.Vec2{a[0] - b[0], a[1] - b[1]} }
func vecAdd(a, b f32.Vec2) f32.Vec2 { return f32.Vec2{a[0] + b[0], a[1] + b[1]} }
func vecScale(a f32.Vec2, s float32) f32.Vec2 { return f32.Vec2{a[0] * s, a[1] * s} }
func vecDot(a, b f32.Vec2) float32  { return a[0]*b[0] + a[1]*b[1] }
func vecPerp(a f32.Vec2) f32.Vec2   { return f32.Vec2{-a[1], a[0]} }
func vecLen(a f32.Vec2) float32     { return sqrt32(a[0]*a[0] + a[1]*a[1]) }

func vecNormalize(a f32.Vec2) f32.Vec2 {
	l := vecLen(a)
	if l == 0 {
		return f32.Vec2{0, 0}
	}
	return f32.Vec2{a[0] / l, a[1] / l}
}
