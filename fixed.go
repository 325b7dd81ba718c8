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

import "fmt"

// Fixed is a signed fixed-point number with 16 fractional bits (FDot16).
// It is used throughout the scan rasterizer to guarantee deterministic,
// order-independent summation of coverage contributions: float64
// arithmetic is not associative, so summing the same edge contributions
// in a different order can change the result by an ULP. Fixed addition
// and subtraction are exact integer operations, so summation order never
// matters.
type Fixed int32

// fixedShift is the number of fractional bits in Fixed.
const fixedShift = 16

// fixedOne is the Fixed representation of 1.0.
const fixedOne Fixed = 1 << fixedShift

// fixedHalf is the Fixed representation of 0.5.
const fixedHalf Fixed = fixedOne / 2

// FixedFromFloat32 converts a float32 to Fixed, rounding to the nearest
// 1/65536. It returns false if x is too large to represent (the caller is
// expected to surface this as CoordinateOverflow).
func FixedFromFloat32(x float32) (Fixed, bool) {
	f := float64(x) * float64(fixedOne)
	if f >= 1<<31 || f < -(1<<31) {
		return 0, false
	}
	if f >= 0 {
		f += 0.5
	} else {
		f -= 0.5
	}
	return Fixed(int32(f)), true
}

// FixedFromInt converts an int to Fixed exactly, or reports overflow.
func FixedFromInt(n int) (Fixed, bool) {
	v := int64(n) << fixedShift
	if v > int64(1<<31-1) || v < int64(-1<<31) {
		return 0, false
	}
	return Fixed(v), true
}

// ToFloat32 converts f to a float32.
func (f Fixed) ToFloat32() float32 {
	return float32(f) / float32(fixedOne)
}

// Floor returns the greatest integer value <= f, as a plain integer.
func (f Fixed) Floor() int32 {
	return int32(f >> fixedShift)
}

// Frac returns the fractional part of f, always in [0, 1) represented as
// a Fixed in [0, fixedOne).
func (f Fixed) Frac() Fixed {
	return f & (fixedOne - 1)
}

// Add returns f + g. Overflow wraps, matching int32 semantics; callers
// operating on already-validated path coordinates do not see wraparound
// in practice because FixedFromFloat32 rejects out-of-range inputs up
// front.
func (f Fixed) Add(g Fixed) Fixed { return f + g }

// Sub returns f - g.
func (f Fixed) Sub(g Fixed) Fixed { return f - g }

// Mul returns f * g, rounded to the nearest 1/65536, computed via a
// 64-bit intermediate to avoid overflow of the product.
func (f Fixed) Mul(g Fixed) Fixed {
	v := int64(f) * int64(g)
	if v < 0 {
		return -Fixed((-v + 1<<(fixedShift-1)) >> fixedShift)
	}
	return Fixed((v + 1<<(fixedShift-1)) >> fixedShift)
}

// MulInt returns f * n exactly (n is a plain integer scale factor, so no
// rounding is introduced).
func (f Fixed) MulInt(n int32) Fixed {
	return f * Fixed(n)
}

// FixedPt is a point with both coordinates in Fixed representation.
type FixedPt struct {
	X, Y Fixed
}

// fixedPtFromPt converts p to Fixed coordinates, reporting false if either
// coordinate overflows.
func fixedPtFromPt(p Pt) (FixedPt, bool) {
	x, ok := FixedFromFloat32(p.X)
	if !ok {
		return FixedPt{}, false
	}
	y, ok := FixedFromFloat32(p.Y)
	if !ok {
		return FixedPt{}, false
	}
	return FixedPt{X: x, Y: y}, true
}

func (f Fixed) String() string {
	if f >= 0 {
		return fmt.Sprintf("%d.%05d", int32(f)>>fixedShift, (int32(f)&(int32(fixedOne)-1))*100000/int32(fixedOne))
	}
	neg := -f
	return fmt.Sprintf("-%d.%05d", int32(neg)>>fixedShift, (int32(neg)&(int32(fixedOne)-1))*100000/int32(fixedOne))
}
