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

import "math"

func sincos(theta float64) (s, c float64) { return math.Sincos(theta) }
func tan(theta float64) float64           { return math.Tan(theta) }
func sqrtf64(x float64) float64           { return math.Sqrt(x) }
func atan2_64(y, x float64) float64       { return math.Atan2(y, x) }
