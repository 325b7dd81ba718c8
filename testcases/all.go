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

// All groups every TestCase table by category. Keys are stable and may
// be used to select a subset of cases to run.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"subpath":   subpathCases,
	"ctm":       ctmCases,
	"dash":      dashCases,
	"precision": precisionCases,
	"complex":   complexCases,
}

// Flat returns every TestCase across all categories, in a stable order.
func Flat() []TestCase {
	order := []string{"fill", "stroke", "curve", "subpath", "ctm", "dash", "precision", "complex"}
	var out []TestCase
	for _, k := range order {
		out = append(out, All[k]...)
	}
	return out
}
