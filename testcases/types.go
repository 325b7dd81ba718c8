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

// Package testcases holds the table-driven path fixtures shared by the
// vraster test suite: named paths paired with the fill or stroke
// operation to apply to them, grouped by category.
package testcases

import "vraster"

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string      // lowercase a-z, 0-9 and _ only
	Path   vraster.Path // the geometry to render
	Width  int         // matte width in pixels
	Height int         // matte height in pixels
	Op     Operation   // fill or stroke
	CTM    vraster.Transform // zero value means the identity transform
}

// Operation is the rendering operation to apply to a TestCase's path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill operation.
type Fill struct {
	Rule vraster.FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float32
	Cap        vraster.CapStyle
	Join       vraster.JoinStyle
	MiterLimit float32
	Dash       []float32
	DashPhase  float32
}

func (Stroke) isOperation() {}

func pt(x, y float32) vraster.Pt { return vraster.Pt{X: x, Y: y} }
