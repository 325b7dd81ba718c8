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

func TestNewPlotterRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewPlotter(0, 10); err == nil {
		t.Error("NewPlotter(0, 10) should report an error")
	}
	if _, err := NewPlotter(10, -1); err == nil {
		t.Error("NewPlotter(10, -1) should report an error")
	}
}

func TestPlotterFillUnitSquare(t *testing.T) {
	p, err := NewPlotter(8, 8)
	if err != nil {
		t.Fatalf("NewPlotter: %v", err)
	}
	matte, err := p.Fill(rectPath(4, 4, 5, 5), NonZero)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := matte.Pix[y*8+x]
			want := uint8(0)
			if x == 4 && y == 4 {
				want = 255
			}
			if got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPlotterFillEmptyPathReturnsWarning(t *testing.T) {
	p, err := NewPlotter(8, 8)
	if err != nil {
		t.Fatalf("NewPlotter: %v", err)
	}
	matte, err := p.Fill(NewPathBuilder().Path(), NonZero)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	for i, v := range matte.Pix {
		if v != 0 {
			t.Fatalf("pixel %d = %d, want 0 for an empty path", i, v)
		}
	}
	if w := p.LastWarning(); w == nil || w.Kind != WarningPathDegenerate {
		t.Errorf("LastWarning() = %v, want WarningPathDegenerate", w)
	}
}

func TestPlotterMatteBytesAreBounded(t *testing.T) {
	p, err := NewPlotter(32, 32)
	if err != nil {
		t.Fatalf("NewPlotter: %v", err)
	}
	star := NewPathBuilder().
		Move(Pt{16, 2}).Line(Pt{20, 12}).Line(Pt{30, 12}).Line(Pt{22, 19}).
		Line(Pt{26, 30}).Line(Pt{16, 23}).Line(Pt{6, 30}).Line(Pt{10, 19}).
		Line(Pt{2, 12}).Line(Pt{12, 12}).Close().
		Path()
	matte, err := p.Fill(star, NonZero)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	for i, v := range matte.Pix {
		if v > 255 { // uint8 can't exceed this, but documents the invariant
			t.Fatalf("pixel %d out of byte range: %d", i, v)
		}
	}
}

// TestTranslationEquivariance checks that translating a path by an
// integer number of pixels (via the Plotter's transform) translates the
// resulting matte by the same amount, with no change in the coverage
// pattern itself.
func TestTranslationEquivariance(t *testing.T) {
	tri := NewPathBuilder().Move(Pt{2, 2}).Line(Pt{10, 2}).Line(Pt{10, 8}).Close().Path()

	p1, _ := NewPlotter(32, 32)
	m1, err := p1.Fill(tri, NonZero)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	base := append([]uint8(nil), m1.Pix...)

	p2, _ := NewPlotter(32, 32)
	p2.SetTransform(Translate(5, 7))
	m2, err := p2.Fill(tri, NonZero)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	for y := 0; y < 32-7; y++ {
		for x := 0; x < 32-5; x++ {
			want := base[y*32+x]
			got := m2.Pix[(y+7)*32+(x+5)]
			if want != got {
				t.Fatalf("pixel (%d,%d) shifted = %d, want %d (untranslated pixel (%d,%d))", x+5, y+7, got, want, x, y)
			}
		}
	}
}

// TestWindingRuleDuality exercises two concentric, oppositely-wound
// squares: under NonZero the inner square's hole cancels (donut shape),
// while reversing one subpath's winding and using EvenOdd on the
// same-wound pair produces the same donut.
func TestWindingRuleDuality(t *testing.T) {
	outer := func(b *PathBuilder) {
		b.Move(Pt{4, 4}).Line(Pt{28, 4}).Line(Pt{28, 28}).Line(Pt{4, 28}).Close()
	}
	innerOpposite := func(b *PathBuilder) {
		// reversed winding relative to outer
		b.Move(Pt{12, 12}).Line(Pt{12, 20}).Line(Pt{20, 20}).Line(Pt{20, 12}).Close()
	}
	innerSame := func(b *PathBuilder) {
		b.Move(Pt{12, 12}).Line(Pt{20, 12}).Line(Pt{20, 20}).Line(Pt{12, 20}).Close()
	}

	b1 := NewPathBuilder()
	outer(b1)
	innerOpposite(b1)
	p1, _ := NewPlotter(32, 32)
	m1, err := p1.Fill(b1.Path(), NonZero)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	b2 := NewPathBuilder()
	outer(b2)
	innerSame(b2)
	p2, _ := NewPlotter(32, 32)
	m2, err := p2.Fill(b2.Path(), EvenOdd)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if m1.Pix[16*32+16] != 0 {
		t.Errorf("NonZero donut center = %d, want 0 (hole)", m1.Pix[16*32+16])
	}
	if m2.Pix[16*32+16] != 0 {
		t.Errorf("EvenOdd donut center = %d, want 0 (hole)", m2.Pix[16*32+16])
	}
	if m1.Pix[8*32+8] == 0 {
		t.Errorf("NonZero donut ring = 0, want filled")
	}
	if m2.Pix[8*32+8] == 0 {
		t.Errorf("EvenOdd donut ring = 0, want filled")
	}
}

// TestSameWindingSquaresDivergeByFillRule exercises two nested squares
// wound the same direction, traced as a single path: the overlap (the
// inner square's area) accumulates a winding number of 2. NonZero fills
// it same as the surrounding ring; EvenOdd treats winding 2 as even and
// punches a hole there, the canonical NonZero/EvenOdd divergence.
func TestSameWindingSquaresDivergeByFillRule(t *testing.T) {
	b := NewPathBuilder()
	b.Move(Pt{4, 4}).Line(Pt{28, 4}).Line(Pt{28, 28}).Line(Pt{4, 28}).Close()
	b.Move(Pt{12, 12}).Line(Pt{20, 12}).Line(Pt{20, 20}).Line(Pt{12, 20}).Close()
	path := b.Path()

	p, _ := NewPlotter(32, 32)
	nz, err := p.Fill(path, NonZero)
	if err != nil {
		t.Fatalf("Fill NonZero: %v", err)
	}
	p2, _ := NewPlotter(32, 32)
	eo, err := p2.Fill(path, EvenOdd)
	if err != nil {
		t.Fatalf("Fill EvenOdd: %v", err)
	}

	if nz.Pix[16*32+16] == 0 {
		t.Error("NonZero: overlap region (winding 2) should be filled")
	}
	if eo.Pix[16*32+16] != 0 {
		t.Errorf("EvenOdd: overlap region (winding 2) = %d, want 0 (even winding is a hole)", eo.Pix[16*32+16])
	}
	if nz.Pix[8*32+8] == 0 {
		t.Error("NonZero: outer ring (winding 1) should be filled")
	}
	if eo.Pix[8*32+8] == 0 {
		t.Error("EvenOdd: outer ring (winding 1) should be filled")
	}
}

func TestClearMatteDoesNotReallocate(t *testing.T) {
	p, _ := NewPlotter(8, 8)
	_, err := p.Fill(rectPath(0, 0, 4, 4), NonZero)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	before := &p.matte.Pix[0]
	p.ClearMatte()
	after := &p.matte.Pix[0]
	if before != after {
		t.Error("ClearMatte reallocated the backing array")
	}
	for i, v := range p.matte.Pix {
		if v != 0 {
			t.Fatalf("pixel %d = %d after ClearMatte, want 0", i, v)
		}
	}
}
