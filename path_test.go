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

func TestPathBuilderRestartable(t *testing.T) {
	p := NewPathBuilder().
		Move(Pt{0, 0}).
		Line(Pt{10, 0}).
		Quad(Pt{20, 0}, Pt{20, 10}).
		Cubic(Pt{20, 20}, Pt{10, 20}, Pt{0, 20}).
		PenWidth(2).
		Close().
		Path()

	first := collectOps(p)
	second := collectOps(p)
	if len(first) != len(second) {
		t.Fatalf("ranging twice produced different lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("op %d differs between iterations: %+v vs %+v", i, first[i], second[i])
		}
	}

	wantKinds := []OpKind{OpMove, OpLine, OpQuad, OpCubic, OpPenWidth, OpClose}
	if len(first) != len(wantKinds) {
		t.Fatalf("got %d ops, want %d", len(first), len(wantKinds))
	}
	for i, k := range wantKinds {
		if first[i].Kind != k {
			t.Errorf("op %d: kind = %v, want %v", i, first[i].Kind, k)
		}
	}
}

func TestPathEmpty(t *testing.T) {
	p := NewPathBuilder().Path()
	ops := collectOps(p)
	if len(ops) != 0 {
		t.Fatalf("empty builder produced %d ops", len(ops))
	}
}

func TestPathEarlyStop(t *testing.T) {
	p := NewPathBuilder().Move(Pt{0, 0}).Line(Pt{1, 1}).Line(Pt{2, 2}).Close().Path()
	var seen int
	for range p.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("yield did not stop early: saw %d ops", seen)
	}
}
