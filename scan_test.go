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

import (
	"math"
	"testing"
)

// TestTriangleCoverage verifies exact coverage values for a simple
// triangle. The triangle (0,0)->(10,0)->(10,1)->close has a diagonal edge
// y = x/10. Each pixel x should have coverage (2x+1)/20: 0.05, 0.15, ...,
// 0.95.
func TestTriangleCoverage(t *testing.T) {
	p := NewPathBuilder().
		Move(Pt{0, 0}).Line(Pt{10, 0}).Line(Pt{10, 1}).Close().
		Path()

	fig, err := BuildFigure(p, Identity, 0.5)
	if err != nil {
		t.Fatalf("BuildFigure: %v", err)
	}

	out := make([]uint8, 10)
	rasterizeFigure(fig, 10, 1, NonZero, out, 10)

	const epsilon = 2.0 / 255.0 // two 8-bit quantization steps of slack
	for x := 0; x < 10; x++ {
		want := (float64(2*x+1) / 20.0) * 255
		got := float64(out[x])
		if math.Abs(got-want) > epsilon*255 {
			t.Errorf("pixel %d: coverage = %d, want ~%.1f", x, out[x], want)
		}
	}
}

func TestRasterizeFigureUnitSquareFullCoverage(t *testing.T) {
	p := rectPath(2, 2, 3, 3)
	fig, err := BuildFigure(p, Identity, 0.5)
	if err != nil {
		t.Fatalf("BuildFigure: %v", err)
	}
	out := make([]uint8, 8*8)
	rasterizeFigure(fig, 8, 8, NonZero, out, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := out[y*8+x]
			if x == 2 && y == 2 {
				if got != 255 {
					t.Errorf("pixel (2,2) = %d, want 255", got)
				}
			} else if got != 0 {
				t.Errorf("pixel (%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
}

func TestRasterizeFigureHalfPixelShift(t *testing.T) {
	// A unit square shifted by half a pixel in both axes spreads its
	// coverage over a 2x2 neighborhood, each at 25%.
	p := rectPath(2.5, 2.5, 3.5, 3.5)
	fig, err := BuildFigure(p, Identity, 0.5)
	if err != nil {
		t.Fatalf("BuildFigure: %v", err)
	}
	out := make([]uint8, 8*8)
	rasterizeFigure(fig, 8, 8, NonZero, out, 8)

	const want = 255 / 4
	const tol = 3
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		got := out[c[1]*8+c[0]]
		if diff := int(got) - want; diff > tol || diff < -tol {
			t.Errorf("pixel (%d,%d) = %d, want ~%d", c[0], c[1], got, want)
		}
	}

	var total int
	for _, v := range out {
		total += int(v)
	}
	wantTotal := 255 // one full pixel's worth of coverage, in total
	if diff := total - wantTotal; diff > tol*4 || diff < -tol*4 {
		t.Errorf("total coverage = %d, want ~%d", total, wantTotal)
	}
}

// TestRowSumClosure checks the row-sum-closure invariant: for a closed
// figure entirely inside the matte, the raw signed-area row sums (before
// fill-rule resolution) return to exactly zero at the row's right edge,
// since cover contributions from a closed figure's edges must cancel.
func TestRowSumClosure(t *testing.T) {
	p := rectPath(2, 2, 6, 5)
	fig, err := BuildFigure(p, Identity, 0.5)
	if err != nil {
		t.Fatalf("BuildFigure: %v", err)
	}

	edges, startsAt := buildScanEdges(fig)
	s := newScanState(10)
	vidPtr := 0
	for row := 0; row < 10; row++ {
		rowTopF := float64(row)
		rowBotF := float64(row + 1)
		for vidPtr < len(fig.sorted) {
			v := fig.sorted[vidPtr]
			if fixedToF64(fig.points[v].Y) >= rowBotF {
				break
			}
			for _, ei := range startsAt[v] {
				s.active = append(s.active, ei)
			}
			vidPtr++
		}
		for i := range s.area {
			s.area[i] = 0
			s.cover[i] = 0
		}
		var preSum Fixed
		kept := s.active[:0]
		for _, ei := range s.active {
			e := &edges[ei]
			ya := math.Max(rowTopF, e.yTopF)
			yb := math.Min(rowBotF, e.yBotF)
			if ya < yb {
				accumulateEdgeRow(e, ya, yb, s.area, s.cover, &preSum, 10)
			}
			if e.yBotF > rowBotF {
				kept = append(kept, ei)
			}
		}
		s.active = kept

		var sum Fixed = preSum
		for x := 0; x < 10; x++ {
			sum = sum.Add(s.cover[x])
		}
		if sum != 0 {
			t.Errorf("row %d: cover sum at the row's right edge = %v, want 0", row, sum)
		}
	}
}

func TestAccumulateNonZeroZeroesSource(t *testing.T) {
	src := []Fixed{fixedOne, fixedOne / 2, -fixedOne}
	dst := make([]uint8, len(src))
	AccumulateNonZero(src, dst)
	for i, v := range src {
		if v != 0 {
			t.Errorf("src[%d] = %v after accumulation, want 0", i, v)
		}
	}
	if dst[0] != 255 {
		t.Errorf("dst[0] = %d, want 255", dst[0])
	}
	if dst[2] != 255 {
		t.Errorf("dst[2] = %d, want 255 (abs value of negative winding)", dst[2])
	}
}
