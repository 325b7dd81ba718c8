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

// FillRule selects how the scan rasterizer resolves the interior of a
// figure from per-pixel signed winding contributions.
type FillRule int

const (
	// NonZero fills any pixel whose accumulated winding number is
	// non-zero.
	NonZero FillRule = iota
	// EvenOdd fills a pixel when its accumulated winding number is odd.
	EvenOdd
)

// scanEdge is one non-horizontal edge of a figure, normalized so that
// yTopF < yBotF. dir is +1 if the edge's original direction (as it
// appears in the path) increased in y, -1 if it decreased; this is the
// signed direction convention the fill-rule accumulation depends on.
//
// Edge geometry (xTopF, dxdy) is evaluated in ordinary float64 — it is a
// pure function of two already-fixed-point vertex coordinates, so no
// summation-order ambiguity exists here. Determinism matters only once
// contributions from multiple edges are combined, which is why that step
// (area/cover accumulation below) is done in Fixed.
type scanEdge struct {
	yTopF, yBotF float64
	xTopF, dxdy  float64
	dir          float64
}

// ScanState holds the reusable buffers the scan rasterizer needs to
// convert one Figure into matte coverage: the active-edge set, and the
// per-row signed-area accumulation buffers.
type ScanState struct {
	active  []int
	area    []Fixed
	cover   []Fixed
	rowSums []Fixed
	width   int
}

// newScanState allocates a ScanState sized for a matte width of w.
func newScanState(w int) *ScanState {
	return &ScanState{
		active:  make([]int, 0, 16),
		area:    make([]Fixed, w),
		cover:   make([]Fixed, w),
		rowSums: make([]Fixed, w),
		width:   w,
	}
}

// reset clears a ScanState for reuse against a possibly different width.
func (s *ScanState) reset(w int) {
	s.active = s.active[:0]
	if cap(s.area) < w {
		s.area = make([]Fixed, w)
		s.cover = make([]Fixed, w)
		s.rowSums = make([]Fixed, w)
	} else {
		s.area = s.area[:w]
		s.cover = s.cover[:w]
		s.rowSums = s.rowSums[:w]
	}
	s.width = w
}

// buildScanEdges extracts the non-horizontal edges of fig and, for each
// vertex, the list of edges for which that vertex is the topmost
// endpoint (used to drive active-edge insertion as the sorted vertex
// list is swept).
func buildScanEdges(fig *Figure) (edges []scanEdge, startsAt [][]int) {
	startsAt = make([][]int, len(fig.points))
	for _, sp := range fig.subpaths {
		n := sp.end - sp.start
		for i := int32(0); i < n; i++ {
			ai := sp.start + i
			bi := sp.start + (i+1)%n
			a, b := fig.points[ai], fig.points[bi]
			if a.Y == b.Y {
				continue // horizontal edges never affect scan conversion
			}
			var top, bot FixedPt
			var topVid int32
			var dir float64
			if a.Y < b.Y {
				top, bot, topVid, dir = a, b, ai, 1
			} else {
				top, bot, topVid, dir = b, a, bi, -1
			}
			yTopF := fixedToF64(top.Y)
			yBotF := fixedToF64(bot.Y)
			xTopF := fixedToF64(top.X)
			xBotF := fixedToF64(bot.X)
			idx := len(edges)
			edges = append(edges, scanEdge{
				yTopF: yTopF,
				yBotF: yBotF,
				xTopF: xTopF,
				dxdy:  (xBotF - xTopF) / (yBotF - yTopF),
				dir:   dir,
			})
			startsAt[topVid] = append(startsAt[topVid], idx)
		}
	}
	return edges, startsAt
}

func fixedToF64(f Fixed) float64 { return float64(f) / float64(fixedOne) }

// figureRowRange returns the half-open pixel row range [minRow, maxRow)
// the figure can possibly touch, clipped to [0, h).
func figureRowRange(fig *Figure, h int) (minRow, maxRow int) {
	if len(fig.points) == 0 {
		return 0, 0
	}
	minY, maxY := fig.points[0].Y, fig.points[0].Y
	for _, p := range fig.points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	minRow = int(minY.Floor())
	maxRow = int(maxY.Floor()) + 1
	if minRow < 0 {
		minRow = 0
	}
	if maxRow > h {
		maxRow = h
	}
	if minRow > maxRow {
		minRow = maxRow
	}
	return
}

// rasterizeFigure scans fig row by row, maintaining the active-edge set
// via a traversal of fig.sorted (the vid-sorted vertex list), and writes
// resolved 8-bit alpha coverage into out (row-major, stride bytes per
// row, width w, height h).
//
// Per row, every active edge contributes a signed-area "cell" (the exact
// trapezoidal fraction of that pixel lying to the fill side of the edge)
// to s.area, and its full sub-row height to s.cover at the same column;
// s.cover of column x only ever affects columns strictly to the right of
// x. This is the exit-remainder rule: an edge that exits a cell partway
// through leaves its remaining, un-localized contribution to propagate
// rightward via cover rather than being rounded away, which is what
// makes a full row's contributions sum to exactly the figure's true
// coverage (the row-sum-closure invariant) regardless of how many edges
// cross it.
func rasterizeFigure(fig *Figure, w, h int, rule FillRule, out []uint8, stride int) {
	edges, startsAt := buildScanEdges(fig)
	if len(edges) == 0 {
		return
	}
	s := newScanState(w)
	minRow, maxRow := figureRowRange(fig, h)
	vidPtr := 0

	for row := minRow; row < maxRow; row++ {
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
				accumulateEdgeRow(e, ya, yb, s.area, s.cover, &preSum, w)
			}
			if e.yBotF > rowBotF {
				kept = append(kept, ei)
			}
		}
		s.active = kept

		sum := preSum
		for x := 0; x < w; x++ {
			s.rowSums[x] = s.area[x].Add(sum)
			sum = sum.Add(s.cover[x])
		}

		base := row * stride
		switch rule {
		case EvenOdd:
			AccumulateEvenOdd(s.rowSums, out[base:base+w])
		default:
			AccumulateNonZero(s.rowSums, out[base:base+w])
		}
	}
}

// accumulateEdgeRow adds e's contribution within [ya, yb) (already
// clipped to the current pixel row and to e's own y-range) into area and
// cover, splitting at every integer x boundary the edge crosses so each
// touched column gets its exact trapezoidal share.
func accumulateEdgeRow(e *scanEdge, ya, yb float64, area, cover []Fixed, preSum *Fixed, w int) {
	xa := e.xTopF + e.dxdy*(ya-e.yTopF)
	xb := e.xTopF + e.dxdy*(yb-e.yTopF)

	xMin, xMax := xa, xb
	if xMax < xMin {
		xMin, xMax = xMax, xMin
	}
	loCol := int(math.Floor(xMin))
	hiCol := int(math.Floor(xMax))
	if hiCol < loCol {
		hiCol = loCol
	}
	if xMin == xMax {
		// A vertical edge stays inside one column: its whole height lands
		// there, weighted by its x offset within the cell.
		addCell(area, cover, preSum, loCol, e.dir, yb-ya, xMin-float64(loCol), w)
		return
	}

	for c := loCol; c <= hiCol; c++ {
		xL := math.Max(xMin, float64(c))
		xR := math.Min(xMax, float64(c+1))
		if xR <= xL {
			continue
		}
		var yL, yR float64
		if xa == xb {
			yL, yR = ya, yb
		} else {
			yL = ya + (xL-xa)/(xb-xa)*(yb-ya)
			yR = ya + (xR-xa)/(xb-xa)*(yb-ya)
		}
		dy := yR - yL
		if dy < 0 {
			dy = -dy
		}
		frac := ((xL - float64(c)) + (xR - float64(c))) / 2
		addCell(area, cover, preSum, c, e.dir, dy, frac, w)
	}
}

func addCell(area, cover []Fixed, preSum *Fixed, col int, dir, dy, frac float64, w int) {
	if col < 0 {
		v, _ := FixedFromFloat32(float32(dir * dy))
		*preSum = preSum.Add(v)
		return
	}
	if col >= w {
		return
	}
	aContrib, _ := FixedFromFloat32(float32(dir * dy * (1 - frac)))
	cContrib, _ := FixedFromFloat32(float32(dir * dy))
	area[col] = area[col].Add(aContrib)
	cover[col] = cover[col].Add(cContrib)
}
