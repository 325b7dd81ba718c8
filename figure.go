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

import "sort"

// Vid indexes a vertex inside a Figure's point array.
type Vid int32

// Winding is the orientation of a closed subpath.
type Winding int8

const (
	// WindingNormal is the orientation whose signed area (in the y-down
	// device coordinate system) is non-negative; degenerate (collinear)
	// vertex triples tie to WindingNormal.
	WindingNormal Winding = 1
	// WindingWiddershins is the opposite orientation.
	WindingWiddershins Winding = -1
)

// subpathRecord describes one closed subpath's vertex range within a
// Figure's points slice.
type subpathRecord struct {
	start, end int32 // points[start:end], at least 3 entries
	winding    Winding
}

// Figure is the vertex/edge structure the scan rasterizer consumes: every
// subpath in the source path, flattened to line segments, classified by
// winding, and reduced to a single array of vertices sorted by (y, x) for
// active-edge maintenance.
type Figure struct {
	points   []FixedPt
	subpaths []subpathRecord
	sorted   []Vid
	overflow bool
}

// BuildFigure flattens p (applying transform t first, if t is not the
// identity) and assembles a Figure ready for scan conversion. Subpaths
// with fewer than 3 distinct vertices are discarded silently (this is the
// PathDegenerate condition at the whole-figure level when it leaves no
// subpaths at all).
func BuildFigure(p Path, t Transform, tol float32) (*Figure, error) {
	fig := &Figure{}
	var cur, subpathStart Pt
	haveCur := false
	var pending []Pt // points accumulated for the in-progress subpath

	flushSubpath := func() {
		pending = dedupClosingPoint(pending)
		if len(distinctPoints(pending)) < 3 {
			pending = pending[:0]
			return
		}
		start := int32(len(fig.points))
		for _, pt := range pending {
			fp, ok := fixedPtFromPt(pt)
			if !ok {
				// Record the overflow; BuildFigure returns the error once
				// the whole path has been walked.
				fig.overflow = true
				fp = FixedPt{}
			}
			fig.points = append(fig.points, fp)
		}
		end := int32(len(fig.points))
		w := subpathWinding(pending)
		fig.subpaths = append(fig.subpaths, subpathRecord{start: start, end: end, winding: w})
		pending = pending[:0]
	}

	apply := func(pt Pt) Pt {
		if t.IsIdentity() {
			return pt
		}
		return t.Apply(pt)
	}

	emit := func(pt Pt) { pending = append(pending, pt) }

	for op := range p {
		switch op.Kind {
		case OpMove:
			if haveCur {
				flushSubpath()
			}
			cur = apply(op.P1)
			subpathStart = cur
			haveCur = true
			pending = append(pending, cur)
		case OpLine:
			if !haveCur {
				continue
			}
			np := apply(op.P1)
			emit(np)
			cur = np
		case OpQuad:
			if !haveCur {
				continue
			}
			c := apply(op.P1)
			e := apply(op.P2)
			flattenQuad(cur, c, e, tol, 0, emit)
			cur = e
		case OpCubic:
			if !haveCur {
				continue
			}
			c1 := apply(op.P1)
			c2 := apply(op.P2)
			e := apply(op.P3)
			flattenCubic(cur, c1, c2, e, tol, 0, emit)
			cur = e
		case OpPenWidth:
			// Pen width has no geometric effect on a fill figure.
		case OpClose:
			if !haveCur {
				// Close-before-Move: no-op, per spec.
				continue
			}
			if cur != subpathStart {
				emit(subpathStart)
				cur = subpathStart
			}
			flushSubpath()
			haveCur = false
		}
	}
	if haveCur {
		flushSubpath()
	}

	if fig.overflow {
		return nil, newOverflowError("BuildFigure")
	}

	fig.sorted = make([]Vid, len(fig.points))
	for i := range fig.sorted {
		fig.sorted[i] = Vid(i)
	}
	sortVidsByYX(fig.sorted, fig.points)

	return fig, nil
}

// SubpathCount reports how many (non-degenerate) subpaths fig contains.
func (f *Figure) SubpathCount() int { return len(f.subpaths) }

// SubpathWinding reports the orientation of the i'th subpath, as
// classified by subpathWinding when the Figure was built. This
// classification is not consulted by the scan rasterizer itself (see
// the Open Question entry on fill-rule sign conventions in DESIGN.md);
// it is exposed for callers that want to detect the "hole via
// oppositely-wound subpath" idiom, e.g. for diagnostic logging.
func (f *Figure) SubpathWinding(i int) Winding { return f.subpaths[i].winding }

// MixedWinding reports whether fig contains both Normal- and
// Widdershins-wound subpaths, the signature of a path that relies on
// opposite winding (rather than EvenOdd) to punch a hole.
func (f *Figure) MixedWinding() bool {
	if len(f.subpaths) < 2 {
		return false
	}
	first := f.subpaths[0].winding
	for _, sp := range f.subpaths[1:] {
		if sp.winding != first {
			return true
		}
	}
	return false
}

func dedupClosingPoint(pts []Pt) []Pt {
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		return pts[:len(pts)-1]
	}
	return pts
}

func distinctPoints(pts []Pt) []Pt {
	seen := make([]Pt, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, s := range seen {
			if s == p {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, p)
		}
	}
	return seen
}

// sortVidsByYX orders ids by the (y, then x) coordinate of the vertex
// they reference, the order the scan rasterizer walks vertices in as it
// maintains the active-edge set.
func sortVidsByYX(ids []Vid, points []FixedPt) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := points[ids[i]], points[ids[j]]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// subpathWinding determines the orientation of a closed polygon by
// inspecting the signed turn at its lowest-(y, then x) vertex, the
// classic robust way to classify orientation without summing signed area
// across every edge (summing is equivalent but more sensitive to
// cancellation for large, nearly-balanced polygons).
func subpathWinding(pts []Pt) Winding {
	n := len(pts)
	if n < 3 {
		return WindingNormal
	}
	lo := 0
	for i := 1; i < n; i++ {
		if pts[i].Y < pts[lo].Y || (pts[i].Y == pts[lo].Y && pts[i].X < pts[lo].X) {
			lo = i
		}
	}
	prev := pts[(lo-1+n)%n]
	cur := pts[lo]
	next := pts[(lo+1)%n]
	e1x, e1y := cur.X-prev.X, cur.Y-prev.Y
	e2x, e2y := next.X-cur.X, next.Y-cur.Y
	cross := e1x*e2y - e1y*e2x
	if cross < 0 {
		return WindingWiddershins
	}
	return WindingNormal
}
