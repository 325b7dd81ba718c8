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

	"golang.org/x/image/math/f32"
)

// JoinStyle selects how the stroker fills the outer corner between two
// consecutive stroked segments.
type JoinStyle int

const (
	JoinMiter JoinStyle = iota
	JoinBevel
	JoinRound
)

// CapStyle selects how the stroker terminates an open subpath.
type CapStyle int

const (
	CapButt CapStyle = iota
	CapRound
	CapSquare
)

// Stroker rewrites a Path into a new Path describing the filled outline
// of stroking the original path with the configured pen. The result is
// meant to be filled with the NonZero rule: each input subpath becomes
// one or two closed output subpaths (two, nested with opposite winding,
// for a closed input subpath; one for an open input subpath, going out
// one side and back the other with caps at each end).
type Stroker struct {
	PenWidth   float32
	Join       JoinStyle
	Cap        CapStyle
	MiterLimit float32
	Dash       []float32
	DashPhase  float32
	Flatness   float32
}

// NewStroker returns a Stroker with the spec's default pen: width 1,
// miter joins, butt caps, miter limit 10, no dashing.
func NewStroker() *Stroker {
	return &Stroker{
		PenWidth:   1,
		Join:       JoinMiter,
		Cap:        CapButt,
		MiterLimit: defaultMiterLimit,
		Flatness:   defaultFlatness,
	}
}

const defaultMiterLimit float32 = 10

type wideSubpath struct {
	pts    []WidePt
	closed bool
}

// Stroke flattens p (applying t) with per-vertex pen-width interpolation
// and builds the stroked outline as a new Path.
func (s *Stroker) Stroke(p Path, t Transform) Path {
	subs := s.flattenWide(p, t)
	if len(s.Dash) > 0 {
		subs = applyDash(subs, s.Dash, s.DashPhase)
	}
	b := NewPathBuilder()
	for _, sp := range subs {
		s.emitOutline(b, sp)
	}
	return b.Path()
}

func (s *Stroker) tol() float32 {
	if s.Flatness > 0 {
		return s.Flatness
	}
	return defaultFlatness
}

// flattenWide walks p, applying t, and produces one wideSubpath per
// input subpath, with pen width linearly interpolated along the path
// parameter: a PenWidth op sets the target width that the *next* emitted
// vertex reaches, linearly ramping from the width at the previous
// vertex. Closing a subpath is treated as an ordinary segment back to
// the subpath's start point, its own parameter span counted as one unit
// of length like any other segment.
func (s *Stroker) flattenWide(p Path, t Transform) []wideSubpath {
	apply := func(pt Pt) Pt {
		if t.IsIdentity() {
			return pt
		}
		return t.Apply(pt)
	}

	var subs []wideSubpath
	var cur Pt
	var curWidth, targetWidth float32 = s.PenWidth, s.PenWidth
	var subpathStart Pt
	haveCur := false

	finish := func(closed bool) {
		if len(subs) == 0 {
			return
		}
		subs[len(subs)-1].closed = closed
	}

	for op := range p {
		switch op.Kind {
		case OpMove:
			if haveCur {
				finish(false)
			}
			cur = apply(op.P1)
			subpathStart = cur
			curWidth = targetWidth
			haveCur = true
			subs = append(subs, wideSubpath{pts: []WidePt{{Pt: cur, Width: curWidth}}})
		case OpPenWidth:
			targetWidth = op.Width
		case OpLine:
			if !haveCur {
				continue
			}
			np := apply(op.P1)
			curWidth = targetWidth
			sp := &subs[len(subs)-1]
			sp.pts = append(sp.pts, WidePt{Pt: np, Width: curWidth})
			cur = np
		case OpQuad:
			if !haveCur {
				continue
			}
			c := apply(op.P1)
			e := apply(op.P2)
			sp := &subs[len(subs)-1]
			w0, w1 := curWidth, targetWidth
			flattenQuadW(cur, c, e, w0, w1, s.tol(), 0, func(pt Pt, w float32) {
				sp.pts = append(sp.pts, WidePt{Pt: pt, Width: w})
			})
			cur = e
			curWidth = targetWidth
		case OpCubic:
			if !haveCur {
				continue
			}
			c1 := apply(op.P1)
			c2 := apply(op.P2)
			e := apply(op.P3)
			sp := &subs[len(subs)-1]
			w0, w1 := curWidth, targetWidth
			flattenCubicW(cur, c1, c2, e, w0, w1, s.tol(), 0, func(pt Pt, w float32) {
				sp.pts = append(sp.pts, WidePt{Pt: pt, Width: w})
			})
			cur = e
			curWidth = targetWidth
		case OpClose:
			if !haveCur {
				continue
			}
			if cur != subpathStart {
				sp := &subs[len(subs)-1]
				curWidth = targetWidth
				sp.pts = append(sp.pts, WidePt{Pt: subpathStart, Width: curWidth})
				cur = subpathStart
			}
			finish(true)
			haveCur = false
		}
	}
	if haveCur {
		finish(false)
	}
	return subs
}

// flattenQuadW is flattenQuad with linear pen-width interpolation
// carried alongside the geometric subdivision. Because width is an
// affine function of the curve parameter t, and De Casteljau subdivision
// always splits at the parameter midpoint, the width at the split point
// is exactly the average of the two endpoint widths — no separate
// t-tracking is needed.
func flattenQuadW(p0, p1, p2 Pt, w0, w1, tol float32, depth int, emit func(Pt, float32)) {
	if depth >= maxFlattenDepth || quadFlatEnough(p0, p1, p2, tol) {
		emit(p2, w1)
		return
	}
	q1 := midpoint(p0, p1)
	q2 := midpoint(p1, p2)
	r0 := midpoint(q1, q2)
	wm := (w0 + w1) / 2
	flattenQuadW(p0, q1, r0, w0, wm, tol, depth+1, emit)
	flattenQuadW(r0, q2, p2, wm, w1, tol, depth+1, emit)
}

func flattenCubicW(p0, p1, p2, p3 Pt, w0, w1, tol float32, depth int, emit func(Pt, float32)) {
	if depth >= maxFlattenDepth || cubicFlatEnough(p0, p1, p2, p3, tol) {
		emit(p3, w1)
		return
	}
	q1 := midpoint(p0, p1)
	q2 := midpoint(p1, p2)
	q3 := midpoint(p2, p3)
	r1 := midpoint(q1, q2)
	r2 := midpoint(q2, q3)
	s0 := midpoint(r1, r2)
	wm := (w0 + w1) / 2
	flattenCubicW(p0, q1, r1, s0, w0, wm, tol, depth+1, emit)
	flattenCubicW(s0, r2, q3, p3, wm, w1, tol, depth+1, emit)
}

// emitOutline appends the closed contour(s) for one stroked subpath to b.
func (s *Stroker) emitOutline(b *PathBuilder, sp wideSubpath) {
	pts := dedupWide(sp.pts)
	if len(pts) < 2 {
		if len(pts) == 1 && sp.closed {
			// Degenerate closed subpath: if the cap is round, this is a
			// dot; otherwise it contributes nothing.
			if s.Cap == CapRound {
				emitCircle(b, pts[0].Pt, pts[0].Width/2)
			}
		}
		return
	}

	if sp.closed {
		right := offsetSide(pts, 1, true, s.Join, s.MiterLimit)
		left := offsetSide(pts, -1, true, s.Join, s.MiterLimit)
		emitClosedPolygon(b, right)
		emitClosedPolygon(b, reversePts(left))
		return
	}

	right := offsetSide(pts, 1, false, s.Join, s.MiterLimit)
	left := offsetSide(pts, -1, false, s.Join, s.MiterLimit)
	if len(right) == 0 || len(left) == 0 {
		return
	}

	n := len(pts)
	tEnd := segTangent(pts[n-2].Pt, pts[n-1].Pt)
	tStart := segTangent(pts[0].Pt, pts[1].Pt)

	contour := make([]Pt, 0, len(right)+len(left)+8)
	contour = append(contour, right...)
	contour = append(contour, capPoints(pts[n-1].Pt, pts[n-1].Width/2, tEnd, s.Cap)...)
	contour = append(contour, reversePts(left)...)
	contour = append(contour, capPoints(pts[0].Pt, pts[0].Width/2, vecScale(tStart, -1), s.Cap)...)

	emitClosedPolygon(b, contour)
}

func dedupWide(pts []WidePt) []WidePt {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p.Pt != pts[i-1].Pt {
			out = append(out, p)
		}
	}
	return out
}

func emitClosedPolygon(b *PathBuilder, pts []Pt) {
	if len(pts) < 3 {
		return
	}
	b.Move(pts[0])
	for _, p := range pts[1:] {
		b.Line(p)
	}
	b.Close()
}

func emitCircle(b *PathBuilder, center Pt, r float32) {
	if r <= 0 {
		return
	}
	const steps = 16
	b.Move(Pt{center.X + r, center.Y})
	for k := 1; k < steps; k++ {
		a := 2 * math.Pi * float64(k) / steps
		b.Line(Pt{center.X + r*float32(math.Cos(a)), center.Y + r*float32(math.Sin(a))})
	}
	b.Close()
}

func reversePts(pts []Pt) []Pt {
	out := make([]Pt, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func segTangent(a, b Pt) f32.Vec2 {
	return vecNormalize(vecSub(b.Vec2(), a.Vec2()))
}

// offsetSide computes one side's offset polyline for pts at the given
// signed distance direction (+1 or -1, meaning the pen-width/2-scaled
// normal is added or subtracted). At a convex ("outer") corner it
// inserts join geometry (miter, bevel, or round fan); at a concave
// ("inner") corner it relies on the NonZero fill rule to absorb the
// resulting small self-overlap and just emits both raw offset points,
// without computing their exact intersection.
func offsetSide(pts []WidePt, sign float32, closed bool, join JoinStyle, miterLimit float32) []Pt {
	n := len(pts)
	if n < 2 {
		return nil
	}
	segCount := n - 1
	if closed {
		segCount = n
	}
	normals := make([]f32.Vec2, segCount)
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		t := segTangent(a.Pt, b.Pt)
		normals[i] = vecPerp(t)
	}

	emitPoint := func(base Pt, normal f32.Vec2, hw float32) Pt {
		return PtFromVec2(vecAdd(base.Vec2(), vecScale(normal, sign*hw)))
	}

	var out []Pt
	for i := 0; i < n; i++ {
		hasIn := i > 0 || closed
		hasOut := i < n-1 || closed
		a := pts[i]
		hw := a.Width / 2

		switch {
		case !hasIn && !hasOut:
			// single point, nothing to offset
		case !hasIn:
			out = append(out, emitPoint(a.Pt, normals[i%segCount], hw))
		case !hasOut:
			inSeg := (i - 1 + segCount) % segCount
			out = append(out, emitPoint(a.Pt, normals[inSeg], hw))
		default:
			inSeg := (i - 1 + segCount) % segCount
			outSeg := i % segCount
			nIn := normals[inSeg]
			nOut := normals[outSeg]
			if nIn == nOut {
				out = append(out, emitPoint(a.Pt, nIn, hw))
				continue
			}
			tIn := f32.Vec2{nIn[1], -nIn[0]}
			tOut := f32.Vec2{nOut[1], -nOut[0]}
			crossSigned := tIn[0]*tOut[1] - tIn[1]*tOut[0]
			p0 := emitPoint(a.Pt, nIn, hw)
			p1 := emitPoint(a.Pt, nOut, hw)
			if sign*crossSigned > 0 {
				// inner (concave) corner: no join geometry needed
				out = append(out, p0, p1)
				continue
			}
			switch join {
			case JoinBevel:
				out = append(out, p0, p1)
			case JoinRound:
				out = append(out, arcPoints(a.Pt, nIn, nOut, hw, sign)...)
			default:
				bis := vecNormalize(vecAdd(nIn, nOut))
				cosHalf := vecDot(nIn, bis)
				if cosHalf < 1e-4 || 1/cosHalf > miterLimit {
					out = append(out, p0, p1)
				} else {
					miterDist := hw / cosHalf
					tip := PtFromVec2(vecAdd(a.Pt.Vec2(), vecScale(bis, sign*miterDist)))
					out = append(out, p0, tip, p1)
				}
			}
		}
	}
	return out
}

// arcPoints approximates, with a small fixed number of line segments,
// the shorter circular arc from center+hw*sign*nFrom to
// center+hw*sign*nTo.
func arcPoints(center Pt, nFrom, nTo f32.Vec2, hw, sign float32) []Pt {
	const steps = 8
	angleFrom := atan2_64(float64(nFrom[1]), float64(nFrom[0]))
	angleTo := atan2_64(float64(nTo[1]), float64(nTo[0]))
	delta := angleTo - angleFrom
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	out := make([]Pt, 0, steps)
	for k := 1; k <= steps; k++ {
		a := angleFrom + delta*float64(k)/steps
		n := f32.Vec2{float32(math.Cos(a)), float32(math.Sin(a))}
		out = append(out, PtFromVec2(vecAdd(center.Vec2(), vecScale(n, sign*hw))))
	}
	return out
}

// capPoints returns the extra points needed to close off an open subpath's
// end at p, where tangent points outward along the direction of travel
// (i.e. away from the stroked line, continuing past the last vertex).
func capPoints(p Pt, hw float32, tangent f32.Vec2, style CapStyle) []Pt {
	normal := vecPerp(tangent)
	switch style {
	case CapRound:
		// Half circle from +normal through tangent to -normal.
		const steps = 8
		out := make([]Pt, 0, steps)
		for k := 1; k <= steps; k++ {
			a := math.Pi * float64(k) / steps
			d := vecAdd(vecScale(normal, float32(math.Cos(a))), vecScale(tangent, float32(math.Sin(a))))
			out = append(out, PtFromVec2(vecAdd(p.Vec2(), vecScale(d, hw))))
		}
		return out
	case CapSquare:
		ext := vecScale(tangent, hw)
		p1 := PtFromVec2(vecAdd(vecAdd(p.Vec2(), vecScale(normal, hw)), ext))
		p2 := PtFromVec2(vecAdd(vecAdd(p.Vec2(), vecScale(normal, -hw)), ext))
		return []Pt{p1, p2}
	default:
		return nil
	}
}
