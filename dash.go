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

// applyDash splits each wide subpath into the "on" runs of the dash
// pattern, each emitted as its own open wideSubpath. Dash patterns are
// not a spec.md requirement (spec.md lists them as "may be added
// orthogonally"); Stroker.Stroke only calls this when Dash is non-empty,
// so solid strokes never pay for it.
func applyDash(subs []wideSubpath, dash []float32, phase float32) []wideSubpath {
	var total float32
	for _, d := range dash {
		if d < 0 {
			return subs
		}
		total += d
	}
	if total <= 0 {
		return subs
	}
	var out []wideSubpath
	for _, sp := range subs {
		out = append(out, dashSubpath(sp, dash, phase, total)...)
	}
	return out
}

func dashSubpath(sp wideSubpath, dash []float32, phase float32, total float32) []wideSubpath {
	pts := sp.pts
	if sp.closed && len(pts) > 0 && pts[0].Pt != pts[len(pts)-1].Pt {
		closedPts := make([]WidePt, len(pts)+1)
		copy(closedPts, pts)
		closedPts[len(pts)] = pts[0]
		pts = closedPts
	}
	if len(pts) < 2 {
		return nil
	}

	pos := math.Mod(float64(phase), float64(total))
	if pos < 0 {
		pos += float64(total)
	}
	idx := 0
	remaining := float32(pos)
	for remaining >= dash[idx] {
		remaining -= dash[idx]
		idx = (idx + 1) % len(dash)
	}
	on := idx%2 == 0
	distLeft := dash[idx] - remaining

	var result []wideSubpath
	var cur []WidePt
	if on {
		cur = append(cur, pts[0])
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segVec := vecSub(b.Pt.Vec2(), a.Pt.Vec2())
		segLen := vecLen(segVec)
		if segLen == 0 {
			continue
		}
		var segPos float32
		for segPos < segLen {
			step := distLeft
			if segPos+step > segLen {
				step = segLen - segPos
			}
			segPos += step
			distLeft -= step
			t := segPos / segLen
			w := a.Width + (b.Width-a.Width)*t
			pt := PtFromVec2(vecAdd(a.Pt.Vec2(), vecScale(segVec, t)))
			if on {
				cur = append(cur, WidePt{Pt: pt, Width: w})
			}
			if distLeft <= 1e-6 {
				if on && len(cur) >= 2 {
					result = append(result, wideSubpath{pts: cur})
				}
				idx = (idx + 1) % len(dash)
				distLeft = dash[idx]
				on = !on
				if on {
					cur = []WidePt{{Pt: pt, Width: w}}
				} else {
					cur = nil
				}
			}
		}
	}
	if on && len(cur) >= 2 {
		result = append(result, wideSubpath{pts: cur})
	}
	return result
}
