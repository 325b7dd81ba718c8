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

import "iter"

// OpKind identifies the variant held by a PathOp.
type OpKind uint8

const (
	OpMove OpKind = iota
	OpLine
	OpQuad
	OpCubic
	OpPenWidth
	OpClose
)

// PathOp is one operation in a Path. Which fields are meaningful depends
// on Kind:
//
//	OpMove     P1            start a new subpath at P1
//	OpLine     P1            line to P1
//	OpQuad     P1, P2        quadratic Bezier, control P1, end P2
//	OpCubic    P1, P2, P3    cubic Bezier, controls P1, P2, end P3
//	OpPenWidth Width         change the current pen width to Width
//	OpClose    (none)        close the current subpath with a line back
//	                         to its start point
type PathOp struct {
	Kind   OpKind
	P1, P2, P3 Pt
	Width  float32
}

// Path is a finite, restartable sequence of PathOp values. A Path value
// may be ranged over more than once (each range call starts over from the
// beginning); it has no side effects on iteration.
type Path iter.Seq[PathOp]

// All ranges over every op in p. It exists so callers can write
// `for op := range p.All()` in code that prefers not to call a Path value
// directly; `for op := range p` works too since Path is an iter.Seq.
func (p Path) All() iter.Seq[PathOp] { return iter.Seq[PathOp](p) }

// PathBuilder accumulates PathOp values into a slice-backed Path. It is
// the low-level construction type the stroker and test fixtures use; the
// public builder/convenience façade (out of scope for this core) is
// expected to produce Path values the same way.
type PathBuilder struct {
	ops []PathOp
}

// NewPathBuilder returns an empty PathBuilder.
func NewPathBuilder() *PathBuilder { return &PathBuilder{} }

// Move appends a Move op.
func (b *PathBuilder) Move(p Pt) *PathBuilder {
	b.ops = append(b.ops, PathOp{Kind: OpMove, P1: p})
	return b
}

// Line appends a Line op.
func (b *PathBuilder) Line(p Pt) *PathBuilder {
	b.ops = append(b.ops, PathOp{Kind: OpLine, P1: p})
	return b
}

// Quad appends a Quad op.
func (b *PathBuilder) Quad(ctrl, end Pt) *PathBuilder {
	b.ops = append(b.ops, PathOp{Kind: OpQuad, P1: ctrl, P2: end})
	return b
}

// Cubic appends a Cubic op.
func (b *PathBuilder) Cubic(c1, c2, end Pt) *PathBuilder {
	b.ops = append(b.ops, PathOp{Kind: OpCubic, P1: c1, P2: c2, P3: end})
	return b
}

// PenWidth appends a PenWidth op.
func (b *PathBuilder) PenWidth(w float32) *PathBuilder {
	b.ops = append(b.ops, PathOp{Kind: OpPenWidth, Width: w})
	return b
}

// Close appends a Close op.
func (b *PathBuilder) Close() *PathBuilder {
	b.ops = append(b.ops, PathOp{Kind: OpClose})
	return b
}

// Path returns the accumulated Path. The builder retains its slice, so
// further calls to the builder's append methods after calling Path do not
// affect a Path already handed to a caller, as long as the caller only
// reads from it (appends may reallocate, but never mutate in place).
func (b *PathBuilder) Path() Path {
	ops := b.ops
	return Path(func(yield func(PathOp) bool) {
		for _, op := range ops {
			if !yield(op) {
				return
			}
		}
	})
}

// collectOps materializes p into a slice. The package's tests use it to
// inspect a Path's ops.
func collectOps(p Path) []PathOp {
	var ops []PathOp
	for op := range p {
		ops = append(ops, op)
	}
	return ops
}
