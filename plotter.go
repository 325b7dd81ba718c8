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

import "log/slog"

// Matte is an 8-bit alpha coverage grid, row-major, top-left origin, no
// row padding (Pix has exactly W*H bytes).
type Matte struct {
	Pix    []uint8
	W, H   int
}

func newMatte(w, h int) *Matte {
	return &Matte{Pix: make([]uint8, w*h), W: w, H: h}
}

func (m *Matte) clear() {
	for i := range m.Pix {
		m.Pix[i] = 0
	}
}

// Option configures a Plotter at construction time.
type Option func(*Plotter)

// WithFlatness overrides the flattener's tolerance, in device pixels.
func WithFlatness(tol float32) Option {
	return func(p *Plotter) { p.flatness = tol }
}

// WithLogger installs a structured logger for diagnostic (Debug-level)
// events; Fill logs degenerate paths and figures that mix Normal and
// Widdershins subpaths through it. Flattener recursion-depth truncation
// is not logged. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Plotter) { p.logger = l }
}

// WithMiterLimit overrides the default miter limit applied to new
// Strokers created by the Plotter.
func WithMiterLimit(limit float32) Option {
	return func(p *Plotter) { p.miterLimit = limit }
}

// WithPenWidth overrides the default pen width.
func WithPenWidth(width float32) Option {
	return func(p *Plotter) { p.penWidth = width }
}

// Plotter is the public entry point tying the path model, flattener,
// stroker, figure builder, and scan rasterizer together into Fill and
// Stroke operations. A Plotter is not safe for concurrent use; callers
// needing concurrency should use one Plotter per goroutine.
type Plotter struct {
	w, h int

	transform Transform

	join       JoinStyle
	cap        CapStyle
	miterLimit float32
	penWidth   float32
	flatness   float32

	logger *slog.Logger

	matte       *Matte
	lastWarning *Warning
}

// NewPlotter creates a Plotter that produces w x h mattes.
func NewPlotter(w, h int, opts ...Option) (*Plotter, error) {
	if w <= 0 || h <= 0 {
		return nil, newDimensionError(w, h)
	}
	p := &Plotter{
		w:          w,
		h:          h,
		transform:  Identity,
		join:       JoinMiter,
		cap:        CapButt,
		miterLimit: defaultMiterLimit,
		penWidth:   1,
		flatness:   defaultFlatness,
		logger:     slog.Default(),
		matte:      newMatte(w, h),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// SetTransform installs t as the transform applied to every point of
// subsequent Fill/Stroke calls.
func (p *Plotter) SetTransform(t Transform) { p.transform = t }

// ClearTransform resets the transform to the identity.
func (p *Plotter) ClearTransform() { p.transform = Identity }

// SetJoin sets the join style used by subsequent Stroke calls.
func (p *Plotter) SetJoin(j JoinStyle) { p.join = j }

// SetCap sets the cap style used by subsequent Stroke calls.
func (p *Plotter) SetCap(c CapStyle) { p.cap = c }

// SetMiterLimit sets the miter limit used by subsequent Stroke calls.
func (p *Plotter) SetMiterLimit(limit float32) { p.miterLimit = limit }

// SetPenWidth sets the default pen width used by subsequent Stroke
// calls (overridden along the path by any PenWidth op it contains).
func (p *Plotter) SetPenWidth(width float32) { p.penWidth = width }

// ClearMatte zeroes the Plotter's internal matte without reallocating
// it.
func (p *Plotter) ClearMatte() { p.matte.clear() }

// LastWarning returns the non-fatal condition (if any) raised by the
// most recent Fill or Stroke call, or nil if none.
func (p *Plotter) LastWarning() *Warning { return p.lastWarning }

// Fill rasterizes path under rule into the Plotter's matte and returns
// it. The returned Matte is owned by the Plotter and is overwritten by
// the next Fill or Stroke call.
func (p *Plotter) Fill(path Path, rule FillRule) (*Matte, error) {
	p.lastWarning = nil
	p.matte.clear()

	fig, err := BuildFigure(path, p.transform, p.flatness)
	if err != nil {
		return nil, err
	}
	if fig.SubpathCount() == 0 {
		p.lastWarning = &Warning{Kind: WarningPathDegenerate, Msg: "path has no subpath with 3 or more distinct vertices"}
		p.logger.Debug("vraster: degenerate path, returning empty matte")
		return p.matte, nil
	}
	if fig.MixedWinding() {
		p.logger.Debug("vraster: path mixes Normal and Widdershins subpaths", "subpaths", fig.SubpathCount())
	}

	rasterizeFigure(fig, p.w, p.h, rule, p.matte.Pix, p.w)
	return p.matte, nil
}

// Stroke strokes path with the Plotter's current pen configuration and
// fills the result (NonZero) into the Plotter's matte.
func (p *Plotter) Stroke(path Path) (*Matte, error) {
	st := &Stroker{
		PenWidth:   p.penWidth,
		Join:       p.join,
		Cap:        p.cap,
		MiterLimit: p.miterLimit,
		Flatness:   p.flatness,
	}
	outline := st.Stroke(path, Identity) // width interpolation happens pre-transform; transform applied once below
	return p.Fill(outline, NonZero)
}
