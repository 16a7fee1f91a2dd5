// Package clip rasterizes figures into coverage masks and maintains the
// stack of intersected clip masks for a graphic state stack.
package clip

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/svgnative"
)

// Rasterizer computes anti-aliased nonzero coverage of figures over a fixed
// device rectangle. It is reused across calls and is not safe for
// concurrent use.
type Rasterizer struct {
	z      *vector.Rasterizer
	bounds image.Rectangle
}

// NewRasterizer creates a rasterizer covering bounds.
func NewRasterizer(bounds image.Rectangle) *Rasterizer {
	return &Rasterizer{
		z:      vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
		bounds: bounds,
	}
}

// Bounds returns the device rectangle covered by the rasterizer.
func (r *Rasterizer) Bounds() image.Rectangle {
	return r.bounds
}

// Fill writes the coverage of figs, transformed by m, into dst, replacing
// its contents. Every figure is treated as closed. dst must have the
// rasterizer's bounds.
func (r *Rasterizer) Fill(dst *image.Alpha, figs []svgnative.Figure, m svgnative.Matrix) {
	r.z.Reset(r.bounds.Dx(), r.bounds.Dy())
	r.z.DrawOp = draw.Src

	ox, oy := float64(r.bounds.Min.X), float64(r.bounds.Min.Y)
	pt := func(p svgnative.Point) (float32, float32) {
		q := m.TransformPoint(p)
		return float32(q.X - ox), float32(q.Y - oy)
	}

	drawn := false
	for _, f := range figs {
		if len(f.Segments) == 0 {
			continue
		}
		r.z.MoveTo(pt(f.Start))
		for _, s := range f.Segments {
			switch s.Kind {
			case svgnative.SegmentLine:
				r.z.LineTo(pt(s.End))
			case svgnative.SegmentCubic:
				bx, by := pt(s.Ctrl1)
				cx, cy := pt(s.Ctrl2)
				dx, dy := pt(s.End)
				r.z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		r.z.ClosePath()
		drawn = true
	}
	if !drawn {
		clear(dst.Pix)
		return
	}
	r.z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
}

// Intersect multiplies dst by src pixel by pixel. Both masks must share
// the same bounds.
func Intersect(dst, src *image.Alpha) {
	for i, s := range src.Pix {
		dst.Pix[i] = uint8((uint16(dst.Pix[i])*uint16(s) + 127) / 255)
	}
}

// IsEmpty reports whether m has no coverage at all.
func IsEmpty(m *image.Alpha) bool {
	for _, v := range m.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}
