package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/svgnative"
)

func nopRelease() {}

// brush resolves p into a source image valid over area under ctm. The
// returned release function must be called once the source is no longer
// needed.
func (r *Renderer) brush(p svgnative.Paint, ctm svgnative.Matrix, area image.Rectangle) (image.Image, func()) {
	switch v := p.(type) {
	case svgnative.Color:
		return image.NewUniform(v), nopRelease
	case *svgnative.Gradient:
		return r.gradientBrush(v, ctm, area)
	default:
		panic(fmt.Sprintf("svgnative: unknown paint type %T", p))
	}
}

// gradientBrush renders g over area into a pooled surface-sized layer.
// Only pixels inside area are written.
func (r *Renderer) gradientBrush(g *svgnative.Gradient, ctm svgnative.Matrix, area image.Rectangle) (image.Image, func()) {
	if c, ok := g.Solid(); ok {
		r.log.Debug("raster: gradient painted as solid color",
			"type", g.Type, "stops", len(g.Stops))
		return image.NewUniform(c), nopRelease
	}
	full := svgnative.MatrixOf(g.Transform).Multiply(ctm)
	if !full.IsInvertible() {
		r.log.Warn("raster: gradient transform is not invertible, nothing painted")
		return image.NewUniform(svgnative.Transparent), nopRelease
	}
	if g.Method > svgnative.SpreadRepeat {
		r.log.Warn("raster: unknown spread method, using pad", "method", g.Method)
	}

	inv := g.BrushMatrix(ctm)
	img := r.pool.RGBA(r.surface.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		off := img.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x++ {
			p := inv.TransformPoint(svgnative.Pt(float64(x)+0.5, float64(y)+0.5))
			cr, cg, cb, ca := g.ColorAt(p.X, p.Y).RGBA()
			img.Pix[off+0] = uint8(cr >> 8)
			img.Pix[off+1] = uint8(cg >> 8)
			img.Pix[off+2] = uint8(cb >> 8)
			img.Pix[off+3] = uint8(ca >> 8)
			off += 4
		}
	}
	return img, func() { r.pool.PutRGBA(img) }
}
