package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/svgnative"
	"github.com/gogpu/svgnative/internal/clip"
)

// DrawImage draws data scaled into fillArea and clipped to clipArea under
// style.
func (r *Renderer) DrawImage(data svgnative.ImageData, style svgnative.GraphicStyle, clipArea, fillArea svgnative.Rect) error {
	src := svgnative.ImageOf(data).Image()
	if err := r.Save(style); err != nil {
		return err
	}
	defer r.Restore()

	f := r.top()
	sb := src.Bounds()
	if f.hidden || sb.Empty() || fillArea.IsEmpty() || clipArea.IsEmpty() {
		r.log.Debug("raster: empty image draw skipped",
			"source", sb, "fill", fillArea, "clip", clipArea)
		return nil
	}

	clipGeom := svgnative.NewGeometry()
	clipGeom.Rect(clipArea.X, clipArea.Y, clipArea.Width, clipArea.Height)
	figs := clipGeom.Figures()
	if deviceBounds(figs, f.ctm).Intersect(r.surface.Rect).Empty() {
		return nil
	}

	mask := r.pool.Alpha(r.surface.Rect)
	defer r.pool.PutAlpha(mask)
	r.clips.Rasterizer().Fill(mask, figs, f.ctm)
	if c := r.clips.Top(); c != nil {
		clip.Intersect(mask, c)
	}

	m := imageMatrix(sb, fillArea).Multiply(f.ctm)
	s2d := f64.Aff3{m.A, m.C, m.Tx, m.B, m.D, m.Ty}
	r.opts.interpolator.Transform(f.target, s2d, src, sb, draw.Over, &draw.Options{
		DstMask:  mask,
		DstMaskP: image.Point{},
	})
	return nil
}

// imageMatrix maps source pixel coordinates onto fillArea in user space.
func imageMatrix(sb image.Rectangle, fillArea svgnative.Rect) svgnative.Matrix {
	sx := fillArea.Width / float64(sb.Dx())
	sy := fillArea.Height / float64(sb.Dy())
	return svgnative.Translation(-float64(sb.Min.X), -float64(sb.Min.Y)).
		Multiply(svgnative.Scaling(sx, sy)).
		Multiply(svgnative.Translation(fillArea.X, fillArea.Y))
}
