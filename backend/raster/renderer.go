package raster

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/svgnative"
	"github.com/gogpu/svgnative/internal/clip"
	"github.com/gogpu/svgnative/internal/pool"
)

func init() {
	svgnative.Register("raster", func() svgnative.Renderer {
		return NewRenderer()
	})
}

// Renderer draws onto an *image.RGBA surface. It implements
// svgnative.Renderer and is not safe for concurrent use.
type Renderer struct {
	surface *image.RGBA
	opts    options
	log     *slog.Logger
	pool    *pool.Pool

	frames []frame
	clips  *clip.Stack
}

var _ svgnative.Renderer = (*Renderer)(nil)

// NewRenderer creates a raster renderer. Without WithSurface, a surface
// must be bound with SetSurface before drawing.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{opts: o, log: o.logger, pool: o.pool}
	if r.log == nil {
		r.log = svgnative.Logger()
	}
	if r.pool == nil {
		r.pool = pool.Default()
	}
	r.SetSurface(o.surface)
	return r
}

// SetSurface binds dst as the drawing target and discards any saved
// graphic states. Passing nil is equivalent to ReleaseSurface.
func (r *Renderer) SetSurface(dst *image.RGBA) {
	r.surface = dst
	r.resetFrames()
	if dst == nil {
		r.clips = nil
		return
	}
	if r.clips == nil || r.clips.Bounds() != dst.Rect {
		r.clips = clip.NewStack(dst.Rect, r.pool)
	}
	r.log.Debug("raster: surface bound", "bounds", dst.Rect)
}

// ReleaseSurface unbinds the drawing target. Subsequent drawing returns
// svgnative.ErrNoSurface.
func (r *Renderer) ReleaseSurface() {
	r.SetSurface(nil)
}

// Surface returns the bound surface, or nil.
func (r *Renderer) Surface() *image.RGBA {
	return r.surface
}

// CreatePath returns an empty path.
func (r *Renderer) CreatePath() svgnative.Path {
	return svgnative.NewGeometry()
}

// CreateTransform returns a transform holding (a, b, c, d, tx, ty).
func (r *Renderer) CreateTransform(a, b, c, d, tx, ty float64) svgnative.Transform {
	return svgnative.NewAffineTransform(a, b, c, d, tx, ty)
}

// CreateImageData decodes a base64 image payload.
func (r *Renderer) CreateImageData(payload string, enc svgnative.ImageEncoding) (svgnative.ImageData, error) {
	img, err := svgnative.DecodeImageData(payload, enc)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DrawPath fills and then strokes path under style.
func (r *Renderer) DrawPath(path svgnative.Path, style svgnative.GraphicStyle, fill svgnative.FillStyle, stroke svgnative.StrokeStyle) error {
	figs := svgnative.GeometryOf(path).Figures()
	if !fill.Enabled() && !stroke.Enabled() {
		return nil
	}
	if err := r.Save(style); err != nil {
		return err
	}
	defer r.Restore()

	f := r.top()
	if f.hidden {
		return nil
	}

	if fill.Enabled() {
		r.fill(f, figs, f.ctm, fill.Paint)
	}
	if stroke.Enabled() {
		tol := r.opts.tolerance / math.Max(f.ctm.MaxScale(), 1e-6)
		outline := strokeOutline(figs, stroke, tol)
		r.fill(f, outline, f.ctm, stroke.Paint)
	}
	return nil
}

// fill paints the nonzero interior of figs under m with paint, honoring
// the current clip.
func (r *Renderer) fill(f *frame, figs []svgnative.Figure, m svgnative.Matrix, paint svgnative.Paint) {
	area := deviceBounds(figs, m).Intersect(r.surface.Rect)
	if area.Empty() {
		return
	}

	cov := r.pool.Alpha(r.surface.Rect)
	defer r.pool.PutAlpha(cov)
	r.clips.Rasterizer().Fill(cov, figs, m)
	if c := r.clips.Top(); c != nil {
		clip.Intersect(cov, c)
	}

	src, release := r.brush(paint, m, area)
	defer release()
	draw.DrawMask(f.target, area, src, area.Min, cov, area.Min, draw.Over)
}

// deviceBounds returns the pixel rectangle covering figs under m,
// control points included.
func deviceBounds(figs []svgnative.Figure, m svgnative.Matrix) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(p svgnative.Point) {
		q := m.TransformPoint(p)
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	for _, fig := range figs {
		add(fig.Start)
		for _, s := range fig.Segments {
			if s.Kind == svgnative.SegmentCubic {
				add(s.Ctrl1)
				add(s.Ctrl2)
			}
			add(s.End)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		clampInt(math.Floor(minX)), clampInt(math.Floor(minY)),
		clampInt(math.Ceil(maxX)), clampInt(math.Ceil(maxY)),
	)
}

func clampInt(v float64) int {
	const limit = 1 << 30
	if v < -limit || math.IsNaN(v) {
		return -limit
	}
	if v > limit {
		return limit
	}
	return int(v)
}
