package raster

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/gogpu/svgnative/internal/pool"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
//	r := raster.NewRenderer(raster.WithSurface(dst), raster.WithTolerance(0.05))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	surface      *image.RGBA
	tolerance    float64
	interpolator draw.Interpolator
	logger       *slog.Logger
	pool         *pool.Pool
}

// DefaultTolerance is the default curve flattening tolerance in device
// pixels.
const DefaultTolerance = 0.1

func defaultOptions() options {
	return options{
		tolerance:    DefaultTolerance,
		interpolator: draw.BiLinear,
	}
}

// WithSurface binds the target surface at creation. Equivalent to calling
// SetSurface afterwards.
func WithSurface(dst *image.RGBA) Option {
	return func(o *options) {
		o.surface = dst
	}
}

// WithTolerance sets the maximum deviation, in device pixels, allowed when
// curves are flattened or strokes are expanded. Non-positive values are
// ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithInterpolator sets the resampling kernel used by DrawImage.
// The default is draw.BiLinear.
func WithInterpolator(i draw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interpolator = i
		}
	}
}

// WithLogger sets the logger for this renderer. By default the renderer
// uses svgnative.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// withPool sets the pool from which layers and masks are taken.
func withPool(p *pool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}
