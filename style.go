package svgnative

// LineCap is the shape of open stroke ends and dash ends.
type LineCap uint8

const (
	// CapButt ends the stroke flush with the end point.
	CapButt LineCap = iota
	// CapRound ends the stroke with a half circle.
	CapRound
	// CapSquare extends the stroke by half its width.
	CapSquare
)

// String returns the SVG keyword for the cap.
func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin is the shape of the corner between two stroke segments.
type LineJoin uint8

const (
	// JoinMiter extends the outer edges to meet, falling back to bevel past
	// the miter limit.
	JoinMiter LineJoin = iota
	// JoinRound rounds the corner.
	JoinRound
	// JoinBevel cuts the corner.
	JoinBevel
)

// String returns the SVG keyword for the join.
func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// DefaultMiterLimit is the SVG initial value of stroke-miterlimit.
const DefaultMiterLimit = 4.0

// StrokeStyle describes the stroke pass of a DrawPath call.
type StrokeStyle struct {
	HasStroke  bool
	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
	DashArray  []float64
	DashOffset float64
	Paint      Paint
}

// DefaultStrokeStyle returns an enabled stroke with SVG initial values and
// the given paint.
func DefaultStrokeStyle(p Paint) StrokeStyle {
	return StrokeStyle{
		HasStroke:  true,
		LineWidth:  1,
		LineCap:    CapButt,
		LineJoin:   JoinMiter,
		MiterLimit: DefaultMiterLimit,
		Paint:      p,
	}
}

// Enabled reports whether the stroke pass produces output: the stroke is
// switched on, has paint, and has a positive width.
func (s StrokeStyle) Enabled() bool {
	return s.HasStroke && s.Paint != nil && s.LineWidth > 0
}

// Dash returns the normalized dash pattern, or nil for a solid stroke.
func (s StrokeStyle) Dash() *Dash {
	return NewDash(s.DashOffset, s.DashArray...)
}

// EffectiveMiterLimit returns the miter limit, substituting the SVG default
// for values below 1.
func (s StrokeStyle) EffectiveMiterLimit() float64 {
	if s.MiterLimit < 1 {
		return DefaultMiterLimit
	}
	return s.MiterLimit
}

// FillStyle describes the fill pass of a DrawPath call. Fills use the
// nonzero winding rule.
type FillStyle struct {
	HasFill bool
	Paint   Paint
}

// Enabled reports whether the fill pass produces output.
func (f FillStyle) Enabled() bool {
	return f.HasFill && f.Paint != nil
}

// ClippingPath restricts drawing to the interior of Path. Transform, when
// non-nil, maps the clip path into the user space of the graphic style it
// belongs to.
type ClippingPath struct {
	Path      Path
	Transform Transform
}

// GraphicStyle is the state pushed by [Renderer.Save]. The zero value is
// opaque with no transform and no clip.
type GraphicStyle struct {
	// Transparency is one minus the group opacity. Values outside [0, 1]
	// are clamped, so 1 hides the group.
	Transparency float64

	// Transform is composed with the enclosing transformation. nil means
	// identity.
	Transform Transform

	// ClippingPath, when non-nil, is intersected with the enclosing clip.
	ClippingPath *ClippingPath
}

// DefaultGraphicStyle returns the zero GraphicStyle: fully opaque, with no
// transform and no clip.
func DefaultGraphicStyle() GraphicStyle {
	return GraphicStyle{}
}

// Opacity returns the group opacity in [0, 1].
func (g GraphicStyle) Opacity() float64 {
	return 1 - clamp01(g.Transparency)
}

// WithOpacity returns a copy of g with the group opacity set to o.
func (g GraphicStyle) WithOpacity(o float64) GraphicStyle {
	g.Transparency = 1 - clamp01(o)
	return g
}
