package svgnative

import "math"

// Path is a mutable geometry builder created by a [Renderer].
//
// A path is an ordered list of figures. Each figure starts at a point,
// continues with line and cubic segments, and ends either open or closed.
// Drawing operations issued while no figure is open begin a new figure
// implicitly.
type Path interface {
	// Rect appends a closed rectangle figure.
	Rect(x, y, width, height float64)

	// RoundedRect appends a closed rectangle figure with elliptical corners
	// of radii (rx, ry).
	RoundedRect(x, y, width, height, rx, ry float64)

	// Ellipse appends a closed ellipse figure centered at (cx, cy).
	Ellipse(cx, cy, rx, ry float64)

	// MoveTo ends any open figure as open and begins a new one at (x, y).
	MoveTo(x, y float64)

	// LineTo appends a straight segment to (x, y).
	LineTo(x, y float64)

	// CurveTo appends a cubic Bézier segment with control points (x1, y1),
	// (x2, y2) ending at (x3, y3).
	CurveTo(x1, y1, x2, y2, x3, y3 float64)

	// CurveToV appends a quadratic Bézier segment with control point
	// (x2, y2) ending at (x3, y3), elevated to a cubic.
	CurveToV(x2, y2, x3, y3 float64)

	// ClosePath ends the current figure as closed.
	ClosePath()
}

// SegmentKind identifies the type of a figure segment.
type SegmentKind uint8

const (
	// SegmentLine is a straight segment to End.
	SegmentLine SegmentKind = iota
	// SegmentCubic is a cubic Bézier segment through Ctrl1 and Ctrl2 to End.
	SegmentCubic
)

// String returns the segment kind name.
func (k SegmentKind) String() string {
	switch k {
	case SegmentLine:
		return "Line"
	case SegmentCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Segment is one piece of a figure. Ctrl1 and Ctrl2 are only meaningful
// for cubic segments.
type Segment struct {
	Kind  SegmentKind
	Ctrl1 Point
	Ctrl2 Point
	End   Point
}

// Figure is a connected run of segments.
type Figure struct {
	Start    Point
	Segments []Segment
	Closed   bool
}

// Geometry is the reference [Path] implementation shared by all backends.
//
// Once finalized, by [Geometry.Finalize] or by drawing it, a Geometry is
// read-only: further builder calls are ignored.
type Geometry struct {
	figures   []Figure
	open      bool
	current   Point
	finalized bool
}

// NewGeometry creates an empty path.
func NewGeometry() *Geometry {
	return &Geometry{figures: make([]Figure, 0, 4)}
}

func (g *Geometry) writable(op string) bool {
	if g.finalized {
		Logger().Debug("svgnative: path operation after finalization ignored", "op", op)
		return false
	}
	return true
}

// Rect appends a closed rectangle figure.
func (g *Geometry) Rect(x, y, width, height float64) {
	g.MoveTo(x, y)
	g.LineTo(x+width, y)
	g.LineTo(x+width, y+height)
	g.LineTo(x, y+height)
	g.ClosePath()
}

// RoundedRect appends a closed rectangle figure with elliptical corners.
// Corners are clockwise quarter arcs; zero radii produce square corners.
func (g *Geometry) RoundedRect(x, y, width, height, rx, ry float64) {
	g.MoveTo(x+rx, y)
	g.LineTo(x+width-rx, y)
	g.AddArc(x+width, y+ry, rx, ry)
	g.LineTo(x+width, y+height-ry)
	g.AddArc(x+width-rx, y+height, rx, ry)
	g.LineTo(x+rx, y+height)
	g.AddArc(x, y+height-ry, rx, ry)
	g.LineTo(x, y+ry)
	g.AddArc(x+rx, y, rx, ry)
	g.ClosePath()
}

// Ellipse appends a closed ellipse figure built from two clockwise half arcs
// starting at the top.
func (g *Geometry) Ellipse(cx, cy, rx, ry float64) {
	g.MoveTo(cx, cy-ry)
	g.AddArc(cx, cy+ry, rx, ry)
	g.AddArc(cx, cy-ry, rx, ry)
	g.ClosePath()
}

// MoveTo ends any open figure as open and begins a new one at (x, y).
func (g *Geometry) MoveTo(x, y float64) {
	if !g.writable("MoveTo") {
		return
	}
	p := Pt(x, y)
	g.figures = append(g.figures, Figure{Start: p})
	g.open = true
	g.current = p
}

// LineTo appends a straight segment. Without an open figure it begins one
// at (x, y) first.
func (g *Geometry) LineTo(x, y float64) {
	if !g.writable("LineTo") {
		return
	}
	if !g.open {
		g.MoveTo(x, y)
	}
	p := Pt(x, y)
	g.appendSegment(Segment{Kind: SegmentLine, End: p})
}

// CurveTo appends a cubic segment. Without an open figure it begins one at
// the first control point.
func (g *Geometry) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !g.writable("CurveTo") {
		return
	}
	if !g.open {
		g.MoveTo(x1, y1)
	}
	g.appendSegment(Segment{
		Kind:  SegmentCubic,
		Ctrl1: Pt(x1, y1),
		Ctrl2: Pt(x2, y2),
		End:   Pt(x3, y3),
	})
}

// CurveToV appends a quadratic segment from the current point, raised to
// the equivalent cubic.
func (g *Geometry) CurveToV(x2, y2, x3, y3 float64) {
	cur := g.current
	ctrl := Pt(x2, y2)
	end := Pt(x3, y3)
	c1 := cur.Add(ctrl.Sub(cur).Mul(2.0 / 3.0))
	c2 := end.Add(ctrl.Sub(end).Mul(2.0 / 3.0))
	g.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
}

// AddArc appends a small clockwise elliptical arc from the current point to
// (x, y) with radii (rx, ry). Radii too small to reach the end point are
// scaled up; zero radii produce a straight segment.
func (g *Geometry) AddArc(x, y, rx, ry float64) {
	if !g.writable("AddArc") {
		return
	}
	end := Pt(x, y)
	if !g.open {
		g.MoveTo(x, y)
		return
	}
	for _, seg := range arcSegments(g.current, end, rx, ry, false, true) {
		g.appendSegment(seg)
	}
}

// ClosePath ends the current figure as closed and returns the current point
// to the figure start. It does nothing when no figure is open.
func (g *Geometry) ClosePath() {
	if !g.writable("ClosePath") {
		return
	}
	if !g.open {
		return
	}
	fig := &g.figures[len(g.figures)-1]
	fig.Closed = true
	g.current = fig.Start
	g.open = false
}

func (g *Geometry) appendSegment(s Segment) {
	fig := &g.figures[len(g.figures)-1]
	fig.Segments = append(fig.Segments, s)
	g.current = s.End
}

// Finalize ends any open figure as open and makes the path read-only.
// Finalize is idempotent.
func (g *Geometry) Finalize() {
	g.open = false
	g.finalized = true
}

// IsFinalized reports whether the path is read-only.
func (g *Geometry) IsFinalized() bool {
	return g.finalized
}

// Figures finalizes the path and returns its figures. The returned slice
// must not be modified.
func (g *Geometry) Figures() []Figure {
	g.Finalize()
	return g.figures
}

// CurrentPoint returns the pen position.
func (g *Geometry) CurrentPoint() Point {
	return g.current
}

// IsEmpty reports whether the path has no figures.
func (g *Geometry) IsEmpty() bool {
	return len(g.figures) == 0
}

// Bounds returns the bounding box of all figure points, control points
// included. An empty path has an empty Rect.
func (g *Geometry) Bounds() Rect {
	if len(g.figures) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, f := range g.figures {
		add(f.Start)
		for _, s := range f.Segments {
			if s.Kind == SegmentCubic {
				add(s.Ctrl1)
				add(s.Ctrl2)
			}
			add(s.End)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Transform returns a finalized copy of the path with m applied to every
// point.
func (g *Geometry) Transform(m Matrix) *Geometry {
	out := &Geometry{figures: make([]Figure, len(g.figures)), finalized: true}
	for i, f := range g.figures {
		nf := Figure{
			Start:    m.TransformPoint(f.Start),
			Segments: make([]Segment, len(f.Segments)),
			Closed:   f.Closed,
		}
		for j, s := range f.Segments {
			nf.Segments[j] = Segment{
				Kind:  s.Kind,
				Ctrl1: m.TransformPoint(s.Ctrl1),
				Ctrl2: m.TransformPoint(s.Ctrl2),
				End:   m.TransformPoint(s.End),
			}
		}
		out.figures[i] = nf
	}
	out.current = m.TransformPoint(g.current)
	return out
}

// Clone returns a finalized deep copy of the path.
func (g *Geometry) Clone() *Geometry {
	return g.Transform(Identity())
}

// Replay issues the figures of g as builder calls on dst. Open figures stay
// open and closed figures are closed.
func (g *Geometry) Replay(dst Path) {
	for _, f := range g.figures {
		dst.MoveTo(f.Start.X, f.Start.Y)
		for _, s := range f.Segments {
			switch s.Kind {
			case SegmentLine:
				dst.LineTo(s.End.X, s.End.Y)
			case SegmentCubic:
				dst.CurveTo(s.Ctrl1.X, s.Ctrl1.Y, s.Ctrl2.X, s.Ctrl2.Y, s.End.X, s.End.Y)
			}
		}
		if f.Closed {
			dst.ClosePath()
		}
	}
}

// GeometryOf returns the reference geometry behind p. Backends accept any
// Path that is a *Geometry or exposes one through a Geometry method;
// anything else is a programming error and panics.
func GeometryOf(p Path) *Geometry {
	switch v := p.(type) {
	case *Geometry:
		return v
	case interface{ Geometry() *Geometry }:
		return v.Geometry()
	default:
		panic("svgnative: path was not created by a svgnative renderer")
	}
}
