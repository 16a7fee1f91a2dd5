package svgnative

import "math"

// focalLimit keeps the focal point strictly inside the gradient circle.
const focalLimit = 0.999

// spread maps the gradient parameter t into [0, 1] according to m.
func spread(t float64, m SpreadMethod) float64 {
	switch m {
	case SpreadRepeat:
		t -= math.Floor(t)
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int64(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// sampleStops returns the color at parameter t, already mapped to [0, 1].
//
// Stops are scanned in the order given; the first stop whose offset is at
// least t bounds the interpolation interval. Stops are interpolated in
// gamma-encoded sRGB without premultiplication.
func sampleStops(stops []GradientStop, t float64) Color {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	idx := len(stops)
	for i, s := range stops {
		if s.Offset >= t {
			idx = i
			break
		}
	}
	if idx == 0 {
		return stops[0].Color
	}
	if idx == len(stops) {
		return stops[len(stops)-1].Color
	}
	s0, s1 := stops[idx-1], stops[idx]
	span := s1.Offset - s0.Offset
	if span <= 0 {
		return s1.Color
	}
	return s0.Color.Lerp(s1.Color, (t-s0.Offset)/span)
}

// ColorAtOffset returns the gradient color for the raw parameter t, with
// the spread method applied.
func (g *Gradient) ColorAtOffset(t float64) Color {
	return sampleStops(g.Stops, spread(t, g.Method))
}

// Solid reports whether the gradient paints a single uniform color and
// returns it. That is the case for zero or one stops and for degenerate
// geometry (a zero-length vector or a non-positive radius), which paints
// the last stop color.
func (g *Gradient) Solid() (Color, bool) {
	switch len(g.Stops) {
	case 0:
		return Transparent, true
	case 1:
		return g.Stops[0].Color, true
	}
	last := g.Stops[len(g.Stops)-1].Color
	switch g.Type {
	case LinearGradient:
		if g.X1 == g.X2 && g.Y1 == g.Y2 {
			return last, true
		}
	case RadialGradient:
		if g.R <= 0 {
			return last, true
		}
	}
	return Color{}, false
}

// Param returns the unspread gradient parameter at (x, y), given in
// gradient space.
func (g *Gradient) Param(x, y float64) float64 {
	if g.Type == RadialGradient {
		return g.radialParam(x, y)
	}
	return g.linearParam(x, y)
}

// ColorAt returns the gradient color at (x, y), given in gradient space.
func (g *Gradient) ColorAt(x, y float64) Color {
	if c, ok := g.Solid(); ok {
		return c
	}
	return g.ColorAtOffset(g.Param(x, y))
}

// linearParam projects (x, y) onto the gradient vector.
func (g *Gradient) linearParam(x, y float64) float64 {
	dx := g.X2 - g.X1
	dy := g.Y2 - g.Y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((x-g.X1)*dx + (y-g.Y1)*dy) / lenSq
}

// focal returns the focal point, pulled inside the circle when needed.
func (g *Gradient) focal() Point {
	c := Pt(g.Cx, g.Cy)
	f := Pt(g.Fx, g.Fy)
	d := f.Sub(c)
	limit := g.R * focalLimit
	if l := d.Length(); l > limit {
		f = c.Add(d.Mul(limit / l))
	}
	return f
}

// radialParam solves for the circle, interpolated between the focal point
// (t = 0) and the outer circle (t = 1), that passes through (x, y).
func (g *Gradient) radialParam(x, y float64) float64 {
	f := g.focal()
	if f.X == g.Cx && f.Y == g.Cy {
		dx, dy := x-g.Cx, y-g.Cy
		return math.Sqrt(dx*dx+dy*dy) / g.R
	}

	// Ray from the focal point through (x, y), intersected with the circle.
	dx, dy := x-f.X, y-f.Y
	fx, fy := g.Cx-f.X, g.Cy-f.Y
	a := dx*dx + dy*dy
	if a == 0 {
		return 0
	}
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.R*g.R

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}
	s := (-b + math.Sqrt(disc)) / (2 * a)
	if s <= 0 {
		return 0
	}
	return 1 / s
}

// BrushMatrix returns the matrix mapping device space to gradient space for
// a gradient drawn under ctm.
func (g *Gradient) BrushMatrix(ctm Matrix) Matrix {
	return MatrixOf(g.Transform).Multiply(ctm).Invert()
}
