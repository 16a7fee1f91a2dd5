package svgnative

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Paint is the source of color for a fill or stroke.
//
// Paint is a closed set: [Color] and [*Gradient]. Backends panic on any
// other implementation.
type Paint interface {
	paintMarker()
}

// Color is a non-premultiplied sRGB color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

func (Color) paintMarker() {}

// RGBA creates a color from its components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Common colors.
var (
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGBA implements [color.Color]. Components are premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	a1 := clamp01(c.A)
	return uint32(clamp01(c.R)*a1*0xffff + 0.5),
		uint32(clamp01(c.G)*a1*0xffff + 0.5),
		uint32(clamp01(c.B)*a1*0xffff + 0.5),
		uint32(a1*0xffff + 0.5)
}

// NRGBA converts the color to an 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// WithAlpha returns the color with its alpha multiplied by alpha.
func (c Color) WithAlpha(alpha float64) Color {
	c.A *= alpha
	return c
}

// Lerp interpolates between c and d component-wise.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// FromColor converts a standard color to a non-premultiplied Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The leading
// '#' is optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var digits [8]uint8
	if len(hex) > len(digits) {
		return Color{}, fmt.Errorf("svgnative: invalid hex color %q", s)
	}
	for i := 0; i < len(hex); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("svgnative: invalid hex color %q", s)
		}
		digits[i] = v
	}
	var r, g, b, a uint8 = 0, 0, 0, 255
	switch len(hex) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return Color{}, fmt.Errorf("svgnative: invalid hex color %q", s)
	}
	return FromColor(color.NRGBA{R: r, G: g, B: b, A: a}), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// GradientType selects the gradient geometry.
type GradientType uint8

const (
	// LinearGradient interpolates along the vector (X1, Y1)-(X2, Y2).
	LinearGradient GradientType = iota
	// RadialGradient interpolates from the focal point (Fx, Fy) to the
	// circle of radius R around (Cx, Cy).
	RadialGradient
)

// String returns the gradient type name.
func (t GradientType) String() string {
	switch t {
	case LinearGradient:
		return "linear"
	case RadialGradient:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", t)
	}
}

// SpreadMethod defines how a gradient continues outside [0, 1].
type SpreadMethod uint8

const (
	// SpreadPad repeats the terminal stop colors.
	SpreadPad SpreadMethod = iota
	// SpreadReflect mirrors the gradient on every repetition.
	SpreadReflect
	// SpreadRepeat wraps the gradient.
	SpreadRepeat
)

// String returns the SVG keyword for the spread method.
func (m SpreadMethod) String() string {
	switch m {
	case SpreadPad:
		return "pad"
	case SpreadReflect:
		return "reflect"
	case SpreadRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("SpreadMethod(%d)", m)
	}
}

// GradientStop is one color stop. Stops are used in the order given.
type GradientStop struct {
	Offset float64
	Color  Color
}

// Gradient is a linear or radial gradient paint.
//
// Coordinates are in the user space of the element being painted. When
// Transform is non-nil it is applied to the gradient geometry before the
// current transformation.
type Gradient struct {
	Type   GradientType
	Stops  []GradientStop
	Method SpreadMethod

	// Linear geometry.
	X1, Y1, X2, Y2 float64

	// Radial geometry.
	Cx, Cy, Fx, Fy, R float64

	Transform Transform
}

func (*Gradient) paintMarker() {}

// NewLinearGradient creates a linear gradient along (x1, y1)-(x2, y2).
func NewLinearGradient(x1, y1, x2, y2 float64) *Gradient {
	return &Gradient{Type: LinearGradient, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// NewRadialGradient creates a radial gradient with its focal point at the
// center.
func NewRadialGradient(cx, cy, r float64) *Gradient {
	return &Gradient{Type: RadialGradient, Cx: cx, Cy: cy, Fx: cx, Fy: cy, R: r}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *Gradient) AddStop(offset float64, c Color) *Gradient {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// Clone returns a deep copy of the gradient. The transform is copied by
// value into an [AffineTransform].
func (g *Gradient) Clone() *Gradient {
	out := *g
	out.Stops = append([]GradientStop(nil), g.Stops...)
	if g.Transform != nil {
		out.Transform = TransformFromMatrix(g.Transform.Matrix())
	}
	return &out
}

// ClonePaint returns a copy of p that shares no mutable state with it.
func ClonePaint(p Paint) Paint {
	if g, ok := p.(*Gradient); ok && g != nil {
		return g.Clone()
	}
	return p
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
