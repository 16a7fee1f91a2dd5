package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"github.com/gogpu/svgnative"
)

// Scene is the TOML document drawn by svgdemo. Within a group, shapes are
// drawn before nested groups.
//
//	width = 200
//	height = 120
//	background = "white"
//
//	[[gradient]]
//	id = "sky"
//	type = "linear"
//	x2 = 200
//	stops = [{ offset = 0, color = "navy" }, { offset = 1, color = "#87ceeb" }]
//
//	[[shape]]
//	kind = "rect"
//	width = 200
//	height = 120
//	fill = "url(#sky)"
type Scene struct {
	Width      int            `toml:"width"`
	Height     int            `toml:"height"`
	Background string         `toml:"background"`
	Gradients  []GradientSpec `toml:"gradient"`
	Group
}

// Group is a list of shapes drawn under one graphic state.
type Group struct {
	Opacity   *float64  `toml:"opacity"`
	Transform []float64 `toml:"transform"`
	Clip      *Shape    `toml:"clip"`
	Shapes    []Shape   `toml:"shape"`
	Groups    []Group   `toml:"group"`
}

// Shape is one DrawPath call.
type Shape struct {
	Kind string `toml:"kind"`

	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Cx     float64 `toml:"cx"`
	Cy     float64 `toml:"cy"`
	Rx     float64 `toml:"rx"`
	Ry     float64 `toml:"ry"`
	D      string  `toml:"d"`

	Fill        string    `toml:"fill"`
	Stroke      string    `toml:"stroke"`
	StrokeWidth float64   `toml:"stroke-width"`
	LineCap     string    `toml:"line-cap"`
	LineJoin    string    `toml:"line-join"`
	MiterLimit  float64   `toml:"miter-limit"`
	Dash        []float64 `toml:"dash"`
	DashOffset  float64   `toml:"dash-offset"`

	Opacity   *float64  `toml:"opacity"`
	Transform []float64 `toml:"transform"`
}

// GradientSpec declares a gradient referenced by url(#id).
type GradientSpec struct {
	ID        string     `toml:"id"`
	Type      string     `toml:"type"`
	Spread    string     `toml:"spread"`
	X1        float64    `toml:"x1"`
	Y1        float64    `toml:"y1"`
	X2        float64    `toml:"x2"`
	Y2        float64    `toml:"y2"`
	Cx        float64    `toml:"cx"`
	Cy        float64    `toml:"cy"`
	Fx        *float64   `toml:"fx"`
	Fy        *float64   `toml:"fy"`
	R         float64    `toml:"r"`
	Transform []float64  `toml:"transform"`
	Stops     []StopSpec `toml:"stops"`
}

// StopSpec is one gradient stop.
type StopSpec struct {
	Offset  float64  `toml:"offset"`
	Color   string   `toml:"color"`
	Opacity *float64 `toml:"opacity"`
}

// loadScene reads a scene file. Unknown keys are rejected.
func loadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeScene(f)
}

func decodeScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("scene: line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &s, nil
}

// sceneDrawer draws a Scene with one renderer.
type sceneDrawer struct {
	r         svgnative.Renderer
	gradients map[string]*svgnative.Gradient
}

// Draw renders the scene onto r. The background, when set, covers
// width x height.
func (s *Scene) Draw(r svgnative.Renderer, width, height int) error {
	d := &sceneDrawer{r: r, gradients: make(map[string]*svgnative.Gradient, len(s.Gradients))}
	for _, gs := range s.Gradients {
		g, err := gs.build(r)
		if err != nil {
			return err
		}
		d.gradients[gs.ID] = g
	}
	if s.Background != "" {
		bg := Shape{Kind: "rect", Width: float64(width), Height: float64(height), Fill: s.Background}
		if err := d.drawShape(bg); err != nil {
			return err
		}
	}
	return d.drawGroup(s.Group)
}

func (d *sceneDrawer) drawGroup(g Group) error {
	style, err := d.graphicStyle(g.Opacity, g.Transform)
	if err != nil {
		return err
	}
	if g.Clip != nil {
		p, err := d.buildPath(*g.Clip)
		if err != nil {
			return fmt.Errorf("clip: %w", err)
		}
		style.ClippingPath = &svgnative.ClippingPath{Path: p}
		if len(g.Clip.Transform) > 0 {
			t, err := d.transform(g.Clip.Transform)
			if err != nil {
				return fmt.Errorf("clip: %w", err)
			}
			style.ClippingPath.Transform = t
		}
	}
	return svgnative.WithState(d.r, style, func() error {
		for i, sh := range g.Shapes {
			if err := d.drawShape(sh); err != nil {
				return fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
			}
		}
		for i, child := range g.Groups {
			if err := d.drawGroup(child); err != nil {
				return fmt.Errorf("group %d: %w", i, err)
			}
		}
		return nil
	})
}

func (d *sceneDrawer) drawShape(sh Shape) error {
	p, err := d.buildPath(sh)
	if err != nil {
		return err
	}
	style, err := d.graphicStyle(sh.Opacity, sh.Transform)
	if err != nil {
		return err
	}

	var fill svgnative.FillStyle
	if sh.Fill != "" {
		paint, err := d.paint(sh.Fill)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		fill = svgnative.FillStyle{HasFill: paint != nil, Paint: paint}
	}

	var stroke svgnative.StrokeStyle
	if sh.Stroke != "" {
		paint, err := d.paint(sh.Stroke)
		if err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
		stroke = svgnative.DefaultStrokeStyle(paint)
		stroke.HasStroke = paint != nil
		if sh.StrokeWidth > 0 {
			stroke.LineWidth = sh.StrokeWidth
		}
		if sh.MiterLimit > 0 {
			stroke.MiterLimit = sh.MiterLimit
		}
		if stroke.LineCap, err = parseCap(sh.LineCap); err != nil {
			return err
		}
		if stroke.LineJoin, err = parseJoin(sh.LineJoin); err != nil {
			return err
		}
		stroke.DashArray = sh.Dash
		stroke.DashOffset = sh.DashOffset
	}
	return d.r.DrawPath(p, style, fill, stroke)
}

func (d *sceneDrawer) graphicStyle(opacity *float64, transform []float64) (svgnative.GraphicStyle, error) {
	style := svgnative.DefaultGraphicStyle()
	if opacity != nil {
		style = style.WithOpacity(*opacity)
	}
	if len(transform) > 0 {
		t, err := d.transform(transform)
		if err != nil {
			return style, err
		}
		style.Transform = t
	}
	return style, nil
}

func (d *sceneDrawer) transform(v []float64) (svgnative.Transform, error) {
	if len(v) != 6 {
		return nil, fmt.Errorf("transform needs 6 values, got %d", len(v))
	}
	return d.r.CreateTransform(v[0], v[1], v[2], v[3], v[4], v[5]), nil
}

func (d *sceneDrawer) buildPath(sh Shape) (svgnative.Path, error) {
	p := d.r.CreatePath()
	switch sh.Kind {
	case "rect":
		p.Rect(sh.X, sh.Y, sh.Width, sh.Height)
	case "rounded-rect":
		p.RoundedRect(sh.X, sh.Y, sh.Width, sh.Height, sh.Rx, sh.Ry)
	case "ellipse":
		p.Ellipse(sh.Cx, sh.Cy, sh.Rx, sh.Ry)
	case "path":
		if err := parsePathData(p, sh.D); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
	return p, nil
}

// paint resolves a fill or stroke value: "none", url(#id), a color name
// or a hex color.
func (d *sceneDrawer) paint(v string) (svgnative.Paint, error) {
	v = strings.TrimSpace(v)
	if v == "none" {
		return nil, nil
	}
	if id, ok := strings.CutPrefix(v, "url(#"); ok {
		id = strings.TrimSuffix(id, ")")
		g, ok := d.gradients[id]
		if !ok {
			return nil, fmt.Errorf("unknown gradient %q", id)
		}
		return g, nil
	}
	return parseColor(v)
}

func parseColor(v string) (svgnative.Color, error) {
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return svgnative.FromColor(c), nil
	}
	return svgnative.ParseHex(v)
}

func (gs GradientSpec) build(r svgnative.Renderer) (*svgnative.Gradient, error) {
	var g *svgnative.Gradient
	switch gs.Type {
	case "", "linear":
		g = svgnative.NewLinearGradient(gs.X1, gs.Y1, gs.X2, gs.Y2)
	case "radial":
		g = svgnative.NewRadialGradient(gs.Cx, gs.Cy, gs.R)
		if gs.Fx != nil {
			g.Fx = *gs.Fx
		}
		if gs.Fy != nil {
			g.Fy = *gs.Fy
		}
	default:
		return nil, fmt.Errorf("gradient %q: unknown type %q", gs.ID, gs.Type)
	}

	switch gs.Spread {
	case "", "pad":
		g.Method = svgnative.SpreadPad
	case "reflect":
		g.Method = svgnative.SpreadReflect
	case "repeat":
		g.Method = svgnative.SpreadRepeat
	default:
		return nil, fmt.Errorf("gradient %q: unknown spread %q", gs.ID, gs.Spread)
	}

	if len(gs.Transform) > 0 {
		if len(gs.Transform) != 6 {
			return nil, fmt.Errorf("gradient %q: transform needs 6 values", gs.ID)
		}
		v := gs.Transform
		g.Transform = r.CreateTransform(v[0], v[1], v[2], v[3], v[4], v[5])
	}

	for _, st := range gs.Stops {
		c, err := parseColor(st.Color)
		if err != nil {
			return nil, fmt.Errorf("gradient %q: %w", gs.ID, err)
		}
		if st.Opacity != nil {
			c = c.WithAlpha(*st.Opacity)
		}
		g.AddStop(st.Offset, c)
	}
	return g, nil
}

func parseCap(v string) (svgnative.LineCap, error) {
	switch v {
	case "", "butt":
		return svgnative.CapButt, nil
	case "round":
		return svgnative.CapRound, nil
	case "square":
		return svgnative.CapSquare, nil
	}
	return 0, fmt.Errorf("unknown line cap %q", v)
}

func parseJoin(v string) (svgnative.LineJoin, error) {
	switch v {
	case "", "miter":
		return svgnative.JoinMiter, nil
	case "round":
		return svgnative.JoinRound, nil
	case "bevel":
		return svgnative.JoinBevel, nil
	}
	return 0, fmt.Errorf("unknown line join %q", v)
}
