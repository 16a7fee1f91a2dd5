// Command svgdemo renders a TOML scene through a svgnative backend and
// writes the result as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/svgnative"
	"github.com/gogpu/svgnative/backend/raster"
	"github.com/gogpu/svgnative/recording"
)

func main() {
	var (
		width     = flag.Int("width", 0, "image width (default: scene width or 400)")
		height    = flag.Int("height", 0, "image height (default: scene height or 300)")
		output    = flag.String("output", "svgdemo.png", "output file")
		scenePath = flag.String("scene", "", "TOML scene file (default: built-in demo)")
		backend   = flag.String("backend", "raster", "backend: "+strings.Join(svgnative.Renderers(), ", "))
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		svgnative.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene := demoScene()
	if *scenePath != "" {
		var err error
		if scene, err = loadScene(*scenePath); err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}

	w, h := sceneSize(scene, *width, *height)
	img, err := render(scene, *backend, w, h)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d, %s backend)\n", *output, w, h, *backend)
}

// sceneSize picks the output size: flags first, then the scene, then
// defaults.
func sceneSize(s *Scene, w, h int) (int, int) {
	if w <= 0 {
		w = s.Width
	}
	if h <= 0 {
		h = s.Height
	}
	if w <= 0 {
		w = 400
	}
	if h <= 0 {
		h = 300
	}
	return w, h
}

// surfaceBinder is implemented by backends that draw onto an *image.RGBA.
type surfaceBinder interface {
	SetSurface(dst *image.RGBA)
}

// render draws scene with the named backend. Backends without a surface,
// such as "recording", are played back onto a raster renderer.
func render(scene *Scene, backend string, w, h int) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	r, err := svgnative.NewRenderer(backend)
	if err != nil {
		return nil, err
	}
	if sb, ok := r.(surfaceBinder); ok {
		sb.SetSurface(dst)
	}
	if err := scene.Draw(r, w, h); err != nil {
		return nil, err
	}

	if rec, ok := r.(*recording.Recorder); ok {
		recorded := rec.FinishRecording()
		svgnative.Logger().Debug("svgdemo: replaying recording", "commands", len(recorded.Commands()))
		if err := recorded.Playback(raster.NewRenderer(raster.WithSurface(dst))); err != nil {
			return nil, fmt.Errorf("playback: %w", err)
		}
	}
	return dst, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ptr(v float64) *float64 { return &v }

// demoScene shows gradients, strokes, dashes, clipping and group opacity.
func demoScene() *Scene {
	return &Scene{
		Width:      400,
		Height:     300,
		Background: "#1e2a3a",
		Gradients: []GradientSpec{
			{
				ID: "sunset", Type: "linear", X1: 0, Y1: 0, X2: 0, Y2: 300,
				Stops: []StopSpec{
					{Offset: 0, Color: "midnightblue"},
					{Offset: 0.6, Color: "#ff7f50"},
					{Offset: 1, Color: "gold"},
				},
			},
			{
				ID: "glow", Type: "radial", Cx: 300, Cy: 90, R: 60, Fx: ptr(285), Fy: ptr(75),
				Stops: []StopSpec{
					{Offset: 0, Color: "white"},
					{Offset: 1, Color: "orange", Opacity: ptr(0)},
				},
			},
			{
				ID: "stripes", Type: "linear", X1: 0, Y1: 0, X2: 20, Y2: 0, Spread: "reflect",
				Stops: []StopSpec{
					{Offset: 0, Color: "teal"},
					{Offset: 1, Color: "aquamarine"},
				},
			},
		},
		Group: Group{
			Shapes: []Shape{
				{Kind: "rect", Width: 400, Height: 300, Fill: "url(#sunset)"},
				{Kind: "ellipse", Cx: 300, Cy: 90, Rx: 60, Ry: 60, Fill: "url(#glow)"},
				{
					Kind: "path", D: "M 0 300 L 0 220 Q 100 160 200 220 Q 300 280 400 210 L 400 300 Z",
					Fill: "darkslategray", Stroke: "black", StrokeWidth: 2, LineJoin: "round",
				},
				{
					Kind: "path", D: "M 20 40 C 80 10 140 70 200 40",
					Stroke: "white", StrokeWidth: 4, LineCap: "round", Dash: []float64{12, 8},
				},
			},
			Groups: []Group{
				{
					Opacity:   ptr(0.7),
					Transform: []float64{1, 0, 0, 1, 40, 120},
					Clip:      &Shape{Kind: "ellipse", Cx: 60, Cy: 40, Rx: 60, Ry: 40},
					Shapes: []Shape{
						{Kind: "rect", Width: 120, Height: 80, Fill: "url(#stripes)"},
						{Kind: "rounded-rect", X: 20, Y: 20, Width: 80, Height: 40, Rx: 10, Ry: 10, Fill: "crimson"},
					},
				},
				{
					Transform: []float64{0.866, 0.5, -0.5, 0.866, 260, 170},
					Shapes: []Shape{
						{
							Kind: "rounded-rect", X: -30, Y: -20, Width: 60, Height: 40, Rx: 8, Ry: 8,
							Fill: "#ffffff80", Stroke: "navy", StrokeWidth: 3, LineJoin: "bevel",
						},
					},
				},
			},
		},
	}
}
