package recording

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/svgnative"
)

func init() {
	svgnative.Register("recording", func() svgnative.Renderer {
		return NewRecorder()
	})
}

// Recorder is a svgnative.Renderer that captures calls as commands. Use
// FinishRecording to obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
	depth     int
	log       *slog.Logger
}

var _ svgnative.Renderer = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		log:       svgnative.Logger(),
	}
}

// CreatePath returns an empty path.
func (r *Recorder) CreatePath() svgnative.Path {
	return svgnative.NewGeometry()
}

// CreateTransform returns a transform holding (a, b, c, d, tx, ty).
func (r *Recorder) CreateTransform(a, b, c, d, tx, ty float64) svgnative.Transform {
	return svgnative.NewAffineTransform(a, b, c, d, tx, ty)
}

// CreateImageData decodes a base64 image payload.
func (r *Recorder) CreateImageData(payload string, enc svgnative.ImageEncoding) (svgnative.ImageData, error) {
	img, err := svgnative.DecodeImageData(payload, enc)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Save records a graphic state push.
func (r *Recorder) Save(style svgnative.GraphicStyle) error {
	r.commands = append(r.commands, SaveCommand{Style: r.recordStyle(style)})
	r.depth++
	return nil
}

// Restore records a graphic state pop. It panics without a matching Save.
func (r *Recorder) Restore() {
	if r.depth == 0 {
		panic("svgnative: Restore without matching Save")
	}
	r.depth--
	r.commands = append(r.commands, RestoreCommand{})
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return r.depth
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// DrawPath records a fill and stroke of path. Calls with neither pass
// enabled are not recorded; the path is finalized either way.
func (r *Recorder) DrawPath(path svgnative.Path, style svgnative.GraphicStyle, fill svgnative.FillStyle, stroke svgnative.StrokeStyle) error {
	geom := svgnative.GeometryOf(path)
	geom.Finalize()
	if !fill.Enabled() && !stroke.Enabled() {
		r.log.Debug("recording: DrawPath without fill or stroke skipped")
		return nil
	}
	r.commands = append(r.commands, DrawPathCommand{
		Path:   r.resources.AddPath(geom),
		Style:  r.recordStyle(style),
		Fill:   r.recordFill(fill),
		Stroke: r.recordStroke(stroke),
	})
	return nil
}

// DrawImage records an image draw.
func (r *Recorder) DrawImage(image svgnative.ImageData, style svgnative.GraphicStyle, clipArea, fillArea svgnative.Rect) error {
	img := svgnative.ImageOf(image)
	r.commands = append(r.commands, DrawImageCommand{
		Image:    r.resources.AddImage(img),
		Style:    r.recordStyle(style),
		ClipArea: clipArea,
		FillArea: fillArea,
	})
	return nil
}

// FinishRecording returns the recorded commands as an immutable Recording
// and resets the Recorder. Saves still open are closed with Restore
// commands so the recording always plays back balanced.
func (r *Recorder) FinishRecording() *Recording {
	if r.depth > 0 {
		r.log.Warn("recording: closing unmatched Save calls", "depth", r.depth)
		for ; r.depth > 0; r.depth-- {
			r.commands = append(r.commands, RestoreCommand{})
		}
	}
	rec := &Recording{
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 256)
	r.resources = NewResourcePool()
	return rec
}

func (r *Recorder) recordStyle(s svgnative.GraphicStyle) Style {
	out := Style{Transparency: s.Transparency}
	if s.Transform != nil {
		m := s.Transform.Matrix()
		out.Transform = &m
	}
	if s.ClippingPath != nil && s.ClippingPath.Path != nil {
		g := svgnative.GeometryOf(s.ClippingPath.Path)
		g.Finalize()
		clip := &Clip{Path: r.resources.AddPath(g)}
		if s.ClippingPath.Transform != nil {
			m := s.ClippingPath.Transform.Matrix()
			clip.Transform = &m
		}
		out.Clip = clip
	}
	return out
}

func (r *Recorder) recordFill(f svgnative.FillStyle) Fill {
	return Fill{HasFill: f.HasFill, Paint: r.resources.AddPaint(f.Paint)}
}

func (r *Recorder) recordStroke(s svgnative.StrokeStyle) Stroke {
	out := Stroke{
		HasStroke:  s.HasStroke,
		LineWidth:  s.LineWidth,
		LineCap:    s.LineCap,
		LineJoin:   s.LineJoin,
		MiterLimit: s.MiterLimit,
		DashOffset: s.DashOffset,
		Paint:      r.resources.AddPaint(s.Paint),
	}
	if len(s.DashArray) > 0 {
		out.DashArray = append([]float64(nil), s.DashArray...)
	}
	return out
}

// Recording is an immutable list of recorded commands and the resources
// they reference.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording onto dst. Paths and transforms are
// rebuilt with dst's own factories. On error, graphic states pushed by the
// playback are restored before returning.
func (r *Recording) Playback(dst svgnative.Renderer) (err error) {
	depth := 0
	defer func() {
		if err != nil {
			for ; depth > 0; depth-- {
				dst.Restore()
			}
		}
	}()

	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			err = dst.Save(r.buildStyle(dst, c.Style))
			if err == nil {
				depth++
			}
		case RestoreCommand:
			dst.Restore()
			depth--
		case DrawPathCommand:
			err = dst.DrawPath(r.buildPath(dst, c.Path), r.buildStyle(dst, c.Style),
				r.buildFill(c.Fill), r.buildStroke(c.Stroke))
		case DrawImageCommand:
			img := r.resources.GetImage(c.Image)
			if img == nil {
				err = fmt.Errorf("missing image %d", c.Image)
				break
			}
			err = dst.DrawImage(img, r.buildStyle(dst, c.Style), c.ClipArea, c.FillArea)
		}
		if err != nil {
			return fmt.Errorf("recording: command %d (%v): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

func (r *Recording) buildPath(dst svgnative.Renderer, ref PathRef) svgnative.Path {
	p := dst.CreatePath()
	if g := r.resources.GetPath(ref); g != nil {
		g.Replay(p)
	}
	return p
}

func buildTransform(dst svgnative.Renderer, m *svgnative.Matrix) svgnative.Transform {
	if m == nil {
		return nil
	}
	return dst.CreateTransform(m.A, m.B, m.C, m.D, m.Tx, m.Ty)
}

func (r *Recording) buildStyle(dst svgnative.Renderer, s Style) svgnative.GraphicStyle {
	out := svgnative.GraphicStyle{
		Transparency: s.Transparency,
		Transform:    buildTransform(dst, s.Transform),
	}
	if s.Clip != nil {
		out.ClippingPath = &svgnative.ClippingPath{
			Path:      r.buildPath(dst, s.Clip.Path),
			Transform: buildTransform(dst, s.Clip.Transform),
		}
	}
	return out
}

func (r *Recording) buildFill(f Fill) svgnative.FillStyle {
	return svgnative.FillStyle{HasFill: f.HasFill, Paint: r.resources.GetPaint(f.Paint)}
}

func (r *Recording) buildStroke(s Stroke) svgnative.StrokeStyle {
	return svgnative.StrokeStyle{
		HasStroke:  s.HasStroke,
		LineWidth:  s.LineWidth,
		LineCap:    s.LineCap,
		LineJoin:   s.LineJoin,
		MiterLimit: s.MiterLimit,
		DashArray:  s.DashArray,
		DashOffset: s.DashOffset,
		Paint:      r.resources.GetPaint(s.Paint),
	}
}
