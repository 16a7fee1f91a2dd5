package svgnative

// Renderer is the drawing contract implemented by every backend.
//
// A Renderer is not safe for concurrent use. Paths, transforms and images
// passed to it must have been created by a svgnative renderer; backends
// never retain them past the call they are passed to.
type Renderer interface {
	// CreatePath returns an empty path.
	CreatePath() Path

	// CreateTransform returns a transform holding (a, b, c, d, tx, ty).
	CreateTransform(a, b, c, d, tx, ty float64) Transform

	// CreateImageData decodes a base64 image payload.
	CreateImageData(payload string, enc ImageEncoding) (ImageData, error)

	// Save pushes a graphic state: its transform is composed with the
	// enclosing one, its clip is intersected with the enclosing clip, and
	// its opacity is applied to everything drawn until the matching
	// Restore as a single group.
	Save(style GraphicStyle) error

	// Restore pops the graphic state pushed by the matching Save. Calling
	// Restore without a matching Save panics.
	Restore()

	// DrawPath fills and then strokes path under style. With neither fill
	// nor stroke enabled nothing is drawn.
	DrawPath(path Path, style GraphicStyle, fill FillStyle, stroke StrokeStyle) error

	// DrawImage draws image scaled into fillArea and clipped to clipArea,
	// both in user space, under style.
	DrawImage(image ImageData, style GraphicStyle, clipArea, fillArea Rect) error
}

// Scope restores a graphic state pushed by [Begin] exactly once.
type Scope struct {
	r    Renderer
	done bool
}

// Begin saves style on r and returns a scope whose End restores it.
//
//	scope, err := svgnative.Begin(r, style)
//	if err != nil {
//		return err
//	}
//	defer scope.End()
func Begin(r Renderer, style GraphicStyle) (*Scope, error) {
	if err := r.Save(style); err != nil {
		return nil, err
	}
	return &Scope{r: r}, nil
}

// End restores the graphic state. Subsequent calls do nothing.
func (s *Scope) End() {
	if s == nil || s.done {
		return
	}
	s.done = true
	s.r.Restore()
}

// WithState runs fn between Save(style) and the matching Restore. The
// state is restored on every exit path, including a panic in fn.
func WithState(r Renderer, style GraphicStyle, fn func() error) error {
	scope, err := Begin(r, style)
	if err != nil {
		return err
	}
	defer scope.End()
	return fn()
}
