package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/svgnative"
)

// frame is one entry of the graphic state stack.
type frame struct {
	ctm svgnative.Matrix

	// opacity is the frame's own group opacity.
	opacity float64

	// hidden is set when this frame or an ancestor has zero opacity or a
	// clip that covers nothing.
	hidden bool

	// layer receives drawing for this frame when opacity < 1. nil means
	// drawing goes to the enclosing target.
	layer *image.RGBA

	// target is where drawing for this frame ends up.
	target *image.RGBA
}

// top returns the current frame. The base frame draws to the surface with
// the identity transform.
func (r *Renderer) top() *frame {
	return &r.frames[len(r.frames)-1]
}

// Save pushes a graphic state. See svgnative.Renderer.
func (r *Renderer) Save(style svgnative.GraphicStyle) error {
	if r.surface == nil {
		return svgnative.ErrNoSurface
	}
	parent := r.top()

	f := frame{
		ctm:     svgnative.MatrixOf(style.Transform).Multiply(parent.ctm),
		opacity: style.Opacity(),
		hidden:  parent.hidden,
		target:  parent.target,
	}

	if cp := style.ClippingPath; cp != nil && cp.Path != nil {
		clipM := svgnative.MatrixOf(cp.Transform).Multiply(parent.ctm)
		r.clips.Push(svgnative.GeometryOf(cp.Path).Figures(), clipM)
		if r.clips.Empty() {
			f.hidden = true
		}
	} else {
		r.clips.PushInherited()
	}

	switch {
	case f.opacity <= 0:
		f.hidden = true
	case f.opacity < 1 && !f.hidden:
		f.layer = r.pool.RGBA(r.surface.Rect)
		f.target = f.layer
	}

	r.frames = append(r.frames, f)
	return nil
}

// Restore pops the graphic state pushed by the matching Save, compositing
// its layer into the enclosing target. Restore without a matching Save
// panics.
func (r *Renderer) Restore() {
	if len(r.frames) <= 1 {
		panic("svgnative: Restore without matching Save")
	}
	f := r.frames[len(r.frames)-1]
	r.frames = r.frames[:len(r.frames)-1]
	r.clips.Pop()

	if f.layer == nil {
		return
	}
	dst := r.top().target
	mask := image.NewUniform(color.Alpha16{A: uint16(f.opacity*0xffff + 0.5)})
	draw.DrawMask(dst, dst.Rect, f.layer, dst.Rect.Min, mask, image.Point{}, draw.Over)
	r.pool.PutRGBA(f.layer)
}

// Depth returns the number of saved graphic states.
func (r *Renderer) Depth() int {
	return len(r.frames) - 1
}

// CTM returns the current transformation matrix.
func (r *Renderer) CTM() svgnative.Matrix {
	return r.top().ctm
}

// resetFrames discards all saved states and their layers.
func (r *Renderer) resetFrames() {
	for len(r.frames) > 1 {
		f := r.frames[len(r.frames)-1]
		r.frames = r.frames[:len(r.frames)-1]
		if f.layer != nil {
			r.pool.PutRGBA(f.layer)
		}
	}
	if r.clips != nil {
		r.clips.Reset()
	}
	r.frames = r.frames[:0]
	r.frames = append(r.frames, frame{ctm: svgnative.Identity(), opacity: 1, target: r.surface})
}
