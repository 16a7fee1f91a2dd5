package clip

import (
	"image"

	"github.com/gogpu/svgnative"
	"github.com/gogpu/svgnative/internal/pool"
)

// Stack manages hierarchical clip masks with push/pop operations. Each
// entry holds the intersection of its own clip with every entry below it,
// so Top is always the effective clip. A nil top means no clipping.
type Stack struct {
	entries []*image.Alpha
	raster  *Rasterizer
	pool    *pool.Pool
}

// NewStack creates an empty stack covering bounds. Masks are taken from and
// returned to p.
func NewStack(bounds image.Rectangle, p *pool.Pool) *Stack {
	if p == nil {
		p = pool.Default()
	}
	return &Stack{
		entries: make([]*image.Alpha, 0, 8),
		raster:  NewRasterizer(bounds),
		pool:    p,
	}
}

// Bounds returns the device rectangle covered by the stack.
func (s *Stack) Bounds() image.Rectangle {
	return s.raster.Bounds()
}

// Rasterizer returns the rasterizer shared with the stack.
func (s *Stack) Rasterizer() *Rasterizer {
	return s.raster
}

// Push rasterizes figs under m, intersects the result with the current
// top, and pushes it.
func (s *Stack) Push(figs []svgnative.Figure, m svgnative.Matrix) {
	mask := s.pool.Alpha(s.raster.Bounds())
	s.raster.Fill(mask, figs, m)
	if top := s.Top(); top != nil {
		Intersect(mask, top)
	}
	s.entries = append(s.entries, mask)
}

// PushInherited pushes an entry that shares the current clip.
func (s *Stack) PushInherited() {
	s.entries = append(s.entries, nil)
}

// Pop removes the most recent entry. If the stack is empty, this is a
// no-op.
func (s *Stack) Pop() {
	n := len(s.entries)
	if n == 0 {
		return
	}
	top := s.entries[n-1]
	s.entries = s.entries[:n-1]
	if top != nil {
		s.pool.PutAlpha(top)
	}
}

// Top returns the effective clip mask, or nil if nothing is clipped.
func (s *Stack) Top() *image.Alpha {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i] != nil {
			return s.entries[i]
		}
	}
	return nil
}

// Empty reports whether the effective clip covers no pixel at all.
func (s *Stack) Empty() bool {
	top := s.Top()
	return top != nil && IsEmpty(top)
}

// Reset pops every entry.
func (s *Stack) Reset() {
	for len(s.entries) > 0 {
		s.Pop()
	}
}
