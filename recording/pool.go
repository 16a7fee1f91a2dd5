package recording

import "github.com/gogpu/svgnative"

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Each Add operation copies mutable resources so the recording cannot be
// changed through the caller's values.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*svgnative.Geometry
	paints []svgnative.Paint
	images []*svgnative.Image
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*svgnative.Geometry, 0, 64),
		paints: make([]svgnative.Paint, 0, 32),
		images: make([]*svgnative.Image, 0, 8),
	}
}

// AddPath adds a finalized copy of path to the pool and returns its
// reference.
func (p *ResourcePool) AddPath(path *svgnative.Geometry) PathRef {
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *svgnative.Geometry {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddPaint adds a copy of paint to the pool. A nil paint is not stored and
// yields InvalidRef.
func (p *ResourcePool) AddPaint(paint svgnative.Paint) PaintRef {
	if paint == nil {
		return PaintRef(InvalidRef)
	}
	p.paints = append(p.paints, svgnative.ClonePaint(paint))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PaintRef(uint32(len(p.paints) - 1))
}

// GetPaint returns the paint for the given reference, or nil.
func (p *ResourcePool) GetPaint(ref PaintRef) svgnative.Paint {
	if int(ref) >= len(p.paints) {
		return nil
	}
	return p.paints[ref]
}

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int {
	return len(p.paints)
}

// AddImage adds an image to the pool. Decoded images are never mutated, so
// the same image added twice shares one entry.
func (p *ResourcePool) AddImage(img *svgnative.Image) ImageRef {
	for i, existing := range p.images {
		if existing == img {
			// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
			return ImageRef(uint32(i))
		}
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) *svgnative.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}
