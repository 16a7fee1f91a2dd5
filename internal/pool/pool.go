// Package pool recycles the scratch rasters used for compositing layers and
// clip masks.
package pool

import (
	"image"
	"sync"
)

// MaxBuckets is the number of distinct bounds retained per buffer kind.
// Putting a buffer with new bounds into a full pool evicts another bucket.
const MaxBuckets = 4

// Pool is a thread-safe pool of *image.RGBA layers and *image.Alpha masks,
// bucketed by bounds. Buffers returned by Get are always cleared.
type Pool struct {
	mu      sync.Mutex
	layers  map[image.Rectangle][]*image.RGBA
	masks   map[image.Rectangle][]*image.Alpha
	maxSize int // max buffers per bucket, 0 for unlimited
}

// New creates a pool that retains at most maxPerBucket buffers of each
// bounds and kind. A maxPerBucket of 0 means unlimited.
func New(maxPerBucket int) *Pool {
	return &Pool{
		layers:  make(map[image.Rectangle][]*image.RGBA),
		masks:   make(map[image.Rectangle][]*image.Alpha),
		maxSize: maxPerBucket,
	}
}

// RGBA returns a transparent layer with bounds r.
func (p *Pool) RGBA(r image.Rectangle) *image.RGBA {
	p.mu.Lock()
	img, ok := take(p.layers, r)
	p.mu.Unlock()
	if !ok {
		return image.NewRGBA(r)
	}
	clear(img.Pix)
	return img
}

// PutRGBA returns a layer to the pool. nil is ignored.
func (p *Pool) PutRGBA(img *image.RGBA) {
	if img == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	put(p.layers, img.Rect, img, p.maxSize)
}

// Alpha returns a zeroed mask with bounds r.
func (p *Pool) Alpha(r image.Rectangle) *image.Alpha {
	p.mu.Lock()
	m, ok := take(p.masks, r)
	p.mu.Unlock()
	if !ok {
		return image.NewAlpha(r)
	}
	clear(m.Pix)
	return m
}

// PutAlpha returns a mask to the pool. nil is ignored.
func (p *Pool) PutAlpha(m *image.Alpha) {
	if m == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	put(p.masks, m.Rect, m, p.maxSize)
}

// take pops a buffer from the bucket for r. Emptied buckets are removed.
func take[T any](buckets map[image.Rectangle][]T, r image.Rectangle) (T, bool) {
	bucket := buckets[r]
	n := len(bucket)
	if n == 0 {
		var zero T
		return zero, false
	}
	v := bucket[n-1]
	if n == 1 {
		delete(buckets, r)
	} else {
		buckets[r] = bucket[:n-1]
	}
	return v, true
}

func put[T any](buckets map[image.Rectangle][]T, r image.Rectangle, v T, maxSize int) {
	bucket, ok := buckets[r]
	if !ok && len(buckets) >= MaxBuckets {
		for k := range buckets {
			delete(buckets, k)
			break
		}
	}
	if maxSize > 0 && len(bucket) >= maxSize {
		return
	}
	buckets[r] = append(bucket, v)
}

// Buckets returns the number of distinct bounds currently retained.
func (p *Pool) Buckets() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.layers) + len(p.masks)
}

// Len returns the number of pooled buffers of both kinds.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.layers {
		n += len(b)
	}
	for _, b := range p.masks {
		n += len(b)
	}
	return n
}

var defaultPool = New(8)

// Default returns the package-level pool.
func Default() *Pool { return defaultPool }
