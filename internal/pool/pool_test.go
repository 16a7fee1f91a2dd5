package pool

import (
	"image"
	"image/color"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		maxPerBucket int
	}{
		{"zero means unlimited", 0},
		{"positive limit", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.maxPerBucket)
			if p.maxSize != tt.maxPerBucket {
				t.Errorf("maxSize = %d, want %d", p.maxSize, tt.maxPerBucket)
			}
			if p.Len() != 0 {
				t.Errorf("Len() = %d, want 0", p.Len())
			}
		})
	}
}

func TestPool_RGBAReuseIsCleared(t *testing.T) {
	p := New(4)
	r := image.Rect(0, 0, 10, 10)

	img := p.RGBA(r)
	img.Set(3, 3, color.RGBA{255, 0, 0, 255})
	p.PutRGBA(img)
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}

	got := p.RGBA(r)
	if got != img {
		t.Error("expected the pooled layer to be reused")
	}
	if c := got.RGBAAt(3, 3); c != (color.RGBA{}) {
		t.Errorf("reused layer pixel = %v, want transparent", c)
	}
}

func TestPool_BucketsByBounds(t *testing.T) {
	p := New(4)
	a := p.Alpha(image.Rect(0, 0, 8, 8))
	p.PutAlpha(a)

	b := p.Alpha(image.Rect(0, 0, 16, 16))
	if b == a {
		t.Error("mask of different bounds must not be reused")
	}
	if b.Rect != image.Rect(0, 0, 16, 16) {
		t.Errorf("bounds = %v, want 16x16", b.Rect)
	}
}

func TestPool_MaxPerBucket(t *testing.T) {
	p := New(2)
	r := image.Rect(0, 0, 4, 4)
	for i := 0; i < 5; i++ {
		p.PutAlpha(image.NewAlpha(r))
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPool_PutNil(t *testing.T) {
	p := New(0)
	p.PutRGBA(nil)
	p.PutAlpha(nil)
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := New(0)
	r := image.Rect(0, 0, 32, 32)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p.PutRGBA(p.RGBA(r))
				p.PutAlpha(p.Alpha(r))
			}
		}()
	}
	wg.Wait()
}

func TestPool_BucketCountBounded(t *testing.T) {
	p := New(8)
	for i := 1; i <= 100; i++ {
		r := image.Rect(0, 0, i, i)
		p.PutRGBA(image.NewRGBA(r))
		p.PutAlpha(image.NewAlpha(r))
	}
	if got := p.Buckets(); got > 2*MaxBuckets {
		t.Errorf("Buckets() = %d, want <= %d", got, 2*MaxBuckets)
	}
	if got := p.Len(); got > 2*MaxBuckets {
		t.Errorf("Len() = %d, want <= %d", got, 2*MaxBuckets)
	}
}

func TestPool_TakeDropsEmptyBucket(t *testing.T) {
	p := New(4)
	r := image.Rect(0, 0, 6, 6)
	p.PutRGBA(image.NewRGBA(r))
	if p.Buckets() != 1 {
		t.Fatalf("Buckets() = %d, want 1", p.Buckets())
	}
	p.RGBA(r)
	if p.Buckets() != 0 {
		t.Errorf("Buckets() = %d after draining, want 0", p.Buckets())
	}
}
