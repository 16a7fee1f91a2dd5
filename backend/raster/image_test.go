package raster

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/svgnative"
)

// checkerPayload returns a base64 PNG: red and green on the top row, blue
// and white on the bottom row.
func checkerPayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDrawImage_ScalesIntoFillArea(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	r := NewRenderer(WithSurface(dst), WithInterpolator(draw.NearestNeighbor))

	data, err := r.CreateImageData(checkerPayload(t), svgnative.EncodingPNG)
	if err != nil {
		t.Fatalf("CreateImageData() error = %v", err)
	}
	if data.Width() != 2 || data.Height() != 2 {
		t.Fatalf("size = %vx%v, want 2x2", data.Width(), data.Height())
	}

	area := svgnative.Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if err := r.DrawImage(data, opaque(), area, area); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top-left quadrant", 12, 12, color.RGBA{255, 0, 0, 255}},
		{"top-right quadrant", 27, 12, color.RGBA{0, 255, 0, 255}},
		{"bottom-left quadrant", 12, 27, color.RGBA{0, 0, 255, 255}},
		{"bottom-right quadrant", 27, 27, color.RGBA{255, 255, 255, 255}},
		{"outside", 5, 5, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dst.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawImage_ClippedToClipArea(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	r := NewRenderer(WithSurface(dst), WithInterpolator(draw.NearestNeighbor))

	data, err := r.CreateImageData(checkerPayload(t), svgnative.EncodingPNG)
	if err != nil {
		t.Fatal(err)
	}
	fill := svgnative.Rect{X: 0, Y: 0, Width: 40, Height: 40}
	clipArea := svgnative.Rect{X: 0, Y: 0, Width: 20, Height: 40}
	if err := r.DrawImage(data, opaque(), clipArea, fill); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}

	if got := dst.RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel inside clip = %v, want red", got)
	}
	if got := dst.RGBAAt(30, 5); got != (color.RGBA{}) {
		t.Errorf("pixel outside clip = %v, want transparent", got)
	}
}

func TestDrawImage_Transformed(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	r := NewRenderer(WithSurface(dst), WithInterpolator(draw.NearestNeighbor))

	data, err := r.CreateImageData(checkerPayload(t), svgnative.EncodingPNG)
	if err != nil {
		t.Fatal(err)
	}
	style := opaque()
	style.Transform = r.CreateTransform(1, 0, 0, 1, 20, 20)
	area := svgnative.Rect{Width: 10, Height: 10}
	if err := r.DrawImage(data, style, area, area); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}

	if got := dst.RGBAAt(21, 21); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want red", got)
	}
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("pixel = %v, want transparent", got)
	}
}

func TestCreateImageData_Errors(t *testing.T) {
	r := NewRenderer()
	if _, err := r.CreateImageData("not base64!", svgnative.EncodingPNG); err == nil {
		t.Error("expected an error for an invalid payload")
	}
}
