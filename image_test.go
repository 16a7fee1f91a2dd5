package svgnative

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(80 * x), G: uint8(120 * y), B: 200, A: 255})
		}
	}
	return img
}

func encodeBase64(t *testing.T, enc func(*bytes.Buffer, image.Image) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, testImage()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeImageData_Encodings(t *testing.T) {
	tests := []struct {
		name string
		enc  ImageEncoding
		fn   func(*bytes.Buffer, image.Image) error
	}{
		{"png", EncodingPNG, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) }},
		{"jpeg", EncodingJPEG, func(b *bytes.Buffer, m image.Image) error { return jpeg.Encode(b, m, nil) }},
		{"bmp", EncodingBMP, func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) }},
		{"tiff", EncodingTIFF, func(b *bytes.Buffer, m image.Image) error { return tiff.Encode(b, m, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeImageData(encodeBase64(t, tt.fn), tt.enc)
			if err != nil {
				t.Fatalf("DecodeImageData() error = %v", err)
			}
			if img.Width() != 3 || img.Height() != 2 {
				t.Errorf("size = %vx%v, want 3x2", img.Width(), img.Height())
			}
			if img.Image() == nil {
				t.Error("Image() = nil")
			}
		})
	}
}

func TestDecodeImageData_PayloadForms(t *testing.T) {
	raw := encodeBase64(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })

	var wrapped strings.Builder
	for i := 0; i < len(raw); i += 16 {
		end := min(i+16, len(raw))
		wrapped.WriteString(raw[i:end])
		wrapped.WriteString("\n  ")
	}

	tests := []struct {
		name    string
		payload string
	}{
		{"plain", raw},
		{"data URI", "data:image/png;base64," + raw},
		{"line wrapped", wrapped.String()},
		{"unpadded", strings.TrimRight(raw, "=")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeImageData(tt.payload, EncodingPNG)
			if err != nil {
				t.Fatalf("DecodeImageData() error = %v", err)
			}
			if got := color.NRGBAModel.Convert(img.Image().At(2, 1)).(color.NRGBA); got != (color.NRGBA{R: 160, G: 120, B: 200, A: 255}) {
				t.Errorf("pixel (2,1) = %+v", got)
			}
		})
	}
}

func TestDecodeImageData_Errors(t *testing.T) {
	png64 := encodeBase64(t, func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) })

	tests := []struct {
		name    string
		payload string
		enc     ImageEncoding
		wantErr error
	}{
		{"unknown encoding", png64, ImageEncoding(42), ErrUnsupportedEncoding},
		{"bad base64", "!!!not base64!!!", EncodingPNG, ErrImageDecode},
		{"wrong format", png64, EncodingJPEG, ErrImageDecode},
		{"empty", "", EncodingPNG, ErrImageDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImageData(tt.payload, tt.enc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodingFromMIME(t *testing.T) {
	tests := []struct {
		mime   string
		want   ImageEncoding
		wantOK bool
	}{
		{"image/png", EncodingPNG, true},
		{" IMAGE/JPEG ", EncodingJPEG, true},
		{"image/jpg", EncodingJPEG, true},
		{"image/gif", EncodingGIF, true},
		{"image/x-ms-bmp", EncodingBMP, true},
		{"image/tiff", EncodingTIFF, true},
		{"image/webp", EncodingWebP, true},
		{"image/svg+xml", 0, false},
	}
	for _, tt := range tests {
		got, ok := EncodingFromMIME(tt.mime)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("EncodingFromMIME(%q) = %v, %v, want %v, %v", tt.mime, got, ok, tt.want, tt.wantOK)
		}
	}
	if s := ImageEncoding(42).String(); s != "ImageEncoding(42)" {
		t.Errorf("String() = %q", s)
	}
}

func TestImageOf(t *testing.T) {
	img := NewImage(testImage())
	if ImageOf(img) != img {
		t.Error("ImageOf(*Image) should return the same value")
	}
	defer func() {
		if recover() == nil {
			t.Error("ImageOf(foreign) should panic")
		}
	}()
	ImageOf(foreignImage{})
}

type foreignImage struct{}

func (foreignImage) Width() float64  { return 1 }
func (foreignImage) Height() float64 { return 1 }
