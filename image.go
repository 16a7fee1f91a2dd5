package svgnative

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ImageEncoding identifies the format of embedded image data.
type ImageEncoding uint8

const (
	// EncodingPNG is image/png.
	EncodingPNG ImageEncoding = iota
	// EncodingJPEG is image/jpeg.
	EncodingJPEG
	// EncodingGIF is image/gif. Only the first frame is used.
	EncodingGIF
	// EncodingBMP is image/bmp.
	EncodingBMP
	// EncodingTIFF is image/tiff.
	EncodingTIFF
	// EncodingWebP is image/webp.
	EncodingWebP
)

// String returns the MIME subtype of the encoding.
func (e ImageEncoding) String() string {
	switch e {
	case EncodingPNG:
		return "png"
	case EncodingJPEG:
		return "jpeg"
	case EncodingGIF:
		return "gif"
	case EncodingBMP:
		return "bmp"
	case EncodingTIFF:
		return "tiff"
	case EncodingWebP:
		return "webp"
	default:
		return fmt.Sprintf("ImageEncoding(%d)", e)
	}
}

// EncodingFromMIME maps an image MIME type such as "image/png" to an
// encoding.
func EncodingFromMIME(mime string) (ImageEncoding, bool) {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/png":
		return EncodingPNG, true
	case "image/jpeg", "image/jpg":
		return EncodingJPEG, true
	case "image/gif":
		return EncodingGIF, true
	case "image/bmp", "image/x-ms-bmp":
		return EncodingBMP, true
	case "image/tiff":
		return EncodingTIFF, true
	case "image/webp":
		return EncodingWebP, true
	}
	return 0, false
}

func (e ImageEncoding) decoder() (func(io.Reader) (image.Image, error), bool) {
	switch e {
	case EncodingPNG:
		return png.Decode, true
	case EncodingJPEG:
		return jpeg.Decode, true
	case EncodingGIF:
		return gif.Decode, true
	case EncodingBMP:
		return bmp.Decode, true
	case EncodingTIFF:
		return tiff.Decode, true
	case EncodingWebP:
		return webp.Decode, true
	}
	return nil, false
}

// ImageData is a decoded raster created by [Renderer.CreateImageData].
type ImageData interface {
	Width() float64
	Height() float64
}

// Image is the reference [ImageData] shared by all backends.
type Image struct {
	img image.Image
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	return &Image{img: img}
}

// Width returns the image width in pixels.
func (i *Image) Width() float64 { return float64(i.img.Bounds().Dx()) }

// Height returns the image height in pixels.
func (i *Image) Height() float64 { return float64(i.img.Bounds().Dy()) }

// Image returns the decoded raster.
func (i *Image) Image() image.Image { return i.img }

// DecodeImageData decodes a base64 payload in the given encoding. ASCII
// whitespace inside the payload is ignored, and a leading data URI header
// ("data:image/png;base64,") is stripped.
func DecodeImageData(payload string, enc ImageEncoding) (*Image, error) {
	decode, ok := enc.decoder()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, enc)
	}
	if strings.HasPrefix(payload, "data:") {
		if i := strings.IndexByte(payload, ','); i >= 0 {
			payload = payload[i+1:]
		}
	}
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		}
		return r
	}, payload)

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some producers omit padding.
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: base64: %w", ErrImageDecode, err)
		}
	}
	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrImageDecode, enc, err)
	}
	return &Image{img: img}, nil
}

// ImageOf returns the reference image behind d, panicking for foreign
// implementations.
func ImageOf(d ImageData) *Image {
	switch v := d.(type) {
	case *Image:
		return v
	case interface{ Image() *Image }:
		return v.Image()
	default:
		panic("svgnative: image was not created by a svgnative renderer")
	}
}
