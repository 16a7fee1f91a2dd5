package svgnative

import "errors"

var (
	// ErrNoSurface is returned by drawing operations on a renderer that has
	// no target surface bound.
	ErrNoSurface = errors.New("svgnative: no surface bound")

	// ErrImageDecode is returned when image data cannot be decoded.
	ErrImageDecode = errors.New("svgnative: image decode failed")

	// ErrUnsupportedEncoding is returned for an unknown ImageEncoding.
	ErrUnsupportedEncoding = errors.New("svgnative: unsupported image encoding")
)
