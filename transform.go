package svgnative

// Transform is a mutable affine transformation created by a [Renderer].
//
// Every mutating operation composes in local space: the new operation is
// applied to coordinates before the transformation accumulated so far, the
// way nested SVG transform attributes compose.
type Transform interface {
	// Set overwrites all six components.
	Set(a, b, c, d, tx, ty float64)

	// Rotate rotates by deg degrees.
	Rotate(deg float64)

	// Translate translates by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales by (sx, sy).
	Scale(sx, sy float64)

	// Concat composes the matrix (a, b, c, d, tx, ty) in local space.
	Concat(a, b, c, d, tx, ty float64)

	// Matrix returns the current value.
	Matrix() Matrix
}

// AffineTransform is the reference [Transform] shared by all backends.
// The zero value is not the identity; use [NewAffineTransform].
type AffineTransform struct {
	m Matrix
}

// NewAffineTransform returns a transform holding (a, b, c, d, tx, ty).
func NewAffineTransform(a, b, c, d, tx, ty float64) *AffineTransform {
	return &AffineTransform{m: Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}}
}

// TransformFromMatrix returns a transform holding m.
func TransformFromMatrix(m Matrix) *AffineTransform {
	return &AffineTransform{m: m}
}

// Set overwrites all six components.
func (t *AffineTransform) Set(a, b, c, d, tx, ty float64) {
	t.m = Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}
}

// Rotate rotates by deg degrees.
func (t *AffineTransform) Rotate(deg float64) {
	t.m = Rotation(deg).Multiply(t.m)
}

// Translate translates by (tx, ty).
func (t *AffineTransform) Translate(tx, ty float64) {
	t.m.Tx += tx*t.m.A + ty*t.m.C
	t.m.Ty += tx*t.m.B + ty*t.m.D
}

// Scale scales by (sx, sy).
func (t *AffineTransform) Scale(sx, sy float64) {
	t.m.A *= sx
	t.m.B *= sx
	t.m.C *= sy
	t.m.D *= sy
}

// Concat composes (a, b, c, d, tx, ty) in local space.
func (t *AffineTransform) Concat(a, b, c, d, tx, ty float64) {
	t.m = Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}.Multiply(t.m)
}

// Matrix returns the current value.
func (t *AffineTransform) Matrix() Matrix {
	return t.m
}

// MatrixOf returns the matrix of t, or the identity for a nil transform.
func MatrixOf(t Transform) Matrix {
	if t == nil {
		return Identity()
	}
	return t.Matrix()
}
