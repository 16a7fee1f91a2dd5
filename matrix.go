package svgnative

import "math"

// Matrix is a 2D affine transformation in SVG order.
//
//	| A  B  0 |
//	| C  D  0 |
//	| Tx Ty 1 |
//
// Points are row vectors, so the transformation is
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
//
// and m.Multiply(n) applies m first and n second.
type Matrix struct {
	A, B   float64
	C, D   float64
	Tx, Ty float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a matrix that translates by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, Tx: tx, Ty: ty}
}

// Scaling returns a matrix that scales by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation returns a matrix that rotates by deg degrees.
func Rotation(deg float64) Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply returns m·n: the transformation that applies m, then n.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A:  m.A*n.A + m.B*n.C,
		B:  m.A*n.B + m.B*n.D,
		C:  m.C*n.A + m.D*n.C,
		D:  m.C*n.B + m.D*n.D,
		Tx: m.Tx*n.A + m.Ty*n.C + n.Tx,
		Ty: m.Tx*n.B + m.Ty*n.D + n.Ty,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// IsInvertible reports whether the matrix has an inverse.
func (m Matrix) IsInvertible() bool {
	return math.Abs(m.Determinant()) >= 1e-12
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A:  m.D * inv,
		B:  -m.B * inv,
		C:  -m.C * inv,
		D:  m.A * inv,
		Tx: (m.C*m.Ty - m.D*m.Tx) * inv,
		Ty: (m.B*m.Tx - m.A*m.Ty) * inv,
	}
}

// MaxScale returns the largest factor by which the matrix stretches a
// unit vector. Backends use it to scale flattening tolerances.
func (m Matrix) MaxScale() float64 {
	// Largest singular value of [[A C] [B D]].
	a := m.A*m.A + m.B*m.B
	b := m.A*m.C + m.B*m.D
	d := m.C*m.C + m.D*m.D
	tr := (a + d) / 2
	disc := math.Sqrt(math.Max(tr*tr-(a*d-b*b), 0))
	return math.Sqrt(tr + disc)
}

// ApproxEqual reports whether all components differ by at most eps.
func (m Matrix) ApproxEqual(n Matrix, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps && math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps && math.Abs(m.D-n.D) <= eps &&
		math.Abs(m.Tx-n.Tx) <= eps && math.Abs(m.Ty-n.Ty) <= eps
}
