package svgnative

import (
	"math"
	"testing"
)

const eps = 1e-9

func pointsClose(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translation", Translation(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scaling", Scaling(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotation 90 is clockwise on screen", Rotation(90), Pt(1, 0), Pt(0, 1)},
		{"svg matrix order", Matrix{A: 1, B: 2, C: 3, D: 4, Tx: 5, Ty: 6}, Pt(1, 1), Pt(9, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !pointsClose(got, tt.want, eps) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_MultiplyAppliesLeftFirst(t *testing.T) {
	m := Scaling(2, 2).Multiply(Translation(10, 0))
	got := m.TransformPoint(Pt(1, 1))
	if want := Pt(12, 2); !pointsClose(got, want, eps) {
		t.Errorf("scale then translate maps (1,1) to %v, want %v", got, want)
	}
}

func TestMatrix_MultiplyAssociative(t *testing.T) {
	a := Matrix{A: 1, B: 2, C: 3, D: 4, Tx: 5, Ty: 6}
	b := Rotation(33).Multiply(Translation(-7, 2))
	c := Matrix{A: 0.5, B: -1, C: 2, D: 0.25, Tx: 1, Ty: -3}

	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	if !left.ApproxEqual(right, eps) {
		t.Errorf("(ab)c = %+v, a(bc) = %+v", left, right)
	}
}

func TestMatrix_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translation", Translation(3, -4)},
		{"scale", Scaling(2, 0.5)},
		{"rotation", Rotation(30)},
		{"general", Matrix{A: 1, B: 2, C: 3, D: 4, Tx: 5, Ty: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Multiply(tt.m.Invert())
			if !got.ApproxEqual(Identity(), eps) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
		})
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	m := Scaling(0, 1)
	if m.IsInvertible() {
		t.Error("IsInvertible() = true for a singular matrix")
	}
	if got := m.Invert(); got != Identity() {
		t.Errorf("Invert() = %+v, want identity fallback", got)
	}
}

func TestMatrix_MaxScale(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"translation", Translation(100, 100), 1},
		{"uniform", Scaling(3, 3), 3},
		{"non-uniform", Scaling(2, 5), 5},
		{"rotated", Scaling(4, 1).Multiply(Rotation(45)), 4},
		{"mirrored", Scaling(-2, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MaxScale(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MaxScale() = %v, want %v", got, tt.want)
			}
		})
	}
}
