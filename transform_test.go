package svgnative

import (
	"math"
	"testing"
)

func TestAffineTransform_Set(t *testing.T) {
	tr := NewAffineTransform(1, 0, 0, 1, 0, 0)
	tr.Set(1, 2, 3, 4, 5, 6)
	want := Matrix{A: 1, B: 2, C: 3, D: 4, Tx: 5, Ty: 6}
	if tr.Matrix() != want {
		t.Errorf("Matrix() = %+v, want %+v", tr.Matrix(), want)
	}
}

func TestAffineTransform_OperationsComposeInLocalSpace(t *testing.T) {
	tests := []struct {
		name  string
		apply func(Transform)
		in    Point
		want  Point
	}{
		{
			name:  "translate",
			apply: func(tr Transform) { tr.Translate(10, 20) },
			in:    Pt(1, 1),
			want:  Pt(11, 21),
		},
		{
			name:  "scale then translate applies translate first",
			apply: func(tr Transform) { tr.Scale(2, 2); tr.Translate(10, 0) },
			in:    Pt(1, 1),
			want:  Pt(22, 2),
		},
		{
			name:  "translate then scale applies scale first",
			apply: func(tr Transform) { tr.Translate(10, 0); tr.Scale(2, 2) },
			in:    Pt(1, 1),
			want:  Pt(12, 2),
		},
		{
			name:  "rotate in degrees",
			apply: func(tr Transform) { tr.Rotate(90) },
			in:    Pt(1, 0),
			want:  Pt(0, 1),
		},
		{
			name:  "translate then rotate rotates around the translated origin",
			apply: func(tr Transform) { tr.Translate(5, 5); tr.Rotate(180) },
			in:    Pt(1, 0),
			want:  Pt(4, 5),
		},
		{
			name:  "concat matches translate",
			apply: func(tr Transform) { tr.Scale(2, 2); tr.Concat(1, 0, 0, 1, 10, 0) },
			in:    Pt(1, 1),
			want:  Pt(22, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewAffineTransform(1, 0, 0, 1, 0, 0)
			tt.apply(tr)
			got := tr.Matrix().TransformPoint(tt.in)
			if !pointsClose(got, tt.want, 1e-9) {
				t.Errorf("maps %v to %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAffineTransform_RotateInverse(t *testing.T) {
	for _, deg := range []float64{0, 15, 45, 90, 137.5, -60, 360} {
		start := Matrix{A: 1.5, B: 0.25, C: -0.5, D: 2, Tx: 7, Ty: -3}
		tr := TransformFromMatrix(start)
		tr.Rotate(deg)
		tr.Rotate(-deg)
		if !tr.Matrix().ApproxEqual(start, 1e-9) {
			t.Errorf("Rotate(%v) then Rotate(%v) = %+v, want %+v", deg, -deg, tr.Matrix(), start)
		}
	}
}

func TestAffineTransform_ConcatAssociative(t *testing.T) {
	a := Matrix{A: 1, B: 2, C: 3, D: 4, Tx: 5, Ty: 6}
	b := Matrix{A: 0, B: 1, C: -1, D: 0, Tx: 2, Ty: 2}
	c := Matrix{A: 2, B: 0, C: 0.5, D: 3, Tx: -1, Ty: 4}

	concat := func(tr Transform, m Matrix) { tr.Concat(m.A, m.B, m.C, m.D, m.Tx, m.Ty) }

	stepwise := TransformFromMatrix(a)
	concat(stepwise, b)
	concat(stepwise, c)

	combined := TransformFromMatrix(a)
	concat(combined, c.Multiply(b))

	if !stepwise.Matrix().ApproxEqual(combined.Matrix(), 1e-9) {
		t.Errorf("stepwise = %+v, combined = %+v", stepwise.Matrix(), combined.Matrix())
	}
}

func TestMatrixOf_Nil(t *testing.T) {
	if MatrixOf(nil) != Identity() {
		t.Error("MatrixOf(nil) should be the identity")
	}
	tr := NewAffineTransform(math.Sqrt2, 0, 0, 1, 0, 0)
	if MatrixOf(tr) != tr.Matrix() {
		t.Error("MatrixOf should return the transform matrix")
	}
}
