package raster

import (
	"math"
	"testing"

	"github.com/gogpu/svgnative"
)

func outlineBounds(figs []svgnative.Figure) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(p svgnative.Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for _, f := range figs {
		add(f.Start)
		for _, s := range f.Segments {
			add(s.End)
		}
	}
	return minX, minY, maxX, maxY
}

func TestStrokeOutline(t *testing.T) {
	line := svgnative.NewGeometry()
	line.MoveTo(0, 10)
	line.LineTo(20, 10)

	tests := []struct {
		name       string
		cap        svgnative.LineCap
		minX, maxX float64
	}{
		{"butt", svgnative.CapButt, 0, 20},
		{"square", svgnative.CapSquare, -2, 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := svgnative.DefaultStrokeStyle(red)
			s.LineWidth = 4
			s.LineCap = tt.cap
			figs := strokeOutline(line.Figures(), s, 0.1)
			if len(figs) == 0 {
				t.Fatal("strokeOutline returned no figures")
			}
			minX, minY, maxX, maxY := outlineBounds(figs)
			if math.Abs(minX-tt.minX) > 1e-6 || math.Abs(maxX-tt.maxX) > 1e-6 {
				t.Errorf("x extent = [%v, %v], want [%v, %v]", minX, maxX, tt.minX, tt.maxX)
			}
			if math.Abs(minY-8) > 1e-6 || math.Abs(maxY-12) > 1e-6 {
				t.Errorf("y extent = [%v, %v], want [8, 12]", minY, maxY)
			}
		})
	}
}

func TestStrokeOutline_DashedSplitsFigures(t *testing.T) {
	line := svgnative.NewGeometry()
	line.MoveTo(0, 0)
	line.LineTo(40, 0)

	s := svgnative.DefaultStrokeStyle(red)
	s.LineWidth = 2
	s.DashArray = []float64{5, 5}
	figs := strokeOutline(line.Figures(), s, 0.1)
	if len(figs) < 4 {
		t.Errorf("dashed outline has %d figures, want one per dash (4)", len(figs))
	}
}
