package raster

import (
	"iter"

	"honnef.co/go/curve"

	"github.com/gogpu/svgnative"
)

// strokeOutline expands figs into the closed outline of their stroke, in
// the same coordinate space as figs. Dashing is applied first.
func strokeOutline(figs []svgnative.Figure, s svgnative.StrokeStyle, tolerance float64) []svgnative.Figure {
	elems := pathElements(figs)
	if dash := s.Dash(); dash.IsDashed() {
		elems = curve.Dash(elems, dash.NormalizedOffset(), dash.Array)
	}
	style := curve.Stroke{
		Width:      s.LineWidth,
		Join:       convertJoin(s.LineJoin),
		MiterLimit: s.EffectiveMiterLimit(),
		StartCap:   convertCap(s.LineCap),
		EndCap:     convertCap(s.LineCap),
	}
	return figuresFromElements(curve.StrokePath(elems, style, curve.StrokeOpts{}, tolerance))
}

// pathElements yields figs as curve path elements.
func pathElements(figs []svgnative.Figure) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for _, f := range figs {
			if !yield(curve.MoveTo(toCurve(f.Start))) {
				return
			}
			for _, s := range f.Segments {
				var el curve.PathElement
				switch s.Kind {
				case svgnative.SegmentLine:
					el = curve.LineTo(toCurve(s.End))
				case svgnative.SegmentCubic:
					el = curve.CubicTo(toCurve(s.Ctrl1), toCurve(s.Ctrl2), toCurve(s.End))
				}
				if !yield(el) {
					return
				}
			}
			if f.Closed {
				if !yield(curve.ClosePath()) {
					return
				}
			}
		}
	}
}

// figuresFromElements collects curve path elements into figures. Quadratic
// segments are raised to cubics.
func figuresFromElements(elems iter.Seq[curve.PathElement]) []svgnative.Figure {
	var figs []svgnative.Figure
	var cur svgnative.Point
	for el := range elems {
		switch el.Kind {
		case curve.MoveToKind:
			cur = fromCurve(el.P0)
			figs = append(figs, svgnative.Figure{Start: cur})
			continue
		case curve.ClosePathKind:
			if n := len(figs); n > 0 {
				figs[n-1].Closed = true
				cur = figs[n-1].Start
			}
			continue
		}
		if len(figs) == 0 {
			figs = append(figs, svgnative.Figure{Start: cur})
		}
		f := &figs[len(figs)-1]
		switch el.Kind {
		case curve.LineToKind:
			cur = fromCurve(el.P0)
			f.Segments = append(f.Segments, svgnative.Segment{Kind: svgnative.SegmentLine, End: cur})
		case curve.QuadToKind:
			ctrl, end := fromCurve(el.P0), fromCurve(el.P1)
			f.Segments = append(f.Segments, svgnative.Segment{
				Kind:  svgnative.SegmentCubic,
				Ctrl1: cur.Add(ctrl.Sub(cur).Mul(2.0 / 3.0)),
				Ctrl2: end.Add(ctrl.Sub(end).Mul(2.0 / 3.0)),
				End:   end,
			})
			cur = end
		case curve.CubicToKind:
			end := fromCurve(el.P2)
			f.Segments = append(f.Segments, svgnative.Segment{
				Kind:  svgnative.SegmentCubic,
				Ctrl1: fromCurve(el.P0),
				Ctrl2: fromCurve(el.P1),
				End:   end,
			})
			cur = end
		}
	}
	return figs
}

func toCurve(p svgnative.Point) curve.Point { return curve.Point{X: p.X, Y: p.Y} }

func fromCurve(p curve.Point) svgnative.Point { return svgnative.Point{X: p.X, Y: p.Y} }

func convertCap(c svgnative.LineCap) curve.Cap {
	switch c {
	case svgnative.CapRound:
		return curve.RoundCap
	case svgnative.CapSquare:
		return curve.SquareCap
	default:
		return curve.ButtCap
	}
}

func convertJoin(j svgnative.LineJoin) curve.Join {
	switch j {
	case svgnative.JoinRound:
		return curve.RoundJoin
	case svgnative.JoinBevel:
		return curve.BevelJoin
	default:
		return curve.MiterJoin
	}
}
