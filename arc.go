package svgnative

import "math"

// arcSegments converts the elliptical arc from p0 to p1 with axis-aligned
// radii (rx, ry) into cubic segments of at most 90 degrees each, using the
// endpoint-to-center conversion of SVG 1.1 appendix F.6.
//
// Coincident endpoints produce no segments. Zero radii produce a single
// line. Radii too small to span the chord are scaled up uniformly.
func arcSegments(p0, p1 Point, rx, ry float64, largeArc, sweep bool) []Segment {
	if p0 == p1 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Segment{{Kind: SegmentLine, End: p1}}
	}

	// Half chord in the arc's (unrotated) frame.
	hx := (p0.X - p1.X) / 2
	hy := (p0.Y - p1.Y) / 2

	if lambda := hx*hx/(rx*rx) + hy*hy/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*hy*hy - ry2*hx*hx
	den := rx2*hy*hy + ry2*hx*hx
	coef := 0.0
	if den > 0 {
		coef = math.Sqrt(math.Max(num/den, 0))
	}
	if largeArc == sweep {
		coef = -coef
	}
	ccx := coef * rx * hy / ry
	ccy := -coef * ry * hx / rx

	center := Point{X: ccx + (p0.X+p1.X)/2, Y: ccy + (p0.Y+p1.Y)/2}

	u := Point{X: (hx - ccx) / rx, Y: (hy - ccy) / ry}
	v := Point{X: (-hx - ccx) / rx, Y: (-hy - ccy) / ry}
	theta := math.Atan2(u.Y, u.X)
	delta := math.Atan2(u.Cross(v), u.Dot(v))
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(delta)/maxAngle - 1e-9))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		a1 := theta + float64(i)*step
		a2 := a1 + step
		seg := arcSegment(center, rx, ry, a1, a2)
		if i == n-1 {
			seg.End = p1
		}
		segs = append(segs, seg)
	}
	return segs
}

// arcSegment approximates the elliptical arc from angle a1 to a2 (at most
// 90 degrees apart) with one cubic segment.
func arcSegment(c Point, rx, ry, a1, a2 float64) Segment {
	d := a2 - a1
	t := math.Tan(d / 2)
	alpha := math.Sin(d) * (math.Sqrt(4+3*t*t) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	p1 := Point{X: c.X + rx*cos1, Y: c.Y + ry*sin1}
	p2 := Point{X: c.X + rx*cos2, Y: c.Y + ry*sin2}

	return Segment{
		Kind:  SegmentCubic,
		Ctrl1: Point{X: p1.X - alpha*rx*sin1, Y: p1.Y + alpha*ry*cos1},
		Ctrl2: Point{X: p2.X + alpha*rx*sin2, Y: p2.Y - alpha*ry*cos2},
		End:   p2,
	}
}
