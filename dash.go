package svgnative

import "math"

// Dash is a normalized dash pattern: alternating dash and gap lengths with
// a starting offset. A nil *Dash means a solid stroke.
type Dash struct {
	// Array contains alternating dash/gap lengths, always of even length.
	Array []float64

	// Offset is the distance into the pattern at which the stroke starts.
	Offset float64
}

// NewDash normalizes a dash array the way SVG does. Odd-length arrays are
// repeated to even length. It returns nil, a solid stroke, when lengths is
// empty, contains a negative value, or sums to zero.
//
// Examples:
//
//	NewDash(0, 5, 3)    // 5 units dash, 3 units gap
//	NewDash(2, 5)       // [5, 5] starting 2 units in
//	NewDash(0, 0, 0)    // nil: solid
func NewDash(offset float64, lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}
	var total float64
	for _, l := range lengths {
		if l < 0 || math.IsNaN(l) {
			return nil
		}
		total += l
	}
	if total <= 0 {
		return nil
	}

	n := len(lengths)
	if n%2 != 0 {
		n *= 2
	}
	arr := make([]float64, n)
	copy(arr, lengths)
	copy(arr[len(lengths):], lengths)
	return &Dash{Array: arr, Offset: offset}
}

// PatternLength returns the length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	return total
}

// NormalizedOffset returns the offset wrapped into one pattern cycle.
// Negative offsets shift the pattern forward.
func (d *Dash) NormalizedOffset() float64 {
	plen := d.PatternLength()
	if plen <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, plen)
	if off < 0 {
		off += plen
	}
	return off
}

// IsDashed reports whether the pattern produces gaps.
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}
