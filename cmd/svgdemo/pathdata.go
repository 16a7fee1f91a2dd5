package main

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/svgnative"
)

// pathArity is the number of arguments of each path data command.
var pathArity = map[byte]int{
	'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// parsePathData feeds SVG path data to p. All commands are accepted in
// absolute and relative form; arcs must be small, clockwise and unrotated.
// Quadratic segments are raised to cubics.
func parsePathData(p svgnative.Path, data string) error {
	b := []byte(data)
	i := skipCommaWhitespace(b)
	if i < len(b) && isNumberStart(b[i]) {
		return fmt.Errorf("path: data must start with a command")
	}

	var f [7]float64
	var cur, start, ctrl svgnative.Point
	prev := byte('z')
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			return nil
		}

		cmd := prev
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(b[i]) {
			cmd = b[i]
			i++
			i += skipCommaWhitespace(b[i:])
		}
		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := pathArity[upper]
		if !ok {
			return fmt.Errorf("path: unknown command %q at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			if upper == 'A' && (j == 3 || j == 4) && i < len(b) && (b[i] == '0' || b[i] == '1') {
				f[j] = float64(b[i] - '0')
				i++
			} else {
				num, m := strconv.ParseFloat(b[i:])
				if m == 0 {
					return fmt.Errorf("path: command %q needs %d numbers at position %d", cmd, n, i+1)
				}
				f[j] = num
				i += m
			}
			i += skipCommaWhitespace(b[i:])
		}

		rel := cmd != upper
		pt := func(x, y float64) svgnative.Point {
			if rel {
				return svgnative.Pt(cur.X+x, cur.Y+y)
			}
			return svgnative.Pt(x, y)
		}

		next := ctrl
		switch upper {
		case 'M':
			cur = pt(f[0], f[1])
			start = cur
			p.MoveTo(cur.X, cur.Y)
			// Further coordinate pairs are implicit line commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p.ClosePath()
			cur = start
		case 'L':
			cur = pt(f[0], f[1])
			p.LineTo(cur.X, cur.Y)
		case 'H':
			if rel {
				cur.X += f[0]
			} else {
				cur.X = f[0]
			}
			p.LineTo(cur.X, cur.Y)
		case 'V':
			if rel {
				cur.Y += f[0]
			} else {
				cur.Y = f[0]
			}
			p.LineTo(cur.X, cur.Y)
		case 'C', 'S':
			var c1, c2, end svgnative.Point
			if upper == 'C' {
				c1, c2, end = pt(f[0], f[1]), pt(f[2], f[3]), pt(f[4], f[5])
			} else {
				c1 = cur
				if isCubic(prev) {
					c1 = cur.Mul(2).Sub(ctrl)
				}
				c2, end = pt(f[0], f[1]), pt(f[2], f[3])
			}
			p.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur, next = end, c2
		case 'Q', 'T':
			var q, end svgnative.Point
			if upper == 'Q' {
				q, end = pt(f[0], f[1]), pt(f[2], f[3])
			} else {
				q = cur
				if isQuad(prev) {
					q = cur.Mul(2).Sub(ctrl)
				}
				end = pt(f[0], f[1])
			}
			c1 := cur.Add(q.Sub(cur).Mul(2.0 / 3.0))
			c2 := end.Add(q.Sub(end).Mul(2.0 / 3.0))
			p.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur, next = end, q
		case 'A':
			if f[2] != 0 || f[3] != 0 || f[4] != 1 {
				return fmt.Errorf("path: arc at position %d must be small, clockwise and unrotated", i)
			}
			cur = pt(f[5], f[6])
			p.AddArc(cur.X, cur.Y, f[0], f[1])
		}
		ctrl = next
		prev = cmd
	}
}

func isCubic(cmd byte) bool {
	return cmd == 'C' || cmd == 'c' || cmd == 'S' || cmd == 's'
}

func isQuad(cmd byte) bool {
	return cmd == 'Q' || cmd == 'q' || cmd == 'T' || cmd == 't'
}
