package parser

import "fncomp/internal/token"

// scanTop walks token trees from lo to hi, tracking angle bracket depth, and
// stops at the first index where stop returns true for depth 0. Groups are
// skipped whole. Returns hi when nothing stops the walk.
func (t *Tree) scanTop(lo, hi int, stop func(i int) bool) int {
	depth := 0
	for i := lo; i < hi; {
		if depth == 0 && stop(i) {
			return i
		}
		tok := t.Tokens[i]
		switch {
		case t.isArrow(i), t.isFatArrow(i):
			i += 2
			continue
		case tok.Kind == token.Lt:
			depth++
		case tok.Kind == token.Gt && depth > 0:
			depth--
		}
		i = t.Skip(i)
	}
	return hi
}

// splitTop splits [lo, hi) on commas at angle depth 0. A trailing comma
// does not produce an empty element.
func (t *Tree) splitTop(lo, hi int) [][2]int {
	var out [][2]int
	for lo < hi {
		end := t.scanTop(lo, hi, func(i int) bool { return t.Tokens[i].Kind == token.Comma })
		out = append(out, [2]int{lo, end})
		lo = end + 1
	}
	return out
}

// closeAngle returns the index of the `>` closing the `<` at lo, or -1.
func (t *Tree) closeAngle(lo, hi int) int {
	depth := 0
	for i := lo; i < hi; {
		tok := t.Tokens[i]
		switch {
		case t.isArrow(i), t.isFatArrow(i):
			i += 2
			continue
		case tok.Kind == token.Lt:
			depth++
		case tok.Kind == token.Gt:
			depth--
			if depth == 0 {
				return i
			}
		}
		i = t.Skip(i)
	}
	return -1
}
