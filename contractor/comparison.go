package contractor

import (
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

func init() {
	register(Eq, eqNarrow)
	register(Ne, neNarrow)
	register(Le, leNarrow)
	register(Lt, ltNarrow) // lt shares le's narrowing: interval bounds can't
	// represent strict inequality exactly, the same simplification CLP(BNR)
	// makes; Lt and Le are distinguished only at the boolean-decision level.
}

// ltNarrow implements the ternary boolean Z = (X < Y). It narrows exactly as
// leNarrow does, except when X.Hi == Y.Lo: touching bounds do not make X < Y
// certain, so Z is left undecided, or decided false when X and Y are the
// same point.
func ltNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	out, persistent, err := leNarrow(args)
	if err != nil || args[0].Hi.Cmp(args[1].Lo) != 0 {
		return out, persistent, err
	}
	x, y, z := args[0], args[1], args[2]
	if x.Lo.Cmp(y.Hi) >= 0 {
		return []ivl.Bounds{x, y, boolBounds(0)}, true, nil
	}
	return []ivl.Bounds{x, y, z}, false, nil
}

// eqNarrow implements the ternary boolean Z = (X == Y).
func eqNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := z
	persistent := false
	switch {
	case disjoint(x, y):
		nz, persistent = boolBounds(0), true
	case x.IsPoint() && y.IsPoint() && x.Lo.Equal(y.Lo):
		nz, persistent = boolBounds(1), true
	}
	nx, ny := x, y
	switch {
	case isTrue(nz):
		if ix := intersect(x, y); ix.Valid() {
			nx, ny = ix, ix
		}
	case isFalse(nz):
		// X != Y is known; if one side is a singleton sitting exactly on
		// the other's bound, that bound cannot be the singleton's value,
		// per spec.md §4.3 "narrow the other by removing that point
		// (possible only if on a bound)".
		if x.IsPoint() {
			ny = excludePoint(y, x.Lo)
		}
		if y.IsPoint() {
			nx = excludePoint(x, y.Lo)
		}
	}
	return []ivl.Bounds{nx, ny, nz}, persistent, nil
}

// excludePoint narrows b by nudging whichever bound exactly equals pt one
// representable step away from it, leaving b unchanged if pt sits in its
// interior or outside it entirely.
func excludePoint(b ivl.Bounds, pt numeric.Extended) ivl.Bounds {
	switch {
	case b.Lo.Equal(pt):
		return ivl.Bounds{Lo: numeric.NextAway(pt, 1), Hi: b.Hi}
	case b.Hi.Equal(pt):
		return ivl.Bounds{Lo: b.Lo, Hi: numeric.NextAway(pt, -1)}
	default:
		return b
	}
}

// neNarrow implements the ternary boolean Z = (X != Y).
func neNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := z
	persistent := false
	switch {
	case disjoint(x, y):
		nz, persistent = boolBounds(1), true
	case x.IsPoint() && y.IsPoint() && x.Lo.Equal(y.Lo):
		nz, persistent = boolBounds(0), true
	}
	nx, ny := x, y
	switch {
	case isFalse(nz):
		if ix := intersect(x, y); ix.Valid() {
			nx, ny = ix, ix
		}
	case isTrue(nz):
		// X != Y is known; same point-exclusion narrowing as eqNarrow's
		// isFalse(nz) branch, per spec.md §4.3.
		if x.IsPoint() {
			ny = excludePoint(y, x.Lo)
		}
		if y.IsPoint() {
			nx = excludePoint(x, y.Lo)
		}
	}
	return []ivl.Bounds{nx, ny, nz}, persistent, nil
}

// leNarrow implements the ternary boolean Z = (X <= Y), per spec.md §4.3: Z
// is decided true when every x in X, y in Y satisfy x <= y (X.Hi <= Y.Lo),
// and false when none do (X.Lo > Y.Hi).
func leNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := z
	persistent := false
	switch {
	case x.Hi.Cmp(y.Lo) <= 0:
		nz, persistent = boolBounds(1), true
	case x.Lo.Cmp(y.Hi) > 0:
		nz, persistent = boolBounds(0), true
	}
	nx, ny := x, y
	if isTrue(nz) {
		nx = ivl.Bounds{Lo: x.Lo, Hi: minOf(x.Hi, y.Hi)}
		ny = ivl.Bounds{Lo: maxOf(y.Lo, x.Lo), Hi: y.Hi}
	}
	return []ivl.Bounds{nx, ny, nz}, persistent, nil
}
