package contractor

import (
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

func init() {
	register(Pow, powNarrow)
	register(Sqrt, sqrtNarrow)
}

// powNarrow implements the ternary Z = X ** Y, per spec.md §4.3: integer
// exponents (with the odd/even sign case split), and general real
// exponents via exp/log. It narrows Z from X and Y; narrowing X and Y back
// from Z is intentionally conservative (the general inverse of ** is
// multivalued), matching the spec's acknowledgment that pow's narrowing is
// asymmetric.
func powNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]

	if y.IsPoint() && y.Lo.IsInteger() {
		if n, ok := asInt64(y.Lo); ok {
			return []ivl.Bounds{x, y, powIntHull(x, n)}, false, nil
		}
	}

	return []ivl.Bounds{x, y, powRealHull(x, y)}, false, nil
}

func asInt64(e numeric.Extended) (int64, bool) {
	r, ok := e.Rat()
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// powIntHull computes a sound enclosure of {x**n : x in X} for an exact
// integer exponent n. x**n is monotonic in x on any interval that avoids a
// pole (n<0) and avoids the origin for even n>0's direction change, so
// endpoint evaluation suffices except for the one case called out below.
func powIntHull(x ivl.Bounds, n int64) ivl.Bounds {
	if n == 0 {
		return boolBounds(1)
	}
	if n < 0 && x.Lo.Sign() <= 0 && x.Hi.Sign() >= 0 {
		return full() // pole at x=0
	}
	ne := numeric.FromInt64(n)
	lo1, hi1 := numeric.PowLo(x.Lo, ne), numeric.PowHi(x.Lo, ne)
	lo2, hi2 := numeric.PowLo(x.Hi, ne), numeric.PowHi(x.Hi, ne)
	lo := minOf(lo1, hi1, lo2, hi2)
	hi := maxOf(lo1, hi1, lo2, hi2)
	if n > 0 && n%2 == 0 && x.Lo.Sign() <= 0 && x.Hi.Sign() >= 0 {
		lo = numeric.Zero // interior minimum at x=0
	}
	return ivl.Bounds{Lo: lo, Hi: hi}
}

// powRealHull computes a sound enclosure of {x**y : x in X, y in Y} for a
// general (possibly non-integer) exponent interval, requiring X.Lo >= 0.
// The surface x**y = exp(y*ln(x)) has no interior critical point in (x,y)
// except along x=1 (where it is identically 1 for every y); evaluating the
// four corners plus that candidate line is therefore a sound hull.
func powRealHull(x, y ivl.Bounds) ivl.Bounds {
	if x.Hi.Sign() < 0 {
		return ivl.Bounds{Lo: numeric.NaNValue, Hi: numeric.NaNValue}
	}
	xlo := x.Lo
	if xlo.Sign() < 0 {
		xlo = numeric.Zero
	}

	corner := func(bx, by numeric.Extended) (numeric.Extended, numeric.Extended) {
		return numeric.PowLo(bx, by), numeric.PowHi(bx, by)
	}
	var los, his []numeric.Extended
	for _, bx := range []numeric.Extended{xlo, x.Hi} {
		for _, by := range []numeric.Extended{y.Lo, y.Hi} {
			lo, hi := corner(bx, by)
			los = append(los, lo)
			his = append(his, hi)
		}
	}
	if xlo.Sign() <= 0 && x.Hi.Sign() >= 0 {
		// 0 is in range: 0**y is 0 for y>0, 1 for y==0, undefined for
		// y<0; contribute the finite candidates only.
		if y.Lo.Sign() > 0 {
			los = append(los, numeric.Zero)
			his = append(his, numeric.Zero)
		}
	}
	if xlo.Cmp(numeric.FromInt64(1)) <= 0 && x.Hi.Cmp(numeric.FromInt64(1)) >= 0 {
		los = append(los, numeric.FromInt64(1))
		his = append(his, numeric.FromInt64(1))
	}
	return ivl.Bounds{Lo: minOf(los...), Hi: maxOf(his...)}
}

// sqrtNarrow implements the binary Z = sqrt(X), requiring X.Hi >= 0.
func sqrtNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, z := args[0], args[1]
	lo := x.Lo
	if lo.Sign() < 0 {
		lo = numeric.Zero
	}
	if x.Hi.Sign() < 0 {
		return []ivl.Bounds{x, {Lo: numeric.NaNValue, Hi: numeric.NaNValue}}, false, nil
	}
	nz := ivl.Bounds{Lo: numeric.SqrtLo(lo), Hi: numeric.SqrtHi(x.Hi)}
	// X = Z**2 intersected with X's own nonnegativity.
	nx := ivl.Bounds{Lo: numeric.MulLo(z.Lo, z.Lo), Hi: numeric.MulHi(z.Hi, z.Hi)}
	if lo.Sign() > 0 || x.Lo.Sign() >= 0 {
		nx.Lo = maxOf(nx.Lo, x.Lo)
	}
	return []ivl.Bounds{nx, nz}, false, nil
}
