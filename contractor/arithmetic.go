package contractor

import (
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

func init() {
	register(Add, addNarrow)
	register(Sub, subNarrow)
	register(Neg, negNarrow)
	register(Mul, mulNarrow)
	register(Div, divNarrow)
}

// addNarrow implements the ternary Z = X + Y of spec.md §4.3:
//
//	NewZ <- Z and (X + Y)
//	NewX <- X and (Z - Y)
//	NewY <- Y and (Z - X)
func addNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := ivl.Bounds{Lo: numeric.AddLo(x.Lo, y.Lo), Hi: numeric.AddHi(x.Hi, y.Hi)}
	nx := ivl.Bounds{Lo: numeric.SubLo(z.Lo, y.Hi), Hi: numeric.SubHi(z.Hi, y.Lo)}
	ny := ivl.Bounds{Lo: numeric.SubLo(z.Lo, x.Hi), Hi: numeric.SubHi(z.Hi, x.Lo)}
	return []ivl.Bounds{nx, ny, nz}, false, nil
}

// subNarrow implements the ternary Z = X - Y by rewriting to X = Z + Y.
func subNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := ivl.Bounds{Lo: numeric.SubLo(x.Lo, y.Hi), Hi: numeric.SubHi(x.Hi, y.Lo)}
	nx := ivl.Bounds{Lo: numeric.AddLo(z.Lo, y.Lo), Hi: numeric.AddHi(z.Hi, y.Hi)}
	ny := ivl.Bounds{Lo: numeric.SubLo(x.Lo, z.Hi), Hi: numeric.SubHi(x.Hi, z.Lo)}
	return []ivl.Bounds{nx, ny, nz}, false, nil
}

// negNarrow implements the binary Z = -X.
func negNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, z := args[0], args[1]
	nz := ivl.Bounds{Lo: x.Hi.Neg(), Hi: x.Lo.Neg()}
	nx := ivl.Bounds{Lo: z.Hi.Neg(), Hi: z.Lo.Neg()}
	return []ivl.Bounds{nx, nz}, false, nil
}

// mulNarrow implements the ternary Z = X * Y via sign-pattern case
// analysis, per spec.md §4.3. Rather than enumerate every sign case by
// hand, it computes the four corner products and takes their min/max,
// which is the standard sound interval-multiplication rule and reduces to
// the same case split spec.md describes.
func mulNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := mulHull(x, y)
	// Division for X and Y is sound only away from a zero divisor; when
	// the other operand's interval contains zero, division by it can't
	// narrow soundly in one interval, so that operand's candidate is the
	// unbounded enclosure (spec.md §4.3 "no narrowing along that
	// operand").
	nx := divHullFor(z, y)
	ny := divHullFor(z, x)
	return []ivl.Bounds{nx, ny, nz}, false, nil
}

// mulHull returns the interval hull of {a*b : a in x, b in y}, the
// standard four-corner rule.
func mulHull(x, y ivl.Bounds) ivl.Bounds {
	c1lo, c1hi := numeric.MulLo(x.Lo, y.Lo), numeric.MulHi(x.Lo, y.Lo)
	c2lo, c2hi := numeric.MulLo(x.Lo, y.Hi), numeric.MulHi(x.Lo, y.Hi)
	c3lo, c3hi := numeric.MulLo(x.Hi, y.Lo), numeric.MulHi(x.Hi, y.Lo)
	c4lo, c4hi := numeric.MulLo(x.Hi, y.Hi), numeric.MulHi(x.Hi, y.Hi)
	lo := minOf(c1lo, c2lo, c3lo, c4lo)
	hi := maxOf(c1hi, c2hi, c3hi, c4hi)
	return ivl.Bounds{Lo: lo, Hi: hi}
}

// divHullFor returns the sound enclosure of {n/d : n in num, d in den},
// falling back to the unbounded interval when den straddles zero (a
// disjoint-union case that a single interval can't represent exactly),
// per spec.md §4.3.
func divHullFor(num, den ivl.Bounds) ivl.Bounds {
	if den.Lo.Sign() <= 0 && den.Hi.Sign() >= 0 && !(den.Lo.Sign() == 0 && den.Hi.Sign() == 0) {
		return full()
	}
	if den.Lo.Sign() == 0 && den.Hi.Sign() == 0 {
		// Division by the exact zero interval is undefined; contribute no
		// information rather than fail here (the Div/Mul contractor on Z
		// will surface any real inconsistency).
		return full()
	}
	c1lo, c1hi := numeric.DivLo(num.Lo, den.Lo), numeric.DivHi(num.Lo, den.Lo)
	c2lo, c2hi := numeric.DivLo(num.Lo, den.Hi), numeric.DivHi(num.Lo, den.Hi)
	c3lo, c3hi := numeric.DivLo(num.Hi, den.Lo), numeric.DivHi(num.Hi, den.Lo)
	c4lo, c4hi := numeric.DivLo(num.Hi, den.Hi), numeric.DivHi(num.Hi, den.Hi)
	lo := minOf(c1lo, c2lo, c3lo, c4lo)
	hi := maxOf(c1hi, c2hi, c3hi, c4hi)
	return ivl.Bounds{Lo: lo, Hi: hi}
}

// divNarrow implements the ternary Z = X / Y.
func divNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := divHullFor(x, y)
	ny := divHullFor(x, z) // from Z = X/Y: Y = X/Z
	nx := mulHull(y, z)    // from Z = X/Y: X = Y*Z
	return []ivl.Bounds{nx, ny, nz}, false, nil
}

func minOf(vs ...numeric.Extended) numeric.Extended {
	m := vs[0]
	for _, v := range vs[1:] {
		if v.Cmp(m) < 0 {
			m = v
		}
	}
	return m
}

func maxOf(vs ...numeric.Extended) numeric.Extended {
	m := vs[0]
	for _, v := range vs[1:] {
		if v.Cmp(m) > 0 {
			m = v
		}
	}
	return m
}
