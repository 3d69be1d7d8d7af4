package contractor

import (
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

func init() {
	register(Exp, expNarrow)
	register(Log, logNarrow)
	register(Sin, sinNarrow)
	register(Cos, cosNarrow)
	register(Tan, tanNarrow)
}

// expNarrow implements the binary Z = exp(X). exp is a strict bijection
// R -> (0, +Inf), so unlike the trig primitives below, narrowing runs both
// ways via its inverse, log.
func expNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, z := args[0], args[1]
	nz := ivl.Bounds{Lo: numeric.ExpLo(x.Lo), Hi: numeric.ExpHi(x.Hi)}
	var nx ivl.Bounds
	if z.Lo.Sign() > 0 {
		nx = ivl.Bounds{Lo: numeric.LogLo(z.Lo), Hi: numeric.LogHi(z.Hi)}
	} else {
		nx = ivl.Bounds{Lo: numeric.NegInf, Hi: numeric.LogHi(z.Hi)}
	}
	return []ivl.Bounds{nx, nz}, false, nil
}

// logNarrow implements the binary Z = log(X), the inverse relation of exp.
func logNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, z := args[0], args[1]
	lo := x.Lo
	if lo.Sign() < 0 {
		lo = numeric.Zero
	}
	nz := ivl.Bounds{Lo: numeric.LogLo(lo), Hi: numeric.LogHi(x.Hi)}
	nx := ivl.Bounds{Lo: numeric.ExpLo(z.Lo), Hi: numeric.ExpHi(z.Hi)}
	if x.Lo.Sign() >= 0 {
		nx.Lo = maxOf(nx.Lo, x.Lo)
	}
	return []ivl.Bounds{nx, nz}, false, nil
}

// sinNarrow implements the binary Z = sin(X). sin is periodic and
// non-injective, so arcsin over an interval is multivalued in general;
// per spec.md §4.3 the contractor only narrows forward (Z from X) and
// leaves X unchanged, the same asymmetric treatment as Pow.
func sinNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x := args[0]
	lo, hi := numeric.SinHull(x.Lo, x.Hi)
	return []ivl.Bounds{x, {Lo: lo, Hi: hi}}, false, nil
}

// cosNarrow implements the binary Z = cos(X), forward-only as with sin.
func cosNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x := args[0]
	lo, hi := numeric.CosHull(x.Lo, x.Hi)
	return []ivl.Bounds{x, {Lo: lo, Hi: hi}}, false, nil
}

// tanNarrow implements the binary Z = tan(X), forward-only as with sin/cos.
func tanNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x := args[0]
	lo, hi := numeric.TanHull(x.Lo, x.Hi)
	return []ivl.Bounds{x, {Lo: lo, Hi: hi}}, false, nil
}
