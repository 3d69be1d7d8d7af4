package compile

import "github.com/boundedlogic/clpbnr/contractor"

// Config selects which optional Simplifier passes a Compiler runs beyond
// the always-on ConstantFold, per spec.md §9 "Simplifier" supplemented by
// the closed set of algebraic identities the original CLP(BNR) source's
// rewrite/1 hooks document. Each is independently toggleable so a caller
// can disable one without losing the others.
type Config struct {
	// Rewrites lists the extra Simplifier passes to run, in order, after
	// ConstantFold on every node. DefaultRewrites is used when nil.
	Rewrites []Simplifier
}

// DefaultRewrites returns the standard extra identity set: double
// negation, additive identity, and the X**2 -> X*X rewrite that lets a
// small positive integer power use Mul's tighter four-corner contractor
// instead of the general Pow contractor.
func DefaultRewrites() []Simplifier {
	return []Simplifier{FoldNegNeg, FoldAddZero, FoldPowSquare}
}

// FoldNegNeg rewrites -(-X) to X.
func FoldNegNeg(e Expr) Expr {
	outer, ok := e.(Call)
	if !ok || outer.Op != contractor.Neg {
		return e
	}
	inner, ok := outer.Args[0].(Call)
	if !ok || inner.Op != contractor.Neg {
		return e
	}
	return inner.Args[0]
}

// FoldAddZero rewrites X+0 and 0+X to X.
func FoldAddZero(e Expr) Expr {
	call, ok := e.(Call)
	if !ok || call.Op != contractor.Add {
		return e
	}
	if n, ok := call.Args[1].(Num); ok && n.Bounds.IsPoint() && n.Bounds.Lo.Sign() == 0 {
		return call.Args[0]
	}
	if n, ok := call.Args[0].(Num); ok && n.Bounds.IsPoint() && n.Bounds.Lo.Sign() == 0 {
		return call.Args[1]
	}
	return e
}

// FoldPowSquare rewrites X**2 to X*X, avoiding the general sign-case-split
// Pow contractor when Mul's plain four-corner rule already gives the
// tightest possible enclosure for this one common exponent.
func FoldPowSquare(e Expr) Expr {
	call, ok := e.(Call)
	if !ok || call.Op != contractor.Pow {
		return e
	}
	n, ok := call.Args[1].(Num)
	if !ok || !n.Bounds.IsPoint() || !n.Bounds.Lo.IsInteger() {
		return e
	}
	if n.Bounds.Lo.Float64() != 2 {
		return e
	}
	return Call{Op: contractor.Mul, Args: []Expr{call.Args[0], call.Args[0]}}
}
