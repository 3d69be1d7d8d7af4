package compile

import (
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

// PartialDerivative implements spec.md §4.7's symbolic differentiation:
// the usual product/quotient/chain rules over Add/Sub/Neg/Mul/Div, a
// constant-exponent power rule, and the sin/cos/exp/log chain rules,
// returning a tree simplified by the same DefaultRewrites chain Compiler
// uses. Any other Call (e.g. Min, Max, a non-constant Pow exponent) has
// no closed-form rule implemented here and differentiates to 0, the same
// conservative fallback Abs/Pow's backward narrowing uses elsewhere in
// this module for cases with no simple sound answer.
func PartialDerivative(e Expr, x *ivl.Interval) Expr {
	return Simplify(derivative(e, x), DefaultRewrites()...)
}

func derivative(e Expr, x *ivl.Interval) Expr {
	switch v := e.(type) {
	case Num:
		return zeroExpr()
	case VarRef:
		if v.Interval == x {
			return oneExpr()
		}
		return zeroExpr()
	case Call:
		return derivCall(v, x)
	default:
		return zeroExpr()
	}
}

func derivCall(c Call, x *ivl.Interval) Expr {
	d := func(i int) Expr { return derivative(c.Args[i], x) }
	mul := func(a, b Expr) Expr { return Call{Op: contractor.Mul, Args: []Expr{a, b}} }

	switch c.Op {
	case contractor.Add:
		return Call{Op: contractor.Add, Args: []Expr{d(0), d(1)}}
	case contractor.Sub:
		return Call{Op: contractor.Sub, Args: []Expr{d(0), d(1)}}
	case contractor.Neg:
		return Call{Op: contractor.Neg, Args: []Expr{d(0)}}
	case contractor.Mul:
		// (fg)' = f'g + fg'
		return Call{Op: contractor.Add, Args: []Expr{mul(d(0), c.Args[1]), mul(c.Args[0], d(1))}}
	case contractor.Div:
		// (f/g)' = (f'g - fg') / g^2
		num := Call{Op: contractor.Sub, Args: []Expr{mul(d(0), c.Args[1]), mul(c.Args[0], d(1))}}
		denom := mul(c.Args[1], c.Args[1])
		return Call{Op: contractor.Div, Args: []Expr{num, denom}}
	case contractor.Pow:
		return derivPow(c, x)
	case contractor.Sin:
		return mul(Call{Op: contractor.Cos, Args: []Expr{c.Args[0]}}, d(0))
	case contractor.Cos:
		return Call{Op: contractor.Neg, Args: []Expr{mul(Call{Op: contractor.Sin, Args: []Expr{c.Args[0]}}, d(0))}}
	case contractor.Exp:
		return mul(Call{Op: contractor.Exp, Args: []Expr{c.Args[0]}}, d(0))
	case contractor.Log:
		return Call{Op: contractor.Div, Args: []Expr{d(0), c.Args[0]}}
	default:
		return zeroExpr()
	}
}

// derivPow implements d/dx f(x)**n for a constant integer exponent n:
// n * f**(n-1) * f'. A non-constant exponent has no simple closed-form
// rule here and falls back to 0.
func derivPow(c Call, x *ivl.Interval) Expr {
	n, ok := c.Args[1].(Num)
	if !ok || !n.Bounds.IsPoint() || !n.Bounds.Lo.IsInteger() {
		return zeroExpr()
	}
	nMinus1 := Num{Kind: ivl.Real, Bounds: ivl.Bounds{
		Lo: numeric.SubLo(n.Bounds.Lo, numeric.FromInt64(1)),
		Hi: numeric.SubHi(n.Bounds.Hi, numeric.FromInt64(1)),
	}}
	base := Call{Op: contractor.Pow, Args: []Expr{c.Args[0], nMinus1}}
	return Call{Op: contractor.Mul, Args: []Expr{
		Call{Op: contractor.Mul, Args: []Expr{n, base}},
		derivative(c.Args[0], x),
	}}
}
