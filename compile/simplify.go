package compile

import (
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

// Simplifier rewrites a single Expr node, assuming its children have
// already been simplified. Returning e unchanged means "no rule
// applies"; Simplify composes a chain of these the way builder composes
// construction Options.
type Simplifier func(Expr) Expr

// Simplify recursively simplifies e bottom-up: every Call's Args are
// simplified first, then each pass in passes runs over the resulting
// node in order, repeating until none of them changes it further (a
// simple fixed-point loop, since e.g. ConstantFold feeding FoldNegNeg can
// enable another round of constant folding).
func Simplify(e Expr, passes ...Simplifier) Expr {
	for {
		next := simplifyOnce(e, passes)
		if sameExpr(next, e) {
			return next
		}
		e = next
	}
}

func simplifyOnce(e Expr, passes []Simplifier) Expr {
	if call, ok := e.(Call); ok {
		args := make([]Expr, len(call.Args))
		for i, a := range call.Args {
			args[i] = simplifyOnce(a, passes)
		}
		e = Call{Op: call.Op, Args: args}
	}
	for _, p := range passes {
		e = p(e)
	}
	return e
}

// sameExpr is a shallow structural-equality check sufficient to detect a
// simplification fixed point; it does not need to be a full deep
// comparison because simplifyOnce already recurses into children before
// this is checked at each level.
func sameExpr(a, b Expr) bool {
	switch av := a.(type) {
	case Num:
		bv, ok := b.(Num)
		return ok && av.Kind == bv.Kind && av.Bounds.Lo.Equal(bv.Bounds.Lo) && av.Bounds.Hi.Equal(bv.Bounds.Hi)
	case VarRef:
		bv, ok := b.(VarRef)
		return ok && av.Interval == bv.Interval
	case Call:
		bv, ok := b.(Call)
		if !ok || av.Op != bv.Op || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !sameExpr(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ConstantFold pre-evaluates a Call whose Args are all already-ground Num
// literals, per spec.md §4.4 "Pre-evaluates ground subexpressions (with
// outward rounding for inexact floats)". The fold computes the
// contractor's forward result against an unbounded placeholder for the
// operator's implicit output operand; a folded result may itself be a
// non-degenerate enclosure, not just an exact point, when the computation
// is inexact.
func ConstantFold(e Expr) Expr {
	call, ok := e.(Call)
	if !ok {
		return e
	}
	c, ok := contractor.For(call.Op)
	if !ok {
		return e
	}
	args := make([]ivl.Bounds, 0, len(call.Args)+1)
	for _, a := range call.Args {
		n, ok := a.(Num)
		if !ok {
			return e
		}
		args = append(args, n.Bounds)
	}
	for len(args) < call.Op.Arity() {
		args = append(args, ivl.Bounds{Lo: numeric.NegInf, Hi: numeric.PosInf})
	}
	narrowed, _, err := c.Narrow(args)
	if err != nil {
		return e
	}
	z := narrowed[len(narrowed)-1]
	if !z.Valid() {
		return e
	}
	return Num{Kind: outputKindForFold(call.Op), Bounds: z}
}

func outputKindForFold(op contractor.Op) ivl.Kind {
	switch op {
	case contractor.Eq, contractor.Ne, contractor.Le, contractor.Lt,
		contractor.And, contractor.Or, contractor.Xor, contractor.Nand, contractor.Nor, contractor.Imb, contractor.Not,
		contractor.Integral:
		return ivl.Integer
	default:
		return ivl.Real
	}
}
