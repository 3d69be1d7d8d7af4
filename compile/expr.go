package compile

import (
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

// Expr is a node of the surface expression tree the constraint compiler
// decomposes into a propagate.Node DAG, per spec.md §4.4.
type Expr interface {
	isExpr()
}

// Num is a ground (ivl.Kind, ivl.Bounds) literal: either a surface
// numeric constant, or the result of folding a ground subexpression
// (which may be a non-degenerate enclosure once outward rounding is
// involved, not only an exact point).
type Num struct {
	Kind   ivl.Kind
	Bounds ivl.Bounds
}

func (Num) isExpr() {}

// RealNum returns a point Num literal for an exact real value v.
func RealNum(v numeric.Extended) Num {
	return Num{Kind: ivl.Real, Bounds: ivl.Bounds{Lo: v, Hi: v}}
}

// IntNum returns a point Num literal for an exact integer value n.
func IntNum(n int64) Num {
	v := numeric.FromInt64(n)
	return Num{Kind: ivl.Integer, Bounds: ivl.Bounds{Lo: v, Hi: v}}
}

// VarRef is a leaf referencing an already-declared ivl.Interval.
type VarRef struct {
	Interval *ivl.Interval
}

func (VarRef) isExpr() {}

// Call applies Op to Args, each of which is itself compiled to an
// operand Interval; Call never names the operator's implicit output
// operand (Z) — the Compiler allocates a fresh Interval for it. Args'
// length must equal Op.Arity()-1, i.e. the operator's
// input operands only; Subset/Superset (whose Arity has no implicit Z)
// are asserted directly via Compiler.Assert, not expressed as a Call.
type Call struct {
	Op   contractor.Op
	Args []Expr
}

func (Call) isExpr() {}

func zeroExpr() Expr { return RealNum(numeric.Zero) }
func oneExpr() Expr  { return RealNum(numeric.FromInt64(1)) }
