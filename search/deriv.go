package search

import (
	"github.com/boundedlogic/clpbnr/compile"
	"github.com/boundedlogic/clpbnr/ivl"
)

// PartialDerivative implements spec.md §4.7's partial_derivative(Expr, X,
// DExp): symbolic differentiation, used by Taylor-contractor meta-level
// code. The rule set itself lives in compile.PartialDerivative, which
// this package depends on anyway for its Expr/Compiler types; re-exporting
// it here gives search a self-contained operator surface matching the
// spec's grouping of every §4.7 operator under one layer.
func PartialDerivative(e compile.Expr, x *ivl.Interval) compile.Expr {
	return compile.PartialDerivative(e, x)
}
