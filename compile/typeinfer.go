package compile

import (
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

// outputDomain infers the Kind of a Call's implicit output operand, per
// spec.md §4.6's unification rule generalized to compile-time inference:
// comparisons and boolean connectives always produce Integer(0,1); an
// Integral coercion always produces Integer; arithmetic/transcendental
// operators produce Real unless every operand is already Integer, in
// which case the result is Integer too ("two reals stay real; any
// integer makes the result integer" reversed: all-integer in, integer
// out). Bounds is left zero, which Store.Declare's default-bounds
// substitution turns into the Kind's unconstrained range.
func outputDomain(op contractor.Op, args []*ivl.Interval) (ivl.Kind, ivl.Bounds) {
	switch op {
	case contractor.Eq, contractor.Ne, contractor.Le, contractor.Lt,
		contractor.And, contractor.Or, contractor.Xor, contractor.Nand, contractor.Nor, contractor.Imb, contractor.Not:
		return ivl.Integer, ivl.Bounds{Lo: numeric.Zero, Hi: numeric.FromInt64(1)}
	case contractor.Integral:
		return ivl.Integer, ivl.Bounds{}
	default:
		kind := ivl.Integer
		for _, a := range args {
			if a.Kind() != ivl.Integer {
				kind = ivl.Real
				break
			}
		}
		if len(args) == 0 {
			kind = ivl.Real
		}
		return kind, ivl.Bounds{}
	}
}
