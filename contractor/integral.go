package contractor

import "github.com/boundedlogic/clpbnr/ivl"

func init() {
	register(Integral, integralNarrow)
}

// integralNarrow implements the binary coercion Z = integral(X): Z's
// bounds are X's bounds rounded inward to the nearest enclosing integers
// (ceil the low bound, floor the high bound), per spec.md §4.2 "Integer
// type discipline". It is a one-way coercion: X is left unconstrained by
// Z, since a real-typed source is never narrowed by its integer view.
func integralNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x := args[0]
	nz := ivl.Bounds{Lo: x.Lo.CeilInt(), Hi: x.Hi.FloorInt()}
	return []ivl.Bounds{x, nz}, false, nil
}
