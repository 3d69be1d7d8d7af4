package contractor

import "github.com/boundedlogic/clpbnr/ivl"

func init() {
	register(Subset, subsetNarrow)
	register(Superset, supersetNarrow)
}

// subsetNarrow implements the binary X subseteq Y: Y is widened to contain
// X if it doesn't already (a host assertion, not a narrowing, so it would
// only ever grow Y — since Narrow's contract is to produce a *candidate*
// enclosure that the caller intersects with Y's current bounds, and
// intersecting never grows an interval, Y is left unchanged here and X
// is narrowed to X and Y instead, which is the only sound tightening this
// relation can produce under intersection semantics).
func subsetNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, y := args[0], args[1]
	nx := intersect(x, y)
	return []ivl.Bounds{nx, y}, false, nil
}

// supersetNarrow implements the binary X supseteq Y, the mirror of Subset.
func supersetNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, y := args[0], args[1]
	ny := intersect(x, y)
	return []ivl.Bounds{x, ny}, false, nil
}
