package contractor

import (
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

func checkArity(args []ivl.Bounds, n int) error {
	if len(args) != n {
		return ErrBadArity
	}
	return nil
}

// full is the unbounded (-Inf, +Inf) enclosure, used when an operand
// contributes no information to another's narrowing (e.g. division by an
// interval containing zero).
func full() ivl.Bounds {
	return ivl.Bounds{Lo: numeric.NegInf, Hi: numeric.PosInf}
}

// boolBounds returns the Bounds for a boolean constant (0 or 1).
func boolBounds(v int64) ivl.Bounds {
	n := numeric.FromInt64(v)
	return ivl.Bounds{Lo: n, Hi: n}
}

// isTrue reports whether b can only denote boolean true (singleton 1).
func isTrue(b ivl.Bounds) bool {
	return b.IsPoint() && b.Lo.Equal(numeric.FromInt64(1))
}

// isFalse reports whether b can only denote boolean false (singleton 0).
func isFalse(b ivl.Bounds) bool {
	return b.IsPoint() && b.Lo.Equal(numeric.Zero)
}

// disjoint reports whether a and b share no value.
func disjoint(a, b ivl.Bounds) bool {
	return a.Hi.Cmp(b.Lo) < 0 || b.Hi.Cmp(a.Lo) < 0
}

// intersect returns the bounds-only intersection of a and b, which may be
// invalid (Lo > Hi) if they are disjoint; callers check Valid().
func intersect(a, b ivl.Bounds) ivl.Bounds {
	lo := a.Lo
	if b.Lo.Cmp(lo) > 0 {
		lo = b.Lo
	}
	hi := a.Hi
	if b.Hi.Cmp(hi) < 0 {
		hi = b.Hi
	}
	return ivl.Bounds{Lo: lo, Hi: hi}
}
