package search

import (
	"math"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

// Midpoint implements spec.md §4.7's midpoint(X): Goualard's formula,
// L + (H-L)/2 rather than (L+H)/2, to avoid overflow when L and H share a
// large magnitude and sign. A fully unbounded interval's midpoint is 0
// (spec.md §8 "midpoint_{(-inf,+inf)} = 0"); an interval unbounded on only
// one side has no well-defined finite center, so this nudges one unit in
// from the finite side -- a judgment call recorded in DESIGN.md, since the
// spec only pins down the doubly-unbounded case.
func Midpoint(b ivl.Bounds) numeric.Extended {
	lo, hi := b.Lo, b.Hi
	switch {
	case lo.IsNegInf() && hi.IsPosInf():
		return numeric.Zero
	case lo.IsNegInf():
		return numeric.SubLo(hi, numeric.FromInt64(1))
	case hi.IsPosInf():
		return numeric.AddHi(lo, numeric.FromInt64(1))
	}
	if lo.Equal(hi) {
		return lo
	}
	half := numeric.DivLo(numeric.SubHi(hi, lo), numeric.FromInt64(2))
	m := numeric.AddLo(lo, half)
	m = numeric.Max(lo, numeric.Min(hi, m))
	return m
}

// Median implements spec.md §4.7's median(X): 0 for any interval
// straddling (or touching) zero, otherwise the sign-appropriate geometric
// mean sqrt(|L|*|H|).
func Median(b ivl.Bounds) numeric.Extended {
	lo, hi := b.Lo, b.Hi
	if lo.Sign() <= 0 && hi.Sign() >= 0 {
		return numeric.Zero
	}
	if hi.Sign() < 0 {
		mag := numeric.SqrtLo(numeric.MulLo(lo, hi))
		return mag.Neg()
	}
	return numeric.SqrtLo(numeric.MulLo(lo, hi))
}

// Delta implements spec.md §4.7's delta(X) = H-L, rounded up. ivl.Bounds
// already computes exactly this outward-rounded width for the
// propagator's own use; Delta only gives it the name the external
// interface (spec.md §6) exposes.
func Delta(b ivl.Bounds) numeric.Extended {
	return b.Width()
}

// small reports whether b's width is small enough, relative to its
// magnitude, to stop bisecting at the given precision (significant
// digits), per spec.md §6's "small" predicate.
func small(b ivl.Bounds, precision int) bool {
	w := b.Width().Float64()
	if w == 0 {
		return true
	}
	scale := math.Max(1, math.Abs(Midpoint(b).Float64()))
	return w < math.Pow(10, float64(-precision))*scale
}
