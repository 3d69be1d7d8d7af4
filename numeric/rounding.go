package numeric

import (
	"math"
	"math/big"
)

// nextOutward nudges a round-to-nearest float64 result one ULP further in
// the given direction (-1 toward -Inf for a lower bound, +1 toward +Inf for
// an upper bound). This is the kernel's fallback on platforms (all of them,
// from pure Go) without FPU rounding-mode control: compute at round-to-
// nearest, then widen by the smallest possible amount so the result is
// still a sound enclosure.
func nextOutward(x float64, dir int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if dir < 0 {
		return math.Nextafter(x, math.Inf(-1))
	}
	return math.Nextafter(x, math.Inf(1))
}

// ratToFloatDirected rounds an exact rational outward: dir<0 returns the
// greatest float64 <= r, dir>0 returns the least float64 >= r.
func ratToFloatDirected(r *big.Rat, dir int) float64 {
	f, exact := r.Float64()
	if exact {
		return f
	}
	return nextOutward(f, dir)
}

// addFloat computes a+b at round-to-nearest and nudges outward.
func addFloat(a, b float64, dir int) float64 { return nextOutward(a+b, dir) }
func subFloat(a, b float64, dir int) float64 { return nextOutward(a-b, dir) }
func mulFloat(a, b float64, dir int) float64 { return nextOutward(a*b, dir) }
// divFloat assumes b != 0; DivLo/DivHi special-case b == 0 before reaching
// here so that the signed-infinity and NaN rules can be applied uniformly
// to both the exact-rational and float64 paths.
func divFloat(a, b float64, dir int) float64 {
	return nextOutward(a/b, dir)
}

// directed applies a rational op when both operands are exact and the
// result's denominator stays within budget, otherwise falls back to a
// directed float64 computation.
func directed(a, b Extended, dir int,
	ratOp func(z, x, y *big.Rat) *big.Rat,
	floatOp func(x, y float64, dir int) float64) Extended {

	if a.IsNaN() || b.IsNaN() {
		return NaNValue
	}
	if a.rat != nil && b.rat != nil {
		z := ratOp(new(big.Rat), a.rat, b.rat)
		if denomWithinBudget(z) {
			return Extended{rat: z}
		}
		return Extended{f: ratToFloatDirected(z, dir)}
	}
	return Extended{f: floatOp(a.Float64(), b.Float64(), dir)}
}

// AddLo returns the greatest representable value <= a+b.
func AddLo(a, b Extended) Extended {
	return addInf(a, b, -1)
}

// AddHi returns the least representable value >= a+b.
func AddHi(a, b Extended) Extended {
	return addInf(a, b, 1)
}

func addInf(a, b Extended, dir int) Extended {
	if a.IsInf() || b.IsInf() {
		return addInfSlow(a, b)
	}
	return directed(a, b, dir, (*big.Rat).Add, addFloat)
}

// addInfSlow implements IEEE-754 default infinity arithmetic: inf+finite =
// inf, inf+inf (same sign) = inf, inf+-inf = NaN.
func addInfSlow(a, b Extended) Extended {
	if a.IsNaN() || b.IsNaN() {
		return NaNValue
	}
	af, bf := a.Float64(), b.Float64()
	r := af + bf
	if math.IsNaN(r) {
		return NaNValue
	}
	if math.IsInf(r, 1) {
		return PosInf
	}
	if math.IsInf(r, -1) {
		return NegInf
	}
	return Extended{f: r}
}

// SubLo returns the greatest representable value <= a-b.
func SubLo(a, b Extended) Extended { return AddLo(a, b.Neg()) }

// SubHi returns the least representable value >= a-b.
func SubHi(a, b Extended) Extended { return AddHi(a, b.Neg()) }

// MulLo returns the greatest representable value <= a*b.
func MulLo(a, b Extended) Extended { return mulInf(a, b, -1) }

// MulHi returns the least representable value >= a*b.
func MulHi(a, b Extended) Extended { return mulInf(a, b, 1) }

func mulInf(a, b Extended, dir int) Extended {
	if a.IsInf() || b.IsInf() {
		return mulInfSlow(a, b)
	}
	return directed(a, b, dir, (*big.Rat).Mul, mulFloat)
}

func mulInfSlow(a, b Extended) Extended {
	if a.IsNaN() || b.IsNaN() {
		return NaNValue
	}
	if a.Sign() == 0 || b.Sign() == 0 {
		// 0 * inf is NaN under IEEE-754 defaults.
		if a.IsInf() || b.IsInf() {
			return NaNValue
		}
		return Zero
	}
	r := a.Float64() * b.Float64()
	if math.IsNaN(r) {
		return NaNValue
	}
	if r > 0 {
		return PosInf
	}
	return NegInf
}

// DivLo returns the greatest representable value <= a/b.
func DivLo(a, b Extended) Extended { return divInf(a, b, -1) }

// DivHi returns the least representable value >= a/b.
func DivHi(a, b Extended) Extended { return divInf(a, b, 1) }

func divInf(a, b Extended, dir int) Extended {
	if a.IsNaN() || b.IsNaN() {
		return NaNValue
	}
	if b.Sign() == 0 {
		// 1/0 -> signed infinity per spec; 0/0 -> NaN, left for the
		// calling contractor to treat as "unbounded, re-clamp".
		if a.Sign() == 0 {
			return NaNValue
		}
		if a.Sign() > 0 {
			return PosInf
		}
		return NegInf
	}
	if a.IsInf() || b.IsInf() {
		return divInfSlow(a, b)
	}
	return directed(a, b, dir,
		func(z, x, y *big.Rat) *big.Rat { return z.Quo(x, y) },
		divFloat)
}

func divInfSlow(a, b Extended) Extended {
	switch {
	case a.IsInf() && b.IsInf():
		return NaNValue
	case a.IsInf():
		if (a.Sign() > 0) == (b.Sign() > 0) {
			return PosInf
		}
		return NegInf
	default: // b.IsInf(), a finite
		return Zero
	}
}

// NextAway returns the representable value immediately beyond x in the
// given direction (dir<0 toward -Inf, dir>0 toward +Inf): the narrowest
// step that excludes x itself while still enclosing everything beyond it.
// Infinities and NaN pass through unchanged. Used to implement spec.md
// §4.3's equality point-exclusion narrowing ("narrow the other by
// removing that point"), which needs a bound strictly past a known
// excluded value rather than an outward-rounded arithmetic result.
func NextAway(x Extended, dir int) Extended {
	if x.IsInf() || x.IsNaN() {
		return x
	}
	return Extended{f: nextOutward(x.Float64(), dir)}
}
